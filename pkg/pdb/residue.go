package pdb

import (
	"strconv"
)

// Residue is a run of consecutive atoms with the same residue key.
type Residue struct {
	Key   string
	Atoms []Atom
}

// ResidueKey identifies the residue an atom belongs to, like "A_12_GLY".
func ResidueKey(a Atom) string {
	return a.ChainID + "_" + strconv.Itoa(a.ResSeq) + "_" + a.ResName
}

// GroupResidues splits atoms into residues without reordering them.
// A residue ends as soon as the key changes, so if the same key comes
// back later, it starts a second residue with the same key. Files are
// assumed to keep the atoms of a residue together.
func GroupResidues(atoms []Atom) []Residue {
	var ret []Residue
	prev := ""
	for i, a := range atoms {
		key := ResidueKey(a)
		if i == 0 || key != prev {
			ret = append(ret, Residue{Key: key})
			prev = key
		}
		last := &ret[len(ret)-1]
		last.Atoms = append(last.Atoms, a)
	}
	return ret
}

// FilterByResName returns the residues whose first atom has residue
// name, name.
func FilterByResName(atoms []Atom, name string) [][]Atom {
	var ret [][]Atom
	for _, r := range GroupResidues(atoms) {
		if r.Atoms[0].ResName == name {
			ret = append(ret, r.Atoms)
		}
	}
	return ret
}
