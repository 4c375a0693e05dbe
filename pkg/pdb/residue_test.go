package pdb_test

import (
	"testing"

	. "github.com/andrew-torda/pdbcols/pkg/pdb"
)

func mkAtom(chain string, resSeq int, resName, name string) Atom {
	return Atom{Record: "ATOM", ChainID: chain, ResSeq: resSeq, ResName: resName, Name: name}
}

var twoRes = []Atom{
	mkAtom("A", 1, "ALA", "N"),
	mkAtom("A", 1, "ALA", "CA"),
	mkAtom("A", 2, "GLY", "N"),
}

func TestResidueKey(t *testing.T) {
	if k := ResidueKey(mkAtom("A", 12, "GLY", "CA")); k != "A_12_GLY" {
		t.Errorf("got %s", k)
	}
	if k := ResidueKey(mkAtom("", -3, "HOH", "O")); k != "_-3_HOH" {
		t.Errorf("blank chain got %s", k)
	}
}

func TestGroupResidues(t *testing.T) {
	res := GroupResidues(twoRes)
	if len(res) != 2 {
		t.Fatalf("got %d residues wanted 2", len(res))
	}
	var want = []struct {
		key    string
		natoms int
	}{
		{"A_1_ALA", 2},
		{"A_2_GLY", 1},
	}
	for i, w := range want {
		if res[i].Key != w.key || len(res[i].Atoms) != w.natoms {
			t.Errorf("residue %d got %s with %d atoms wanted %s with %d",
				i, res[i].Key, len(res[i].Atoms), w.key, w.natoms)
		}
	}
	if res[0].Atoms[1].Name != "CA" {
		t.Error("atoms reordered within residue")
	}
}

// TestNoMerge checks that a residue key which comes back after an
// interruption starts a new group.
func TestNoMerge(t *testing.T) {
	atoms := []Atom{
		mkAtom("A", 1, "ALA", "N"),
		mkAtom("A", 2, "GLY", "N"),
		mkAtom("A", 1, "ALA", "CA"),
	}
	res := GroupResidues(atoms)
	if len(res) != 3 {
		t.Fatalf("got %d groups wanted 3", len(res))
	}
	if res[0].Key != res[2].Key {
		t.Errorf("first and last keys should match: %s %s", res[0].Key, res[2].Key)
	}
}

func TestGroupEmpty(t *testing.T) {
	if res := GroupResidues(nil); len(res) != 0 {
		t.Errorf("got %d groups from nothing", len(res))
	}
	if res := FilterByResName(nil, "GLY"); len(res) != 0 {
		t.Errorf("got %d groups from nothing", len(res))
	}
}

func TestFilterByResName(t *testing.T) {
	gly := FilterByResName(twoRes, "GLY")
	if len(gly) != 1 || len(gly[0]) != 1 || gly[0][0].Name != "N" {
		t.Errorf("GLY got %v", gly)
	}
	if trp := FilterByResName(twoRes, "TRP"); len(trp) != 0 {
		t.Errorf("TRP got %d residues", len(trp))
	}
	atoms := append(append([]Atom{}, twoRes...), mkAtom("B", 1, "ALA", "N"))
	if ala := FilterByResName(atoms, "ALA"); len(ala) != 2 {
		t.Errorf("ALA got %d residues wanted 2", len(ala))
	}
}
