// 19 Oct 2026
// Package pdb reads and writes the ATOM and HETATM records of files in
// the old, fixed column PDB format.
//
// A Pdb keeps the atoms in the order they were read. Everything else
// in the file (HEADER, REMARK, TER, ...) is kept in Other, but it is
// not written out again. Writing a Pdb gives you only the atoms.
package pdb

import (
	"bufio"
	"errors"
	"io"
	"strings"
)

// Pdb is the contents of one file.
type Pdb struct {
	Atoms []Atom
	Other []string // Lines that were not atoms, with their newlines
}

// New reads a Pdb from rdr. If rdr is nil, it makes a Pdb from a copy
// of atoms. If both are nil, it returns ErrNoInput.
// A broken atom line stops reading and we return no Pdb at all.
// The error will be a *NumError with the line number filled out.
func New(rdr io.Reader, atoms []Atom) (*Pdb, error) {
	if rdr == nil && atoms == nil {
		return nil, ErrNoInput
	}
	if rdr == nil {
		return NewFromAtoms(atoms), nil
	}
	p := new(Pdb)
	brdr := bufio.NewReader(rdr)
	for n := 1; ; n++ {
		line, err := brdr.ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, err
		}
		if line != "" {
			if e := p.addLine(line); e != nil {
				var nerr *NumError
				if errors.As(e, &nerr) {
					nerr.LineNum = n
				}
				return nil, e
			}
		}
		if err == io.EOF {
			break
		}
	}
	return p, nil
}

// addLine sorts a line into atoms or other lines.
func (p *Pdb) addLine(line string) error {
	if !IsAtomLine(line) {
		p.Other = append(p.Other, line)
		return nil
	}
	a, err := ParseAtom(line)
	if err != nil {
		return err
	}
	p.Atoms = append(p.Atoms, a)
	return nil
}

// NewString is New for a string holding a whole file.
func NewString(s string) (*Pdb, error) { return New(strings.NewReader(s), nil) }

// NewFromAtoms makes a Pdb with its own copy of atoms and no other lines.
func NewFromAtoms(atoms []Atom) *Pdb {
	return &Pdb{Atoms: append([]Atom{}, atoms...)}
}

// Residues groups the atoms into residues.
func (p *Pdb) Residues() []Residue { return GroupResidues(p.Atoms) }

// ResiduesByName returns residues with the name, name, like "GLY".
func (p *Pdb) ResiduesByName(name string) [][]Atom { return FilterByResName(p.Atoms, name) }

// Write writes the atoms, one per line. Lines in Other are not
// written. An atom whose extras do not end in a newline gets one.
func (p *Pdb) Write(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for _, a := range p.Atoms {
		s := a.Format()
		if _, err := bw.WriteString(s); err != nil {
			return err
		}
		if !strings.HasSuffix(s, "\n") {
			if err := bw.WriteByte('\n'); err != nil {
				return err
			}
		}
	}
	return bw.Flush()
}

// String returns what Write would write.
func (p *Pdb) String() string {
	var b strings.Builder
	p.Write(&b) // writing to a Builder does not fail
	return b.String()
}

// Copy returns a Pdb which shares nothing with p. Like NewFromAtoms,
// the other lines are not kept.
func (p *Pdb) Copy() *Pdb { return NewFromAtoms(p.Atoms) }

// NAtom is the number of atoms.
func (p *Pdb) NAtom() int { return len(p.Atoms) }
