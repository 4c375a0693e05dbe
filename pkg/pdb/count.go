package pdb

// CountAtoms says how many atoms have residue number resSeq and atom
// name, name. It lets a Pdb answer selection queries like "12 CA".
func (p *Pdb) CountAtoms(resSeq int, name string) int {
	n := 0
	for _, a := range p.Atoms {
		if a.ResSeq == resSeq && a.Name == name {
			n++
		}
	}
	return n
}
