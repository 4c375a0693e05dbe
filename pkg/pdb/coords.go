package pdb

import (
	"github.com/andrew-torda/matrix"
)

// Coords returns the coordinates as an n_atom x 3 matrix, rows in the
// same order as the atoms.
func (p *Pdb) Coords() *matrix.FMatrix2d {
	xyz := matrix.NewFMatrix2d(len(p.Atoms), 3)
	for i, a := range p.Atoms {
		xyz.Mat[i][0] = float32(a.X)
		xyz.Mat[i][1] = float32(a.Y)
		xyz.Mat[i][2] = float32(a.Z)
	}
	return xyz
}

// Centroid is the mean position of the atoms, worked out from Coords,
// so only to float32 precision. ok is false if there are no atoms.
func (p *Pdb) Centroid() (x, y, z float64, ok bool) {
	if len(p.Atoms) == 0 {
		return 0, 0, 0, false
	}
	for _, row := range p.Coords().Mat {
		x += float64(row[0])
		y += float64(row[1])
		z += float64(row[2])
	}
	n := float64(len(p.Atoms))
	return x / n, y / n, z / n, true
}
