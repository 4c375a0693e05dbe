package pdbres

import (
	"fmt"

	"github.com/andrew-torda/pdbcols/pkg/pdb"
	"github.com/disiqueira/gotree/v3"
)

// ResidueTree draws residues under their chains. A chain that comes
// back after another chain gets a second node, just as residues do.
func ResidueTree(rootLabel string, res []pdb.Residue) string {
	root := gotree.New(rootLabel)
	var chain gotree.Tree
	prevID := ""
	for i, r := range res {
		a := r.Atoms[0]
		if i == 0 || a.ChainID != prevID {
			chain = root.Add(chainLabel(a.ChainID))
			prevID = a.ChainID
		}
		chain.Add(fmt.Sprintf("%s %d%s (%d atoms)", a.ResName, a.ResSeq, a.ICode, len(r.Atoms)))
	}
	return root.Print()
}

func chainLabel(id string) string {
	if id == "" {
		return "no chain"
	}
	return "chain " + id
}
