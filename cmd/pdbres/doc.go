/*
Pdbres lists the residues of a pdb file.

Usage:

	pdbres [options] [input [output]]

Only ATOM and HETATM records are read into residues. A residue is a run
of consecutive atoms with the same chain, residue number and residue
name. If the same residue turns up again later in the file, it is
listed twice.

If no input is given, stdin is used. Input may be gzipped.
With -d, the input is a four letter code such as 1abc which is fetched
from one of the protein data bank sites (-n picks which).

If output is given, the atoms are written there. With -r, only residues
with that name are kept, so

	pdbres -r HOH 1abc.pdb waters.pdb

writes the waters. Only atom lines are written. HEADER, REMARK and
everything else is dropped.

When stdout is a terminal, residues are drawn as a tree under their
chains. Otherwise each residue gets a line with its key and number of
atoms, separated by a tab.
*/
package main
