// 19 Oct 2026
// Package pdbres reads a pdb file, lists its residues, optionally keeps
// only residues with some name and writes out the atoms that are left.

package pdbres

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/andrew-torda/pdbcols/pkg/common"
	"github.com/andrew-torda/pdbcols/pkg/pdb"
	"github.com/andrew-torda/pdbcols/pkg/selcheck"
	"golang.org/x/term"
)

// CmdArgs is literally command line flags and arguments after parsing.
type CmdArgs struct {
	InFname   string // file name, or four letter code if Download is set
	OutFname  string // where to write atoms. "" means do not write
	ResName   string // only keep residues called this
	Selection string // "resSeq name" that should match exactly one atom
	LogFname  string // "", "stdout" or a file
	Download  bool
	SiteNum   int
	Tree      bool // print residues as a tree even if stdout is not a terminal
	Quiet     bool // do not list residues at all
}

// Mymain is the top level after parsing the command line. The residue
// listing goes to standard output, as a tree if that is a terminal.
func Mymain(cmdArgs CmdArgs) error {
	isTerm := term.IsTerminal(int(os.Stdout.Fd()))
	return mymain(cmdArgs, os.Stdout, isTerm)
}

func mymain(cmdArgs CmdArgs, w io.Writer, isTerm bool) error {
	outlog, closer, err := common.LogWhere(cmdArgs.LogFname)
	if err != nil {
		return fmt.Errorf("%w creating log file", err)
	}
	defer closer.Close()

	var p *pdb.Pdb
	if cmdArgs.Download {
		p, err = pdb.Download(cmdArgs.InFname, cmdArgs.SiteNum)
	} else {
		p, err = pdb.Readfile(cmdArgs.InFname)
	}
	if err != nil {
		return err
	}
	outlog.Println(cmdArgs.InFname, "atoms:", p.NAtom(), "other lines:", len(p.Other))
	if x, y, z, ok := p.Centroid(); ok {
		outlog.Printf("centroid %.3f %.3f %.3f", x, y, z)
	}

	if cmdArgs.Selection != "" {
		chk := selcheck.Checker{Counter: p}
		ok, err := chk.Check(cmdArgs.Selection)
		if err != nil {
			return err
		}
		if !ok {
			return errors.New(chk.Tooltip(cmdArgs.Selection))
		}
		outlog.Println("selection", cmdArgs.Selection, "ok")
	}

	if cmdArgs.ResName != "" {
		var kept []pdb.Atom
		for _, r := range p.ResiduesByName(cmdArgs.ResName) {
			kept = append(kept, r...)
		}
		outlog.Println("kept", len(kept), "atoms in residues", cmdArgs.ResName)
		p = pdb.NewFromAtoms(kept)
	}

	if !cmdArgs.Quiet {
		label := cmdArgs.InFname
		if label == "" {
			label = "stdin"
		}
		if cmdArgs.Tree || isTerm {
			_, err = io.WriteString(w, ResidueTree(label, p.Residues()))
		} else {
			err = writeList(w, p.Residues())
		}
		if err != nil {
			return err
		}
	}

	if cmdArgs.OutFname != "" {
		if err := pdb.WriteToF(cmdArgs.OutFname, p); err != nil {
			return fmt.Errorf("Fail writing to %s: %w", cmdArgs.OutFname, err)
		}
	}
	return nil
}

// writeList writes one line per residue, the key and number of atoms.
func writeList(w io.Writer, res []pdb.Residue) error {
	for _, r := range res {
		if _, err := fmt.Fprintf(w, "%s\t%d\n", r.Key, len(r.Atoms)); err != nil {
			return err
		}
	}
	return nil
}
