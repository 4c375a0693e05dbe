// 19 Oct 2026
// pdbres lists the residues in a pdb file and can write out the atoms
// of residues with a given name.

package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/andrew-torda/pdbcols/pkg/common"
	"github.com/andrew-torda/pdbcols/pkg/pdbres"
)

func main() {
	var cmdArgs pdbres.CmdArgs
	flag.StringVar(&cmdArgs.ResName, "r", "", "only keep residues with this name, like GLY")
	flag.StringVar(&cmdArgs.Selection, "s", "", "check that \"resSeq name\" picks out exactly one atom")
	flag.StringVar(&cmdArgs.LogFname, "l", "", "log file, or stdout")
	flag.BoolVar(&cmdArgs.Download, "d", false, "input is a four letter code to fetch from the PDB")
	flag.IntVar(&cmdArgs.SiteNum, "n", 0, "which PDB site to download from")
	flag.BoolVar(&cmdArgs.Tree, "t", false, "print residues as a tree")
	flag.BoolVar(&cmdArgs.Quiet, "q", false, "do not list residues")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] [input [output]]\n\n", os.Args[0])
		fmt.Fprintln(os.Stderr, "If no input is given, stdin will be used.")
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() > 2 {
		fmt.Fprintln(os.Stderr, "Expected at most two arguments. Got", flag.NArg())
		flag.Usage()
		os.Exit(common.ExitUsageError)
	}
	cmdArgs.InFname = flag.Arg(0)
	cmdArgs.OutFname = flag.Arg(1)
	if cmdArgs.Download && cmdArgs.InFname == "" {
		fmt.Fprintln(os.Stderr, "-d needs a four letter code")
		os.Exit(common.ExitUsageError)
	}
	if err := pdbres.Mymain(cmdArgs); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(common.ExitFailure)
	}
	os.Exit(common.ExitSuccess)
}
