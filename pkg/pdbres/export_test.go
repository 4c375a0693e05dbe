package pdbres

var MymainTo = mymain
