package selcheck_test

import (
	"errors"
	"testing"

	"github.com/andrew-torda/pdbcols/pkg/pdb"
	"github.com/andrew-torda/pdbcols/pkg/selcheck"
)

const twoAtoms = `ATOM      1  N   ALA A   1      11.104   6.134  -6.504  1.00  0.00           N
ATOM      2  CA  ALA A   1      11.639   6.071  -5.147  1.00  0.00           C
ATOM      3  CA  ALA B   1      11.639   6.071  -5.147  1.00  0.00           C
`

func TestParse(t *testing.T) {
	var sels = []struct {
		in   string
		want selcheck.Selection
		ok   bool
	}{
		{"12 CA", selcheck.Selection{ResSeq: 12, Name: "CA"}, true},
		{"  -3   HG21 ", selcheck.Selection{ResSeq: -3, Name: "HG21"}, true},
		{"CA 12", selcheck.Selection{}, false},
		{"12", selcheck.Selection{}, false},
		{"12 CA CB", selcheck.Selection{}, false},
		{"1.5 CA", selcheck.Selection{}, false},
	}
	for _, s := range sels {
		got, err := selcheck.Parse(s.in)
		if (err == nil) != s.ok {
			t.Errorf("%q: error %v", s.in, err)
			continue
		}
		if err != nil && !errors.Is(err, selcheck.ErrSyntax) {
			t.Errorf("%q: error should be ErrSyntax, got %v", s.in, err)
		}
		if got != s.want {
			t.Errorf("%q: got %+v wanted %+v", s.in, got, s.want)
		}
	}
}

func TestCheck(t *testing.T) {
	p, err := pdb.NewString(twoAtoms)
	if err != nil {
		t.Fatal(err)
	}
	withPdb := selcheck.Checker{Counter: p}
	without := selcheck.Checker{}
	var checks = []struct {
		in          string
		withPdb     bool
		withoutPdb  bool
		expectError bool
	}{
		{"", true, true, false},
		{"1 N", true, true, false},
		{"1 CA", false, true, false}, // two chains
		{"2 N", false, true, false},
		{"N 1", false, false, true},
	}
	for _, c := range checks {
		ok, err := withPdb.Check(c.in)
		if ok != c.withPdb || (err != nil) != c.expectError {
			t.Errorf("with pdb %q got %v %v", c.in, ok, err)
		}
		ok, err = without.Check(c.in)
		if ok != c.withoutPdb || (err != nil) != c.expectError {
			t.Errorf("without pdb %q got %v %v", c.in, ok, err)
		}
	}
	if tt := withPdb.Tooltip("1 CA"); tt != "Selection 1 CA has zero or more than one atom." {
		t.Errorf("tooltip %q", tt)
	}
}
