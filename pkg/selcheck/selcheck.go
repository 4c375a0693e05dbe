// 19 Oct 2026
// Package selcheck checks atom selections typed in by a user, like
// "12 CA" for the CA atom of residue 12.
//
// Whether or not there is a structure to check against is decided by
// the caller. Give the Checker a Counter and selections must pick out
// exactly one atom. Leave it nil and we only check the syntax.
package selcheck

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Counter answers how many atoms match a residue number and atom name.
// A *pdb.Pdb is a Counter.
type Counter interface {
	CountAtoms(resSeq int, name string) int
}

// ErrSyntax means the selection is not "resSeq name".
var ErrSyntax = errors.New("selection should be a residue number and an atom name")

// Selection is a parsed "resSeq name".
type Selection struct {
	ResSeq int
	Name   string
}

// Parse splits a selection. Surrounding white space is ignored.
func Parse(value string) (Selection, error) {
	f := strings.Fields(value)
	if len(f) != 2 {
		return Selection{}, ErrSyntax
	}
	n, err := strconv.Atoi(f[0])
	if err != nil {
		return Selection{}, fmt.Errorf("%w: %q is not an integer", ErrSyntax, f[0])
	}
	return Selection{ResSeq: n, Name: f[1]}, nil
}

// Checker validates selections, optionally against a structure.
type Checker struct {
	Counter Counter // nil if there is no structure to look at
}

// Check says if value is acceptable. An empty value is fine, since it
// means nothing has been selected. A syntax error gives false and the
// reason.
func (c Checker) Check(value string) (bool, error) {
	if strings.TrimSpace(value) == "" {
		return true, nil
	}
	sel, err := Parse(value)
	if err != nil {
		return false, err
	}
	if c.Counter == nil {
		return true, nil
	}
	return c.Counter.CountAtoms(sel.ResSeq, sel.Name) == 1, nil
}

// Tooltip is the message to show when Check fails.
func (c Checker) Tooltip(value string) string {
	return fmt.Sprintf("Selection %s has zero or more than one atom.", value)
}
