// An error type that remembers which field of which line could not be
// read as a number.
package pdb

import (
	"errors"
	"strconv"
)

// NumKind says what sort of number we were expecting.
type NumKind byte

const (
	BadInt NumKind = iota
	BadFloat
)

func (k NumKind) String() string {
	if k == BadInt {
		return "invalid integer"
	}
	return "invalid float"
}

const maxMsgLen = 70

// ErrNoInput is returned by New if it was given neither a reader nor
// a slice of atoms.
var ErrNoInput = errors.New("pdb: either a reader or atoms must be provided")

// NumError is a numeric column that does not parse. LineNum is only
// filled in when reading a whole file, so it is zero from ParseAtom.
type NumError struct {
	LineNum    int
	Field      string
	Start, End int    // Columns, counting from zero, end exclusive
	Raw        string // Text in the columns, untrimmed
	Kind       NumKind
	Line       string // The line that provoked the error
	Err        error  // from strconv
}

func firstPart(s string) string {
	l := len(s)
	if l > maxMsgLen {
		l = maxMsgLen
	}
	return s[:l]
}

// Error gives the line number if we know it, what was wrong, and the
// start of the offending line.
func (e *NumError) Error() string {
	var errmsg string
	if e.LineNum != 0 {
		errmsg = "Line: " + strconv.Itoa(e.LineNum) + " "
	}
	errmsg += e.Kind.String() + " in " + e.Field + " columns " +
		strconv.Itoa(e.Start+1) + "-" + strconv.Itoa(e.End) + ": " + strconv.Quote(e.Raw)
	if e.Line != "" {
		errmsg += "\nLine starting with\n" + firstPart(e.Line)
	}
	return errmsg
}

func (e *NumError) Unwrap() error { return e.Err }
