// 19 Oct 2026
// Reading and writing single ATOM/HETATM records.
// Columns follow the wwPDB format description, version 3.3,
// http://www.wwpdb.org/documentation/file-format-content/format33/sect9.html
// Columns below are indexed from zero and the end is exclusive, so
// the serial number in columns 7-11 of the documentation is [6, 11).

package pdb

import (
	"fmt"
	"strconv"
	"strings"
)

// Atom is one ATOM or HETATM record.
type Atom struct {
	Record     string // "ATOM" or "HETATM"
	Serial     int
	Name       string
	AltLoc     string
	ResName    string
	ChainID    string
	ResSeq     int
	ICode      string // Insertion code
	X, Y, Z    float64
	Occupancy  float64
	TempFactor float64
	Element    string
	Charge     string
	Extras     string // everything after column 80, including the newline
}

// colRange is a field in a fixed width line. end < 0 means the rest
// of the line.
type colRange struct {
	start, end int
	name       string
}

var (
	recordCol  = colRange{0, 6, "record"}
	serialCol  = colRange{6, 11, "serial"}
	nameCol    = colRange{12, 16, "name"}
	altLocCol  = colRange{16, 17, "altLoc"}
	resNameCol = colRange{17, 20, "resName"}
	chainCol   = colRange{21, 22, "chainID"}
	resSeqCol  = colRange{22, 26, "resSeq"}
	iCodeCol   = colRange{26, 27, "iCode"}
	xCol       = colRange{30, 38, "x"}
	yCol       = colRange{38, 46, "y"}
	zCol       = colRange{46, 54, "z"}
	occCol     = colRange{54, 60, "occupancy"}
	tempCol    = colRange{60, 66, "tempFactor"}
	elemCol    = colRange{76, 78, "element"}
	chargeCol  = colRange{78, 80, "charge"}
	extrasCol  = colRange{80, -1, "extras"}
)

// raw returns the text of a column. Anything past the end of a short
// line reads as empty.
func (c colRange) raw(line string) string {
	if c.start >= len(line) {
		return ""
	}
	end := c.end
	if end < 0 || end > len(line) {
		end = len(line)
	}
	return line[c.start:end]
}

func (c colRange) str(line string) string { return strings.TrimSpace(c.raw(line)) }

func (c colRange) asInt(line string) (int, error) {
	s := c.raw(line)
	i, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, &NumError{Field: c.name, Start: c.start, End: c.end, Raw: s,
			Kind: BadInt, Line: line, Err: err}
	}
	return i, nil
}

func (c colRange) asFloat(line string) (float64, error) {
	s := c.raw(line)
	x, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, &NumError{Field: c.name, Start: c.start, End: c.end, Raw: s,
			Kind: BadFloat, Line: line, Err: err}
	}
	return x, nil
}

// IsAtomLine says if a line is an ATOM or HETATM record. The tag may
// be anywhere in the first six characters.
func IsAtomLine(line string) bool {
	s := recordCol.raw(line)
	return strings.Contains(s, "ATOM") || strings.Contains(s, "HETATM")
}

// ParseAtom breaks a line into the fields of an Atom. If any numeric
// field is broken, it returns a *NumError and an empty Atom.
func ParseAtom(line string) (Atom, error) {
	a := Atom{
		Record:  recordCol.str(line),
		Name:    nameCol.str(line),
		AltLoc:  altLocCol.str(line),
		ResName: resNameCol.str(line),
		ChainID: chainCol.str(line),
		ICode:   iCodeCol.str(line),
		Element: elemCol.str(line),
		Charge:  chargeCol.str(line),
		Extras:  extrasCol.raw(line),
	}
	var err error
	if a.Serial, err = serialCol.asInt(line); err != nil {
		return Atom{}, err
	}
	if a.ResSeq, err = resSeqCol.asInt(line); err != nil {
		return Atom{}, err
	}
	floats := []struct {
		c   colRange
		dst *float64
	}{
		{xCol, &a.X}, {yCol, &a.Y}, {zCol, &a.Z},
		{occCol, &a.Occupancy}, {tempCol, &a.TempFactor},
	}
	for _, f := range floats {
		if *f.dst, err = f.c.asFloat(line); err != nil {
			return Atom{}, err
		}
	}
	return a, nil
}

// atomFmt is everything except the atom name, which has its own rules.
const (
	atomFmtHead = "%-6s%5d "
	atomFmtTail = "%-1s%3s %-1s%4d%-1s   %8.3f%8.3f%8.3f%6.2f%6.2f          %2s%2s%s"
)

// fmtName lines up atom names the way the PDB does. Four letter names
// such as HG21 start in column 13 and touch the residue name. Shorter
// names start one column later, so " CA ".
func fmtName(name string) string {
	if len(name) > 2 {
		return fmt.Sprintf("%4s", name)
	}
	return fmt.Sprintf(" %-3s", name)
}

// Format returns the atom as a fixed column line. No newline is added.
// Extras go on the end untouched, so a line that came from a file
// brings its own newline with it.
func (a Atom) Format() string {
	return fmt.Sprintf(atomFmtHead, a.Record, a.Serial) + fmtName(a.Name) +
		fmt.Sprintf(atomFmtTail, a.AltLoc, a.ResName, a.ChainID, a.ResSeq, a.ICode,
			a.X, a.Y, a.Z, a.Occupancy, a.TempFactor, a.Element, a.Charge, a.Extras)
}

// FormatAtom is Format as a plain function.
func FormatAtom(a Atom) string { return a.Format() }

// String is used when printing atoms for debugging.
func (a Atom) String() string { return strings.TrimRight(a.Format(), "\r\n") }
