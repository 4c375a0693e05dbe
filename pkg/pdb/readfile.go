package pdb

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/andrew-torda/pdbcols/pkg/zwrap"
	"github.com/edsrzf/mmap-go"
)

// Readfile reads a file, which may be gzipped. If fname is "", we
// read from standard input. An uncompressed file is memory mapped
// rather than read through a buffer.
func Readfile(fname string) (*Pdb, error) {
	if fname == "" {
		return New(os.Stdin, nil)
	}
	fp, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	zr, err := zwrap.WrapMaybe(fp)
	if err != nil {
		fp.Close()
		return nil, fmt.Errorf("reading %s: %w", fname, err)
	}
	defer zr.Close()

	var rdr io.Reader = zr
	if !zr.Gzipped() {
		mm, err := mapped(fp)
		if err != nil {
			return nil, fmt.Errorf("mapping %s: %w", fname, err)
		}
		if mm != nil {
			defer mm.Unmap()
		}
		rdr = bytes.NewReader(mm)
	}
	p, err := New(rdr, nil)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fname, err)
	}
	return p, nil
}

// mapped maps a plain file read-only. Strings in atoms are copied out
// of the mapping, so it can be unmapped once the Pdb is built.
// A zero length file cannot be mapped, so we return nil.
func mapped(fp *os.File) (mmap.MMap, error) {
	fi, err := fp.Stat()
	if err != nil {
		return nil, err
	}
	if fi.IsDir() {
		return nil, errors.New("is a directory")
	}
	if fi.Size() == 0 {
		return nil, nil
	}
	return mmap.Map(fp, mmap.RDONLY, 0)
}

// WriteToF writes the atoms of p to the file fname. If fname is "",
// we write to standard output.
func WriteToF(fname string, p *Pdb) error {
	if fname == "" {
		return p.Write(os.Stdout)
	}
	fp, err := os.Create(fname)
	if err != nil {
		return fmt.Errorf("Creating output pdb file: %w", err)
	}
	if err := p.Write(fp); err != nil {
		fp.Close()
		return err
	}
	return fp.Close()
}
