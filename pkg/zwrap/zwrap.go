// Package zwrap wraps a file or http body so that gzipped data is
// decompressed on the fly. Closing the wrapper closes the decompressor
// and then whatever was underneath.
package zwrap

import (
	"compress/gzip"
	"errors"
	"io"
)

// Reader reads through a gzip.Reader if the source was compressed,
// otherwise straight from the source.
type Reader struct {
	src  io.ReadCloser
	zrdr *gzip.Reader // nil if src is not compressed
}

// Close closes the decompressor, if there is one, then the source.
func (r *Reader) Close() error {
	if r.zrdr == nil {
		return r.src.Close()
	}
	return errors.Join(r.zrdr.Close(), r.src.Close())
}

func (r *Reader) Read(p []byte) (int, error) {
	if r.zrdr != nil {
		return r.zrdr.Read(p)
	}
	return r.src.Read(p)
}

// Gzipped says if we are decompressing.
func (r *Reader) Gzipped() bool { return r.zrdr != nil }

// Wrap insists that src is gzipped. It works for files or http bodies.
func Wrap(src io.ReadCloser) (*Reader, error) {
	zrdr, err := gzip.NewReader(src)
	if err != nil {
		return nil, err
	}
	return &Reader{src: src, zrdr: zrdr}, nil
}

// ReadSeekCloser is a file, or something that can rewind like one.
type ReadSeekCloser interface {
	io.Reader
	io.Seeker
	io.Closer
}

// WrapMaybe looks at the start of src to decide if it is compressed.
// If it is not, src is rewound and read as it is. The result can no
// longer seek.
func WrapMaybe(src ReadSeekCloser) (*Reader, error) {
	if r, err := Wrap(src); err == nil {
		return r, nil
	}
	if _, err := src.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}
	return &Reader{src: src}, nil
}
