// Package brokenio wraps an io.ReadCloser so that reads go wrong, for
// testing readers against truncated downloads and damaged files.
//
// Typical use: reader = brokenio.NewReader(reader). Everything works as
// before, except for the failures you asked for.
// A zero length file is simulated by returning io.EOF on the first read
// with no error, which is what one often sees.
package brokenio

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
)

// ErrBroken is wrapped by every error we introduce.
var ErrBroken = errors.New("brokenio: deliberate failure")

// BrknRdrClsr is a Reader with knobs for how often it fails.
// Probabilities run from 0 to 1, so 0.05 means failure in 5 % of reads.
type BrknRdrClsr struct {
	rdrOrig      io.ReadCloser
	probZeroFile float32 // chance of looking like an empty file
	probFail     float32 // chance that a read is damaged
	fracFail     float32 // how much of a damaged read is zeroed
	failAfter    int     // fail once this many bytes have gone, if > 0
	nCalled      int
	nByte        int
}

// NewReader returns a wrapper around rIn which does not fail until
// told to.
func NewReader(rIn io.ReadCloser) *BrknRdrClsr {
	return &BrknRdrClsr{rdrOrig: rIn, fracFail: 0.5}
}

// SetProbZeroFile sets the chance the first read returns nothing.
func (r *BrknRdrClsr) SetProbZeroFile(prob float32) { r.probZeroFile = prob }

// SetProbFail sets the chance of a damaged read.
func (r *BrknRdrClsr) SetProbFail(prob float32) { r.probFail = prob }

// SetFracFail sets how much of the end of a damaged read is zeroed.
func (r *BrknRdrClsr) SetFracFail(frac float32) { r.fracFail = frac }

// SetFailAfter makes reading stop with an error after n bytes.
func (r *BrknRdrClsr) SetFailAfter(n int) { r.failAfter = n }

// NByte is the number of bytes passed through so far.
func (r *BrknRdrClsr) NByte() int { return r.nByte }

// trashSlice zeroes the last frac of p and says how much is left.
func trashSlice(p []byte, frac float32) (int, error) {
	nkeep := int(float32(len(p)) * (1. - frac))
	if nkeep == len(p) {
		return nkeep, nil
	}
	clear(p[nkeep:])
	return nkeep, fmt.Errorf("%w: wiped out last %d of %d", ErrBroken, len(p)-nkeep, len(p))
}

func (r *BrknRdrClsr) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	if r.nCalled == 0 && r.probZeroFile > 0 && rand.Float32() < r.probZeroFile {
		return 0, io.EOF
	}
	r.nCalled++
	if r.failAfter > 0 {
		left := r.failAfter - r.nByte
		if left <= 0 {
			return 0, fmt.Errorf("%w: stopped after %d bytes", ErrBroken, r.nByte)
		}
		if len(p) > left {
			p = p[:left]
		}
	}
	n, err := r.rdrOrig.Read(p)
	r.nByte += n
	if r.probFail > 0 && r.fracFail > 0 && rand.Float32() < r.probFail {
		return trashSlice(p[:n], r.fracFail)
	}
	return n, err
}

// Close closes the wrapped reader.
func (r *BrknRdrClsr) Close() error { return r.rdrOrig.Close() }
