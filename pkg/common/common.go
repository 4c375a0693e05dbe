// 19 Oct 2026
// Package common has the bits shared by the commands and tests.

package common

import (
	"fmt"
	"io"
	"log"
	"os"
)

const (
	ExitSuccess = iota
	ExitFailure
	ExitUsageError
)

// WrtTemp writes a string to a temporary file and returns
// the filename. It is used all over the place in testing.
func WrtTemp(s string) (string, error) {
	f_tmp, err := os.CreateTemp("", "_del_me_testing")
	if err != nil {
		return "", fmt.Errorf("tempfile fail: %w", err)
	}
	defer f_tmp.Close()
	if _, err := io.WriteString(f_tmp, s); err != nil {
		return "", fmt.Errorf("writing string to temp file %v: %w", f_tmp.Name(), err)
	}
	return f_tmp.Name(), nil
}

// LogWhere decides where logged output goes. "" throws it away,
// "stdout" is standard output, anything else is a file we append to.
// The returned closer should be called when finished.
func LogWhere(outinfo string) (*log.Logger, io.Closer, error) {
	var iowriter io.Writer
	var closer io.Closer = io.NopCloser(nil)
	switch outinfo {
	case "":
		iowriter = io.Discard
	case "stdout":
		iowriter = os.Stdout
	default:
		fp, err := os.OpenFile(outinfo, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			return nil, nil, err
		}
		iowriter, closer = fp, fp
	}
	return log.New(iowriter, "", log.Lshortfile), closer, nil
}
