package zwrap_test

import (
	"bytes"
	"compress/gzip"
	"io"
	"os"
	"testing"

	"github.com/andrew-torda/pdbcols/pkg/zwrap"
)

const content = "ATOM      1  N   ALA A   1      11.104   6.134  -6.504  1.00  0.00           N\n"

func gzipped(t *testing.T, s string) []byte {
	var b bytes.Buffer
	zw := gzip.NewWriter(&b)
	if _, err := io.WriteString(zw, s); err != nil {
		t.Fatal(err)
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	return b.Bytes()
}

// writeToTmp writes data to a temporary file and returns it, rewound.
func writeToTmp(t *testing.T, data []byte) *os.File {
	tmpf, err := os.CreateTemp(t.TempDir(), "del_me_testing")
	if err != nil {
		t.Fatal("Fail getting TempFile", err)
	}
	if _, err := tmpf.Write(data); err != nil {
		t.Fatal("fail writing to tempfile", err)
	}
	if _, err := tmpf.Seek(0, io.SeekStart); err != nil {
		t.Fatal("Seek fail on", tmpf.Name())
	}
	return tmpf
}

func TestWrap(t *testing.T) {
	tmpf := writeToTmp(t, gzipped(t, content))
	r, err := zwrap.Wrap(tmpf)
	if err != nil {
		t.Fatal("Fail on correctly gzipped file", err)
	}
	got, err := io.ReadAll(r)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != content {
		t.Errorf("wrong string: %q", got)
	}
	if err := r.Close(); err != nil {
		t.Errorf("Error closing: %s", err)
	}
}

func TestWrapNotGzipped(t *testing.T) {
	tmpf := writeToTmp(t, []byte(content))
	defer tmpf.Close()
	if _, err := zwrap.Wrap(tmpf); err == nil {
		t.Fatal("Wrap should fail on a plain file")
	}
}

// WrapMaybe should not fail since it guesses if the file is compressed.
func TestWrapMaybe(t *testing.T) {
	for _, tc := range []struct {
		data    []byte
		gzipped bool
	}{
		{gzipped(t, content), true},
		{[]byte(content), false},
	} {
		tmpf := writeToTmp(t, tc.data)
		r, err := zwrap.WrapMaybe(tmpf)
		if err != nil {
			t.Fatalf("Fail on file where compressed was %v: %v", tc.gzipped, err)
		}
		if r.Gzipped() != tc.gzipped {
			t.Errorf("Gzipped() %v wanted %v", r.Gzipped(), tc.gzipped)
		}
		got, err := io.ReadAll(r)
		if err != nil {
			t.Fatal(err)
		}
		if string(got) != content {
			t.Errorf("compressed %v got %q", tc.gzipped, got)
		}
		if err := r.Close(); err != nil {
			t.Errorf("Error closing: %s", err)
		}
	}
}
