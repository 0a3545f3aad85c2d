// Package testutil holds helpers shared by package tests
package testutil

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/ayoisaiah/tally/internal/osutil"
)

const fixtureDir = "testdata"

type GoldenTest interface {
	Output() ([]byte, string)
}

// Snapshot is output compared against testdata/<Golden>.golden. A nil Data
// asserts that no golden file exists.
type Snapshot struct {
	Golden string
	Data   []byte
}

func (s Snapshot) Output() (out []byte, name string) {
	return s.Data, s.Golden
}

// CompareGoldenFile checks the output of tc against its golden file. Run the
// tests with -update to rewrite the golden files.
func CompareGoldenFile(t *testing.T, tc GoldenTest) {
	t.Helper()

	if runtime.GOOS == osutil.Windows {
		t.Skip("golden files use LF line endings")
	}

	out, name := tc.Output()

	if out == nil {
		f := filepath.Join(fixtureDir, name+".golden")
		if _, err := os.Stat(f); err == nil {
			t.Fatalf("expected no output, but golden file exists: %s", f)
		}

		return
	}

	goldie.New(t, goldie.WithFixtureDir(fixtureDir)).Assert(t, name, out)
}

// CopyFile copies a fixture to dst, failing the test on error.
func CopyFile(t *testing.T, src, dst string) {
	t.Helper()

	b, err := os.ReadFile(src)
	if err != nil {
		t.Fatalf("reading %s: %v", src, err)
	}

	err = os.WriteFile(dst, b, osutil.FilePermission)
	if err != nil {
		t.Fatalf("writing %s: %v", dst, err)
	}
}
