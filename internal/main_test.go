package internal

import (
	"os"
	"testing"

	_ "github.com/happycollision/pyenv/internal/testsafety"

	"github.com/happycollision/pyenv/internal/testutil"
)

// The suites in this package build bin/pyenv once and run it as a subprocess
// in a fresh install per scenario.
func TestMain(m *testing.M) {
	os.Exit(testutil.Main(m))
}

func skipIfShort(t *testing.T) {
	t.Helper()
	if testing.Short() {
		t.Skip("builds and runs bin/pyenv")
	}
}
