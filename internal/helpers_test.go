package internal

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	_ "github.com/happycollision/pyenv/internal/testsafety"

	"github.com/happycollision/pyenv/internal/testutil"
)

func mkdirAll(t *testing.T, parts ...string) string {
	t.Helper()
	dir := filepath.Join(parts...)
	require.NoError(t, os.MkdirAll(dir, 0755))
	return dir
}

// withDir nests a working-directory change inside a scenario.
func withDir(t *testing.T, dir string, fn func()) {
	t.Helper()
	require.NoError(t, testutil.WithWorkingDir(dir, fn))
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}
