package testutil

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"

	_ "github.com/happycollision/pyenv/internal/testsafety"
)

// fakeEntry is a stand-in for bin/pyenv used by the harness's own tests.
// It echoes its arguments one per line, wraps the output in the noise a
// real terminal adds, and has a few special commands.
const fakeEntry = `#!/bin/sh
case "$1" in
  args)
    shift
    for a in "$@"; do printf '%s\n' "$a"; done
    ;;
  noisy)
    printf '\f\r\nline one\r\nline two\r\n\f'
    ;;
  warn)
    echo "some diagnostic" >&2
    echo "ok"
    ;;
  fail)
    echo "bad"
    exit 3
    ;;
  hang)
    sleep 30
    ;;
  pwd)
    pwd -P
    ;;
  env)
    printenv "$2"
    ;;
  *)
    echo "fake pyenv"
    ;;
esac
`

func requirePOSIXShell(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("fake entry point is a POSIX shell script")
	}
}

// writeFakeTemplate lays out TemplateFiles with the fake entry point.
func writeFakeTemplate(t *testing.T) string {
	t.Helper()
	requirePOSIXShell(t)

	dir := t.TempDir()
	for _, file := range TemplateFiles {
		path := filepath.Join(dir, file)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		content, mode := "# "+file+"\n", os.FileMode(0644)
		if file == EntryPoint {
			content, mode = fakeEntry, 0755
		}
		require.NoError(t, os.WriteFile(path, []byte(content), mode))
	}
	return dir
}

// writeFakeEntry writes only the entry point script and returns its path.
func writeFakeEntry(t *testing.T) string {
	t.Helper()
	requirePOSIXShell(t)

	path := filepath.Join(t.TempDir(), "pyenv")
	require.NoError(t, os.WriteFile(path, []byte(fakeEntry), 0755))
	return path
}
