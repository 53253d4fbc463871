package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// RootEnv names the environment variable that overrides the manager root
const RootEnv = "PYENV_ROOT"

// Root returns the manager root directory.
//
// PYENV_ROOT wins when set. Otherwise the root is derived from the running
// executable, which lives in <root>/bin, so a copied install always resolves
// to its own tree.
func Root() (string, error) {
	if value := os.Getenv(RootEnv); value != "" {
		return validateRootPath(value)
	}

	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("cannot locate executable: %w", err)
	}
	exe, err = filepath.EvalSymlinks(exe)
	if err != nil {
		return "", fmt.Errorf("cannot resolve executable: %w", err)
	}
	return RootFromExecutable(exe), nil
}

// RootFromExecutable maps <root>/bin/pyenv to <root>.
func RootFromExecutable(exe string) string {
	return filepath.Dir(filepath.Dir(exe))
}

func validateRootPath(value string) (string, error) {
	if strings.Contains(value, "\x00") {
		return "", fmt.Errorf("null byte in %s: suspicious input", RootEnv)
	}

	abs, err := filepath.Abs(filepath.Clean(value))
	if err != nil {
		return "", fmt.Errorf("cannot resolve %s: %w", RootEnv, err)
	}

	info, err := os.Stat(abs)
	if err != nil {
		return "", fmt.Errorf("%s does not exist: %w", RootEnv, err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("%s is not a directory: %s", RootEnv, abs)
	}
	return abs, nil
}

// VersionsDir returns <root>/versions.
func VersionsDir(root string) string {
	return filepath.Join(root, "versions")
}

// VersionDir returns the install directory of one version.
func VersionDir(root, version string) string {
	return filepath.Join(VersionsDir(root), version)
}

// ScriptsDir returns the package-manager directory of one version.
func ScriptsDir(root, version string) string {
	return filepath.Join(VersionDir(root, version), "Scripts")
}
