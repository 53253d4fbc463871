package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "github.com/happycollision/pyenv/internal/testsafety"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestLoadSettings_Defaults(t *testing.T) {
	settings, err := LoadSettings(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, ".python-version", settings.VersionFile)
	assert.Equal(t, "PYENV_VERSION", settings.VersionEnv)
	assert.Equal(t,
		"No global python version has been set yet. Please set the global version by typing:\r\npyenv global 3.7.2",
		settings.Messages.NoGlobal(settings.ExampleVersion))
}

func TestLoadSettings_FromFiles(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, SettingsFile), `
version_file = ".pinned"
example_version = "3.12.0"
line_ending = "\n"
`)
	writeFile(t, filepath.Join(root, MessagesFile), `
no_global = ["nothing set", "try: pyenv global %s"]
`)

	settings, err := LoadSettings(root)
	require.NoError(t, err)

	assert.Equal(t, ".pinned", settings.VersionFile)
	assert.Equal(t, "version", settings.GlobalFile, "unset keys keep defaults")
	assert.Equal(t, "nothing set\ntry: pyenv global 3.12.0", settings.Messages.NoGlobal(settings.ExampleVersion))
	assert.Contains(t, settings.Messages.NotInstalled("3.9.1"), "'pyenv install 3.9.1'")
}

func TestLoadSettings_Malformed(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, SettingsFile), "version_file = [")

	_, err := LoadSettings(root)
	assert.Error(t, err)
}

func TestMessages_NotInstalled(t *testing.T) {
	msgs := DefaultSettings().Messages
	assert.Equal(t,
		"pyenv specific python requisite didn't meet. Project is using different version of python.\r\n"+
			"Install python '3.8.6' by typing: 'pyenv install 3.8.6'",
		msgs.NotInstalled("3.8.6"))
}

func TestRootFromExecutable(t *testing.T) {
	exe := filepath.Join("opt", "pyenv", "bin", "pyenv")
	assert.Equal(t, filepath.Join("opt", "pyenv"), RootFromExecutable(exe))
}

func TestRoot_EnvOverride(t *testing.T) {
	root := t.TempDir()
	t.Setenv(RootEnv, root)

	got, err := Root()
	require.NoError(t, err)
	assert.Equal(t, root, got)
}

func TestRoot_EnvOverrideMissing(t *testing.T) {
	t.Setenv(RootEnv, filepath.Join(t.TempDir(), "missing"))

	_, err := Root()
	assert.Error(t, err)
}
