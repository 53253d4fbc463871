package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// Paths of the support files under the manager root
var (
	SettingsFile = filepath.Join("libexec", "pyenv.toml")
	MessagesFile = filepath.Join("libexec", "libs", "messages.toml")
)

// Settings is libexec/pyenv.toml
type Settings struct {
	// VersionFile is the per-directory pin file name
	VersionFile string `toml:"version_file"`
	// GlobalFile is the global pin file name, relative to the manager root
	GlobalFile string `toml:"global_file"`
	// VersionEnv is the session override variable
	VersionEnv string `toml:"version_env"`
	// ExampleVersion is suggested in hints when nothing is configured
	ExampleVersion string `toml:"example_version"`
	// LineEnding joins the lines of multi-line messages
	LineEnding string `toml:"line_ending"`

	Messages Messages `toml:"-"`
}

// Messages is libexec/libs/messages.toml. Each message is a list of lines
// that may contain one %s verb.
type Messages struct {
	NoGlobalLines     []string `toml:"no_global"`
	NotInstalledLines []string `toml:"not_installed"`
	NoLocalLines      []string `toml:"no_local"`
	NoShellLines      []string `toml:"no_shell"`

	lineEnding string
}

// DefaultSettings returns the settings used when libexec files are absent.
func DefaultSettings() *Settings {
	return &Settings{
		VersionFile:    ".python-version",
		GlobalFile:     "version",
		VersionEnv:     "PYENV_VERSION",
		ExampleVersion: "3.7.2",
		LineEnding:     "\r\n",
		Messages:       defaultMessages(),
	}
}

func defaultMessages() Messages {
	return Messages{
		NoGlobalLines: []string{
			"No global python version has been set yet. Please set the global version by typing:",
			"pyenv global %s",
		},
		NotInstalledLines: []string{
			"pyenv specific python requisite didn't meet. Project is using different version of python.",
			"Install python '%[1]s' by typing: 'pyenv install %[1]s'",
		},
		NoLocalLines: []string{"no local version configured for this directory"},
		NoShellLines: []string{"no shell-specific version configured"},
		lineEnding:   "\r\n",
	}
}

// LoadSettings reads the settings and messages files under root. Missing
// files fall back to defaults; fields absent from a file keep their default.
func LoadSettings(root string) (*Settings, error) {
	settings := DefaultSettings()

	if err := decodeIfExists(filepath.Join(root, SettingsFile), settings); err != nil {
		return nil, err
	}
	if err := decodeIfExists(filepath.Join(root, MessagesFile), &settings.Messages); err != nil {
		return nil, err
	}

	settings.Messages.lineEnding = settings.LineEnding
	return settings, nil
}

func decodeIfExists(path string, v interface{}) error {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if _, err := toml.DecodeFile(path, v); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return nil
}

// GlobalPath returns the global pin file for root.
func (s *Settings) GlobalPath(root string) string {
	return filepath.Join(root, s.GlobalFile)
}

// NoGlobal renders the hint shown when no version is configured at all.
func (m Messages) NoGlobal(example string) string {
	return m.render(m.NoGlobalLines, example)
}

// NotInstalled renders the hint for a selected but missing version.
func (m Messages) NotInstalled(version string) string {
	return m.render(m.NotInstalledLines, version)
}

// NoLocal renders the error for a directory without a pin.
func (m Messages) NoLocal() string {
	return m.render(m.NoLocalLines, "")
}

// NoShell renders the error for a session without an override.
func (m Messages) NoShell() string {
	return m.render(m.NoShellLines, "")
}

func (m Messages) render(lines []string, arg string) string {
	sep := m.lineEnding
	if sep == "" {
		sep = "\n"
	}
	text := strings.Join(lines, sep)
	if strings.Contains(text, "%") {
		text = fmt.Sprintf(text, arg)
	}
	return text
}
