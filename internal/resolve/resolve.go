// Package resolve decides which Python version is active and where its
// executables live.
//
// Precedence, highest first:
//
//  1. the session override environment variable (PYENV_VERSION)
//  2. the nearest .python-version walking up from the working directory
//  3. the global version file under the manager root
//
// Names are returned as written; whether the version is installed is a
// separate question answered by IsInstalled.
package resolve

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/happycollision/pyenv/internal/config"
	"github.com/happycollision/pyenv/internal/semver"
)

var (
	// ErrNoVersion is returned when no layer selects a version
	ErrNoVersion = errors.New("no version configured")
	// ErrNotInstalled is returned when the selected version has no install directory
	ErrNotInstalled = errors.New("version is not installed")
	// ErrCommandNotFound is returned by Which when no executable matches
	ErrCommandNotFound = errors.New("command not found")
)

// Origin says which layer selected a version
type Origin int

const (
	OriginShell Origin = iota + 1
	OriginLocal
	OriginGlobal
)

func (o Origin) String() string {
	switch o {
	case OriginShell:
		return "shell"
	case OriginLocal:
		return "local"
	case OriginGlobal:
		return "global"
	default:
		return "unknown"
	}
}

// Selection is a resolved version and where it came from
type Selection struct {
	Version string
	Origin  Origin
	// Source is the pin file path, or the variable name for OriginShell
	Source string
}

// Describe renders the "(set by ...)" suffix used by `pyenv version`.
func (s *Selection) Describe() string {
	if s.Origin == OriginShell {
		return fmt.Sprintf("set by %s environment variable", s.Source)
	}
	return fmt.Sprintf("set by %s", s.Source)
}

// Resolver answers version questions for one manager root
type Resolver struct {
	Root     string
	Settings *config.Settings
	Logger   *zap.Logger

	// Getenv and Getwd default to the os package
	Getenv func(string) string
	Getwd  func() (string, error)
}

// New returns a resolver for root using the os environment.
func New(root string, settings *config.Settings, logger *zap.Logger) *Resolver {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Resolver{
		Root:     root,
		Settings: settings,
		Logger:   logger,
		Getenv:   os.Getenv,
		Getwd:    os.Getwd,
	}
}

// Current returns the active selection, or ErrNoVersion.
func (r *Resolver) Current() (*Selection, error) {
	if sel := r.Shell(); sel != nil {
		r.log(sel)
		return sel, nil
	}

	sel, err := r.Local()
	if err != nil && !errors.Is(err, ErrNoVersion) {
		return nil, err
	}
	if sel != nil {
		r.log(sel)
		return sel, nil
	}

	sel, err = r.Global()
	if err != nil {
		if errors.Is(err, ErrNoVersion) {
			r.Logger.Debug("no version configured", zap.String("root", r.Root))
		}
		return nil, err
	}
	r.log(sel)
	return sel, nil
}

// Shell returns the session override, or nil when unset or blank.
func (r *Resolver) Shell() *Selection {
	name := r.Settings.VersionEnv
	value := strings.TrimSpace(r.Getenv(name))
	if value == "" {
		return nil
	}
	return &Selection{Version: value, Origin: OriginShell, Source: name}
}

// Local returns the nearest directory pin, or ErrNoVersion.
func (r *Resolver) Local() (*Selection, error) {
	cwd, err := r.Getwd()
	if err != nil {
		return nil, fmt.Errorf("cannot get working directory: %w", err)
	}

	path, err := config.FindVersionFile(cwd, r.Settings.VersionFile)
	if err != nil {
		return nil, err
	}
	if path == "" {
		return nil, ErrNoVersion
	}
	return r.fromFile(path, OriginLocal)
}

// Global returns the global pin, or ErrNoVersion.
func (r *Resolver) Global() (*Selection, error) {
	path := r.Settings.GlobalPath(r.Root)
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil, ErrNoVersion
	}
	return r.fromFile(path, OriginGlobal)
}

func (r *Resolver) fromFile(path string, origin Origin) (*Selection, error) {
	version, err := config.ReadVersionFile(path)
	if errors.Is(err, config.ErrEmptyVersionFile) {
		r.Logger.Debug("ignoring empty version file", zap.String("path", path))
		return nil, ErrNoVersion
	}
	if err != nil {
		return nil, err
	}
	return &Selection{Version: version, Origin: origin, Source: path}, nil
}

func (r *Resolver) log(sel *Selection) {
	r.Logger.Debug("resolved version",
		zap.String("version", sel.Version),
		zap.Stringer("origin", sel.Origin),
		zap.String("source", sel.Source))
}

// IsInstalled reports whether versions/<version> is a directory.
func (r *Resolver) IsInstalled(version string) bool {
	if version == "" || strings.ContainsAny(version, `/\`) {
		return false
	}
	info, err := os.Stat(config.VersionDir(r.Root, version))
	return err == nil && info.IsDir()
}

// Installed lists installed versions in ascending order. Names that do not
// parse sort after the parsed ones, alphabetically.
func (r *Resolver) Installed() ([]string, error) {
	entries, err := os.ReadDir(config.VersionsDir(r.Root))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("failed to read versions directory: %w", err)
	}

	versions := []string{}
	for _, entry := range entries {
		if entry.IsDir() {
			versions = append(versions, entry.Name())
		}
	}

	sort.SliceStable(versions, func(i, j int) bool {
		return lessVersion(versions[i], versions[j])
	})
	return versions, nil
}

func lessVersion(a, b string) bool {
	va, errA := semver.Parse(a)
	vb, errB := semver.Parse(b)
	switch {
	case errA == nil && errB == nil:
		if c := semver.Compare(va, vb); c != 0 {
			return c < 0
		}
		return a < b
	case errA == nil:
		return true
	case errB == nil:
		return false
	default:
		return a < b
	}
}

// Which returns the path of command inside an installed version, looking in
// the version directory first and then in its Scripts directory.
func (r *Resolver) Which(version, command string) (string, error) {
	if !r.IsInstalled(version) {
		return "", fmt.Errorf("%w: %s", ErrNotInstalled, version)
	}

	if command == "" || strings.ContainsAny(command, `/\`) {
		return "", fmt.Errorf("%w: %s", ErrCommandNotFound, command)
	}

	names := []string{command}
	if exe := semver.ExeName(command); exe != command {
		names = append(names, exe)
	}

	for _, dir := range []string{config.VersionDir(r.Root, version), config.ScriptsDir(r.Root, version)} {
		for _, name := range names {
			path := filepath.Join(dir, name)
			if info, err := os.Stat(path); err == nil && !info.IsDir() {
				return path, nil
			}
		}
	}
	return "", fmt.Errorf("%w: %s", ErrCommandNotFound, command)
}
