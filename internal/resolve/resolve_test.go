package resolve

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/happycollision/pyenv/internal/config"
	"github.com/happycollision/pyenv/internal/semver"
	_ "github.com/happycollision/pyenv/internal/testsafety"
)

type layout struct {
	root    string
	project string
	env     map[string]string
}

func newLayout(t *testing.T) *layout {
	t.Helper()
	tmp := t.TempDir()
	l := &layout{
		root:    filepath.Join(tmp, "pyenv"),
		project: filepath.Join(tmp, "local"),
		env:     map[string]string{},
	}
	require.NoError(t, os.MkdirAll(config.VersionsDir(l.root), 0755))
	require.NoError(t, os.MkdirAll(l.project, 0755))
	return l
}

func (l *layout) resolver(t *testing.T) *Resolver {
	r := New(l.root, config.DefaultSettings(), zaptest.NewLogger(t))
	r.Getenv = func(k string) string { return l.env[k] }
	r.Getwd = func() (string, error) { return l.project, nil }
	return r
}

func (l *layout) install(t *testing.T, version string) {
	t.Helper()
	v := semver.MustParse(version)
	scripts := config.ScriptsDir(l.root, version)
	require.NoError(t, os.MkdirAll(scripts, 0755))
	for _, name := range v.InterpreterNames() {
		require.NoError(t, os.WriteFile(filepath.Join(config.VersionDir(l.root, version), name), nil, 0755))
	}
	for _, name := range v.ScriptNames() {
		require.NoError(t, os.WriteFile(filepath.Join(scripts, name), nil, 0755))
	}
}

func TestCurrent_NothingConfigured(t *testing.T) {
	l := newLayout(t)

	_, err := l.resolver(t).Current()
	assert.ErrorIs(t, err, ErrNoVersion)
}

func TestCurrent_Precedence(t *testing.T) {
	tests := []struct {
		name       string
		global     string
		local      string
		shell      string
		want       string
		wantOrigin Origin
	}{
		{name: "global only", global: "3.7.2", want: "3.7.2", wantOrigin: OriginGlobal},
		{name: "local beats global", global: "3.7.2", local: "3.9.1", want: "3.9.1", wantOrigin: OriginLocal},
		{name: "shell beats both", global: "3.7.5", local: "3.8.6", shell: "3.9.2", want: "3.9.2", wantOrigin: OriginShell},
		{name: "local without global", local: "3.8.6", want: "3.8.6", wantOrigin: OriginLocal},
		{name: "blank shell ignored", global: "3.7.2", shell: "  ", want: "3.7.2", wantOrigin: OriginGlobal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := newLayout(t)
			if tt.global != "" {
				require.NoError(t, config.WriteVersionFile(filepath.Join(l.root, "version"), tt.global))
			}
			if tt.local != "" {
				require.NoError(t, config.WriteVersionFile(filepath.Join(l.project, ".python-version"), tt.local))
			}
			if tt.shell != "" {
				l.env["PYENV_VERSION"] = tt.shell
			}

			sel, err := l.resolver(t).Current()
			require.NoError(t, err)
			assert.Equal(t, tt.want, sel.Version)
			assert.Equal(t, tt.wantOrigin, sel.Origin)
		})
	}
}

func TestCurrent_EmptyLocalFallsThrough(t *testing.T) {
	l := newLayout(t)
	require.NoError(t, config.WriteVersionFile(filepath.Join(l.root, "version"), "3.7.2"))
	require.NoError(t, os.WriteFile(filepath.Join(l.project, ".python-version"), []byte("\n"), 0644))

	sel, err := l.resolver(t).Current()
	require.NoError(t, err)
	assert.Equal(t, "3.7.2", sel.Version)
}

func TestSelection_Describe(t *testing.T) {
	shell := &Selection{Version: "3.9.2", Origin: OriginShell, Source: "PYENV_VERSION"}
	assert.Equal(t, "set by PYENV_VERSION environment variable", shell.Describe())

	global := &Selection{Version: "3.7.2", Origin: OriginGlobal, Source: "/opt/pyenv/version"}
	assert.Equal(t, "set by /opt/pyenv/version", global.Describe())
}

func TestInstalled_SortedAscending(t *testing.T) {
	l := newLayout(t)
	for _, v := range []string{"3.10.1", "3.7.2", "3.9.1", "2.7.18"} {
		l.install(t, v)
	}
	require.NoError(t, os.MkdirAll(config.VersionDir(l.root, "pypy3"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(config.VersionsDir(l.root), "README"), nil, 0644))

	got, err := l.resolver(t).Installed()
	require.NoError(t, err)
	assert.Equal(t, []string{"2.7.18", "3.7.2", "3.9.1", "3.10.1", "pypy3"}, got)
}

func TestInstalled_NoVersionsDir(t *testing.T) {
	r := New(t.TempDir(), config.DefaultSettings(), nil)

	got, err := r.Installed()
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestIsInstalled(t *testing.T) {
	l := newLayout(t)
	l.install(t, "3.9.1")
	r := l.resolver(t)

	assert.True(t, r.IsInstalled("3.9.1"))
	assert.False(t, r.IsInstalled("3.9.2"))
	assert.False(t, r.IsInstalled(""))
	assert.False(t, r.IsInstalled("../versions"))
}

func TestWhich(t *testing.T) {
	l := newLayout(t)
	l.install(t, "3.9.1")
	r := l.resolver(t)

	path, err := r.Which("3.9.1", "python39")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(config.VersionDir(l.root, "3.9.1"), semver.ExeName("python39")), path)

	path, err = r.Which("3.9.1", "easy_install-3.9")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(config.ScriptsDir(l.root, "3.9.1"), semver.ExeName("easy_install-3.9")), path)

	_, err = r.Which("3.9.1", "ruby")
	assert.ErrorIs(t, err, ErrCommandNotFound)

	_, err = r.Which("3.9.1", "../../bin/pyenv")
	assert.ErrorIs(t, err, ErrCommandNotFound)

	_, err = r.Which("3.8.0", "python")
	assert.ErrorIs(t, err, ErrNotInstalled)
}
