package testutil

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

// Runner builds a fresh install per scenario and runs assertions against it
type Runner struct {
	// TemplateDir holds TemplateFiles
	TemplateDir string
	// TempDir is where scenario roots are allocated; empty means os.TempDir
	TempDir string
	// Timeout bounds each invocation; zero means DefaultTimeout
	Timeout time.Duration
	// NewInvoker binds an Invoker to the fixture's entry point; nil means ExecInvoker
	NewInvoker func(entry string) Invoker
}

// NewRunner returns a Runner copying support files from templateDir.
func NewRunner(templateDir string) *Runner {
	return &Runner{TemplateDir: templateDir}
}

// Run runs one scenario against the shared template, building it on first
// use. See Runner.Run.
func Run(t testing.TB, settings Settings, commands func(*Context)) {
	t.Helper()

	dir, err := TemplateDir()
	if err != nil {
		t.Fatalf("%+v", err)
	}
	NewRunner(dir).Run(t, settings, commands)
}

// Run builds the fixture described by settings in a new temporary root,
// enters the project root and calls commands. The temporary root is removed
// whatever happens; setup errors are fatal and skip commands.
//
// Session overrides are the caller's business: wrap Run in WithEnv.
func (r *Runner) Run(t testing.TB, settings Settings, commands func(*Context)) {
	t.Helper()
	if err := r.run(t, settings, commands); err != nil {
		t.Fatalf("%+v", err)
	}
}

func (r *Runner) run(t testing.TB, settings Settings, commands func(*Context)) error {
	tmp, err := os.MkdirTemp(r.TempDir, "pyenv-scenario-*")
	if err != nil {
		return setupError(err, "create scenario root")
	}
	defer os.RemoveAll(tmp)

	// The manager sees the resolved cwd; keep the roots comparable with it
	tmp, err = filepath.EvalSymlinks(tmp)
	if err != nil {
		return setupError(err, "resolve scenario root")
	}

	settings.ManagerRoot = filepath.Join(tmp, "pyenv")
	settings.ProjectRoot = filepath.Join(tmp, "local")
	for _, dir := range []string{settings.ManagerRoot, settings.ProjectRoot} {
		if err := os.Mkdir(dir, 0755); err != nil {
			return setupError(err, "create %s", dir)
		}
	}

	if err := NewBuilder(r.TemplateDir).Build(settings); err != nil {
		return err
	}

	ctx := newContext(t, r.invoker(filepath.Join(settings.ManagerRoot, EntryPoint)), r.timeout(), settings)
	return WithWorkingDir(settings.ProjectRoot, func() {
		commands(ctx)
	})
}

func (r *Runner) invoker(entry string) Invoker {
	if r.NewInvoker != nil {
		return r.NewInvoker(entry)
	}
	return &ExecInvoker{Entry: entry}
}

func (r *Runner) timeout() time.Duration {
	if r.Timeout > 0 {
		return r.Timeout
	}
	return DefaultTimeout
}
