package testutil

import (
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"sync"
	"testing"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

// TemplateEnv points at a prebuilt template directory and skips the build
const TemplateEnv = "PYENV_TEST_TEMPLATE"

var (
	templateOnce  sync.Once
	templateDir   string
	templateErr   error
	templateBuilt bool
)

// TemplateDir returns a directory holding TemplateFiles: a freshly built
// bin/pyenv and the libexec files of this module. It is built once per test
// binary; call Main from TestMain to remove it afterwards.
func TemplateDir() (string, error) {
	templateOnce.Do(func() {
		if dir := os.Getenv(TemplateEnv); dir != "" {
			templateDir = dir
			return
		}
		templateDir, templateErr = BuildTemplate("")
		templateBuilt = templateErr == nil
	})
	return templateDir, templateErr
}

// Main runs the tests and removes the shared template. Use it from TestMain:
//
//	func TestMain(m *testing.M) { os.Exit(testutil.Main(m)) }
func Main(m *testing.M) int {
	code := m.Run()
	if templateBuilt {
		os.RemoveAll(templateDir)
	}
	return code
}

// BuildTemplate compiles ./cmd/pyenv into a new directory under parent
// (os.TempDir when empty) and copies the libexec support files next to it.
func BuildTemplate(parent string) (string, error) {
	moduleRoot, err := FindModuleRoot()
	if err != nil {
		return "", setupError(err, "build template")
	}

	dir, err := os.MkdirTemp(parent, "pyenv-template-*")
	if err != nil {
		return "", setupError(err, "create template dir")
	}

	exe := filepath.Join(dir, EntryPoint)
	buildCmd := exec.Command("go", "build", "-o", exe, "./cmd/pyenv")
	buildCmd.Dir = moduleRoot
	if output, err := buildCmd.CombinedOutput(); err != nil {
		os.RemoveAll(dir)
		return "", setupError(err, "go build ./cmd/pyenv\n%s", output)
	}

	src := afero.NewReadOnlyFs(afero.NewBasePathFs(afero.NewOsFs(), moduleRoot))
	dst := afero.NewBasePathFs(afero.NewOsFs(), dir)
	for _, file := range TemplateFiles[1:] {
		if err := copySupportFile(src, dst, file); err != nil {
			os.RemoveAll(dir)
			return "", err
		}
	}
	return dir, nil
}

func copySupportFile(src, dst afero.Fs, name string) error {
	data, err := afero.ReadFile(src, name)
	if err != nil {
		return setupError(err, "read support file %s", name)
	}
	if err := dst.MkdirAll(filepath.Dir(name), 0755); err != nil {
		return setupError(err, "create %s", filepath.Dir(name))
	}
	if err := afero.WriteFile(dst, name, data, 0644); err != nil {
		return setupError(err, "write support file %s", name)
	}
	return nil
}

// FindModuleRoot walks up from this source file to the directory holding
// go.mod. It does not depend on the working directory, which scenarios change.
func FindModuleRoot() (string, error) {
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		return "", errors.New("cannot locate testutil source")
	}

	dir := filepath.Dir(file)
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", errors.New("could not find module root (go.mod)")
		}
		dir = parent
	}
}
