package testutil

import (
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/happycollision/pyenv/internal/config"
	"github.com/happycollision/pyenv/internal/semver"
)

// SkeletonDirs are created under every manager root
var SkeletonDirs = []string{
	"bin",
	filepath.Join("libexec", "libs"),
	"shims",
	"versions",
}

// TemplateFiles are copied verbatim from the template into every manager
// root. The first one is the entry point.
var TemplateFiles = []string{
	EntryPoint,
	config.SettingsFile,
	config.MessagesFile,
}

// EntryPoint is the manager executable, relative to the manager root
var EntryPoint = filepath.Join("bin", semver.ExeName("pyenv"))

// Builder materializes a manager install for one scenario
type Builder struct {
	// Fs receives the fixture
	Fs afero.Fs
	// Template holds TemplateFiles at their relative paths
	Template afero.Fs
}

// NewBuilder returns a Builder writing to disk and copying from templateDir.
func NewBuilder(templateDir string) *Builder {
	osFs := afero.NewOsFs()
	return &Builder{
		Fs:       osFs,
		Template: afero.NewReadOnlyFs(afero.NewBasePathFs(osFs, templateDir)),
	}
}

// Build lays out s.ManagerRoot and s.ProjectRoot. Both must already exist.
// Every error matches ErrSetup.
func (b *Builder) Build(s Settings) error {
	if err := s.Validate(); err != nil {
		return err
	}
	for _, root := range []string{s.ManagerRoot, s.ProjectRoot} {
		if ok, err := afero.DirExists(b.Fs, root); err != nil || !ok {
			return setupErrorf("fixture root %q is not an existing directory", root)
		}
	}

	for _, dir := range SkeletonDirs {
		path := filepath.Join(s.ManagerRoot, dir)
		if exists, _ := afero.Exists(b.Fs, path); exists {
			return setupErrorf("%s already exists", path)
		}
		if err := b.Fs.MkdirAll(path, 0755); err != nil {
			return setupError(err, "create %s", path)
		}
	}

	for _, file := range TemplateFiles {
		if err := b.copyTemplateFile(file, filepath.Join(s.ManagerRoot, file)); err != nil {
			return err
		}
	}

	for _, v := range s.Versions {
		if err := b.createVersion(s.ManagerRoot, v); err != nil {
			return err
		}
	}

	defaults := config.DefaultSettings()
	if s.GlobalVersion != "" {
		if err := b.writePin(defaults.GlobalPath(s.ManagerRoot), s.GlobalVersion); err != nil {
			return err
		}
	}
	if s.LocalVersion != "" {
		if err := b.writePin(filepath.Join(s.ProjectRoot, defaults.VersionFile), s.LocalVersion); err != nil {
			return err
		}
	}
	return nil
}

func (b *Builder) copyTemplateFile(name, dst string) error {
	src, err := b.Template.Open(name)
	if err != nil {
		return setupError(err, "open template file %s", name)
	}
	defer src.Close()

	info, err := src.Stat()
	if err != nil {
		return setupError(err, "stat template file %s", name)
	}

	if exists, _ := afero.Exists(b.Fs, dst); exists {
		return setupErrorf("%s already exists", dst)
	}
	out, err := b.Fs.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return setupError(err, "create %s", dst)
	}
	if _, err := io.Copy(out, src); err != nil {
		out.Close()
		return setupError(err, "copy %s", name)
	}
	if err := out.Close(); err != nil {
		return setupError(err, "close %s", dst)
	}
	// OpenFile permissions are subject to the umask
	if err := b.Fs.Chmod(dst, info.Mode().Perm()); err != nil {
		return setupError(err, "chmod %s", dst)
	}
	return nil
}

// createVersion creates versions/<v> with interpreter placeholders and
// versions/<v>/Scripts with package-manager placeholders.
func (b *Builder) createVersion(root, version string) error {
	v, err := semver.Parse(version)
	if err != nil {
		return setupError(err, "installed version")
	}

	dir := config.VersionDir(root, version)
	scripts := config.ScriptsDir(root, version)
	if err := b.Fs.MkdirAll(scripts, 0755); err != nil {
		return setupError(err, "create %s", scripts)
	}

	for _, name := range v.InterpreterNames() {
		if err := b.touch(filepath.Join(dir, name)); err != nil {
			return err
		}
	}
	for _, name := range v.ScriptNames() {
		if err := b.touch(filepath.Join(scripts, name)); err != nil {
			return err
		}
	}
	return nil
}

// touch creates an empty executable placeholder, leaving an existing one alone.
func (b *Builder) touch(path string) error {
	f, err := b.Fs.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0755)
	if err != nil {
		return setupError(err, "create %s", path)
	}
	if err := f.Close(); err != nil {
		return setupError(err, "close %s", path)
	}
	return nil
}

func (b *Builder) writePin(path, version string) error {
	if err := afero.WriteFile(b.Fs, path, []byte(version+"\n"), 0644); err != nil {
		return setupError(err, "write %s", path)
	}
	return nil
}
