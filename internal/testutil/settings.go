package testutil

import (
	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"

	"github.com/happycollision/pyenv/internal/semver"
)

// Settings describes the state one scenario starts from. Empty fields mean
// "do not create that state".
type Settings struct {
	// GlobalVersion is written to <manager root>/version
	GlobalVersion string `toml:"global_ver"`
	// LocalVersion is written to <project root>/.python-version
	LocalVersion string `toml:"local_ver"`
	// Versions get an install directory each, in order. Duplicates are harmless.
	Versions []string `toml:"versions"`

	// ManagerRoot and ProjectRoot are filled in by the Runner
	ManagerRoot string `toml:"-"`
	ProjectRoot string `toml:"-"`
}

// Validate checks that every version field is major.minor[.patch].
func (s Settings) Validate() error {
	check := func(field, value string) error {
		if _, err := semver.Parse(value); err != nil {
			return setupError(err, "settings %s", field)
		}
		return nil
	}

	if s.GlobalVersion != "" {
		if err := check("global version", s.GlobalVersion); err != nil {
			return err
		}
	}
	if s.LocalVersion != "" {
		if err := check("local version", s.LocalVersion); err != nil {
			return err
		}
	}
	for _, v := range s.Versions {
		if err := check("installed version", v); err != nil {
			return err
		}
	}
	return nil
}

// Scenario is one row of a scenario table file
type Scenario struct {
	Name     string            `toml:"name"`
	Settings Settings          `toml:"settings"`
	Env      map[string]string `toml:"env"`
	Args     []string          `toml:"args"`
	Want     string            `toml:"want"`
}

// LoadScenarios reads [[scenario]] tables from a TOML file.
func LoadScenarios(path string) ([]Scenario, error) {
	var doc struct {
		Scenario []Scenario `toml:"scenario"`
	}
	md, err := toml.DecodeFile(path, &doc)
	if err != nil {
		return nil, errors.Wrapf(err, "load scenarios from %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, errors.Errorf("unknown keys in %s: %v", path, undecoded)
	}
	for i, sc := range doc.Scenario {
		if sc.Name == "" {
			return nil, errors.Errorf("scenario %d in %s has no name", i, path)
		}
	}
	return doc.Scenario, nil
}
