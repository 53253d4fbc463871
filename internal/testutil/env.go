package testutil

import (
	"os"
	"sort"
	"testing"

	"github.com/pkg/errors"
)

// WithEnv runs fn with vars set in the process environment and restores the
// previous values afterwards, unsetting variables that were absent. Use it
// around Run to model a shell-session override.
func WithEnv(t testing.TB, vars map[string]string, fn func()) {
	t.Helper()

	restore, err := ApplyEnv(vars)
	if err != nil {
		t.Fatalf("%+v", err)
	}
	defer restore()

	fn()
}

// ApplyEnv sets vars and returns a function that puts the environment back.
// On error, anything already applied has been reverted.
func ApplyEnv(vars map[string]string) (restore func(), err error) {
	type saved struct {
		name    string
		value   string
		present bool
	}
	var applied []saved

	restore = func() {
		for i := len(applied) - 1; i >= 0; i-- {
			s := applied[i]
			if s.present {
				os.Setenv(s.name, s.value)
			} else {
				os.Unsetenv(s.name)
			}
		}
	}

	// Sorted for a deterministic order of application and reversal
	names := make([]string, 0, len(vars))
	for name := range vars {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		value, present := os.LookupEnv(name)
		if err := os.Setenv(name, vars[name]); err != nil {
			restore()
			return func() {}, errors.Wrapf(err, "set %s", name)
		}
		applied = append(applied, saved{name: name, value: value, present: present})
	}
	return restore, nil
}
