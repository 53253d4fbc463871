//go:build !production

// Package testsafety keeps the developer's pyenv session out of the tests.
//
// IMPORTANT: All test files must import this package so the check runs before
// any test does:
//
//	import _ "github.com/happycollision/pyenv/internal/testsafety"
//
// A shell with PYENV_VERSION exported would otherwise win over every global
// and local pin a scenario sets up, and PYENV_ROOT would point the manager
// under test at the real installation.
package testsafety

import (
	"fmt"
	"os"
	"sync"
)

// InheritedVars are removed from the test process environment
var InheritedVars = []string{"PYENV_VERSION", "PYENV_ROOT", "PYENV_DEBUG"}

// KeepEnv disables the scrub when set to 1
const KeepEnv = "PYENV_TEST_KEEP_ENV"

var scrubOnce sync.Once

// RequireCleanEnvironment removes InheritedVars from the process environment.
// It runs once per test binary and is called automatically via init().
func RequireCleanEnvironment() {
	scrubOnce.Do(func() {
		scrubEnvironment()
	})
}

func scrubEnvironment() []string {
	// Allow explicit bypass for debugging
	if os.Getenv(KeepEnv) == "1" {
		return nil
	}

	var removed []string
	for _, name := range InheritedVars {
		if _, ok := os.LookupEnv(name); !ok {
			continue
		}
		if err := os.Unsetenv(name); err != nil {
			fmt.Fprintf(os.Stderr, "testsafety: cannot unset %s: %v\n", name, err)
			os.Exit(1)
		}
		removed = append(removed, name)
	}

	if len(removed) > 0 {
		fmt.Fprintf(os.Stderr, "testsafety: ignoring inherited %v (set %s=1 to keep them)\n", removed, KeepEnv)
	}
	return removed
}

func init() {
	RequireCleanEnvironment()
}
