package testutil

import (
	"os"

	"github.com/pkg/errors"
)

// WithWorkingDir runs fn with the process working directory set to dir.
//
// The previous directory is restored in a deferred call, so it comes back
// on a normal return, on t.FailNow (runtime.Goexit) and on panic. The
// working directory is process-wide: callers must not run in parallel.
func WithWorkingDir(dir string, fn func()) (err error) {
	prev, err := os.Getwd()
	if err != nil {
		return setupError(err, "get working directory")
	}
	if err := os.Chdir(dir); err != nil {
		return setupError(err, "enter %s", dir)
	}
	defer func() {
		if cerr := os.Chdir(prev); cerr != nil && err == nil {
			err = errors.Wrapf(cerr, "restore working directory %s", prev)
		}
	}()

	fn()
	return nil
}
