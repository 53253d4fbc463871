package testutil

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrSetup classifies fixture construction failures. They are fatal and
	// the scenario's assertions never run.
	ErrSetup = errors.New("scenario setup failed")

	// ErrInvocation classifies failures to run the entry point at all, as
	// opposed to the manager reporting an error.
	ErrInvocation = errors.New("pyenv invocation failed")

	// ErrTimeout is an invocation that did not finish in time.
	ErrTimeout = errors.WithMessage(ErrInvocation, "timed out")
)

// classified tags an error chain with one of the sentinels above while
// keeping the underlying cause and its stack trace.
type classified struct {
	class error
	err   error
}

func (c *classified) Error() string {
	return c.class.Error() + ": " + c.err.Error()
}

func (c *classified) Unwrap() error {
	return c.err
}

func (c *classified) Is(target error) bool {
	return errors.Is(c.class, target)
}

func (c *classified) Cause() error {
	return errors.Cause(c.err)
}

func (c *classified) Format(s fmt.State, verb rune) {
	if verb == 'v' && s.Flag('+') {
		fmt.Fprintf(s, "%s: %+v", c.class, c.err)
		return
	}
	fmt.Fprint(s, c.Error())
}

func setupError(err error, format string, args ...interface{}) error {
	return &classified{class: ErrSetup, err: errors.Wrapf(err, format, args...)}
}

func setupErrorf(format string, args ...interface{}) error {
	return &classified{class: ErrSetup, err: errors.Errorf(format, args...)}
}

func invocationError(class, err error, format string, args ...interface{}) error {
	return &classified{class: class, err: errors.Wrapf(err, format, args...)}
}
