package testutil

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"
)

// Context is what a scenario's assertions receive
type Context struct {
	ManagerRoot string
	ProjectRoot string

	t       testing.TB
	invoker Invoker
	timeout time.Duration
	logger  *zap.Logger
}

func newContext(t testing.TB, invoker Invoker, timeout time.Duration, s Settings) *Context {
	return &Context{
		ManagerRoot: s.ManagerRoot,
		ProjectRoot: s.ProjectRoot,
		t:           t,
		invoker:     invoker,
		timeout:     timeout,
		logger:      zaptest.NewLogger(t).Named("pyenv"),
	}
}

// Pyenv runs the manager with args and returns its normalized stdout.
// Pass no arguments, one token, or a whole command line.
func (c *Context) Pyenv(args ...string) string {
	c.t.Helper()
	return c.Run(args...).Stdout
}

// Run is Pyenv returning the whole Result. Invocation errors are fatal.
func (c *Context) Run(args ...string) *Result {
	c.t.Helper()
	result, err := c.Invoke(args...)
	if err != nil {
		c.t.Fatalf("%+v", err)
	}
	return result
}

// Invoke runs the manager once under the context's timeout. Anything the
// manager writes to stderr is logged, never treated as a failure.
func (c *Context) Invoke(args ...string) (*Result, error) {
	ctx, cancel := context.WithTimeout(context.Background(), c.timeout)
	defer cancel()

	result, err := c.invoker.Invoke(ctx, args...)
	if err != nil {
		return nil, err
	}
	if result.Stderr != "" {
		c.logger.Info("stderr output",
			zap.Strings("args", args),
			zap.Int("exit_code", result.ExitCode),
			zap.String("stderr", result.Stderr))
	}
	return result, nil
}
