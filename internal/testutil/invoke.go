package testutil

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"runtime"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// DefaultTimeout bounds a single manager invocation
const DefaultTimeout = 30 * time.Second

// Result captures one invocation
type Result struct {
	// Stdout is normalized: surrounding CR, LF and form feeds are removed,
	// interior line breaks are kept as written
	Stdout   string
	Stderr   string
	ExitCode int
}

// Invoker runs the manager entry point with arguments.
//
// A non-zero exit is the manager's answer and is reported in
// Result.ExitCode, not as an error. Errors match ErrInvocation (and
// ErrTimeout when ctx expired).
type Invoker interface {
	Invoke(ctx context.Context, args ...string) (*Result, error)
}

// ExecInvoker spawns the entry point directly
type ExecInvoker struct {
	Entry string
}

// Invoke implements Invoker.
func (i *ExecInvoker) Invoke(ctx context.Context, args ...string) (*Result, error) {
	return invoke(ctx, i.Entry, exec.CommandContext(ctx, i.Entry, args...))
}

// ShellInvoker runs the entry point through the platform command
// interpreter, keeping argument boundaries intact
type ShellInvoker struct {
	Entry string
}

// Invoke implements Invoker.
func (i *ShellInvoker) Invoke(ctx context.Context, args ...string) (*Result, error) {
	return invoke(ctx, i.Entry, ShellCommand(ctx, i.Entry, args...))
}

// ShellCommand builds the interpreter command line for entry and args.
func ShellCommand(ctx context.Context, entry string, args ...string) *exec.Cmd {
	if runtime.GOOS == "windows" {
		return exec.CommandContext(ctx, "cmd", append([]string{"/d", "/c", "call", entry}, args...)...)
	}
	// $0 is the entry point; "$@" re-expands the arguments unchanged
	return exec.CommandContext(ctx, "sh", append([]string{"-c", `"$0" "$@"`, entry}, args...)...)
}

func invoke(ctx context.Context, entry string, cmd *exec.Cmd) (*Result, error) {
	// An interpreter would happily start and report 127; a missing entry
	// point is a harness problem either way.
	if _, err := os.Stat(entry); err != nil {
		return nil, invocationError(ErrInvocation, err, "entry point %s", entry)
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	// Do not wait forever on pipes held open by orphaned children
	cmd.WaitDelay = time.Second

	err := cmd.Run()
	if ctxErr := ctx.Err(); ctxErr != nil {
		return nil, invocationError(ErrTimeout, ctxErr, "%s", strings.Join(cmd.Args, " "))
	}

	result := &Result{
		Stdout: NormalizeStdout(stdout.Bytes()),
		Stderr: strings.TrimSpace(strings.ToValidUTF8(stderr.String(), "�")),
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		result.ExitCode = exitErr.ExitCode()
		return result, nil
	}
	if err != nil {
		return nil, invocationError(ErrInvocation, err, "%s", strings.Join(cmd.Args, " "))
	}
	return result, nil
}

// NormalizeStdout decodes captured output as UTF-8 and strips the line
// terminators and screen-clear form feeds around it.
func NormalizeStdout(b []byte) string {
	return strings.Trim(strings.ToValidUTF8(string(b), "�"), "\r\n\f")
}
