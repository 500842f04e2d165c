// Package command runs external programs and turns a non-zero exit into a typed error.
package command

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"

	"github.com/conn-castle/wowpub/internal/messages"
)

// Spec describes one external invocation.
type Spec struct {
	Name   string
	Args   []string
	Dir    string
	Stdout io.Writer
	Stderr io.Writer
}

// String renders the command line for error messages.
func (s Spec) String() string {
	if len(s.Args) == 0 {
		return s.Name
	}
	return s.Name + " " + strings.Join(s.Args, " ")
}

// ExitError reports a command that ran and exited non-zero.
type ExitError struct {
	Name string
	Args []string
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf(messages.CommandExitFmt, e.Name, e.Code)
}

// Runner executes a Spec and blocks until it terminates.
type Runner interface {
	Run(ctx context.Context, spec Spec) error
}

// RunnerFunc adapts a function to Runner.
type RunnerFunc func(ctx context.Context, spec Spec) error

// Run calls f.
func (f RunnerFunc) Run(ctx context.Context, spec Spec) error {
	return f(ctx, spec)
}

// Exec runs commands as child processes with inherited output streams.
type Exec struct{}

// Run starts spec and waits for it. Output streams through unchanged.
func (Exec) Run(ctx context.Context, spec Spec) error {
	if spec.Name == "" {
		return errors.New(messages.CommandNameRequired)
	}
	if ctx == nil {
		ctx = context.Background()
	}
	cmd := exec.CommandContext(ctx, spec.Name, spec.Args...)
	cmd.Dir = spec.Dir
	cmd.Stdout = spec.Stdout
	cmd.Stderr = spec.Stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return &ExitError{
				Name: spec.Name,
				Args: append([]string(nil), spec.Args...),
				Code: exitErr.ExitCode(),
			}
		}
		return fmt.Errorf(messages.CommandStartFmt, spec.Name, err)
	}
	return nil
}

// ExitCode extracts the exit code from err, if it carries one.
func ExitCode(err error) (int, bool) {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code, true
	}
	return 0, false
}
