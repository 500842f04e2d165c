// Package packager runs the fetched packager script against a project tree.
package packager

import (
	"context"
	"errors"
	"io"

	"github.com/conn-castle/wowpub/internal/command"
	"github.com/conn-castle/wowpub/internal/messages"
)

// Flags asks the packager to clean stale output (-d), skip localization
// upload (-l), skip the zip (-z) and skip uploads to addon sites (-S).
const Flags = "-dlzS"

// Request describes one packager run.
type Request struct {
	Tool       string
	ProjectDir string
	ReleaseDir string
	Stdout     io.Writer
	Stderr     io.Writer
}

// Args returns the packager arguments for req.
func (r Request) Args() []string {
	return []string{Flags, "-t", r.ProjectDir, "-r", r.ReleaseDir}
}

// Invoke runs the packager and blocks until it exits. A non-zero exit is
// returned as *command.ExitError.
func Invoke(ctx context.Context, runner command.Runner, req Request) error {
	if req.Tool == "" {
		return errors.New(messages.PackagerToolRequired)
	}
	if req.ProjectDir == "" {
		return errors.New(messages.PackagerProjectRequired)
	}
	if req.ReleaseDir == "" {
		return errors.New(messages.PackagerReleaseRequired)
	}
	if runner == nil {
		runner = command.Exec{}
	}
	return runner.Run(ctx, command.Spec{
		Name:   req.Tool,
		Args:   req.Args(),
		Dir:    req.ProjectDir,
		Stdout: req.Stdout,
		Stderr: req.Stderr,
	})
}
