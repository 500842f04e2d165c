package mirror

import (
	"context"
	"errors"
	"io"

	"github.com/conn-castle/wowpub/internal/command"
	"github.com/conn-castle/wowpub/internal/messages"
)

// RsyncBinary is the rsync executable looked up on PATH.
const RsyncBinary = "rsync"

// Rsync mirrors with `rsync -a --delete`.
type Rsync struct {
	Runner command.Runner
	Stdout io.Writer
	Stderr io.Writer
}

// Args returns the rsync arguments. src has no trailing slash so rsync
// creates destParent/<base(src)>.
func (r Rsync) Args(src string, destParent string) []string {
	return []string{"-a", "--delete", src, destParent}
}

// Mirror runs rsync. A non-zero exit is returned as *command.ExitError.
func (r Rsync) Mirror(ctx context.Context, src string, destParent string) error {
	if src == "" {
		return errors.New(messages.MirrorSourceRequired)
	}
	if destParent == "" {
		return errors.New(messages.MirrorDestRequired)
	}
	runner := r.Runner
	if runner == nil {
		runner = command.Exec{}
	}
	return runner.Run(ctx, command.Spec{
		Name:   RsyncBinary,
		Args:   r.Args(src, destParent),
		Stdout: r.Stdout,
		Stderr: r.Stderr,
	})
}
