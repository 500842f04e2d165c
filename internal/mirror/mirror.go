// Package mirror copies a component directory into a destination so the
// destination copy matches the source exactly: extraneous entries are
// removed and permissions and modification times are preserved.
package mirror

import (
	"context"
	"fmt"
	"io"
	"os/exec"
	"strings"

	"github.com/conn-castle/wowpub/internal/command"
	"github.com/conn-castle/wowpub/internal/messages"
)

// Supported engines.
const (
	EngineAuto   = "auto"
	EngineRsync  = "rsync"
	EngineNative = "native"
)

// Mirrorer mirrors src into destParent/<base(src)>.
type Mirrorer interface {
	Mirror(ctx context.Context, src string, destParent string) error
}

var lookPath = exec.LookPath

// New returns the engine named by engine. Auto picks rsync when it is on PATH.
func New(engine string, runner command.Runner, stdout io.Writer, stderr io.Writer) (Mirrorer, error) {
	switch strings.ToLower(strings.TrimSpace(engine)) {
	case "", EngineAuto:
		if _, err := lookPath(RsyncBinary); err == nil {
			return Rsync{Runner: runner, Stdout: stdout, Stderr: stderr}, nil
		}
		return Native{}, nil
	case EngineRsync:
		return Rsync{Runner: runner, Stdout: stdout, Stderr: stderr}, nil
	case EngineNative:
		return Native{}, nil
	default:
		return nil, fmt.Errorf(messages.MirrorUnknownFmt, engine)
	}
}

// ValidEngine reports whether engine names a supported engine.
func ValidEngine(engine string) bool {
	switch strings.ToLower(strings.TrimSpace(engine)) {
	case "", EngineAuto, EngineRsync, EngineNative:
		return true
	}
	return false
}
