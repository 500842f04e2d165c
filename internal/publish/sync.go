package publish

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/fatih/color"

	"github.com/conn-castle/wowpub/internal/command"
	"github.com/conn-castle/wowpub/internal/messages"
	"github.com/conn-castle/wowpub/internal/mirror"
	"github.com/conn-castle/wowpub/internal/target"
)

// Syncer mirrors every component of a release directory into each destination.
type Syncer struct {
	Mirror mirror.Mirrorer
	Out    io.Writer
	// Interactive rewrites the progress line in place with \r.
	Interactive bool
	// DryRun prints the planned changes instead of mirroring.
	DryRun bool
	// Diff adds unified diffs of changed text files to a dry run.
	Diff bool
}

// Components lists the immediate subdirectories of releaseDir by name.
// Symlinks are not followed: mirroring one with rsync -a would install a
// link into the working directory, which the next run wipes.
func Components(releaseDir string) ([]string, error) {
	entries, err := os.ReadDir(releaseDir)
	if err != nil {
		return nil, fmt.Errorf(messages.PublishReadReleaseFmt, releaseDir, err)
	}
	out := []string{}
	for _, entry := range entries {
		if entry.IsDir() {
			out = append(out, entry.Name())
		}
	}
	return out, nil
}

// Synchronize processes destinations in order and, within each, components
// by name. The first mirror failure stops the whole sync; nothing already
// mirrored is rolled back.
func (s *Syncer) Synchronize(ctx context.Context, releaseDir string, dests []target.Destination) error {
	if s.Mirror == nil && !s.DryRun {
		return errors.New(messages.PublishMirrorRequired)
	}
	out := s.Out
	if out == nil {
		out = io.Discard
	}

	_, _ = fmt.Fprint(out, messages.PublishCopyingHeader)
	if len(dests) == 0 {
		_, _ = color.New(color.FgYellow).Fprintln(out, messages.PublishNoDestinations)
		_, _ = color.New(color.FgGreen, color.Bold).Fprintln(out, messages.PublishCopyComplete)
		return nil
	}

	components, err := Components(releaseDir)
	if err != nil {
		return err
	}

	for _, dest := range dests {
		for _, name := range components {
			src := filepath.Join(releaseDir, name)
			if s.DryRun {
				if err := s.plan(out, src, name, dest); err != nil {
					return err
				}
				continue
			}
			if err := s.mirrorOne(ctx, out, src, name, dest); err != nil {
				return err
			}
		}
		_, _ = fmt.Fprintln(out)
	}

	if s.DryRun {
		_, _ = color.New(color.FgGreen, color.Bold).Fprintln(out, messages.PublishDryRunComplete)
		return nil
	}
	_, _ = color.New(color.FgGreen, color.Bold).Fprintln(out, messages.PublishCopyComplete)
	return nil
}

func (s *Syncer) mirrorOne(ctx context.Context, out io.Writer, src string, name string, dest target.Destination) error {
	end := "\n"
	if s.Interactive {
		end = "\r"
	}
	_, _ = fmt.Fprintf(out, messages.PublishCopyingFmt+end, name, dest.Path)

	if err := s.Mirror.Mirror(ctx, src, dest.Path); err != nil {
		if s.Interactive {
			_, _ = fmt.Fprintln(out)
		}
		if code, ok := command.ExitCode(err); ok {
			return stageErrorf(StageSyncing, err, messages.MirrorFailedFmt, dest.Path, code)
		}
		return stageErrorf(StageSyncing, err, messages.MirrorNativeFailedFmt, dest.Path, err)
	}

	_, _ = color.New(color.FgGreen).Fprintf(out, messages.PublishCopiedFmt+"\n", name, dest.Path)
	return nil
}

func (s *Syncer) plan(out io.Writer, src string, name string, dest target.Destination) error {
	changes, err := mirror.Plan(src, dest.Path, s.Diff)
	if err != nil {
		return &StageError{Stage: StageSyncing, Err: err}
	}
	_, _ = fmt.Fprintf(out, messages.PublishPlanHeaderFmt, name, dest.Path)
	if len(changes) == 0 {
		_, _ = fmt.Fprintln(out, messages.PublishPlanNone)
		return nil
	}
	for _, c := range changes {
		_, _ = planColor(c.Op).Fprintf(out, messages.PublishPlanLineFmt, c.Op, c.Path)
		if c.Diff != "" {
			_, _ = fmt.Fprintln(out, c.Diff)
		}
	}
	return nil
}

func planColor(op mirror.Op) *color.Color {
	switch op {
	case mirror.OpAdd:
		return color.New(color.FgGreen)
	case mirror.OpDelete:
		return color.New(color.FgRed)
	default:
		return color.New(color.FgYellow)
	}
}
