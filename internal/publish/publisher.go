// Package publish runs the build-and-deploy pipeline: resolve the installed
// game variants, fetch and verify the packager, build the project into a
// fresh working directory, then mirror every packaged component into every
// resolved AddOns directory.
package publish

import (
	"context"
	"errors"
	"io"
	"path/filepath"

	"github.com/conn-castle/wowpub/internal/command"
	"github.com/conn-castle/wowpub/internal/config"
	"github.com/conn-castle/wowpub/internal/fetch"
	"github.com/conn-castle/wowpub/internal/messages"
	"github.com/conn-castle/wowpub/internal/mirror"
	"github.com/conn-castle/wowpub/internal/packager"
	"github.com/conn-castle/wowpub/internal/target"
	"github.com/conn-castle/wowpub/internal/workdir"
)

// FetchFunc downloads and verifies art into destDir and returns the tool path.
type FetchFunc func(ctx context.Context, art fetch.Artifact, destDir string, progressOut io.Writer) (string, error)

// Resolution is the outcome of the Resolving stage.
type Resolution struct {
	Root         string
	Keys         target.KeySet
	Destinations []target.Destination
}

// Publisher holds the inputs of one run. A Publisher is single use.
type Publisher struct {
	Selection  target.Selection
	ProjectDir string
	WorkDir    string
	Artifact   fetch.Artifact

	System config.System
	Fetch  FetchFunc
	Runner command.Runner
	Mirror mirror.Mirrorer

	DryRun      bool
	Diff        bool
	Interactive bool
	Stdout      io.Writer
	Stderr      io.Writer

	// OnStage, when set, observes every stage transition.
	OnStage func(Stage)

	stage Stage
}

// Stage returns the stage the run is in, or ended in.
func (p *Publisher) Stage() Stage {
	return p.stage
}

func (p *Publisher) setStage(s Stage) {
	p.stage = s
	if p.OnStage != nil {
		p.OnStage(s)
	}
}

// Resolve validates the install root and resolves the selected destinations.
// It has no side effects.
func (p *Publisher) Resolve() (Resolution, error) {
	sys := p.System
	if sys == nil {
		sys = config.RealSystem{}
	}
	root, err := config.InstallRoot(sys, p.ProjectDir)
	if err != nil {
		return Resolution{}, err
	}
	keys := target.Select(p.Selection)
	dests, err := target.Resolve(root, keys)
	if err != nil {
		return Resolution{}, err
	}
	return Resolution{Root: root, Keys: keys, Destinations: dests}, nil
}

// Run executes every stage in order and stops at the first failure, which is
// returned as *StageError. Nothing synced before a failure is rolled back.
func (p *Publisher) Run(ctx context.Context) (err error) {
	p.setStage(StageInit)
	defer func() {
		if err != nil {
			p.setStage(StageFailed)
		}
	}()

	stdout, stderr := p.Stdout, p.Stderr
	if stdout == nil {
		stdout = io.Discard
	}
	if stderr == nil {
		stderr = io.Discard
	}

	p.setStage(StageResolving)
	if p.ProjectDir == "" {
		return &StageError{Stage: StageResolving, Err: errors.New(messages.PublishProjectRequired)}
	}
	projectDir, err := filepath.Abs(p.ProjectDir)
	if err != nil {
		return &StageError{Stage: StageResolving, Err: err}
	}
	p.ProjectDir = projectDir
	res, err := p.Resolve()
	if err != nil {
		return &StageError{Stage: StageResolving, Err: err}
	}
	if err := workdir.Guard(p.WorkDir, projectDir, res.Root); err != nil {
		return &StageError{Stage: StageResolving, Err: err}
	}

	p.setStage(StageFetching)
	dir, err := workdir.Acquire(p.WorkDir)
	if err != nil {
		return &StageError{Stage: StageFetching, Err: err}
	}
	defer func() { _ = dir.Release() }()

	fetchFn := p.Fetch
	if fetchFn == nil {
		fetchFn = fetch.Fetch
	}
	tool, err := fetchFn(ctx, p.Artifact, dir.Path, stdout)
	if err != nil {
		return &StageError{Stage: StageFetching, Err: err}
	}

	p.setStage(StageBuilding)
	err = packager.Invoke(ctx, p.Runner, packager.Request{
		Tool:       tool,
		ProjectDir: projectDir,
		ReleaseDir: dir.ReleaseDir(),
		Stdout:     stdout,
		Stderr:     stderr,
	})
	if err != nil {
		if code, ok := command.ExitCode(err); ok {
			return stageErrorf(StageBuilding, err, messages.PackagerFailedFmt, code)
		}
		return &StageError{Stage: StageBuilding, Err: err}
	}

	p.setStage(StageSyncing)
	m := p.Mirror
	if m == nil && !p.DryRun {
		m, err = mirror.New(mirror.EngineAuto, p.Runner, stdout, stderr)
		if err != nil {
			return &StageError{Stage: StageSyncing, Err: err}
		}
	}
	syncer := &Syncer{
		Mirror:      m,
		Out:         stdout,
		Interactive: p.Interactive,
		DryRun:      p.DryRun,
		Diff:        p.Diff,
	}
	if err := syncer.Synchronize(ctx, dir.ReleaseDir(), res.Destinations); err != nil {
		var stageErr *StageError
		if errors.As(err, &stageErr) {
			return stageErr
		}
		return &StageError{Stage: StageSyncing, Err: err}
	}

	p.setStage(StageDone)
	return nil
}
