package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/conn-castle/wowpub/internal/config"
	"github.com/conn-castle/wowpub/internal/messages"
	"github.com/conn-castle/wowpub/internal/mirror"
	"github.com/conn-castle/wowpub/internal/publish"
)

// publishOptions overrides .wowpub.toml for one run.
type publishOptions struct {
	project string
	workDir string
	mirror  string
	dryRun  bool
	diff    bool
}

func newPublishCmd() *cobra.Command {
	var sel selectionFlags
	var opts publishOptions
	cmd := &cobra.Command{
		Use:   messages.PublishUse,
		Short: messages.PublishShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.diff && !opts.dryRun {
				return errors.New(messages.DiffFlagRequiresDryRun)
			}
			selection, err := sel.selection()
			if err != nil {
				return err
			}
			projectDir, err := resolveProjectDir(opts.project)
			if err != nil {
				return err
			}
			sys := newSystem()
			cfg, err := config.Load(sys, projectDir)
			if err != nil {
				return err
			}
			if opts.workDir != "" {
				cfg.Publish.WorkDir = opts.workDir
			}
			if opts.mirror != "" {
				cfg.Publish.Mirror = opts.mirror
			}
			workDir, err := cfg.ExpandWorkDir()
			if err != nil {
				return err
			}

			out, errOut := cmd.OutOrStdout(), cmd.ErrOrStderr()
			engine, err := mirror.New(cfg.Publish.Mirror, nil, out, errOut)
			if err != nil {
				return &config.ConfigurationError{Err: err}
			}
			p := &publish.Publisher{
				Selection:   selection,
				ProjectDir:  projectDir,
				WorkDir:     workDir,
				Artifact:    cfg.Artifact(),
				System:      sys,
				Fetch:       fetchPackager,
				Mirror:      engine,
				DryRun:      opts.dryRun,
				Diff:        opts.diff,
				Interactive: isTerminal(out),
				Stdout:      out,
				Stderr:      errOut,
			}
			return p.Run(cmd.Context())
		},
	}
	sel.register(cmd)
	cmd.Flags().StringVarP(&opts.project, "project", "p", "", messages.FlagProject)
	cmd.Flags().StringVar(&opts.workDir, "work-dir", "", messages.FlagWorkDir)
	cmd.Flags().StringVar(&opts.mirror, "mirror", "", messages.FlagMirror)
	cmd.Flags().BoolVarP(&opts.dryRun, "dry-run", "n", false, messages.FlagDryRun)
	cmd.Flags().BoolVar(&opts.diff, "diff", false, messages.FlagDiff)
	return cmd
}
