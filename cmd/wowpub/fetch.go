package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/conn-castle/wowpub/internal/config"
	"github.com/conn-castle/wowpub/internal/messages"
)

func newFetchCmd() *cobra.Command {
	var dest string
	var project string
	cmd := &cobra.Command{
		Use:   messages.FetchUse,
		Short: messages.FetchShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			projectDir, err := resolveProjectDir(project)
			if err != nil {
				return err
			}
			cfg, err := config.Load(newSystem(), projectDir)
			if err != nil {
				return err
			}
			if dest == "" {
				dest, err = os.MkdirTemp("", messages.RootUse+"-")
				if err != nil {
					return err
				}
			} else if err := os.MkdirAll(dest, 0o755); err != nil {
				return err
			}
			art := cfg.Artifact()
			path, err := fetchPackager(cmd.Context(), art, dest, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), messages.FetchVerifiedFmt, art.Version, path)
			return nil
		},
	}
	cmd.Flags().StringVarP(&dest, "dest", "d", "", messages.FlagDest)
	cmd.Flags().StringVarP(&project, "project", "p", "", messages.FlagProject)
	return cmd
}
