package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/conn-castle/wowpub/internal/messages"
	"github.com/conn-castle/wowpub/internal/publish"
)

func newTargetsCmd() *cobra.Command {
	var sel selectionFlags
	var project string
	cmd := &cobra.Command{
		Use:   messages.TargetsUse,
		Short: messages.TargetsShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			selection, err := sel.selection()
			if err != nil {
				return err
			}
			projectDir, err := resolveProjectDir(project)
			if err != nil {
				return err
			}
			p := &publish.Publisher{
				Selection:  selection,
				ProjectDir: projectDir,
				System:     newSystem(),
			}
			res, err := p.Resolve()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintln(out, messages.TargetsSelectedHeader)
			for _, key := range res.Keys.Sorted() {
				_, _ = fmt.Fprintf(out, messages.TargetsSelectedLineFmt, key)
			}
			_, _ = fmt.Fprintln(out, messages.TargetsResolvedHeader)
			if len(res.Destinations) == 0 {
				_, _ = fmt.Fprintln(out, messages.TargetsNoneResolved)
				return nil
			}
			for _, dest := range res.Destinations {
				_, _ = fmt.Fprintf(out, messages.TargetsResolvedLineFmt, dest.Key, dest.Path)
			}
			return nil
		},
	}
	sel.register(cmd)
	cmd.Flags().StringVarP(&project, "project", "p", "", messages.FlagProject)
	return cmd
}
