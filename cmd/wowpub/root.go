package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/conn-castle/wowpub/internal/config"
	"github.com/conn-castle/wowpub/internal/fetch"
	"github.com/conn-castle/wowpub/internal/messages"
	"github.com/conn-castle/wowpub/internal/terminal"
)

// Seams replaced by tests.
var (
	getwd         = os.Getwd
	newSystem     = func() config.System { return config.RealSystem{} }
	fetchPackager = fetch.Fetch
	isTerminal    = terminal.IsTerminal
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           messages.RootUse,
		Short:         messages.RootShort,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.Flags().BoolP("version", "v", false, messages.RootVersionFlag)
	cmd.AddCommand(
		newPublishCmd(),
		newTargetsCmd(),
		newFetchCmd(),
		newDoctorCmd(),
	)
	return cmd
}

// resolveProjectDir returns dir, or the working directory when dir is empty.
func resolveProjectDir(dir string) (string, error) {
	if dir != "" {
		return dir, nil
	}
	return getwd()
}
