package main

import (
	"github.com/spf13/cobra"

	"github.com/conn-castle/wowpub/internal/messages"
	"github.com/conn-castle/wowpub/internal/target"
)

// selectionFlags collects --flavor/--channel values and their shorthands.
type selectionFlags struct {
	flavors  []string
	channels []string

	retail   bool
	main     bool
	mainline bool
	classic  bool

	live  bool
	ptr   bool
	beta  bool
	alpha bool
}

func (f *selectionFlags) register(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringSliceVarP(&f.flavors, "flavor", "f", nil, messages.FlagFlavor)
	flags.StringSliceVarP(&f.channels, "channel", "c", nil, messages.FlagChannel)
	flags.BoolVar(&f.retail, "retail", false, messages.FlagRetail)
	flags.BoolVar(&f.main, "main", false, messages.FlagMain)
	flags.BoolVar(&f.mainline, "mainline", false, messages.FlagMainline)
	flags.BoolVar(&f.classic, "classic", false, messages.FlagClassic)
	flags.BoolVar(&f.live, "live", false, messages.FlagLive)
	flags.BoolVar(&f.ptr, "ptr", false, messages.FlagPTR)
	flags.BoolVar(&f.beta, "beta", false, messages.FlagBeta)
	flags.BoolVar(&f.alpha, "alpha", false, messages.FlagAlpha)
}

// selection combines every flag into a Selection. Nothing selected means the
// defaults: both flavors on the live channel.
func (f *selectionFlags) selection() (target.Selection, error) {
	flavors, err := target.ParseFlavors(f.flavors)
	if err != nil {
		return target.Selection{}, err
	}
	channels, err := target.ParseChannels(f.channels)
	if err != nil {
		return target.Selection{}, err
	}
	if f.retail || f.main || f.mainline {
		flavors = append(flavors, target.Mainline)
	}
	if f.classic {
		flavors = append(flavors, target.Classic)
	}
	for _, pick := range []struct {
		set     bool
		channel target.Channel
	}{
		{f.live, target.Live},
		{f.ptr, target.PTR},
		{f.beta, target.Beta},
		{f.alpha, target.Alpha},
	} {
		if pick.set {
			channels = append(channels, pick.channel)
		}
	}
	return target.NewSelection(flavors, channels), nil
}
