// Package target maps a flavor and channel selection onto the install
// variants of a World of Warcraft home directory.
package target

import (
	"fmt"
	"sort"
	"strings"

	"github.com/conn-castle/wowpub/internal/messages"
)

// Flavor is a top-level game product variant.
type Flavor string

// Supported flavors.
const (
	Mainline Flavor = "mainline"
	Classic  Flavor = "classic"
)

// Channel is a release maturity track.
type Channel string

// Supported channels.
const (
	Live  Channel = "live"
	PTR   Channel = "ptr"
	Beta  Channel = "beta"
	Alpha Channel = "alpha"
)

// AllFlavors lists every flavor in table order.
var AllFlavors = []Flavor{Mainline, Classic}

// AllChannels lists every channel in table order.
var AllChannels = []Channel{Live, PTR, Beta, Alpha}

// ParseFlavor validates a flavor token.
func ParseFlavor(raw string) (Flavor, error) {
	v := Flavor(strings.ToLower(strings.TrimSpace(raw)))
	for _, f := range AllFlavors {
		if v == f {
			return f, nil
		}
	}
	return "", fmt.Errorf(messages.ConfigUnknownFlavorFmt, raw)
}

// ParseChannel validates a channel token.
func ParseChannel(raw string) (Channel, error) {
	v := Channel(strings.ToLower(strings.TrimSpace(raw)))
	for _, c := range AllChannels {
		if v == c {
			return c, nil
		}
	}
	return "", fmt.Errorf(messages.ConfigUnknownChannelFmt, raw)
}

// ParseFlavors validates every token and returns the distinct flavors.
func ParseFlavors(raw []string) ([]Flavor, error) {
	out := make([]Flavor, 0, len(raw))
	seen := make(map[Flavor]bool, len(raw))
	for _, r := range raw {
		f, err := ParseFlavor(r)
		if err != nil {
			return nil, err
		}
		if !seen[f] {
			seen[f] = true
			out = append(out, f)
		}
	}
	return out, nil
}

// ParseChannels validates every token and returns the distinct channels.
func ParseChannels(raw []string) ([]Channel, error) {
	out := make([]Channel, 0, len(raw))
	seen := make(map[Channel]bool, len(raw))
	for _, r := range raw {
		c, err := ParseChannel(r)
		if err != nil {
			return nil, err
		}
		if !seen[c] {
			seen[c] = true
			out = append(out, c)
		}
	}
	return out, nil
}

// Selection is a defaulted flavor and channel choice.
type Selection struct {
	Flavors  []Flavor
	Channels []Channel
}

// NewSelection applies the defaults: no flavors means every flavor and
// no channels means live only. The input slices are copied.
func NewSelection(flavors []Flavor, channels []Channel) Selection {
	sel := Selection{
		Flavors:  append([]Flavor(nil), flavors...),
		Channels: append([]Channel(nil), channels...),
	}
	if len(sel.Flavors) == 0 {
		sel.Flavors = append([]Flavor(nil), AllFlavors...)
	}
	if len(sel.Channels) == 0 {
		sel.Channels = []Channel{Live}
	}
	return sel
}

// String renders the selection for progress output.
func (s Selection) String() string {
	fl := make([]string, 0, len(s.Flavors))
	for _, f := range s.Flavors {
		fl = append(fl, string(f))
	}
	ch := make([]string, 0, len(s.Channels))
	for _, c := range s.Channels {
		ch = append(ch, string(c))
	}
	sort.Strings(fl)
	sort.Strings(ch)
	return "flavors=" + strings.Join(fl, ",") + " channels=" + strings.Join(ch, ",")
}
