package config

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/conn-castle/wowpub/internal/messages"
	"github.com/conn-castle/wowpub/internal/mirror"
)

var sha256Hex = regexp.MustCompile(`^[0-9a-fA-F]{64}$`)

// Validate ensures the config is complete and consistent.
func (c Config) Validate(path string) error {
	if strings.TrimSpace(c.Packager.Version) == "" {
		return fmt.Errorf(messages.ConfigPackagerVersionRequiredFmt, path)
	}
	if !sha256Hex.MatchString(c.Packager.SHA256) {
		return fmt.Errorf(messages.ConfigPackagerDigestInvalidFmt, path)
	}
	if !strings.Contains(c.Packager.URL, "{version}") {
		return fmt.Errorf(messages.ConfigPackagerURLInvalidFmt, path)
	}
	if !mirror.ValidEngine(c.Publish.Mirror) {
		return fmt.Errorf(messages.ConfigMirrorInvalidFmt, path, c.Publish.Mirror)
	}
	return nil
}
