// Package config loads wowpub settings from the environment, the project's
// .env file and an optional .wowpub.toml.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"

	"github.com/conn-castle/wowpub/internal/fetch"
	"github.com/conn-castle/wowpub/internal/messages"
	"github.com/conn-castle/wowpub/internal/mirror"
	"github.com/conn-castle/wowpub/internal/workdir"
)

// Config is the .wowpub.toml document.
type Config struct {
	Packager PackagerConfig `toml:"packager"`
	Publish  PublishConfig  `toml:"publish"`
}

// PackagerConfig pins the packager script.
type PackagerConfig struct {
	Version string `toml:"version"`
	SHA256  string `toml:"sha256"`
	URL     string `toml:"url"`
}

// PublishConfig controls the working directory and mirror engine.
type PublishConfig struct {
	WorkDir string `toml:"work_dir"`
	Mirror  string `toml:"mirror"`
}

// Default returns the built-in configuration.
func Default() Config {
	art := fetch.DefaultArtifact()
	return Config{
		Packager: PackagerConfig{
			Version: art.Version,
			SHA256:  art.SHA256,
			URL:     art.URLTemplate,
		},
		Publish: PublishConfig{
			WorkDir: workdir.Default(),
			Mirror:  mirror.EngineAuto,
		},
	}
}

// Artifact returns the packager pin.
func (c Config) Artifact() fetch.Artifact {
	return fetch.Artifact{
		Version:     c.Packager.Version,
		SHA256:      c.Packager.SHA256,
		URLTemplate: c.Packager.URL,
	}
}

// Load returns the defaults overlaid with <root>/.wowpub.toml when present.
// A present but invalid file is a ConfigurationError.
func Load(sys System, root string) (Config, error) {
	cfg := Default()
	path := DefaultPaths(root).ConfigPath
	data, err := sys.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, &ConfigurationError{Err: fmt.Errorf(messages.ConfigReadFileFmt, path, err)}
	}
	file, err := ParseConfig(data, path)
	if err != nil {
		return Config{}, &ConfigurationError{Err: err}
	}
	cfg.overlay(file)
	if err := cfg.Validate(path); err != nil {
		return Config{}, &ConfigurationError{Err: err}
	}
	return cfg, nil
}

// ParseConfig decodes TOML data, rejecting unknown keys.
// source is used in error messages.
func ParseConfig(data []byte, source string) (Config, error) {
	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf(messages.ConfigInvalidConfigFmt, source, err)
	}
	if err := decodeStrict(data); err != nil {
		return Config{}, fmt.Errorf(messages.ConfigUnrecognizedKeysFmt, source, err)
	}
	return cfg, nil
}

// decodeStrict re-decodes the TOML data with strict unknown-field rejection.
func decodeStrict(data []byte) error {
	var cfg Config
	decoder := toml.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	return decoder.Decode(&cfg)
}

// overlay copies every non-empty field of file onto c.
func (c *Config) overlay(file Config) {
	set := func(dst *string, v string) {
		if strings.TrimSpace(v) != "" {
			*dst = strings.TrimSpace(v)
		}
	}
	set(&c.Packager.Version, file.Packager.Version)
	set(&c.Packager.SHA256, file.Packager.SHA256)
	set(&c.Packager.URL, file.Packager.URL)
	set(&c.Publish.WorkDir, file.Publish.WorkDir)
	set(&c.Publish.Mirror, file.Publish.Mirror)
}

// ExpandWorkDir resolves a leading ~ in the working directory.
func (c Config) ExpandWorkDir() (string, error) {
	path, err := homedir.Expand(c.Publish.WorkDir)
	if err != nil {
		return "", &ConfigurationError{Err: fmt.Errorf(messages.ConfigExpandHomeFmt, c.Publish.WorkDir, err)}
	}
	return path, nil
}
