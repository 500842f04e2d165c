package config

import "path/filepath"

// File names looked up in the project directory.
const (
	ConfigFileName = ".wowpub.toml"
	EnvFileName    = ".env"
)

// Paths holds resolved paths for config files.
type Paths struct {
	Root       string
	ConfigPath string
	EnvPath    string
}

// DefaultPaths returns the config paths for a project directory.
func DefaultPaths(root string) Paths {
	return Paths{
		Root:       root,
		ConfigPath: filepath.Join(root, ConfigFileName),
		EnvPath:    filepath.Join(root, EnvFileName),
	}
}
