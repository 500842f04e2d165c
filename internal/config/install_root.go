package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-homedir"

	"github.com/conn-castle/wowpub/internal/envfile"
	"github.com/conn-castle/wowpub/internal/messages"
)

// EnvInstallRoot names the World of Warcraft install directory.
const EnvInstallRoot = "WOW_HOME"

// InstallRoot returns the validated World of Warcraft home directory.
// The process environment wins; when WOW_HOME is unset or blank there it is
// read from <root>/.env. A missing value, or one that does not name an
// existing directory, is a ConfigurationError.
func InstallRoot(sys System, root string) (string, error) {
	raw := strings.TrimSpace(sys.Getenv(EnvInstallRoot))
	if raw == "" && root != "" {
		fromFile, err := installRootFromEnvFile(sys, DefaultPaths(root).EnvPath)
		if err != nil {
			return "", err
		}
		raw = fromFile
	}
	if raw == "" {
		return "", &ConfigurationError{Err: fmt.Errorf(messages.ConfigInstallRootUnsetFmt, EnvInstallRoot)}
	}

	path, err := homedir.Expand(raw)
	if err != nil {
		return "", &ConfigurationError{Err: fmt.Errorf(messages.ConfigExpandHomeFmt, raw, err)}
	}
	path = filepath.Clean(path)
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}

	info, err := sys.Stat(path)
	if err != nil {
		return "", &ConfigurationError{Err: fmt.Errorf(messages.ConfigInstallRootUnreadableFmt, path, err)}
	}
	if !info.IsDir() {
		return "", &ConfigurationError{Err: fmt.Errorf(messages.ConfigInstallRootNotDirFmt, path)}
	}
	return path, nil
}

func installRootFromEnvFile(sys System, path string) (string, error) {
	data, err := sys.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", nil
		}
		return "", &ConfigurationError{Err: fmt.Errorf(messages.ConfigReadFileFmt, path, err)}
	}
	env, err := envfile.Parse(bytes.NewReader(data))
	if err != nil {
		return "", &ConfigurationError{Err: fmt.Errorf(messages.ConfigInvalidEnvFileFmt, path, err)}
	}
	return strings.TrimSpace(env[EnvInstallRoot]), nil
}
