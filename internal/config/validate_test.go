package config

import (
	"strings"
	"testing"
)

func TestValidateConfigErrors(t *testing.T) {
	valid := Default()
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "missing version", mutate: func(c *Config) { c.Packager.Version = " " }, wantErr: "version"},
		{name: "short digest", mutate: func(c *Config) { c.Packager.SHA256 = "abc" }, wantErr: "sha256"},
		{name: "non-hex digest", mutate: func(c *Config) { c.Packager.SHA256 = strings.Repeat("z", 64) }, wantErr: "sha256"},
		{name: "url without placeholder", mutate: func(c *Config) { c.Packager.URL = "https://example.com/release.sh" }, wantErr: "{version}"},
		{name: "unknown mirror", mutate: func(c *Config) { c.Publish.Mirror = "scp" }, wantErr: "scp"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)
			err := cfg.Validate("test.toml")
			if err == nil {
				t.Fatalf("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("expected error containing %q, got %v", tt.wantErr, err)
			}
			if !strings.Contains(err.Error(), "test.toml") {
				t.Fatalf("expected error to name the file, got %v", err)
			}
		})
	}
}

func TestValidateAcceptsDefaultsAndUpperCaseDigest(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate("test.toml"); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}
	cfg.Packager.SHA256 = strings.ToUpper(cfg.Packager.SHA256)
	cfg.Publish.Mirror = "Native"
	if err := cfg.Validate("test.toml"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
