package config

import (
	"io/fs"
	"os"
)

// System abstracts the OS lookups configuration loading needs.
type System interface {
	Getenv(key string) string
	ReadFile(name string) ([]byte, error)
	Stat(name string) (fs.FileInfo, error)
}

// RealSystem implements System using the OS.
type RealSystem struct{}

// Getenv returns the value of the environment variable named by key.
func (RealSystem) Getenv(key string) string {
	return os.Getenv(key)
}

// ReadFile reads the named file and returns the contents.
func (RealSystem) ReadFile(name string) ([]byte, error) {
	return os.ReadFile(name)
}

// Stat returns file info for name.
func (RealSystem) Stat(name string) (fs.FileInfo, error) {
	return os.Stat(name)
}
