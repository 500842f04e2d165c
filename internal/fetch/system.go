package fetch

import "os"

// System abstracts the environment lookups the fetcher needs.
type System interface {
	Getenv(key string) string
}

// RealSystem implements System using the process environment.
type RealSystem struct{}

// Getenv returns the value of the environment variable named by key.
func (RealSystem) Getenv(key string) string {
	return os.Getenv(key)
}
