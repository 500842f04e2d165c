package config

// ConfigurationError reports configuration that prevents a run from starting.
// It is raised before any download, subprocess or filesystem change.
type ConfigurationError struct {
	Err error
}

func (e *ConfigurationError) Error() string {
	return e.Err.Error()
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}
