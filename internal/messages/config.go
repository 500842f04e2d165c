package messages

// Configuration messages.
const (
	// ConfigInstallRootUnsetFmt is returned when the install root env var is missing or blank.
	ConfigInstallRootUnsetFmt      = "The World of Warcraft home directory environment variable %s has not yet been set. Please set it to the World of Warcraft install directory"
	ConfigInstallRootUnreadableFmt = "The World of Warcraft home directory %q could not be read: %w"
	ConfigInstallRootNotDirFmt     = "The World of Warcraft home directory %q is not a directory"
	ConfigExpandHomeFmt            = "expand %q: %v"

	ConfigReadFileFmt         = "read %s: %v"
	ConfigInvalidConfigFmt    = "invalid config %s: %v"
	ConfigUnrecognizedKeysFmt = "config %s contains unrecognized keys: %v"
	ConfigInvalidEnvFileFmt   = "invalid env file %s: %v"

	ConfigPackagerVersionRequiredFmt = "%s: packager.version is required"
	ConfigPackagerDigestInvalidFmt   = "%s: packager.sha256 must be 64 hexadecimal characters"
	ConfigPackagerURLInvalidFmt      = "%s: packager.url must contain the {version} placeholder"
	ConfigMirrorInvalidFmt           = "%s: publish.mirror must be one of auto, rsync, native (got %q)"

	ConfigUnknownFlavorFmt  = "unknown flavor %q (supported: mainline, classic)"
	ConfigUnknownChannelFmt = "unknown channel %q (supported: live, ptr, beta, alpha)"
	TargetCheckPathFmt      = "check %s: %w"

	// EnvfileLineErrorFmt formats a parse error with its line number.
	EnvfileLineErrorFmt    = "line %d: %w"
	EnvfileReadFailedFmt   = "read env content: %w"
	EnvfileMissingEquals   = "missing '=' separator"
	EnvfileEmptyKey        = "empty key"
	EnvfileUnterminatedFmt = "unterminated %s quote"
)
