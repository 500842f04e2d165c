package messages

// System messages for internal operations.
const (
	// FetchSystemRequired indicates the fetch system seam is missing.
	FetchSystemRequired     = "fetch system is required"
	FetchVersionRequired    = "packager version is required"
	FetchDigestRequired     = "packager sha256 is required"
	FetchDestDirRequired    = "download directory is required"
	FetchURLTemplateMissing = "packager url template is required"

	FetchCreateFileFmt          = "create %s: %w"
	FetchCloseFileFmt           = "close %s: %w"
	FetchDownloadingFmt         = "Downloading packager %s...\n"
	FetchDownloadedFmt          = "Downloaded packager %s\n"
	FetchDownloadFailedFmt      = "download %s: %v"
	FetchUnexpectedStatusFmt    = "download %s: unexpected status %s"
	FetchDownloadTooLargeFmt    = "download %s: response too large (%d bytes > limit %d bytes)"
	FetchDownloadTimeoutFmt     = "download %s: request timed out\n\nRemediation:\n  - Check your internet connection\n  - If behind a proxy, ensure HTTP_PROXY/HTTPS_PROXY are set\n  - Retry the command"
	FetchOpenFileFmt            = "open %s: %w"
	FetchStatFileFmt            = "stat %s: %w"
	FetchHashFileFmt            = "hash %s: %w"
	FetchChecksumMismatchFmt    = "packager digest mismatch for %s (expected %s, got %s)"
	FetchChmodFmt               = "make %s executable: %w"
	FetchInvalidMaxDownloadWarn = "warning: ignoring invalid %s=%q\n"

	// CommandNameRequired indicates an empty command was requested.
	CommandNameRequired = "command name is required"
	CommandStartFmt     = "start %s: %w"
	CommandExitFmt      = "%s exited with code %d"

	PackagerToolRequired    = "packager tool path is required"
	PackagerProjectRequired = "project directory is required"
	PackagerReleaseRequired = "release directory is required"
	PackagerFailedFmt       = "Packager execution failed with return code %d"

	MirrorSourceRequired  = "mirror source is required"
	MirrorDestRequired    = "mirror destination is required"
	MirrorSourceNotDir    = "mirror source %s is not a directory"
	MirrorStatFmt         = "stat %s: %w"
	MirrorReadDirFmt      = "read dir %s: %w"
	MirrorRemoveFmt       = "remove %s: %w"
	MirrorMkdirFmt        = "create dir %s: %w"
	MirrorCopyFmt         = "copy %s to %s: %w"
	MirrorSymlinkFmt      = "link %s: %w"
	MirrorAttrsFmt        = "preserve attributes of %s: %w"
	MirrorReadFileFmt     = "read %s: %w"
	MirrorUnknownFmt      = "unknown mirror engine %q (supported: auto, rsync, native)"
	MirrorFailedFmt       = "rsync to %s failed with error code %d"
	MirrorNativeFailedFmt = "mirror to %s failed: %v"

	WorkdirRequired    = "working directory is required"
	WorkdirOpenLockFmt = "open lock %s: %w"
	WorkdirLockFmt     = "lock %s: %w"
	WorkdirBusyFmt     = "working directory %s is in use by another run (lock %s)"
	WorkdirResetFmt    = "reset working directory %s: %w"
	WorkdirCreateFmt   = "create working directory %s: %w"
	WorkdirMarkerFmt   = "mark working directory %s: %w"
	WorkdirResolveFmt  = "resolve working directory %s: %w"
	WorkdirOverlapsFmt = "refusing to use %s as the working directory: wiping it would delete %s"
	WorkdirInsideFmt   = "refusing to use %s as the working directory: it is inside %s"
	WorkdirNotOwnedFmt = "refusing to wipe %s: it is not empty and has no %s marker from a previous run; remove it or choose another work_dir"
)
