package messages

// CLI messages for user-facing commands and prompts.
const (
	// RootUse is the CLI command name.
	RootUse = "wowpub"
	// RootShort is the short description for the root command.
	RootShort       = "Publish a packaged World of Warcraft addon into local game installs"
	RootVersionFlag = "Print version and exit"

	// VersionCommitFmt formats the commit hash for version display.
	VersionCommitFmt = "commit %s"
	VersionBuildFmt  = "built %s"
	VersionFullFmt   = "%s (%s)"
	VersionTemplate  = "{{.Version}}\n"

	// PublishUse is the publish command name.
	PublishUse   = "publish"
	PublishShort = "Package the current project and mirror it into every selected install"

	// TargetsUse is the targets command name.
	TargetsUse   = "targets"
	TargetsShort = "Show which install destinations a selection resolves to"

	// FetchUse is the fetch command name.
	FetchUse   = "fetch"
	FetchShort = "Download and verify the pinned packager without running it"

	FlagFlavor   = "Game flavor to publish to (mainline, classic); repeatable"
	FlagChannel  = "Release channel to publish to (live, ptr, beta, alpha); repeatable"
	FlagRetail   = "Shorthand for --flavor mainline"
	FlagMain     = "Shorthand for --flavor mainline"
	FlagMainline = "Shorthand for --flavor mainline"
	FlagClassic  = "Shorthand for --flavor classic"
	FlagLive     = "Shorthand for --channel live"
	FlagPTR      = "Shorthand for --channel ptr"
	FlagBeta     = "Shorthand for --channel beta"
	FlagAlpha    = "Shorthand for --channel alpha"
	FlagProject  = "Project directory to package (defaults to the current directory)"
	FlagWorkDir  = "Ephemeral working directory, wiped on every run"
	FlagMirror   = "Mirror engine (auto, rsync, native)"
	FlagDryRun   = "Fetch and build, then print the changes a sync would make without applying them"
	FlagDiff     = "With --dry-run, print unified diffs of changed text files"
	FlagDest     = "Directory to download the packager into (defaults to a fresh temp dir)"

	TargetsSelectedHeader  = "Selected destinations:"
	TargetsSelectedLineFmt = "  %s\n"
	TargetsResolvedHeader  = "Installed destinations:"
	TargetsResolvedLineFmt = "  %-18s %s\n"
	TargetsNoneResolved    = "  (none installed)"

	FetchVerifiedFmt = "Verified packager %s at %s\n"

	DiffFlagRequiresDryRun = "--diff requires --dry-run"
)
