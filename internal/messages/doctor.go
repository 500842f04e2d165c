package messages

// Doctor messages for the doctor command.
const (
	// DoctorUse is the doctor command name.
	DoctorUse   = "doctor"
	DoctorShort = "Check the install root, packager pin, mirror engine and working directory"

	DoctorHealthCheckFmt = "🏥 Checking wowpub setup for %s...\n"

	DoctorCheckNameConfig       = "Config"
	DoctorCheckNameInstallRoot  = "InstallRoot"
	DoctorCheckNameDestinations = "Installs"
	DoctorCheckNameMirror       = "Mirror"
	DoctorCheckNameWorkDir      = "WorkDir"

	DoctorConfigLoadFailedFmt = "Failed to load configuration: %v"
	DoctorConfigLoadRecommend = "Fix or remove .wowpub.toml; unknown keys are rejected."
	DoctorConfigLoadedFmt     = "Configuration loaded (packager %s)"

	DoctorInstallRootFailedFmt = "%v"
	DoctorInstallRootRecommend = "Set WOW_HOME in your environment or in the project .env to your World of Warcraft directory."
	DoctorInstallRootFoundFmt  = "Install root: %s"

	DoctorNoDestinations          = "No installed game variants found under the install root"
	DoctorNoDestinationsRecommend = "Launch each game variant once so its _<variant>_/Interface/AddOns directory exists."
	DoctorDestinationsFailedFmt   = "Failed to scan installs: %v"
	DoctorDestinationsFoundFmt    = "Installed: %s"

	DoctorMirrorRsyncFmt         = "rsync found at %s"
	DoctorMirrorRsyncMissing     = "rsync is not on PATH"
	DoctorMirrorRsyncRecommend   = "Install rsync or set [publish] mirror = \"native\"."
	DoctorMirrorFallbackNative   = "rsync is not on PATH; the built-in mirror will be used"
	DoctorMirrorNative           = "Using the built-in mirror"
	DoctorMirrorUnknownFmt       = "Unknown mirror engine %q"
	DoctorMirrorUnknownRecommend = "Use one of: auto, rsync, native."

	DoctorWorkDirBusyFmt       = "%s is in use by another run"
	DoctorWorkDirBusyRecommend = "Wait for the other run to finish, or set a different [publish] work_dir."
	DoctorWorkDirFailedFmt     = "Failed to check %s: %v"
	DoctorWorkDirReadyFmt      = "Working directory: %s"
	DoctorWorkDirUnsafe        = "Point [publish] work_dir at a dedicated directory outside the project, the install root and your home directory."

	DoctorFailureSummary = "❌ Some checks failed. Please address the items above."
	DoctorFailureError   = "doctor checks failed"
	DoctorSuccessSummary = "✅ All systems go. Ready to publish."

	DoctorStatusOKLabel        = "[OK]  "
	DoctorStatusWarnLabel      = "[WARN]"
	DoctorStatusFailLabel      = "[FAIL]"
	DoctorResultLineFmt        = "%s %-12s %s\n"
	DoctorRecommendationPrefix = "       💡 "
	DoctorRecommendationIndent = "         "
)
