package messages

// Publish pipeline progress and errors.
const (
	// PublishCopyingHeader opens the sync stage output.
	PublishCopyingHeader  = "Copying files...\n\n"
	PublishCopyingFmt     = "- Copying %s to %s..."
	PublishCopiedFmt      = "- Copied %s to %s    "
	PublishCopyComplete   = "Copying complete."
	PublishNoDestinations = "No installed destinations matched the selection."
	PublishDryRunComplete = "Dry run complete; no files were changed."

	PublishPlanHeaderFmt = "- Changes for %s in %s:\n"
	PublishPlanNone      = "    (up to date)"
	PublishPlanLineFmt   = "    %s %s\n"

	PublishReadReleaseFmt  = "read release dir %s: %w"
	PublishProjectRequired = "project directory is required"
	PublishMirrorRequired  = "mirror engine is required"
)
