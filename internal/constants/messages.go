package constants

// Package messages contains the text printed by the cronsetup commands.

// Install messages
const (
	// MsgJobInstalled is printed once per installed job.
	MsgJobInstalled = "✅ Installed %s job: %s\n"

	// MsgDryRunHeader precedes the crontab that would be written.
	MsgDryRunHeader = "# Dry run: crontab not modified\n"
)

// Uninstall messages
const (
	// MsgJobsRemoved reports how many managed entries were removed.
	MsgJobsRemoved = "✅ Removed %d cron job(s)\n"

	// MsgNothingToRemove is printed when no managed entry exists.
	MsgNothingToRemove = "No managed cron jobs found.\n"
)

// List messages
const (
	// MsgListHeader is the header for the managed jobs list.
	MsgListHeader = "Managed cron jobs:\n-----------------\n"

	// MsgListJob is the label for the job name field.
	MsgListJob = "   Job:      %s\n"

	// MsgListSchedule is the label for the schedule field.
	MsgListSchedule = "   Schedule: %s\n"

	// MsgListNext is the label for the next fire time.
	MsgListNext = "   Next run: %s\n"

	// MsgListCommand is the label for the command field.
	MsgListCommand = "   Command:  %s\n"

	// MsgListSep separates jobs in the list.
	MsgListSep = "-----------------\n"

	// MsgListMissing marks a configured job that is absent from the crontab.
	MsgListMissing = "   (not installed)\n"
)

// Config messages
const (
	// MsgConfigValidationError is the message when configuration validation fails.
	MsgConfigValidationError = "configuration validation failed:\n"

	// MsgConfigValidatePrefix is the prefix for configuration validation errors.
	MsgConfigValidatePrefix = "  - %v\n"
)
