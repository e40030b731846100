package constants

// Cron constants for the managed jobs and crontab matching.

// Managed job names.
const (
	JobScraper  = "scraper"
	JobWatchdog = "watchdog"
)

// Default schedules: 03:00 daily and minute 0 of every hour.
const (
	ScraperSchedule  = "0 3 * * *"
	WatchdogSchedule = "0 * * * *"
)

// Entry points, relative to the project directory.
const (
	ScraperScript  = "main.py"
	WatchdogScript = "watchdog.py"
)

// Log files, relative to the logs directory.
const (
	ScraperLog  = "cron_execution.log"
	WatchdogLog = "watchdog_cron.log"
)

// TagPrefix marks the comment line placed above every managed job.
const TagPrefix = "# cronsetup:"

// Match modes for locating existing entries.
const (
	MatchCommand   = "command"
	MatchSubstring = "substring"
)
