package config

import "github.com/aatumaykin/cronsetup/internal/constants"

// DefaultJobs returns the scraper and watchdog jobs.
func DefaultJobs() []JobConfig {
	return []JobConfig{
		{
			Name:     constants.JobScraper,
			Schedule: constants.ScraperSchedule,
			Script:   constants.ScraperScript,
			Log:      constants.ScraperLog,
		},
		{
			Name:     constants.JobWatchdog,
			Schedule: constants.WatchdogSchedule,
			Script:   constants.WatchdogScript,
			Log:      constants.WatchdogLog,
		},
	}
}

// Default returns a configuration with every default applied.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

// applyDefaults применяет значения по умолчанию
func applyDefaults(c *Config) {
	if c.Project.LogsDir == "" {
		c.Project.LogsDir = constants.DefaultLogsDir
	}
	if c.Project.Interpreter == "" {
		c.Project.Interpreter = constants.DefaultInterpreter
	}

	if c.Crontab.Binary == "" {
		c.Crontab.Binary = constants.DefaultCrontabBinary
	}
	if c.Crontab.Match == "" {
		c.Crontab.Match = constants.MatchCommand
	}

	if c.Logging.Level == "" {
		c.Logging.Level = constants.DefaultLogLevel
	}
	if c.Logging.Format == "" {
		c.Logging.Format = constants.DefaultLogFormat
	}
	if c.Logging.Output == "" {
		c.Logging.Output = constants.DefaultLogOutput
	}

	if len(c.Jobs) == 0 {
		c.Jobs = DefaultJobs()
	}
}
