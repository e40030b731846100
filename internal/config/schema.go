// Package config provides configuration loading and validation for cronsetup.
// The configuration file is optional TOML; every key has a default that
// reproduces the stock scraper/watchdog installation.
//
// Configuration structure:
//   - [project]: project directory, logs directory and interpreter
//   - [crontab]: crontab target, matching mode and lock settings
//   - [logging]: logging level, format, and output
//   - [[jobs]]: managed job definitions
//
// Environment variables:
// Path values may reference ${VAR} or ${VAR:default}.
// For example: dir = "${SCRAPER_HOME:/opt/scraper}"
package config

import (
	"time"

	"github.com/aatumaykin/cronsetup/internal/constants"
)

// Config represents the main application configuration.
type Config struct {
	Project ProjectConfig `toml:"project"`
	Crontab CrontabConfig `toml:"crontab"`
	Logging LoggingConfig `toml:"logging"`
	Jobs    []JobConfig   `toml:"jobs"`
}

// ProjectConfig представляет конфигурацию проекта
type ProjectConfig struct {
	// ID scopes entry tags to this installation. Empty means the project directory.
	ID          string `toml:"id"`
	Dir         string `toml:"dir"`
	LogsDir     string `toml:"logs_dir"`
	Interpreter string `toml:"interpreter"`
}

// CrontabConfig представляет конфигурацию crontab
type CrontabConfig struct {
	Binary         string `toml:"binary"`
	File           string `toml:"file"`
	Match          string `toml:"match"`
	TagEntries     *bool  `toml:"tag_entries"`
	TimeoutSeconds *int   `toml:"timeout_seconds"`
	LockFile       string `toml:"lock_file"`
}

// Timeout bounds one crontab utility call. Unset means the default;
// an explicit 0 disables the deadline.
func (c CrontabConfig) Timeout() time.Duration {
	if c.TimeoutSeconds == nil {
		return constants.DefaultCrontabTimeoutSeconds * time.Second
	}
	return time.Duration(*c.TimeoutSeconds) * time.Second
}

// Tagged reports whether managed entries get a marker comment. Defaults to true.
func (c CrontabConfig) Tagged() bool {
	return c.TagEntries == nil || *c.TagEntries
}

// LoggingConfig представляет конфигурацию логирования
type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
	Output string `toml:"output"`
}

// JobConfig describes one managed cron entry.
type JobConfig struct {
	Name     string `toml:"name"`
	Schedule string `toml:"schedule"`
	Script   string `toml:"script"`
	Log      string `toml:"log"`
}
