package constants

// DefaultVersion is the default version of the application
const DefaultVersion = "0.1.0-dev"

// DefaultBuildTime is the default build time when not provided at build time
const DefaultBuildTime = "unknown"

// DefaultGitCommit is the default git commit hash when not provided at build time
const DefaultGitCommit = "unknown"

// DefaultGoVersion is the default Go version when not provided at build time
const DefaultGoVersion = "unknown"

// DefaultInterpreter runs the project's Python entry points.
const DefaultInterpreter = "/usr/bin/python3"

// DefaultLogsDir is the log directory, relative to the project directory.
const DefaultLogsDir = "logs"

// DefaultCrontabBinary is the system crontab utility.
const DefaultCrontabBinary = "crontab"

// DefaultCrontabTimeoutSeconds bounds a single crontab utility invocation.
const DefaultCrontabTimeoutSeconds = 10

// Logging defaults. Stdout is reserved for the confirmation lines.
const (
	DefaultLogLevel  = "warn"
	DefaultLogFormat = "text"
	DefaultLogOutput = "stderr"
)
