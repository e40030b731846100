package constants

// ConfigFileName is looked up in the project directory when --config is not given.
const ConfigFileName = "cronsetup.toml"

// LockFileFormat names the per-user install lock inside the temp directory.
// Uses printf-style formatting with the numeric user ID.
const LockFileFormat = "cronsetup-%d.lock"
