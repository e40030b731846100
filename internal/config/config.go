package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/aatumaykin/cronsetup/internal/constants"
	"github.com/aatumaykin/cronsetup/internal/crontab"
)

// Load загружает конфигурацию из TOML файла
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	applyDefaults(&cfg)
	expandEnvVars(&cfg)

	return &cfg, nil
}

// LoadOptional loads path when it exists and falls back to Default otherwise.
func LoadOptional(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	return Load(path)
}

// Validate проверяет валидность конфигурации
func (c *Config) Validate() []error {
	var errs []error

	if c.Project.Dir != "" && !filepath.IsAbs(c.Project.Dir) {
		errs = append(errs, fmt.Errorf("project.dir must be absolute, got %s", c.Project.Dir))
	}
	if err := validateRelPath(c.Project.LogsDir, "project.logs_dir"); err != nil {
		errs = append(errs, err)
	}
	if strings.ContainsAny(c.Project.ID, "\n\r") {
		errs = append(errs, fmt.Errorf("project.id must be a single line"))
	}
	if c.Project.Interpreter == "" {
		errs = append(errs, fmt.Errorf("project.interpreter is required"))
	}

	switch c.Crontab.Match {
	case constants.MatchCommand, constants.MatchSubstring:
	default:
		errs = append(errs, fmt.Errorf("invalid crontab.match: %s (expected: %s, %s)",
			c.Crontab.Match, constants.MatchCommand, constants.MatchSubstring))
	}
	if c.Crontab.File == "" && c.Crontab.Binary == "" {
		errs = append(errs, fmt.Errorf("crontab.binary is required when crontab.file is empty"))
	}
	if c.Crontab.TimeoutSeconds != nil && *c.Crontab.TimeoutSeconds < 0 {
		errs = append(errs, fmt.Errorf("crontab.timeout_seconds cannot be negative"))
	}

	// Проверка logging config
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[strings.ToLower(c.Logging.Level)] {
		errs = append(errs, fmt.Errorf("invalid logging.level: %s (expected: debug, info, warn, error)", c.Logging.Level))
	}
	validFormats := map[string]bool{"json": true, "text": true}
	if !validFormats[strings.ToLower(c.Logging.Format)] {
		errs = append(errs, fmt.Errorf("invalid logging.format: %s (expected: json, text)", c.Logging.Format))
	}

	if len(c.Jobs) == 0 {
		errs = append(errs, fmt.Errorf("at least one job is required"))
	}
	seen := make(map[string]bool, len(c.Jobs))
	scripts := make(map[string]string, len(c.Jobs))
	for i, job := range c.Jobs {
		field := fmt.Sprintf("jobs[%d]", i)
		if job.Name == "" {
			errs = append(errs, fmt.Errorf("%s.name is required", field))
		} else if strings.ContainsAny(job.Name, " \t\n:") {
			errs = append(errs, fmt.Errorf("%s.name must not contain whitespace or colons: %q", field, job.Name))
		} else if seen[job.Name] {
			errs = append(errs, fmt.Errorf("%s.name is duplicated: %s", field, job.Name))
		}
		seen[job.Name] = true

		if job.Schedule == "" {
			errs = append(errs, fmt.Errorf("%s.schedule is required", field))
		} else if err := crontab.ValidateSchedule(job.Schedule); err != nil {
			errs = append(errs, fmt.Errorf("%s.schedule is invalid: %w", field, err))
		}

		if err := validateRelPath(job.Script, field+".script"); err != nil {
			errs = append(errs, err)
		} else if other, ok := scripts[job.Script]; ok {
			errs = append(errs, fmt.Errorf("%s.script %s is already used by job %s", field, job.Script, other))
		}
		scripts[job.Script] = job.Name

		if err := validateRelPath(job.Log, field+".log"); err != nil {
			errs = append(errs, err)
		}
	}

	return errs
}

func validateRelPath(path, fieldName string) error {
	if path == "" {
		return fmt.Errorf("%s cannot be empty", fieldName)
	}
	if filepath.IsAbs(path) {
		return fmt.Errorf("%s must be relative, got %s", fieldName, path)
	}
	for _, part := range strings.Split(filepath.ToSlash(path), "/") {
		if part == ".." {
			return fmt.Errorf("%s contains potentially dangerous path traversal sequence", fieldName)
		}
	}
	return nil
}

// expandEnvVars расширяет переменные окружения в конфигурации
func expandEnvVars(c *Config) {
	c.Project.ID = expandEnv(c.Project.ID)
	c.Project.Dir = expandHome(expandEnv(c.Project.Dir))
	c.Project.Interpreter = expandHome(expandEnv(c.Project.Interpreter))
	c.Crontab.File = expandHome(expandEnv(c.Crontab.File))
	c.Crontab.LockFile = expandHome(expandEnv(c.Crontab.LockFile))
	c.Logging.Output = expandHome(expandEnv(c.Logging.Output))
}

// expandEnv расширяет переменную окружения формата ${VAR:default}
func expandEnv(s string) string {
	if !strings.HasPrefix(s, "${") {
		return s
	}

	end := strings.Index(s, "}")
	if end == -1 {
		return s
	}

	content := s[2:end]
	rest := s[end+1:]
	if parts := strings.SplitN(content, ":", 2); len(parts) == 2 {
		if val := os.Getenv(parts[0]); val != "" {
			return val + rest
		}
		return parts[1] + rest
	}

	return os.Getenv(content) + rest
}

// expandHome расширяет ~ в пути
func expandHome(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}
