package main

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/aatumaykin/cronsetup/internal/config"
	"github.com/aatumaykin/cronsetup/internal/constants"
	"github.com/aatumaykin/cronsetup/internal/crontab"
	"github.com/aatumaykin/cronsetup/internal/installer"
	"github.com/aatumaykin/cronsetup/internal/logger"
)

// loadConfig resolves the project directory and loads the matching config.
// Precedence for the project directory: --project-dir, project.dir, binary location.
func loadConfig() (*config.Config, string, error) {
	dir, err := installer.ResolveProjectDir(projectDir)
	if err != nil {
		return nil, "", err
	}

	path := configPath
	if path == "" {
		path = filepath.Join(dir, constants.ConfigFileName)
	}

	var cfg *config.Config
	if configPath != "" {
		cfg, err = config.Load(path)
	} else {
		cfg, err = config.LoadOptional(path)
	}
	if err != nil {
		return nil, "", err
	}

	if projectDir == "" && cfg.Project.Dir != "" {
		dir = cfg.Project.Dir
	}
	if crontabFile != "" {
		cfg.Crontab.File = crontabFile
	}
	if debug {
		cfg.Logging.Level = "debug"
	}

	if errs := cfg.Validate(); len(errs) > 0 {
		var b strings.Builder
		b.WriteString(constants.MsgConfigValidationError)
		for _, e := range errs {
			fmt.Fprintf(&b, constants.MsgConfigValidatePrefix, e)
		}
		return nil, "", errors.New(strings.TrimSuffix(b.String(), "\n"))
	}

	return cfg, dir, nil
}

// newInstaller wires config, logger and crontab backend together.
func newInstaller() (*installer.Installer, error) {
	cfg, dir, err := loadConfig()
	if err != nil {
		return nil, err
	}

	log, err := logger.New(logger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: cfg.Logging.Output,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	var backend crontab.Backend
	if cfg.Crontab.File != "" {
		backend = crontab.NewFile(cfg.Crontab.File, log)
	} else {
		backend = crontab.NewSystem(cfg.Crontab.Binary, cfg.Crontab.Timeout(), log)
	}

	log.Debug("installer configured",
		logger.Field{Key: "project", Value: dir},
		logger.Field{Key: "jobs", Value: len(cfg.Jobs)})

	return installer.New(cfg, dir, backend, log), nil
}
