// Package installer installs, removes and inspects the managed cron jobs of a
// project. Every filesystem step runs before the crontab is touched, and the
// crontab is replaced with one read and one write.
package installer

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/aatumaykin/cronsetup/internal/config"
	"github.com/aatumaykin/cronsetup/internal/constants"
	"github.com/aatumaykin/cronsetup/internal/crontab"
	"github.com/aatumaykin/cronsetup/internal/lock"
	"github.com/aatumaykin/cronsetup/internal/logger"
)

// ErrScriptNotFound is returned when a job's script does not exist.
var ErrScriptNotFound = errors.New("script not found")

// Installer manages the configured jobs of one project.
type Installer struct {
	cfg        *config.Config
	projectDir string
	backend    crontab.Backend
	logger     *logger.Logger
	jobs       []Job
	now        func() time.Time
}

// New creates an Installer. projectDir must be absolute.
func New(cfg *config.Config, projectDir string, backend crontab.Backend, log *logger.Logger) *Installer {
	return &Installer{
		cfg:        cfg,
		projectDir: projectDir,
		backend:    backend,
		logger:     log.With(logger.Field{Key: "project", Value: projectDir}),
		jobs:       BuildJobs(cfg.Project, cfg.Jobs, projectDir),
		now:        time.Now,
	}
}

// Result describes a crontab change.
type Result struct {
	Jobs    []Job          // jobs added, empty on uninstall
	Removed []crontab.Line // entries dropped before adding
	Content string         // the complete new crontab
	Written bool           // false on dry run or when nothing changed
}

// ProjectDir returns the absolute project directory.
func (i *Installer) ProjectDir() string {
	return i.projectDir
}

// ProjectID returns the id written into entry tags: project.id, or the
// project directory when unset.
func (i *Installer) ProjectID() string {
	if i.cfg.Project.ID != "" {
		return i.cfg.Project.ID
	}
	return i.projectDir
}

// LogsDir returns the absolute log directory.
func (i *Installer) LogsDir() string {
	return filepath.Join(i.projectDir, i.cfg.Project.LogsDir)
}

// Jobs returns the resolved jobs.
func (i *Installer) Jobs() []Job {
	return i.jobs
}

// Prepare makes every script executable and creates the log directory.
func (i *Installer) Prepare() error {
	if err := i.checkScripts(); err != nil {
		return err
	}
	for _, job := range i.jobs {
		if err := makeExecutable(job.Script); err != nil {
			i.logger.Error("failed to make script executable", err,
				logger.Field{Key: "job", Value: job.Name},
				logger.Field{Key: "script", Value: job.Script})
			return err
		}
	}

	if err := os.MkdirAll(i.LogsDir(), 0755); err != nil {
		i.logger.Error("failed to create log directory", err,
			logger.Field{Key: "dir", Value: i.LogsDir()})
		return fmt.Errorf("failed to create log directory %s: %w", i.LogsDir(), err)
	}

	i.logger.Debug("project prepared", logger.Field{Key: "logs", Value: i.LogsDir()})
	return nil
}

// Install prepares the project and replaces any managed entries with fresh
// ones. With dryRun the scripts are only checked and nothing is written.
func (i *Installer) Install(ctx context.Context, dryRun bool) (*Result, error) {
	if dryRun {
		if err := i.checkScripts(); err != nil {
			return nil, err
		}
	} else if err := i.Prepare(); err != nil {
		return nil, err
	}

	return i.update(ctx, dryRun, func(table *crontab.Table) []Job {
		for _, job := range i.jobs {
			if i.cfg.Crontab.Tagged() {
				table.Append(crontab.Tag(i.ProjectID(), job.Name))
			}
			table.Append(job.Line())
		}
		return i.jobs
	})
}

// Uninstall removes the managed entries.
func (i *Installer) Uninstall(ctx context.Context, dryRun bool) (*Result, error) {
	return i.update(ctx, dryRun, func(*crontab.Table) []Job { return nil })
}

// update runs the single read-modify-write cycle under the install lock.
func (i *Installer) update(ctx context.Context, dryRun bool, add func(*crontab.Table) []Job) (*Result, error) {
	if !dryRun {
		l, err := lock.Acquire(i.lockPath())
		if err != nil {
			return nil, err
		}
		i.logger.Debug("lock acquired", logger.Field{Key: "lock", Value: l.Path()})
		defer func() {
			if err := l.Release(); err != nil {
				i.logger.Warn("failed to release lock", logger.Field{Key: "error", Value: err})
			}
		}()
	}

	current, err := i.backend.Read(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read crontab: %w", err)
	}

	table := crontab.Parse(current)
	i.logger.Debug("crontab read", logger.Field{Key: "lines", Value: table.Len()})
	removed := table.Prune(i.matcher())
	added := add(table)
	content := table.String()

	for _, line := range removed {
		i.logger.Info("removing cron entry", logger.Field{Key: "entry", Value: line.Raw})
	}

	result := &Result{Jobs: added, Removed: removed, Content: content}
	if dryRun || content == current {
		return result, nil
	}

	if err := i.backend.Write(ctx, content); err != nil {
		return nil, fmt.Errorf("failed to write crontab: %w", err)
	}
	result.Written = true

	i.logger.Info("crontab updated",
		logger.Field{Key: "added", Value: len(added)},
		logger.Field{Key: "removed", Value: len(removed)})
	return result, nil
}

func (i *Installer) matcher() crontab.Matcher {
	m := crontab.Matcher{
		Project:   i.ProjectID(),
		Substring: i.cfg.Crontab.Match == constants.MatchSubstring,
	}
	for _, job := range i.jobs {
		m.Scripts = append(m.Scripts, job.Script)
		m.Names = append(m.Names, job.Name)
	}
	return m
}

func (i *Installer) lockPath() string {
	if i.cfg.Crontab.LockFile != "" {
		return i.cfg.Crontab.LockFile
	}
	return lock.DefaultPath()
}

func (i *Installer) checkScripts() error {
	for _, job := range i.jobs {
		if _, err := os.Stat(job.Script); err != nil {
			return scriptError(job.Script, err)
		}
	}
	return nil
}

// makeExecutable adds the execute bits like `chmod +x`.
func makeExecutable(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return scriptError(path, err)
	}
	if info.IsDir() {
		return fmt.Errorf("%w: %s is a directory", ErrScriptNotFound, path)
	}

	mode := info.Mode().Perm()
	if mode&0111 == 0111 {
		return nil
	}
	if err := os.Chmod(path, mode|0111); err != nil {
		return fmt.Errorf("failed to make %s executable: %w", path, err)
	}
	return nil
}

func scriptError(path string, err error) error {
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %s", ErrScriptNotFound, path)
	}
	return fmt.Errorf("failed to stat %s: %w", path, err)
}
