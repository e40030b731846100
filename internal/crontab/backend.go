package crontab

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/aatumaykin/cronsetup/internal/logger"
)

// ErrNoCrontabUtility is returned when the crontab binary cannot be found.
var ErrNoCrontabUtility = errors.New("crontab utility not found")

// Backend reads and replaces a whole crontab.
type Backend interface {
	// Read returns the current crontab; an absent crontab is "".
	Read(ctx context.Context) (string, error)
	// Write replaces the crontab with content.
	Write(ctx context.Context, content string) error
}

// System drives the crontab(1) utility of the invoking user.
type System struct {
	binary  string
	timeout time.Duration
	logger  *logger.Logger
}

// NewSystem creates a backend for binary ("crontab" is looked up in PATH).
// A zero timeout disables the per-call deadline.
func NewSystem(binary string, timeout time.Duration, log *logger.Logger) *System {
	return &System{binary: binary, timeout: timeout, logger: log}
}

// Read runs `crontab -l`.
func (s *System) Read(ctx context.Context) (string, error) {
	stdout, stderr, err := s.run(ctx, nil, "-l")
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && isNoCrontab(stderr) {
			s.logger.Debug("no crontab for user, starting empty")
			return "", nil
		}
		return "", commandError("crontab -l", err, stderr)
	}

	s.logger.Debug("crontab read", logger.Field{Key: "bytes", Value: len(stdout)})
	return stdout, nil
}

// Write runs `crontab -` with content on stdin.
func (s *System) Write(ctx context.Context, content string) error {
	_, stderr, err := s.run(ctx, strings.NewReader(content), "-")
	if err != nil {
		return commandError("crontab -", err, stderr)
	}

	s.logger.Debug("crontab written", logger.Field{Key: "bytes", Value: len(content)})
	return nil
}

func (s *System) run(ctx context.Context, stdin *strings.Reader, arg string) (string, string, error) {
	path, err := exec.LookPath(s.binary)
	if err != nil {
		return "", "", fmt.Errorf("%w: %s: %w", ErrNoCrontabUtility, s.binary, err)
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, path, arg)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if stdin != nil {
		cmd.Stdin = stdin
	}

	s.logger.Debug("running crontab utility",
		logger.Field{Key: "path", Value: path},
		logger.Field{Key: "arg", Value: arg})

	err = cmd.Run()
	return stdout.String(), stderr.String(), err
}

// isNoCrontab matches the "no crontab for <user>" message of cronie, vixie
// cron and busybox.
func isNoCrontab(stderr string) bool {
	return strings.Contains(strings.ToLower(stderr), "no crontab for")
}

func commandError(name string, err error, stderr string) error {
	if msg := strings.TrimSpace(stderr); msg != "" {
		return fmt.Errorf("%s: %w: %s", name, err, msg)
	}
	return fmt.Errorf("%s: %w", name, err)
}

// File keeps the crontab in a plain file.
type File struct {
	path   string
	logger *logger.Logger
}

// NewFile creates a file backend for path.
func NewFile(path string, log *logger.Logger) *File {
	return &File{path: path, logger: log}
}

// Read returns the file content, or "" when the file does not exist.
func (f *File) Read(_ context.Context) (string, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("failed to read crontab file: %w", err)
	}
	return string(data), nil
}

// Write replaces the file atomically: a temporary file in the same directory
// is synced and renamed over the target.
func (f *File) Write(_ context.Context, content string) error {
	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create crontab directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(f.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temporary crontab file: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := tmp.WriteString(content); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write temporary crontab file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to sync temporary crontab file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temporary crontab file: %w", err)
	}

	if err := os.Rename(tmpPath, f.path); err != nil {
		return fmt.Errorf("failed to replace crontab file: %w", err)
	}

	f.logger.Debug("crontab file written",
		logger.Field{Key: "file", Value: f.path},
		logger.Field{Key: "bytes", Value: len(content)})
	return nil
}
