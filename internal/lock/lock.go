// Package lock serialises installer runs of one user with an flock-held lock file.
package lock

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/aatumaykin/cronsetup/internal/constants"
)

// ErrLocked means another process holds the lock.
var ErrLocked = errors.New("another installation is in progress")

// Lock is a held lock file.
type Lock struct {
	path string
	file *os.File
}

// DefaultPath returns the per-user lock file in the temp directory.
func DefaultPath() string {
	return filepath.Join(os.TempDir(), fmt.Sprintf(constants.LockFileFormat, os.Getuid()))
}

// Acquire opens path, takes an exclusive non-blocking flock on it and records
// the current PID. The kernel drops the flock when the holder exits, so a file
// left behind by a crashed run is taken over without any staleness check.
func Acquire(path string) (*Lock, error) {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR, 0600)
	if err != nil {
		return nil, fmt.Errorf("failed to open lock file: %w", err)
	}

	if err := syscall.Flock(int(file.Fd()), syscall.LOCK_EX|syscall.LOCK_NB); err != nil {
		file.Close()
		if errors.Is(err, syscall.EWOULDBLOCK) {
			// The holder may not have written its PID yet.
			if pid, err := ReadPID(path); err == nil {
				return nil, fmt.Errorf("%w (pid %d holds %s)", ErrLocked, pid, path)
			}
			return nil, fmt.Errorf("%w (%s is held)", ErrLocked, path)
		}
		return nil, fmt.Errorf("failed to lock %s: %w", path, err)
	}

	if err := writePID(file, os.Getpid()); err != nil {
		syscall.Flock(int(file.Fd()), syscall.LOCK_UN)
		file.Close()
		return nil, fmt.Errorf("failed to write lock file: %w", err)
	}

	return &Lock{path: path, file: file}, nil
}

// Path returns the lock file location.
func (l *Lock) Path() string {
	return l.path
}

// Release снимает блокировку. The file itself stays: removing it would let a
// waiter that already opened the old inode and a newcomer lock different files.
func (l *Lock) Release() error {
	if l.file == nil {
		return nil
	}
	file := l.file
	l.file = nil

	if err := syscall.Flock(int(file.Fd()), syscall.LOCK_UN); err != nil {
		file.Close()
		return fmt.Errorf("failed to unlock %s: %w", l.path, err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to close lock file: %w", err)
	}
	return nil
}

func writePID(file *os.File, pid int) error {
	if err := file.Truncate(0); err != nil {
		return err
	}
	_, err := file.WriteAt([]byte(fmt.Sprintf("%d\n", pid)), 0)
	return err
}

// ReadPID читает PID из файла
func ReadPID(path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}

	var pid int
	if _, err := fmt.Sscanf(strings.TrimSpace(string(data)), "%d", &pid); err != nil {
		return 0, err
	}

	return pid, nil
}
