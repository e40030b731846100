package installer

import (
	"fmt"
	"os"
	"path/filepath"
)

// ResolveProjectDir returns the absolute project directory. An empty override
// means the parent of the directory holding the running executable, the way
// <project>/bin/cronsetup is laid out.
func ResolveProjectDir(override string) (string, error) {
	if override != "" {
		dir, err := filepath.Abs(override)
		if err != nil {
			return "", fmt.Errorf("failed to resolve project directory %s: %w", override, err)
		}
		return dir, nil
	}

	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("failed to locate executable: %w", err)
	}
	return projectDirFromExecutable(exe)
}

func projectDirFromExecutable(exe string) (string, error) {
	resolved, err := filepath.EvalSymlinks(exe)
	if err != nil {
		return "", fmt.Errorf("failed to resolve executable path %s: %w", exe, err)
	}
	resolved, err = filepath.Abs(resolved)
	if err != nil {
		return "", fmt.Errorf("failed to resolve executable path %s: %w", exe, err)
	}
	return filepath.Dir(filepath.Dir(resolved)), nil
}
