package fileutil

import (
	"fmt"
	"os"
	"path/filepath"
)

// IgnoreFileName is the ignore file edited when none is given.
const IgnoreFileName = ".gitignore"

// ConfigFileName is the manifest read by apply when none is given.
const ConfigFileName = "ignoredit.yaml"

// IgnorePath returns the .gitignore path for a repository.
func IgnorePath(repoDir string) string {
	return filepath.Join(repoDir, IgnoreFileName)
}

// EnsureFile creates path, and its parent directories, as an empty file if it
// does not exist yet. Existing files are left untouched.
func EnsureFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", filepath.Dir(path), err)
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE, 0o644)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	return f.Close()
}

// LogError prints a formatted diagnostic line to stderr.
func LogError(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
}
