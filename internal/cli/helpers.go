package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/re-cinq/ignoredit/gitignore"
	"github.com/re-cinq/ignoredit/internal/config"
	"github.com/re-cinq/ignoredit/internal/fileutil"
	"github.com/re-cinq/ignoredit/internal/git"
)

// openIgnoreFile resolves the target ignore file from the global flags and binds it.
func openIgnoreFile() (*gitignore.PatternFile, error) {
	path, err := resolveIgnorePath()
	if err != nil {
		return nil, err
	}
	// .git/info/exclude is optional in a repository, so it is always created on demand.
	if createFile || useExclude {
		if err := fileutil.EnsureFile(path); err != nil {
			return nil, err
		}
	}
	return gitignore.New(path)
}

// resolveIgnorePath returns --file if set, .git/info/exclude with --exclude,
// and otherwise the .gitignore at the root of the enclosing repository.
func resolveIgnorePath() (string, error) {
	if ignorePath != "" {
		return ignorePath, nil
	}
	if useExclude {
		path, err := git.ExcludePath(".")
		if err != nil {
			return "", fmt.Errorf("locating .git/info/exclude: %w", err)
		}
		return path, nil
	}
	repoDir, err := resolveRepo(".")
	if err != nil {
		return "", err
	}
	return fileutil.IgnorePath(repoDir), nil
}

// resolveRepo finds the repository root for dir, asking git first and
// walking up for a .git entry when git is unavailable.
func resolveRepo(dir string) (string, error) {
	if top, err := git.TopLevel(dir); err == nil {
		return top, nil
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}
	repoDir := findGitRoot(abs)
	if repoDir == "" {
		return "", fmt.Errorf("could not find git repository root (use --file to name the ignore file)")
	}
	return repoDir, nil
}

// loadAndValidateConfig loads a config file and validates it, printing errors to stderr.
func loadAndValidateConfig(path string) (*config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		fileutil.LogError("Error: %s", err)
		return nil, err
	}

	errs := config.Validate(cfg)
	if len(errs) > 0 {
		for _, e := range errs {
			fileutil.LogError("Error: %s", e)
		}
		return nil, fmt.Errorf("%d validation error(s)", len(errs))
	}

	return cfg, nil
}

// resolveConfigPath returns --config if set, otherwise the nearest
// ignoredit.yaml found walking up from the working directory.
func resolveConfigPath(flagValue string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	path := findFileUp(wd, fileutil.ConfigFileName)
	if path == "" {
		return "", fmt.Errorf("no %s found in %s or any parent directory", fileutil.ConfigFileName, wd)
	}
	return path, nil
}

// findGitRoot walks up from dir looking for a .git directory.
func findGitRoot(dir string) string {
	return walkUpUntil(dir, func(d string) bool {
		_, err := os.Stat(filepath.Join(d, ".git"))
		return err == nil
	})
}

// walkUpUntil walks up the directory tree from dir, calling check on each directory.
// Returns the first directory where check returns true, or "" if none found.
func walkUpUntil(dir string, check func(string) bool) string {
	for {
		if check(dir) {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

// findFileUp walks up from dir looking for filename.
// Returns the full path of the nearest match, or "" if none found.
func findFileUp(dir, filename string) string {
	foundDir := walkUpUntil(dir, func(d string) bool {
		_, err := os.Stat(filepath.Join(d, filename))
		return err == nil
	})
	if foundDir == "" {
		return ""
	}
	return filepath.Join(foundDir, filename)
}
