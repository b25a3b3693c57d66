package git

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// gitEnvPrefixes lists git environment variable prefixes that must be stripped
// from child processes. When ignoredit is invoked from a git hook, git sets
// GIT_DIR and friends relative to the repo. If these leak into the child git
// process, GIT_DIR=.git resolves against the wrong directory and the
// work-tree lookup fails or points somewhere else.
var gitEnvPrefixes = []string{
	"GIT_DIR=",
	"GIT_WORK_TREE=",
	"GIT_INDEX_FILE=",
	"GIT_OBJECT_DIRECTORY=",
	"GIT_ALTERNATE_OBJECT_DIRECTORIES=",
	"GIT_COMMON_DIR=",
}

// Run executes a git command in the given directory.
func Run(dir string, args ...string) (string, error) {
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	cmd.Env = append(cleanGitEnv(os.Environ()), "GIT_TERMINAL_PROMPT=0")
	out, err := cmd.CombinedOutput()
	if err != nil {
		return "", fmt.Errorf("git %s: %s: %w", strings.Join(args, " "), strings.TrimSpace(string(out)), err)
	}
	return strings.TrimSpace(string(out)), nil
}

// cleanGitEnv returns a copy of environ with hook-inherited git variables removed.
func cleanGitEnv(environ []string) []string {
	result := make([]string, 0, len(environ))
	for _, e := range environ {
		keep := true
		for _, prefix := range gitEnvPrefixes {
			if strings.HasPrefix(e, prefix) {
				keep = false
				break
			}
		}
		if keep {
			result = append(result, e)
		}
	}
	return result
}

// TopLevel returns the root of the work tree containing dir.
func TopLevel(dir string) (string, error) {
	return Run(dir, "rev-parse", "--show-toplevel")
}

// CommonDir returns the absolute path of the git directory shared by all
// worktrees of the repository containing dir.
func CommonDir(dir string) (string, error) {
	out, err := Run(dir, "rev-parse", "--git-common-dir")
	if err != nil {
		return "", err
	}
	if !filepath.IsAbs(out) {
		out = filepath.Join(dir, out)
	}
	return filepath.Abs(out)
}

// ExcludePath returns the repository-local exclude file, .git/info/exclude.
func ExcludePath(dir string) (string, error) {
	common, err := CommonDir(dir)
	if err != nil {
		return "", err
	}
	return filepath.Join(common, "info", "exclude"), nil
}
