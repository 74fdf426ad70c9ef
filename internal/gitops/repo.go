// Package gitops wraps the git command line for the repository-facing gitex
// commands. All execution goes through system.CommandRunner so the command
// sequences can be verified in tests.
package gitops

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/AndreaPallotta/gitex/internal/system"
)

// ErrNotRepository marks paths that exist but do not contain a .git
// directory. Callers that can fall back to running outside a repository
// test for it with errors.Is.
var ErrNotRepository = errors.New("not a git project directory")

// Commit is a single entry from the repository log
type Commit struct {
	Hash    string
	Subject string
}

// String returns the commit in `git log --oneline` form
func (c Commit) String() string {
	if c.Subject == "" {
		return c.Hash
	}
	return c.Hash + " " + c.Subject
}

// Repo represents an opened git repository
type Repo struct {
	dir    string
	runner system.CommandRunner
}

// Discover checks that path contains a .git directory and returns the
// absolute repository path.
func Discover(path string) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to resolve path %s: %w", path, err)
	}

	info, err := os.Stat(filepath.Join(absPath, ".git"))
	if err != nil {
		if !os.IsNotExist(err) {
			return "", fmt.Errorf("cannot access %s: %w", absPath, err)
		}
		if _, statErr := os.Stat(absPath); statErr != nil {
			return "", fmt.Errorf("cannot access %s: %w", absPath, statErr)
		}
		return "", fmt.Errorf("%s is %w", absPath, ErrNotRepository)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("%s is %w", absPath, ErrNotRepository)
	}

	return absPath, nil
}

// Open discovers the repository at path and returns a Repo backed by the
// default command runner.
func Open(path string) (*Repo, error) {
	return OpenWithRunner(path, system.NewCommandRunner())
}

// OpenWithRunner discovers the repository at path using a caller-provided
// command runner. Used by tests to substitute a mock.
func OpenWithRunner(path string, runner system.CommandRunner) (*Repo, error) {
	dir, err := Discover(path)
	if err != nil {
		return nil, err
	}
	return &Repo{dir: dir, runner: runner}, nil
}

// Dir returns the absolute repository directory
func (r *Repo) Dir() string {
	return r.dir
}

// git runs a git subcommand in the repository directory
func (r *Repo) git(args ...string) (string, error) {
	output, err := r.runner.RunInDir(r.dir, "git", args...)
	if err != nil {
		return output, fmt.Errorf("git %s failed: %w\n%s", strings.Join(args, " "), err, strings.TrimSpace(output))
	}
	return output, nil
}

// Pull runs `git pull` and returns its output
func (r *Repo) Pull() (string, error) {
	return r.git("pull")
}

// AddAll stages all changes
func (r *Repo) AddAll() error {
	_, err := r.git("add", ".")
	return err
}

// Commit creates a commit with the given message
func (r *Repo) Commit(message string) error {
	_, err := r.git("commit", "-m", message)
	return err
}

// Push pushes the current branch
func (r *Repo) Push() error {
	_, err := r.git("push")
	return err
}

// Checkout switches to the given branch
func (r *Repo) Checkout(branch string) error {
	_, err := r.git("checkout", branch)
	return err
}

// Log returns the commit list in `git log --oneline` order
func (r *Repo) Log() ([]Commit, error) {
	output, err := r.git("log", "--oneline")
	if err != nil {
		return nil, err
	}

	var commits []Commit
	for _, line := range strings.Split(strings.TrimSpace(output), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		hash, subject, _ := strings.Cut(line, " ")
		commits = append(commits, Commit{Hash: hash, Subject: subject})
	}

	return commits, nil
}

// CherryPick applies the given commit onto the current branch
func (r *Repo) CherryPick(ref string) error {
	_, err := r.git("cherry-pick", ref)
	return err
}

// SkipCherryPick skips the current conflicted commit and continues the
// cherry-pick sequence
func (r *Repo) SkipCherryPick() error {
	_, err := r.git("cherry-pick", "--skip")
	return err
}

// AbortCherryPick abandons the in-progress cherry-pick sequence
func (r *Repo) AbortCherryPick() error {
	_, err := r.git("cherry-pick", "--abort")
	return err
}

// CherryPickResult reports which commits a CherryPickAll run applied and
// which it skipped over conflicts.
type CherryPickResult struct {
	Picked  []string
	Skipped []string
}

// CherryPickAll checks out branch and applies the commits in order. A
// conflict aborts the sequence, unless autoResolve is set, in which case
// the conflicting commit is skipped and picking continues with the next
// one.
func (r *Repo) CherryPickAll(commits []string, branch string, autoResolve bool) (CherryPickResult, error) {
	var result CherryPickResult

	if err := r.Checkout(branch); err != nil {
		return result, err
	}

	for _, commit := range commits {
		if err := r.CherryPick(commit); err != nil {
			if autoResolve {
				if skipErr := r.SkipCherryPick(); skipErr != nil {
					return result, fmt.Errorf("failed to skip conflicting commit %s: %w", commit, skipErr)
				}
				result.Skipped = append(result.Skipped, commit)
				continue
			}

			if abortErr := r.AbortCherryPick(); abortErr != nil {
				return result, fmt.Errorf("failed to abort cherry-pick: %w", abortErr)
			}
			return result, fmt.Errorf("cherry-pick of %s conflicted and was aborted", commit)
		}
		result.Picked = append(result.Picked, commit)
	}

	return result, nil
}

// RunCommand executes an arbitrary command (typically an expanded alias) in
// the repository directory and returns its combined output.
func (r *Repo) RunCommand(argv []string) (string, error) {
	if len(argv) == 0 {
		return "", fmt.Errorf("empty command")
	}
	return r.runner.RunInDir(r.dir, argv[0], argv[1:]...)
}
