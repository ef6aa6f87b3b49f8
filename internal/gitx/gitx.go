// Package gitx shells out to git (and the gh CLI when present) for
// the side effects the workflow performs around a negotiation.
package gitx

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strings"
)

// Runner executes git commands in a repository. An empty Dir means the
// current working directory.
type Runner struct {
	Dir string
}

func (r Runner) run(args ...string) (string, error) {
	cmd := exec.Command("git", args...)
	cmd.Dir = r.Dir

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	out, err := cmd.Output()
	if err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg != "" {
			return "", fmt.Errorf("git %s: %s", args[0], msg)
		}
		return "", fmt.Errorf("git %s: %w", args[0], err)
	}
	return strings.TrimSpace(string(out)), nil
}

// StageAll stages every pending change, mirroring `git add .`.
func (r Runner) StageAll() error {
	_, err := r.run("add", ".")
	return err
}

// StagedDiff returns the diff of the index against HEAD. This is the
// change-description snapshot: callers capture it once and reuse the
// same text for every negotiation.
func (r Runner) StagedDiff() (string, error) {
	return r.run("diff", "--cached")
}

// CurrentBranch returns the checked-out branch name.
func (r Runner) CurrentBranch() (string, error) {
	return r.run("rev-parse", "--abbrev-ref", "HEAD")
}

// CreateBranch creates and checks out a new branch. Callers verify the
// switch with CurrentBranch; creation can fail when the name already
// exists.
func (r Runner) CreateBranch(name string) error {
	_, err := r.run("checkout", "-b", name)
	return err
}

// Checkout switches to an existing branch.
func (r Runner) Checkout(name string) error {
	_, err := r.run("checkout", name)
	return err
}

// Commit records the staged changes with the given message.
func (r Runner) Commit(message string) error {
	_, err := r.run("commit", "-m", message)
	return err
}

// Push pushes the branch to origin, setting the upstream for a newly
// created branch.
func (r Runner) Push(branch string, setUpstream bool) error {
	args := []string{"push", "origin", branch}
	if setUpstream {
		args = []string{"push", "--set-upstream", "origin", branch}
	}
	_, err := r.run(args...)
	return err
}

// RemoteURL returns the origin remote URL, or "" when unset.
func (r Runner) RemoteURL() (string, error) {
	out, err := r.run("config", "--get", "remote.origin.url")
	if err != nil {
		// An unset key is a normal condition, not a failure.
		return "", nil
	}
	return out, nil
}

// CompareURL derives the GitHub "open a pull request" URL for a branch
// from the origin remote. Returns "" for non-GitHub remotes.
func CompareURL(remote, branch string) string {
	var repo string
	switch {
	case strings.HasPrefix(remote, "https://github.com/"):
		repo = strings.TrimPrefix(remote, "https://github.com/")
	case strings.HasPrefix(remote, "git@github.com:"):
		repo = strings.TrimPrefix(remote, "git@github.com:")
	default:
		return ""
	}
	repo = strings.TrimSuffix(repo, ".git")
	if repo == "" {
		return ""
	}
	return fmt.Sprintf("https://github.com/%s/pull/new/%s", repo, branch)
}

// HasGH reports whether the gh CLI is installed.
func HasGH() bool {
	_, err := exec.LookPath("gh")
	return err == nil
}

// CreatePR opens a pull request for the current branch via the gh CLI.
// gh's own output (including the PR URL) goes straight to the user.
func (r Runner) CreatePR(title, body string) error {
	cmd := exec.Command("gh", "pr", "create", "--title", title, "--body", body)
	cmd.Dir = r.Dir
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("gh pr create: %w", err)
	}
	return nil
}

// OpenBrowser opens the given URL in the user's default browser.
func OpenBrowser(url string) error {
	switch runtime.GOOS {
	case "linux":
		return exec.Command("xdg-open", url).Start()
	case "darwin":
		return exec.Command("open", url).Start()
	case "windows":
		return exec.Command("rundll32", "url.dll,FileProtocolHandler", url).Start()
	default:
		return fmt.Errorf("unsupported platform %s", runtime.GOOS)
	}
}
