// Package app sequences the negotiations and performs the git and PR
// side effects around them.
package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sprite-ai/gitscribe/internal/config"
	"github.com/sprite-ai/gitscribe/internal/diff"
	"github.com/sprite-ai/gitscribe/internal/gitx"
	"github.com/sprite-ai/gitscribe/internal/negotiate"
	"github.com/sprite-ai/gitscribe/internal/prompt"
	"github.com/sprite-ai/gitscribe/internal/suggest"
	"github.com/sprite-ai/gitscribe/internal/ui"
)

// ErrNothingStaged reports the graceful no-op case: there is no staged
// change to describe.
var ErrNothingStaged = errors.New("no staged changes found")

// GitClient is the slice of git the workflow needs. gitx.Runner is the
// real implementation; tests substitute a fake.
type GitClient interface {
	StageAll() error
	StagedDiff() (string, error)
	CurrentBranch() (string, error)
	CreateBranch(name string) error
	Checkout(name string) error
	Commit(message string) error
	Push(branch string, setUpstream bool) error
	RemoteURL() (string, error)
	CreatePR(title, body string) error
}

// Options selects the optional parts of the workflow.
type Options struct {
	Branch   bool // negotiate and create a branch first
	PR       bool // produce PR metadata after a successful push
	Hint     prompt.TypeHint
	PickType bool // run the interactive change-type picker
}

// App wires the workflow's collaborators together.
type App struct {
	Config      config.Config
	Git         GitClient
	Engine      negotiate.Suggester
	Decider     negotiate.DecisionProvider
	UI          *ui.Console
	GHAvailable bool
	OpenBrowser func(url string) error
}

// Run drives the full workflow: snapshot the staged diff once, then
// negotiate a branch name (optional), a commit message, and PR
// metadata, committing and pushing in between. Every negotiation
// reuses the identical snapshot text with independent history and
// temperature state.
func (a *App) Run(ctx context.Context, opts Options) error {
	if err := a.Git.StageAll(); err != nil {
		return fmt.Errorf("staging changes: %w", err)
	}

	change, err := a.Git.StagedDiff()
	if err != nil {
		return fmt.Errorf("reading staged diff: %w", err)
	}
	if strings.TrimSpace(change) == "" {
		return ErrNothingStaged
	}

	a.showStats(change)

	hint := opts.Hint
	if opts.PickType && hint == prompt.HintAuto {
		hint, err = a.UI.ChooseType()
		if err != nil {
			return err
		}
	}

	originalBranch, err := a.Git.CurrentBranch()
	if err != nil {
		return fmt.Errorf("resolving current branch: %w", err)
	}

	loop := &negotiate.Loop{Engine: a.Engine, Decider: a.Decider}

	branchName := ""
	branchCreated := false
	if opts.Branch {
		branchName, branchCreated, err = a.negotiateBranch(ctx, loop, change, hint, originalBranch)
		if err != nil {
			return err
		}
	}

	out, err := loop.Run(ctx, prompt.CommitMessage, change, hint, a.Config.BaseTemperature(prompt.CommitMessage))
	if err != nil {
		return err
	}
	if !out.Accepted {
		a.UI.Warnf("Commit canceled.")
		return a.offerReturn(originalBranch, branchName, branchCreated)
	}
	message := out.Text

	currentBranch, err := a.Git.CurrentBranch()
	if err != nil {
		return fmt.Errorf("resolving current branch: %w", err)
	}

	a.UI.Infof("Commit review:")
	a.UI.Infof("  Message: %q", message)
	if branchCreated {
		a.UI.Infof("  Branch:  %s (new)", currentBranch)
	} else {
		a.UI.Infof("  Branch:  %s (current)", currentBranch)
	}

	proceed, err := a.UI.Confirm("Proceed with commit and push?", true)
	if err != nil {
		return err
	}
	if !proceed {
		a.UI.Warnf("Operation canceled.")
		return a.offerReturn(originalBranch, branchName, branchCreated)
	}

	if err := a.Git.Commit(message); err != nil {
		return fmt.Errorf("committing: %w", err)
	}

	branchToPush, err := a.Git.CurrentBranch()
	if err != nil {
		return fmt.Errorf("resolving current branch: %w", err)
	}
	a.UI.Infof("Pushing to branch %q...", branchToPush)
	if err := a.Git.Push(branchToPush, branchCreated && branchToPush == branchName); err != nil {
		return fmt.Errorf("pushing: %w", err)
	}
	a.UI.Successf("Committed and pushed.")

	if opts.PR {
		return a.pullRequest(ctx, loop, change, hint, branchToPush)
	}
	return nil
}

func (a *App) showStats(change string) {
	snap, err := diff.Parse(change)
	if err != nil {
		// Stats are cosmetic; the raw snapshot still drives everything.
		return
	}
	files, added, deleted := snap.Stats()
	a.UI.Infof("%d file(s) staged, +%d -%d", files, added, deleted)
}

// negotiateBranch runs the branch-name loop and performs the checkout.
// It reports the accepted name and whether a new branch is active.
func (a *App) negotiateBranch(ctx context.Context, loop *negotiate.Loop, change string, hint prompt.TypeHint, originalBranch string) (string, bool, error) {
	out, err := loop.Run(ctx, prompt.BranchName, change, hint, a.Config.BaseTemperature(prompt.BranchName))
	if err != nil {
		return "", false, err
	}
	if !out.Accepted {
		a.UI.Warnf("Branch creation canceled. Continuing on the current branch.")
		return "", false, nil
	}

	name := out.Text
	if name == originalBranch {
		a.UI.Warnf("The suggested branch %q is the same as the current branch. No new branch will be created.", name)
		return "", false, nil
	}

	a.UI.Infof("Creating and checking out branch %q...", name)
	if err := a.Git.CreateBranch(name); err != nil {
		a.UI.Warnf("Could not create branch %q: %v", name, err)
	}

	// Verify the switch actually happened; checkout -b fails when the
	// name already exists.
	current, err := a.Git.CurrentBranch()
	if err != nil {
		return "", false, fmt.Errorf("resolving current branch: %w", err)
	}
	if current != name {
		a.UI.Warnf("Could not switch to branch %q. Continuing on %q.", name, originalBranch)
		return "", false, nil
	}

	a.UI.Successf("Switched to new branch %q.", name)
	return name, true, nil
}

// offerReturn asks — never automatically — whether to go back to the
// original branch after a cancellation that left a new branch behind.
func (a *App) offerReturn(originalBranch, branchName string, branchCreated bool) error {
	if !branchCreated || branchName == originalBranch {
		return nil
	}

	back, err := a.UI.Confirm(
		fmt.Sprintf("You created branch %q. Return to the original branch %q?", branchName, originalBranch),
		false)
	if err != nil {
		return err
	}
	if !back {
		a.UI.Infof("Staying on branch %q.", branchName)
		return nil
	}

	if err := a.Git.Checkout(originalBranch); err != nil {
		return fmt.Errorf("returning to %q: %w", originalBranch, err)
	}
	a.UI.Successf("Returned to %q.", originalBranch)
	return nil
}

// pullRequest negotiates the PR title, generates the body in a single
// shot, and opens the PR via gh or the browser compare URL.
func (a *App) pullRequest(ctx context.Context, loop *negotiate.Loop, change string, hint prompt.TypeHint, branch string) error {
	out, err := loop.Run(ctx, prompt.PullRequestTitle, change, hint, a.Config.BaseTemperature(prompt.PullRequestTitle))
	if err != nil {
		return err
	}
	if !out.Accepted {
		a.UI.Warnf("Pull request canceled.")
		return nil
	}
	title := out.Text

	// The accepted title's prefix is the final word on the change
	// type; fall back to the original hint.
	bodyHint := hint
	if idx := strings.Index(title, ":"); idx > 0 {
		if p := strings.ToLower(strings.TrimSpace(title[:idx])); prompt.KnownPrefix(p) {
			bodyHint = prompt.TypeHint(p)
		}
	}

	body, err := a.Engine.Suggest(ctx, suggest.Request{
		Kind:        prompt.PullRequestBody,
		Change:      change,
		Hint:        bodyHint,
		Temperature: a.Config.BaseTemperature(prompt.PullRequestBody),
	})
	if err != nil {
		return err
	}

	if a.GHAvailable {
		a.UI.Infof("Opening pull request via gh...")
		if err := a.Git.CreatePR(title, body); err != nil {
			return err
		}
		return nil
	}

	remote, err := a.Git.RemoteURL()
	if err != nil {
		return fmt.Errorf("reading remote: %w", err)
	}
	url := gitx.CompareURL(remote, branch)
	if url == "" {
		a.UI.Warnf("No GitHub remote detected; paste the PR metadata yourself:")
		fmt.Fprintf(a.UI.Out, "\n%s\n\n%s\n", title, body)
		return nil
	}

	fmt.Fprintf(a.UI.Out, "\n%s\n\n%s\n", title, body)
	open, err := a.UI.Confirm("Open a pull request in your browser?", true)
	if err != nil {
		return err
	}
	if !open {
		return nil
	}
	if err := a.openURL(url); err != nil {
		a.UI.Warnf("Could not open the browser automatically.")
		a.UI.Infof("Please copy and paste this URL: %s", url)
	}
	return nil
}

func (a *App) openURL(url string) error {
	if a.OpenBrowser != nil {
		return a.OpenBrowser(url)
	}
	return gitx.OpenBrowser(url)
}
