// Package cli defines the gitscribe command tree.
package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/sprite-ai/gitscribe/internal/app"
	"github.com/sprite-ai/gitscribe/internal/config"
	"github.com/sprite-ai/gitscribe/internal/gitx"
	"github.com/sprite-ai/gitscribe/internal/llm"
	"github.com/sprite-ai/gitscribe/internal/prompt"
	"github.com/sprite-ai/gitscribe/internal/suggest"
	"github.com/sprite-ai/gitscribe/internal/ui"
)

var rootCmd = &cobra.Command{
	Use:   "gitscribe",
	Short: "Negotiate AI-generated commit messages, branch names, and PR metadata",
	Long: `gitscribe stages your changes, captures the diff once, and negotiates
generated artifacts with you: accept with Enter, regenerate with r (the
sampling temperature rises each round), or cancel with anything else.

Examples:
  gitscribe                     # commit message only
  gitscribe -b                  # negotiate a branch name first
  gitscribe -b --pr             # branch, commit, then a pull request
  gitscribe -t fix              # force the fix change type`,
	SilenceUsage: true,
	RunE:         runRoot,
}

func init() {
	rootCmd.Flags().BoolP("branch", "b", false, "negotiate and create a branch before committing")
	rootCmd.Flags().Bool("pr", false, "negotiate a pull request title and body after pushing")
	rootCmd.Flags().StringP("type", "t", "auto", "change type: auto, feat, or fix")
	rootCmd.Flags().Bool("pick-type", false, "choose the change type interactively")
	rootCmd.Flags().StringP("model", "m", "", "override the configured model")
}

// Execute runs the command tree. Error text is printed by cobra; the
// caller maps the error to an exit code.
func Execute() error {
	return rootCmd.Execute()
}

func runRoot(cmd *cobra.Command, args []string) error {
	hintFlag, _ := cmd.Flags().GetString("type")
	hint, err := prompt.ParseTypeHint(hintFlag)
	if err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if model, _ := cmd.Flags().GetString("model"); model != "" {
		cfg.Model = model
	}

	// The credential is a precondition, checked before any other action.
	key, err := config.APIKey()
	if err != nil {
		return err
	}

	console := ui.NewConsole()
	engine := &suggest.Engine{
		Gen:       ui.SpinningGenerator{Inner: llm.NewClient(key), Console: console},
		Model:     cfg.Model,
		Lowercase: cfg.Lowercase,
	}

	branch, _ := cmd.Flags().GetBool("branch")
	pr, _ := cmd.Flags().GetBool("pr")
	pickType, _ := cmd.Flags().GetBool("pick-type")

	a := &app.App{
		Config:      cfg,
		Git:         gitx.Runner{},
		Engine:      engine,
		Decider:     console,
		UI:          console,
		GHAvailable: gitx.HasGH(),
	}

	err = a.Run(cmd.Context(), app.Options{
		Branch:   branch,
		PR:       pr,
		Hint:     hint,
		PickType: pickType,
	})
	if errors.Is(err, app.ErrNothingStaged) {
		console.Successf("No staged changes found. Nothing to commit.")
		return nil
	}
	return err
}
