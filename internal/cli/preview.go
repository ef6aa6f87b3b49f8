package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sprite-ai/gitscribe/internal/diff"
	"github.com/sprite-ai/gitscribe/internal/gitx"
	"github.com/sprite-ai/gitscribe/internal/ui"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Show the staged diff with syntax highlighting",
	Long: `Render the staged diff the way a negotiation run sees it: the exact
snapshot text, displayed with per-file headers and syntax highlighting.`,
	RunE: runPreview,
}

func init() {
	rootCmd.AddCommand(previewCmd)
}

func runPreview(cmd *cobra.Command, args []string) error {
	raw, err := gitx.Runner{}.StagedDiff()
	if err != nil {
		return err
	}

	snap, err := diff.Parse(raw)
	if err != nil {
		return fmt.Errorf("parsing staged diff: %w", err)
	}
	if snap.Empty() {
		fmt.Println("No staged changes.")
		return nil
	}

	fmt.Print(ui.RenderSnapshot(snap))
	return nil
}
