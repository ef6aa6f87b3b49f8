package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sprite-ai/gitscribe/internal/diff"
	"github.com/sprite-ai/gitscribe/internal/gitx"
)

var statCmd = &cobra.Command{
	Use:   "stat",
	Short: "Print staged diff statistics and exit",
	Long: `Print the per-file statistics of the staged diff, without staging
anything or contacting the generation service.`,
	RunE: runStat,
}

func init() {
	rootCmd.AddCommand(statCmd)
}

func runStat(cmd *cobra.Command, args []string) error {
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

	files, added, deleted := snap.Stats()
	fmt.Printf("%d file(s) staged, %d insertions(+), %d deletions(-)\n\n", files, added, deleted)
	for _, f := range snap.Files {
		fmt.Printf("  %s %-50s +%-4d -%d\n", f.Status(), f.Name(), f.AddedLines, f.DeletedLines)
	}
	return nil
}
