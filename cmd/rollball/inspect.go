package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/rollball/internal/games/rollball"
	"github.com/vovakirdan/rollball/internal/platform/tui"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <capture>",
	Short: "Summarize a state capture",
	Long: `Print a summary of a capture written with Ctrl+S during play.

Examples:
  rollball inspect ~/.rollball/captures/rollball_20250314_150926_t812.msgpack`,
	Args: cobra.ExactArgs(1),
	Run:  runInspect,
}

func runInspect(_ *cobra.Command, args []string) {
	snap, takenAt, err := tui.LoadCapture(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Captured %s\n\n", takenAt.Format("2006-01-02 15:04:05"))
	fmt.Printf("  Phase     %s\n", snap.Phase)
	fmt.Printf("  Tick      %d (%.2fs)\n", snap.Tick, snap.Elapsed)
	fmt.Printf("  Level     %d/%d\n", snap.Level, snap.MaxLevel)
	fmt.Printf("  Score     %d (high %d)\n", snap.Score, snap.HighScore)
	fmt.Printf("  Lives     %d\n", snap.Lives)
	fmt.Printf("  Ball      pos %v vel %v\n", snap.Ball.Pos, snap.Ball.Vel)
	fmt.Printf("  Cell      %v\n", snap.CellAt(snap.Ball.Pos))
	fmt.Printf("  Speed     x%.2f   score factor x%d\n", snap.SpeedMultiplier, snap.ScoreFactor)
	fmt.Printf("  Grid      %dx%d, %d holes\n", snap.Grid.SizeX, snap.Grid.SizeY, len(snap.Hazards))
	fmt.Printf("  Remaining %d items, %d specials\n", len(snap.Entities.Collectibles), snap.Entities.SpecialsLeft())

	for _, e := range snap.Effects {
		if e.Active {
			fmt.Printf("  Effect    %s %.1fs (x%d)\n", e.Kind, e.Remaining, e.Stacks)
		}
	}
	if snap.Dwell.ShowTimer {
		fmt.Printf("  Dwell     %.1f/%.0fs on %v\n", snap.Dwell.Elapsed, snap.Dwell.Limit, snap.Dwell.Cell)
	}
	if snap.Phase == rollball.PhaseGameOver || snap.Phase == rollball.PhaseWin {
		fmt.Println()
		fmt.Println("Run finished.")
	}
}
