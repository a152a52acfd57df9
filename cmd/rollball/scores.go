package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/rollball/internal/core"
	"github.com/vovakirdan/rollball/internal/platform/tui"
	"github.com/vovakirdan/rollball/internal/storage"
)

const gameID = "rollball"

var (
	flagInteractive bool
	flagLimit       int
	flagScoresUser  string
	flagClear       bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the rollball leaderboard",
	Long: `Display the best recorded runs.

Examples:
  rollball scores
  rollball scores --limit 25
  rollball scores --player alice
  rollball scores --interactive
  rollball scores --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse runs in an interactive table")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().StringVar(&flagScoresUser, "player", "", "Only show runs of this player")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded runs")
}

func runScores(_ *cobra.Command, _ []string) {
	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearRuns(gameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing runs: %v\n", err)
			return
		}
		fmt.Println("All runs deleted.")
		return
	}

	if flagInteractive {
		defaults := core.DefaultConfig()
		width, height := defaults.ScreenW, defaults.ScreenH
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		if err := tui.RunScoreboard(store, gameID, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error running scoreboard: %v\n", err)
		}
		return
	}

	var runs []storage.Run
	if flagScoresUser != "" {
		runs, err = store.PlayerRuns(flagScoresUser, flagLimit)
	} else {
		runs, err = store.TopRuns(gameID, flagLimit)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		return
	}

	fmt.Println("High Scores - Rollball")
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'rollball play' to set the first high score!")
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-8s  %-5s  %-9s  %-12s  %s\n", "Rank", "Score", "Level", "Outcome", "Player", "Date")
	fmt.Printf("  %-4s  %-8s  %-5s  %-9s  %-12s  %s\n", "----", "-----", "-----", "-------", "------", "----")

	for i, r := range runs {
		player := r.Player
		if player == "" {
			player = "-"
		}
		dateStr := r.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-8d  %-5d  %-9s  %-12s  %s\n", i+1, r.Score, r.Level, r.Outcome, player, dateStr)
	}

	stats, err := store.Stats(gameID)
	if err == nil && stats.Runs > 0 {
		fmt.Println()
		fmt.Printf("Best: %d   Runs: %d   Wins: %d   Average: %.1f\n",
			stats.HighScore, stats.Runs, stats.Wins, stats.AvgScore)
	}
}
