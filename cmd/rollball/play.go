package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/rollball/internal/core"
	"github.com/vovakirdan/rollball/internal/games/rollball"
	"github.com/vovakirdan/rollball/internal/platform/tui"
	"github.com/vovakirdan/rollball/internal/storage"
)

var (
	flagPlayer     string
	flagStartLevel int
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play rollball",
	Long: `Start a rollball session in the terminal.

Controls:
  Arrows/WASD - Roll
  Space       - Jump (hold for height)
  Enter       - Start
  P           - Pause
  R           - Restart
  H/?         - Help (from the menu)
  T           - Next theme
  C           - Next camera
  M/Esc       - Back to menu
  Ctrl+S      - Capture state to ~/.rollball/captures
  Q/Ctrl+C    - Quit

Difficulty options:
  easy   - More lives, longer dwell limit, fewer holes
  normal - Default settings
  hard   - Fewer lives, shorter dwell limit, more holes

Examples:
  rollball play
  rollball play --difficulty easy
  rollball play --seed 42
  rollball play --level 5
  rollball play --config ./my-rollball.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagPlayer, "player", os.Getenv("USER"), "Player name recorded with runs")
	playCmd.Flags().IntVar(&flagStartLevel, "level", 1, "Level every run starts at")
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog, err := newLogger(flagLogFile, "rollball")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	defaults := core.DefaultConfig()
	width, height := defaults.ScreenW, defaults.ScreenH
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	game, err := rollball.New(rollball.Options{
		Config:     cfg,
		Seed:       seed,
		Logger:     logger,
		StartLevel: flagStartLevel,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}
	logger.Info("session started", "seed", seed, "difficulty", cfg.Difficulty.Preset)

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("could not open scores database", "error", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(game, store, width, height, tui.ModelOptions{
		TickRate: flagFPS,
		Player:   flagPlayer,
		Logger:   logger,
	})

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		closeLog()
		os.Exit(1)
	}
}
