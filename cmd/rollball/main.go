// rollball is a terminal arcade game: roll a ball across a tiled floor,
// collect items and stars, and dodge holes, obstacles and the dwell timer.
//
// Usage:
//
//	rollball play            - Play in the terminal
//	rollball serve           - Start SSH server for remote play
//	rollball scores          - Show the leaderboard
//	rollball config          - Print the effective configuration
//	rollball inspect <file>  - Summarize a ctrl+s state capture
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible levels
//	--db <path>           - Set database path (default: ~/.rollball/scores.db)
//	--config <path>       - Load a custom YAML config
//	--difficulty <name>   - easy, normal or hard
//	--log-level <level>   - debug, info, warn, error
//	--log-file <path>     - Log destination ("-" for stderr)
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/rollball/internal/config"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "rollball",
	Short: "Rollball - roll, collect and survive in your terminal",
	Long: `Rollball is a terminal arcade game. Steer a ball over a tiled floor,
pick up every item and star to clear the level, and avoid holes,
obstacles and standing still for too long.

Available commands:
  play     - Play in the terminal
  serve    - Start SSH server for remote play
  scores   - View the leaderboard
  config   - Print the effective configuration
  inspect  - Summarize a state capture

Examples:
  rollball play
  rollball play --difficulty hard --seed 42
  rollball serve --ssh :2222
  rollball scores --interactive`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.rollball/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "~/.rollball/rollball.log", `Log file path ("-" for stderr)`)

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(inspectCmd)
}

// loadConfig resolves the config file and applies the difficulty preset.
func loadConfig() (config.RollballConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.RollballConfig{}, err
	}
	if flagDifficulty != "" {
		preset := config.ParsePreset(flagDifficulty)
		if preset == "" {
			return config.RollballConfig{}, fmt.Errorf("unknown difficulty %q (want easy, normal or hard)", flagDifficulty)
		}
		config.ApplyPreset(&cfg, preset)
	}
	return cfg, cfg.Validate()
}

// newLogger builds the process logger. The terminal belongs to the TUI, so
// logs go to a file unless path is "-". The returned func closes the file.
func newLogger(path, prefix string) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid log level %q: %w", flagLogLevel, err)
	}
	opts := log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	}

	if path == "-" || path == "" {
		return log.NewWithOptions(os.Stderr, opts), func() {}, nil
	}

	if path[0] == '~' {
		home, homeErr := os.UserHomeDir()
		if homeErr != nil {
			return nil, nil, fmt.Errorf("cannot expand home directory: %w", homeErr)
		}
		path = filepath.Join(home, path[1:])
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("cannot create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}
	return log.NewWithOptions(f, opts), func() { f.Close() }, nil
}
