// cubibird is a side-scrolling arcade game for the terminal: keep the body
// airborne with a single key and dodge the obstacle pairs.
//
// Usage:
//
//	cubibird play            - Play in this terminal
//	cubibird serve           - Start SSH server for remote play
//	cubibird scores          - Show the stored leaderboard
//	cubibird config          - Print the effective configuration
//
// Global flags:
//
//	--seed <value>      - Set RNG seed for reproducible obstacles
//	--db <path>         - Set database path (default: ~/.cubibird/scores.db)
//	--config <path>     - Use a custom game config YAML
//	--theme <path>      - Use a custom theme YAML
//	--log-level <level> - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/cubibird/internal/config"
	"github.com/vovakirdan/cubibird/internal/storage"
)

var (
	// Global flags
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagTheme    string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "cubibird",
	Short: "Cubibird - a one-key side scroller for your terminal",
	Long: `Cubibird keeps a small body in the air while obstacle pairs scroll
in from the right. Every pair that leaves the screen scores a point.

Available commands:
  play     - Play in this terminal
  serve    - Start SSH server for remote play
  scores   - View the leaderboard
  config   - Print the effective configuration

Examples:
  cubibird play
  cubibird play --seed 42 --name Ann
  cubibird serve --ssh :2222
  cubibird scores --limit 5`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to runs database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagTheme, "theme", "", "Path to custom theme YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger creates a logger writing to w with the level from --log-level.
func newLogger(w io.Writer, prefix string) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	}), nil
}

// openLogFile opens ~/.cubibird/cubibird.log for appending. The TUI owns
// the terminal while playing, so logs cannot go to stderr.
func openLogFile() (io.WriteCloser, error) {
	path := config.UserPath("cubibird.log")
	if path == "" {
		return nil, fmt.Errorf("cannot resolve home directory")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
}

// loadGameConfig loads the game configuration named by --config.
func loadGameConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}
