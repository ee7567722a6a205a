package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/cubibird/internal/storage"
)

var (
	flagLimit  int
	flagPlayer string
	flagClear  bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the stored leaderboard",
	Long: `Display the best stored runs.

Examples:
  cubibird scores
  cubibird scores --limit 5
  cubibird scores --player Ann
  cubibird scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().StringVar(&flagPlayer, "player", "", "Only show runs of this player")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all stored runs")
}

func runScores(cmd *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("error opening runs database: %w", err)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearRuns(); err != nil {
			return err
		}
		color.Yellow("All stored runs deleted.")
		return nil
	}

	var runs []storage.Run
	title := "High Scores"
	if flagPlayer != "" {
		runs, err = store.RunsByName(flagPlayer)
		title = fmt.Sprintf("High Scores - %s", flagPlayer)
		if len(runs) > flagLimit && flagLimit > 0 {
			runs = runs[:flagLimit]
		}
	} else {
		runs, err = store.TopRuns(flagLimit)
	}
	if err != nil {
		return fmt.Errorf("error retrieving runs: %w", err)
	}

	color.Yellow(title)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		color.Cyan("Play 'cubibird play' to set the first high score!")
		return nil
	}

	header := color.New(color.Bold)
	header.Printf("  %-4s  %-20s  %-6s  %s\n", "Rank", "Name", "Score", "Date")
	fmt.Printf("  %-4s  %-20s  %-6s  %s\n", "----", "----", "-----", "----")

	gold := color.New(color.FgHiYellow)
	for i, r := range runs {
		line := fmt.Sprintf("  %-4d  %-20s  %-6d  %s", i+1, displayName(r.Name), r.Score, r.CreatedAt.Format("2006-01-02 15:04"))
		if i == 0 {
			gold.Println(line)
			continue
		}
		fmt.Println(line)
	}

	stats, err := store.Stats()
	if err != nil {
		return err
	}
	fmt.Println()
	color.Green("Best: %d  |  Runs: %d  |  Players: %d  |  Average: %.1f",
		stats.Best, stats.Runs, stats.Players, stats.Average)
	return nil
}

// displayName shows the empty name left by a cancelled prompt.
func displayName(name string) string {
	if name == "" {
		return "(anonymous)"
	}
	return name
}
