package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/brickgame/internal/platform/tui"
	"github.com/vovakirdan/brickgame/internal/storage"
)

var (
	flagLimit int
	flagClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show score history",
	Long: `Display the best recorded scores. On a terminal the scores open in
a scrollable table; otherwise they are printed as plain text.

Examples:
  brickgame scores
  brickgame scores --limit 50
  brickgame scores --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded scores")
}

func runScores(cmd *cobra.Command, args []string) {
	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fail("opening scores database: %v", err)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearScores(gameID); err != nil {
			store.Close()
			fail("clearing scores: %v", err)
		}
		fmt.Println("Scores cleared.")
		return
	}

	limit := min(max(flagLimit, 1), tui.MaxScoreboardRows)
	scores, err := store.TopScores(gameID, limit)
	if err != nil {
		store.Close()
		fail("retrieving scores: %v", err)
	}
	stats, err := store.GetGameStats(gameID)
	if err != nil {
		stats = nil
	}

	const title = "High Scores - Brick Game"

	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		width, height, sizeErr := term.GetSize(fd)
		if sizeErr != nil {
			width, height = 80, 24
		}
		if err := tui.RunScoreboard(title, scores, stats, width, height); err != nil {
			store.Close()
			fail("showing scores: %v", err)
		}
		return
	}

	printScores(title, scores, stats)
}

// printScores writes the score history as plain text.
func printScores(title string, scores []storage.ScoreEntry, stats *storage.GameStats) {
	fmt.Println(title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'brickgame play' to set the first high score!")
		return
	}

	// Print header
	fmt.Printf("  %-6s  %-12s  %s\n", "Rank", "Score", "Date")
	fmt.Printf("  %-6s  %-12s  %s\n", "----", "-----", "----")

	for _, row := range tui.ScoreRows(scores) {
		fmt.Printf("  %-6s  %-12s  %s\n", row[0], row[1], row[2])
	}

	if stats != nil {
		fmt.Println()
		fmt.Printf("Games: %d  Best: %d  Average: %.0f\n", stats.GamesCount, stats.HighScore, stats.AvgScore)
	}
}
