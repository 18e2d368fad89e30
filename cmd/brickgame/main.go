// brickgame is a falling-block puzzle game for the terminal.
//
// Usage:
//
//	brickgame                 - Play (same as "brickgame play")
//	brickgame play            - Play a game
//	brickgame scores          - Show the score history
//	brickgame config          - Print the effective configuration
//
// Global flags:
//
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.brickgame/scores.db)
//	--config <path>       - Load settings from a custom YAML file
//	--difficulty <name>   - Difficulty preset: easy, normal, hard, fixed
//	--log-file <path>     - Write debug logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// gameID is the key used for this game's rows in the scores database.
const gameID = "tetris"

var (
	// Global flags
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "brickgame",
	Short: "Brick Game - falling blocks in your terminal",
	Long: `Brick Game is the classic falling-block puzzle for the terminal.
Steer and rotate the falling figures, fill rows to clear them and
keep the stack from reaching the top.

Available commands:
  play     - Play a game (default)
  scores   - View score history
  config   - Print the effective configuration

Examples:
  brickgame
  brickgame play --difficulty hard
  brickgame scores --limit 20
  brickgame config --config ./my-tetris.yaml`,
	Run: runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.brickgame/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write debug logs to this file")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}

// fail prints an error and exits.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
