package main

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/brickgame/internal/core"
	"github.com/vovakirdan/brickgame/internal/platform/tui"
	"github.com/vovakirdan/brickgame/internal/storage"
	"github.com/vovakirdan/brickgame/internal/tetris"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a new game. The board waits until you press Enter.

Controls:
  Left/Right/Down  - Move the figure (also a/d/s, h/l/j)
  Space/Up         - Rotate
  Enter            - Start
  P/Esc            - Pause
  Q                - End the game; quit from the game over screen
  R                - New game (after game over)
  Ctrl+C           - Quit

Difficulty options:
  easy   - Slow gravity
  normal - Medium gravity
  hard   - Fast gravity
  fixed  - Keep gravity.interval_ticks from the config file

Examples:
  brickgame play
  brickgame play --difficulty easy
  brickgame play --seed 42
  brickgame play --config ./my-tetris.yaml --log-file /tmp/brickgame.log`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig()
	if err != nil {
		fail("%v", err)
	}
	rules := cfg.Rules()
	catalog, err := cfg.Catalog()
	if err != nil {
		fail("%v", err)
	}

	logger, closeLog, err := newLogger(flagLogFile)
	if err != nil {
		fail("opening log file: %v", err)
	}
	defer closeLog()

	screen := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		screen.ScreenW = w
		screen.ScreenH = h
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	screen.Seed = seed
	logger.Info("starting", "seed", seed, "preset", cfg.Difficulty.Preset, "gravity", rules.GravityInterval)

	// Open score storage
	var (
		backend  storage.HighScoreBackend
		recorder tui.ScoreRecorder
	)
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
	} else {
		backend = store
		recorder = store
	}

	keeper := storage.NewHighScoreKeeper(backend, gameID, logger)

	// Restarts share one random stream so a seeded run stays reproducible.
	rng := rand.New(rand.NewSource(seed))
	newEngine := func() (*tetris.Engine, error) {
		return tetris.New(rules,
			tetris.WithCatalog(catalog),
			tetris.WithSource(rng),
			tetris.WithStore(keeper),
			tetris.WithLogger(logger),
		)
	}

	runErr := tui.Run(tui.Options{
		NewEngine: newEngine,
		Scores:    recorder,
		GameID:    gameID,
		Pacing:    cfg.Pacing,
		Screen:    screen,
		Logger:    logger,
	})

	// Flush the high score and close the store before a potential exit
	keeper.Close()
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fail("running game: %v", runErr)
	}
}

// newLogger returns a debug logger writing to path, or a discarding logger
// when path is empty. The terminal belongs to the game while it runs.
func newLogger(path string) (*log.Logger, func(), error) {
	if path == "" {
		return log.New(io.Discard), func() {}, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, err
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "brickgame",
		Level:           log.DebugLevel,
	})
	return logger, func() { f.Close() }, nil
}
