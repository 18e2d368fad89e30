package storage

import (
	"io"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/brickgame/internal/tetris"
)

// HighScoreBackend is the part of Store the keeper needs.
type HighScoreBackend interface {
	HighScore(gameID string) (int, error)
	SetHighScore(gameID string, score int) error
}

// HighScoreKeeper adapts a HighScoreBackend to the engine's high-score
// contract. Load reads synchronously; Save hands the value to a single
// background writer and returns immediately. Saves that arrive while a write
// is in flight are coalesced: only the largest pending value is written.
// Storage failures are logged and otherwise ignored.
type HighScoreKeeper struct {
	backend HighScoreBackend
	gameID  string
	logger  *log.Logger

	mu      sync.Mutex
	pending int
	written int
	closed  bool

	wake      chan struct{}
	done      chan struct{}
	wg        sync.WaitGroup
	closeOnce sync.Once
}

// NewHighScoreKeeper starts the background writer. A nil backend yields a
// keeper that loads 0 and drops every save. A nil logger discards output.
func NewHighScoreKeeper(backend HighScoreBackend, gameID string, logger *log.Logger) *HighScoreKeeper {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	k := &HighScoreKeeper{
		backend: backend,
		gameID:  gameID,
		logger:  logger,
		wake:    make(chan struct{}, 1),
		done:    make(chan struct{}),
	}

	k.wg.Add(1)
	go k.run()

	return k
}

// Load returns the stored high score, or 0 if it cannot be read.
func (k *HighScoreKeeper) Load() int {
	if k.backend == nil {
		return 0
	}
	score, err := k.backend.HighScore(k.gameID)
	if err != nil {
		k.logger.Warn("high score unavailable", "game", k.gameID, "err", err)
		return 0
	}

	k.mu.Lock()
	k.written = max(k.written, score)
	k.pending = max(k.pending, score)
	k.mu.Unlock()

	return score
}

// Save schedules score to be persisted. It never blocks.
func (k *HighScoreKeeper) Save(score int) {
	k.mu.Lock()
	if k.closed || score <= k.pending {
		k.mu.Unlock()
		return
	}
	k.pending = score
	k.mu.Unlock()

	select {
	case k.wake <- struct{}{}:
	default:
		// A wake-up is already queued; the writer will pick up the new value.
	}
}

// Close writes any pending score and stops the writer.
// It is safe to call more than once.
func (k *HighScoreKeeper) Close() error {
	k.closeOnce.Do(func() {
		k.mu.Lock()
		k.closed = true
		k.mu.Unlock()

		close(k.done)
		k.wg.Wait()
	})
	return nil
}

// Ensure HighScoreKeeper implements the engine's store contract.
var _ tetris.HighScoreStore = (*HighScoreKeeper)(nil)

func (k *HighScoreKeeper) run() {
	defer k.wg.Done()

	for {
		select {
		case <-k.wake:
			k.flush()
		case <-k.done:
			k.flush()
			return
		}
	}
}

// flush writes the pending score if it is newer than the last write.
func (k *HighScoreKeeper) flush() {
	k.mu.Lock()
	score, written := k.pending, k.written
	k.mu.Unlock()

	if k.backend == nil || score <= written {
		return
	}

	if err := k.backend.SetHighScore(k.gameID, score); err != nil {
		k.logger.Warn("high score not saved", "game", k.gameID, "score", score, "err", err)
		return
	}

	k.mu.Lock()
	k.written = max(k.written, score)
	k.mu.Unlock()

	k.logger.Debug("high score saved", "game", k.gameID, "score", score)
}
