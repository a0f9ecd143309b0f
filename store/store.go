// Package store persists the single high-score integer.
package store

import (
	"context"
	"log"

	"github.com/pkg/errors"
)

var (
	// ErrNotFound means no high score has been stored yet
	ErrNotFound = errors.New("high score not found")
	// ErrInvalid means the stored value is not a non-negative integer
	ErrInvalid = errors.New("invalid high score")
)

// HighScoreStore reads and writes the high score under a fixed key
type HighScoreStore interface {
	Load(ctx context.Context) (int, error)
	Save(ctx context.Context, score int) error
	Close() error
}

// LoadHighScore reads the startup high score. Absent or invalid values yield 0.
func LoadHighScore(ctx context.Context, s HighScoreStore) int {
	score, err := s.Load(ctx)
	switch {
	case err == nil:
		return score
	case errors.Is(err, ErrNotFound):
		log.Printf("[STORE] [INFO] no high score stored yet")
	default:
		log.Printf("[STORE] [WARN] loading high score: %v", err)
	}
	return 0
}

func validate(score int) (int, error) {
	if score < 0 {
		return 0, errors.Wrapf(ErrInvalid, "negative value %d", score)
	}
	return score, nil
}
