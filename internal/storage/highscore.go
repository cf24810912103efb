package storage

import (
	"errors"
	"io/fs"
)

// HighScoreKey is the key the best score is persisted under.
const HighScoreKey = "omnirun_highscore"

// HighScores persists a single best score in a FileStore.
type HighScores struct {
	store *FileStore
}

// NewHighScores keeps the best score in store under HighScoreKey.
func NewHighScores(store *FileStore) *HighScores {
	return &HighScores{store: store}
}

// LoadBest returns the stored best, or 0 when nothing has been saved yet.
func (h *HighScores) LoadBest() (int, error) {
	var n int
	err := h.store.Get(HighScoreKey, &n)
	if errors.Is(err, fs.ErrNotExist) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return max(n, 0), nil
}

// SaveBest overwrites the stored best with score.
func (h *HighScores) SaveBest(score int) error {
	return h.store.Set(HighScoreKey, score)
}
