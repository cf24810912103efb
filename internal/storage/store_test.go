package storage

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omnirun/omnirun/internal/game"
)

var _ game.ScoreStore = (*HighScores)(nil)

func TestFileStoreMissingFile(t *testing.T) {
	s := NewFileStore(filepath.Join(t.TempDir(), "none.json"))
	var v int
	assert.ErrorIs(t, s.Get("a", &v), fs.ErrNotExist)
}

func TestFileStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "kv.json")
	s := NewFileStore(path)

	require.NoError(t, s.Set("a", 1))
	require.NoError(t, s.Set("b", "two"))
	require.NoError(t, s.Set("a", 3))

	var a int
	require.NoError(t, s.Get("a", &a))
	assert.Equal(t, 3, a)

	// A fresh store sees the same data.
	var b string
	require.NoError(t, NewFileStore(path).Get("b", &b))
	assert.Equal(t, "two", b)

	var c int
	assert.ErrorIs(t, s.Get("c", &c), fs.ErrNotExist)

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp files left behind")
}

func TestFileStoreCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kv.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	s := NewFileStore(path)
	var v int
	err := s.Get("a", &v)
	require.Error(t, err)
	assert.NotErrorIs(t, err, fs.ErrNotExist)
	assert.ErrorIs(t, err, ErrCorrupt)

	require.NoError(t, s.Set("a", 1))
	require.NoError(t, s.Get("a", &v))
	assert.Equal(t, 1, v)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, `{"a": 1}`, string(data))
}

func TestHighScores(t *testing.T) {
	path := filepath.Join(t.TempDir(), "highscore.json")
	h := NewHighScores(NewFileStore(path))

	best, err := h.LoadBest()
	require.NoError(t, err)
	assert.Zero(t, best)

	require.NoError(t, h.SaveBest(420))
	best, err = h.LoadBest()
	require.NoError(t, err)
	assert.Equal(t, 420, best)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, `{"omnirun_highscore": 420}`, string(data))
}

func TestHighScoresRecoverFromCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "highscore.json")
	require.NoError(t, os.WriteFile(path, []byte("{garbage"), 0o644))
	h := NewHighScores(NewFileStore(path))

	_, err := h.LoadBest()
	require.ErrorIs(t, err, ErrCorrupt)

	require.NoError(t, h.SaveBest(500))
	best, err := h.LoadBest()
	require.NoError(t, err)
	assert.Equal(t, 500, best)
}

func TestHighScoresBadValue(t *testing.T) {
	s := NewFileStore(filepath.Join(t.TempDir(), "highscore.json"))
	require.NoError(t, s.Set(HighScoreKey, "lots"))

	_, err := NewHighScores(s).LoadBest()
	assert.Error(t, err)
}
