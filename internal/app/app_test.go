package app

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omnirun/omnirun/internal/config"
	"github.com/omnirun/omnirun/internal/game"
)

func testConfig(t *testing.T) *config.Config {
	cfg := config.Default()
	cfg.HighScoreFile = filepath.Join(t.TempDir(), "highscore.json")
	cfg.Seed = 42
	return cfg
}

func TestLoadRosterDefault(t *testing.T) {
	r, err := LoadRoster(testConfig(t))
	require.NoError(t, err)
	assert.Equal(t, "starter", r.Name)
}

func TestLoadRosterFromFile(t *testing.T) {
	cfg := testConfig(t)
	cfg.RosterFile = filepath.Join(t.TempDir(), "forms.json")
	require.NoError(t, os.WriteFile(cfg.RosterFile, []byte(`{"name":"duo","forms":[
		{"id":"a","name":"A","color":"#112233","ability":"fire","unlock_at":0},
		{"id":"b","name":"B","color":"#445566","ability":"speed","unlock_at":5}]}`), 0o644))

	r, err := LoadRoster(cfg)
	require.NoError(t, err)
	assert.Equal(t, "duo", r.Name)
	assert.Len(t, r.Forms, 2)

	cfg.RosterFile = filepath.Join(t.TempDir(), "missing.json")
	_, err = LoadRoster(cfg)
	assert.ErrorContains(t, err, "read roster")
}

func TestSeededRandIsReproducible(t *testing.T) {
	cfg := testConfig(t)
	a, b := NewRand(cfg), NewRand(cfg)
	for i := 0; i < 10; i++ {
		assert.Equal(t, a.Uint64(), b.Uint64())
	}
}

func TestDriverPersistsBest(t *testing.T) {
	cfg := testConfig(t)
	logger := log.New(io.Discard, "", 0)

	d, err := NewDriver(cfg, logger)
	require.NoError(t, err)
	d.Push(game.CmdStart)
	d.Frame()
	s := d.Session()
	require.True(t, s.SpawnObstacle(game.ObstacleRock, s.Player.X, s.Player.Y, 40, 40))
	s.Score = 70
	d.Frame()
	require.Equal(t, game.PhaseGameOver, d.Phase())
	require.NoError(t, d.Close())

	again, err := NewDriver(cfg, logger)
	require.NoError(t, err)
	assert.Equal(t, 70, again.Best())
}
