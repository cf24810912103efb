// Package app wires configuration, persistence and the game driver together
// for the shells.
package app

import (
	"fmt"
	"log"
	"math/rand/v2"
	"os"
	"time"

	"github.com/omnirun/omnirun/internal/config"
	"github.com/omnirun/omnirun/internal/game"
	"github.com/omnirun/omnirun/internal/storage"
	"github.com/omnirun/omnirun/internal/world"
)

// LoadRoster returns the roster named by cfg, or the embedded one.
func LoadRoster(cfg *config.Config) (*world.RosterDef, error) {
	if cfg.RosterFile == "" {
		return world.DefaultRoster(), nil
	}
	data, err := os.ReadFile(cfg.RosterFile)
	if err != nil {
		return nil, fmt.Errorf("read roster: %w", err)
	}
	return world.LoadRoster(data)
}

// NewRand seeds the run generator from cfg, or from the clock when no seed
// is set.
func NewRand(cfg *config.Config) *rand.Rand {
	seed := uint64(cfg.Seed)
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed>>16|7))
}

// NewDriver builds a driver backed by the high score file in cfg.
func NewDriver(cfg *config.Config, logger *log.Logger) (*game.Driver, error) {
	roster, err := LoadRoster(cfg)
	if err != nil {
		return nil, err
	}
	store := storage.NewHighScores(storage.NewFileStore(cfg.HighScoreFile))
	logger.Printf("high score file: %s", cfg.HighScoreFile)

	return game.NewDriver(game.Options{
		Roster: roster,
		Rand:   NewRand(cfg),
		Store:  store,
		Logger: logger,
	}), nil
}
