package game

import (
	"math/rand/v2"
	"testing"

	"github.com/omnirun/omnirun/internal/world"
)

// quietTuning disables random spawning so tests place every entity.
func quietTuning() Tuning {
	t := DefaultTuning()
	t.ObstacleChance = 0
	t.CoinChance = 0
	return t
}

func newTestSession(t *testing.T, tun Tuning) *Session {
	t.Helper()
	s := NewSession(world.DefaultViewport(), tun, world.DefaultRoster(), rand.New(rand.NewPCG(1, 2)))
	s.begin()
	return s
}

func countEvents(evs []Event, kind EventKind) int {
	n := 0
	for _, ev := range evs {
		if ev.Kind == kind {
			n++
		}
	}
	return n
}
