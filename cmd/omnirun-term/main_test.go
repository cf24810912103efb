package main

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omnirun/omnirun/internal/game"
)

func TestKeyAction(t *testing.T) {
	tests := []struct {
		name  string
		key   tcell.Key
		r     rune
		phase game.Phase
		want  action
	}{
		{"space starts from menu", tcell.KeyRune, ' ', game.PhaseMenu, action{cmd: game.CmdStart, ok: true}},
		{"space jumps", tcell.KeyRune, ' ', game.PhasePlaying, action{cmd: game.CmdJump, ok: true}},
		{"up jumps", tcell.KeyUp, 0, game.PhasePlaying, action{cmd: game.CmdJump, ok: true}},
		{"s transforms", tcell.KeyRune, 'S', game.PhasePlaying, action{cmd: game.CmdTransform, ok: true}},
		{"p pauses", tcell.KeyRune, 'p', game.PhasePlaying, action{cmd: game.CmdPauseToggle, ok: true}},
		{"esc pauses", tcell.KeyEscape, 0, game.PhasePaused, action{cmd: game.CmdPauseToggle, ok: true}},
		{"enter starts", tcell.KeyEnter, 0, game.PhaseMenu, action{cmd: game.CmdStart, ok: true}},
		{"enter restarts after crash", tcell.KeyEnter, 0, game.PhaseGameOver, action{cmd: game.CmdRestart, ok: true}},
		{"enter ignored while playing", tcell.KeyEnter, 0, game.PhasePlaying, action{}},
		{"r restarts", tcell.KeyRune, 'r', game.PhasePaused, action{cmd: game.CmdRestart, ok: true}},
		{"q quits to menu", tcell.KeyRune, 'q', game.PhasePlaying, action{cmd: game.CmdQuit, ok: true}},
		{"q exits from menu", tcell.KeyRune, 'q', game.PhaseMenu, action{exit: true}},
		{"ctrl-c exits", tcell.KeyCtrlC, 0, game.PhasePlaying, action{exit: true}},
		{"other keys ignored", tcell.KeyRune, 'x', game.PhasePlaying, action{}},
		{"arrows ignored", tcell.KeyLeft, 0, game.PhasePlaying, action{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, keyAction(tt.key, tt.r, tt.phase))
		})
	}
}

func TestPaletteColor(t *testing.T) {
	assert.Equal(t, tcell.NewRGBColor(255, 255, 85), paletteColor(14))
}

func TestPumpEventsStopsWhenLoopExits(t *testing.T) {
	key := tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone)
	poll := func() tcell.Event { return key }

	events := make(chan tcell.Event) // never drained
	done := make(chan struct{})
	finished := make(chan struct{})
	go func() {
		pumpEvents(poll, events, done)
		close(finished)
	}()

	close(done)
	select {
	case <-finished:
	case <-time.After(time.Second):
		t.Fatal("pumpEvents still blocked after done closed")
	}
}

func TestPumpEventsClosesWhenPollEnds(t *testing.T) {
	queue := []tcell.Event{tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone)}
	poll := func() tcell.Event {
		if len(queue) == 0 {
			return nil
		}
		ev := queue[0]
		queue = queue[1:]
		return ev
	}

	events := make(chan tcell.Event, 4)
	pumpEvents(poll, events, make(chan struct{}))

	ev, open := <-events
	require.True(t, open)
	assert.Equal(t, tcell.KeyUp, ev.(*tcell.EventKey).Key())
	_, open = <-events
	assert.False(t, open)
}
