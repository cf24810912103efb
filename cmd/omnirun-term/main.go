package main

import (
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/omnirun/omnirun/internal/app"
	"github.com/omnirun/omnirun/internal/audio"
	"github.com/omnirun/omnirun/internal/config"
	"github.com/omnirun/omnirun/internal/game"
	"github.com/omnirun/omnirun/internal/render"
)

const frameRate = 60

// term owns the tcell screen. All game mutation happens on the goroutine
// running loop.
type term struct {
	screen tcell.Screen
	driver *game.Driver
	sound  audio.Player
	music  audio.MusicDirector
	buffer *render.CellBuffer
	styles [16][16]tcell.Style
}

func newTerm(screen tcell.Screen, driver *game.Driver, sound audio.Player) *term {
	t := &term{screen: screen, driver: driver, sound: sound}
	for fg := range t.styles {
		for bg := range t.styles[fg] {
			t.styles[fg][bg] = tcell.StyleDefault.
				Foreground(paletteColor(uint8(fg))).
				Background(paletteColor(uint8(bg)))
		}
	}
	w, h := screen.Size()
	t.buffer = render.NewCellBuffer(w, h)
	return t
}

func paletteColor(i uint8) tcell.Color {
	c := render.Palette[i]
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// action is what a key press asks for.
type action struct {
	cmd  game.Command
	ok   bool // cmd is set
	exit bool
}

// keyAction maps a key press to a command for the given phase.
func keyAction(key tcell.Key, r rune, phase game.Phase) action {
	switch key {
	case tcell.KeyCtrlC:
		return action{exit: true}
	case tcell.KeyUp:
		return action{cmd: game.CmdJump, ok: true}
	case tcell.KeyEscape:
		return action{cmd: game.CmdPauseToggle, ok: true}
	case tcell.KeyEnter:
		switch phase {
		case game.PhaseMenu:
			return action{cmd: game.CmdStart, ok: true}
		case game.PhaseGameOver:
			return action{cmd: game.CmdRestart, ok: true}
		}
		return action{}
	case tcell.KeyRune:
	default:
		return action{}
	}

	switch r {
	case ' ':
		if phase == game.PhaseMenu {
			return action{cmd: game.CmdStart, ok: true}
		}
		return action{cmd: game.CmdJump, ok: true}
	case 's', 'S':
		return action{cmd: game.CmdTransform, ok: true}
	case 'p', 'P':
		return action{cmd: game.CmdPauseToggle, ok: true}
	case 'r', 'R':
		return action{cmd: game.CmdRestart, ok: true}
	case 'q', 'Q':
		if phase == game.PhaseMenu {
			return action{exit: true}
		}
		return action{cmd: game.CmdQuit, ok: true}
	}
	return action{}
}

func (t *term) loop() {
	ticker := time.NewTicker(time.Second / frameRate)
	defer ticker.Stop()

	events := make(chan tcell.Event, 64)
	done := make(chan struct{})
	defer close(done)
	go pumpEvents(t.screen.PollEvent, events, done)

	for {
		select {
		case ev, open := <-events:
			if !open {
				return
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				a := keyAction(ev.Key(), ev.Rune(), t.driver.Phase())
				if a.exit {
					return
				}
				if a.ok {
					t.driver.Push(a.cmd)
				}
			case *tcell.EventResize:
				w, h := t.screen.Size()
				t.buffer.Resize(w, h)
				t.screen.Sync()
			}
		case <-ticker.C:
			t.frame()
		}
	}
}

// pumpEvents forwards polled events until poll returns nil or done closes.
// events is closed when poll runs dry.
func pumpEvents(poll func() tcell.Event, events chan<- tcell.Event, done <-chan struct{}) {
	for {
		ev := poll()
		if ev == nil {
			close(events)
			return
		}
		select {
		case events <- ev:
		case <-done:
			return
		}
	}
}

func (t *term) frame() {
	t.driver.Frame()
	for _, ev := range t.driver.Events() {
		if cue, ok := audio.CueFor(ev.Kind); ok {
			t.sound.Play(cue)
		}
	}
	if m, ok := t.music.Update(t.driver.Phase()); ok {
		t.sound.Music(m)
	}

	snap := t.driver.Snapshot()
	buf := t.buffer
	buf.Clear()
	render.RasterizeWorld(buf, snap, render.Area{
		X: 0, Y: render.HUDRows,
		W: buf.Cols, H: buf.Rows - render.HUDRows,
	})
	render.DrawHUD(buf, snap)
	render.DrawOverlay(buf, snap)
	t.present()
}

// present copies the cell buffer to the terminal.
func (t *term) present() {
	buf := t.buffer
	for y := 0; y < buf.Rows; y++ {
		for x := 0; x < buf.Cols; x++ {
			c := buf.Cells[y*buf.Cols+x]
			t.screen.SetContent(x, y, render.CP437ToUnicode[c.Glyph], nil, t.styles[c.FG&15][c.BG&15])
		}
	}
	t.screen.Show()
}

// logToFile sends the standard logger to a file, since tcell owns the tty.
func logToFile() (*os.File, error) {
	dir, err := os.UserCacheDir()
	if err != nil {
		dir = os.TempDir()
	}
	dir = filepath.Join(dir, "omnirun")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	f, err := os.OpenFile(filepath.Join(dir, "omnirun-term.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, err
	}
	log.SetOutput(f)
	return f, nil
}

func main() {
	cfg := config.Load()

	logFile, err := logToFile()
	if err != nil {
		log.Fatalf("log file: %v", err)
	}
	defer logFile.Close()

	driver, err := app.NewDriver(cfg, log.Default())
	if err != nil {
		log.Fatalf("start: %v", err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("screen init: %v", err)
	}

	var sound audio.Player = audio.Nop{}
	if cfg.AudioEnabled {
		sound = audio.Fallback(audio.NewBeep(cfg.Volume))
	}

	newTerm(screen, driver, sound).loop()

	screen.Fini()
	if err := driver.Close(); err != nil {
		log.Printf("close: %v", err)
	}
	sound.Close()
}
