package main

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/omnirun/omnirun/internal/app"
	"github.com/omnirun/omnirun/internal/audio"
	"github.com/omnirun/omnirun/internal/config"
	"github.com/omnirun/omnirun/internal/game"
	"github.com/omnirun/omnirun/internal/render"
	"github.com/omnirun/omnirun/internal/render/screen"
)

const (
	screenWidth  = 1280
	screenHeight = 720
	title        = "Omnirun"

	cellWidth  = 16
	cellHeight = 16
	gridCols   = screenWidth / cellWidth   // 80
	gridRows   = screenHeight / cellHeight // 45
)

// Game is the Ebitengine game struct. It owns rendering and input.
// All gameplay state lives in the driver.
type Game struct {
	renderer *screen.GridRenderer
	buffer   *render.CellBuffer
	driver   *game.Driver
	sound    audio.Player
	music    audio.MusicDirector
	snap     game.Snapshot
	touches  []ebiten.TouchID
}

func NewGame(cfg *config.Config) *Game {
	driver, err := app.NewDriver(cfg, log.Default())
	if err != nil {
		log.Fatalf("start: %v", err)
	}

	var sound audio.Player = audio.Nop{}
	if cfg.AudioEnabled {
		sound = audio.Fallback(audio.NewEbiten(cfg.Volume))
	}

	return &Game{
		renderer: screen.NewGridRenderer(screen.NewFontAtlas(), cellWidth, cellHeight),
		buffer:   render.NewCellBuffer(gridCols, gridRows),
		driver:   driver,
		sound:    sound,
		snap:     driver.Snapshot(),
	}
}

// keyBindings maps just-pressed keys to commands.
var keyBindings = []struct {
	key ebiten.Key
	cmd game.Command
}{
	{ebiten.KeySpace, game.CmdJump},
	{ebiten.KeyArrowUp, game.CmdJump},
	{ebiten.KeyS, game.CmdTransform},
	{ebiten.KeyP, game.CmdPauseToggle},
	{ebiten.KeyEscape, game.CmdPauseToggle},
	{ebiten.KeyR, game.CmdRestart},
	{ebiten.KeyQ, game.CmdQuit},
}

func (g *Game) Update() error {
	d := g.driver

	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		switch d.Phase() {
		case game.PhaseMenu:
			d.Push(game.CmdStart)
		case game.PhaseGameOver:
			d.Push(game.CmdRestart)
		}
	}
	for _, b := range keyBindings {
		if inpututil.IsKeyJustPressed(b.key) {
			d.Push(b.cmd)
		}
	}

	// A tap starts from the menu and jumps while playing.
	g.touches = inpututil.AppendJustPressedTouchIDs(g.touches[:0])
	if len(g.touches) > 0 || inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		switch d.Phase() {
		case game.PhaseMenu:
			d.Push(game.CmdStart)
		case game.PhasePlaying:
			d.Push(game.CmdJump)
		}
	}

	d.Frame()

	for _, ev := range d.Events() {
		if cue, ok := audio.CueFor(ev.Kind); ok {
			g.sound.Play(cue)
		}
	}
	if m, ok := g.music.Update(d.Phase()); ok {
		g.sound.Music(m)
	}

	g.snap = d.Snapshot()
	g.buffer.Clear()
	if g.snap.Phase != game.PhaseMenu {
		render.DrawHUD(g.buffer, g.snap)
	}
	render.DrawOverlay(g.buffer, g.snap)
	return nil
}

func (g *Game) Draw(screenImg *ebiten.Image) {
	screen.DrawWorld(screenImg, g.snap)
	g.renderer.Draw(screenImg, g.buffer)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}

func main() {
	cfg := config.Load()

	ebiten.SetWindowSize(int(screenWidth*cfg.Scale), int(screenHeight*cfg.Scale))
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	g := NewGame(cfg)
	err := ebiten.RunGame(g)
	if cerr := g.driver.Close(); cerr != nil {
		log.Printf("close: %v", cerr)
	}
	g.sound.Close()
	if err != nil {
		log.Fatal(err)
	}
}
