package render

import (
	"fmt"
	"math"
	"strings"

	"github.com/omnirun/omnirun/internal/game"
)

const (
	// HUDRows is the number of rows DrawHUD occupies at the top.
	HUDRows = 4

	title     = "OMNIRUN"
	barWidth  = 20
	noticeRow = 6
)

// Clock formats elapsed seconds as mm:ss.
func Clock(elapsed float64) string {
	secs := int(math.Floor(elapsed))
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}

// FormColor is the palette index closest to a form's colour.
func FormColor(f game.AlienForm) uint8 {
	return NearestHex(f.Color)
}

// DrawHUD writes the status rows and any live notices.
func DrawHUD(buf *CellBuffer, s game.Snapshot) {
	buf.WriteString(2, 0, title, ColorLightGreen, ColorBlack)
	form := fmt.Sprintf("[ %s ]", strings.ToUpper(s.Form.Name))
	buf.WriteString(12, 0, form, FormColor(s.Form), ColorBlack)
	best := fmt.Sprintf("BEST %d", s.Best)
	buf.WriteString(buf.Cols-len(best)-2, 0, best, ColorDarkGray, ColorBlack)

	stats := fmt.Sprintf("SCORE %-7d COINS %-5d DIST %-7s TIME %s  SPEED %d",
		s.Score, s.CoinsCollected, fmt.Sprintf("%dm", int(s.Distance)), Clock(s.Elapsed), int(s.Speed))
	buf.WriteString(2, 1, stats, ColorWhite, ColorBlack)

	p := s.Player
	drawEnergyBar(buf, 2, 2, "Energy ", int(p.Energy), int(p.MaxEnergy), ColorYellow)
	drawCooldownBar(buf, 2, 3, "Omni   ", p.Cooldown, p.MaxCool)

	for i, line := range s.Notices {
		buf.WriteCentered(noticeRow+i, line, ColorLightGreen, ColorBlack)
	}
}

// drawEnergyBar shows a single-value bar with a warning-coloured label.
func drawEnergyBar(buf *CellBuffer, x, y int, label string, val, max int, clr uint8) {
	if max == 0 {
		max = 1
	}
	filled := barWidth * val / max

	labelClr := uint8(ColorLightGray)
	pct := val * 100 / max
	if pct <= 15 {
		labelClr = ColorLightRed
	} else if pct <= 30 {
		labelClr = ColorYellow
	}
	buf.WriteString(x, y, label, labelClr, ColorBlack)

	for i := 0; i < barWidth; i++ {
		if i < filled {
			buf.Set(x+8+i, y, 219, clr, ColorBlack) // █
		} else {
			buf.Set(x+8+i, y, 176, ColorDarkGray, ColorBlack) // ░
		}
	}
	info := fmt.Sprintf("%3d/%d", val, max)
	buf.WriteString(x+29, y, info, labelClr, ColorBlack)
}

// drawCooldownBar fills as the transform cooldown runs out.
func drawCooldownBar(buf *CellBuffer, x, y int, label string, remaining, total float64) {
	if total <= 0 {
		total = 1
	}
	ready := remaining <= 0
	filled := barWidth
	if !ready {
		filled = int(float64(barWidth) * (1 - remaining/total))
	}

	clr := uint8(ColorLightGreen)
	if !ready {
		clr = ColorDarkGray
	}
	buf.WriteString(x, y, label, clr, ColorBlack)
	for i := 0; i < barWidth; i++ {
		if i < filled {
			buf.Set(x+8+i, y, 219, ColorGreen, ColorBlack) // █
		} else {
			buf.Set(x+8+i, y, 176, ColorDarkGray, ColorBlack) // ░
		}
	}
	if ready {
		buf.WriteString(x+29, y, "READY", ColorLightGreen, ColorBlack)
	} else {
		buf.WriteString(x+29, y, fmt.Sprintf("%.1fs", remaining), ColorDarkGray, ColorBlack)
	}
}

// DrawOverlay draws the menu, pause and game-over screens. It draws
// nothing while playing.
func DrawOverlay(buf *CellBuffer, s game.Snapshot) {
	switch s.Phase {
	case game.PhaseMenu:
		drawMenu(buf, s)
	case game.PhasePaused:
		drawPause(buf, s)
	case game.PhaseGameOver:
		drawGameOver(buf, s)
	}
}

// panel draws a centered framed box of h rows and returns its top row.
func panel(buf *CellBuffer, w, h int, fg uint8) int {
	w = min(w, buf.Cols)
	h = min(h, buf.Rows)
	x := (buf.Cols - w) / 2
	y := (buf.Rows - h) / 2
	buf.DrawBox(x, y, w, h, fg, ColorBlack)
	return y
}

func drawMenu(buf *CellBuffer, s game.Snapshot) {
	y := panel(buf, 46, 16, ColorLightGreen)
	buf.WriteCentered(y+2, title, ColorLightGreen, ColorBlack)
	buf.WriteCentered(y+3, "Endless alien runner", ColorLightGray, ColorBlack)

	controls := []string{
		"SPACE / UP   jump      ",
		"S            transform ",
		"P / ESC      pause     ",
		"R            restart   ",
		"Q            menu      ",
	}
	for i, line := range controls {
		buf.WriteCentered(y+5+i, line, ColorLightCyan, ColorBlack)
	}

	buf.WriteCentered(y+11, fmt.Sprintf("BEST: %d", s.Best), ColorYellow, ColorBlack)
	buf.WriteCentered(y+13, "Press ENTER or tap to start", ColorWhite, ColorBlack)
}

func drawPause(buf *CellBuffer, s game.Snapshot) {
	y := panel(buf, 40, 10, ColorLightCyan)
	buf.WriteCentered(y+2, "PAUSED", ColorLightCyan, ColorBlack)
	buf.WriteCentered(y+4, fmt.Sprintf("Score: %d", s.Score), ColorWhite, ColorBlack)
	buf.WriteCentered(y+5, fmt.Sprintf("Distance: %dm", int(s.Distance)), ColorWhite, ColorBlack)
	buf.WriteCentered(y+7, "P resume  R restart  Q menu", ColorDarkGray, ColorBlack)
}

func drawGameOver(buf *CellBuffer, s game.Snapshot) {
	y := panel(buf, 50, 18, ColorLightRed)
	buf.WriteCentered(y+2, "MISSION FAILED!", ColorLightRed, ColorBlack)
	buf.WriteCentered(y+4, fmt.Sprintf("Score: %d", s.Score), ColorWhite, ColorBlack)
	buf.WriteCentered(y+5, fmt.Sprintf("Distance: %dm", int(s.Distance)), ColorWhite, ColorBlack)
	buf.WriteCentered(y+6, fmt.Sprintf("Coins: %d", s.CoinsCollected), ColorYellow, ColorBlack)

	unlocked := 0
	for _, f := range s.Roster {
		if f.Unlocked {
			unlocked++
		}
	}
	buf.WriteCentered(y+8, fmt.Sprintf("Forms unlocked: %d/%d", unlocked, len(s.Roster)), ColorLightGreen, ColorBlack)
	drawRosterStrip(buf, y+10, s.Roster)

	buf.WriteCentered(y+13, fmt.Sprintf("BEST: %d", s.Best), ColorYellow, ColorBlack)
	buf.WriteCentered(y+15, "ENTER / R restart  Q menu", ColorDarkGray, ColorBlack)
}

// drawRosterStrip shows each form as a swatch, dimmed while locked, with its
// initial below.
func drawRosterStrip(buf *CellBuffer, y int, forms []game.AlienForm) {
	const slot = 4
	x := (buf.Cols - len(forms)*slot) / 2
	for i, f := range forms {
		cx := x + i*slot + 1
		if f.Unlocked {
			clr := FormColor(f)
			buf.Set(cx, y, 219, clr, ColorBlack)   // █
			buf.Set(cx+1, y, 219, clr, ColorBlack) // █
			buf.WriteString(cx, y+1, initials(f.Name), clr, ColorBlack)
		} else {
			buf.Set(cx, y, 176, ColorDarkGray, ColorBlack)   // ░
			buf.Set(cx+1, y, 176, ColorDarkGray, ColorBlack) // ░
			buf.WriteString(cx, y+1, "??", ColorDarkGray, ColorBlack)
		}
	}
}

func initials(name string) string {
	n := strings.ToUpper(name)
	if len(n) > 2 {
		n = n[:2]
	}
	return n
}
