package render

import (
	"math"

	"github.com/omnirun/omnirun/internal/game"
	"github.com/omnirun/omnirun/internal/world"
)

// Area is a rectangle of cells.
type Area struct {
	X, Y, W, H int
}

// grid maps world units onto the cells of an Area.
type grid struct {
	area   Area
	sx, sy float64
}

func newGrid(area Area, vp world.Viewport) grid {
	return grid{area: area, sx: float64(area.W) / vp.Width, sy: float64(area.H) / vp.Height}
}

// span returns the cells covered by [pos, pos+size), always at least one.
func span(pos, size, scale float64, offset int) (int, int) {
	a := int(math.Floor(pos * scale))
	b := int(math.Ceil((pos+size)*scale)) - 1
	return offset + a, offset + max(a, b)
}

// box returns the cell rectangle covering a world box, clipped to the area.
func (g grid) box(x, y, w, h float64) (x0, y0, x1, y1 int) {
	x0, x1 = span(x, w, g.sx, g.area.X)
	y0, y1 = span(y, h, g.sy, g.area.Y)
	x0 = max(x0, g.area.X)
	y0 = max(y0, g.area.Y)
	x1 = min(x1, g.area.X+g.area.W-1)
	y1 = min(y1, g.area.Y+g.area.H-1)
	return
}

// RasterizeWorld draws the scene into area for character terminals: sky,
// ground, obstacles, coins and the player on top.
func RasterizeWorld(buf *CellBuffer, s game.Snapshot, area Area) {
	if area.W <= 0 || area.H <= 0 {
		return
	}
	g := newGrid(area, s.Viewport)
	buf.Fill(area.X, area.Y, area.W, area.H, ' ', ColorWhite, ColorBlack)

	drawStars(buf, g, s.Distance)

	groundRow := area.Y + int(math.Floor(s.Viewport.GroundY()*g.sy))
	for y := groundRow; y < area.Y+area.H; y++ {
		for x := area.X; x < area.X+area.W; x++ {
			glyph, fg, bg := groundVisuals(x-area.X, y-groundRow, s.Distance)
			buf.Set(x, y, glyph, fg, bg)
		}
	}

	for _, c := range s.Coins {
		x0, y0, x1, y1 := g.box(c.X, c.Y, c.Size, c.Size)
		glyph, fg := coinVisuals(c.Rotation)
		buf.Set((x0+x1)/2, (y0+y1)/2, glyph, fg, ColorBlack)
	}

	for _, o := range s.Obstacles {
		x0, y0, x1, y1 := g.box(o.X, o.Y, o.W, o.H)
		for y := y0; y <= y1; y++ {
			for x := x0; x <= x1; x++ {
				glyph, fg, bg := obstacleVisuals(o.Kind, x-x0, y-y0, x1-x0)
				buf.Set(x, y, glyph, fg, bg)
			}
		}
	}

	p := s.Player
	x0, y0, x1, y1 := g.box(p.X, p.Y, p.W, p.H)
	clr := FormColor(s.Form)
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			buf.Set(x, y, 219, clr, ColorBlack) // █
		}
	}
	buf.Set((x0+x1)/2, y0, 2, ColorWhite, clr) // ☻ head
	drawAbilityTrail(buf, s.Form.Ability, x0, y0, x1, y1)
}

// drawStars scatters a fixed star field that drifts with distance.
func drawStars(buf *CellBuffer, g grid, distance float64) {
	const stars = 50
	shift := int(distance)
	for i := 0; i < stars; i++ {
		x := ((i*100-shift)%g.area.W + g.area.W) % g.area.W
		y := (i * 37) % max(g.area.H/2, 1)
		glyph := byte('.')
		if i%7 == 0 {
			glyph = 250 // ·
		}
		buf.Set(g.area.X+x, g.area.Y+y, glyph, ColorDarkGray, ColorBlack)
	}
}

func groundVisuals(x, depth int, distance float64) (glyph byte, fg, bg uint8) {
	if depth == 0 {
		// stripes scroll twice as fast as the stars
		if (x+int(distance*2))%4 == 0 {
			return 223, ColorLightGray, ColorDarkGray // ▀
		}
		return 223, ColorDarkGray, ColorBlack // ▀
	}
	return 177, ColorDarkGray, ColorBlack // ▒
}

func obstacleVisuals(kind game.ObstacleKind, dx, dy, width int) (glyph byte, fg, bg uint8) {
	body := NearestHex(kind.Color())
	switch kind {
	case game.ObstacleRobot:
		if dy == 0 && dx == width/2 {
			return 'o', ColorLightRed, body // eye
		}
		return 219, body, ColorBlack // █
	case game.ObstacleLaser:
		if dx == 0 {
			return 186, ColorRed, ColorBlack // ║ beam
		}
		return 178, body, ColorBlack // ▓
	default:
		return 219, body, ColorBlack // █
	}
}

// coinVisuals flips between a face and an edge as the coin spins.
func coinVisuals(rotation float64) (glyph byte, fg uint8) {
	if math.Mod(rotation, math.Pi) < math.Pi/2 {
		return 'O', ColorYellow
	}
	return '|', ColorYellow
}

func drawAbilityTrail(buf *CellBuffer, ability world.Ability, x0, y0, x1, y1 int) {
	switch ability {
	case world.AbilityFire:
		buf.Set(x1+1, (y0+y1)/2, '*', ColorYellow, ColorBlack)
	case world.AbilitySpeed:
		for y := y0; y <= y1; y++ {
			buf.Set(x0-1, y, 176, ColorLightBlue, ColorBlack) // ░
		}
	case world.AbilityPhase:
		buf.Set(x0-1, y0, 176, ColorLightMagenta, ColorBlack) // ░
	}
}
