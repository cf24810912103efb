package screen

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/omnirun/omnirun/internal/game"
	"github.com/omnirun/omnirun/internal/render"
	"github.com/omnirun/omnirun/internal/world"
)

var (
	skyTop    = render.MustHex("#1a1a2e")
	skyMid    = render.MustHex("#16213e")
	skyBottom = render.MustHex("#0f3460")
	groundClr = render.MustHex("#2a2a2a")
	stripeClr = render.MustHex("#333333")
	coinClr   = render.MustHex("#ffd700")
	coinShine = render.MustHex("#ffed4e")
	emblemClr = render.MustHex("#00ff88")
	flameClr  = render.MustHex("#ff9900")
	laserClr  = render.MustHex("#ff0000")
	dim       = color.RGBA{0, 0, 0, 178}
)

const (
	skyBands = 48
	starN    = 50
)

// DrawWorld paints the scene for s. Frozen phases get a dark veil so the
// overlay text stays readable.
func DrawWorld(dst *ebiten.Image, s game.Snapshot) {
	vp := s.Viewport
	drawSky(dst, vp)
	drawStars(dst, vp, s.Distance, s.Ticks)
	drawGround(dst, vp, s.Distance)
	for _, c := range s.Coins {
		drawCoin(dst, c)
	}
	for _, o := range s.Obstacles {
		drawObstacle(dst, o)
	}
	drawPlayer(dst, s.Player, s.Form, s.Ticks)

	if s.Phase != game.PhasePlaying {
		vector.DrawFilledRect(dst, 0, 0, float32(vp.Width), float32(vp.Height), dim, false)
	}
}

func drawSky(dst *ebiten.Image, vp world.Viewport) {
	bandH := vp.Height / skyBands
	for i := 0; i < skyBands; i++ {
		t := float64(i) / float64(skyBands-1)
		var c color.RGBA
		if t < 0.5 {
			c = lerp(skyTop, skyMid, t*2)
		} else {
			c = lerp(skyMid, skyBottom, (t-0.5)*2)
		}
		vector.DrawFilledRect(dst, 0, float32(float64(i)*bandH), float32(vp.Width), float32(bandH+1), c, false)
	}
}

func drawStars(dst *ebiten.Image, vp world.Viewport, distance float64, ticks uint64) {
	span := vp.Width + 100
	for i := 0; i < starN; i++ {
		x := math.Mod(float64(i*100)-distance, span)
		if x < 0 {
			x += span
		}
		y := math.Mod(float64(i*37), vp.Height)
		size := 1 + float64((i*7+int(ticks/8))%3)/2
		vector.DrawFilledCircle(dst, float32(x), float32(y), float32(size), color.White, true)
	}
}

func drawGround(dst *ebiten.Image, vp world.Viewport, distance float64) {
	gy := float32(vp.GroundY())
	vector.DrawFilledRect(dst, 0, gy, float32(vp.Width), float32(vp.GroundHeight), groundClr, false)

	span := vp.Width + 50
	for i := 0.0; i < vp.Width; i += 50 {
		x := math.Mod(i-distance*2, span)
		if x < 0 {
			x += span
		}
		vector.DrawFilledRect(dst, float32(x), gy, 40, 10, stripeClr, false)
	}
}

func drawCoin(dst *ebiten.Image, c game.CoinView) {
	r := c.Size / 2
	cx, cy := c.X+r, c.Y+r
	vector.DrawFilledCircle(dst, float32(cx), float32(cy), float32(r), coinClr, true)

	// highlight sits up-left and turns with the coin
	sin, cos := math.Sincos(c.Rotation)
	hx := -c.Size/4*cos + c.Size/4*sin
	hy := -c.Size/4*sin - c.Size/4*cos
	vector.DrawFilledCircle(dst, float32(cx+hx), float32(cy+hy), float32(c.Size/4), coinShine, true)
}

func drawObstacle(dst *ebiten.Image, o game.ObstacleView) {
	x, y, w, h := float32(o.X), float32(o.Y), float32(o.W), float32(o.H)
	vector.DrawFilledRect(dst, x, y, w, h, render.MustHex(o.Kind.Color()), false)

	switch o.Kind {
	case game.ObstacleRobot:
		vector.DrawFilledCircle(dst, x+w/2, y+20, 10, stripeClr, true)
	case game.ObstacleLaser:
		vector.DrawFilledRect(dst, x, y, 10, h, laserClr, false)
	}
}

func drawPlayer(dst *ebiten.Image, p game.PlayerView, f game.AlienForm, ticks uint64) {
	body := render.MustHex(f.Color)
	x, y, w, h := float32(p.X), float32(p.Y), float32(p.W), float32(p.H)
	cx := x + w/2

	drawAbility(dst, p, f.Ability, body, ticks)

	vector.DrawFilledRect(dst, x, y, w, h, body, false)
	vector.DrawFilledCircle(dst, cx, y+30, 35, render.Lighten(body, 20), true)

	for _, dx := range []float32{-15, 15} {
		vector.DrawFilledCircle(dst, cx+dx, y+25, 8, color.White, true)
		vector.DrawFilledCircle(dst, cx+dx, y+25, 4, body, true)
	}
	vector.DrawFilledCircle(dst, cx, y+80, 15, emblemClr, true)
}

// drawAbility adds the per-form flourish. Jitter comes from the tick count
// so frames are reproducible.
func drawAbility(dst *ebiten.Image, p game.PlayerView, a world.Ability, body color.RGBA, ticks uint64) {
	x, y, w, h := float32(p.X), float32(p.Y), float32(p.W), float32(p.H)
	phase := float64(ticks) * 0.3

	switch a {
	case world.AbilityFire:
		for i := 0; i < 5; i++ {
			j := float32(math.Sin(phase + float64(i)*1.7))
			vector.DrawFilledCircle(dst, x+w+6+float32(i)*3+j*4, y+75+j*6, 6-float32(i), flameClr, true)
		}
	case world.AbilitySpeed:
		vector.DrawFilledRect(dst, x-30, y, 30, h, withAlpha(body, 0.3), false)
	case world.AbilityCrystal:
		for _, dx := range []float32{0, w - 12} {
			vector.DrawFilledRect(dst, x+dx, y-6, 12, 12, render.Lighten(body, 30), false)
		}
	case world.AbilityStrength:
		vector.StrokeRect(dst, x-3, y-3, w+6, h+6, 3, render.Lighten(body, 15), false)
	case world.AbilityClaws:
		for i := 0; i < 3; i++ {
			fy := y + 60 + float32(i)*8
			vector.StrokeLine(dst, x+w, fy, x+w+14, fy-6, 2, color.White, true)
		}
	case world.AbilityPhase:
		pulse := 0.2 + 0.1*math.Sin(phase)
		vector.DrawFilledCircle(dst, x+w/2, y+h/2, h*0.7, withAlpha(body, pulse), true)
	}
}

func lerp(a, b color.RGBA, t float64) color.RGBA {
	mix := func(u, v uint8) uint8 {
		return uint8(float64(u) + (float64(v)-float64(u))*t)
	}
	return color.RGBA{mix(a.R, b.R), mix(a.G, b.G), mix(a.B, b.B), 255}
}

// withAlpha returns c at opacity a, premultiplied.
func withAlpha(c color.RGBA, a float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * a),
		G: uint8(float64(c.G) * a),
		B: uint8(float64(c.B) * a),
		A: uint8(255 * a),
	}
}
