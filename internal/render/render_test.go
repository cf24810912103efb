package render

import (
	"image/color"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omnirun/omnirun/internal/game"
	"github.com/omnirun/omnirun/internal/world"
)

var (
	blaze = game.AlienForm{ID: "blaze", Name: "Blaze", Color: "#ff6b35", Ability: world.AbilityFire, Unlocked: true}
	prism = game.AlienForm{ID: "prism", Name: "Prism", Color: "#00ff88", Ability: world.AbilityCrystal, UnlockAt: 50}
)

func testSnapshot() game.Snapshot {
	vp := world.DefaultViewport()
	return game.Snapshot{
		Phase:          game.PhasePlaying,
		Score:          1234,
		CoinsCollected: 7,
		Best:           99,
		Distance:       56.7,
		Elapsed:        75.5,
		Speed:          7,
		Player: game.PlayerView{
			X: 100, Y: vp.GroundY() - 120, W: 80, H: 120,
			OnGround: true, Energy: 50, MaxEnergy: 100, MaxCool: 2,
		},
		Form:     blaze,
		Roster:   []game.AlienForm{blaze, prism},
		Viewport: vp,
	}
}

func screenText(buf *CellBuffer) string {
	var sb strings.Builder
	for y := 0; y < buf.Rows; y++ {
		sb.WriteString(buf.RowText(y))
		sb.WriteByte('\n')
	}
	return sb.String()
}

func TestHexColor(t *testing.T) {
	c, err := HexColor("#ff6b35")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{255, 107, 53, 255}, c)

	for _, bad := range []string{"ff6b35", "#12345", "#zzzzzz", ""} {
		_, err := HexColor(bad)
		assert.Error(t, err, bad)
	}
	assert.Equal(t, color.RGBA{255, 0, 255, 255}, MustHex("nope"))
}

func TestLightenClamps(t *testing.T) {
	got := Lighten(color.RGBA{250, 10, 0, 255}, 20)
	assert.Equal(t, color.RGBA{255, 61, 51, 255}, got)
	assert.Equal(t, color.RGBA{0, 0, 0, 255}, Lighten(color.RGBA{10, 20, 30, 255}, -50))
}

func TestNearest(t *testing.T) {
	for i, p := range Palette {
		assert.Equal(t, uint8(i), Nearest(p))
	}
	assert.Equal(t, uint8(ColorYellow), Nearest(color.RGBA{250, 250, 90, 255}))
	assert.Equal(t, uint8(ColorDarkGray), NearestHex("#666666"))
}

func TestCP437(t *testing.T) {
	assert.Equal(t, 'A', CP437ToUnicode['A'])
	assert.Equal(t, '█', CP437ToUnicode[219])
	assert.Equal(t, '─', CP437ToUnicode[196])
	assert.Equal(t, '░', CP437ToUnicode[176])
}

func TestCellBuffer(t *testing.T) {
	buf := NewCellBuffer(10, 4)
	buf.WriteString(8, 0, "abc", ColorWhite, ColorBlack)
	assert.Equal(t, "        ab", buf.RowText(0))
	assert.Equal(t, Cell{}, buf.Get(-1, 0))

	buf.DrawBox(0, 1, 4, 3, ColorWhite, ColorBlack)
	assert.True(t, strings.HasPrefix(buf.RowText(1), "┌──┐"))
	assert.True(t, strings.HasPrefix(buf.RowText(2), "│  │"))
	assert.True(t, strings.HasPrefix(buf.RowText(3), "└──┘"))

	buf.WriteCentered(0, "hi", ColorWhite, ColorBlack)
	assert.Equal(t, "    hi  ab", buf.RowText(0))

	buf.Resize(3, 2)
	assert.Len(t, buf.Cells, 6)
	assert.Equal(t, "   ", buf.RowText(1))
}

func TestClock(t *testing.T) {
	assert.Equal(t, "00:00", Clock(0))
	assert.Equal(t, "01:15", Clock(75.9))
	assert.Equal(t, "61:01", Clock(3661))
}

func TestDrawHUD(t *testing.T) {
	s := testSnapshot()
	s.Notices = []string{"Prism unlocked!"}
	buf := NewCellBuffer(80, 45)
	DrawHUD(buf, s)

	assert.Contains(t, buf.RowText(0), "[ BLAZE ]")
	assert.Contains(t, buf.RowText(0), "BEST 99")
	row1 := buf.RowText(1)
	assert.Contains(t, row1, "SCORE 1234")
	assert.Contains(t, row1, "COINS 7")
	assert.Contains(t, row1, "56m")
	assert.Contains(t, row1, "TIME 01:15")
	assert.Contains(t, row1, "SPEED 7")
	assert.Contains(t, buf.RowText(2), " 50/100")
	assert.Contains(t, buf.RowText(2), "Energy  "+strings.Repeat("█", 10)+strings.Repeat("░", 10))
	assert.Contains(t, buf.RowText(3), "READY")
	assert.Contains(t, buf.RowText(noticeRow), "Prism unlocked!")
}

func TestDrawHUDCooldown(t *testing.T) {
	s := testSnapshot()
	s.Player.Cooldown = 1
	buf := NewCellBuffer(80, 45)
	DrawHUD(buf, s)

	row := buf.RowText(3)
	assert.Contains(t, row, "1.0s")
	assert.NotContains(t, row, "READY")
}

func TestDrawOverlay(t *testing.T) {
	buf := NewCellBuffer(80, 45)
	s := testSnapshot()

	DrawOverlay(buf, s)
	assert.Equal(t, screenText(NewCellBuffer(80, 45)), screenText(buf), "playing draws nothing")

	s.Phase = game.PhaseMenu
	DrawOverlay(buf, s)
	text := screenText(buf)
	assert.Contains(t, text, "OMNIRUN")
	assert.Contains(t, text, "BEST: 99")
	assert.Contains(t, text, "Press ENTER")

	buf.Clear()
	s.Phase = game.PhasePaused
	DrawOverlay(buf, s)
	text = screenText(buf)
	assert.Contains(t, text, "PAUSED")
	assert.Contains(t, text, "Score: 1234")
	assert.Contains(t, text, "Distance: 56m")

	buf.Clear()
	s.Phase = game.PhaseGameOver
	DrawOverlay(buf, s)
	text = screenText(buf)
	assert.Contains(t, text, "MISSION FAILED!")
	assert.Contains(t, text, "Coins: 7")
	assert.Contains(t, text, "Forms unlocked: 1/2")
	assert.Contains(t, text, "BL  ??")
}

func TestOverlayFitsSmallBuffers(t *testing.T) {
	s := testSnapshot()
	s.Phase = game.PhaseGameOver
	buf := NewCellBuffer(20, 5)
	assert.NotPanics(t, func() { DrawOverlay(buf, s) })
}

func TestRasterizeWorld(t *testing.T) {
	s := testSnapshot()
	s.Obstacles = []game.ObstacleView{
		{X: 640, Y: 470, W: 64, H: 100, Kind: game.ObstacleRock},
		{X: 960, Y: 470, W: 64, H: 100, Kind: game.ObstacleLaser},
	}
	s.Coins = []game.CoinView{{X: 320, Y: 300, Size: 30}}

	buf := NewCellBuffer(80, 44)
	RasterizeWorld(buf, s, Area{X: 0, Y: 4, W: 80, H: 40})

	// player body
	body := buf.Get(8, 32)
	assert.Equal(t, byte(219), body.Glyph)
	assert.Equal(t, FormColor(blaze), body.FG)

	rock := buf.Get(41, 32)
	assert.Equal(t, byte(219), rock.Glyph)
	assert.Equal(t, NearestHex("#666666"), rock.FG)

	assert.Equal(t, byte(186), buf.Get(60, 32).Glyph, "laser beam on the left edge")

	coin := buf.Get(20, 21)
	assert.Equal(t, byte('O'), coin.Glyph)
	assert.Equal(t, uint8(ColorYellow), coin.FG)

	// ground fills the bottom row, HUD rows untouched
	assert.Equal(t, byte(177), buf.Get(0, 43).Glyph)
	assert.Equal(t, "", strings.TrimSpace(buf.RowText(0)))
}

func TestRasterizeClipsOffscreen(t *testing.T) {
	s := testSnapshot()
	s.Obstacles = []game.ObstacleView{{X: -60, Y: 470, W: 64, H: 100}, {X: 1270, Y: 470, W: 64, H: 100}}
	buf := NewCellBuffer(40, 20)
	assert.NotPanics(t, func() { RasterizeWorld(buf, s, Area{X: 0, Y: 0, W: 40, H: 20}) })
}
