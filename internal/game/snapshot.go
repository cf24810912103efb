package game

import "github.com/omnirun/omnirun/internal/world"

// PlayerView is the player's pose as seen by the renderer.
type PlayerView struct {
	X, Y, W, H float64
	VY         float64
	OnGround   bool
	Energy     float64
	MaxEnergy  float64
	Cooldown   float64
	MaxCool    float64
}

// ObstacleView is one obstacle as seen by the renderer.
type ObstacleView struct {
	X, Y, W, H float64
	Kind       ObstacleKind
}

// CoinView is one coin as seen by the renderer.
type CoinView struct {
	X, Y     float64
	Size     float64
	Rotation float64
	Value    int
}

// Snapshot is a read-only copy of everything the renderer needs. Its
// slices are owned by the snapshot.
type Snapshot struct {
	Phase          Phase
	Score          int
	CoinsCollected int
	Best           int
	Distance       float64
	Elapsed        float64
	Speed          float64
	Ticks          uint64

	Player    PlayerView
	Form      AlienForm
	Obstacles []ObstacleView
	Coins     []CoinView
	Roster    []AlienForm
	Notices   []string

	Viewport world.Viewport
}

// Snapshot copies the session state. Best and Notices are filled in by the
// driver.
func (s *Session) Snapshot() Snapshot {
	p := s.Player
	return Snapshot{
		Phase:          s.Phase,
		Score:          s.Score,
		CoinsCollected: s.CoinsCollected,
		Distance:       s.Distance,
		Elapsed:        s.Elapsed(),
		Speed:          s.Speed,
		Ticks:          s.Ticks,
		Player: PlayerView{
			X: p.X, Y: p.Y, W: p.W, H: p.H,
			VY:        p.VY,
			OnGround:  p.OnGround,
			Energy:    p.Energy,
			MaxEnergy: s.tuning.MaxEnergy,
			Cooldown:  p.Cooldown,
			MaxCool:   s.tuning.TransformCooldown,
		},
		Form:      s.CurrentForm(),
		Obstacles: s.ents.obstacleViews(),
		Coins:     s.ents.coinViews(),
		Roster:    s.Roster.Forms(),
		Viewport:  s.vp,
	}
}
