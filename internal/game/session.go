package game

import (
	"math/rand/v2"

	"github.com/omnirun/omnirun/internal/world"
)

// Player is the runner. X is fixed; Y is the top of its box.
type Player struct {
	X, Y     float64
	W, H     float64
	VY       float64
	OnGround bool
	Energy   float64
	Cooldown float64 // seconds until the next transform is allowed
	Form     int     // roster index of the active form
}

// Box returns the player's collision box.
func (p *Player) Box() Rect {
	return Rect{X: p.X, Y: p.Y, W: p.W, H: p.H}
}

// Session is the complete state of one run. All mutation happens through
// Tick and the command methods, on the caller's goroutine.
type Session struct {
	Phase          Phase
	Ticks          uint64
	Score          int
	CoinsCollected int
	Distance       float64
	Speed          float64
	Player         Player
	Roster         *Roster

	vp     world.Viewport
	tuning Tuning
	rng    *rand.Rand
	ents   *entities
	events []Event
}

// NewSession creates an idle session in PhaseMenu with the player standing
// on the ground. rng drives every spawn decision.
func NewSession(vp world.Viewport, t Tuning, roster *world.RosterDef, rng *rand.Rand) *Session {
	s := &Session{
		Phase:  PhaseMenu,
		Speed:  t.BaseSpeed,
		Roster: NewRoster(roster),
		vp:     vp,
		tuning: t,
		rng:    rng,
		ents:   newEntities(),
	}
	s.Player = Player{
		X:        t.PlayerX,
		W:        t.PlayerW,
		H:        t.PlayerH,
		OnGround: true,
		Energy:   t.MaxEnergy,
	}
	s.Player.Y = s.groundLevel()
	return s
}

// Tuning returns the constants this session runs with.
func (s *Session) Tuning() Tuning { return s.tuning }

// Viewport returns the viewport this session runs in.
func (s *Session) Viewport() world.Viewport { return s.vp }

// Elapsed returns seconds of play so far.
func (s *Session) Elapsed() float64 {
	return float64(s.Ticks) / float64(s.tuning.TickRate)
}

// ObstacleCount returns the number of live obstacles.
func (s *Session) ObstacleCount() int { return s.ents.obstacles }

// CoinCount returns the number of live coins.
func (s *Session) CoinCount() int { return s.ents.coins }

// CurrentForm returns the active alien form.
func (s *Session) CurrentForm() AlienForm { return s.Roster.Form(s.Player.Form) }

// Tick advances the session by one fixed step. It does nothing unless the
// session is playing.
func (s *Session) Tick() {
	if s.Phase != PhasePlaying {
		return
	}
	t := &s.tuning

	// Speed for this tick comes from the time elapsed before it.
	s.Speed = SpeedAt(*t, s.Elapsed())
	s.Ticks++
	s.Distance += s.Speed * t.DistanceFactor

	s.stepPlayer()
	s.scroll()
	s.spawn()
	if s.collide() {
		return
	}

	s.Player.Cooldown = max(s.Player.Cooldown-t.Dt(), 0)
	if s.Player.Cooldown < cooldownEpsilon {
		s.Player.Cooldown = 0
	}
}

// cooldownEpsilon absorbs the rounding left after summing 1/TickRate steps,
// so a 2 s cooldown clears after exactly 2*TickRate ticks.
const cooldownEpsilon = 1e-9

// SpawnObstacle places an obstacle with its top-left at (x, y). It reports
// false when the obstacle cap is reached.
func (s *Session) SpawnObstacle(kind ObstacleKind, x, y, w, h float64) bool {
	if s.ents.obstacles >= s.tuning.MaxObstacles {
		return false
	}
	s.ents.addObstacle(kind, x, y, w, h)
	return true
}

// SpawnCoin places a coin with its top-left at (x, y). It reports false
// when the coin cap is reached.
func (s *Session) SpawnCoin(x, y, size float64, value int) bool {
	if s.ents.coins >= s.tuning.MaxCoins {
		return false
	}
	s.ents.addCoin(x, y, size, value)
	return true
}

// begin moves a fresh session into play.
func (s *Session) begin() {
	if s.Phase == PhaseMenu {
		s.Phase = PhasePlaying
	}
}

// end freezes the session after a fatal collision.
func (s *Session) end() {
	s.Phase = PhaseGameOver
	s.emit(Event{Kind: EventGameOver, Value: s.Score})
}

func (s *Session) emit(ev Event) {
	s.events = append(s.events, ev)
}

// drainEvents returns and clears the pending events.
func (s *Session) drainEvents() []Event {
	evs := s.events
	s.events = nil
	return evs
}
