package game

import "math"

// SpeedAt returns the scroll speed after elapsed seconds of play: the base
// speed plus one per full SpeedInterval.
func SpeedAt(t Tuning, elapsed float64) float64 {
	return t.BaseSpeed + math.Floor(elapsed/t.SpeedInterval)
}

// groundLevel is the player's Y when standing on the ground.
func (s *Session) groundLevel() float64 {
	return s.vp.GroundY() - s.Player.H
}

// stepPlayer applies gravity, integrates, clamps to the ground and
// regenerates energy while grounded.
func (s *Session) stepPlayer() {
	p := &s.Player
	t := &s.tuning

	p.VY += t.Gravity
	p.Y += p.VY

	if ground := s.groundLevel(); p.Y >= ground {
		p.Y = ground
		p.VY = 0
		p.OnGround = true
	}

	if p.OnGround {
		p.Energy = min(p.Energy+t.EnergyRegen, t.MaxEnergy)
	}
}

// scroll moves the world left by the current speed and prunes anything
// that has fully left the screen. Every pruned obstacle scores.
func (s *Session) scroll() {
	passed := s.ents.scrollObstacles(s.Speed)
	s.Score += passed * s.tuning.PassScore
	s.ents.scrollCoins(s.Speed, s.tuning.CoinSpin)
}
