package game

// Rect is an axis-aligned box with its origin at the top-left.
type Rect struct {
	X, Y, W, H float64
}

// Overlaps reports whether r and o share interior area. Boxes that only
// touch along an edge do not overlap.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.X+o.W &&
		r.X+r.W > o.X &&
		r.Y < o.Y+o.H &&
		r.Y+r.H > o.Y
}

// collide runs the collision sweep. Obstacles are checked first; any hit
// ends the run and reports true. Coins are then collected and unlocks
// re-evaluated after each one.
func (s *Session) collide() bool {
	box := s.Player.Box()
	if s.ents.hitObstacle(box) {
		s.end()
		return true
	}
	for _, value := range s.ents.collectCoins(box) {
		s.CoinsCollected += value
		s.emit(Event{Kind: EventCoin, Value: value})
		for _, f := range s.Roster.CheckUnlocks(s.CoinsCollected) {
			s.emit(Event{Kind: EventUnlock, Form: f.ID})
		}
	}
	return false
}
