package game

// Jump launches the player. It needs the player grounded and at least
// JumpCost energy; otherwise nothing changes and it reports false.
func (s *Session) Jump() bool {
	if s.Phase != PhasePlaying {
		return false
	}
	p := &s.Player
	t := &s.tuning
	if !p.OnGround || p.Energy < t.JumpCost {
		return false
	}
	p.VY = t.JumpVelocity
	p.OnGround = false
	p.Energy = max(p.Energy-t.JumpCost, 0)
	s.emit(Event{Kind: EventJump})
	return true
}

// Transform switches to the next unlocked form and starts the cooldown.
// It reports false while cooling down or when no other form is unlocked.
func (s *Session) Transform() bool {
	if s.Phase != PhasePlaying || s.Player.Cooldown > 0 {
		return false
	}
	next, ok := s.Roster.Next(s.Player.Form)
	if !ok {
		return false
	}
	s.Player.Form = next
	s.Player.Cooldown = s.tuning.TransformCooldown
	s.emit(Event{Kind: EventTransform, Form: s.Roster.Form(next).ID})
	return true
}
