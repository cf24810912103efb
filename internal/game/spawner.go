package game

// spawn rolls independently for one obstacle and one coin at the right
// edge. Rolls are always drawn, so a capped spawn does not shift the random
// sequence.
func (s *Session) spawn() {
	t := &s.tuning
	x := s.vp.SpawnX()
	ground := s.vp.GroundY()

	if s.rng.Float64() < t.ObstacleChance {
		kind := ObstacleKind(s.rng.IntN(int(obstacleKindCount)))
		w := t.ObstacleMinW + s.rng.Float64()*(t.ObstacleMaxW-t.ObstacleMinW)
		h := t.ObstacleMinH + s.rng.Float64()*(t.ObstacleMaxH-t.ObstacleMinH)
		s.SpawnObstacle(kind, x, ground-h, w, h)
	}

	if s.rng.Float64() < t.CoinChance {
		y := ground - t.CoinLift - s.rng.Float64()*t.CoinBand
		s.SpawnCoin(x, y, t.CoinSize, t.CoinValue)
	}
}
