package bottlecap

// integrate advances a free cap by dt and applies one step of glide decay.
// A cap at or below MinVelocity is at rest and is left alone. It returns the
// distance covered.
func integrate(s *State, cfg Config, dt float64) float64 {
	if s.Dragging || s.Velocity.Magnitude() <= cfg.MinVelocity {
		return 0
	}

	step := s.Velocity.Scale(dt)
	s.Position = s.Position.Add(step)
	// Decay is per tick, not per second.
	s.Velocity = s.Velocity.Scale(cfg.GlideFactor)

	return step.Magnitude()
}
