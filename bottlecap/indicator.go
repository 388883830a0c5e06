package bottlecap

// Indicator is the aim readout shown while a cap is dragged. It never feeds
// back into motion.
type Indicator struct {
	Visible  bool
	Rotation float64 // radians, direction of the pull
	Fill     float64 // pull distance over MaxDragDistance, 0..1
	Offset   float64 // distance of the arrow from the cap centre
}

func presentIndicator(angle, distance float64, cfg Config) Indicator {
	return Indicator{
		Visible:  true,
		Rotation: angle,
		Fill:     clampValue(distance/cfg.MaxDragDistance, 0, 1),
		Offset:   cfg.ArrowDistance,
	}
}
