package game

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

const (
	popScale    = 1.2
	popDuration = 0.15 // seconds per half
)

// popEffect briefly swells a cap when it is grabbed and lets it settle back.
type popEffect struct {
	grow    *gween.Tween
	shrink  *gween.Tween
	playing bool
	growing bool
}

func newPopEffect() *popEffect {
	return &popEffect{
		grow:   gween.New(1, popScale, popDuration, ease.OutBack),
		shrink: gween.New(popScale, 1, popDuration, ease.InBack),
	}
}

func (p *popEffect) Play() {
	p.grow.Reset()
	p.shrink.Reset()
	p.playing = true
	p.growing = true
}

func (p *popEffect) Stop() {
	p.playing = false
}

func (p *popEffect) Playing() bool {
	return p.playing
}

// Update advances the effect by dt seconds and returns the scale to draw with
func (p *popEffect) Update(dt float64) float64 {
	if !p.playing {
		return 1
	}

	if p.growing {
		scale, finished := p.grow.Update(float32(dt))
		if finished {
			p.growing = false
		}
		return float64(scale)
	}

	scale, finished := p.shrink.Update(float32(dt))
	if finished {
		p.playing = false
		return 1
	}
	return float64(scale)
}
