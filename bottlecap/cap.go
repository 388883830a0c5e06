// Package bottlecap implements a cap that can be grabbed, aimed and flicked
// across a bounded surface, where it glides and bounces off the edges until
// it comes to rest.
//
// A Cap is driven by its host: pointer events go to PointerDown, PointerMove
// and PointerUp, and Tick advances it once per frame. A Cap is not safe for
// concurrent use.
package bottlecap

import (
	"math"

	"github.com/meghashyamc/flickcap/geometry"
	"github.com/meghashyamc/flickcap/logger"
)

type State struct {
	Position geometry.Vector // local coordinates
	Velocity geometry.Vector // local units per second
	Dragging bool
}

// FlickStats describes one flick from release until the cap comes to rest.
type FlickStats struct {
	ReleaseSpeed float64
	Distance     float64 // local units travelled
	Bounces      int
}

type Cap struct {
	id        string
	cfg       Config
	surface   Surface
	size      geometry.Vector
	scale     float64
	state     State
	drag      DragSession
	indicator Indicator
	flick     FlickStats
	flicking  bool
	onSettle  func(FlickStats)
	destroyed bool
	logger    logger.Logger
}

func New(id string, cfg Config, surface Surface, log logger.Logger) (*Cap, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if surface == nil {
		return nil, ErrNilSurface
	}
	if log == nil {
		log = logger.New()
	}

	c := &Cap{
		id:      id,
		cfg:     cfg,
		surface: surface,
		scale:   1,
		logger:  log,
	}

	c.logger.Debug("cap created", "cap", id, "config", cfg)
	return c, nil
}

func (c *Cap) ID() string {
	return c.id
}

func (c *Cap) Config() Config {
	return c.cfg
}

func (c *Cap) State() State {
	return c.state
}

func (c *Cap) Position() geometry.Vector {
	return c.state.Position
}

func (c *Cap) Velocity() geometry.Vector {
	return c.state.Velocity
}

func (c *Cap) Dragging() bool {
	return c.state.Dragging
}

func (c *Cap) Indicator() Indicator {
	return c.indicator
}

// SetPosition places the cap at a local position. It does not touch velocity.
func (c *Cap) SetPosition(p geometry.Vector) {
	if !p.IsFinite() {
		return
	}
	c.state.Position = p
}

// Stop zeroes the velocity and forgets the flick in progress.
func (c *Cap) Stop() {
	c.state.Velocity = geometry.Vector{}
	c.flicking = false
}

// SetSize sets the unscaled size of the cap in local units.
func (c *Cap) SetSize(size geometry.Vector) {
	if !size.IsFinite() || size.X < 0 || size.Y < 0 {
		return
	}
	c.size = size
}

// SetScale sets the visual scale of the cap. The rendered extent, and so the
// extent the boundary sees, is size times scale.
func (c *Cap) SetScale(scale float64) {
	if math.IsNaN(scale) || math.IsInf(scale, 0) || scale < 0 {
		return
	}
	c.scale = scale
}

func (c *Cap) Scale() float64 {
	return c.scale
}

// SetSettleHandler registers fn to be called once each flick comes to rest.
func (c *Cap) SetSettleHandler(fn func(FlickStats)) {
	c.onSettle = fn
}

// Active reports whether the cap still takes part in ticks and hit tests.
func (c *Cap) Active() bool {
	return !c.destroyed
}

// Destroy stops the cap. Later events and ticks are ignored.
func (c *Cap) Destroy() {
	c.destroyed = true
	c.drag = DragSession{}
	c.state.Dragging = false
	c.indicator = Indicator{}
}

func (c *Cap) halfExtent() geometry.Vector {
	return c.size.Scale(c.scale / 2)
}

// WorldCenter returns the cap centre in world coordinates.
func (c *Cap) WorldCenter() (geometry.Vector, bool) {
	f, ok := frameOf(c.surface)
	if !ok {
		return geometry.Vector{}, false
	}
	return f.ToWorld(c.state.Position), true
}

// WorldExtent returns the rendered extent of the cap in world coordinates.
func (c *Cap) WorldExtent() (geometry.Rect, bool) {
	f, ok := frameOf(c.surface)
	if !ok {
		return geometry.Rect{}, false
	}
	return geometry.RectAround(f.ToWorld(c.state.Position), c.halfExtent().Scale(f.Scale)), true
}

// Contains reports whether a world point falls on an active cap.
func (c *Cap) Contains(world geometry.Vector) bool {
	if c.destroyed {
		return false
	}
	ext, ok := c.WorldExtent()
	return ok && ext.Contains(world)
}

// Tick advances the cap by dt seconds.
func (c *Cap) Tick(dt float64) {
	if c.destroyed {
		return
	}
	if math.IsNaN(dt) || math.IsInf(dt, 0) || dt < 0 {
		dt = 0
	}

	if !c.state.Dragging {
		moved := integrate(&c.state, c.cfg, dt)
		if c.flicking {
			c.flick.Distance += moved
		}
	}

	if f, ok := frameOf(c.surface); ok {
		bounces := keepInBounds(&c.state, f.LocalRect(), c.halfExtent(), c.cfg.BounceDamping)
		if c.flicking {
			c.flick.Bounces += bounces
		}
	}

	if c.flicking && !c.state.Dragging && !c.moving() {
		c.settle()
	}
}

func (c *Cap) moving() bool {
	return c.state.Velocity.Magnitude() > c.cfg.MinVelocity
}

func (c *Cap) settle() {
	c.flicking = false
	stats := c.flick
	c.logger.Debug("cap settled", "cap", c.id, "distance", stats.Distance, "bounces", stats.Bounces, "position", c.state.Position)
	if c.onSettle != nil {
		c.onSettle(stats)
	}
}
