package bottlecap

import (
	"github.com/meghashyamc/flickcap/geometry"
)

// minReleaseBoost scales MinVelocity when a flick is too weak to be seen.
const minReleaseBoost = 1.2

// PointerEvent is one pointer sample from the host. Position is in screen
// coordinates, which are the world coordinates of the surface. Hit is the
// topmost cap under the pointer, if any, as resolved by the host.
type PointerEvent struct {
	Position geometry.Vector
	Hit      *Cap
}

type DragSession struct {
	Start   geometry.Vector
	Current geometry.Vector
	Active  bool
}

// Pull points from the current pointer back to where the drag started, the
// direction the cap is thrown in.
func (d DragSession) Pull() geometry.Vector {
	return d.Start.Sub(d.Current)
}

func (c *Cap) DragSession() DragSession {
	return c.drag
}

func (c *Cap) PointerDown(ev PointerEvent) {
	if c.destroyed || ev.Hit != c || c.drag.Active {
		return
	}
	f, ok := frameOf(c.surface)
	if !ok {
		return
	}

	p := f.ToLocal(ev.Position)
	c.drag = DragSession{Start: p, Current: p, Active: true}
	c.state.Dragging = true
	c.flicking = false
	c.indicator = presentIndicator(0, 0, c.cfg)

	c.logger.Debug("cap grabbed", "cap", c.id, "start", p)
}

func (c *Cap) PointerMove(ev PointerEvent) {
	if c.destroyed || !c.drag.Active {
		return
	}
	c.track(ev.Position)

	pull := c.drag.Pull()
	distance := clampValue(pull.Magnitude(), 0, c.cfg.MaxDragDistance)
	c.indicator = presentIndicator(pull.Angle(), distance, c.cfg)
}

func (c *Cap) PointerUp(ev PointerEvent) {
	if c.destroyed || !c.drag.Active {
		return
	}
	c.track(ev.Position)

	pull := c.drag.Pull()
	c.drag = DragSession{}
	c.state.Dragging = false
	c.indicator = Indicator{}

	velocity, ok := releaseVelocity(pull, c.cfg)
	if !ok {
		c.logger.Debug("cap released without pull", "cap", c.id)
		return
	}

	c.state.Velocity = velocity
	c.flick = FlickStats{ReleaseSpeed: velocity.Magnitude()}
	c.flicking = true

	c.logger.Debug("cap flicked", "cap", c.id, "pull", pull, "velocity", velocity)
}

// Cancel ends an active drag without launching the cap.
func (c *Cap) Cancel() {
	if !c.drag.Active {
		return
	}
	c.drag = DragSession{}
	c.state.Dragging = false
	c.indicator = Indicator{}
}

// track moves the live drag point. The previous point is kept when the
// surface is not laid out.
func (c *Cap) track(screen geometry.Vector) {
	f, ok := frameOf(c.surface)
	if !ok || !screen.IsFinite() {
		return
	}
	c.drag.Current = f.ToLocal(screen)
}

// releaseVelocity turns a pull into a launch velocity. It reports false for a
// pull with no direction.
func releaseVelocity(pull geometry.Vector, cfg Config) (geometry.Vector, bool) {
	if pull.IsZero() || !pull.IsFinite() {
		return geometry.Vector{}, false
	}

	direction := pull.Normalize()
	distance := min(pull.Magnitude(), cfg.MaxDragDistance)
	velocity := direction.Scale(distance * cfg.FlickPower)

	if velocity.Magnitude() < cfg.MinVelocity {
		velocity = direction.Scale(cfg.MinVelocity * minReleaseBoost)
	}
	return velocity, true
}
