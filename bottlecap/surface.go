package bottlecap

import (
	"math"

	"github.com/meghashyamc/flickcap/geometry"
)

// Frame is the movable region for one tick. Rect is in world (screen)
// coordinates, Scale is world units per local unit. Local coordinates are
// anchored at the centre of Rect.
type Frame struct {
	Rect  geometry.Rect
	Scale float64
}

// Surface provides the frame the cap moves in. The second return value is
// false while the surface is not laid out yet.
type Surface interface {
	Frame() (Frame, bool)
}

type SurfaceFunc func() (Frame, bool)

func (f SurfaceFunc) Frame() (Frame, bool) {
	return f()
}

func (f Frame) valid() bool {
	return !f.Rect.Empty() && f.Scale > 0 && !math.IsInf(f.Scale, 0) &&
		f.Rect.Min.IsFinite() && f.Rect.Max.IsFinite()
}

func (f Frame) ToLocal(world geometry.Vector) geometry.Vector {
	return world.Sub(f.Rect.Center()).Scale(1 / f.Scale)
}

func (f Frame) ToWorld(local geometry.Vector) geometry.Vector {
	return f.Rect.Center().Add(local.Scale(f.Scale))
}

// LocalRect is Rect expressed in local coordinates
func (f Frame) LocalRect() geometry.Rect {
	return geometry.Rect{
		Min: f.ToLocal(f.Rect.Min),
		Max: f.ToLocal(f.Rect.Max),
	}
}

func frameOf(s Surface) (Frame, bool) {
	if s == nil {
		return Frame{}, false
	}
	f, ok := s.Frame()
	if !ok || !f.valid() {
		return Frame{}, false
	}
	return f, true
}
