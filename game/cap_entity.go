package game

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/meghashyamc/flickcap/assets"
	"github.com/meghashyamc/flickcap/bottlecap"
	"github.com/meghashyamc/flickcap/geometry"
)

var (
	arrowWeak   = color.RGBA{120, 220, 120, 255}
	arrowStrong = color.RGBA{250, 70, 50, 255}
)

// capEntity ties a cap to its spawn point and grab effect
type capEntity struct {
	cap   *bottlecap.Cap
	pop   *popEffect
	spawn geometry.Vector
}

func newCapEntity(c *bottlecap.Cap, spawn geometry.Vector) *capEntity {
	c.SetPosition(spawn)
	return &capEntity{
		cap:   c,
		pop:   newPopEffect(),
		spawn: spawn,
	}
}

func (e *capEntity) Update(dt float64) {
	e.cap.SetScale(e.pop.Update(dt))
	e.cap.Tick(dt)
}

func (e *capEntity) Grab(ev bottlecap.PointerEvent) bool {
	e.cap.PointerDown(ev)
	if !e.cap.Dragging() {
		return false
	}
	e.pop.Play()
	return true
}

func (e *capEntity) Reset() {
	e.cap.Cancel()
	e.cap.Stop()
	e.cap.SetPosition(e.spawn)
	e.pop.Stop()
	e.cap.SetScale(1)
}

func (e *capEntity) Draw(screen *ebiten.Image, frame bottlecap.Frame) {
	center := frame.ToWorld(e.cap.Position())

	ext, ok := e.cap.WorldExtent()
	if !ok {
		return
	}

	sprite := assets.CapSprite
	bounds := sprite.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-float64(bounds.Dx())/2, -float64(bounds.Dy())/2)
	op.GeoM.Scale(ext.Width()/float64(bounds.Dx()), ext.Height()/float64(bounds.Dy()))
	op.GeoM.Translate(center.X, center.Y)
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(sprite, op)

	e.drawIndicator(screen, frame, center)
}

func (e *capEntity) drawIndicator(screen *ebiten.Image, frame bottlecap.Frame, center geometry.Vector) {
	ind := e.cap.Indicator()
	if !ind.Visible {
		return
	}

	sprite := assets.ArrowSprite
	bounds := sprite.Bounds()
	filled := int(ind.Fill * float64(bounds.Dx()))
	if filled <= 0 {
		return
	}
	arrow := sprite.SubImage(image.Rect(0, 0, filled, bounds.Dy())).(*ebiten.Image)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(0, -float64(bounds.Dy())/2)
	op.GeoM.Translate(ind.Offset, 0)
	op.GeoM.Scale(frame.Scale, frame.Scale)
	op.GeoM.Rotate(ind.Rotation)
	op.GeoM.Translate(center.X, center.Y)
	op.ColorScale.ScaleWithColor(lerpColor(arrowWeak, arrowStrong, ind.Fill))
	screen.DrawImage(arrow, op)
}

func lerpColor(from, to color.RGBA, t float64) color.RGBA {
	mix := func(a, b uint8) uint8 {
		return uint8(float64(a) + (float64(b)-float64(a))*t)
	}
	return color.RGBA{mix(from.R, to.R), mix(from.G, to.G), mix(from.B, to.B), mix(from.A, to.A)}
}
