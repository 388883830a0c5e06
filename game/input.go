package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/meghashyamc/flickcap/geometry"
)

type pointerPhase int

const (
	pointerDown pointerPhase = iota
	pointerMove
	pointerUp
)

type pointerSource int

const (
	sourceMouse pointerSource = iota
	sourceTouch
)

type pointerSample struct {
	source   pointerSource
	phase    pointerPhase
	position geometry.Vector
}

// pointerInput turns the left mouse button and the first touch into pointer
// samples. Only one touch is followed at a time.
type pointerInput struct {
	touchID   ebiten.TouchID
	touching  bool
	lastTouch geometry.Vector
	touchIDs  []ebiten.TouchID
}

func (p *pointerInput) Poll() []pointerSample {
	var samples []pointerSample
	samples = p.pollMouse(samples)
	samples = p.pollTouch(samples)
	return samples
}

func (p *pointerInput) pollMouse(samples []pointerSample) []pointerSample {
	pos := getCurrentMousePosition()

	pressed := inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	if pressed {
		samples = append(samples, pointerSample{source: sourceMouse, phase: pointerDown, position: pos})
	}
	// Press and release can land in the same tick
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		return append(samples, pointerSample{source: sourceMouse, phase: pointerUp, position: pos})
	}
	if !pressed && ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		samples = append(samples, pointerSample{source: sourceMouse, phase: pointerMove, position: pos})
	}

	return samples
}

func (p *pointerInput) pollTouch(samples []pointerSample) []pointerSample {
	if !p.touching {
		p.touchIDs = inpututil.AppendJustPressedTouchIDs(p.touchIDs[:0])
		if len(p.touchIDs) == 0 {
			return samples
		}
		p.touchID = p.touchIDs[0]
		p.touching = true
		p.lastTouch = touchPosition(p.touchID)
		return append(samples, pointerSample{source: sourceTouch, phase: pointerDown, position: p.lastTouch})
	}

	// A released touch has no position any more, so the last one seen is used
	if inpututil.IsTouchJustReleased(p.touchID) {
		p.touching = false
		return append(samples, pointerSample{source: sourceTouch, phase: pointerUp, position: p.lastTouch})
	}

	p.lastTouch = touchPosition(p.touchID)
	return append(samples, pointerSample{source: sourceTouch, phase: pointerMove, position: p.lastTouch})
}

func getCurrentMousePosition() geometry.Vector {
	mouseX, mouseY := ebiten.CursorPosition()
	return geometry.Vector{X: float64(mouseX), Y: float64(mouseY)}
}

func touchPosition(id ebiten.TouchID) geometry.Vector {
	x, y := ebiten.TouchPosition(id)
	return geometry.Vector{X: float64(x), Y: float64(y)}
}
