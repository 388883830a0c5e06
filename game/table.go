package game

import (
	"github.com/meghashyamc/flickcap/bottlecap"
	"github.com/meghashyamc/flickcap/geometry"
)

// Table is the surface caps slide on. It keeps the design aspect ratio and is
// letterboxed into whatever size the window currently has, so local
// coordinates are design pixels.
type Table struct {
	designWidth  float64
	designHeight float64
	layoutWidth  float64
	layoutHeight float64
}

func NewTable(designWidth, designHeight int) *Table {
	return &Table{
		designWidth:  float64(designWidth),
		designHeight: float64(designHeight),
	}
}

// Resize records the layout size and reports whether it changed
func (t *Table) Resize(width, height int) bool {
	w, h := float64(width), float64(height)
	if w == t.layoutWidth && h == t.layoutHeight {
		return false
	}
	t.layoutWidth, t.layoutHeight = w, h
	return true
}

func (t *Table) Frame() (bottlecap.Frame, bool) {
	if t.designWidth <= 0 || t.designHeight <= 0 || t.layoutWidth <= 0 || t.layoutHeight <= 0 {
		return bottlecap.Frame{}, false
	}

	scale := min(t.layoutWidth/t.designWidth, t.layoutHeight/t.designHeight)
	w, h := t.designWidth*scale, t.designHeight*scale

	return bottlecap.Frame{
		Rect:  geometry.NewRect((t.layoutWidth-w)/2, (t.layoutHeight-h)/2, w, h),
		Scale: scale,
	}, true
}
