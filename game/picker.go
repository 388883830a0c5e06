package game

import (
	"github.com/meghashyamc/flickcap/geometry"
	"github.com/solarlune/resolv"
)

const (
	pickerCellSize = 32
	resolvCap      = "cap"
)

// picker finds the cap under a pointer. A resolv space mirrors the rendered
// extent of every cap; the last grabbed cap is drawn on top and wins ties.
type picker struct {
	space     *resolv.Space
	objects   map[*capEntity]*resolv.Object
	layers    map[*capEntity]int
	nextLayer int
}

func newPicker(width, height int) *picker {
	return &picker{
		space:   resolv.NewSpace(max(width, 1), max(height, 1), pickerCellSize, pickerCellSize),
		objects: make(map[*capEntity]*resolv.Object),
		layers:  make(map[*capEntity]int),
	}
}

func (p *picker) Add(e *capEntity) {
	if _, ok := p.objects[e]; ok {
		return
	}
	obj := resolv.NewObject(0, 0, 0, 0, resolvCap)
	obj.Data = e
	p.space.Add(obj)
	p.objects[e] = obj
	p.Raise(e)
}

func (p *picker) Remove(e *capEntity) {
	obj, ok := p.objects[e]
	if !ok {
		return
	}
	p.space.Remove(obj)
	delete(p.objects, e)
	delete(p.layers, e)
}

// Raise puts e above every other cap
func (p *picker) Raise(e *capEntity) {
	p.nextLayer++
	p.layers[e] = p.nextLayer
}

func (p *picker) Layer(e *capEntity) int {
	return p.layers[e]
}

// Resize rebuilds the space for a new layout size, keeping layers
func (p *picker) Resize(width, height int) {
	p.space = resolv.NewSpace(max(width, 1), max(height, 1), pickerCellSize, pickerCellSize)
	for _, obj := range p.objects {
		p.space.Add(obj)
	}
	p.Sync()
}

// Sync copies the current cap extents into the space
func (p *picker) Sync() {
	for e, obj := range p.objects {
		ext, ok := e.cap.WorldExtent()
		if !ok {
			continue
		}
		obj.X, obj.Y = ext.Min.X, ext.Min.Y
		obj.W, obj.H = ext.Width(), ext.Height()
		obj.Update()
	}
}

// Pick returns the topmost active cap containing pt, or nil
func (p *picker) Pick(pt geometry.Vector) *capEntity {
	probe := resolv.NewObject(pt.X, pt.Y, 1, 1)
	p.space.Add(probe)
	defer p.space.Remove(probe)

	collision := probe.Check(0, 0, resolvCap)
	if collision == nil {
		return nil
	}

	var top *capEntity
	for _, obj := range collision.ObjectsByTags(resolvCap) {
		e, ok := obj.Data.(*capEntity)
		if !ok || !e.cap.Contains(pt) {
			continue
		}
		if top == nil || p.layers[e] > p.layers[top] {
			top = e
		}
	}
	return top
}
