package assets

import (
	"bytes"
	"image/color"
	"math"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/goregular"
)

const (
	CapSpriteSize  = 128
	ArrowLength    = 96
	ArrowThickness = 20

	capCrimps = 21
)

var (
	CapSprite   *ebiten.Image
	ArrowSprite *ebiten.Image
	HUDFont     *text.GoTextFace
	BannerFont  *text.GoTextFace
)

var (
	capRim   = color.RGBA{170, 20, 30, 255}
	capFace  = color.RGBA{225, 55, 55, 255}
	capShine = color.RGBA{245, 130, 120, 255}
)

var loadOnce sync.Once

// Load builds the sprites and fonts. It is safe to call more than once.
func Load() {
	loadOnce.Do(load)
}

func load() {
	CapSprite = drawCap(CapSpriteSize)
	ArrowSprite = drawArrow(ArrowLength, ArrowThickness)

	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}
	HUDFont = &text.GoTextFace{
		Source: fontSource,
		Size:   24,
	}
	BannerFont = &text.GoTextFace{
		Source: fontSource,
		Size:   48,
	}
}

// drawCap renders a bottle cap seen from above: a crimped rim around a flat face
func drawCap(size int) *ebiten.Image {
	img := ebiten.NewImage(size, size)
	r := float32(size) / 2

	vector.DrawFilledCircle(img, r, r, r, capRim, true)

	// Crimps are short spokes cut into the rim
	for i := 0; i < capCrimps; i++ {
		angle := 2 * math.Pi * float64(i) / capCrimps
		cos, sin := float32(math.Cos(angle)), float32(math.Sin(angle))
		vector.StrokeLine(img, r+cos*r*0.82, r+sin*r*0.82, r+cos*r, r+sin*r, 3, color.Black, true)
	}

	vector.DrawFilledCircle(img, r, r, r*0.78, capFace, true)
	vector.DrawFilledCircle(img, r*0.8, r*0.75, r*0.22, capShine, true)

	return img
}

// drawArrow renders a white arrow pointing along +X, so it can be tinted and
// rotated at draw time
func drawArrow(length, thickness int) *ebiten.Image {
	img := ebiten.NewImage(length, thickness)
	h := float32(thickness)
	shaft := float32(length - thickness)

	vector.DrawFilledRect(img, 0, h/4, shaft, h/2, color.White, false)

	for x := shaft; x < float32(length); x++ {
		half := h / 2 * (1 - (x-shaft)/(float32(length)-shaft))
		vector.StrokeLine(img, x+0.5, h/2-half, x+0.5, h/2+half, 1, color.White, false)
	}

	return img
}
