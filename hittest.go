package main

import (
	"image/color"
	"math"

	"github.com/fogleman/gg"
)

// HitTester answers "is this point on the item's visible pixels" by drawing
// the item alone into an off-screen buffer and reading back the alpha. The
// buffer is cleared on every query; transforms change between queries so
// nothing is cached.
type HitTester struct {
	assets *Assets
	dc     *gg.Context
}

func NewHitTester(assets *Assets) *HitTester {
	return &HitTester{
		assets: assets,
		dc:     gg.NewContext(canvasWidth, canvasHeight),
	}
}

// OpaqueAt reports whether (x, y) falls on a non-transparent pixel of it.
// Items whose sprite has not loaded are never hit.
func (h *HitTester) OpaqueAt(it Item, x, y float64) bool {
	px, py := int(math.Floor(x)), int(math.Floor(y))
	if px < 0 || py < 0 || px >= canvasWidth || py >= canvasHeight {
		return false
	}
	im := h.assets.SpriteFor(it).Image()
	if im == nil {
		return false
	}

	h.dc.SetColor(color.Transparent)
	h.dc.Clear()
	h.dc.Push()
	applyItemTransform(h.dc, it)
	drawImageIn(h.dc, im, it.Width*it.DisplayScale(), it.Height*it.DisplayScale())
	h.dc.Pop()

	_, _, _, a := h.dc.Image().At(px, py).RGBA()
	return a > 0
}

// Pick scans items from the top of the z-order down and returns the index of
// the first one accepted by filter whose displayed box contains (x, y) and
// which is opaque there, or -1.
func (h *HitTester) Pick(items []Item, x, y float64, filter func(Item) bool) int {
	for i := len(items) - 1; i >= 0; i-- {
		it := items[i]
		if filter != nil && !filter(it) {
			continue
		}
		if !it.DisplayBox().Contains(x, y) {
			continue
		}
		if h.OpaqueAt(it, x, y) {
			return i
		}
	}
	return -1
}
