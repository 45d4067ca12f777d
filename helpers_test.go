package main

import (
	"image"
	"image/color"
)

var (
	flowerColor = color.NRGBA{R: 200, G: 40, B: 80, A: 255}
	innerColor  = color.NRGBA{R: 240, G: 200, B: 220, A: 255}
	outerColor  = color.NRGBA{R: 220, G: 0, B: 0, A: 255}
	noteColor   = color.NRGBA{R: 0, G: 0, B: 220, A: 255}
)

// fixedRand always picks the first variant and a fixed tilt.
type fixedRand struct {
	f float64
}

func (r fixedRand) IntN(int) int     { return 0 }
func (r fixedRand) Float64() float64 { return r.f }

// straight places flowers without tilt.
var straight = fixedRand{f: 0.5}

func solidImage(w, h int, c color.NRGBA) *image.NRGBA {
	im := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			im.SetNRGBA(x, y, c)
		}
	}
	return im
}

// leftHalfImage is opaque on its left half and transparent on the right.
func leftHalfImage(w, h int, c color.NRGBA) *image.NRGBA {
	im := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w/2; x++ {
			im.SetNRGBA(x, y, c)
		}
	}
	return im
}

// newTestAssets returns a catalog with every sprite ready: 40x40 flowers,
// 100x70 notes and 100x100 wrappers. Roses are only opaque on their left
// half.
func newTestAssets() *Assets {
	a := NewAssets()
	for _, k := range FlowerKinds {
		for _, s := range a.flowers[k] {
			s.Set(solidImage(40, 40, flowerColor))
		}
	}
	a.Flower(KindRose, 0).Set(leftHalfImage(40, 40, flowerColor))
	for _, c := range WrapperColors {
		inner, outer := a.Wrapper(c)
		inner.Set(solidImage(100, 100, innerColor))
		outer.Set(solidImage(100, 100, outerColor))
	}
	a.Note(false).Set(solidImage(100, 70, noteColor))
	a.Note(true).Set(solidImage(100, 70, noteColor))
	return a
}

// newTestEditor returns an editor over a fresh scene and the test catalog.
func newTestEditor() *Editor {
	assets := newTestAssets()
	return NewEditor(NewScene(assets, straight), NewHitTester(assets))
}

// countSelected returns how many items carry the selected flag.
func countSelected(items []Item) int {
	n := 0
	for _, it := range items {
		if it.Selected {
			n++
		}
	}
	return n
}
