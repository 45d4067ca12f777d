package main

import (
	"image"
	"image/color"
	"sync"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

var noteFont = sync.OnceValues(func() (*truetype.Font, error) {
	return truetype.Parse(goregular.TTF)
})

// newNoteFace returns a fresh face for note text. Faces cache glyphs and must
// not be shared between goroutines.
func newNoteFace() (font.Face, error) {
	f, err := noteFont()
	if err != nil {
		return nil, err
	}
	return truetype.NewFace(f, &truetype.Options{
		Size:    noteFontSize,
		DPI:     72,
		Hinting: font.HintingFull,
	}), nil
}

// Renderer paints a scene in a fixed layer order:
// inner wrapper, flowers, outer wrapper, notes, selection overlay.
type Renderer struct {
	assets *Assets
	face   font.Face
	width  int
	height int
}

// NewRenderer returns a renderer for the fixed-size canvas. A nil face falls
// back to gg's built-in bitmap face for note text.
func NewRenderer(assets *Assets, face font.Face) *Renderer {
	return &Renderer{
		assets: assets,
		face:   face,
		width:  canvasWidth,
		height: canvasHeight,
	}
}

// Render draws s into a new image. The selection overlay is drawn only when
// overlay is set. Calling Render twice on an unchanged scene yields identical
// pixels.
func (r *Renderer) Render(s *Scene, overlay bool) *image.RGBA {
	dc := gg.NewContext(r.width, r.height)
	layer := gg.NewContext(r.width, r.height)
	if r.face != nil {
		dc.SetFontFace(r.face)
	}

	items := s.Items()
	inner, outer := r.assets.Wrapper(s.Wrapper())

	rect, wrapped := wrapperRect(inner, r.width, r.height)
	if wrapped {
		r.shadowed(dc, layer, func(l *gg.Context) {
			drawImageAt(l, inner.Image(), rect)
		})
	}

	for _, it := range items {
		if !it.IsNote() {
			r.drawItem(dc, layer, it)
		}
	}

	if wrapped && outer.Ready() {
		r.shadowed(dc, layer, func(l *gg.Context) {
			drawImageAt(l, outer.Image(), rect)
		})
	}

	for _, it := range items {
		if it.IsNote() {
			r.drawItem(dc, layer, it)
		}
	}

	if overlay {
		if it, ok := s.SelectedItem(); ok {
			drawSelectionOverlay(dc, it)
		}
	}

	return dc.Image().(*image.RGBA)
}

func (r *Renderer) drawItem(dc, layer *gg.Context, it Item) {
	im := r.assets.SpriteFor(it).Image()
	if im == nil {
		return
	}
	s := it.DisplayScale()
	r.shadowed(dc, layer, func(l *gg.Context) {
		applyItemTransform(l, it)
		drawImageIn(l, im, it.Width*s, it.Height*s)
	})

	if it.IsNote() && it.Open {
		dc.Push()
		applyItemTransform(dc, it)
		drawNoteText(dc, it.Text)
		dc.Pop()
	}
}

// shadowed paints into the scratch layer, then composites the layer's drop
// shadow and the layer itself onto dc.
func (r *Renderer) shadowed(dc, layer *gg.Context, paint func(*gg.Context)) {
	layer.SetColor(color.Transparent)
	layer.Clear()
	layer.Push()
	paint(layer)
	layer.Pop()

	src := layer.Image().(*image.RGBA)
	if sh, at, ok := castShadow(src); ok {
		dc.DrawImage(sh, at.X, at.Y)
	}
	dc.DrawImage(src, 0, 0)
}

// applyItemTransform moves the origin to the item's center, rotates and
// mirrors. The renderer and the hit tester share it so both agree on every
// pixel.
func applyItemTransform(dc *gg.Context, it Item) {
	cx, cy := it.Center()
	dc.Translate(cx, cy)
	dc.Rotate(gg.Radians(it.Angle))
	if it.Mirrored {
		dc.Scale(-1, 1)
	}
}

// drawImageIn draws im scaled to w x h and centered on the current origin.
func drawImageIn(dc *gg.Context, im image.Image, w, h float64) {
	b := im.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return
	}
	dc.Push()
	dc.Scale(w/float64(b.Dx()), h/float64(b.Dy()))
	dc.DrawImageAnchored(im, 0, 0, 0.5, 0.5)
	dc.Pop()
}

func drawImageAt(dc *gg.Context, im image.Image, rect Rect) {
	dc.Push()
	dc.Translate(rect.X+rect.W/2, rect.Y+rect.H/2)
	drawImageIn(dc, im, rect.W, rect.H)
	dc.Pop()
}

// wrapperRect places the wrapper at 70% of the canvas height, centered
// horizontally and lifted off the bottom edge. It needs the inner sprite's
// natural size.
func wrapperRect(inner *Sprite, cw, ch int) (Rect, bool) {
	iw, ih := inner.Size()
	if iw == 0 || ih == 0 {
		return Rect{}, false
	}
	scale := float64(ch) * wrapperHeightRatio / float64(ih)
	w, h := float64(iw)*scale, float64(ih)*scale
	return Rect{
		X: (float64(cw) - w) / 2,
		Y: float64(ch) - h - wrapperBottomMargin,
		W: w,
		H: h,
	}, true
}

// drawNoteText writes text centered under the origin, greedily packing words
// into lines no wider than the open note allows. A word wider than a line
// gets a line of its own.
func drawNoteText(dc *gg.Context, text string) {
	dc.SetHexColor(colorNoteText)
	for i, line := range dc.WordWrap(text, noteWrapWidth) {
		dc.DrawStringAnchored(line, 0, noteTextTop+float64(i*noteLineHeight), 0.5, 0.5)
	}
}
