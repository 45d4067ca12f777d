package main

import (
	"bytes"
	"image"
	"image/color"
	"testing"
)

func pixel(im *image.RGBA, x, y int) color.RGBA {
	return im.RGBAAt(x, y)
}

func rgba(c color.NRGBA) color.RGBA {
	return color.RGBAModel.Convert(c).(color.RGBA)
}

func TestRenderEmptyWithoutSprites(t *testing.T) {
	assets := NewAssets()
	im := NewRenderer(assets, nil).Render(NewScene(assets, straight), true)

	if b := im.Bounds(); b.Dx() != canvasWidth || b.Dy() != canvasHeight {
		t.Fatalf("bounds = %v, want %dx%d", b, canvasWidth, canvasHeight)
	}
	for i, v := range im.Pix {
		if v != 0 {
			t.Fatalf("byte %d = %d, want a fully transparent canvas", i, v)
		}
	}
}

func TestRenderLayerOrder(t *testing.T) {
	assets := newTestAssets()
	r := NewRenderer(assets, nil)

	tests := []struct {
		name  string
		build func(s *Scene)
		x, y  int
		want  color.NRGBA
	}{
		{
			name:  "outer wrapper over the inner one",
			build: func(s *Scene) {},
			x:     300, y: 300,
			want: outerColor,
		},
		{
			name:  "flower tucked behind the outer wrapper",
			build: func(s *Scene) { s.AddFlower(KindDaisy, 300, 300) },
			x:     300, y: 300,
			want: outerColor,
		},
		{
			name:  "flower outside the wrapper",
			build: func(s *Scene) { s.AddFlower(KindDaisy, 40, 40) },
			x:     40, y: 40,
			want: flowerColor,
		},
		{
			name:  "note above the outer wrapper",
			build: func(s *Scene) { s.AddNote("hi") },
			x:     300, y: 300,
			want: noteColor,
		},
		{
			name: "note above a later flower",
			build: func(s *Scene) {
				s.AddNote("hi")
				s.AddFlower(KindDaisy, 40, 300)
				s.AddFlower(KindDaisy, 300, 300)
			},
			x: 300, y: 300,
			want: noteColor,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewScene(assets, straight)
			tt.build(s)
			im := r.Render(s, false)
			if got, want := pixel(im, tt.x, tt.y), rgba(tt.want); got != want {
				t.Errorf("pixel (%d,%d) = %v, want %v", tt.x, tt.y, got, want)
			}
		})
	}
}

func TestRenderSkipsWrapperUntilInnerLoads(t *testing.T) {
	assets := NewAssets()
	_, outer := assets.Wrapper(WrapperPink)
	outer.Set(solidImage(100, 100, outerColor))

	im := NewRenderer(assets, nil).Render(NewScene(assets, straight), false)
	if got := pixel(im, 300, 300); got.A != 0 {
		t.Errorf("pixel = %v, want transparent without the inner wrapper", got)
	}
}

func TestRenderFollowsWrapperColor(t *testing.T) {
	assets := newTestAssets()
	inner, outer := assets.Wrapper(WrapperBlue)
	blue := color.NRGBA{R: 10, G: 20, B: 250, A: 255}
	inner.Set(solidImage(100, 100, blue))
	outer.Set(solidImage(100, 100, blue))

	s := NewScene(assets, straight)
	s.SetWrapper(WrapperBlue)
	im := NewRenderer(assets, nil).Render(s, false)
	if got := pixel(im, 300, 300); got != rgba(blue) {
		t.Errorf("pixel = %v, want %v", got, rgba(blue))
	}
}

func TestRenderWrapperPlacement(t *testing.T) {
	assets := newTestAssets()
	inner, _ := assets.Wrapper(WrapperPink)

	rect, ok := wrapperRect(inner, canvasWidth, canvasHeight)
	if !ok {
		t.Fatal("wrapperRect() not ok with a loaded sprite")
	}
	want := Rect{X: 90, Y: 100, W: 420, H: 420}
	if rect != want {
		t.Errorf("wrapperRect() = %+v, want %+v", rect, want)
	}

	im := NewRenderer(assets, nil).Render(NewScene(assets, straight), false)
	if got := pixel(im, 300, 590); got.A != 0 {
		t.Errorf("below the wrapper = %v, want transparent", got)
	}
	if got := pixel(im, 95, 300); got != rgba(outerColor) {
		t.Errorf("inside the wrapper's left edge = %v, want %v", got, rgba(outerColor))
	}
}

func TestRenderIsIdempotent(t *testing.T) {
	assets := newTestAssets()
	s := NewScene(assets, fixedRand{f: 0.8})
	s.AddFlower(KindRose, 120, 140)
	s.AddFlower(KindTulip, 500, 80)
	s.AddNote("a note with a few words in it")
	s.ToggleSelected()
	r := NewRenderer(assets, nil)

	first := r.Render(s, true)
	second := r.Render(s, true)
	if !bytes.Equal(first.Pix, second.Pix) {
		t.Error("two renders of the same scene differ")
	}
}

func TestRenderOverlay(t *testing.T) {
	assets := newTestAssets()
	r := NewRenderer(assets, nil)
	s := NewScene(assets, straight)
	s.AddFlower(KindDaisy, 40, 560)

	with := r.Render(s, true)
	without := r.Render(s, false)
	if bytes.Equal(with.Pix, without.Pix) {
		t.Fatal("overlay did not change the picture")
	}
	// The resize glyph fills the bottom-right corner of the box.
	if got, want := pixel(with, 55, 575), rgba(selectionNRGBA()); got != want {
		t.Errorf("resize glyph pixel = %v, want %v", got, want)
	}

	s.ClearSelection()
	if !bytes.Equal(r.Render(s, true).Pix, r.Render(s, false).Pix) {
		t.Error("overlay drawn without a selection")
	}
}

// selectionNRGBA is colorSelection, #FE6A86.
func selectionNRGBA() color.NRGBA {
	return color.NRGBA{R: 0xFE, G: 0x6A, B: 0x86, A: 0xFF}
}

func TestRenderOpenNoteText(t *testing.T) {
	assets := newTestAssets()
	r := NewRenderer(assets, nil)

	render := func(text string) *image.RGBA {
		s := NewScene(assets, straight)
		s.AddNote(text)
		s.ToggleSelected()
		return r.Render(s, false)
	}
	if bytes.Equal(render("x").Pix, render("hello there, friend").Pix) {
		t.Error("open note text is not drawn")
	}

	closed := func(text string) *image.RGBA {
		s := NewScene(assets, straight)
		s.AddNote(text)
		return r.Render(s, false)
	}
	if !bytes.Equal(closed("x").Pix, closed("hello there, friend").Pix) {
		t.Error("closed note should not show its text")
	}
}

func TestNoteFace(t *testing.T) {
	face, err := newNoteFace()
	if err != nil {
		t.Fatalf("newNoteFace() error = %v", err)
	}
	if m := face.Metrics(); m.Height <= 0 {
		t.Errorf("face height = %v, want > 0", m.Height)
	}

	assets := newTestAssets()
	s := NewScene(assets, straight)
	s.AddNote("long words like extraordinarily never split")
	s.ToggleSelected()
	im := NewRenderer(assets, face).Render(s, false)
	if im == nil {
		t.Fatal("Render() returned nil")
	}
}
