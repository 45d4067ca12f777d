package main

import (
	"context"
	"image"
	"path/filepath"
	"sync/atomic"

	"github.com/disintegration/imaging"
	"golang.org/x/sync/errgroup"
)

const loadConcurrency = 4

type loadedImage struct {
	im image.Image
}

// Sprite is a named image that becomes ready asynchronously. Until it is
// ready it has no size and draws nothing.
type Sprite struct {
	name string
	img  atomic.Pointer[loadedImage]
}

func newSprite(name string) *Sprite {
	return &Sprite{name: name}
}

func (s *Sprite) Name() string {
	return s.name
}

// Set publishes the decoded image and marks the sprite ready.
func (s *Sprite) Set(im image.Image) {
	s.img.Store(&loadedImage{im: im})
}

// Image returns the decoded image, or nil while the sprite is loading.
func (s *Sprite) Image() image.Image {
	if s == nil {
		return nil
	}
	if l := s.img.Load(); l != nil {
		return l.im
	}
	return nil
}

func (s *Sprite) Ready() bool {
	return s.Image() != nil
}

// Size returns the natural pixel size, or 0x0 while the sprite is loading.
func (s *Sprite) Size() (int, int) {
	im := s.Image()
	if im == nil {
		return 0, 0
	}
	b := im.Bounds()
	return b.Dx(), b.Dy()
}

type wrapperSprites struct {
	inner *Sprite
	outer *Sprite
}

// Assets is the sprite catalog: flower variants per kind, the wrapper pairs
// per color and the two note cards.
type Assets struct {
	flowers    map[Kind][]*Sprite
	wrappers   map[WrapperColor]wrapperSprites
	noteOpen   *Sprite
	noteClosed *Sprite
	ready      chan string
}

// NewAssets builds the default catalog with every sprite still loading.
func NewAssets() *Assets {
	a := &Assets{
		flowers:    make(map[Kind][]*Sprite),
		wrappers:   make(map[WrapperColor]wrapperSprites),
		noteOpen:   newSprite("note-card-open.png"),
		noteClosed: newSprite("note-card.png"),
	}
	for _, k := range FlowerKinds {
		a.flowers[k] = []*Sprite{newSprite(string(k) + ".png")}
	}
	for _, c := range WrapperColors {
		a.wrappers[c] = wrapperSprites{
			inner: newSprite("wrapping-paper-inner-" + string(c) + ".png"),
			outer: newSprite("wrapping-paper-outer-" + string(c) + ".png"),
		}
	}
	a.ready = make(chan string, len(a.all()))
	return a
}

// Variants returns how many sprite alternatives a flower kind has; zero for
// unknown kinds and notes.
func (a *Assets) Variants(kind Kind) int {
	return len(a.flowers[kind])
}

// Flower returns the sprite for a flower variant, or nil if there is none.
func (a *Assets) Flower(kind Kind, variant int) *Sprite {
	variants := a.flowers[kind]
	if variant < 0 || variant >= len(variants) {
		return nil
	}
	return variants[variant]
}

func (a *Assets) Wrapper(c WrapperColor) (inner, outer *Sprite) {
	w := a.wrappers[c]
	return w.inner, w.outer
}

func (a *Assets) Note(open bool) *Sprite {
	if open {
		return a.noteOpen
	}
	return a.noteClosed
}

// SpriteFor returns the sprite an item is drawn with in its current state.
func (a *Assets) SpriteFor(it Item) *Sprite {
	if it.IsNote() {
		return a.Note(it.Open)
	}
	return a.Flower(it.Kind, it.Variant)
}

func (a *Assets) all() []*Sprite {
	var out []*Sprite
	for _, k := range FlowerKinds {
		out = append(out, a.flowers[k]...)
	}
	for _, c := range WrapperColors {
		w := a.wrappers[c]
		out = append(out, w.inner, w.outer)
	}
	return append(out, a.noteOpen, a.noteClosed)
}

// Ready delivers the name of each sprite as it finishes loading.
func (a *Assets) Ready() <-chan string {
	return a.ready
}

func (a *Assets) notify(name string) {
	select {
	case a.ready <- name:
	default:
	}
}

// Load decodes every sprite from dir in the background and returns a channel
// closed once all attempts finished. Missing or broken files are logged and
// leave their sprite not ready.
func (a *Assets) Load(ctx context.Context, dir string) <-chan struct{} {
	logger := loggerFromContext(ctx)
	done := make(chan struct{})

	var g errgroup.Group
	g.SetLimit(loadConcurrency)

	go func() {
		defer close(done)
		var loaded atomic.Int32
		for _, s := range a.all() {
			g.Go(func() error {
				if ctx.Err() != nil {
					return nil
				}
				im, err := imaging.Open(filepath.Join(dir, s.name))
				if err != nil {
					logger.Warn("sprite unavailable", "err", wrapError(ErrCodeAssetLoad, err, "load %s", s.name))
					return nil
				}
				s.Set(im)
				loaded.Add(1)
				a.notify(s.name)
				return nil
			})
		}
		_ = g.Wait()
		logger.Debug("assets loaded", "dir", dir, "ready", loaded.Load(), "total", len(a.all()))
	}()
	return done
}
