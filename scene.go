package main

import (
	"math"
	"strings"
)

// Rand is the randomness the scene needs for placement. *rand.Rand from
// math/rand/v2 satisfies it.
type Rand interface {
	IntN(n int) int
	Float64() float64
}

// Scene is the ordered item collection plus the single selection and the
// wrapper color. Index 0 is painted first. A Scene is owned by one goroutine.
type Scene struct {
	items    []Item
	selected int
	wrapper  WrapperColor
	assets   *Assets
	rng      Rand
}

func NewScene(assets *Assets, rng Rand) *Scene {
	return &Scene{
		items:    make([]Item, 0),
		selected: -1,
		wrapper:  WrapperPink,
		assets:   assets,
		rng:      rng,
	}
}

func (s *Scene) Len() int {
	return len(s.items)
}

// Items returns a copy of the items in paint order.
func (s *Scene) Items() []Item {
	out := make([]Item, len(s.items))
	copy(out, s.items)
	return out
}

func (s *Scene) Item(i int) (Item, bool) {
	if i < 0 || i >= len(s.items) {
		return Item{}, false
	}
	return s.items[i], true
}

// Selected returns the selected index, if any.
func (s *Scene) Selected() (int, bool) {
	return s.selected, s.selected >= 0
}

func (s *Scene) SelectedItem() (Item, bool) {
	return s.Item(s.selected)
}

func (s *Scene) Wrapper() WrapperColor {
	return s.wrapper
}

func (s *Scene) deselectAll() {
	for i := range s.items {
		s.items[i].Selected = false
	}
	s.selected = -1
}

// push appends it on top of the z-order as the only selected item.
func (s *Scene) push(it Item) {
	s.deselectAll()
	it.Selected = true
	s.items = append(s.items, it)
	s.selected = len(s.items) - 1
}

// AddFlower places a random variant of kind centered at (x, y) with a random
// tilt. Unknown kinds are ignored.
func (s *Scene) AddFlower(kind Kind, x, y float64) bool {
	n := s.assets.Variants(kind)
	if n == 0 {
		return false
	}
	variant := s.rng.IntN(n)

	w, h := s.assets.Flower(kind, variant).Size()
	if w == 0 {
		w = defaultSpriteSize
	}
	if h == 0 {
		h = defaultSpriteSize
	}

	s.push(Item{
		Kind:    kind,
		Variant: variant,
		X:       x - float64(w)/2,
		Y:       y - float64(h)/2,
		Width:   float64(w),
		Height:  float64(h),
		Angle:   s.rng.Float64()*2*maxPlacementTilt - maxPlacementTilt,
	})
	return true
}

// AddNote places a closed note in the middle of the canvas. Blank text is
// ignored.
func (s *Scene) AddNote(text string) bool {
	if strings.TrimSpace(text) == "" {
		return false
	}

	ratio := noteAspectDefault
	if w, h := s.assets.Note(false).Size(); w > 0 && h > 0 {
		ratio = float64(h) / float64(w)
	}
	height := noteWidth * ratio

	s.push(Item{
		Kind:   KindNote,
		Text:   text,
		X:      (canvasWidth - noteWidth) / 2,
		Y:      (canvasHeight - height) / 2,
		Width:  noteWidth,
		Height: height,
	})
	return true
}

func (s *Scene) DeleteSelected() bool {
	if s.selected < 0 {
		return false
	}
	s.items = append(s.items[:s.selected], s.items[s.selected+1:]...)
	s.selected = -1
	return true
}

func (s *Scene) Clear() {
	s.items = s.items[:0]
	s.selected = -1
}

func (s *Scene) ClearSelection() {
	s.deselectAll()
}

// BringToSelectionTop moves item i to the top of the z-order and makes it the
// selection.
func (s *Scene) BringToSelectionTop(i int) bool {
	if i < 0 || i >= len(s.items) {
		return false
	}
	it := s.items[i]
	s.items = append(s.items[:i], s.items[i+1:]...)
	s.push(it)
	return true
}

// SwapWithPrevious sends the selection one step down the z-order.
func (s *Scene) SwapWithPrevious() bool {
	if s.selected <= 0 {
		return false
	}
	i := s.selected
	s.items[i], s.items[i-1] = s.items[i-1], s.items[i]
	s.selected = i - 1
	return true
}

// SwapWithNext brings the selection one step up the z-order.
func (s *Scene) SwapWithNext() bool {
	if s.selected < 0 || s.selected >= len(s.items)-1 {
		return false
	}
	i := s.selected
	s.items[i], s.items[i+1] = s.items[i+1], s.items[i]
	s.selected = i + 1
	return true
}

func (s *Scene) SetWrapper(c WrapperColor) bool {
	if !validWrapper(c) {
		return false
	}
	s.wrapper = c
	return true
}

func (s *Scene) selectedItem() *Item {
	if s.selected < 0 {
		return nil
	}
	return &s.items[s.selected]
}

func (s *Scene) MoveSelected(x, y float64) bool {
	it := s.selectedItem()
	if it == nil {
		return false
	}
	it.X, it.Y = x, y
	return true
}

func (s *Scene) NudgeSelected(dx, dy float64) bool {
	it := s.selectedItem()
	if it == nil {
		return false
	}
	it.X += dx
	it.Y += dy
	return true
}

// ResizeSelected sets the size, never below minItemSize on either axis. The
// top-left corner stays put.
func (s *Scene) ResizeSelected(w, h float64) bool {
	it := s.selectedItem()
	if it == nil {
		return false
	}
	it.Width = math.Max(minItemSize, w)
	it.Height = math.Max(minItemSize, h)
	return true
}

func (s *Scene) RotateSelected(deg float64) bool {
	it := s.selectedItem()
	if it == nil {
		return false
	}
	it.Angle = deg
	return true
}

// ToggleSelected opens or closes a note, or mirrors a flower.
func (s *Scene) ToggleSelected() bool {
	it := s.selectedItem()
	if it == nil {
		return false
	}
	toggleItem(it)
	return true
}

// ToggleNote flips the open state of the note at index i.
func (s *Scene) ToggleNote(i int) bool {
	if i < 0 || i >= len(s.items) || !s.items[i].IsNote() {
		return false
	}
	toggleItem(&s.items[i])
	return true
}

func toggleItem(it *Item) {
	if it.IsNote() {
		it.Open = !it.Open
	} else {
		it.Mirrored = !it.Mirrored
	}
}

// replace swaps in a decoded item list. The caller has checked that at most
// one item is flagged selected.
func (s *Scene) replace(items []Item, wrapper WrapperColor) {
	s.items = append(make([]Item, 0, len(items)), items...)
	s.wrapper = wrapper
	s.selected = -1
	for i := range s.items {
		if s.items[i].Selected {
			s.selected = i
		}
	}
}
