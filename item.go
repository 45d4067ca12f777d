package main

// Kind tags what an item is: one of the flower varieties or a note.
type Kind string

const (
	KindAllium       Kind = "allium"
	KindAlliumWhite  Kind = "allium-white"
	KindCarnation    Kind = "carnation"
	KindCarnationRed Kind = "carnation-red"
	KindDaffodil     Kind = "daffodil"
	KindDaffodilPink Kind = "daffodil-pink"
	KindDaisy        Kind = "daisy"
	KindDaisyPink    Kind = "daisy-pink"
	KindMimosa       Kind = "mimosa"
	KindMimosaRed    Kind = "mimosa-red"
	KindRose         Kind = "rose"
	KindRoseWhite    Kind = "rose-white"
	KindTulip        Kind = "tulip"
	KindTulipYellow  Kind = "tulip-yellow"

	KindNote Kind = "note"
)

// FlowerKinds lists the flower varieties in palette order.
var FlowerKinds = []Kind{
	KindAllium, KindAlliumWhite,
	KindCarnation, KindCarnationRed,
	KindDaffodil, KindDaffodilPink,
	KindDaisy, KindDaisyPink,
	KindMimosa, KindMimosaRed,
	KindRose, KindRoseWhite,
	KindTulip, KindTulipYellow,
}

// WrapperColor selects the pair of wrapping paper sprites behind and in
// front of the flowers.
type WrapperColor string

const (
	WrapperPink   WrapperColor = "pink"
	WrapperPurple WrapperColor = "purple"
	WrapperBlue   WrapperColor = "blue"
	WrapperGreen  WrapperColor = "green"
)

var WrapperColors = []WrapperColor{WrapperPink, WrapperPurple, WrapperBlue, WrapperGreen}

func validWrapper(c WrapperColor) bool {
	for _, w := range WrapperColors {
		if w == c {
			return true
		}
	}
	return false
}

// Item is a placed sprite. X and Y are the top-left corner of the unrotated
// box; Angle is in degrees, clockwise.
type Item struct {
	Kind     Kind    `json:"type"`
	Variant  int     `json:"variant"`
	Text     string  `json:"text"`
	Open     bool    `json:"isOpen"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Width    float64 `json:"width"`
	Height   float64 `json:"height"`
	Angle    float64 `json:"angle"`
	Mirrored bool    `json:"isMirrored"`
	Selected bool    `json:"isSelected"`
}

func (it Item) IsNote() bool {
	return it.Kind == KindNote
}

// DisplayScale is the temporary scale applied when drawing: open notes are
// shown at 1.5x their stored size.
func (it Item) DisplayScale() float64 {
	if it.IsNote() && it.Open {
		return openNoteScale
	}
	return 1
}

// Center returns the center of the stored box. Display scaling keeps it fixed.
func (it Item) Center() (float64, float64) {
	return it.X + it.Width/2, it.Y + it.Height/2
}

// Box returns the stored, unscaled bounding box.
func (it Item) Box() Rect {
	return Rect{X: it.X, Y: it.Y, W: it.Width, H: it.Height}
}

// DisplayBox returns the bounding box after display scaling.
func (it Item) DisplayBox() Rect {
	s := it.DisplayScale()
	return Rect{
		X: it.X - it.Width*(s-1)/2,
		Y: it.Y - it.Height*(s-1)/2,
		W: it.Width * s,
		H: it.Height * s,
	}
}
