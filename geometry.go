package main

import "math"

// Rect is an axis-aligned rectangle in canvas coordinates.
type Rect struct {
	X, Y, W, H float64
}

// Contains reports whether (x, y) lies inside or on the edge of r.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.W &&
		y >= r.Y && y <= r.Y+r.H
}

// Expand grows r by m on every side.
func (r Rect) Expand(m float64) Rect {
	return Rect{X: r.X - m, Y: r.Y - m, W: r.W + 2*m, H: r.H + 2*m}
}

// Zone identifies one of the selection overlay's handles and buttons.
type Zone int

const (
	ZoneNone Zone = iota
	ZoneRotate
	ZoneResize
	ZoneToggle
	ZoneSendBackward
	ZoneSendForward
)

func (z Zone) String() string {
	switch z {
	case ZoneRotate:
		return "rotate"
	case ZoneResize:
		return "resize"
	case ZoneToggle:
		return "toggle"
	case ZoneSendBackward:
		return "send-backward"
	case ZoneSendForward:
		return "send-forward"
	default:
		return "none"
	}
}

// rotateHandle returns the center of the rotate grip for a displayed box.
func rotateHandle(box Rect) (float64, float64) {
	return box.X + box.W/2, box.Y - handleOffset
}

// toggleButton is the mirror/open button centered on the top-left corner.
func toggleButton(box Rect) Rect {
	return Rect{X: box.X - btnSize/2, Y: box.Y - btnSize/2, W: btnSize, H: btnSize}
}

// backwardButton is the send-backward button centered on the bottom-left corner.
func backwardButton(box Rect) Rect {
	return Rect{X: box.X - btnSize/2, Y: box.Y + box.H - btnSize/2, W: btnSize, H: btnSize}
}

// forwardButton sits to the right of the send-backward button.
func forwardButton(box Rect) Rect {
	return Rect{X: box.X + btnSize*1.5, Y: box.Y + box.H - btnSize/2, W: btnSize, H: btnSize}
}

// resizeZone is the square around the bottom-right corner that grabs the
// resize handle.
func resizeZone(box Rect) Rect {
	return Rect{
		X: box.X + box.W - resizeTriggerDist,
		Y: box.Y + box.H - resizeTriggerDist,
		W: 2 * resizeTriggerDist,
		H: 2 * resizeTriggerDist,
	}
}

// zoneAt returns the overlay zone under (x, y) for the given displayed box.
// Zones are tested in priority order: rotate, resize, toggle, backward,
// forward.
func zoneAt(box Rect, x, y float64) Zone {
	hx, hy := rotateHandle(box)
	if math.Hypot(x-hx, y-hy) < rotateTriggerDist {
		return ZoneRotate
	}
	if resizeZone(box).Contains(x, y) {
		return ZoneResize
	}
	if toggleButton(box).Contains(x, y) {
		return ZoneToggle
	}
	if backwardButton(box).Contains(x, y) {
		return ZoneSendBackward
	}
	if forwardButton(box).Contains(x, y) {
		return ZoneSendForward
	}
	return ZoneNone
}

func degrees(radians float64) float64 {
	return radians * 180 / math.Pi
}
