package main

import "github.com/fogleman/gg"

type glyph int

const (
	glyphMirror glyph = iota
	glyphEnvelope
	glyphClose
	glyphDown
	glyphUp
)

// drawSelectionOverlay draws the dashed frame and handles around the
// displayed box of the selected item.
func drawSelectionOverlay(dc *gg.Context, it Item) {
	box := it.DisplayBox()

	dc.Push()
	defer dc.Pop()

	dc.SetHexColor(colorSelection)
	dc.SetLineWidth(2)
	dc.SetDash(5, 3)
	dc.DrawRectangle(box.X, box.Y, box.W, box.H)
	dc.Stroke()
	dc.SetDash()

	toggle := glyphMirror
	if it.IsNote() {
		toggle = glyphEnvelope
		if it.Open {
			toggle = glyphClose
		}
	}
	drawButton(dc, toggleButton(box), toggle)

	dc.SetHexColor(colorSelection)
	dc.DrawRectangle(box.X+box.W-10, box.Y+box.H-10, 10, 10)
	dc.Fill()

	cx, hy := rotateHandle(box)
	dc.DrawLine(cx, box.Y, cx, hy)
	dc.Stroke()
	dc.DrawCircle(cx, hy, 6)
	dc.SetRGB(1, 1, 1)
	dc.FillPreserve()
	dc.SetHexColor(colorSelection)
	dc.Stroke()

	drawButton(dc, backwardButton(box), glyphDown)
	drawButton(dc, forwardButton(box), glyphUp)
}

func drawButton(dc *gg.Context, r Rect, g glyph) {
	dc.SetHexColor(colorSelection)
	dc.DrawRectangle(r.X, r.Y, r.W, r.H)
	dc.Fill()

	cx, cy := r.X+r.W/2, r.Y+r.H/2
	dc.SetRGB(1, 1, 1)
	dc.SetLineWidth(1.5)
	switch g {
	case glyphMirror:
		dc.DrawLine(cx-6, cy-3, cx+6, cy-3)
		dc.DrawLine(cx+6, cy-3, cx+3, cy-6)
		dc.DrawLine(cx+6, cy+3, cx-6, cy+3)
		dc.DrawLine(cx-6, cy+3, cx-3, cy+6)
		dc.Stroke()
	case glyphEnvelope:
		dc.DrawRectangle(cx-6, cy-4, 12, 8)
		dc.MoveTo(cx-6, cy-4)
		dc.LineTo(cx, cy+1)
		dc.LineTo(cx+6, cy-4)
		dc.Stroke()
	case glyphClose:
		dc.DrawLine(cx-5, cy-5, cx+5, cy+5)
		dc.DrawLine(cx+5, cy-5, cx-5, cy+5)
		dc.Stroke()
	case glyphDown:
		dc.MoveTo(cx-5, cy-3)
		dc.LineTo(cx+5, cy-3)
		dc.LineTo(cx, cy+4)
		dc.ClosePath()
		dc.Fill()
	case glyphUp:
		dc.MoveTo(cx-5, cy+3)
		dc.LineTo(cx+5, cy+3)
		dc.LineTo(cx, cy-4)
		dc.ClosePath()
		dc.Fill()
	}
	dc.SetLineWidth(2)
}
