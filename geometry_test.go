package main

import "testing"

func TestRectContainsIsInclusive(t *testing.T) {
	r := Rect{X: 10, Y: 20, W: 30, H: 40}
	tests := []struct {
		x, y float64
		want bool
	}{
		{10, 20, true},
		{40, 60, true},
		{25, 40, true},
		{9.99, 30, false},
		{25, 60.01, false},
	}
	for _, tt := range tests {
		if got := r.Contains(tt.x, tt.y); got != tt.want {
			t.Errorf("Contains(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestRectExpand(t *testing.T) {
	got := Rect{X: 10, Y: 20, W: 30, H: 40}.Expand(5)
	want := Rect{X: 5, Y: 15, W: 40, H: 50}
	if got != want {
		t.Errorf("Expand(5) = %+v, want %+v", got, want)
	}
}

func TestZoneAt(t *testing.T) {
	box := Rect{X: 100, Y: 100, W: 200, H: 100}

	tests := []struct {
		name string
		x, y float64
		want Zone
	}{
		{"rotate grip", 200, 75, ZoneRotate},
		{"rotate grip edge", 209, 75, ZoneRotate},
		{"just off the grip", 210, 75, ZoneNone},
		{"resize corner", 300, 200, ZoneResize},
		{"resize outside corner", 314, 214, ZoneResize},
		{"resize inside", 286, 186, ZoneResize},
		{"toggle", 100, 100, ZoneToggle},
		{"toggle edge", 90, 90, ZoneToggle},
		{"send backward", 100, 200, ZoneSendBackward},
		{"send forward", 140, 200, ZoneSendForward},
		{"body", 200, 150, ZoneNone},
		{"far away", 0, 0, ZoneNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := zoneAt(box, tt.x, tt.y); got != tt.want {
				t.Errorf("zoneAt(%v, %v) = %s, want %s", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestZonePriority(t *testing.T) {
	// On a tiny box the resize zone overlaps the toggle and both bottom
	// buttons.
	box := Rect{X: 100, Y: 100, W: 20, H: 20}

	tests := []struct {
		x, y float64
		want Zone
	}{
		{107, 107, ZoneResize},
		{108, 120, ZoneResize},
		{132, 120, ZoneResize},
		{95, 95, ZoneToggle},
		{95, 125, ZoneSendBackward},
		{140, 125, ZoneSendForward},
	}
	for _, tt := range tests {
		if got := zoneAt(box, tt.x, tt.y); got != tt.want {
			t.Errorf("zoneAt(%v, %v) = %s, want %s", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestDisplayBox(t *testing.T) {
	closed := Item{Kind: KindNote, X: 100, Y: 100, Width: 100, Height: 60}
	if got := closed.DisplayBox(); got != closed.Box() {
		t.Errorf("closed note display box = %+v, want %+v", got, closed.Box())
	}

	open := closed
	open.Open = true
	want := Rect{X: 75, Y: 85, W: 150, H: 90}
	if got := open.DisplayBox(); got != want {
		t.Errorf("open note display box = %+v, want %+v", got, want)
	}
	ocx, ocy := open.Center()
	ccx, ccy := closed.Center()
	if ocx != ccx || ocy != ccy {
		t.Error("opening a note should keep its center")
	}

	flower := Item{Kind: KindRose, Open: true, X: 10, Y: 10, Width: 20, Height: 20}
	if got := flower.DisplayBox(); got != flower.Box() {
		t.Errorf("flowers never scale, got %+v", got)
	}
}
