package main

import (
	"context"
)

// model is the terminal host around an Editor.
type model struct {
	ctx      context.Context
	cfg      *Config
	editor   *Editor
	renderer *Renderer
	assets   *Assets

	width  int
	height int

	mode          Mode
	confirmAction ConfirmAction
	help          bool
	helpScroll    int

	palette  int
	pointerX float64
	pointerY float64
	noteText string

	sprites int
	redraws int
	frame   *frameCache

	errorMessage   string
	successMessage string
}

// frameCache keeps the last painted canvas so hover events that change
// nothing do not re-render.
type frameCache struct {
	key   frameKey
	cells string
}

type frameKey struct {
	version uint64
	sprites int
	redraws int
	side    int
}

type spriteReadyMsg struct {
	name string
}

type redrawMsg struct{}
