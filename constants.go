package main

// State is the pointer interaction state of the editor.
type State int

const (
	StateIdle State = iota
	StateDragging
	StateResizing
	StateRotating
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "IDLE"
	case StateDragging:
		return "DRAG"
	case StateResizing:
		return "RESIZE"
	case StateRotating:
		return "ROTATE"
	default:
		return "UNKNOWN"
	}
}

// Cursor is the pointer affordance shown for the current hover position.
type Cursor int

const (
	CursorDefault Cursor = iota
	CursorGrab
	CursorResize
	CursorMove
	CursorPointer
)

func (c Cursor) String() string {
	switch c {
	case CursorGrab:
		return "grab"
	case CursorResize:
		return "nwse-resize"
	case CursorMove:
		return "move"
	case CursorPointer:
		return "pointer"
	default:
		return "default"
	}
}

// Mode is the terminal host's input mode.
type Mode int

const (
	ModeNormal Mode = iota
	ModeNoteInput
	ModeConfirm
)

type ConfirmAction int

const (
	ConfirmClear ConfirmAction = iota
	ConfirmQuit
)

const (
	canvasWidth  = 600
	canvasHeight = 600

	minItemSize = 20

	defaultSpriteSize = 32
	noteWidth         = 100
	noteAspectDefault = 0.7
	openNoteScale     = 1.5
	maxPlacementTilt  = 20

	btnSize           = 20
	handleOffset      = 25
	rotateTriggerDist = 10
	resizeTriggerDist = 15
	viewHoverMargin   = 20

	wrapperHeightRatio  = 0.70
	wrapperBottomMargin = 80

	shadowBlur    = 15
	shadowOffsetX = 5
	shadowOffsetY = 5
	shadowAlpha   = 0.3

	noteFontSize   = 14
	noteLineHeight = 18
	noteTextTop    = -10
	noteWrapWidth  = noteWidth * openNoteScale

	colorSelection = "#FE6A86"
	colorNoteText  = "#5c4033"

	redrawDelayMillis = 500
)
