package main

import (
	"context"
	"image"
	"math"
)

// Editor turns pointer and keyboard input into scene mutations. It owns the
// scene; all calls must come from one goroutine.
//
// In view-only mode, entered once when a snapshot is imported, the only
// reachable mutation is opening and closing notes by tapping them.
type Editor struct {
	scene    *Scene
	hits     *HitTester
	state    State
	viewOnly bool
	grabX    float64
	grabY    float64
	cursor   Cursor
	version  uint64
}

func NewEditor(scene *Scene, hits *HitTester) *Editor {
	return &Editor{scene: scene, hits: hits}
}

func (e *Editor) Scene() *Scene {
	return e.scene
}

func (e *Editor) State() State {
	return e.state
}

func (e *Editor) ViewOnly() bool {
	return e.viewOnly
}

// Cursor is the affordance for the last pointer position. It is feedback
// only and never affects state.
func (e *Editor) Cursor() Cursor {
	return e.cursor
}

// Version increases whenever the picture may have changed.
func (e *Editor) Version() uint64 {
	return e.version
}

func (e *Editor) changed() {
	e.version++
}

// Render draws the current scene, with the selection overlay unless the
// editor is view-only.
func (e *Editor) Render(r *Renderer) *image.RGBA {
	return r.Render(e.scene, !e.viewOnly)
}

func (e *Editor) PointerDown(x, y float64) {
	if e.viewOnly {
		e.tapNote(x, y)
		return
	}
	if it, ok := e.scene.SelectedItem(); ok && e.grabZone(it, x, y) {
		return
	}
	e.selectAt(x, y)
}

// grabZone handles a press on one of the selection's handles or buttons and
// reports whether the press was consumed.
func (e *Editor) grabZone(it Item, x, y float64) bool {
	switch zoneAt(it.DisplayBox(), x, y) {
	case ZoneRotate:
		e.state = StateRotating
	case ZoneResize:
		e.state = StateResizing
	case ZoneToggle:
		e.scene.ToggleSelected()
		e.changed()
	case ZoneSendBackward:
		if e.scene.SwapWithPrevious() {
			e.changed()
		}
	case ZoneSendForward:
		// The send-forward button is drawn and swallows the press, but has no
		// action attached.
	default:
		return false
	}
	return true
}

// selectAt raises and selects the topmost item visibly under the pointer and
// starts dragging it. A miss clears the selection.
func (e *Editor) selectAt(x, y float64) {
	i := e.hits.Pick(e.scene.Items(), x, y, nil)
	if i < 0 {
		if _, had := e.scene.Selected(); had {
			e.scene.ClearSelection()
			e.changed()
		}
		return
	}
	e.scene.BringToSelectionTop(i)
	it, _ := e.scene.SelectedItem()
	e.grabX, e.grabY = x-it.X, y-it.Y
	e.state = StateDragging
	e.changed()
}

func (e *Editor) tapNote(x, y float64) {
	i := e.hits.Pick(e.scene.Items(), x, y, Item.IsNote)
	if i < 0 {
		return
	}
	e.scene.ToggleNote(i)
	e.changed()
}

func (e *Editor) PointerMove(x, y float64) {
	if e.viewOnly {
		e.cursor = e.viewCursor(x, y)
		return
	}
	e.cursor = e.editCursor(x, y)

	it, ok := e.scene.SelectedItem()
	if !ok {
		return
	}
	switch e.state {
	case StateRotating:
		cx, cy := it.Center()
		e.scene.RotateSelected(degrees(math.Atan2(y-cy, x-cx)) + 90)
	case StateResizing:
		e.scene.ResizeSelected(x-it.X, y-it.Y)
	case StateDragging:
		e.scene.MoveSelected(x-e.grabX, y-e.grabY)
	default:
		return
	}
	e.changed()
}

// PointerUp ends any drag, resize or rotation. Changes were applied live so
// there is nothing to commit.
func (e *Editor) PointerUp() {
	e.state = StateIdle
	e.grabX, e.grabY = 0, 0
}

func (e *Editor) editCursor(x, y float64) Cursor {
	it, ok := e.scene.SelectedItem()
	if !ok {
		return CursorDefault
	}
	cx, top := it.X+it.Width/2, it.Y-handleOffset
	switch {
	case math.Hypot(x-cx, y-top) < rotateTriggerDist:
		return CursorGrab
	case x >= it.X+it.Width-resizeTriggerDist && y >= it.Y+it.Height-resizeTriggerDist:
		return CursorResize
	case it.Box().Contains(x, y):
		return CursorMove
	default:
		return CursorDefault
	}
}

func (e *Editor) viewCursor(x, y float64) Cursor {
	for _, it := range e.scene.Items() {
		if it.IsNote() && it.Box().Expand(viewHoverMargin).Contains(x, y) {
			return CursorPointer
		}
	}
	return CursorDefault
}

// Delete removes the selection, as the delete and backspace keys do.
func (e *Editor) Delete() {
	if e.viewOnly {
		return
	}
	if e.scene.DeleteSelected() {
		e.changed()
	}
}

// Deselect drops the selection without touching the items.
func (e *Editor) Deselect() {
	if e.viewOnly {
		return
	}
	if _, had := e.scene.Selected(); had {
		e.scene.ClearSelection()
		e.state = StateIdle
		e.changed()
	}
}

func (e *Editor) AddFlower(kind Kind, x, y float64) bool {
	if e.viewOnly || !e.scene.AddFlower(kind, x, y) {
		return false
	}
	e.changed()
	return true
}

func (e *Editor) AddNote(text string) bool {
	if e.viewOnly || !e.scene.AddNote(text) {
		return false
	}
	e.changed()
	return true
}

func (e *Editor) Clear() {
	if e.viewOnly {
		return
	}
	e.scene.Clear()
	e.state = StateIdle
	e.changed()
}

func (e *Editor) SetWrapper(c WrapperColor) bool {
	if e.viewOnly || !e.scene.SetWrapper(c) {
		return false
	}
	e.changed()
	return true
}

// Nudge moves the selection by a small keyboard step.
func (e *Editor) Nudge(dx, dy float64) bool {
	if e.viewOnly || !e.scene.NudgeSelected(dx, dy) {
		return false
	}
	e.changed()
	return true
}

// Export returns the share link for the current scene.
func (e *Editor) Export(base string, maxLen int) (string, error) {
	return ExportSnapshot(e.scene, base, maxLen)
}

// Import loads a shared scene and switches to view-only mode for good. A bad
// link is logged and leaves the scene as it was.
func (e *Editor) Import(ctx context.Context, link string) error {
	if err := ImportSnapshot(e.scene, link); err != nil {
		loggerFromContext(ctx).Error("link corrupted", "err", err)
		return err
	}
	e.viewOnly = true
	e.state = StateIdle
	e.changed()
	loggerFromContext(ctx).Debug("snapshot loaded", "items", e.scene.Len(), "wrapper", e.scene.Wrapper())
	return nil
}
