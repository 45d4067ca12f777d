package main

// handleNudge moves the selection by one canvas pixel per key press, two
// with shift.
func (m model) handleNudge(key string, speed int) model {
	step := float64(speed)
	switch key {
	case "h", "left", "H", "shift+left":
		m.editor.Nudge(-step, 0)
	case "l", "right", "L", "shift+right":
		m.editor.Nudge(step, 0)
	case "k", "up", "K", "shift+up":
		m.editor.Nudge(0, -step)
	case "j", "down", "J", "shift+down":
		m.editor.Nudge(0, step)
	}
	return m
}

func getMoveSpeed(key string) int {
	switch key {
	case "H", "L", "K", "J", "shift+left", "shift+right", "shift+up", "shift+down":
		return 2
	default:
		return 1
	}
}

func isNudgeKey(key string) bool {
	switch key {
	case "h", "j", "k", "l", "H", "J", "K", "L",
		"left", "right", "up", "down",
		"shift+left", "shift+right", "shift+up", "shift+down":
		return true
	}
	return false
}
