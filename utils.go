package main

import (
	"os/exec"
	"runtime"
	"strings"

	"github.com/atotto/clipboard"
)

// canvasSide is the width in terminal columns of the square canvas. Each
// cell shows two canvas rows, so the side is also its height in half-rows.
func canvasSide(width, height int) int {
	rows := height - 1
	return max(0, min(width, rows*2))
}

// cellToCanvas maps the center of a terminal cell to canvas pixels. A cell
// covers two vertical samples, so y lands between them.
func cellToCanvas(col, row, side int) (x, y float64, inside bool) {
	if side <= 0 {
		return 0, 0, false
	}
	scale := float64(canvasWidth) / float64(side)
	x = (float64(col) + 0.5) * scale
	y = (float64(row)*2 + 1) * scale
	inside = col >= 0 && col < side && row >= 0 && row < side/2
	return x, y, inside
}

func writeClipboardText(text string) error {
	return clipboard.WriteAll(text)
}

func readClipboardText() (string, error) {
	if runtime.GOOS == "darwin" {
		if output, err := exec.Command("pbpaste", "-Prefer", "txt").Output(); err == nil {
			return string(output), nil
		}
	}
	return clipboard.ReadAll()
}

// cleanLink strips what terminals and chat clients tend to wrap around a
// pasted link.
func cleanLink(text string) string {
	text = strings.TrimSpace(text)
	text = strings.Trim(text, "<>\"'")
	return strings.Join(strings.Fields(text), "")
}
