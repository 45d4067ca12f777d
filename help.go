package main

import "strings"

var helpLines = []string{
	"Bouquet Help",
	"============",
	"",
	"Mouse:",
	"------",
	"  Click            Select the flower or note under the pointer and raise it",
	"  Drag             Move the selection",
	"  Drag ○ handle    Rotate the selection",
	"  Drag ■ corner    Resize the selection from its top-left corner",
	"  Top-left button  Mirror a flower, open or close a note",
	"  ↓ button         Send the selection one step backward",
	"  Right click      Drop the current flower at the pointer",
	"",
	"Flowers and notes:",
	"------------------",
	"  Tab / Shift+Tab  Cycle the flower to drop",
	"  f                Drop the current flower at the pointer",
	"  n                Write a note card",
	"  w                Cycle the wrapping paper color",
	"  Delete/Backspace Remove the selection",
	"  Esc              Clear the selection",
	"  h/←/j/↓/k/↑/l/→  Nudge the selection",
	"  Shift+h/j/k/l    Nudge 2x further",
	"  c                Clear the whole bouquet",
	"",
	"Sharing:",
	"--------",
	"  s                Copy a share link to the clipboard",
	"  o                Open a share link from the clipboard (view only)",
	"  S                Export as PNG image",
	"",
	"Viewing a shared bouquet:",
	"-------------------------",
	"  Click a note     Open or close it",
	"",
	"General:",
	"  ?                Toggle this help screen",
	"  q/Ctrl+C         Quit",
	"",
	"============ Made with love <3 ============",
}

func (m model) scrollHelp(delta int) model {
	visibleHeight := max(1, m.height-1)
	maxScroll := max(0, len(helpLines)-visibleHeight)
	m.helpScroll = min(max(0, m.helpScroll+delta), maxScroll)
	return m
}

func (m model) helpView() string {
	visibleHeight := max(1, m.height-1)
	start := min(m.helpScroll, max(0, len(helpLines)-1))
	end := min(len(helpLines), start+visibleHeight)

	var b strings.Builder
	for i, line := range helpLines[start:end] {
		if i == 0 && start == 0 {
			line = styleTitle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString(styleDim.Render("j/k to scroll | Esc, q or ? to close"))
	return b.String()
}
