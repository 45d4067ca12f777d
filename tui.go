package main

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/disintegration/imaging"
)

var (
	colorPink  = lipgloss.Color(colorSelection)
	colorGreen = lipgloss.Color("35")
	colorRed   = lipgloss.Color("167")
	colorDim   = lipgloss.Color("240")

	styleTitle   = lipgloss.NewStyle().Bold(true).Foreground(colorPink)
	styleDim     = lipgloss.NewStyle().Foreground(colorDim)
	styleSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleError   = lipgloss.NewStyle().Foreground(colorRed)
)

func newModel(ctx context.Context, cfg *Config, editor *Editor, renderer *Renderer, assets *Assets) model {
	return model{
		ctx:      ctx,
		cfg:      cfg,
		editor:   editor,
		renderer: renderer,
		assets:   assets,
		mode:     ModeNormal,
		frame:    &frameCache{},
	}
}

// waitForSprite turns the next sprite-ready signal into a message.
func waitForSprite(a *Assets) tea.Cmd {
	return func() tea.Msg {
		return spriteReadyMsg{name: <-a.Ready()}
	}
}

// redrawLater asks for one more paint once late sprites had a chance to land.
func redrawLater() tea.Cmd {
	return tea.Tick(redrawDelayMillis*time.Millisecond, func(time.Time) tea.Msg {
		return redrawMsg{}
	})
}

func (m model) Init() tea.Cmd {
	cmds := []tea.Cmd{waitForSprite(m.assets)}
	if m.editor.ViewOnly() {
		cmds = append(cmds, redrawLater())
	}
	return tea.Batch(cmds...)
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case spriteReadyMsg:
		m.sprites++
		loggerFromContext(m.ctx).Debug("sprite ready", "name", msg.name)
		return m, waitForSprite(m.assets)

	case redrawMsg:
		m.redraws++
		return m, nil

	case tea.MouseMsg:
		return m.handleMouse(msg), nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m model) handleMouse(msg tea.MouseMsg) model {
	side := canvasSide(m.width, m.height)
	x, y, inside := cellToCanvas(msg.X, msg.Y, side)
	if side <= 0 || m.help {
		return m
	}
	m.pointerX, m.pointerY = x, y

	switch msg.Action {
	case tea.MouseActionPress:
		if !inside || m.mode != ModeNormal {
			return m
		}
		m.errorMessage, m.successMessage = "", ""
		switch msg.Button {
		case tea.MouseButtonLeft:
			m.editor.PointerDown(x, y)
		case tea.MouseButtonRight:
			m.dropFlower()
		}
	case tea.MouseActionMotion:
		m.editor.PointerMove(x, y)
	case tea.MouseActionRelease:
		m.editor.PointerUp()
	}
	return m
}

func (m model) currentKind() Kind {
	n := len(FlowerKinds)
	return FlowerKinds[((m.palette%n)+n)%n]
}

func (m model) dropFlower() {
	kind := m.currentKind()
	if m.editor.AddFlower(kind, m.pointerX, m.pointerY) {
		loggerFromContext(m.ctx).Debug("flower added", "kind", kind, "x", m.pointerX, "y", m.pointerY)
	}
}

func (m model) nextWrapper() WrapperColor {
	current := m.editor.Scene().Wrapper()
	for i, c := range WrapperColors {
		if c == current {
			return WrapperColors[(i+1)%len(WrapperColors)]
		}
	}
	return WrapperColors[0]
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if m.help {
		switch key {
		case "esc", "q", "?":
			m.help = false
			m.helpScroll = 0
		case "j", "down":
			m = m.scrollHelp(1)
		case "k", "up":
			m = m.scrollHelp(-1)
		}
		return m, nil
	}

	switch m.mode {
	case ModeNoteInput:
		return m.handleNoteInput(msg), nil
	case ModeConfirm:
		return m.handleConfirm(key)
	}

	m.errorMessage, m.successMessage = "", ""

	switch key {
	case "ctrl+c", "q":
		if m.cfg.Confirmations && m.editor.Scene().Len() > 0 && !m.editor.ViewOnly() {
			m.mode = ModeConfirm
			m.confirmAction = ConfirmQuit
			return m, nil
		}
		return m, tea.Quit
	case "?":
		m.help = true
		m.helpScroll = 0
		return m, nil
	case "S":
		m = m.exportImage()
		return m, nil
	}

	if m.editor.ViewOnly() {
		return m, nil
	}

	switch key {
	case "tab":
		m.palette = (m.palette + 1) % len(FlowerKinds)
	case "shift+tab":
		m.palette = (m.palette + len(FlowerKinds) - 1) % len(FlowerKinds)
	case "f":
		m.dropFlower()
	case "n":
		m.mode = ModeNoteInput
		m.noteText = ""
	case "w":
		m.editor.SetWrapper(m.nextWrapper())
	case "delete", "backspace":
		m.editor.Delete()
	case "esc":
		m.editor.Deselect()
	case "c":
		if m.editor.Scene().Len() == 0 {
			return m, nil
		}
		if m.cfg.Confirmations {
			m.mode = ModeConfirm
			m.confirmAction = ConfirmClear
			return m, nil
		}
		m.editor.Clear()
	case "s":
		m = m.share()
	case "o":
		return m.openFromClipboard()
	default:
		if isNudgeKey(key) {
			m = m.handleNudge(key, getMoveSpeed(key))
		}
	}
	return m, nil
}

func (m model) handleNoteInput(msg tea.KeyMsg) model {
	switch msg.Type {
	case tea.KeyEsc:
		m.mode = ModeNormal
		m.noteText = ""
	case tea.KeyEnter:
		if !m.editor.AddNote(m.noteText) {
			m.errorMessage = "note is empty"
		}
		m.mode = ModeNormal
		m.noteText = ""
	case tea.KeyBackspace:
		if r := []rune(m.noteText); len(r) > 0 {
			m.noteText = string(r[:len(r)-1])
		}
	case tea.KeySpace:
		m.noteText += " "
	case tea.KeyRunes:
		m.noteText += string(msg.Runes)
	}
	return m
}

func (m model) handleConfirm(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "y", "Y":
		m.mode = ModeNormal
		switch m.confirmAction {
		case ConfirmQuit:
			return m, tea.Quit
		case ConfirmClear:
			m.editor.Clear()
			loggerFromContext(m.ctx).Info("bouquet cleared")
		}
	case "n", "N", "esc":
		m.mode = ModeNormal
	}
	return m, nil
}

func (m model) share() model {
	logger := loggerFromContext(m.ctx)
	link, err := m.editor.Export(m.cfg.BaseURL, m.cfg.MaxLinkLength)
	if err != nil {
		logger.Error("share failed", "err", err)
		if hasCode(err, ErrCodeSnapshotTooLarge) {
			m.errorMessage = "Too many flowers, link could not be generated."
		} else {
			m.errorMessage = err.Error()
		}
		return m
	}
	logger.Info("share link generated", "length", len(link))
	if err := writeClipboardText(link); err != nil {
		logger.Warn("clipboard unavailable", "err", err)
		m.successMessage = "Link: " + link
		return m
	}
	m.successMessage = "Copied to clipboard <3"
	return m
}

func (m model) openFromClipboard() (tea.Model, tea.Cmd) {
	text, err := readClipboardText()
	if err != nil {
		m.errorMessage = "clipboard unavailable"
		return m, nil
	}
	if err := m.editor.Import(m.ctx, cleanLink(text)); err != nil {
		m.errorMessage = "link corrupted"
		return m, nil
	}
	m.successMessage = "Viewing a shared bouquet"
	return m, redrawLater()
}

func (m model) exportImage() model {
	path, err := exportPNG(m.editor, m.renderer, m.cfg)
	if err != nil {
		loggerFromContext(m.ctx).Error("export failed", "err", err)
		m.errorMessage = err.Error()
		return m
	}
	loggerFromContext(m.ctx).Info("exported", "path", path)
	m.successMessage = "Saved " + path
	return m
}

func (m model) View() string {
	if m.help {
		return m.helpView()
	}

	side := canvasSide(m.width, m.height)
	var b strings.Builder
	if side < 2 {
		b.WriteString("terminal too small\n")
	} else {
		b.WriteString(m.canvasCells(side))
	}
	b.WriteString(m.statusLine())
	return b.String()
}

// canvasCells paints the scene into side columns by side/2 rows of half
// blocks, reusing the last frame when nothing visible changed.
func (m model) canvasCells(side int) string {
	key := frameKey{version: m.editor.Version(), sprites: m.sprites, redraws: m.redraws, side: side}
	if m.frame != nil && m.frame.key == key && m.frame.cells != "" {
		return m.frame.cells
	}
	im := flatten(m.editor.Render(m.renderer), paperColor(m.cfg.Paper))
	cells := halfBlocks(im, side, side/2)
	if m.frame != nil {
		m.frame.key = key
		m.frame.cells = cells
	}
	return cells
}

// halfBlocks downsamples im so each terminal cell carries two pixels, the
// upper one as foreground of ▀ and the lower one as background.
func halfBlocks(im image.Image, cols, rows int) string {
	small := imaging.Resize(im, cols, rows*2, imaging.Box)
	var b strings.Builder
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			top := small.NRGBAAt(c, 2*r)
			bottom := small.NRGBAAt(c, 2*r+1)
			b.WriteString(lipgloss.NewStyle().
				Foreground(hexColor(top)).
				Background(hexColor(bottom)).
				Render("▀"))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func hexColor(c color.NRGBA) lipgloss.Color {
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B))
}

func (m model) statusLine() string {
	switch m.mode {
	case ModeNoteInput:
		return fmt.Sprintf("Mode: NOTE | Text: %s█ | Enter=add, Esc=cancel", m.noteText)
	case ModeConfirm:
		message := "Clear the bouquet? (y/n)"
		if m.confirmAction == ConfirmQuit {
			message = "Quit? Your bouquet is not saved. (y/n)"
		}
		return "Mode: CONFIRM | " + message
	}

	var status string
	if m.editor.ViewOnly() {
		status = fmt.Sprintf("Mode: VIEW | Cursor: %s | click a note to open it", m.editor.Cursor())
	} else {
		status = fmt.Sprintf("Mode: EDIT | State: %s | Flower: %s | Wrapper: %s | Cursor: %s | Items: %d",
			m.editor.State(), m.currentKind(), m.editor.Scene().Wrapper(), m.editor.Cursor(), m.editor.Scene().Len())
	}
	switch {
	case m.errorMessage != "":
		status += " | " + styleError.Render("ERROR: "+m.errorMessage)
	case m.successMessage != "":
		status += " | " + styleSuccess.Render(m.successMessage)
	default:
		status += styleDim.Render(" | ? for help | q to quit")
	}
	return status
}
