package term

import (
	"context"
	"fmt"
	"image"
	"strings"

	"github.com/BrandonKowalski/osk/pkg/osk"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	styleTitle = lipgloss.NewStyle().Bold(true)

	styleInput = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			Padding(0, 1)

	styleSubtle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#555555", Dark: "#888888"})

	styleError = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#8b0000", Dark: "#ff0000"})
)

// Model is an interactive terminal host: a text field with the keyboard
// drawn below it.
type Model struct {
	keyboard *osk.Keyboard
	renderer *Renderer
	buffer   *osk.TextBuffer

	selected int
	status   string
	err      error
}

// Config describes the text field the demo edits.
type Config struct {
	Layout    osk.LayoutMode
	Text      string
	MaxLength int
	ReadOnly  bool
	Disabled  bool
	Style     *osk.Style
	Mapping   *osk.InjectionMapping
	KeyWidth  int
}

// NewModel wires a TextBuffer, a BufferInjector and a Renderer to a new
// keyboard.
func NewModel(config Config) (Model, error) {
	buffer := osk.NewTextBuffer(config.Text)
	if config.MaxLength > 0 {
		buffer.SetMaxLength(config.MaxLength)
	}
	buffer.SetReadOnly(config.ReadOnly)
	buffer.SetEnabled(!config.Disabled)

	renderer := NewRenderer(nil, config.KeyWidth)

	kb, err := osk.NewKeyboard(osk.KeyboardOptions{
		Layout:   config.Layout,
		Style:    config.Style,
		Renderer: renderer,
		Injector: osk.NewBufferInjector(buffer, config.Mapping),
		Host:     renderer,
		Target:   buffer,
		Mapping:  config.Mapping,
	})
	if err != nil {
		return Model{}, err
	}

	m := Model{keyboard: kb, renderer: renderer, buffer: buffer}
	m.selectCell(0)
	return m, nil
}

func (m Model) Keyboard() *osk.Keyboard { return m.keyboard }
func (m Model) Buffer() *osk.TextBuffer { return m.buffer }
func (m Model) Renderer() *Renderer     { return m.renderer }
func (m Model) Selected() int           { return m.selected }
func (m Model) Err() error              { return m.err }
func (m Model) Status() string          { return m.status }
func (m Model) Init() tea.Cmd           { return tea.EnableMouseCellMotion }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	case tea.MouseMsg:
		return m.handleMouse(msg)
	}
	return m, nil
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		return m, tea.Quit
	case "up":
		m.selectCell(m.keyboard.Plan().Navigate(m.selected, osk.DirectionUp))
	case "down":
		m.selectCell(m.keyboard.Plan().Navigate(m.selected, osk.DirectionDown))
	case "left":
		m.selectCell(m.keyboard.Plan().Navigate(m.selected, osk.DirectionLeft))
	case "right":
		m.selectCell(m.keyboard.Plan().Navigate(m.selected, osk.DirectionRight))
	case "enter":
		m.activate(m.selected)
	case "tab":
		m.nextLayout()
	case "ctrl+r":
		m.buffer.SetReadOnly(!m.buffer.ReadOnly())
		m.status = fmt.Sprintf("read-only: %t", m.buffer.ReadOnly())
	case "ctrl+d":
		m.buffer.SetEnabled(!m.buffer.Enabled())
		m.status = fmt.Sprintf("enabled: %t", m.buffer.Enabled())
	}
	return m, nil
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionRelease {
		return m, nil
	}
	if msg.Button != tea.MouseButtonLeft && msg.Button != tea.MouseButtonNone {
		return m, nil
	}

	area := m.renderer.Area(image.Pt(0, m.headerHeight()))
	if i := osk.HitTest(m.keyboard.Plan(), area, image.Pt(msg.X, msg.Y)); i >= 0 {
		m.selectCell(i)
		m.activate(i)
	}
	return m, nil
}

func (m *Model) selectCell(i int) {
	if i < 0 {
		return
	}
	m.selected = i
	if err := m.renderer.SetSelected(i); err != nil {
		m.err = err
	}
}

func (m *Model) activate(i int) {
	m.buffer.Blur()
	m.renderer.Blur()
	m.err = m.keyboard.Activate(context.Background(), i)
	if m.err == nil {
		m.status = ""
	}
}

func (m *Model) nextLayout() {
	modes := osk.LayoutModes()
	next := modes[0]
	for i, mode := range modes {
		if mode == m.keyboard.Layout() {
			next = modes[(i+1)%len(modes)]
			break
		}
	}

	if err := m.keyboard.SetLayout(next); err != nil {
		m.err = err
		return
	}
	m.status = "layout: " + next.String()
	m.selectCell(0)
}

func (m Model) header() string {
	text := m.buffer.Text()
	if m.buffer.Focused() {
		runes := []rune(text)
		caret := m.buffer.Caret()
		text = string(runes[:caret]) + "▏" + string(runes[caret:])
	}

	state := fmt.Sprintf("%s  %d/%d", m.keyboard.Layout(), m.buffer.Len(), m.buffer.MaxLength())
	if m.buffer.ReadOnly() {
		state += "  read-only"
	}
	if !m.buffer.Enabled() {
		state += "  disabled"
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		styleTitle.Render("On-screen keyboard"),
		styleInput.Render(text),
		styleSubtle.Render(state),
	)
}

func (m Model) headerHeight() int {
	return lipgloss.Height(m.header())
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(m.header())
	b.WriteString("\n")
	b.WriteString(m.renderer.View())
	b.WriteString("\n")

	switch {
	case m.err != nil:
		b.WriteString(styleError.Render(m.err.Error()))
	case m.status != "":
		b.WriteString(styleSubtle.Render(m.status))
	}
	b.WriteString("\n")
	b.WriteString(styleSubtle.Render("arrows move · enter types · tab layout · ctrl+r read-only · ctrl+d disable · esc quit"))
	return b.String()
}
