// Package term hosts the keyboard in a terminal using bubbletea and lipgloss.
package term

import (
	"fmt"
	"image"
	"io"
	"strings"

	"github.com/BrandonKowalski/osk/pkg/osk"
	"github.com/charmbracelet/lipgloss"
)

const (
	DefaultKeyWidth = 5

	// every key is drawn inside a one cell border
	borderSize = 2
	keyHeight  = 3
)

// Renderer draws a plan as rows of bordered terminal cells. Each key is
// Span key widths wide so spanning keys line up with the rows around them.
type Renderer struct {
	out      io.Writer
	keyWidth int

	plan     osk.Plan
	style    osk.Style
	selected int
	focused  bool
	view     string
}

var (
	_ osk.CellRenderer = (*Renderer)(nil)
	_ osk.FocusHost    = (*Renderer)(nil)
)

// NewRenderer writes every redraw to out when it is not nil.
func NewRenderer(out io.Writer, keyWidth int) *Renderer {
	if keyWidth <= 0 {
		keyWidth = DefaultKeyWidth
	}
	return &Renderer{out: out, keyWidth: keyWidth, selected: -1}
}

func (r *Renderer) Render(plan osk.Plan, style osk.Style) error {
	r.plan = plan
	if r.selected >= plan.Len() {
		r.selected = -1
	}
	return r.Restyle(style)
}

func (r *Renderer) Restyle(style osk.Style) error {
	r.style = style
	return r.draw()
}

// SetSelected highlights cell i; -1 clears the highlight.
func (r *Renderer) SetSelected(i int) error {
	r.selected = i
	return r.draw()
}

func (r *Renderer) Selected() int {
	return r.selected
}

// Focus marks the keyboard itself as focused.
func (r *Renderer) Focus() {
	r.focused = true
}

func (r *Renderer) Blur() {
	r.focused = false
}

func (r *Renderer) Focused() bool {
	return r.focused
}

// View returns the last drawn keyboard.
func (r *Renderer) View() string {
	return r.view
}

// Area is the terminal rectangle the keyboard covers when drawn at origin.
func (r *Renderer) Area(origin image.Point) image.Rectangle {
	width := r.plan.Columns * (r.keyWidth + borderSize)
	height := r.plan.Rows * keyHeight
	return image.Rectangle{Min: origin, Max: origin.Add(image.Pt(width, height))}
}

func (r *Renderer) keyStyle(span int, selected bool) lipgloss.Style {
	fore := lipgloss.Color(osk.ColorToHex(r.style.ForeColor))
	back := lipgloss.Color(osk.ColorToHex(r.style.KeyBackColor))

	style := lipgloss.NewStyle().
		Width(span*(r.keyWidth+borderSize)-borderSize).
		Align(lipgloss.Center).
		Foreground(fore).
		Background(back).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(osk.ColorToHex(r.style.BorderColor)))

	if selected {
		style = style.Reverse(true).BorderForeground(fore)
	}
	return style
}

func caption(label osk.KeyLabel) string {
	if label.Kind == osk.KeySpace {
		return "␣"
	}
	return osk.Caption(label)
}

// fit cuts text to width cells so long captions never wrap a key onto a
// second line.
func fit(text string, width int) string {
	runes := []rune(text)
	for len(runes) > 0 && lipgloss.Width(string(runes)) > width {
		runes = runes[:len(runes)-1]
	}
	return string(runes)
}

func (r *Renderer) draw() error {
	rows := make([]string, 0, r.plan.Rows)
	for i := 0; i < r.plan.Rows; i++ {
		var keys []string
		for _, cell := range r.plan.RowCells(i) {
			idx, _ := r.plan.IndexAt(cell.Row, cell.Column)
			width := cell.Span*(r.keyWidth+borderSize) - borderSize
			keys = append(keys, r.keyStyle(cell.Span, idx == r.selected).Render(fit(caption(cell.Label), width)))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, keys...))
	}

	view := lipgloss.JoinVertical(lipgloss.Left, rows...)
	if r.plan.Rows > 0 {
		view = lipgloss.NewStyle().
			Background(lipgloss.Color(osk.ColorToHex(r.style.BackColor))).
			Render(view)
	}
	r.view = view

	if r.out == nil {
		return nil
	}
	if _, err := fmt.Fprintln(r.out, strings.TrimRight(view, "\n")); err != nil {
		return fmt.Errorf("failed to write keyboard: %w", err)
	}
	return nil
}
