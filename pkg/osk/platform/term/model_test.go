package term

import (
	"errors"
	"testing"

	"github.com/BrandonKowalski/osk/pkg/osk"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func press(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(Model)
	}
	return m
}

func key(k tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: k}
}

func TestModel_TypesThroughInjector(t *testing.T) {
	m, err := NewModel(Config{Layout: osk.NumericPhone})
	require.NoError(t, err)

	// 1, then right to 2
	m = press(t, m, key(tea.KeyEnter), key(tea.KeyRight), key(tea.KeyEnter))
	assert.Equal(t, "12", m.Buffer().Text())
	assert.True(t, m.Buffer().Focused())
	assert.False(t, m.Renderer().Focused())

	// wrap up to the bottom row: {CLEAR} 0 {BACKSPACE}
	m = press(t, m, key(tea.KeyUp), key(tea.KeyRight), key(tea.KeyEnter))
	assert.Equal(t, "1", m.Buffer().Text())
	assert.NoError(t, m.Err())
}

func TestModel_ReadOnlyEditsInPlace(t *testing.T) {
	m, err := NewModel(Config{Layout: osk.NumericCalculator, Text: "99", MaxLength: 3, ReadOnly: true})
	require.NoError(t, err)

	m = press(t, m, key(tea.KeyEnter), key(tea.KeyEnter))
	assert.Equal(t, "997", m.Buffer().Text())
	assert.True(t, m.Renderer().Focused())
	assert.False(t, m.Buffer().Focused())

	m = press(t, m, key(tea.KeyCtrlR), key(tea.KeyEnter))
	assert.False(t, m.Buffer().ReadOnly())
	assert.Equal(t, "997", m.Buffer().Text())
}

func TestModel_TabCyclesLayouts(t *testing.T) {
	m, err := NewModel(Config{})
	require.NoError(t, err)

	m = press(t, m, key(tea.KeyRight), key(tea.KeyTab))
	assert.Equal(t, osk.NumericPhone, m.Keyboard().Layout())
	assert.Equal(t, 0, m.Selected())
	assert.Contains(t, m.Status(), "numeric-phone")

	m = press(t, m, key(tea.KeyTab), key(tea.KeyTab))
	assert.Equal(t, osk.AlphanumericSpanish, m.Keyboard().Layout())
}

func TestModel_MouseRelease(t *testing.T) {
	m, err := NewModel(Config{Layout: osk.NumericPhone, KeyWidth: 3})
	require.NoError(t, err)
	top := m.headerHeight()

	// middle key of the second row is 5
	m = press(t, m, tea.MouseMsg{X: 7, Y: top + 4, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	assert.Empty(t, m.Buffer().Text())

	m = press(t, m, tea.MouseMsg{X: 7, Y: top + 4, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	assert.Equal(t, "5", m.Buffer().Text())
	assert.Equal(t, 4, m.Selected())

	m = press(t, m, tea.MouseMsg{X: 200, Y: 1, Action: tea.MouseActionRelease})
	assert.Equal(t, "5", m.Buffer().Text())
}

func TestModel_QuitAndView(t *testing.T) {
	m, err := NewModel(Config{Text: "hola"})
	require.NoError(t, err)

	view := m.View()
	assert.Contains(t, view, "hola")
	assert.Contains(t, view, "alphanumeric-es")

	_, cmd := m.Update(key(tea.KeyEsc))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

type brokenWriter struct{}

func (brokenWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestModel_HighlightErrorIsReported(t *testing.T) {
	m := Model{renderer: NewRenderer(brokenWriter{}, DefaultKeyWidth)}
	m.selectCell(3)

	assert.Equal(t, 3, m.Selected())
	assert.ErrorContains(t, m.Err(), "failed to write keyboard")
}
