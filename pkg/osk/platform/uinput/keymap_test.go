package uinput

import (
	"testing"

	"github.com/BrandonKowalski/osk/pkg/osk"
	evdev "github.com/holoplot/go-evdev"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStrokes_Literals(t *testing.T) {
	mapping := osk.DefaultInjectionMapping()

	tests := []struct {
		token string
		want  []Stroke
	}{
		{"a", []Stroke{{Code: evdev.KEY_A}}},
		{"Q", []Stroke{{Code: evdev.KEY_Q, Modifiers: []evdev.EvCode{evdev.KEY_LEFTSHIFT}}}},
		{"7", []Stroke{{Code: evdev.KEY_7}}},
		{"'", []Stroke{{Code: evdev.KEY_APOSTROPHE}}},
		{"?", []Stroke{{Code: evdev.KEY_SLASH, Modifiers: []evdev.EvCode{evdev.KEY_LEFTSHIFT}}}},
		{"ok", []Stroke{{Code: evdev.KEY_O}, {Code: evdev.KEY_K}}},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			got, err := Strokes(tt.token, mapping)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStrokes_SpecialKeys(t *testing.T) {
	mapping := osk.DefaultInjectionMapping()

	got, err := Strokes(mapping.Backspace, mapping)
	require.NoError(t, err)
	assert.Equal(t, []Stroke{{Code: evdev.KEY_BACKSPACE}}, got)

	got, err = Strokes(mapping.Delete, mapping)
	require.NoError(t, err)
	assert.Equal(t, []Stroke{{Code: evdev.KEY_DELETE}}, got)

	got, err = Strokes(mapping.Clear, mapping)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, []evdev.EvCode{evdev.KEY_LEFTCTRL}, got[0].Modifiers)
	assert.Equal(t, evdev.EvCode(evdev.KEY_BACKSPACE), got[1].Code)

	got, err = Strokes(" ", mapping)
	require.NoError(t, err)
	assert.Equal(t, []Stroke{{Code: evdev.KEY_SPACE}}, got)
}

func TestStrokes_Unmappable(t *testing.T) {
	for _, token := range []string{"Ñ", "Ç", "Ü", "aÑ"} {
		_, err := Strokes(token, osk.DefaultInjectionMapping())
		assert.ErrorIs(t, err, ErrUnmappable, token)
	}
}

func TestCapabilities_CoverEveryStroke(t *testing.T) {
	caps := map[evdev.EvCode]bool{}
	for _, code := range capabilities() {
		assert.False(t, caps[code], "duplicate capability %d", code)
		caps[code] = true
	}

	for _, mode := range osk.LayoutModes() {
		for _, cell := range osk.CompilePlan(mode).Cells {
			token := osk.NewDispatcher(nil, nil, osk.WithInjectionMapping(osk.DefaultInjectionMapping())).
				Token(osk.Resolve(cell.Label))
			strokes, err := Strokes(token, osk.DefaultInjectionMapping())
			if err != nil {
				continue
			}
			for _, stroke := range strokes {
				assert.True(t, caps[stroke.Code], "missing capability for %q", token)
				for _, mod := range stroke.Modifiers {
					assert.True(t, caps[mod])
				}
			}
		}
	}
}
