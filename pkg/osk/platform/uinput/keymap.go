package uinput

import (
	"errors"
	"fmt"

	"github.com/BrandonKowalski/osk/pkg/osk"
	evdev "github.com/holoplot/go-evdev"
)

// ErrUnmappable is returned for characters a US keyboard cannot type with a
// single key and shift.
var ErrUnmappable = errors.New("character has no key on the virtual device")

// Stroke is one key press with the modifiers held around it.
type Stroke struct {
	Code      evdev.EvCode
	Modifiers []evdev.EvCode
}

type keyCombo struct {
	code  evdev.EvCode
	shift bool
}

var runeKeys = map[rune]keyCombo{
	'1': {evdev.KEY_1, false}, '!': {evdev.KEY_1, true},
	'2': {evdev.KEY_2, false}, '@': {evdev.KEY_2, true},
	'3': {evdev.KEY_3, false}, '#': {evdev.KEY_3, true},
	'4': {evdev.KEY_4, false}, '$': {evdev.KEY_4, true},
	'5': {evdev.KEY_5, false}, '%': {evdev.KEY_5, true},
	'6': {evdev.KEY_6, false}, '^': {evdev.KEY_6, true},
	'7': {evdev.KEY_7, false}, '&': {evdev.KEY_7, true},
	'8': {evdev.KEY_8, false}, '*': {evdev.KEY_8, true},
	'9': {evdev.KEY_9, false}, '(': {evdev.KEY_9, true},
	'0': {evdev.KEY_0, false}, ')': {evdev.KEY_0, true},

	'-': {evdev.KEY_MINUS, false}, '_': {evdev.KEY_MINUS, true},
	'=': {evdev.KEY_EQUAL, false}, '+': {evdev.KEY_EQUAL, true},
	'[': {evdev.KEY_LEFTBRACE, false}, '{': {evdev.KEY_LEFTBRACE, true},
	']': {evdev.KEY_RIGHTBRACE, false}, '}': {evdev.KEY_RIGHTBRACE, true},
	';': {evdev.KEY_SEMICOLON, false}, ':': {evdev.KEY_SEMICOLON, true},
	'\'': {evdev.KEY_APOSTROPHE, false}, '"': {evdev.KEY_APOSTROPHE, true},
	'`': {evdev.KEY_GRAVE, false}, '~': {evdev.KEY_GRAVE, true},
	'\\': {evdev.KEY_BACKSLASH, false}, '|': {evdev.KEY_BACKSLASH, true},
	',': {evdev.KEY_COMMA, false}, '<': {evdev.KEY_COMMA, true},
	'.': {evdev.KEY_DOT, false}, '>': {evdev.KEY_DOT, true},
	'/': {evdev.KEY_SLASH, false}, '?': {evdev.KEY_SLASH, true},

	' ':  {evdev.KEY_SPACE, false},
	'\t': {evdev.KEY_TAB, false},
	'\n': {evdev.KEY_ENTER, false},
}

var letterKeys = [26]evdev.EvCode{
	evdev.KEY_A, evdev.KEY_B, evdev.KEY_C, evdev.KEY_D, evdev.KEY_E, evdev.KEY_F,
	evdev.KEY_G, evdev.KEY_H, evdev.KEY_I, evdev.KEY_J, evdev.KEY_K, evdev.KEY_L,
	evdev.KEY_M, evdev.KEY_N, evdev.KEY_O, evdev.KEY_P, evdev.KEY_Q, evdev.KEY_R,
	evdev.KEY_S, evdev.KEY_T, evdev.KEY_U, evdev.KEY_V, evdev.KEY_W, evdev.KEY_X,
	evdev.KEY_Y, evdev.KEY_Z,
}

func lookupRune(r rune) (keyCombo, bool) {
	switch {
	case r >= 'a' && r <= 'z':
		return keyCombo{letterKeys[r-'a'], false}, true
	case r >= 'A' && r <= 'Z':
		return keyCombo{letterKeys[r-'A'], true}, true
	}
	combo, ok := runeKeys[r]
	return combo, ok
}

// Strokes translates an injected token into key strokes. Special key tokens
// are matched against mapping first; anything else is typed character by
// character.
func Strokes(token string, mapping *osk.InjectionMapping) ([]Stroke, error) {
	switch token {
	case mapping.Backspace:
		return []Stroke{{Code: evdev.KEY_BACKSPACE}}, nil
	case mapping.Delete:
		return []Stroke{{Code: evdev.KEY_DELETE}}, nil
	case mapping.Clear:
		return []Stroke{
			{Code: evdev.KEY_A, Modifiers: []evdev.EvCode{evdev.KEY_LEFTCTRL}},
			{Code: evdev.KEY_BACKSPACE},
		}, nil
	case mapping.Space:
		return []Stroke{{Code: evdev.KEY_SPACE}}, nil
	}

	strokes := make([]Stroke, 0, len(token))
	for _, r := range token {
		combo, ok := lookupRune(r)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnmappable, r)
		}
		stroke := Stroke{Code: combo.code}
		if combo.shift {
			stroke.Modifiers = []evdev.EvCode{evdev.KEY_LEFTSHIFT}
		}
		strokes = append(strokes, stroke)
	}
	return strokes, nil
}

// capabilities lists every key the virtual device may emit.
func capabilities() []evdev.EvCode {
	seen := map[evdev.EvCode]bool{}
	var codes []evdev.EvCode
	add := func(code evdev.EvCode) {
		if !seen[code] {
			seen[code] = true
			codes = append(codes, code)
		}
	}

	for _, code := range letterKeys {
		add(code)
	}
	for _, combo := range runeKeys {
		add(combo.code)
	}
	for _, code := range []evdev.EvCode{evdev.KEY_BACKSPACE, evdev.KEY_DELETE, evdev.KEY_LEFTCTRL, evdev.KEY_LEFTSHIFT} {
		add(code)
	}
	return codes
}
