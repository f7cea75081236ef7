package sdlhost

import (
	"context"
	"unicode/utf8"

	"github.com/BrandonKowalski/osk/pkg/osk"
	"github.com/veandco/go-sdl2/sdl"
)

// Injector types keys into the focused SDL window by pushing the same
// events a physical keyboard produces.
type Injector struct {
	windowID uint32
	mapping  *osk.InjectionMapping
	push     func(sdl.Event) (bool, error)
}

var _ osk.KeyInjector = (*Injector)(nil)

// NewInjector targets the window with windowID. A nil mapping uses the
// active injection mapping.
func NewInjector(windowID uint32, mapping *osk.InjectionMapping) *Injector {
	if mapping == nil {
		mapping = osk.GetInjectionMapping()
	}
	return &Injector{windowID: windowID, mapping: mapping, push: sdl.PushEvent}
}

func (in *Injector) Inject(ctx context.Context, token string) error {
	for _, event := range in.Events(token) {
		if err := ctx.Err(); err != nil {
			return err
		}
		if _, err := in.push(event); err != nil {
			return err
		}
	}
	return nil
}

// Events returns the SDL events that type token.
func (in *Injector) Events(token string) []sdl.Event {
	switch token {
	case in.mapping.Backspace:
		return in.tap(sdl.K_BACKSPACE, sdl.SCANCODE_BACKSPACE, 0)
	case in.mapping.Delete:
		return in.tap(sdl.K_DELETE, sdl.SCANCODE_DELETE, 0)
	case in.mapping.Clear:
		// select all, then erase the selection
		events := in.tap(sdl.K_a, sdl.SCANCODE_A, sdl.KMOD_LCTRL)
		return append(events, in.tap(sdl.K_BACKSPACE, sdl.SCANCODE_BACKSPACE, 0)...)
	case in.mapping.Space:
		return in.text(" ")
	default:
		return in.text(token)
	}
}

func (in *Injector) tap(sym sdl.Keycode, code sdl.Scancode, mod uint16) []sdl.Event {
	keysym := sdl.Keysym{Scancode: code, Sym: sym, Mod: mod}
	return []sdl.Event{
		&sdl.KeyboardEvent{
			Type:     sdl.KEYDOWN,
			WindowID: in.windowID,
			State:    sdl.PRESSED,
			Keysym:   keysym,
		},
		&sdl.KeyboardEvent{
			Type:     sdl.KEYUP,
			WindowID: in.windowID,
			State:    sdl.RELEASED,
			Keysym:   keysym,
		},
	}
}

// text splits s into TEXTINPUT events, each holding as many whole UTF-8
// sequences as fit in the fixed-size event buffer.
func (in *Injector) text(s string) []sdl.Event {
	var events []sdl.Event
	for len(s) > 0 {
		n := 0
		for n < len(s) {
			_, size := utf8.DecodeRuneInString(s[n:])
			if n+size > sdl.TEXTINPUTEVENT_TEXT_SIZE-1 {
				break
			}
			n += size
		}

		event := &sdl.TextInputEvent{Type: sdl.TEXTINPUT, WindowID: in.windowID}
		copy(event.Text[:], s[:n])
		events = append(events, event)
		s = s[n:]
	}
	return events
}
