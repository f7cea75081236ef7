package sdlhost

import (
	"context"
	"image"
	"log/slog"

	"github.com/BrandonKowalski/osk/pkg/osk"
	"github.com/BrandonKowalski/osk/pkg/osk/internal"
	"github.com/veandco/go-sdl2/sdl"
)

// touchMouseID marks mouse events SDL synthesises from touches.
const touchMouseID = 0xFFFFFFFF

// Pointer turns mouse button releases and finger lifts over the keyboard
// area into key activations.
type Pointer struct {
	keyboard *osk.Keyboard
	renderer *Renderer
	window   *sdl.Window
	logger   *slog.Logger
}

func NewPointer(keyboard *osk.Keyboard, renderer *Renderer, window *sdl.Window) *Pointer {
	return &Pointer{
		keyboard: keyboard,
		renderer: renderer,
		window:   window,
		logger:   internal.GetInternalLogger(),
	}
}

// HandleEvent reports whether event activated a key.
func (p *Pointer) HandleEvent(ctx context.Context, event sdl.Event) (bool, error) {
	switch e := event.(type) {
	case *sdl.MouseButtonEvent:
		// touches are also reported as synthetic mouse events
		if e.Type != sdl.MOUSEBUTTONUP || e.Button != sdl.BUTTON_LEFT || e.Which == touchMouseID {
			return false, nil
		}
		return p.activate(ctx, image.Pt(int(e.X), int(e.Y)))

	case *sdl.TouchFingerEvent:
		if e.Type != sdl.FINGERUP {
			return false, nil
		}
		w, h := p.window.GetSize()
		return p.activate(ctx, image.Pt(int(e.X*float32(w)), int(e.Y*float32(h))))
	}

	return false, nil
}

func (p *Pointer) activate(ctx context.Context, pt image.Point) (bool, error) {
	area := fromSDLRect(p.renderer.Area())
	if i := osk.HitTest(p.keyboard.Plan(), area, pt); i >= 0 {
		if err := p.renderer.SetSelected(i); err != nil {
			p.logger.Error("Failed to highlight key", "index", i, "error", err)
		}
	}
	return p.keyboard.ActivateAt(ctx, area, pt)
}

// WindowHost raises the SDL window when focus returns to the keyboard.
type WindowHost struct {
	Window *sdl.Window
}

var _ osk.FocusHost = WindowHost{}

func (h WindowHost) Focus() {
	if h.Window != nil {
		h.Window.Raise()
	}
}
