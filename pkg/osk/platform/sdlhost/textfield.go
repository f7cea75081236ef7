package sdlhost

import (
	"bytes"

	"github.com/BrandonKowalski/osk/pkg/osk"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

// TextField is a minimal native SDL text input: it edits an osk.TextBuffer
// from the TEXTINPUT and KEYDOWN events of its window, which is also what
// Injector produces.
type TextField struct {
	buffer    *osk.TextBuffer
	windowID  uint32
	selectAll bool
}

func NewTextField(buffer *osk.TextBuffer, windowID uint32) *TextField {
	return &TextField{buffer: buffer, windowID: windowID}
}

func (f *TextField) Buffer() *osk.TextBuffer {
	return f.buffer
}

// HandleEvent applies event to the buffer and reports whether it was consumed.
func (f *TextField) HandleEvent(event sdl.Event) bool {
	if !f.buffer.Enabled() || !f.buffer.Focused() {
		return false
	}

	switch e := event.(type) {
	case *sdl.TextInputEvent:
		if e.WindowID != f.windowID || f.buffer.ReadOnly() {
			return false
		}
		text := e.Text[:]
		if i := bytes.IndexByte(text, 0); i >= 0 {
			text = text[:i]
		}
		if f.selectAll {
			f.buffer.ClearAll()
			f.selectAll = false
		}
		f.buffer.InsertAtCaret(string(text))
		return true

	case *sdl.KeyboardEvent:
		if e.WindowID != f.windowID || e.Type != sdl.KEYDOWN {
			return false
		}
		return f.handleKey(e.Keysym)
	}

	return false
}

func (f *TextField) handleKey(keysym sdl.Keysym) bool {
	ctrl := keysym.Mod&sdl.KMOD_CTRL != 0

	switch keysym.Sym {
	case sdl.K_a:
		if !ctrl {
			return false
		}
		f.selectAll = true
		return true
	case sdl.K_LEFT:
		f.selectAll = false
		f.buffer.MoveCaret(-1)
		return true
	case sdl.K_RIGHT:
		f.selectAll = false
		f.buffer.MoveCaret(1)
		return true
	}

	if f.buffer.ReadOnly() {
		return false
	}

	switch keysym.Sym {
	case sdl.K_BACKSPACE:
		if f.selectAll {
			f.buffer.ClearAll()
		} else {
			f.buffer.BackspaceAtCaret()
		}
	case sdl.K_DELETE:
		if f.selectAll {
			f.buffer.ClearAll()
		} else {
			f.buffer.DeleteAtCaret()
		}
	default:
		return false
	}
	f.selectAll = false
	return true
}

// Draw paints the field with its caret into rect.
func (f *TextField) Draw(renderer *sdl.Renderer, font *ttf.Font, rect sdl.Rect, style osk.Style) {
	back := toSDLColor(lighten(style.BackColor, 40))
	renderer.SetDrawColor(back.R, back.G, back.B, back.A)
	renderer.FillRect(&rect)

	border := toSDLColor(style.BorderColor)
	if f.buffer.Focused() {
		border = toSDLColor(style.ForeColor)
	}
	renderer.SetDrawColor(border.R, border.G, border.B, border.A)
	renderer.DrawRect(&rect)

	if font == nil {
		return
	}

	padding := int32(20)
	runes := []rune(f.buffer.Text())
	before := string(runes[:f.buffer.Caret()])

	cursorX := rect.X + padding
	if before != "" {
		if w, _, err := font.SizeUTF8(before); err == nil {
			cursorX += int32(w)
		}
	}

	if len(runes) > 0 {
		surface, err := font.RenderUTF8Blended(string(runes), toSDLColor(style.ForeColor))
		if err == nil {
			texture, err := renderer.CreateTextureFromSurface(surface)
			if err == nil {
				dst := sdl.Rect{X: rect.X + padding, Y: rect.Y + (rect.H-surface.H)/2, W: surface.W, H: surface.H}
				renderer.Copy(texture, nil, &dst)
				texture.Destroy()
			}
			surface.Free()
		}
	}

	if f.buffer.Focused() {
		fore := toSDLColor(style.ForeColor)
		renderer.SetDrawColor(fore.R, fore.G, fore.B, fore.A)
		cursor := sdl.Rect{X: cursorX, Y: rect.Y + rect.H/4, W: 2, H: rect.H / 2}
		renderer.FillRect(&cursor)
	}
}
