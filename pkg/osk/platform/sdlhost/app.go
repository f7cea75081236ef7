package sdlhost

import (
	"context"

	"github.com/BrandonKowalski/osk/pkg/osk"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

// AppConfig describes the standalone SDL keyboard.
type AppConfig struct {
	Title      string
	Width      int32
	Height     int32
	Borderless bool
	Layout     osk.LayoutMode
	Text       string
	MaxLength  int
	ReadOnly   bool
	Style      osk.Style
	Mapping    *osk.InjectionMapping
}

// Run opens a window with a text field on top and the keyboard below it,
// and processes events until the window closes or ctx is cancelled.
// It must be called from the main goroutine.
func Run(ctx context.Context, config AppConfig) error {
	win, err := OpenWindow(config.Title, config.Width, config.Height, config.Borderless)
	if err != nil {
		return err
	}
	defer win.Close()

	if config.Style == (osk.Style{}) {
		config.Style = osk.DefaultStyle()
	}

	width, height := win.Width(), win.Height()
	fieldRect := sdl.Rect{X: 20, Y: 20, W: width - 40, H: height / 6}
	keyboardRect := sdl.Rect{X: 0, Y: fieldRect.Y + fieldRect.H + 20, W: width}
	keyboardRect.H = height - keyboardRect.Y

	buffer := osk.NewTextBuffer(config.Text)
	if config.MaxLength > 0 {
		buffer.SetMaxLength(config.MaxLength)
	}
	buffer.SetReadOnly(config.ReadOnly)
	field := NewTextField(buffer, win.ID())

	renderer := NewRenderer(win.Renderer, keyboardRect)
	defer renderer.Close()

	kb, err := osk.NewKeyboard(osk.KeyboardOptions{
		Layout:   config.Layout,
		Style:    &config.Style,
		Renderer: renderer,
		Injector: NewInjector(win.ID(), config.Mapping),
		Host:     WindowHost{Window: win.Window},
		Target:   buffer,
		Mapping:  config.Mapping,
	})
	if err != nil {
		return err
	}
	pointer := NewPointer(kb, renderer, win.Window)
	controller := NewController(kb, renderer)
	defer controller.Close()

	var fieldFont *ttf.Font
	if config.Style.Font.Path != "" {
		if font, err := ttf.OpenFont(config.Style.Font.Path, config.Style.Font.Size); err == nil {
			fieldFont = font
			defer font.Close()
		}
	}

	logger := osk.GetLogger()

	for ctx.Err() == nil {
		for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
			switch e := event.(type) {
			case *sdl.QuitEvent:
				return nil
			case *sdl.KeyboardEvent:
				if e.Type == sdl.KEYDOWN && e.Keysym.Sym == sdl.K_TAB {
					if err := kb.SetLayout(nextLayout(kb.Layout())); err != nil {
						logger.Warn("Failed to switch layout", "error", err)
					}
					continue
				}
			}

			if field.HandleEvent(event) {
				continue
			}
			if handled, err := controller.HandleEvent(ctx, event); handled {
				if err != nil {
					logger.Error("Key activation failed", "error", err)
				}
				continue
			}
			if _, err := pointer.HandleEvent(ctx, event); err != nil {
				logger.Error("Key activation failed", "error", err)
			}
		}

		style := kb.Style()
		back := toSDLColor(style.BackColor)
		win.Renderer.SetDrawColor(back.R, back.G, back.B, back.A)
		win.Renderer.Clear()

		if err := renderer.Draw(); err != nil {
			return err
		}
		field.Draw(win.Renderer, fieldFont, fieldRect, style)
		win.Renderer.Present()
		sdl.Delay(16)
	}

	return ctx.Err()
}

func nextLayout(current osk.LayoutMode) osk.LayoutMode {
	modes := osk.LayoutModes()
	for i, mode := range modes {
		if mode == current {
			return modes[(i+1)%len(modes)]
		}
	}
	return modes[0]
}
