package sdlhost

import (
	"fmt"

	"github.com/BrandonKowalski/osk/pkg/osk/internal"
	"github.com/veandco/go-sdl2/img"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

// Window owns an SDL window and its accelerated renderer.
type Window struct {
	Window   *sdl.Window
	Renderer *sdl.Renderer
	Title    string
}

// OpenWindow initialises SDL, SDL_ttf and SDL_image and opens a window.
// A zero width or height uses the current display mode.
func OpenWindow(title string, width, height int32, borderless bool) (*Window, error) {
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS | sdl.INIT_GAMECONTROLLER); err != nil {
		return nil, fmt.Errorf("failed to initialise SDL: %w", err)
	}
	if err := ttf.Init(); err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("failed to initialise SDL_ttf: %w", err)
	}
	img.Init(img.INIT_PNG)

	if width == 0 || height == 0 {
		displayMode, err := sdl.GetCurrentDisplayMode(0)
		if err != nil {
			internal.GetInternalLogger().Error("Failed to get display mode, using 1024x768", "error", err)
			width, height = 1024, 768
		} else {
			width, height = displayMode.W, displayMode.H
		}
	}

	var windowFlags uint32 = sdl.WINDOW_SHOWN
	if borderless {
		windowFlags |= sdl.WINDOW_BORDERLESS
	}

	internal.GetInternalLogger().Debug("Initializing SDL Window", "width", width, "height", height)

	window, err := sdl.CreateWindow(title, sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED, width, height, windowFlags)
	if err != nil {
		quitSDL()
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC)
	if err != nil {
		window.Destroy()
		quitSDL()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}
	renderer.SetLogicalSize(width, height)

	return &Window{Window: window, Renderer: renderer, Title: title}, nil
}

func (w *Window) Width() int32 {
	width, _ := w.Window.GetSize()
	return width
}

func (w *Window) Height() int32 {
	_, height := w.Window.GetSize()
	return height
}

func (w *Window) ID() uint32 {
	id, err := w.Window.GetID()
	if err != nil {
		return 0
	}
	return id
}

// Close destroys the window and shuts SDL down.
func (w *Window) Close() {
	w.Renderer.Destroy()
	w.Window.Destroy()
	quitSDL()
}

func quitSDL() {
	img.Quit()
	ttf.Quit()
	sdl.Quit()
}
