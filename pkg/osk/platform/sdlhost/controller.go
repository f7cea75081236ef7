package sdlhost

import (
	"context"
	"log/slog"

	"github.com/BrandonKowalski/osk/pkg/osk"
	"github.com/BrandonKowalski/osk/pkg/osk/internal"
	"github.com/veandco/go-sdl2/sdl"
)

// Controller drives the keyboard from a game controller: the D-pad moves
// the highlighted key, A presses it, B is backspace and Y is space.
type Controller struct {
	keyboard    *osk.Keyboard
	renderer    *Renderer
	controllers []*sdl.GameController
	logger      *slog.Logger
}

// NewController opens every attached game controller.
func NewController(keyboard *osk.Keyboard, renderer *Renderer) *Controller {
	c := &Controller{keyboard: keyboard, renderer: renderer, logger: internal.GetInternalLogger()}

	for i := 0; i < sdl.NumJoysticks(); i++ {
		if !sdl.IsGameController(i) {
			continue
		}
		controller := sdl.GameControllerOpen(i)
		if controller == nil {
			c.logger.Error("Failed to open game controller", "index", i)
			continue
		}
		c.logger.Debug("Opened game controller", "index", i, "name", controller.Name())
		c.controllers = append(c.controllers, controller)
	}

	return c
}

// HandleEvent reports whether event was a controller button press it used.
func (c *Controller) HandleEvent(ctx context.Context, event sdl.Event) (bool, error) {
	e, ok := event.(*sdl.ControllerButtonEvent)
	if !ok || e.Type != sdl.CONTROLLERBUTTONDOWN {
		return false, nil
	}

	switch sdl.GameControllerButton(e.Button) {
	case sdl.CONTROLLER_BUTTON_DPAD_UP:
		c.move(osk.DirectionUp)
	case sdl.CONTROLLER_BUTTON_DPAD_DOWN:
		c.move(osk.DirectionDown)
	case sdl.CONTROLLER_BUTTON_DPAD_LEFT:
		c.move(osk.DirectionLeft)
	case sdl.CONTROLLER_BUTTON_DPAD_RIGHT:
		c.move(osk.DirectionRight)
	case sdl.CONTROLLER_BUTTON_A:
		selected := c.renderer.Selected()
		if selected < 0 {
			c.move(osk.DirectionRight)
			return true, nil
		}
		return true, c.keyboard.Activate(ctx, selected)
	case sdl.CONTROLLER_BUTTON_B:
		return true, c.keyboard.ActivateLabel(ctx, osk.BackspaceKey)
	case sdl.CONTROLLER_BUTTON_Y:
		return true, c.keyboard.ActivateLabel(ctx, osk.SpaceKey)
	default:
		return false, nil
	}

	return true, nil
}

func (c *Controller) move(dir osk.Direction) {
	next := c.keyboard.Plan().Navigate(c.renderer.Selected(), dir)
	if err := c.renderer.SetSelected(next); err != nil {
		c.logger.Error("Failed to highlight key", "index", next, "error", err)
	}
}

func (c *Controller) Close() {
	for _, controller := range c.controllers {
		controller.Close()
	}
	c.controllers = nil
}
