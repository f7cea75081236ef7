// Package uinput injects keyboard keys into Linux hosts through a virtual
// uinput keyboard device.
package uinput

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/BrandonKowalski/osk/pkg/osk"
	"github.com/BrandonKowalski/osk/pkg/osk/internal"
	evdev "github.com/holoplot/go-evdev"
)

const DefaultDeviceName = "osk-virtual-keyboard"

// device is the part of *evdev.InputDevice the injector writes to.
type device interface {
	WriteOne(event *evdev.InputEvent) error
	Close() error
}

// Injector is an osk.KeyInjector backed by a uinput keyboard.
type Injector struct {
	mu      sync.Mutex
	dev     device
	mapping *osk.InjectionMapping
	logger  *slog.Logger
}

var _ osk.KeyInjector = (*Injector)(nil)

// NewInjector creates the virtual device. It needs write access to
// /dev/uinput. A nil mapping uses the active injection mapping.
func NewInjector(name string, mapping *osk.InjectionMapping) (*Injector, error) {
	if name == "" {
		name = DefaultDeviceName
	}

	dev, err := evdev.CreateDevice(name, evdev.InputID{
		BusType: 0x03,
		Vendor:  0x4f53,
		Product: 0x4b01,
		Version: 1,
	}, map[evdev.EvType][]evdev.EvCode{
		evdev.EV_KEY: capabilities(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create uinput device: %w", err)
	}

	internal.GetInternalLogger().Debug("Created virtual keyboard", "name", name)
	return newInjector(dev, mapping), nil
}

func newInjector(dev device, mapping *osk.InjectionMapping) *Injector {
	if mapping == nil {
		mapping = osk.GetInjectionMapping()
	}
	return &Injector{dev: dev, mapping: mapping, logger: internal.GetInternalLogger()}
}

func (in *Injector) Inject(ctx context.Context, token string) error {
	strokes, err := Strokes(token, in.mapping)
	if err != nil {
		return err
	}

	in.mu.Lock()
	defer in.mu.Unlock()

	for _, stroke := range strokes {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := in.press(stroke); err != nil {
			in.logger.Error("Failed to write key stroke", "code", stroke.Code, "error", err)
			return err
		}
	}
	return nil
}

func (in *Injector) press(stroke Stroke) error {
	for _, mod := range stroke.Modifiers {
		if err := in.key(mod, 1); err != nil {
			return err
		}
	}
	if err := in.key(stroke.Code, 1); err != nil {
		return err
	}
	if err := in.sync(); err != nil {
		return err
	}

	if err := in.key(stroke.Code, 0); err != nil {
		return err
	}
	for i := len(stroke.Modifiers) - 1; i >= 0; i-- {
		if err := in.key(stroke.Modifiers[i], 0); err != nil {
			return err
		}
	}
	return in.sync()
}

func (in *Injector) key(code evdev.EvCode, value int32) error {
	return in.dev.WriteOne(&evdev.InputEvent{Type: evdev.EV_KEY, Code: code, Value: value})
}

func (in *Injector) sync() error {
	return in.dev.WriteOne(&evdev.InputEvent{Type: evdev.EV_SYN, Code: evdev.SYN_REPORT})
}

// Close destroys the virtual device.
func (in *Injector) Close() error {
	in.mu.Lock()
	defer in.mu.Unlock()
	return in.dev.Close()
}
