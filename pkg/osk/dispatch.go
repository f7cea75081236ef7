package osk

import (
	"context"
	"fmt"
	"log/slog"
	"unicode/utf8"

	"github.com/BrandonKowalski/osk/pkg/osk/internal"
)

// TargetBuffer is the text input the keyboard types into. The keyboard only
// reads its constraints and requests edits; the host owns it.
type TargetBuffer interface {
	Text() string
	SetText(text string)
	MaxLength() int
	Enabled() bool
	ReadOnly() bool
	// SetCaret places the insertion point, counted in characters.
	SetCaret(pos int)
	Focus()
}

// KeyInjector forwards a key token to the host's native input handling,
// as if the key had been typed on a physical keyboard.
type KeyInjector interface {
	Inject(ctx context.Context, token string) error
}

// FocusHost is the container that takes focus when the target cannot.
type FocusHost interface {
	Focus()
}

// Dispatcher applies resolved key actions to a target buffer.
type Dispatcher struct {
	injector KeyInjector
	host     FocusHost
	mapping  *internal.InjectionMapping
	logger   *slog.Logger
}

// DispatcherOption customises a Dispatcher.
type DispatcherOption func(*Dispatcher)

// WithInjectionMapping overrides the tokens forwarded for special keys.
func WithInjectionMapping(mapping *InjectionMapping) DispatcherOption {
	return func(d *Dispatcher) {
		if mapping != nil {
			d.mapping = mapping
		}
	}
}

// NewDispatcher wires a dispatcher to the host's injector and focus container.
// Either may be nil; a nil injector drops keys bound for editable targets.
func NewDispatcher(injector KeyInjector, host FocusHost, opts ...DispatcherOption) *Dispatcher {
	d := &Dispatcher{
		injector: injector,
		host:     host,
		mapping:  internal.GetInjectionMapping(),
		logger:   internal.GetInternalLogger(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Token returns what gets forwarded to the injector for action.
func (d *Dispatcher) Token(action KeyAction) string {
	switch action.Kind {
	case ActionBackspace:
		return d.mapping.Backspace
	case ActionDelete:
		return d.mapping.Delete
	case ActionClear:
		return d.mapping.Clear
	case ActionSpace:
		return d.mapping.Space
	default:
		return action.Text
	}
}

// Dispatch applies action to target and then places focus.
// Editable targets receive the key through the injector; disabled or
// read-only targets are edited in place. A nil target is a no-op.
func (d *Dispatcher) Dispatch(ctx context.Context, action KeyAction, target TargetBuffer) error {
	var err error

	switch {
	case target == nil:
		d.logger.Debug("No target bound, key discarded", "action", action.Kind.String())
	case editable(target):
		err = d.inject(ctx, action, target)
	default:
		d.editLocked(action, target)
	}

	d.placeFocus(target)
	return err
}

func editable(target TargetBuffer) bool {
	return target.Enabled() && !target.ReadOnly()
}

func (d *Dispatcher) inject(ctx context.Context, action KeyAction, target TargetBuffer) error {
	target.Focus()
	target.SetCaret(utf8.RuneCountInString(target.Text()))

	if d.injector == nil {
		d.logger.Warn("No key injector configured, key dropped", "action", action.Kind.String())
		return nil
	}

	token := d.Token(action)
	if err := d.injector.Inject(ctx, token); err != nil {
		d.logger.Error("Failed to inject key", "action", action.Kind.String(), "token", token, "error", err)
		return fmt.Errorf("inject %s: %w", action.Kind, err)
	}
	return nil
}

func (d *Dispatcher) editLocked(action KeyAction, target TargetBuffer) {
	text := target.Text()
	length := utf8.RuneCountInString(text)

	switch action.Kind {
	case ActionBackspace:
		if length > 0 {
			runes := []rune(text)
			target.SetText(string(runes[:length-1]))
		}
	case ActionClear:
		target.SetText("")
	case ActionDelete:
		// no-op on locked buffers
	default:
		appended, ok := action.appendText()
		if !ok {
			return
		}
		if length >= target.MaxLength() {
			d.logger.Debug("Target at capacity, key dropped", "max_length", target.MaxLength())
			return
		}
		target.SetText(text + appended)
	}
}

func (d *Dispatcher) placeFocus(target TargetBuffer) {
	if target != nil && editable(target) {
		target.Focus()
		return
	}
	if d.host != nil {
		d.host.Focus()
	}
}
