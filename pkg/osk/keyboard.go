package osk

import (
	"context"
	"image"
	"image/color"
	"log/slog"

	"github.com/BrandonKowalski/osk/pkg/osk/internal"
	"go.uber.org/atomic"
)

// CellRenderer draws a compiled plan. Render is called after every layout
// change with a fresh plan; Restyle only when colours or font change.
type CellRenderer interface {
	Render(plan Plan, style Style) error
	Restyle(style Style) error
}

// LayoutChangedEvent is delivered once per completed layout change.
type LayoutChangedEvent struct {
	Previous   LayoutMode
	Current    LayoutMode
	Cells      int
	Generation int64
}

// KeyboardOptions configures NewKeyboard. The zero value gives an
// AlphanumericSpanish keyboard with no renderer, injector or target.
type KeyboardOptions struct {
	Layout   LayoutMode
	Style    *Style
	Renderer CellRenderer
	Injector KeyInjector
	Host     FocusHost
	Target   TargetBuffer
	Mapping  *InjectionMapping
}

// Keyboard is the on-screen keyboard widget: it owns the compiled plan for
// the selected layout and dispatches key activations to the bound target.
// It is meant to be driven from a single UI goroutine.
type Keyboard struct {
	mode       LayoutMode
	plan       Plan
	style      Style
	target     TargetBuffer
	renderer   CellRenderer
	dispatcher *Dispatcher
	listeners  []func(LayoutChangedEvent)
	logger     *slog.Logger

	// depth counts activations in progress, including nested ones.
	depth      atomic.Int32
	generation atomic.Int64
}

func NewKeyboard(options KeyboardOptions) (*Keyboard, error) {
	style := DefaultStyle()
	if options.Style != nil {
		style = *options.Style
	}

	kb := &Keyboard{
		mode:       options.Layout,
		style:      style,
		target:     options.Target,
		renderer:   options.Renderer,
		dispatcher: NewDispatcher(options.Injector, options.Host, WithInjectionMapping(options.Mapping)),
		logger:     internal.GetInternalLogger(),
	}

	if err := kb.rebuild(); err != nil {
		return nil, err
	}
	return kb, nil
}

func (kb *Keyboard) Layout() LayoutMode {
	return kb.mode
}

// SetLayout selects a new layout, discards the previous plan, compiles and
// renders the new one, then notifies OnLayoutChanged subscribers.
// Unknown modes produce an empty keyboard.
func (kb *Keyboard) SetLayout(mode LayoutMode) error {
	if kb.depth.Load() > 0 {
		kb.logger.Warn("Layout change ignored during key dispatch", "layout", mode.String())
		return ErrLayoutChangeDuringDispatch
	}

	previous := kb.mode
	kb.mode = mode
	err := kb.rebuild()

	event := LayoutChangedEvent{
		Previous:   previous,
		Current:    mode,
		Cells:      kb.plan.Len(),
		Generation: kb.generation.Load(),
	}
	for _, fn := range kb.listeners {
		fn(event)
	}

	return err
}

func (kb *Keyboard) rebuild() error {
	if !kb.mode.Valid() {
		kb.logger.Warn("Unknown keyboard layout, falling back to an empty grid", "layout", kb.mode.String())
	}

	kb.plan = CompilePlan(kb.mode)
	generation := kb.generation.Inc()

	kb.logger.Debug("Compiled keyboard layout",
		"layout", kb.mode.String(),
		"rows", kb.plan.Rows,
		"columns", kb.plan.Columns,
		"cells", kb.plan.Len(),
		"generation", generation,
	)

	if kb.renderer == nil {
		return nil
	}
	return kb.renderer.Render(kb.Plan(), kb.style)
}

// Plan returns a copy of the current compiled plan.
func (kb *Keyboard) Plan() Plan {
	plan := kb.plan
	plan.Cells = append([]CompiledCell(nil), kb.plan.Cells...)
	return plan
}

// Generation increases by one every time the plan is recompiled.
func (kb *Keyboard) Generation() int64 {
	return kb.generation.Load()
}

// OnLayoutChanged subscribes fn to layout changes.
func (kb *Keyboard) OnLayoutChanged(fn func(LayoutChangedEvent)) {
	kb.listeners = append(kb.listeners, fn)
}

// SetRenderer swaps the host renderer and draws the current plan with it.
func (kb *Keyboard) SetRenderer(renderer CellRenderer) error {
	kb.renderer = renderer
	if renderer == nil {
		return nil
	}
	return renderer.Render(kb.Plan(), kb.style)
}

func (kb *Keyboard) Target() TargetBuffer {
	return kb.target
}

// SetTarget binds the text input keys are typed into. nil unbinds it.
func (kb *Keyboard) SetTarget(target TargetBuffer) {
	kb.target = target
}

func (kb *Keyboard) Style() Style {
	return kb.style
}

// SetStyle replaces the whole style without recompiling the layout.
func (kb *Keyboard) SetStyle(style Style) error {
	kb.style = style
	if kb.renderer == nil {
		return nil
	}
	return kb.renderer.Restyle(style)
}

func (kb *Keyboard) SetBackColor(c color.RGBA) error {
	style := kb.style
	style.BackColor = c
	return kb.SetStyle(style)
}

func (kb *Keyboard) SetKeyBackColor(c color.RGBA) error {
	style := kb.style
	style.KeyBackColor = c
	return kb.SetStyle(style)
}

func (kb *Keyboard) SetForeColor(c color.RGBA) error {
	style := kb.style
	style.ForeColor = c
	return kb.SetStyle(style)
}

func (kb *Keyboard) SetFont(font Font) error {
	style := kb.style
	style.Font = font
	return kb.SetStyle(style)
}

// Caption returns the text to draw on cell i.
func (kb *Keyboard) Caption(i int) string {
	cell, err := kb.plan.Cell(i)
	if err != nil {
		return ""
	}
	return Caption(cell.Label)
}

// Activate handles the release of cell i.
func (kb *Keyboard) Activate(ctx context.Context, i int) error {
	cell, err := kb.plan.Cell(i)
	if err != nil {
		return err
	}
	return kb.ActivateLabel(ctx, cell.Label)
}

// ActivateAt activates the cell under pt when the keyboard fills area.
// It reports whether a cell was hit.
func (kb *Keyboard) ActivateAt(ctx context.Context, area image.Rectangle, pt image.Point) (bool, error) {
	i := HitTest(kb.plan, area, pt)
	if i < 0 {
		return false, nil
	}
	return true, kb.Activate(ctx, i)
}

// ActivateLabel resolves label and dispatches it to the bound target.
func (kb *Keyboard) ActivateLabel(ctx context.Context, label KeyLabel) error {
	kb.depth.Inc()
	defer kb.depth.Dec()

	action := Resolve(label)
	kb.logger.Debug("Key activated", "label", label.String(), "action", action.Kind.String())

	return kb.dispatcher.Dispatch(ctx, action, kb.target)
}
