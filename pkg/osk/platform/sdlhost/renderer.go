// Package sdlhost hosts the keyboard in an SDL2 window: it draws compiled
// plans, turns clicks and taps into activations and injects keys as SDL
// input events.
package sdlhost

import (
	"log/slog"

	"github.com/BrandonKowalski/osk/pkg/osk"
	"github.com/BrandonKowalski/osk/pkg/osk/internal"
	"github.com/veandco/go-sdl2/gfx"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

const (
	defaultSpacing = 8
	defaultRadius  = 10
)

// Renderer draws a keyboard plan into an area of an SDL renderer.
type Renderer struct {
	renderer *sdl.Renderer
	area     sdl.Rect
	spacing  int32
	radius   int32
	present  bool

	plan     osk.Plan
	style    osk.Style
	selected int

	font     *ttf.Font
	fontSpec osk.Font
	ownsFont bool
	icons    map[iconKey]*sdl.Texture

	logger *slog.Logger
}

var _ osk.CellRenderer = (*Renderer)(nil)

type Option func(*Renderer)

// WithSpacing sets the gap between keys in pixels.
func WithSpacing(spacing int32) Option {
	return func(r *Renderer) { r.spacing = spacing }
}

// WithRadius sets the corner radius of keys; 0 draws square keys.
func WithRadius(radius int32) Option {
	return func(r *Renderer) { r.radius = radius }
}

// WithFont uses an already opened font for captions instead of the one
// named by the style. The caller keeps ownership of it.
func WithFont(font *ttf.Font) Option {
	return func(r *Renderer) { r.font = font }
}

// WithPresent makes every draw finish with renderer.Present.
func WithPresent() Option {
	return func(r *Renderer) { r.present = true }
}

func NewRenderer(renderer *sdl.Renderer, area sdl.Rect, opts ...Option) *Renderer {
	r := &Renderer{
		renderer: renderer,
		area:     area,
		spacing:  defaultSpacing,
		radius:   defaultRadius,
		selected: -1,
		icons:    make(map[iconKey]*sdl.Texture),
		logger:   internal.GetInternalLogger(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Area is the rectangle the keyboard occupies.
func (r *Renderer) Area() sdl.Rect {
	return r.area
}

// SetArea moves or resizes the keyboard. Icons are rasterised again at the
// new key size on the next draw.
func (r *Renderer) SetArea(area sdl.Rect) error {
	r.area = area
	r.destroyIcons()
	return r.Draw()
}

// SetSelected highlights cell i; -1 clears the highlight.
func (r *Renderer) SetSelected(i int) error {
	r.selected = i
	return r.Draw()
}

func (r *Renderer) Selected() int {
	return r.selected
}

func (r *Renderer) Render(plan osk.Plan, style osk.Style) error {
	r.plan = plan
	if r.selected >= plan.Len() {
		r.selected = -1
	}
	r.destroyIcons()
	return r.Restyle(style)
}

func (r *Renderer) Restyle(style osk.Style) error {
	r.style = style
	r.loadFont(style.Font)
	return r.Draw()
}

func (r *Renderer) loadFont(spec osk.Font) {
	if r.font != nil && (!r.ownsFont || spec == r.fontSpec) {
		return
	}
	if spec.Path == "" {
		return
	}

	font, err := ttf.OpenFont(spec.Path, spec.Size)
	if err != nil {
		r.logger.Warn("Failed to load caption font, keeping the current one", "path", spec.Path, "size", spec.Size, "error", err)
		return
	}

	if r.ownsFont && r.font != nil {
		r.font.Close()
	}
	r.font = font
	r.fontSpec = spec
	r.ownsFont = true
}

// Draw paints the whole keyboard with the current plan and style.
func (r *Renderer) Draw() error {
	background := toSDLColor(r.style.BackColor)
	if err := r.renderer.SetDrawColor(background.R, background.G, background.B, background.A); err != nil {
		return err
	}
	if err := r.renderer.FillRect(&r.area); err != nil {
		return err
	}

	bounds := osk.CellBounds(r.plan, fromSDLRect(r.area), int(r.spacing))
	for i, cell := range r.plan.Cells {
		r.renderKey(cell, toSDLRect(bounds[i]), i == r.selected)
	}

	if r.present {
		r.renderer.Present()
	}
	return nil
}

func (r *Renderer) renderKey(cell osk.CompiledCell, rect sdl.Rect, selected bool) {
	fill := r.style.KeyBackColor
	if selected {
		fill = lighten(fill, 60)
	}

	r.drawRoundedRect(rect, toSDLColor(fill))

	border := toSDLColor(r.style.BorderColor)
	r.renderer.SetDrawColor(border.R, border.G, border.B, border.A)
	if r.radius > 0 {
		gfx.RoundedRectangleColor(r.renderer, rect.X, rect.Y, rect.X+rect.W-1, rect.Y+rect.H-1, r.radius, border)
	} else {
		r.renderer.DrawRect(&rect)
	}

	switch cell.Label.Kind {
	case osk.KeySpace:
		r.renderSpaceKey(rect)
	case osk.KeyLiteral:
		r.renderKeyText(osk.Caption(cell.Label), rect)
	default:
		r.renderIconKey(cell.Label, rect)
	}
}

func (r *Renderer) drawRoundedRect(rect sdl.Rect, c sdl.Color) {
	if r.radius <= 0 {
		r.renderer.SetDrawColor(c.R, c.G, c.B, c.A)
		r.renderer.FillRect(&rect)
		return
	}
	gfx.RoundedBoxColor(r.renderer, rect.X, rect.Y, rect.X+rect.W-1, rect.Y+rect.H-1, r.radius, c)
}

func (r *Renderer) renderKeyText(text string, rect sdl.Rect) {
	if r.font == nil || text == "" {
		return
	}

	textSurface, err := r.font.RenderUTF8Blended(text, toSDLColor(r.style.ForeColor))
	if err != nil {
		r.logger.Debug("Failed to render key caption", "text", text, "error", err)
		return
	}
	defer textSurface.Free()

	textTexture, err := r.renderer.CreateTextureFromSurface(textSurface)
	if err != nil {
		return
	}
	defer textTexture.Destroy()

	textRect := sdl.Rect{
		X: rect.X + (rect.W-textSurface.W)/2,
		Y: rect.Y + (rect.H-textSurface.H)/2,
		W: textSurface.W,
		H: textSurface.H,
	}
	r.renderer.Copy(textTexture, nil, &textRect)
}

// renderIconKey draws the icon for a special key, falling back to its
// localized caption when the icon cannot be loaded.
func (r *Renderer) renderIconKey(label osk.KeyLabel, rect sdl.Rect) {
	size := min(rect.W, rect.H) / 2

	texture, err := r.iconTexture(label.Kind, size)
	if err != nil || texture == nil {
		if err != nil {
			r.logger.Debug("Falling back to caption for special key", "key", label.String(), "error", err)
		}
		r.renderKeyText(osk.Caption(label), rect)
		return
	}

	fore := r.style.ForeColor
	texture.SetColorMod(fore.R, fore.G, fore.B)

	iconRect := sdl.Rect{
		X: rect.X + (rect.W-size)/2,
		Y: rect.Y + (rect.H-size)/2,
		W: size,
		H: size,
	}
	r.renderer.Copy(texture, nil, &iconRect)
}

func (r *Renderer) renderSpaceKey(rect sdl.Rect) {
	lineWidth := rect.W / 3
	lineHeight := int32(4)
	lineRect := sdl.Rect{
		X: rect.X + (rect.W-lineWidth)/2,
		Y: rect.Y + (rect.H-lineHeight)/2,
		W: lineWidth,
		H: lineHeight,
	}

	fore := toSDLColor(r.style.ForeColor)
	r.renderer.SetDrawColor(fore.R, fore.G, fore.B, fore.A)
	r.renderer.FillRect(&lineRect)
}

// Close frees the icon textures and the caption font if the renderer
// opened it.
func (r *Renderer) Close() {
	r.destroyIcons()
	if r.ownsFont && r.font != nil {
		r.font.Close()
		r.font = nil
	}
}
