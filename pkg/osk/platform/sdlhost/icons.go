package sdlhost

import (
	"bytes"
	"embed"
	"fmt"
	"image"
	"image/png"

	"github.com/BrandonKowalski/osk/pkg/osk"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	"github.com/veandco/go-sdl2/img"
	"github.com/veandco/go-sdl2/sdl"
)

//go:embed icons/*.svg
var iconFiles embed.FS

var iconNames = map[osk.KeyKind]string{
	osk.KeyBackspace: "icons/backspace.svg",
	osk.KeyDelete:    "icons/delete.svg",
	osk.KeyClear:     "icons/clear.svg",
}

type iconKey struct {
	kind osk.KeyKind
	size int32
}

// iconTexture returns the cached icon texture for kind at size, rasterising
// it on first use. Kinds without an icon return nil.
func (r *Renderer) iconTexture(kind osk.KeyKind, size int32) (*sdl.Texture, error) {
	name, ok := iconNames[kind]
	if !ok || size <= 0 {
		return nil, nil
	}

	key := iconKey{kind: kind, size: size}
	if texture, ok := r.icons[key]; ok {
		return texture, nil
	}

	data, err := iconFiles.ReadFile(name)
	if err != nil {
		return nil, err
	}

	texture, err := loadSVGTexture(r.renderer, data, size, size)
	if err != nil {
		return nil, fmt.Errorf("icon %s: %w", name, err)
	}
	r.icons[key] = texture
	return texture, nil
}

func (r *Renderer) destroyIcons() {
	for key, texture := range r.icons {
		texture.Destroy()
		delete(r.icons, key)
	}
}

func loadRasterTexture(renderer *sdl.Renderer, imageData []byte) (*sdl.Texture, error) {
	rw, err := sdl.RWFromMem(imageData)
	if err != nil {
		return nil, fmt.Errorf("failed to create RWops from image data: %w", err)
	}
	texture, err := img.LoadTextureRW(renderer, rw, true)
	if err != nil {
		return nil, fmt.Errorf("failed to load texture from image data: %w", err)
	}
	return texture, nil
}

// loadSVGTexture rasterizes an SVG and creates an SDL texture
func loadSVGTexture(renderer *sdl.Renderer, svgData []byte, width, height int32) (*sdl.Texture, error) {
	icon, err := oksvg.ReadIconStream(bytes.NewReader(svgData))
	if err != nil {
		return nil, fmt.Errorf("failed to parse SVG: %w", err)
	}

	canvas := image.NewRGBA(image.Rect(0, 0, int(width), int(height)))
	scanner := rasterx.NewScannerGV(int(width), int(height), canvas, canvas.Bounds())
	raster := rasterx.NewDasher(int(width), int(height), scanner)

	icon.SetTarget(0, 0, float64(width), float64(height))
	icon.Draw(raster, 1.0)

	var buf bytes.Buffer
	if err := png.Encode(&buf, canvas); err != nil {
		return nil, fmt.Errorf("failed to encode SVG as PNG: %w", err)
	}

	return loadRasterTexture(renderer, buf.Bytes())
}
