package sdlsurface

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	"image/png"
	"io/fs"
	"math"
	"os"

	"github.com/BrandonKowalski/bumpbar/pkg/bumpbar"
	"github.com/nfnt/resize"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	"github.com/veandco/go-sdl2/img"
	"github.com/veandco/go-sdl2/sdl"
)

// IconLoader turns menu icon references into textures. SVG icons are
// rasterized at the selected icon size so they stay sharp at rest; draw them
// in white so the theme tint shows through unchanged.
type IconLoader struct {
	renderer *sdl.Renderer
	fsys     fs.FS
	size     int32
	textures []*sdl.Texture
}

// NewIconLoader reads references from fsys, or from disk when fsys is nil.
func NewIconLoader(renderer *sdl.Renderer, fsys fs.FS, size float64) *IconLoader {
	return &IconLoader{
		renderer: renderer,
		fsys:     fsys,
		size:     int32(math.Ceil(size)),
	}
}

func (l *IconLoader) LoadIcon(ref string) (bumpbar.Icon, error) {
	var data []byte
	var err error
	if l.fsys != nil {
		data, err = fs.ReadFile(l.fsys, ref)
	} else {
		data, err = os.ReadFile(ref)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read icon %s: %w", ref, err)
	}

	texture, err := loadImageTexture(l.renderer, data, l.size, l.size)
	if err != nil {
		return nil, fmt.Errorf("failed to load icon %s: %w", ref, err)
	}
	texture.SetBlendMode(sdl.BLENDMODE_BLEND)
	l.textures = append(l.textures, texture)
	return texture, nil
}

// Close destroys every texture the loader handed out.
func (l *IconLoader) Close() {
	for _, t := range l.textures {
		t.Destroy()
	}
	l.textures = nil
}

func isSVG(data []byte) bool {
	head := data[:min(len(data), 512)]
	return bytes.Contains(head, []byte("<svg")) || bytes.Contains(head, []byte("<?xml"))
}

// loadImageTexture loads an image (PNG, JPEG, or SVG) from bytes and creates an SDL texture
func loadImageTexture(renderer *sdl.Renderer, imageData []byte, width, height int32) (*sdl.Texture, error) {
	if isSVG(imageData) {
		return loadSVGTexture(renderer, imageData, width, height)
	}

	scaled, err := scaleRaster(imageData, width, height)
	if err != nil {
		return nil, err
	}
	return loadRasterTexture(renderer, scaled)
}

// scaleRaster shrinks a PNG or JPEG to fit width x height, keeping its aspect
// ratio. Images that already fit are returned untouched.
func scaleRaster(imageData []byte, width, height int32) ([]byte, error) {
	if width <= 0 || height <= 0 {
		return imageData, nil
	}

	src, _, err := image.Decode(bytes.NewReader(imageData))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	bounds := src.Bounds()
	if bounds.Dx() <= int(width) && bounds.Dy() <= int(height) {
		return imageData, nil
	}

	thumb := resize.Thumbnail(uint(width), uint(height), src, resize.Lanczos3)

	var buf bytes.Buffer
	if err := png.Encode(&buf, thumb); err != nil {
		return nil, fmt.Errorf("failed to encode scaled image: %w", err)
	}
	return buf.Bytes(), nil
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

func loadSVGTexture(renderer *sdl.Renderer, svgData []byte, width, height int32) (*sdl.Texture, error) {
	icon, err := oksvg.ReadIconStream(bytes.NewReader(svgData))
	if err != nil {
		return nil, fmt.Errorf("failed to parse SVG: %w", err)
	}

	if width <= 0 || height <= 0 {
		width = int32(icon.ViewBox.W)
		height = int32(icon.ViewBox.H)
	}

	rgba := image.NewRGBA(image.Rect(0, 0, int(width), int(height)))
	scanner := rasterx.NewScannerGV(int(width), int(height), rgba, rgba.Bounds())
	raster := rasterx.NewDasher(int(width), int(height), scanner)

	icon.SetTarget(0, 0, float64(width), float64(height))
	icon.Draw(raster, 1.0)

	var buf bytes.Buffer
	if err := png.Encode(&buf, rgba); err != nil {
		return nil, fmt.Errorf("failed to encode SVG as PNG: %w", err)
	}

	return loadRasterTexture(renderer, buf.Bytes())
}
