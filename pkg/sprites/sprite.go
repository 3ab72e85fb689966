// Package sprites renders a record's artwork as terminal half-block art.
package sprites

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg"
	_ "image/png"
	"net/http"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/image/draw"
)

var ErrNoImage = errors.New("record has no image")

const (
	upperHalf = "▀"
	lowerHalf = "▄"
)

// Renderer downloads sprites and fits them into a box of cells. Each cell
// holds two vertical pixels.
type Renderer struct {
	client *http.Client
	Width  int
	Height int
}

func NewRenderer(client *http.Client, width, height int) *Renderer {
	if client == nil {
		client = http.DefaultClient
	}
	return &Renderer{
		client: client,
		Width:  width,
		Height: height,
	}
}

// Fetch downloads and decodes the image at url.
func (r *Renderer) Fetch(ctx context.Context, url string) (image.Image, error) {
	if url == "" {
		return nil, ErrNoImage
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to download sprite: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("failed to download sprite: %s", resp.Status)
	}

	img, _, err := image.Decode(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to decode sprite: %w", err)
	}
	return img, nil
}

// Render downloads the sprite and returns it as half-block art.
func (r *Renderer) Render(ctx context.Context, url string) (string, error) {
	img, err := r.Fetch(ctx, url)
	if err != nil {
		return "", err
	}
	return HalfBlocks(Fit(img, r.Width, r.Height*2)), nil
}

// Fit scales img down to fit within maxWidth x maxHeight pixels, keeping the
// aspect ratio. Smaller images are returned unchanged.
func Fit(img image.Image, maxWidth, maxHeight int) image.Image {
	bounds := img.Bounds()
	width, height := fitDimensions(bounds.Dx(), bounds.Dy(), maxWidth, maxHeight)
	if width == bounds.Dx() && height == bounds.Dy() {
		return img
	}

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
	return dst
}

func fitDimensions(width, height, maxWidth, maxHeight int) (int, int) {
	if width <= maxWidth && height <= maxHeight {
		return width, height
	}

	widthScale := float64(maxWidth) / float64(width)
	heightScale := float64(maxHeight) / float64(height)

	scale := widthScale
	if heightScale < widthScale {
		scale = heightScale
	}

	w := int(float64(width) * scale)
	h := int(float64(height) * scale)
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return w, h
}

// HalfBlocks draws two pixel rows per text line. Transparent pixels are left
// blank so the art sits on the surrounding background.
func HalfBlocks(img image.Image) string {
	bounds := img.Bounds()

	var b strings.Builder
	for y := bounds.Min.Y; y < bounds.Max.Y; y += 2 {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			top, topOK := opaque(img.At(x, y))
			var bottom lipgloss.Color
			bottomOK := false
			if y+1 < bounds.Max.Y {
				bottom, bottomOK = opaque(img.At(x, y+1))
			}

			switch {
			case topOK && bottomOK:
				b.WriteString(lipgloss.NewStyle().Foreground(top).Background(bottom).Render(upperHalf))
			case topOK:
				b.WriteString(lipgloss.NewStyle().Foreground(top).Render(upperHalf))
			case bottomOK:
				b.WriteString(lipgloss.NewStyle().Foreground(bottom).Render(lowerHalf))
			default:
				b.WriteString(" ")
			}
		}
		if y+2 < bounds.Max.Y {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func opaque(c color.Color) (lipgloss.Color, bool) {
	r, g, b, a := c.RGBA()
	if a < 0x8000 {
		return "", false
	}
	return lipgloss.Color(fmt.Sprintf("#%02X%02X%02X", r>>8, g>>8, b>>8)), true
}
