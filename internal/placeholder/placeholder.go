// Package placeholder synthesizes fallback card images: a light background
// with the entry title word-wrapped and centered in dark text. The drawing
// capability is optional; constructing the Drawer fails cleanly when the
// embedded typeface cannot be loaded.
package placeholder

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// ErrUnavailable indicates the drawing capability is not present.
var ErrUnavailable = errors.New("placeholder drawer unavailable")

const (
	fontSize  = 48
	fontDPI   = 72
	wrapWidth = 24
)

var (
	background = color.RGBA{R: 245, G: 245, B: 245, A: 255}
	foreground = color.RGBA{R: 20, G: 20, B: 20, A: 255}
)

// Drawer renders placeholder images at a fixed size.
type Drawer struct {
	face   font.Face
	width  int
	height int
}

// New parses the embedded Go Regular typeface and prepares a Drawer. A parse
// failure reports the capability as absent.
func New(width, height int) (*Drawer, error) {
	if width <= 0 {
		width = 1280
	}
	if height <= 0 {
		height = 800
	}
	parsed, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse typeface: %w", err)
	}
	face, err := opentype.NewFace(parsed, &opentype.FaceOptions{
		Size:    fontSize,
		DPI:     fontDPI,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("build face: %w", err)
	}
	return &Drawer{face: face, width: width, height: height}, nil
}

// Render produces a PNG with text centered on the canvas.
func (d *Drawer) Render(text string) ([]byte, error) {
	if d == nil {
		return nil, ErrUnavailable
	}

	canvas := image.NewRGBA(image.Rect(0, 0, d.width, d.height))
	draw.Draw(canvas, canvas.Bounds(), image.NewUniform(background), image.Point{}, draw.Src)

	drawer := &font.Drawer{
		Dst:  canvas,
		Src:  image.NewUniform(foreground),
		Face: d.face,
	}

	lines := Wrap(text, wrapWidth)
	metrics := d.face.Metrics()
	lineHeight := metrics.Height.Ceil()
	total := lineHeight * len(lines)
	y := (d.height-total)/2 + metrics.Ascent.Ceil()

	for _, line := range lines {
		w := drawer.MeasureString(line).Ceil()
		drawer.Dot = fixed.P((d.width-w)/2, y)
		drawer.DrawString(line)
		y += lineHeight
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, canvas); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

// Wrap splits text into lines of at most width characters, breaking on
// whitespace. Words longer than the limit stay on their own line.
func Wrap(text string, width int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return []string{""}
	}
	var lines []string
	current := words[0]
	for _, word := range words[1:] {
		if len(current)+1+len(word) > width {
			lines = append(lines, current)
			current = word
			continue
		}
		current += " " + word
	}
	return append(lines, current)
}
