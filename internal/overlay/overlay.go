// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package overlay rasterizes watermark text into a transparent PNG: the
// text is drawn in the requested color and opacity with the embedded Go
// font, then rotated about its center.
package overlay

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"
	"strconv"
	"strings"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/f64"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/unicode/norm"
)

// renderDPI oversamples the glyphs so the overlay stays sharp when the
// codec scales it to the page.
const renderDPI = 144

// Spec describes one overlay.
type Spec struct {
	Text     string
	Color    color.NRGBA
	Angle    float64 // degrees, counter-clockwise
	Opacity  float64 // 0..1
	FontSize float64 // points
}

// ParseColor parses #RRGGBB or #RGB into an opaque color.
func ParseColor(s string) (color.NRGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return color.NRGBA{}, fmt.Errorf("invalid color %q: want #RRGGBB", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return color.NRGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}

// Render draws s and returns it PNG-encoded.
func Render(s Spec) ([]byte, error) {
	img, err := Draw(s)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encoding overlay: %w", err)
	}
	return buf.Bytes(), nil
}

// Draw renders s into an image sized to the rotated text.
func Draw(s Spec) (*image.NRGBA, error) {
	text := norm.NFC.String(strings.TrimSpace(s.Text))
	if text == "" {
		return nil, fmt.Errorf("overlay text is empty")
	}
	if s.FontSize <= 0 {
		return nil, fmt.Errorf("invalid font size %v", s.FontSize)
	}
	if s.Opacity <= 0 || s.Opacity > 1 {
		return nil, fmt.Errorf("invalid opacity %v: want (0, 1]", s.Opacity)
	}

	face, err := newFace(s.FontSize)
	if err != nil {
		return nil, err
	}
	defer face.Close()

	flat := drawText(face, text, withOpacity(s.Color, s.Opacity))
	return rotate(flat, s.Angle), nil
}

func newFace(size float64) (font.Face, error) {
	f, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parsing embedded font: %w", err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     renderDPI,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("creating font face: %w", err)
	}
	return face, nil
}

func withOpacity(c color.NRGBA, opacity float64) color.NRGBA {
	c.A = uint8(math.Round(opacity * 255))
	return c
}

// drawText renders text on a transparent canvas with a small margin.
func drawText(face font.Face, text string, c color.NRGBA) *image.NRGBA {
	metrics := face.Metrics()
	ascent := metrics.Ascent.Ceil()
	height := ascent + metrics.Descent.Ceil()
	width := font.MeasureString(face, text).Ceil()
	pad := height / 4

	img := image.NewNRGBA(image.Rect(0, 0, width+2*pad, height+2*pad))
	d := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.P(pad, pad+ascent),
	}
	d.DrawString(text)
	return img
}

// rotate turns src counter-clockwise by deg about its center onto a
// canvas just large enough to hold the result.
func rotate(src *image.NRGBA, deg float64) *image.NRGBA {
	if math.Mod(deg, 360) == 0 {
		return src
	}
	rad := deg * math.Pi / 180
	sin, cos := math.Sin(rad), math.Cos(rad)

	w := float64(src.Bounds().Dx())
	h := float64(src.Bounds().Dy())
	dw := math.Ceil(math.Abs(w*cos) + math.Abs(h*sin))
	dh := math.Ceil(math.Abs(w*sin) + math.Abs(h*cos))
	dst := image.NewNRGBA(image.Rect(0, 0, int(dw), int(dh)))

	// Image y grows downward, so a visual counter-clockwise turn is
	// x' = cos*x + sin*y, y' = -sin*x + cos*y about the centers.
	cx, cy := w/2, h/2
	dx, dy := dw/2, dh/2
	m := f64.Aff3{
		cos, sin, dx - (cos*cx + sin*cy),
		-sin, cos, dy - (-sin*cx + cos*cy),
	}
	draw.BiLinear.Transform(dst, m, src, src.Bounds(), draw.Over, nil)
	return dst
}
