// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package overlay

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want color.NRGBA
	}{
		{"#FF0000", color.NRGBA{0xff, 0, 0, 0xff}},
		{"#00ff80", color.NRGBA{0, 0xff, 0x80, 0xff}},
		{"#abc", color.NRGBA{0xaa, 0xbb, 0xcc, 0xff}},
		{" 808080 ", color.NRGBA{0x80, 0x80, 0x80, 0xff}},
	}
	for _, tt := range tests {
		got, err := ParseColor(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	for _, bad := range []string{"", "#12", "#GGGGGG", "#1234567"} {
		_, err := ParseColor(bad)
		assert.Error(t, err, bad)
	}
}

// opaqueBounds returns the bounding box of pixels with non-zero alpha and
// the highest alpha seen.
func opaqueBounds(img image.Image) (image.Rectangle, uint32) {
	var box image.Rectangle
	var maxA uint32
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			_, _, _, a := img.At(x, y).RGBA()
			if a == 0 {
				continue
			}
			if a > maxA {
				maxA = a
			}
			box = box.Union(image.Rect(x, y, x+1, y+1))
		}
	}
	return box, maxA
}

func TestRender_PNG(t *testing.T) {
	data, err := Render(Spec{
		Text: "DRAFT", Color: color.NRGBA{0xff, 0, 0, 0xff}, Opacity: 0.5, FontSize: 24,
	})
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)

	box, maxA := opaqueBounds(img)
	require.False(t, box.Empty(), "text pixels drawn")
	assert.Greater(t, box.Dx(), box.Dy(), "horizontal text is wider than tall")

	// Opacity caps alpha at about half.
	assert.InDelta(t, 0.5*0xffff, float64(maxA), 0.05*0xffff)
}

func TestDraw_Rotation(t *testing.T) {
	spec := Spec{Text: "WATERMARK", Color: color.NRGBA{0, 0, 0, 0xff}, Opacity: 1, FontSize: 24}

	flat, err := Draw(spec)
	require.NoError(t, err)

	spec.Angle = 90
	upright, err := Draw(spec)
	require.NoError(t, err)

	assert.Greater(t, flat.Bounds().Dx(), flat.Bounds().Dy())
	assert.Greater(t, upright.Bounds().Dy(), upright.Bounds().Dx(), "90 degrees turns the text vertical")

	spec.Angle = 45
	diag, err := Draw(spec)
	require.NoError(t, err)
	box, _ := opaqueBounds(diag)
	assert.False(t, box.Empty())
}

func TestDraw_Invalid(t *testing.T) {
	base := Spec{Text: "x", Color: color.NRGBA{A: 0xff}, Opacity: 0.3, FontSize: 12}

	s := base
	s.Text = "   "
	_, err := Draw(s)
	assert.Error(t, err)

	s = base
	s.FontSize = 0
	_, err = Draw(s)
	assert.Error(t, err)

	s = base
	s.Opacity = 1.5
	_, err = Draw(s)
	assert.Error(t, err)
}
