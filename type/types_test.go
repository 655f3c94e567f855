package fgtypes

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromRGB(t *testing.T) {
	buf, err := FromRGB([]byte{1, 2, 3, 4, 5, 6}, 2, 1)
	require.NoError(t, err)

	assert.Equal(t, []Pixel{{1, 2, 3, 255}, {4, 5, 6, 255}}, buf.Pixels)
	assert.Equal(t, 2, buf.Width)
	assert.Equal(t, 1, buf.Height)
}

func TestFromRGBErrors(t *testing.T) {
	tests := []struct {
		name string
		raw  []byte
		w, h int
		want error
	}{
		{"not divisible by 3", []byte{1, 2, 3, 4}, 1, 1, ErrInvalidPixelCount},
		{"bad count checked before dims", []byte{1, 2}, 0, 0, ErrInvalidPixelCount},
		{"no dimensions", []byte{1, 2, 3}, 0, 0, ErrMissingMetadata},
		{"dims disagree", []byte{1, 2, 3}, 2, 2, ErrInvalidPixelCount},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromRGB(tt.raw, tt.w, tt.h)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestBufferCoords(t *testing.T) {
	buf, err := NewBuffer(4, 3)
	require.NoError(t, err)

	x, y := buf.Coords(9)
	assert.Equal(t, 1, x)
	assert.Equal(t, 2, y)
	assert.Equal(t, 9, buf.Index(x, y))
	assert.Equal(t, 12, buf.Len())
	assert.Zero(t, buf.Live())
}

func TestReplacementIsExactMatch(t *testing.T) {
	assert.True(t, Pixel{}.IsReplacement())
	assert.False(t, Pixel{A: 1}.IsReplacement())
	assert.False(t, Pixel{R: 1}.IsReplacement())
}

func TestBufferAsImage(t *testing.T) {
	buf := &Buffer{Width: 2, Height: 1, Pixels: []Pixel{{R: 9, G: 8, B: 7, A: 255}, Replacement}}
	var img image.Image = buf

	assert.Equal(t, image.Rect(0, 0, 2, 1), img.Bounds())
	assert.Equal(t, color.NRGBA{R: 9, G: 8, B: 7, A: 255}, img.At(0, 0))
	assert.Equal(t, color.NRGBA{}, img.At(1, 0))
}

func TestToGray(t *testing.T) {
	buf := &Buffer{Width: 2, Height: 1, Pixels: []Pixel{{R: 9, A: 255}, Replacement}}
	mask := ToGray(buf)

	assert.Equal(t, color.Gray{Y: 0}, mask.GrayAt(0, 0))
	assert.Equal(t, color.Gray{Y: 255}, mask.GrayAt(1, 0))
}

func TestCloneDoesNotAlias(t *testing.T) {
	buf := &Buffer{Width: 1, Height: 1, Pixels: []Pixel{{R: 1, A: 255}}}
	clone := buf.Clone()
	clone.Pixels[0] = Replacement

	assert.Equal(t, Pixel{R: 1, A: 255}, buf.Pixels[0])
	assert.Equal(t, 1, buf.Live())
	assert.Zero(t, clone.Live())
}

func TestHex(t *testing.T) {
	assert.Equal(t, "#0a0bff", Pixel{R: 10, G: 11, B: 255, A: 0}.Hex())
	assert.Equal(t, "#000000", Replacement.Hex())
}
