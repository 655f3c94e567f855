package color2svg

import (
	"testing"

	fgtypes "fgtrace/type"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertToSVGSquare(t *testing.T) {
	buf, err := fgtypes.NewBuffer(16, 12)
	require.NoError(t, err)
	for y := 4; y < 8; y++ {
		for x := 4; x < 10; x++ {
			buf.Pixels[buf.Index(x, y)] = fgtypes.Pixel{R: 255, G: 255, B: 255, A: 255}
		}
	}

	tr, err := ConvertToSVG(buf)
	require.NoError(t, err)
	assert.Contains(t, string(tr.SVG), "<svg")
	assert.Contains(t, string(tr.SVG), "<path")
	assert.GreaterOrEqual(t, tr.Paths, 1)
	assert.Equal(t, 16, tr.Width)
	assert.Equal(t, 12, tr.Height)
}

func TestViewBoxRejectsMissing(t *testing.T) {
	_, _, err := ViewBox([]byte(`<svg xmlns="http://www.w3.org/2000/svg"></svg>`))
	assert.Error(t, err)
}
