package diag

import (
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"fgtrace/segment"
	fgtypes "fgtrace/type"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteRoundTrip(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "diag")
	buf := &fgtypes.Buffer{Width: 2, Height: 1, Pixels: []fgtypes.Pixel{{R: 200, G: 10, B: 5, A: 255}, fgtypes.Replacement}}

	path, err := Writer{Dir: dir}.Write("final", buf)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "final.png"), path)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)

	r, g, b, a := img.At(0, 0).RGBA()
	assert.Equal(t, color.NRGBA{R: 200, G: 10, B: 5, A: 255}, color.NRGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: uint8(a >> 8)})
	_, _, _, a = img.At(1, 0).RGBA()
	assert.Zero(t, a)
}

func TestWriteResult(t *testing.T) {
	dir := t.TempDir()
	one := &fgtypes.Buffer{Width: 1, Height: 1, Pixels: []fgtypes.Pixel{{R: 1, A: 255}}}

	paths, err := Writer{Dir: dir}.WriteResult(segment.Result{Low: one, High: one, Final: one})
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "low.png"),
		filepath.Join(dir, "high.png"),
		filepath.Join(dir, "final.png"),
	}, paths)
}

func TestWriteFailsWhenDirIsFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "plain")
	require.NoError(t, os.WriteFile(file, nil, 0o644))
	one := &fgtypes.Buffer{Width: 1, Height: 1, Pixels: []fgtypes.Pixel{{R: 1, A: 255}}}

	_, err := Writer{Dir: file}.Write("final", one)
	assert.Error(t, err)
}
