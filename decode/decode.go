// Package decode 是解码器边界：把图片字节或文件变成 RGB 三元组序列加宽高
package decode

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"

	fgtypes "fgtrace/type"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Raster 解码结果，RGB 为行优先、每像素 3 字节
type Raster struct {
	RGB    []byte
	Width  int
	Height int
}

// Buffer 经过边界校验后转成 fgtypes.Buffer
func (r Raster) Buffer() (*fgtypes.Buffer, error) {
	return fgtypes.FromRGB(r.RGB, r.Width, r.Height)
}

type Decoder interface {
	DecodeFile(ctx context.Context, path string) (Raster, error)
}

// Image 进程内解码 JPEG/PNG/BMP/TIFF/WebP
type Image struct{}

func (Image) DecodeFile(_ context.Context, path string) (Raster, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Raster{}, fmt.Errorf("%w: %w", fgtypes.ErrDecode, err)
	}
	return Image{}.Decode(data)
}

func (Image) Decode(data []byte) (Raster, error) {
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return Raster{}, fmt.Errorf("%w: %w", fgtypes.ErrDecode, err)
	}
	bounds := img.Bounds()
	if bounds.Empty() {
		return Raster{}, fmt.Errorf("%s image: %w", format, fgtypes.ErrMissingMetadata)
	}
	return Raster{RGB: toRGB(img), Width: bounds.Dx(), Height: bounds.Dy()}, nil
}

func toRGB(img image.Image) []byte {
	bounds := img.Bounds()
	raw := make([]byte, 0, bounds.Dx()*bounds.Dy()*3)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			raw = append(raw, uint8(r>>8), uint8(g>>8), uint8(b>>8))
		}
	}
	return raw
}
