package fgtypes

import (
	"errors"
	"fmt"
	"image"
	"image/color"
)

var (
	ErrDecode            = errors.New("decode failed")
	ErrMissingMetadata   = errors.New("missing raster dimensions")
	ErrInvalidPixelCount = errors.New("raw byte count is not a multiple of 3")
	ErrEmptyInput        = errors.New("no eligible pixels")
)

// Pixel 表示一个 RGBA 像素
type Pixel struct {
	R, G, B, A uint8
}

// Replacement 标记“已判定为背景”，只按四个通道完全相等比较
var Replacement = Pixel{}

// RGBA 实现 color.Color
func (p Pixel) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{R: p.R, G: p.G, B: p.B, A: p.A}.RGBA()
}

func (p Pixel) IsReplacement() bool {
	return p == Replacement
}

// Hex 返回 #rrggbb 形式，忽略 alpha
func (p Pixel) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", p.R, p.G, p.B)
}

// Buffer 行优先存储的像素栅格，len(Pixels) == Width*Height
type Buffer struct {
	Width  int
	Height int
	Pixels []Pixel
}

// NewBuffer 创建全部为 Replacement 的栅格
func NewBuffer(width, height int) (*Buffer, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrMissingMetadata
	}
	return &Buffer{Width: width, Height: height, Pixels: make([]Pixel, width*height)}, nil
}

// FromRGB 将解码器输出的 RGB 三元组序列转成 Buffer
func FromRGB(raw []byte, width, height int) (*Buffer, error) {
	if len(raw)%3 != 0 {
		return nil, ErrInvalidPixelCount
	}
	if width <= 0 || height <= 0 {
		return nil, ErrMissingMetadata
	}
	if len(raw)/3 != width*height {
		return nil, ErrInvalidPixelCount
	}

	buf, err := NewBuffer(width, height)
	if err != nil {
		return nil, err
	}
	for i := range buf.Pixels {
		buf.Pixels[i] = Pixel{R: raw[i*3], G: raw[i*3+1], B: raw[i*3+2], A: 255}
	}
	return buf, nil
}

func (b *Buffer) Len() int {
	return len(b.Pixels)
}

// Coords 下标转坐标
func (b *Buffer) Coords(i int) (x, y int) {
	return i % b.Width, i / b.Width
}

func (b *Buffer) Index(x, y int) int {
	return y*b.Width + x
}

// Clone 深拷贝
func (b *Buffer) Clone() *Buffer {
	pixels := make([]Pixel, len(b.Pixels))
	copy(pixels, b.Pixels)
	return &Buffer{Width: b.Width, Height: b.Height, Pixels: pixels}
}

// Live 统计非 Replacement 像素数
func (b *Buffer) Live() int {
	n := 0
	for _, p := range b.Pixels {
		if !p.IsReplacement() {
			n++
		}
	}
	return n
}

func (b *Buffer) ColorModel() color.Model {
	return color.NRGBAModel
}

func (b *Buffer) Bounds() image.Rectangle {
	return image.Rect(0, 0, b.Width, b.Height)
}

func (b *Buffer) At(x, y int) color.Color {
	if x < 0 || y < 0 || x >= b.Width || y >= b.Height {
		return color.NRGBA{}
	}
	p := b.Pixels[b.Index(x, y)]
	return color.NRGBA{R: p.R, G: p.G, B: p.B, A: p.A}
}

// ToGray 生成黑白掩码图：黑=前景，白=背景
func ToGray(b *Buffer) *image.Gray {
	mask := image.NewGray(b.Bounds())
	for i, p := range b.Pixels {
		x, y := b.Coords(i)
		if p.IsReplacement() {
			mask.SetGray(x, y, color.Gray{Y: 255})
		} else {
			mask.SetGray(x, y, color.Gray{Y: 0})
		}
	}
	return mask
}
