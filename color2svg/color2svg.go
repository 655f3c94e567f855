package color2svg

import (
	"bytes"
	"fmt"
	"image"
	"strconv"
	"strings"

	fgtypes "fgtrace/type"

	"github.com/gotranspile/gotrace"
	"github.com/rustyoz/svg"
)

// Trace 一次描摹的结果
type Trace struct {
	SVG    []byte
	Paths  int
	Width  int
	Height int
}

// ConvertToSVG 将最终掩码栅格描摹成 SVG，非 Replacement 像素视为前景
func ConvertToSVG(final *fgtypes.Buffer) (Trace, error) {
	mask := fgtypes.ToGray(final)
	data, paths, err := traceGrayToSVG(mask)
	if err != nil {
		return Trace{}, err
	}

	w, h, err := ViewBox(data)
	if err != nil {
		return Trace{}, err
	}
	return Trace{SVG: data, Paths: paths, Width: w, Height: h}, nil
}

// traceGrayToSVG 核心：使用 gotrace 将 image.Gray 转 SVG，默认描摹参数
func traceGrayToSVG(mask *image.Gray) ([]byte, int, error) {
	bm := gotrace.BitmapFromGray(mask, nil)

	paths, err := gotrace.Trace(bm, nil)
	if err != nil {
		return nil, 0, fmt.Errorf("trace: %w", err)
	}

	var buf bytes.Buffer
	sz := mask.Bounds().Size()
	if err := gotrace.Render("svg", nil, &buf, paths, sz.X, sz.Y); err != nil {
		return nil, 0, fmt.Errorf("render svg: %w", err)
	}

	return buf.Bytes(), len(paths), nil
}

// ViewBox 从 SVG 读取 viewBox 的宽高
func ViewBox(data []byte) (int, int, error) {
	parsed, err := svg.ParseSvg(string(data), "mask", 1.0)
	if err != nil {
		return 0, 0, fmt.Errorf("parse svg: %w", err)
	}
	split := strings.Fields(strings.ReplaceAll(parsed.ViewBox, ",", " "))
	if len(split) != 4 {
		return 0, 0, fmt.Errorf("parse svg: unexpected viewBox %q", parsed.ViewBox)
	}
	vals := make([]int, 4)
	for idx, s := range split {
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, 0, fmt.Errorf("parse svg viewBox: %w", err)
		}
		vals[idx] = int(f)
	}
	return vals[2], vals[3], nil
}
