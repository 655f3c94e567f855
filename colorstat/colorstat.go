package colorstat

import (
	"fgtrace/colordist"
	fgtypes "fgtrace/type"
)

// Average 计算所有像素 r,g,b 的算术平均，alpha 固定为 255
func Average(buf *fgtypes.Buffer) (fgtypes.Pixel, error) {
	return average(buf, func(fgtypes.Pixel) bool { return true })
}

// AverageExcluding 跳过与 exclude 完全相等的像素
func AverageExcluding(buf *fgtypes.Buffer, exclude fgtypes.Pixel) (fgtypes.Pixel, error) {
	return average(buf, func(p fgtypes.Pixel) bool { return p != exclude })
}

// AverageExcludingFiltered 跳过 exclude，且只保留与 reference 距离达到 threshold 的像素
func AverageExcludingFiltered(buf *fgtypes.Buffer, exclude, reference fgtypes.Pixel, threshold uint8) (fgtypes.Pixel, error) {
	return average(buf, func(p fgtypes.Pixel) bool {
		return p != exclude && colordist.Exceeds(p, reference, threshold)
	})
}

func average(buf *fgtypes.Buffer, keep func(fgtypes.Pixel) bool) (fgtypes.Pixel, error) {
	if buf == nil {
		return fgtypes.Pixel{}, fgtypes.ErrEmptyInput
	}

	var rSum, gSum, bSum, count uint64
	for _, p := range buf.Pixels {
		if !keep(p) {
			continue
		}
		rSum += uint64(p.R)
		gSum += uint64(p.G)
		bSum += uint64(p.B)
		count++
	}
	if count == 0 {
		return fgtypes.Pixel{}, fgtypes.ErrEmptyInput
	}

	return fgtypes.Pixel{
		R: uint8(rSum / count),
		G: uint8(gSum / count),
		B: uint8(bSum / count),
		A: 255,
	}, nil
}
