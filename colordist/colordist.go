package colordist

import (
	"math"

	fgtypes "fgtrace/type"
)

// Diff 逐通道取绝对差，alpha 固定为 255
func Diff(a, b fgtypes.Pixel) fgtypes.Pixel {
	return fgtypes.Pixel{
		R: absDiff(a.R, b.R),
		G: absDiff(a.G, b.G),
		B: absDiff(a.B, b.B),
		A: 255,
	}
}

// Magnitude 计算 r,g,b 的欧氏范数，截断后钳制到 [0,255]
func Magnitude(p fgtypes.Pixel) uint8 {
	r, g, b := float64(p.R), float64(p.G), float64(p.B)
	m := math.Sqrt(r*r + g*g + b*b)
	if m >= 255 {
		return 255
	}
	if m <= 0 {
		return 0
	}
	return uint8(m)
}

// Distance 等价于 Magnitude(Diff(a, b))
func Distance(a, b fgtypes.Pixel) uint8 {
	return Magnitude(Diff(a, b))
}

// Exceeds 判断 a 与参考色 b 的距离是否达到阈值
func Exceeds(a, b fgtypes.Pixel, threshold uint8) bool {
	return Distance(a, b) >= threshold
}

func absDiff(a, b uint8) uint8 {
	if a > b {
		return a - b
	}
	return b - a
}
