package segment

import (
	"fgtrace/colordist"
	fgtypes "fgtrace/type"
)

// Reconcile 合并两次分类：
//   - 高通判为背景的下标直接丢弃
//   - 离前景均值远、离背景均值也远的像素吸附为前景均值
//   - 其余沿用低通结果
func (e *Engine) Reconcile(original *fgtypes.Buffer, passes Passes, background fgtypes.Pixel) *fgtypes.Buffer {
	p := e.Policy
	fg := passes.Foreground

	return mapPixels(original, p.Workers, func(i int, px fgtypes.Pixel) fgtypes.Pixel {
		if passes.High.Pixels[i].IsReplacement() {
			return fgtypes.Replacement
		}
		if colordist.Exceeds(px, fg, p.RestoreForeground) && colordist.Exceeds(px, background, p.RestoreBackground) {
			return fg
		}
		return passes.Low.Pixels[i]
	})
}
