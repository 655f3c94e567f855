package segment

import (
	"fmt"

	"fgtrace/colordist"
	"fgtrace/colorstat"
	fgtypes "fgtrace/type"
)

// Passes 两次分类的结果
type Passes struct {
	Low        *fgtypes.Buffer
	High       *fgtypes.Buffer
	Foreground fgtypes.Pixel
}

// LowPass 与背景均值距离不足 threshold 的像素标记为 Replacement
func LowPass(original *fgtypes.Buffer, background fgtypes.Pixel, threshold uint8, workers int) *fgtypes.Buffer {
	return mapPixels(original, workers, func(_ int, p fgtypes.Pixel) fgtypes.Pixel {
		if colordist.Exceeds(p, background, threshold) {
			return p
		}
		return fgtypes.Replacement
	})
}

// HighPass 保留与前景均值距离在 threshold 以内的像素，其余为 Replacement
func HighPass(original *fgtypes.Buffer, foreground fgtypes.Pixel, threshold uint8, workers int) *fgtypes.Buffer {
	return mapPixels(original, workers, func(_ int, p fgtypes.Pixel) fgtypes.Pixel {
		if colordist.Exceeds(p, foreground, threshold) {
			return fgtypes.Replacement
		}
		return p
	})
}

// Classify 依次执行低通、前景均值估计与高通
func (e *Engine) Classify(original *fgtypes.Buffer, background fgtypes.Pixel) (Passes, error) {
	p := e.Policy

	low := LowPass(original, background, p.LowThreshold, p.Workers)
	foreground, err := colorstat.AverageExcludingFiltered(low, fgtypes.Replacement, background, p.HighThreshold)
	if err != nil {
		return Passes{}, fmt.Errorf("estimate foreground: %w", err)
	}
	high := HighPass(original, foreground, p.HighThreshold, p.Workers)

	e.Log.Debug("segment", "classified", map[string]interface{}{
		"foreground": foreground.Hex(),
		"low_live":   low.Live(),
		"high_live":  high.Live(),
	})
	return Passes{Low: low, High: high, Foreground: foreground}, nil
}
