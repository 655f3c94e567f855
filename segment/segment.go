// Package segment 将解码后的 RGB 栅格分离为前景掩码：
// 背景均值 → 低通/高通两次分类 → 合并 → 邻域密度去噪。
// 每次调用独占自己的缓冲区，不保留跨调用状态。
package segment

import (
	"fmt"

	"fgtrace/colorstat"
	"fgtrace/config"
	"fgtrace/internal/logger"
	fgtypes "fgtrace/type"
)

// Result 一次分割的全部产物，Low/High 仅用于诊断输出
type Result struct {
	Low        *fgtypes.Buffer
	High       *fgtypes.Buffer
	Merged     *fgtypes.Buffer
	Final      *fgtypes.Buffer
	Background fgtypes.Pixel
	Foreground fgtypes.Pixel
	Iterations int
}

type Engine struct {
	Policy config.Policy
	Log    logger.Logger
}

// New 校验策略后创建 Engine，log 为 nil 时不输出日志
func New(policy config.Policy, log logger.Logger) (*Engine, error) {
	if err := policy.Validate(); err != nil {
		return nil, err
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Engine{Policy: policy, Log: log}, nil
}

// Segment 对 original 执行完整的分割流程
func (e *Engine) Segment(original *fgtypes.Buffer) (Result, error) {
	if original == nil || original.Len() == 0 {
		return Result{}, fgtypes.ErrEmptyInput
	}
	if original.Width <= 0 || original.Height <= 0 {
		return Result{}, fgtypes.ErrMissingMetadata
	}
	if original.Len() != original.Width*original.Height {
		return Result{}, fgtypes.ErrInvalidPixelCount
	}

	background, err := colorstat.Average(original)
	if err != nil {
		return Result{}, fmt.Errorf("estimate background: %w", err)
	}
	e.Log.Debug("segment", "background estimated", map[string]interface{}{
		"background": background.Hex(),
		"width":      original.Width,
		"height":     original.Height,
	})

	passes, err := e.Classify(original, background)
	if err != nil {
		return Result{}, err
	}

	merged := e.Reconcile(original, passes, background)
	final, iterations := Denoise(merged, e.Policy.NeighborThreshold, e.Policy.MaxIterations, e.Policy.Workers)

	e.Log.Debug("segment", "denoised", map[string]interface{}{
		"merged_live": merged.Live(),
		"final_live":  final.Live(),
		"iterations":  iterations,
	})

	return Result{
		Low:        passes.Low,
		High:       passes.High,
		Merged:     merged,
		Final:      final,
		Background: background,
		Foreground: passes.Foreground,
		Iterations: iterations,
	}, nil
}
