// Package config 负责分割策略参数的默认值、TOML 文件加载与校验
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

var ErrInvalidPolicy = errors.New("invalid policy")

// Policy 分割流程的全部阈值
type Policy struct {
	LowThreshold      uint8 `toml:"low_threshold"`
	HighThreshold     uint8 `toml:"high_threshold"`
	RestoreForeground uint8 `toml:"restore_foreground"`
	RestoreBackground uint8 `toml:"restore_background"`

	// 存活邻居数 <= NeighborThreshold 的像素被去噪
	NeighborThreshold int `toml:"neighbor_threshold"`
	MaxIterations     int `toml:"max_iterations"`

	// 分类与合并阶段按下标区间分片的协程数
	Workers int `toml:"workers"`
}

func Default() Policy {
	return Policy{
		LowThreshold:      40,
		HighThreshold:     120,
		RestoreForeground: 60,
		RestoreBackground: 80,
		NeighborThreshold: 2,
		MaxIterations:     32,
		Workers:           1,
	}
}

// Load 在默认值之上读取 TOML 文件，未知键视为错误
func Load(path string) (Policy, error) {
	p := Default()
	md, err := toml.DecodeFile(path, &p)
	if err != nil {
		return Policy{}, fmt.Errorf("load policy %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Policy{}, fmt.Errorf("%w: unknown keys %s", ErrInvalidPolicy, strings.Join(keys, ", "))
	}
	if err := p.Validate(); err != nil {
		return Policy{}, err
	}
	return p, nil
}

func (p Policy) Validate() error {
	if p.LowThreshold >= p.HighThreshold {
		return fmt.Errorf("%w: low_threshold %d must be below high_threshold %d", ErrInvalidPolicy, p.LowThreshold, p.HighThreshold)
	}
	if p.NeighborThreshold < 0 || p.NeighborThreshold >= 8 {
		return fmt.Errorf("%w: neighbor_threshold %d out of [0,8)", ErrInvalidPolicy, p.NeighborThreshold)
	}
	if p.MaxIterations < 1 {
		return fmt.Errorf("%w: max_iterations must be positive", ErrInvalidPolicy)
	}
	if p.Workers < 1 {
		return fmt.Errorf("%w: workers must be positive", ErrInvalidPolicy)
	}
	return nil
}
