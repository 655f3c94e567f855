package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"fgtrace/config"
	"fgtrace/decode"
	"fgtrace/internal/logger"
	"fgtrace/segment"

	"github.com/rs/zerolog"
)

func main() {

	input := flag.String("input", "", "输入图片路径 (JPEG/PNG/BMP/TIFF/WebP)")
	output := flag.String("output", "output.svg", "输出 SVG 路径")
	jsonPath := flag.String("json", "", "可选：输出路径摘要 JSON")
	policyPath := flag.String("config", "", "可选：TOML 策略文件")
	diagDir := flag.String("diag", "", "可选：写出低通/高通/最终 PNG 的目录")
	useFFmpeg := flag.Bool("ffmpeg", false, "使用外部 ffmpeg 解码")
	workers := flag.Int("workers", 0, "分类阶段协程数，0 表示沿用策略")
	verbose := flag.Bool("v", false, "输出调试日志")

	help := flag.Bool("help", false, "显示帮助信息")
	flag.Parse()
	if *help {
		flag.Usage()
		return
	}
	if *input == "" {
		flag.Usage()
		os.Exit(2)
	}

	level := zerolog.InfoLevel
	if *verbose {
		level = zerolog.DebugLevel
	}
	log := logger.NewConsoleLogger(level)

	policy := config.Default()
	if *policyPath != "" {
		p, err := config.Load(*policyPath)
		if err != nil {
			log.Fatal("config", err)
		}
		policy = p
	}
	if *workers > 0 {
		policy.Workers = *workers
	}

	engine, err := segment.New(policy, log)
	if err != nil {
		log.Fatal("config", err)
	}

	var dec decode.Decoder = decode.Image{}
	if *useFFmpeg {
		dec = decode.FFmpeg{}
	}

	j := job{Input: *input, Output: *output, JSON: *jsonPath, DiagDir: *diagDir}
	if err := run(context.Background(), dec, engine, log, j); err != nil {
		log.Fatal("main", fmt.Errorf("convert %s: %w", *input, err))
	}
}
