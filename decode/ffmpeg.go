package decode

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	fgtypes "fgtrace/type"

	ffmpeg "github.com/u2takey/ffmpeg-go"
)

// videoProbe 只关心第一条视频流的尺寸（静态图片在 ffprobe 中也是 video 流）
type videoProbe struct {
	Streams []struct {
		CodecType string `json:"codec_type"`
		Width     int    `json:"width"`
		Height    int    `json:"height"`
	} `json:"streams"`
}

// FFmpeg 调用外部 ffmpeg 将任意格式解成 rgb24 原始数据
type FFmpeg struct{}

func (FFmpeg) DecodeFile(ctx context.Context, path string) (Raster, error) {
	probeStr, err := ffmpeg.Probe(path)
	if err != nil {
		return Raster{}, fmt.Errorf("%w: ffprobe: %w", fgtypes.ErrDecode, err)
	}
	width, height, err := parseProbe(probeStr)
	if err != nil {
		return Raster{}, err
	}

	var out, stderr bytes.Buffer
	cmd := ffmpeg.Input(path).
		Output("pipe:1", ffmpeg.KwArgs{
			"format":  "rawvideo",
			"pix_fmt": "rgb24",
			"vframes": 1,
		}).
		WithOutput(&out).
		WithErrorOutput(&stderr)
	cmd.Context = ctx

	if err := cmd.Run(); err != nil {
		return Raster{}, fmt.Errorf("%w: ffmpeg: %w: %s", fgtypes.ErrDecode, err, stderr.String())
	}

	return Raster{RGB: out.Bytes(), Width: width, Height: height}, nil
}

// parseProbe 从 probe 输出解析宽高
func parseProbe(probeStr string) (int, int, error) {
	var probe videoProbe
	if err := json.Unmarshal([]byte(probeStr), &probe); err != nil {
		return 0, 0, fmt.Errorf("%w: probe json: %w", fgtypes.ErrDecode, err)
	}
	for _, stream := range probe.Streams {
		if stream.CodecType != "video" {
			continue
		}
		if stream.Width > 0 && stream.Height > 0 {
			return stream.Width, stream.Height, nil
		}
	}
	return 0, 0, fgtypes.ErrMissingMetadata
}
