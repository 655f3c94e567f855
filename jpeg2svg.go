package main

import (
	"context"
	"fmt"
	"os"

	"fgtrace/color2svg"
	"fgtrace/decode"
	"fgtrace/diag"
	"fgtrace/internal/logger"
	"fgtrace/segment"
	"fgtrace/svg2json"
)

type job struct {
	Input   string
	Output  string
	JSON    string
	DiagDir string
}

// ConvertJPEG 解码 JPEG 字节并返回前景描摹后的 SVG
func ConvertJPEG(data []byte, engine *segment.Engine) ([]byte, error) {
	raster, err := decode.Image{}.Decode(data)
	if err != nil {
		return nil, err
	}
	buf, err := raster.Buffer()
	if err != nil {
		return nil, err
	}
	res, err := engine.Segment(buf)
	if err != nil {
		return nil, err
	}
	tr, err := color2svg.ConvertToSVG(res.Final)
	if err != nil {
		return nil, err
	}
	return tr.SVG, nil
}

func run(ctx context.Context, dec decode.Decoder, engine *segment.Engine, log logger.Logger, j job) error {
	log.Info("main", "decoding", map[string]interface{}{"input": j.Input})
	raster, err := dec.DecodeFile(ctx, j.Input)
	if err != nil {
		return err
	}
	buf, err := raster.Buffer()
	if err != nil {
		return err
	}

	log.Info("main", "segmenting", map[string]interface{}{"width": buf.Width, "height": buf.Height})
	res, err := engine.Segment(buf)
	if err != nil {
		return err
	}

	if j.DiagDir != "" {
		paths, err := diag.Writer{Dir: j.DiagDir}.WriteResult(res)
		if err != nil {
			log.Error("diag", err, nil)
		} else {
			log.Debug("diag", "written", map[string]interface{}{"files": paths})
		}
	}

	log.Info("main", "tracing", map[string]interface{}{"foreground_pixels": res.Final.Live()})
	tr, err := color2svg.ConvertToSVG(res.Final)
	if err != nil {
		return err
	}
	if err := os.WriteFile(j.Output, tr.SVG, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", j.Output, err)
	}

	if j.JSON != "" {
		doc, err := svg2json.Parse(tr.SVG)
		if err != nil {
			return err
		}
		doc.Foreground = res.Foreground.Hex()
		data, err := svg2json.JSON(doc)
		if err != nil {
			return err
		}
		if err := os.WriteFile(j.JSON, data, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", j.JSON, err)
		}
	}

	log.Info("main", "done", map[string]interface{}{
		"output":     j.Output,
		"paths":      tr.Paths,
		"iterations": res.Iterations,
	})
	return nil
}
