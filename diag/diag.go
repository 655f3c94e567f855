// Package diag 将中间栅格写成 PNG 便于排查，不影响分割结果
package diag

import (
	"fmt"
	"image/png"
	"os"
	"path/filepath"

	"fgtrace/segment"
	fgtypes "fgtrace/type"
)

type Writer struct {
	Dir string
}

// Write 将 buf 写入 Dir/name.png
func (w Writer) Write(name string, buf *fgtypes.Buffer) (string, error) {
	if err := os.MkdirAll(w.Dir, 0o755); err != nil {
		return "", fmt.Errorf("diag dir: %w", err)
	}
	path := filepath.Join(w.Dir, name+".png")
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("diag %s: %w", name, err)
	}

	if err := png.Encode(f, buf); err != nil {
		f.Close()
		return "", fmt.Errorf("encode %s: %w", name, err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close %s: %w", name, err)
	}
	return path, nil
}

// WriteResult 写出低通、高通与最终栅格
func (w Writer) WriteResult(res segment.Result) ([]string, error) {
	stages := []struct {
		name string
		buf  *fgtypes.Buffer
	}{
		{"low", res.Low},
		{"high", res.High},
		{"final", res.Final},
	}

	var paths []string
	for _, s := range stages {
		if s.buf == nil {
			continue
		}
		path, err := w.Write(s.name, s.buf)
		if err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}
