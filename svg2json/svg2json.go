package svg2json

import (
	"encoding/json"
	"encoding/xml"
	"fmt"

	"fgtrace/color2svg"
)

// Document 描摹结果的路径摘要
type Document struct {
	Width      int      `json:"width"`
	Height     int      `json:"height"`
	Foreground string   `json:"foreground,omitempty"`
	Paths      []string `json:"paths"`
}

// Parse 接收 SVG 数据，返回 viewBox 尺寸和全部 <path> 的 d 属性
func Parse(svgData []byte) (Document, error) {
	paths, err := extractPaths(svgData)
	if err != nil {
		return Document{}, err
	}
	w, h, err := color2svg.ViewBox(svgData)
	if err != nil {
		return Document{}, err
	}
	return Document{Width: w, Height: h, Paths: paths}, nil
}

// JSON 返回缩进后的 JSON
func JSON(doc Document) ([]byte, error) {
	return json.MarshalIndent(doc, "", "  ")
}

// extractPaths 从 SVG 中提取所有 <path> 的 d 属性，包括分组内的
func extractPaths(data []byte) ([]string, error) {
	type Path struct {
		D string `xml:"d,attr"`
	}

	type SVG struct {
		Paths  []Path `xml:"path"`
		Groups []Path `xml:"g>path"`
	}

	var s SVG
	if err := xml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse svg paths: %w", err)
	}

	paths := make([]string, 0, len(s.Paths)+len(s.Groups))
	for _, p := range append(s.Paths, s.Groups...) {
		paths = append(paths, p.D)
	}
	return paths, nil
}
