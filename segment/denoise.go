package segment

import (
	fgtypes "fgtrace/type"
)

var neighborOffsets = [8][2]int{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// LiveNeighbors 统计 snapshot 中 (x,y) 的 8 邻域内非 Replacement 像素数，越界邻居不计
func LiveNeighbors(snapshot *fgtypes.Buffer, x, y int) int {
	n := 0
	for _, d := range neighborOffsets {
		nx, ny := x+d[0], y+d[1]
		if nx < 0 || ny < 0 || nx >= snapshot.Width || ny >= snapshot.Height {
			continue
		}
		if !snapshot.Pixels[snapshot.Index(nx, ny)].IsReplacement() {
			n++
		}
	}
	return n
}

// DenoiseStep 执行一轮去噪：只读 snapshot，只写 working，返回改动像素数
func DenoiseStep(snapshot, working *fgtypes.Buffer, threshold, workers int) int {
	changed := make([]int, max(workers, 1))

	forShards(snapshot.Height, workers, func(s, lo, hi int) {
		for y := lo; y < hi; y++ {
			for x := 0; x < snapshot.Width; x++ {
				i := snapshot.Index(x, y)
				if snapshot.Pixels[i].IsReplacement() {
					continue
				}
				if LiveNeighbors(snapshot, x, y) <= threshold {
					working.Pixels[i] = fgtypes.Replacement
					changed[s]++
				}
			}
		}
	})

	total := 0
	for _, c := range changed {
		total += c
	}
	return total
}

// Denoise 反复去除孤立像素，直到某轮无改动或达到 maxIterations，
// 返回新 Buffer 与实际执行的轮数
func Denoise(buf *fgtypes.Buffer, threshold, maxIterations, workers int) (*fgtypes.Buffer, int) {
	working := buf.Clone()
	snapshot := buf.Clone()

	iterations := 0
	for iterations < maxIterations {
		copy(snapshot.Pixels, working.Pixels)
		iterations++
		if DenoiseStep(snapshot, working, threshold, workers) == 0 {
			break
		}
	}
	return working, iterations
}
