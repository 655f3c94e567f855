package segment

import (
	"sync"

	fgtypes "fgtrace/type"
)

// forShards 将 [0,n) 切成至多 workers 段并行执行，shard 为段序号；workers<=1 时串行
func forShards(n, workers int, fn func(shard, lo, hi int)) {
	if workers <= 1 || n < workers {
		fn(0, 0, n)
		return
	}

	size := (n + workers - 1) / workers
	var wg sync.WaitGroup
	for s, lo := 0, 0; lo < n; s, lo = s+1, lo+size {
		hi := min(lo+size, n)
		wg.Add(1)
		go func(s, lo, hi int) {
			defer wg.Done()
			fn(s, lo, hi)
		}(s, lo, hi)
	}
	wg.Wait()
}

// mapPixels 逐像素生成新 Buffer，各下标之间无依赖
func mapPixels(src *fgtypes.Buffer, workers int, fn func(i int, p fgtypes.Pixel) fgtypes.Pixel) *fgtypes.Buffer {
	out := &fgtypes.Buffer{Width: src.Width, Height: src.Height, Pixels: make([]fgtypes.Pixel, len(src.Pixels))}
	forShards(len(src.Pixels), workers, func(_, lo, hi int) {
		for i := lo; i < hi; i++ {
			out.Pixels[i] = fn(i, src.Pixels[i])
		}
	})
	return out
}
