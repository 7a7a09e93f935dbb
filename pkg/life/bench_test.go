package life

import "testing"

// Original window size of the front ends: 200 columns at 16:9.
const (
	benchW = 200
	benchH = benchW * 9 / 16
)

func BenchmarkAdvance(b *testing.B) {
	g := MustNew(benchW, benchH)
	g.Randomize(42)
	b.ReportAllocs()
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		g.Advance()
	}
}

func BenchmarkAdvance512(b *testing.B) {
	g := MustNew(512, 512)
	g.Randomize(42)
	b.ReportAllocs()
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		g.Advance()
	}
}

// Flat buffer, modulo wrap for every neighbor.
func BenchmarkAdvanceModuloWrap(b *testing.B) {
	g := MustNew(benchW, benchH)
	g.Randomize(42)
	w, h := g.w, g.h
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		cur, nxt := g.cur, g.nxt
		for r := 0; r < h; r++ {
			for c := 0; c < w; c++ {
				var count CellState
				for dr := -1; dr <= 1; dr++ {
					for dc := -1; dc <= 1; dc++ {
						if dr == 0 && dc == 0 {
							continue
						}
						nr := (r + dr + h) % h
						nc := (c + dc + w) % w
						count += cur[nr*w+nc]
					}
				}
				nxt[r*w+c] = Rule(cur[r*w+c], int(count))
			}
		}
		g.cur, g.nxt = nxt, cur
	}
}

// Row-of-rows storage with the same branch wrap as Advance.
func BenchmarkAdvanceNested(b *testing.B) {
	flat := MustNew(benchW, benchH)
	flat.Randomize(42)
	cur := make([][]CellState, benchH)
	nxt := make([][]CellState, benchH)
	for r := range cur {
		cur[r] = make([]CellState, benchW)
		nxt[r] = make([]CellState, benchW)
		copy(cur[r], flat.cur[r*benchW:(r+1)*benchW])
	}
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		for r := 0; r < benchH; r++ {
			up, mid, down := cur[prev(r, benchH)], cur[r], cur[next(r, benchH)]
			out := nxt[r]
			for c := 0; c < benchW; c++ {
				left, right := prev(c, benchW), next(c, benchW)
				count := up[left] + up[c] + up[right] + mid[left] + mid[right] + down[left] + down[c] + down[right]
				out[c] = Rule(mid[c], int(count))
			}
		}
		cur, nxt = nxt, cur
	}
}

func BenchmarkRandomize(b *testing.B) {
	g := MustNew(benchW, benchH)
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		g.Randomize(int64(n))
	}
}
