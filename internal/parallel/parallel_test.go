package parallel

import (
	"sync/atomic"
	"testing"
)

func TestChunksCoversRangeExactlyOnce(t *testing.T) {
	cfg := Config{Enabled: true, NumWorkers: 4, MinChunkSize: 8}
	n := 1000

	seen := make([]atomic.Int32, n)
	Chunks(n, func(start, end int) {
		for i := start; i < end; i++ {
			seen[i].Add(1)
		}
	}, cfg)

	for i := range seen {
		if got := seen[i].Load(); got != 1 {
			t.Fatalf("index %d visited %d times, want 1", i, got)
		}
	}
}

func TestChunksSequentialFallback(t *testing.T) {
	cfg := Config{Enabled: true, NumWorkers: 4, MinChunkSize: 100}

	calls := 0
	Chunks(10, func(start, end int) {
		calls++
		if start != 0 || end != 10 {
			t.Errorf("fallback chunk = [%d, %d), want [0, 10)", start, end)
		}
	}, cfg)
	if calls != 1 {
		t.Errorf("small input made %d chunk calls, want 1", calls)
	}
}

func TestChunksZeroLength(t *testing.T) {
	Chunks(0, func(start, end int) {
		t.Error("zero-length range should not invoke f")
	}, DefaultConfig())
}

func TestForSum(t *testing.T) {
	for _, cfg := range []Config{Sequential(), {Enabled: true, NumWorkers: 4, MinChunkSize: 16}} {
		var sum atomic.Int64
		For(100, func(i int) {
			sum.Add(int64(i))
		}, cfg)
		if sum.Load() != 4950 {
			t.Errorf("sum = %d, want 4950 (cfg %+v)", sum.Load(), cfg)
		}
	}
}
