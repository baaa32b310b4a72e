package parallel

import (
	"sync/atomic"
	"testing"
)

func TestFor_CoversAllIndices(t *testing.T) {
	const n = 1000

	var touched [n]int32
	For(n, func(i int) {
		atomic.AddInt32(&touched[i], 1)
	}, DefaultConfig())

	for i, count := range touched {
		if count != 1 {
			t.Fatalf("index %d visited %d times, want 1", i, count)
		}
	}
}

func TestFor_Disabled(t *testing.T) {
	const n = 100

	var touched [n]int32
	For(n, func(i int) {
		touched[i]++
	}, Config{Enabled: false})

	for i, count := range touched {
		if count != 1 {
			t.Fatalf("index %d visited %d times, want 1", i, count)
		}
	}
}

func TestFor_SmallerThanChunk(t *testing.T) {
	// Work below MinChunkSize runs on the calling goroutine.
	cfg := DefaultConfig()

	var sum int32
	For(10, func(i int) {
		atomic.AddInt32(&sum, int32(i))
	}, cfg)

	if sum != 45 {
		t.Errorf("sum = %d, want 45", sum)
	}
}

func TestFor_Empty(t *testing.T) {
	called := false
	For(0, func(i int) { called = true }, DefaultConfig())
	if called {
		t.Error("For(0) should not invoke the body")
	}
}
