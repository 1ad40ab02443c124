package parallel

import (
	"runtime"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

// =============================================================================
// WorkerPool Creation Tests
// =============================================================================

func TestWorkerPool_Create(t *testing.T) {
	pool := NewWorkerPool(4)
	defer pool.Close()

	if pool.Workers() != 4 {
		t.Errorf("Workers() = %d, want 4", pool.Workers())
	}
}

func TestWorkerPool_CreateDefaultWorkers(t *testing.T) {
	for _, n := range []int{0, -5} {
		pool := NewWorkerPool(n)
		if pool.Workers() != runtime.GOMAXPROCS(0) {
			t.Errorf("NewWorkerPool(%d).Workers() = %d, want %d (GOMAXPROCS)", n, pool.Workers(), runtime.GOMAXPROCS(0))
		}
		pool.Close()
	}
}

// =============================================================================
// ExecuteAll Tests
// =============================================================================

func TestWorkerPool_ExecuteAll(t *testing.T) {
	pool := NewWorkerPool(4)
	defer pool.Close()

	var counter atomic.Int64
	numTasks := 100

	work := make([]func(), numTasks)
	for i := range work {
		work[i] = func() {
			counter.Add(1)
		}
	}

	pool.ExecuteAll(work)

	if counter.Load() != int64(numTasks) {
		t.Errorf("counter = %d, want %d", counter.Load(), numTasks)
	}
}

func TestWorkerPool_ExecuteAll_Empty(t *testing.T) {
	pool := NewWorkerPool(4)
	defer pool.Close()

	// Should not panic or block
	pool.ExecuteAll(nil)
	pool.ExecuteAll([]func(){})
}

func TestWorkerPool_ExecuteAll_MoreThanQueueCapacity(t *testing.T) {
	pool := NewWorkerPool(1)
	defer pool.Close()

	var counter atomic.Int64
	work := make([]func(), 1000)
	for i := range work {
		work[i] = func() { counter.Add(1) }
	}

	done := make(chan struct{})
	go func() {
		pool.ExecuteAll(work)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatalf("ExecuteAll blocked, counter = %d", counter.Load())
	}
	if counter.Load() != 1000 {
		t.Errorf("counter = %d, want 1000", counter.Load())
	}
}

func TestWorkerPool_ExecuteAll_UnevenWork(t *testing.T) {
	pool := NewWorkerPool(4)
	defer pool.Close()

	var counter atomic.Int64
	work := make([]func(), 16)
	for i := range work {
		work[i] = func() {
			// Items on worker 0 are slow; others must steal around them.
			if i%4 == 0 {
				time.Sleep(5 * time.Millisecond)
			}
			counter.Add(1)
		}
	}

	pool.ExecuteAll(work)
	if counter.Load() != 16 {
		t.Errorf("counter = %d, want 16", counter.Load())
	}
}

// =============================================================================
// Map Tests
// =============================================================================

func TestMap_PreservesOrder(t *testing.T) {
	pool := NewWorkerPool(3)
	defer pool.Close()

	got := Map(pool, 50, func(i int) int { return i * i })

	if len(got) != 50 {
		t.Fatalf("len = %d, want 50", len(got))
	}
	for i, v := range got {
		if v != i*i {
			t.Errorf("result[%d] = %d, want %d", i, v, i*i)
		}
	}
}

func TestMap_Zero(t *testing.T) {
	pool := NewWorkerPool(2)
	defer pool.Close()

	if got := Map(pool, 0, func(int) string { return "x" }); len(got) != 0 {
		t.Errorf("Map(0) = %v, want empty", got)
	}
}

func TestMap_SameResultForAnyWorkerCount(t *testing.T) {
	single := NewWorkerPool(1)
	want := Map(single, 64, func(i int) int { return (i * 7919) % 101 })
	single.Close()

	for _, workers := range []int{2, 3, 8} {
		pool := NewWorkerPool(workers)
		got := Map(pool, 64, func(i int) int { return (i * 7919) % 101 })
		pool.Close()

		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("workers=%d: result[%d] = %d, want %d", workers, i, got[i], want[i])
			}
		}
	}
}

// =============================================================================
// Close Tests
// =============================================================================

func TestWorkerPool_CloseIdempotent(t *testing.T) {
	pool := NewWorkerPool(4)

	pool.Close()
	pool.Close()
	pool.Close()
}

func TestWorkerPool_ExecuteAfterCloseRunsInline(t *testing.T) {
	pool := NewWorkerPool(4)
	pool.Close()

	var counter atomic.Int64
	pool.ExecuteAll([]func(){
		func() { counter.Add(1) },
		func() { counter.Add(1) },
	})

	if counter.Load() != 2 {
		t.Errorf("counter = %d, want 2", counter.Load())
	}
	if got := Map(pool, 3, func(i int) int { return i + 1 }); got[2] != 3 {
		t.Errorf("Map on closed pool = %v, want [1 2 3]", got)
	}
}

// =============================================================================
// Concurrency Tests
// =============================================================================

func TestWorkerPool_ConcurrentExecuteAll(t *testing.T) {
	pool := NewWorkerPool(4)
	defer pool.Close()

	var counter atomic.Int64
	const (
		goroutines = 10
		perCall    = 50
	)

	var wg sync.WaitGroup
	wg.Add(goroutines)
	for range goroutines {
		go func() {
			defer wg.Done()
			work := make([]func(), perCall)
			for i := range work {
				work[i] = func() { counter.Add(1) }
			}
			pool.ExecuteAll(work)
		}()
	}
	wg.Wait()

	if counter.Load() != goroutines*perCall {
		t.Errorf("counter = %d, want %d", counter.Load(), goroutines*perCall)
	}
}

func TestWorkerPool_CloseDuringExecuteAll(t *testing.T) {
	pool := NewWorkerPool(2)

	var counter atomic.Int64
	work := make([]func(), 200)
	for i := range work {
		work[i] = func() { counter.Add(1) }
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		pool.ExecuteAll(work)
	}()
	pool.Close()
	wg.Wait()

	// Whether the call ran on the pool or inline, nothing is dropped.
	if counter.Load() != 200 {
		t.Errorf("counter = %d, want 200", counter.Load())
	}
}

func BenchmarkMap(b *testing.B) {
	pool := NewWorkerPool(0)
	defer pool.Close()
	b.ResetTimer()
	for range b.N {
		_ = Map(pool, 256, func(i int) int { return i })
	}
}
