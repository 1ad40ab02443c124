// Package parallel provides the fork-join worker pool used to evaluate
// independent search candidates concurrently.
//
// Work items are distributed round-robin over per-worker queues; idle workers
// steal from other queues so that uneven items still balance. Callers get
// their results back in submission order, so any reduction over them is
// independent of worker count and completion order.
package parallel

import (
	"runtime"
	"sync"
)

// WorkerPool is a fixed set of goroutines executing submitted work.
//
// Thread safety: WorkerPool is safe for concurrent use. ExecuteAll may be
// called from several goroutines at once.
type WorkerPool struct {
	// workers is the number of worker goroutines.
	workers int

	// queues holds per-worker work queues.
	queues []chan func()

	// done signals workers to stop.
	done chan struct{}

	// wg waits for all workers to finish.
	wg sync.WaitGroup

	// mu orders submission against Close: submitters hold it for reading,
	// Close takes it for writing before signalling done.
	mu     sync.RWMutex
	closed bool
}

// NewWorkerPool creates a pool with the given number of workers.
// If workers is 0 or negative, GOMAXPROCS is used.
func NewWorkerPool(workers int) *WorkerPool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	queueSize := max(workers*4, 8)

	p := &WorkerPool{
		workers: workers,
		queues:  make([]chan func(), workers),
		done:    make(chan struct{}),
	}
	for i := range workers {
		p.queues[i] = make(chan func(), queueSize)
	}

	p.wg.Add(workers)
	for i := range workers {
		go p.worker(i)
	}

	return p
}

// worker is the main loop for each worker goroutine.
func (p *WorkerPool) worker(id int) {
	defer p.wg.Done()

	own := p.queues[id]
	for {
		select {
		case work := <-own:
			work()
			continue
		default:
		}

		if stolen := p.steal(id); stolen != nil {
			stolen()
			continue
		}

		select {
		case work := <-own:
			work()
		case <-p.done:
			// Anything still queued was submitted before Close; run it.
			for {
				select {
				case work := <-own:
					work()
				default:
					return
				}
			}
		}
	}
}

// steal takes one item from another worker's queue, or returns nil.
func (p *WorkerPool) steal(self int) func() {
	for i := 1; i < p.workers; i++ {
		select {
		case work := <-p.queues[(self+i)%p.workers]:
			return work
		default:
		}
	}
	return nil
}

// ExecuteAll runs every item and returns when all have completed.
// On a closed pool the items run sequentially on the calling goroutine, so
// work is never dropped.
func (p *WorkerPool) ExecuteAll(work []func()) {
	if len(work) == 0 {
		return
	}

	p.mu.RLock()
	if p.closed {
		p.mu.RUnlock()
		for _, fn := range work {
			fn()
		}
		return
	}

	var wg sync.WaitGroup
	wg.Add(len(work))
	for i, fn := range work {
		p.queues[i%p.workers] <- func() {
			defer wg.Done()
			fn()
		}
	}
	p.mu.RUnlock()

	wg.Wait()
}

// Map calls fn(i) for every i in [0, n) on the pool and returns the results
// indexed by i.
func Map[T any](p *WorkerPool, n int, fn func(i int) T) []T {
	results := make([]T, n)
	work := make([]func(), n)
	for i := range n {
		work[i] = func() {
			results[i] = fn(i)
		}
	}
	p.ExecuteAll(work)
	return results
}

// Close stops the workers after they finish queued work.
// Close is safe to call multiple times.
func (p *WorkerPool) Close() {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	p.closed = true
	close(p.done)
	p.mu.Unlock()

	p.wg.Wait()
}

// Workers returns the number of workers in the pool.
func (p *WorkerPool) Workers() int {
	return p.workers
}
