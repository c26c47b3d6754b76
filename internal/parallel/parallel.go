// Package parallel is the bulk-synchronous runtime substrate the julienne
// bucketing core is built on: a bounded worker pool driving a block-parallel
// for loop, plus the reduce and compact-filter primitives the core needs.
//
// It plays the role the original C++ source leaves to its host runtime
// (parallel_for, pbbs::reduce, pbbs::scan_add, pbbs::filterf, worker ids
// via __cilkrts_get_worker_number): every public operation here is one
// self-contained parallel phase that blocks the caller until complete,
// exactly the bulk-synchronous model julienne's core relies on between its
// own sub-steps (histogram -> prefix sum -> resize -> scatter -> commit).
package parallel

import "golang.org/x/sync/errgroup"

// Pool runs block-parallel work over a fixed number of worker goroutines,
// grounded on the teacher's own worker/dispatch shape in
// builder_parallel.go (initParallelWorkers/runWorker), adapted from a
// long-lived channel pipeline to a simpler per-call errgroup with a
// concurrency limit, since julienne's phases are short bulk-synchronous
// calls rather than a streaming pipeline.
type Pool struct {
	workers int
}

// New creates a pool with the given worker count. A count <= 1 means every
// For/Reduce/Compact call degenerates to sequential execution.
func New(workers int) *Pool {
	if workers < 1 {
		workers = 1
	}
	return &Pool{workers: workers}
}

// Workers returns the configured worker count.
func (p *Pool) Workers() int { return p.workers }

// numBlocks picks a block count for n items, following the source's own
// rule (block count rounded up to a power of two, sized so each block is
// a few thousand items) but clamped to the pool's worker count so we never
// spin up more goroutines than can run concurrently.
func numBlocks(n, workers int) int {
	if n <= 0 {
		return 0
	}
	b := (n + 4095) / 4096
	if b < 1 {
		b = 1
	}
	p2 := 1
	for p2 < b {
		p2 <<= 1
	}
	b = p2
	if b > workers {
		b = workers
	}
	if b > n {
		b = n
	}
	return b
}

// For partitions [0, n) into contiguous blocks and runs body(workerID, lo,
// hi) for each block on the pool, blocking until every block completes.
// workerID is this call's block index, not a persistent goroutine identity
// — Go has no goroutine-local storage analogous to Cilk's
// __cilkrts_get_worker_number, so the id is threaded through the callback
// instead of being queryable from a global.
func (p *Pool) For(n int, body func(workerID, lo, hi int)) {
	if n <= 0 {
		return
	}
	blocks := numBlocks(n, p.workers)
	if blocks <= 1 {
		body(0, 0, n)
		return
	}
	blockSize := (n + blocks - 1) / blocks

	var g errgroup.Group
	g.SetLimit(p.workers)
	for b := 0; b < blocks; b++ {
		lo := b * blockSize
		hi := lo + blockSize
		if hi > n {
			hi = n
		}
		if lo >= hi {
			continue
		}
		blockID := b
		blockLo, blockHi := lo, hi
		g.Go(func() error {
			body(blockID, blockLo, blockHi)
			return nil
		})
	}
	_ = g.Wait() // body never returns an error
}

// NumBlocksFor exposes the block count For would use for n items, so
// callers that need to size per-block scratch storage (the histogram
// array in julienne's blocked counting sort) can match it exactly.
func (p *Pool) NumBlocksFor(n int) int {
	return numBlocks(n, p.workers)
}
