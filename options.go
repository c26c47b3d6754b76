package julienne

import "runtime"

// defaultTotalBuckets is the recommended default from the original paper:
// it trades memory for unpack frequency.
const defaultTotalBuckets = 128

// defaultSeqThreshold is the batch size below which UpdateBuckets falls
// back to a sequential scan instead of spinning up the parallel blocked
// counting sort. Mirrors the role of streamhash's minPoolCapacity-style
// floors: small batches aren't worth the worker dispatch overhead.
const defaultSeqThreshold = 2048

type config struct {
	totalBuckets uint32
	seqThreshold int
	workers      int
}

func defaultConfig() *config {
	return &config{
		totalBuckets: defaultTotalBuckets,
		seqThreshold: defaultSeqThreshold,
		workers:      runtime.GOMAXPROCS(0),
	}
}

// Option configures a Buckets instance at construction time, mirroring the
// functional-option pattern used throughout this codebase's ambient stack.
type Option func(*config)

// WithTotalBuckets overrides the default of 128 materialized slots
// (T = total_buckets, O = T-1 open buckets plus one overflow slot).
func WithTotalBuckets(t uint32) Option {
	return func(c *config) {
		c.totalBuckets = t
	}
}

// WithSeqThreshold overrides the batch size below which UpdateBuckets runs
// sequentially rather than dispatching the parallel blocked counting sort.
func WithSeqThreshold(k int) Option {
	return func(c *config) {
		c.seqThreshold = k
	}
}

// WithWorkers overrides the worker pool size used for parallel bulk
// updates. Defaults to runtime.GOMAXPROCS(0). Passing 1 forces every
// UpdateBuckets call onto the sequential path.
func WithWorkers(n int) Option {
	return func(c *config) {
		c.workers = n
	}
}
