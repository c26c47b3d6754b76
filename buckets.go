// Package julienne implements the work-efficient bucketing structure from
// "Julienne: A Framework for Parallel Graph Algorithms using Work-efficient
// Bucketing" (SPAA'17): a lazily-windowed priority partition over a large
// identifier universe, supporting bulk relocation as priorities change and
// lazy extraction of the next non-empty bucket in increasing or decreasing
// order.
package julienne

import (
	"runtime"

	julerrors "github.com/graphworks/julienne/errors"
	"github.com/graphworks/julienne/internal/parallel"
)

// Oracle maps an identifier to its current bucket number. Implementations
// must be safe to call from multiple goroutines concurrently and should be
// cheap: Bucket is invoked twice per identifier at construction (once for
// the initial-window reduction, once for seeding) and again per identifier
// on every emit or unpack.
type Oracle interface {
	Bucket(id uint32) uint32
}

// Buckets is the bucketing structure. D is monomorphized at compile time,
// the same zero-indirection dispatch the source gets from its template
// parameter.
type Buckets[D Oracle] struct {
	order        BucketOrder
	d            D
	n            int
	totalBuckets uint32
	openBuckets  uint32

	bkts      []slot
	curBkt    uint32
	curRange  uint64
	numElms   uint64
	allocated bool

	pool         *parallel.Pool
	seqThreshold int
}

// Stats is a point-in-time snapshot of the window's bookkeeping state,
// useful for diagnostics and tests without exposing the structure's
// internals directly.
type Stats struct {
	Order                BucketOrder
	RemainingIdentifiers uint64
	CurrentRange         uint64
	CurrentSlot          uint32
	TotalBuckets         uint32
}

// NewBuckets creates a bucketing structure over the identifier universe
// [0, n), seeded by calling d on every identifier. order fixes both the
// initial window and the direction subsequent emits advance in.
//
// By default it materializes 128 slots (127 open buckets plus one
// overflow); override with WithTotalBuckets. WithSeqThreshold and
// WithWorkers tune the parallel bulk-update path.
func NewBuckets[D Oracle](n int, d D, order BucketOrder, opts ...Option) (*Buckets[D], error) {
	if n <= 0 {
		return nil, julerrors.ErrEmptyUniverse
	}
	if uint64(n) >= uint64(NullBkt) {
		return nil, julerrors.ErrIdentifierOverflow
	}
	if order != Increasing && order != Decreasing {
		return nil, julerrors.ErrUnknownOrder
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.totalBuckets < 2 {
		return nil, julerrors.ErrTotalBucketsTooSmall
	}
	if cfg.workers < 1 {
		cfg.workers = runtime.GOMAXPROCS(0)
	}

	b := &Buckets[D]{
		order:        order,
		d:            d,
		n:            n,
		totalBuckets: cfg.totalBuckets,
		openBuckets:  cfg.totalBuckets - 1,
		bkts:         make([]slot, cfg.totalBuckets),
		allocated:    true,
		pool:         parallel.New(cfg.workers),
		seqThreshold: cfg.seqThreshold,
	}

	get := func(i int) uint32 { return d.Bucket(uint32(i)) }
	ob := uint64(b.openBuckets)
	if order == Increasing {
		minB := parallel.Reduce(b.pool, n, NullBkt, get, parallel.MinUint32)
		b.curRange = uint64(minB) / ob
	} else {
		getOrZero := func(i int) uint32 {
			v := d.Bucket(uint32(i))
			if v == NullBkt {
				return 0
			}
			return v
		}
		maxB := parallel.Reduce(b.pool, n, 0, getOrZero, parallel.MaxUint32)
		b.curRange = (uint64(maxB) + ob) / ob
	}

	// Seed every identifier whose bucket is non-null. Identifiers with
	// Bucket(i) == NullBkt are skipped outright rather than routed through
	// toRange, so they are never physically inserted anywhere. toRange
	// always yields a slot in [0, totalBuckets), so ErrSlotOutOfRange here
	// would mean the window arithmetic itself is broken, not a caller
	// mistake — a programming bug worth a panic rather than a buried error.
	if err := b.updateBuckets(n, func(i int) (uint32, uint32, bool) {
		id := uint32(i)
		bkt := d.Bucket(id)
		if bkt != NullBkt {
			bkt = b.toRange(bkt)
		}
		return id, bkt, true
	}); err != nil {
		panic("julienne: " + err.Error())
	}

	return b, nil
}

// Stats returns a snapshot of the structure's current bookkeeping state.
func (b *Buckets[D]) Stats() Stats {
	return Stats{
		Order:                b.order,
		RemainingIdentifiers: b.numElms,
		CurrentRange:         b.curRange,
		CurrentSlot:          b.curBkt,
		TotalBuckets:         b.totalBuckets,
	}
}

// Del releases all slot storage. Idempotent: calling it more than once has
// no effect after the first.
func (b *Buckets[D]) Del() {
	if !b.allocated {
		return
	}
	for i := range b.bkts {
		b.bkts[i].del()
	}
	b.bkts = nil
	b.allocated = false
}
