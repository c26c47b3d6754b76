package julienne

import (
	julerrors "github.com/graphworks/julienne/errors"
	"github.com/graphworks/julienne/internal/parallel"
)

// UpdateBuckets routes a batch of k (identifier, slot) pairs into the
// window's storage. f(i) yields the i'th pair and whether it exists at
// all (mirroring the source's Maybe<tuple>); slot must already be a slot
// index in [0, openBuckets] or NullBkt, i.e. already mapped through
// GetBucket or toRange by the caller. Pairs with slot == NullBkt are
// dropped. Returns the number of pairs actually inserted.
func (b *Buckets[D]) UpdateBuckets(k int, f func(i int) (id uint32, slot uint32, exists bool)) (int, error) {
	if !b.allocated {
		return 0, julerrors.ErrBucketsDestroyed
	}
	before := b.numElms
	if err := b.updateBuckets(k, f); err != nil {
		return int(b.numElms - before), err
	}
	return int(b.numElms - before), nil
}

// updateBuckets is the dispatcher shared by the public UpdateBuckets, the
// constructor's seeding call, and unpack's re-insertion call. Below
// seqThreshold, or with a single worker, it falls back to a plain
// sequential scan; otherwise it runs the parallel blocked counting sort.
// A slot outside [0, totalBuckets) is a caller contract violation (every
// slot reaching here should already have come from GetBucket or toRange)
// and is reported as ErrSlotOutOfRange rather than left to panic on the
// first out-of-bounds slice access.
func (b *Buckets[D]) updateBuckets(k int, f func(i int) (uint32, uint32, bool)) error {
	if k < b.seqThreshold || b.pool.Workers() == 1 {
		return b.updateBucketsSeq(k, f)
	}
	return b.updateBucketsParallel(k, f)
}

func (b *Buckets[D]) updateBucketsSeq(k int, f func(i int) (uint32, uint32, bool)) error {
	for i := 0; i < k; i++ {
		id, bkt, exists := f(i)
		if !exists || bkt == NullBkt {
			continue
		}
		if bkt >= b.totalBuckets {
			return julerrors.ErrSlotOutOfRange
		}
		s := &b.bkts[bkt]
		s.resize(1)
		s.insert(id, s.size)
		s.commit(1)
		b.numElms++
	}
	return nil
}

// updateBucketsParallel is the blocked counting sort from the source's
// parallel update_buckets: per-block histograms, a slot-major exclusive
// prefix sum to find each (slot, block)'s global offset, a bulk resize per
// slot, a scatter pass that writes each item at its running cursor, and a
// final size commit.
func (b *Buckets[D]) updateBucketsParallel(k int, f func(i int) (uint32, uint32, bool)) error {
	T := int(b.totalBuckets)
	blocks := b.pool.NumBlocksFor(k)
	if blocks < 1 {
		blocks = 1
	}

	// 1. Per-block histograms. Each worker only ever writes its own
	// outOfRange[workerID] slot, so no synchronization is needed to detect
	// a caller-supplied slot outside [0, totalBuckets) across blocks.
	hist := make([][]uint32, blocks)
	outOfRange := make([]bool, blocks)
	for i := range hist {
		hist[i] = make([]uint32, T)
	}
	b.pool.For(k, func(workerID, lo, hi int) {
		h := hist[workerID]
		for j := lo; j < hi; j++ {
			_, bkt, exists := f(j)
			if !exists || bkt == NullBkt {
				continue
			}
			if int(bkt) >= T {
				outOfRange[workerID] = true
				continue
			}
			h[bkt]++
		}
	})
	for _, bad := range outOfRange {
		if bad {
			return julerrors.ErrSlotOutOfRange
		}
	}

	// 2. Flatten in slot-major order (slot 0 across every block, then slot
	// 1, ...) and run an exclusive prefix sum over it.
	flat := make([]uint32, blocks*T)
	for bkt := 0; bkt < T; bkt++ {
		for blk := 0; blk < blocks; blk++ {
			flat[bkt*blocks+blk] = hist[blk][bkt]
		}
	}
	outs := parallel.ExclusiveScan(flat)

	// 3. Resize each slot by its total contribution across all blocks.
	for i := 0; i < T; i++ {
		numInc := outs[(i+1)*blocks] - outs[i*blocks]
		if numInc == 0 {
			continue
		}
		b.bkts[i].resize(int(numInc))
		b.numElms += uint64(numInc)
	}

	// 4. Offset rebase: per (slot, block) insertion cursor, relative to
	// that slot's global start offset and placed after the slot's existing
	// contents (sizes are not committed until step 6).
	cursor := make([][]uint32, T)
	b.pool.For(T, func(_, lo, hi int) {
		for i := lo; i < hi; i++ {
			start := outs[i*blocks]
			base := uint32(b.bkts[i].size)
			row := make([]uint32, blocks)
			for j := 0; j < blocks; j++ {
				row[j] = base + outs[i*blocks+j] - start
			}
			cursor[i] = row
		}
	})

	// 5. Scatter: re-scan blocks, each item lands at its slot's running
	// per-block cursor.
	b.pool.For(k, func(workerID, lo, hi int) {
		for j := lo; j < hi; j++ {
			id, bkt, exists := f(j)
			if !exists || bkt == NullBkt {
				continue
			}
			ind := cursor[bkt][workerID]
			b.bkts[bkt].insert(id, int(ind))
			cursor[bkt][workerID]++
		}
	})

	// 6. Commit sizes.
	for i := 0; i < T; i++ {
		numInc := outs[(i+1)*blocks] - outs[i*blocks]
		if numInc != 0 {
			b.bkts[i].commit(int(numInc))
		}
	}
	return nil
}
