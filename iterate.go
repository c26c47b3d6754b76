package julienne

import (
	"fmt"

	"github.com/graphworks/julienne/internal/parallel"
	"github.com/graphworks/julienne/internal/vset"
)

// Bucket is one emission from NextBucket: a bucket number together with
// the identifiers currently classified into it.
type Bucket struct {
	// Number is the absolute bucket number, or NullBkt on exhaustion.
	Number uint32
	// Identifiers holds the (filtered) contents. Always valid; empty on
	// exhaustion.
	Identifiers vset.Set
	// NumFiltered is the slot's size before the emit-time staleness
	// filter ran — strictly greater than Identifiers.Size() whenever the
	// consumer mutated the oracle without a matching UpdateBuckets call.
	NumFiltered int
}

// NextBucket returns the next non-empty bucket in the configured order.
// Number == NullBkt signals exhaustion, with an empty identifier set.
func (b *Buckets[D]) NextBucket() Bucket {
	for !b.curBucketNonEmpty() && b.numElms > 0 {
		b.advance()
	}
	if b.numElms == 0 {
		return Bucket{Number: NullBkt, Identifiers: vset.Empty}
	}
	return b.getCurBucket()
}

func (b *Buckets[D]) curBucketNonEmpty() bool {
	return b.bkts[b.curBkt].size > 0
}

// advance moves the window cursor to the next slot, unpacking the overflow
// slot into a new range once the cursor runs past the last open slot.
func (b *Buckets[D]) advance() {
	b.curBkt++
	if b.curBkt == b.openBuckets {
		b.unpack()
		b.curBkt = 0
	}
}

// unpack reclassifies the overflow slot's contents under the next range.
// The source's invariant — the overflow slot holds every remaining live
// identifier once S0 has scanned past all open slots — is checked before
// the re-insertion runs; a mismatch means an open slot the cursor already
// scanned past still holds identifiers (for example, an UpdateBuckets call
// routed them into that slot after the scan), and there is no meaningful
// recovery, so this panics rather than returning an error (the same
// abort() the source reaches for the same condition).
func (b *Buckets[D]) unpack() {
	overflow := &b.bkts[b.openBuckets]
	tmp := overflow.drain()
	m := len(tmp)

	if b.order == Increasing {
		b.curRange++
	} else {
		b.curRange--
	}

	if uint64(m) != b.numElms {
		panic(fmt.Sprintf("julienne: bucket structure corrupted: overflow size does not match remaining element count (m=%d, numElms=%d, curBucketNumber=%d)",
			m, b.numElms, b.curBucketNumber()))
	}

	if err := b.updateBuckets(m, func(i int) (uint32, uint32, bool) {
		v := tmp[i]
		return v, b.toRange(b.d.Bucket(v)), true
	}); err != nil {
		panic("julienne: " + err.Error())
	}
	b.numElms -= uint64(m)
}

// getCurBucket drains the current slot, filters out identifiers whose
// oracle mapping no longer matches this bucket's absolute number, and
// packages the survivors. If nothing survives the filter it loops around
// to the next bucket instead of returning an empty one.
func (b *Buckets[D]) getCurBucket() Bucket {
	s := &b.bkts[b.curBkt]
	size := s.size
	b.numElms -= uint64(size)

	curNum := b.curBucketNumber()
	items := s.identifiers()
	survivors := parallel.Compact(b.pool, items, func(id uint32) bool {
		return uint64(b.d.Bucket(id)) == curNum
	})
	s.size = 0

	if len(survivors) == 0 {
		return b.NextBucket()
	}
	return Bucket{
		Number:      uint32(curNum),
		Identifiers: vset.FromSlice(survivors),
		NumFiltered: size,
	}
}
