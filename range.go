package julienne

// toRange maps an absolute bucket number to a slot in [0, openBuckets], or
// NullBkt if it falls in the direction of the window already processed.
// Ported verbatim from the source's to_range: there is no special case for
// bkt == NullBkt. GetBucket ignores the result when prev == NullBkt, but in
// Increasing order a NullBkt next (in GetBucket) or a NullBkt oracle value
// (in unpack's re-insertion) maps to the overflow slot unless the window
// has reached NullBkt itself; in Decreasing order it maps to NullBkt.
func (b *Buckets[D]) toRange(bkt uint32) uint32 {
	ob := uint64(b.openBuckets)
	if b.order == Increasing {
		if uint64(bkt) < b.curRange*ob {
			return NullBkt // already processed; filtered out
		}
		if uint64(bkt) < (b.curRange+1)*ob {
			return bkt % b.openBuckets
		}
		return b.openBuckets // overflow
	}
	if uint64(bkt) >= b.curRange*ob {
		return NullBkt // already processed
	}
	if uint64(bkt) >= (b.curRange-1)*ob {
		return (b.openBuckets - (bkt % b.openBuckets)) - 1
	}
	return b.openBuckets // overflow
}

// curBucketNumber recovers the absolute bucket number the current
// (curRange, curBkt) window position corresponds to.
func (b *Buckets[D]) curBucketNumber() uint64 {
	if b.order == Increasing {
		return b.curRange*uint64(b.openBuckets) + uint64(b.curBkt)
	}
	return b.curRange*uint64(b.openBuckets) - uint64(b.curBkt) - 1
}
