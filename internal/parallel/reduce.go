package parallel

// Reduce computes combine-folded over get(0)..get(n-1), using the pool to
// compute per-block partial reductions in parallel and folding the (few)
// block results sequentially. Grounded on the source's pbbs::reduce usage
// for the INCREASING/DECREASING initial cur_range min/max scan in
// bucket.h's constructor.
func Reduce[T any](p *Pool, n int, identity T, get func(i int) T, combine func(a, b T) T) T {
	if n <= 0 {
		return identity
	}
	blocks := p.NumBlocksFor(n)
	if blocks <= 1 {
		acc := identity
		for i := 0; i < n; i++ {
			acc = combine(acc, get(i))
		}
		return acc
	}

	partials := make([]T, blocks)
	for i := range partials {
		partials[i] = identity
	}
	p.For(n, func(workerID, lo, hi int) {
		acc := identity
		for i := lo; i < hi; i++ {
			acc = combine(acc, get(i))
		}
		partials[workerID] = acc
	})

	acc := identity
	for _, v := range partials {
		acc = combine(acc, v)
	}
	return acc
}

// MinUint32 and MaxUint32 are the two combine functions julienne's range
// arithmetic needs for its initial-window reduction.
func MinUint32(a, b uint32) uint32 {
	if a < b {
		return a
	}
	return b
}

func MaxUint32(a, b uint32) uint32 {
	if a > b {
		return a
	}
	return b
}
