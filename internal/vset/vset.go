// Package vset provides the identifier-set type julienne hands back from
// NextBucket. The core spec (julienne §1) treats the "vertex subset" as an
// external collaborator assumed available with bulk-construction and size
// semantics; this is that collaborator, grounded on the sparse
// representation of VertexSubset in ligra_light.go/ligra_light_parallel.go
// (the dense/bitmap representation is not needed here: every set julienne
// produces already comes from a single contiguous slot array, which is
// sparse by construction).
package vset

// Set is an immutable, already-materialized collection of identifiers.
// Ownership of the backing slice transfers to whoever holds the Set, the
// same "transfer on return" contract the source's vertexSubset has for
// next_bucket's result (julienne §5, Memory ownership) — Go being
// garbage-collected, there is no explicit release: simply let the Set go
// out of scope once you're done with it.
type Set struct {
	ids []uint32
}

// Empty is the zero-size Set shared by every exhausted/filtered-to-nothing
// emission so callers never need a nil check.
var Empty = Set{ids: nil}

// FromSlice wraps an existing slice of identifiers as a Set without
// copying. The caller must not mutate ids after this call.
func FromSlice(ids []uint32) Set {
	return Set{ids: ids}
}

// Size returns the number of identifiers in the set.
func (s Set) Size() int { return len(s.ids) }

// Identifiers returns the underlying identifier slice. Callers must treat
// it as read-only.
func (s Set) Identifiers() []uint32 { return s.ids }

// Apply calls f for every identifier in the set, in slice order. Order is
// the scatter-phase order the slot was filled in, which julienne's
// concurrency model (§5) leaves unspecified across a bucket's contents.
func (s Set) Apply(f func(id uint32)) {
	for _, id := range s.ids {
		f(id)
	}
}
