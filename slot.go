package julienne

// slot is the Go port of the source's dyn_arr<uintE>: a growable,
// contiguous identifier buffer with a logical size distinct from its
// capacity. The updater relies on resize reserving space ahead of need
// while leaving size untouched, so parallel scatter writes by absolute
// offset never race with a concurrent size update (julienne §4.5).
type slot struct {
	data []uint32 // len(data) is the slot's capacity; data[:size] is valid
	size int
}

// minSlotCapacity floors the first allocation so tiny overflow/open slots
// don't thrash through several doublings during warmup.
const minSlotCapacity = 16

// resize ensures the slot can hold delta more identifiers beyond its
// current logical size, growing geometrically. It never shrinks and never
// touches size — callers commit the new size explicitly once writes land.
func (s *slot) resize(delta int) {
	needed := s.size + delta
	if needed <= len(s.data) {
		return
	}
	newCap := len(s.data)
	if newCap < minSlotCapacity {
		newCap = minSlotCapacity
	}
	for newCap < needed {
		newCap *= 2
	}
	grown := make([]uint32, newCap)
	copy(grown, s.data[:s.size])
	s.data = grown
}

// insert writes v at absolute offset within the slot's reserved capacity.
// offset must be within [0, len(s.data)); callers (the sequential path and
// the blocked counting sort's scatter phase) are responsible for having
// called resize first.
func (s *slot) insert(v uint32, offset int) {
	s.data[offset] = v
}

// commit advances the logical size by delta once all writes for this
// update batch have landed (update_buckets step 7: "commit sizes").
func (s *slot) commit(delta int) {
	s.size += delta
}

// identifiers returns the slot's logically valid contents.
func (s *slot) identifiers() []uint32 {
	return s.data[:s.size]
}

// drain zeroes the slot's logical size and returns a copy of the
// identifiers that were in it, matching the source's unpack, which
// allocates a fresh pbbs::sequence and copies the overflow slot's
// contents into it before reusing the slot's storage. The copy is load-
// bearing, not defensive: the returned slice is a separate allocation
// from s.data, so a later resize/insert into this same slot (e.g.
// unpack re-inserting into the overflow slot it just drained) can never
// alias memory the caller is still reading.
func (s *slot) drain() []uint32 {
	out := make([]uint32, s.size)
	copy(out, s.data[:s.size])
	s.size = 0
	return out
}

// del releases the slot's backing storage.
func (s *slot) del() {
	s.data = nil
	s.size = 0
}
