// Package hashoracle provides a deterministic, allocation-free priority
// oracle backed by xxHash, for tests, benchmarks, and demos that need a
// synthetic identifier -> bucket mapping without holding an explicit
// array. Grounded on the teacher's own use of cespare/xxhash for
// streaming digests, and on internal/bits.FastRange32 for the
// hash-to-range step shared with the teacher's block selection.
package hashoracle

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"

	"github.com/graphworks/julienne/internal/bits"
)

// Oracle maps identifier i to FastRange32(hash(seed, i), numBuckets), deterministically
// and without any backing storage. A fraction of identifiers, selected by
// nullRate (in [0, 1]), are mapped to julienne.NullBkt instead — useful for
// exercising the null-bucket-identifier path in tests without a fixed table.
type Oracle struct {
	seed       uint64
	numBuckets uint32
	nullRate   float64
}

// New creates an Oracle producing bucket numbers in [0, numBuckets).
func New(seed uint64, numBuckets uint32) Oracle {
	return Oracle{seed: seed, numBuckets: numBuckets}
}

// WithNullRate returns a copy of o that additionally maps roughly
// nullRate's fraction of identifiers to the null bucket. nullRate is
// clamped to [0, 1].
func (o Oracle) WithNullRate(nullRate float64) Oracle {
	if nullRate < 0 {
		nullRate = 0
	}
	if nullRate > 1 {
		nullRate = 1
	}
	o.nullRate = nullRate
	return o
}

const nullBkt = ^uint32(0)

// Bucket implements julienne.Oracle.
func (o Oracle) Bucket(id uint32) uint32 {
	h := o.hash(id)
	if o.nullRate > 0 {
		// Reuse the low 32 bits to decide nullness: FastRange32's
		// multiply-high selects the bucket from the high end of the digest,
		// so the low bits barely influence the bucket choice.
		frac := float64(uint32(h)) / float64(^uint32(0))
		if frac < o.nullRate {
			return nullBkt
		}
	}
	return bits.FastRange32(h, o.numBuckets)
}

func (o Oracle) hash(id uint32) uint64 {
	var buf [12]byte
	binary.LittleEndian.PutUint64(buf[0:8], o.seed)
	binary.LittleEndian.PutUint32(buf[8:12], id)
	return xxhash.Sum64(buf[:])
}
