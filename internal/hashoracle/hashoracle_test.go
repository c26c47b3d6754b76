package hashoracle

import "testing"

func TestBucketIsDeterministic(t *testing.T) {
	o := New(42, 100)
	for id := uint32(0); id < 1000; id++ {
		a := o.Bucket(id)
		b := o.Bucket(id)
		if a != b {
			t.Fatalf("id %d: got %d then %d, want deterministic", id, a, b)
		}
		if a >= 100 {
			t.Fatalf("id %d: bucket %d out of range [0, 100)", id, a)
		}
	}
}

func TestDifferentSeedsDiverge(t *testing.T) {
	a := New(1, 1000)
	b := New(2, 1000)
	diverged := false
	for id := uint32(0); id < 256; id++ {
		if a.Bucket(id) != b.Bucket(id) {
			diverged = true
			break
		}
	}
	if !diverged {
		t.Fatal("expected different seeds to produce different mappings somewhere in the sample")
	}
}

func TestWithNullRateProducesSomeNulls(t *testing.T) {
	o := New(7, 50).WithNullRate(0.5)
	nulls := 0
	const n = 10000
	for id := uint32(0); id < n; id++ {
		if o.Bucket(id) == nullBkt {
			nulls++
		}
	}
	if nulls == 0 || nulls == n {
		t.Fatalf("got %d/%d nulls, want a mix", nulls, n)
	}
}

func TestZeroNullRateNeverNull(t *testing.T) {
	o := New(7, 50)
	for id := uint32(0); id < 5000; id++ {
		if o.Bucket(id) == nullBkt {
			t.Fatalf("id %d mapped to null with zero null rate", id)
		}
	}
}
