package parallel

// ExclusiveScan computes the exclusive prefix sum of in, returning a slice
// of len(in)+1 where out[i] is the sum of in[0:i] and out[len(in)] is the
// total. This mirrors pbbs::scan_add's role in the source's update_buckets
// (step 3: turning per-block-per-slot histograms into global offsets).
//
// The array julienne feeds this is O(B*T) — blocks times total_buckets —
// which stays small even for large batches (B is capped at the worker
// count), so a sequential scan is the right tool here: there is no
// ecosystem prefix-sum library in the retrieved pack, and parallelizing a
// scan over a few hundred elements would cost more in goroutine dispatch
// than it saves.
func ExclusiveScan(in []uint32) []uint32 {
	out := make([]uint32, len(in)+1)
	var sum uint32
	for i, v := range in {
		out[i] = sum
		sum += v
	}
	out[len(in)] = sum
	return out
}
