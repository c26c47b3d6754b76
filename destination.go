package julienne

// GetBucket computes the slot an identifier should move to given its prior
// bucket number and its new one, or NullBkt if no physical re-insertion is
// needed. A pure helper: it reads the current window position but never
// mutates it.
//
// The identifier needs no re-insertion when prev and next fall in the same
// open slot and that slot isn't the one currently being drained — it is
// already sitting in the right place. The nb == cur_bkt clause handles the
// case where the consumer just extracted that exact bucket: its storage
// was just zeroed, so even an unchanged mapping must be physically
// reinserted.
func (b *Buckets[D]) GetBucket(prev, next uint32) uint32 {
	pb := b.toRange(prev)
	nb := b.toRange(next)
	if nb != NullBkt && (prev == NullBkt || pb != nb || nb == b.curBkt) {
		return nb
	}
	return NullBkt
}
