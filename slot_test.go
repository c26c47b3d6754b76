package julienne

import "testing"

func TestSlotResizeGrowsWithoutTouchingSize(t *testing.T) {
	var s slot
	s.resize(5)
	if s.size != 0 {
		t.Fatalf("size = %d, want 0", s.size)
	}
	if len(s.data) < 5 {
		t.Fatalf("capacity = %d, want >= 5", len(s.data))
	}
}

func TestSlotInsertCommitIdentifiers(t *testing.T) {
	var s slot
	s.resize(3)
	s.insert(10, 0)
	s.insert(20, 1)
	s.insert(30, 2)
	s.commit(3)

	got := s.identifiers()
	want := []uint32{10, 20, 30}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestSlotResizePreservesExistingContents(t *testing.T) {
	var s slot
	s.resize(2)
	s.insert(1, 0)
	s.insert(2, 1)
	s.commit(2)

	s.resize(10) // forces a grow well beyond the current size
	s.insert(3, 2)
	s.commit(1)

	got := s.identifiers()
	want := []uint32{1, 2, 3}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestSlotDrainResetsSize(t *testing.T) {
	var s slot
	s.resize(2)
	s.insert(7, 0)
	s.insert(8, 1)
	s.commit(2)

	drained := s.drain()
	if len(drained) != 2 || drained[0] != 7 || drained[1] != 8 {
		t.Fatalf("got %v, want [7 8]", drained)
	}
	if s.size != 0 {
		t.Fatalf("size after drain = %d, want 0", s.size)
	}
}

func TestSlotDel(t *testing.T) {
	var s slot
	s.resize(4)
	s.commit(2)
	s.del()
	if s.data != nil || s.size != 0 {
		t.Fatal("del must clear both data and size")
	}
}
