package vset

import "testing"

func TestFromSliceSizeAndIdentifiers(t *testing.T) {
	s := FromSlice([]uint32{3, 1, 4, 1, 5})
	if s.Size() != 5 {
		t.Fatalf("Size() = %d, want 5", s.Size())
	}
	got := s.Identifiers()
	want := []uint32{3, 1, 4, 1, 5}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestEmptySet(t *testing.T) {
	if Empty.Size() != 0 {
		t.Fatalf("Empty.Size() = %d, want 0", Empty.Size())
	}
	visited := false
	Empty.Apply(func(uint32) { visited = true })
	if visited {
		t.Fatal("Apply on an empty set must not invoke f")
	}
}

func TestApplyVisitsEveryIdentifier(t *testing.T) {
	s := FromSlice([]uint32{10, 20, 30})
	var sum uint32
	s.Apply(func(id uint32) { sum += id })
	if sum != 60 {
		t.Fatalf("sum = %d, want 60", sum)
	}
}
