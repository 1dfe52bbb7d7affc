package collections

import "testing"

func TestSet(t *testing.T) {
	set := NewSet(1, 2, 2)

	if set.Len() != 2 {
		t.Errorf("Len = %d, want 2", set.Len())
	}
	if !set.Contains(1) || !set.Contains(2) {
		t.Error("missing inserted elements")
	}
	if set.Contains(3) {
		t.Error("contains element never added")
	}

	set.Remove(1)
	if set.Contains(1) || set.Len() != 1 {
		t.Error("Remove did not remove")
	}
	set.Remove(1) // no-op
	if set.Len() != 1 {
		t.Error("double Remove changed the set")
	}
}
