package LazySet

import "testing"

// TestScenario1 covers Add reporting modified only on first insertion.
func TestScenario1(t *testing.T) {
	s := NewSet[int]()
	if !s.Add(3) {
		t.Fatal("Add(3) should succeed on an empty set")
	}
	if s.Add(3) {
		t.Fatal("Add(3) twice should report unchanged")
	}
	if !s.Contains(3) {
		t.Fatal("Contains(3) should hold")
	}
	if s.Contains(4) {
		t.Fatal("Contains(4) should not hold")
	}
}

// TestScenario2 covers Remove leaving the rest of the set untouched.
func TestScenario2(t *testing.T) {
	s := NewSet[int]()
	s.Add(1)
	s.Add(2)
	s.Add(3)
	if !s.Remove(2) {
		t.Fatal("Remove(2) should succeed")
	}
	if s.Contains(2) {
		t.Fatal("Contains(2) should not hold after removal")
	}
	if !s.IsSorted() {
		t.Fatal("IsSorted should hold")
	}
	if !s.Contains(1) || !s.Contains(3) {
		t.Fatal("1 and 3 should remain members")
	}
}

// TestScenario3 covers Replace with distinct fingerprints, old
// present, new absent.
func TestScenario3(t *testing.T) {
	s := NewSet[int]()
	s.Add(5)
	if !s.Replace(5, 9) {
		t.Fatal("Replace(5, 9) should report modified")
	}
	if s.Contains(5) {
		t.Fatal("5 should no longer be a member")
	}
	if !s.Contains(9) {
		t.Fatal("9 should now be a member")
	}
}

// TestScenario4 covers Replace when both old and new are already present.
func TestScenario4(t *testing.T) {
	s := NewSet[int]()
	s.Add(5)
	s.Add(9)
	if !s.Replace(5, 9) {
		t.Fatal("Replace(5, 9) should report modified (old removed)")
	}
	if s.Contains(5) {
		t.Fatal("5 should be removed")
	}
	if !s.Contains(9) {
		t.Fatal("9 should remain")
	}
}

// TestScenario5 covers Replace when old is absent and new is already present.
func TestScenario5(t *testing.T) {
	s := NewSet[int]()
	s.Add(9)
	if s.Replace(5, 9) {
		t.Fatal("Replace(5, 9) should report unchanged")
	}
	if !s.Contains(9) {
		t.Fatal("9 should remain a member")
	}
}

// TestScenario6 covers Replace when both old and new are absent.
func TestScenario6(t *testing.T) {
	s := NewSet[int]()
	if !s.Replace(5, 9) {
		t.Fatal("Replace(5, 9) should report modified (new inserted)")
	}
	if !s.Contains(9) {
		t.Fatal("9 should be a member")
	}
	if s.Contains(5) {
		t.Fatal("5 should not be a member")
	}
}

// TestIdempotence covers the idempotence laws: repeated Add, Remove of an absent element, and Add followed by Remove leaving nothing behind.
func TestIdempotence(t *testing.T) {
	s := NewSet[int]()
	if !s.Add(7) {
		t.Fatal("first Add(7) should succeed")
	}
	if s.Add(7) {
		t.Fatal("second Add(7) should report unchanged")
	}
	if s.Remove(8) {
		t.Fatal("Remove of an absent element should report unchanged")
	}
	if !s.Remove(7) {
		t.Fatal("Remove(7) should succeed")
	}
	if s.Contains(7) {
		t.Fatal("7 should no longer be a member after Add;Remove")
	}
}

// TestReplaceSameFingerprintIsAdd covers the case where old and new share a fingerprint.
func TestReplaceSameFingerprintIsAdd(t *testing.T) {
	s := NewSet[int]()
	if !s.Replace(3, 3) {
		t.Fatal("Replace(3, 3) on an empty set should behave like Add(3)")
	}
	if !s.Contains(3) {
		t.Fatal("3 should be a member")
	}
	if s.Replace(3, 3) {
		t.Fatal("Replace(3, 3) when 3 is already present should report unchanged")
	}
}

// TestEmptySetBoundaries covers Remove, Contains and Add on an empty set.
func TestEmptySetBoundaries(t *testing.T) {
	s := NewSet[int]()
	if s.Remove(1) {
		t.Fatal("Remove on an empty set should report unchanged")
	}
	if s.Contains(1) {
		t.Fatal("Contains on an empty set should be false")
	}
	if !s.Add(1) {
		t.Fatal("Add on an empty set should succeed")
	}
}

// TestReplaceOnEmptySet covers Replace on an empty set: both old and new are
// absent, so the call inserts the new element.
func TestReplaceOnEmptySet(t *testing.T) {
	s := NewSet[int]()
	if !s.Replace(1, 2) {
		t.Fatal("Replace on an empty set should insert the new element")
	}
	if !s.Contains(2) || s.Contains(1) {
		t.Fatal("only the new element should be present")
	}
}
