package LazySet

import Go_Utils "github.com/g-m-twostay/lazyset"

// Set is a concurrent ordered set. The zero value is not usable; construct
// one with NewSet.
type Set[E any] struct {
	head, tail *node[E]
}

// NewSet returns an empty set.
func NewSet[E any]() *Set[E] {
	head, tail := newSentinels[E]()
	return &Set[E]{head: head, tail: tail}
}

func fingerprint(item any) int32 {
	return Go_Utils.Fingerprint(item)
}

// find walks the unlocked chain from head and returns the window (pred,
// curr) straddling key: pred.key < key <= curr.key, sentinels treated as
// ±∞. It never blocks and may return nodes a concurrent mutator has since
// marked. Callers must validate the window under lock before trusting it.
func (s *Set[E]) find(key int32) (pred, curr *node[E]) {
	pred = s.head
	curr = pred.next.load()
	for curr != s.tail && curr.key < key {
		pred = curr
		curr = curr.next.load()
	}
	return pred, curr
}

// validate is the lazy-set guard: called with both pred and curr locked, it
// certifies the window hasn't been invalidated by a concurrent mutator
// since it was captured by find. This repository keeps the stricter variant
// of validate that also rejects a window whose replacement back-pointer is
// still live (see DESIGN.md, Open Question O1): it costs nothing on the
// uncontended path and cuts down on replace/replace livelock under load.
func validate[E any](pred, curr *node[E]) bool {
	if pred.marked.Load() || curr.marked.Load() {
		return false
	}
	if pred.next.load() != curr {
		return false
	}
	if r := pred.replacement.load(); r != nil && !r.marked.Load() {
		return false
	}
	if r := curr.replacement.load(); r != nil && !r.marked.Load() {
		return false
	}
	return true
}
