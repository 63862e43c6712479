package LazySet

import "sort"

// Replace atomically removes old (if present) and inserts new (if absent),
// observed by every other caller as a single step: never a state in
// between where both or neither are members when exactly one of them
// started out present. Reports whether the set was modified.
//
// If old and new share a fingerprint, removing and re-adding would be a
// no-op on the same list slot, so Replace degenerates to Add(new).
func (s *Set[E]) Replace(old, new E) bool {
	keyOld := fingerprint(old)
	keyNew := fingerprint(new)
	if keyOld == keyNew {
		return s.Add(new)
	}
	return s.replaceByKey(keyOld, keyNew, old, new)
}

// replaceByKey is Replace with the key derivation pulled out, so
// replace_test.go can drive the two-window commit logic with keys chosen to
// force a particular window-overlap shape instead of hoping a fingerprint
// collision lands the right way.
func (s *Set[E]) replaceByKey(keyOld, keyNew int32, old, new E) bool {
	for {
		predOld, currOld := s.find(keyOld)
		predNew, currNew := s.find(keyNew)

		locked := lockOrder(predOld, currOld, predNew, currNew)
		for _, n := range locked {
			n.mu.Lock()
		}

		if !validate(predOld, currOld) || !validate(predNew, currNew) {
			unlockAll(locked)
			continue
		}

		oldPresent := currOld != s.tail && currOld.key == keyOld
		newPresent := currNew != s.tail && currNew.key == keyNew

		var modified bool
		switch {
		case !oldPresent && !newPresent:
			// Neither present: splice new in. Linearization point: the
			// predNew.next write.
			n := newNode[E](new, keyNew)
			n.next.store(currNew)
			predNew.next.store(n)
			modified = true

		case !oldPresent && newPresent:
			// old absent, new already present: nothing to do.
			// Linearization point: the validation read above.
			modified = false

		case oldPresent && !newPresent:
			// The hard case: splice a stand-in for new that points back at
			// currOld, publish it, then mark currOld. That mark is the
			// linearization point, the single step at which old vanishes
			// and new appears together. Only after that do we physically
			// unlink currOld, and the replacement node's own lock is never
			// taken: it isn't reachable by any other goroutine until
			// predNew.next is published, and once published its
			// replacement back-pointer keeps Contains from exposing it
			// early (see contains.go).
			r := newNode[E](new, keyNew)
			r.replacement.store(currOld)
			r.next.store(currNew)
			predNew.next.store(r)

			currOld.marked.store(true) // linearization point

			if predOld.next.load() == currOld {
				predOld.next.store(currOld.next.load())
			} else {
				// The two windows overlapped: r now sits immediately
				// before currOld in the chain, so r itself must be
				// advanced past it.
				r.next.store(currOld.next.load())
			}
			r.replacement.store(nil)
			modified = true

		case oldPresent && newPresent:
			// new already present: just remove old. Linearization point:
			// the mark of currOld.
			currOld.marked.store(true)
			predOld.next.store(currOld.next.load())
			modified = true
		}

		unlockAll(locked)
		return modified
	}
}

// lockOrder collects the (up to four, possibly overlapping) nodes the two
// windows of a Replace call straddle, deduplicated by identity and sorted
// into ascending list-position order. Locking them in that order is this
// module's one deadlock-avoidance discipline: every multi-node mutator
// acquires nodes left-to-right, so no two mutators can form a lock cycle.
func lockOrder[E any](nodes ...*node[E]) []*node[E] {
	uniq := make([]*node[E], 0, len(nodes))
outer:
	for _, n := range nodes {
		for _, u := range uniq {
			if u == n {
				continue outer
			}
		}
		uniq = append(uniq, n)
	}
	sort.Slice(uniq, func(i, j int) bool {
		return position(uniq[i], uniq[j]) < 0
	})
	return uniq
}

func unlockAll[E any](nodes []*node[E]) {
	for i := len(nodes) - 1; i >= 0; i-- {
		nodes[i].mu.Unlock()
	}
}
