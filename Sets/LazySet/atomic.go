package LazySet

import "sync/atomic"

// atomicBool and atomicNode give marked/next/replacement the same thin,
// typed wrapper the root Go_Utils package wraps its own atomics in
// (Atoms.go's AtomicUint/AtomicInt), just extended to bool and to a generic
// node pointer instead of uintptr.

type atomicBool struct {
	v atomic.Bool
}

func (b *atomicBool) Load() bool   { return b.v.Load() }
func (b *atomicBool) store(v bool) { b.v.Store(v) }

type atomicNode[E any] struct {
	v atomic.Pointer[node[E]]
}

func (n *atomicNode[E]) load() *node[E]   { return n.v.Load() }
func (n *atomicNode[E]) store(v *node[E]) { n.v.Store(v) }
