/*
Package LazySet implements a concurrent ordered set over a sorted
singly-linked list, using lazy synchronization with optimistic validation.

# Linearizability

Add, Remove, Replace and Contains are each linearizable with respect to one
another. Replace is the interesting case: it observes "remove old element,
insert new element" as a single atomic step even though the two elements may
live in disjoint regions of the list, by holding a newly-inserted node
invisible (via its replacement back-pointer) until the element it displaces
is logically gone.

# Wait-Free

Contains never locks and never retries; its linearization point is the read
that observes the matching node's marked and replacement fields. Mutators
(Add, Remove, Replace) lock the nodes they touch, always in ascending
list-position order, so no two mutators can form a lock cycle, but they are
not lock-free: an unlucky mutator can retry indefinitely under adversarial
scheduling.

# Ordering

Elements are ordered solely by a 32-bit hash fingerprint (Go_Utils.Fingerprint
of the element), not by a user-supplied comparator. Two elements that collide
under that fingerprint are indistinguishable to the set.

# Usage

NewSet constructs an empty set. Size, iteration and persistence are
deliberately not offered. None of the three survive the combination of
lock-free reads and an unordered element type.
*/
package LazySet
