package rculist

import "sync/atomic"

// Node is a single link in a List. Callers never construct one directly;
// they are produced by PushFront/PushBack and observed through an
// Iterator.
type Node[T any] struct {
	next, prev atomic.Pointer[Node[T]]
	value      T
	deleted    atomic.Bool
}
