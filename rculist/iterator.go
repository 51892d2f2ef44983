package rculist

// Iterator is a snapshot position in a List, valid only for the lifetime
// of the ReadHandle critical section that produced it. The zero value is
// the exhausted (end) iterator.
type Iterator[T any] struct {
	node *Node[T]
}

// Valid reports whether the iterator refers to a node, as opposed to
// being the exhausted/end iterator.
func (it Iterator[T]) Valid() bool {
	return it.node != nil
}

// Get returns the iterator's value. It reports false for the exhausted
// iterator. A node that has been concurrently erased still yields its
// value for the remainder of the read critical section that observed it.
func (it Iterator[T]) Get() (T, bool) {
	if it.node == nil {
		var zero T
		return zero, false
	}
	return it.node.value, true
}

// Advance returns an iterator to the next node in the chain, following an
// acquire-loaded link. Advancing the exhausted iterator returns it
// unchanged.
func (it Iterator[T]) Advance() Iterator[T] {
	if it.node == nil {
		return it
	}
	return Iterator[T]{node: it.node.next.Load()}
}
