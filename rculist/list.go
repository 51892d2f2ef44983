package rculist

import (
	"sync/atomic"

	"github.com/turingcompl33t/containers/rcu"
)

// List is a doubly-linked list supporting lock-free reads concurrent
// with a single serialized writer. Erased nodes are unlinked immediately
// but their values are not finalized until a WriteHandle calls
// Synchronize, which waits out every reader that could still hold a
// pointer to them.
//
// The zero value is not usable; construct one with New.
type List[T any] struct {
	head, tail atomic.Pointer[Node[T]]
	finalize   func(T)
	w          writer
}

// New constructs an empty List. finalize is invoked exactly once for
// every value removed by Erase, once it is safe to reclaim — it may be
// nil if values need no cleanup beyond ordinary garbage collection.
func New[T any](finalize func(T)) *List[T] {
	l := &List[T]{finalize: finalize}
	l.w.reclaimer = rcu.New()
	return l
}

// RegisterReader returns a new ReadHandle bound to this list's reclaimer.
func (l *List[T]) RegisterReader() ReadHandle {
	return ReadHandle{reclaimer: l.w.reclaimer, pin: new(rcu.Handle)}
}

// RegisterWriter returns a new WriteHandle bound to this list's writer
// mutex and reclaimer.
func (l *List[T]) RegisterWriter() WriteHandle {
	return WriteHandle{w: &l.w}
}

// PushFront inserts value at the head of the list. The caller must hold
// wh locked.
func (l *List[T]) PushFront(value T, wh WriteHandle) {
	n := &Node[T]{value: value}
	head := l.head.Load()
	n.next.Store(head)
	if head != nil {
		head.prev.Store(n)
	} else {
		l.tail.Store(n)
	}
	l.head.Store(n)
}

// PushBack inserts value at the tail of the list. The caller must hold wh
// locked.
func (l *List[T]) PushBack(value T, wh WriteHandle) {
	n := &Node[T]{value: value}
	tail := l.tail.Load()
	n.prev.Store(tail)
	if tail != nil {
		tail.next.Store(n)
	} else {
		l.head.Store(n)
	}
	l.tail.Store(n)
}

// Erase unlinks the node it points to from the live chain and registers
// its value to be finalized once no reader can still observe it. It is a
// no-op if it is the exhausted iterator or already refers to a node
// erased by a previous call. The caller must hold wh locked; a separate
// call to wh.Synchronize is required to guarantee the finalizer has run.
func (l *List[T]) Erase(it Iterator[T], wh WriteHandle) {
	n := it.node
	if n == nil || n.deleted.Load() {
		return
	}

	prev := n.prev.Load()
	next := n.next.Load()

	if prev != nil {
		prev.next.Store(next)
	} else {
		l.head.Store(next)
	}
	if next != nil {
		next.prev.Store(prev)
	} else {
		l.tail.Store(prev)
	}

	n.deleted.Store(true)

	value := n.value
	finalize := l.finalize
	l.w.reclaimer.DeferDestroy(func() {
		if finalize != nil {
			finalize(value)
		}
	})
}

// Begin returns an iterator to an acquire-loaded snapshot of the head of
// the list. rh must be locked.
func (l *List[T]) Begin(rh ReadHandle) Iterator[T] {
	return Iterator[T]{node: l.head.Load()}
}

// End returns the exhausted iterator.
func (l *List[T]) End(rh ReadHandle) Iterator[T] {
	return Iterator[T]{}
}

// Find walks the list from the head and returns an iterator to the first
// node whose value satisfies match, or the exhausted iterator if none
// does. rh must be locked.
func (l *List[T]) Find(match func(T) bool, rh ReadHandle) Iterator[T] {
	for n := l.head.Load(); n != nil; n = n.next.Load() {
		if match(n.value) {
			return Iterator[T]{node: n}
		}
	}
	return Iterator[T]{}
}
