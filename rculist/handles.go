package rculist

import (
	"sync"

	"github.com/turingcompl33t/containers/rcu"
)

// writer is the non-generic half of a List[T]: the writer-serialization
// mutex and the reclaimer both ReadHandle and WriteHandle need to reach,
// factored out so that ReadHandle/WriteHandle themselves need not be
// generic over T, matching the external interface's non-generic
// ReadHandle/WriteHandle types.
type writer struct {
	mu        sync.Mutex
	reclaimer *rcu.Reclaimer
}

// ReadHandle lets its holder traverse a List without blocking. Lock pins
// the list's current generation; Unlock releases it. Every iterator
// operation must occur between a matched Lock/Unlock pair.
type ReadHandle struct {
	reclaimer *rcu.Reclaimer
	pin       *rcu.Handle
}

// Lock pins the current generation for reading.
func (h ReadHandle) Lock() {
	*h.pin = h.reclaimer.Enter()
}

// Unlock releases the generation pinned by the matching Lock.
func (h ReadHandle) Unlock() {
	h.pin.Release()
}

// WriteHandle serializes mutation of a List. At most one WriteHandle may
// be locked at a time per List.
type WriteHandle struct {
	w *writer
}

// Lock acquires the list's writer mutex for the duration of a mutation
// sequence.
func (h WriteHandle) Lock() {
	h.w.mu.Lock()
}

// Unlock releases the writer mutex acquired by Lock.
func (h WriteHandle) Unlock() {
	h.w.mu.Unlock()
}

// Synchronize advances the list's reclamation generation and blocks until
// every node erased before this call is no longer reachable by any
// reader, finalizing each one exactly once. The caller must still hold
// the writer mutex (call it before Unlock): the reclaimer's deferred
// queue has no internal lock of its own and relies on the writer mutex
// to keep a concurrent Erase on another WriteHandle from racing with the
// finalizers Synchronize is busy draining.
func (h WriteHandle) Synchronize() {
	h.w.reclaimer.Synchronize()
}
