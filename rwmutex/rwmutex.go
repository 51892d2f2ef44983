// Package rwmutex implements a write-preferring reader/writer lock using
// a pending/departing counter pair, the same style of encoding the Go
// standard library's own sync.RWMutex uses internally. This package
// reimplements that encoding directly rather than wrapping sync.RWMutex,
// since owning the encoding — and exposing it to rcu's registry lock — is
// the entire point.
package rwmutex

import (
	"sync"
	"sync/atomic"

	"github.com/turingcompl33t/containers/wakeevent"
)

// maxReaders bounds the number of concurrent readers a single writer's
// arrival can account for; it is folded into nPending's sign bit the same
// way sync.RWMutex's rwmutexMaxReaders is.
const maxReaders = 1 << 30

// RWMutex is a write-preferring mutual exclusion lock: a writer that
// arrives while readers hold the lock blocks new readers from starting
// ahead of it, and is released once every reader present at the moment it
// arrived has departed. The zero value is ready to use.
type RWMutex struct {
	writerMu sync.Mutex

	readerRelease wakeevent.Event
	writerRelease wakeevent.Event

	nPending         atomic.Int32
	readersDeparting atomic.Int32
}

// RLock acquires the lock for reading. A reader that arrives while a
// writer is pending blocks until that writer has run.
func (l *RWMutex) RLock() {
	if l.nPending.Add(1) < 0 {
		l.readerRelease.Wait()
	}
}

// RUnlock releases a read lock acquired by RLock.
func (l *RWMutex) RUnlock() {
	if l.nPending.Add(-1) < 0 {
		if l.readersDeparting.Add(-1) == 0 {
			l.writerRelease.Post()
		}
	}
}

// Lock acquires the lock exclusively. It blocks until every reader
// present when it was called has released, and serializes against any
// other concurrent writer.
func (l *RWMutex) Lock() {
	l.writerMu.Lock()

	r := l.nPending.Add(-maxReaders) + maxReaders
	if r != 0 && l.readersDeparting.Add(r) != 0 {
		l.writerRelease.Wait()
	}
}

// Unlock releases the exclusive lock acquired by Lock, waking every
// reader that queued up while the writer held it.
func (l *RWMutex) Unlock() {
	r := l.nPending.Add(maxReaders)
	for i := int32(0); i < r; i++ {
		l.readerRelease.Post()
	}
	l.writerMu.Unlock()
}
