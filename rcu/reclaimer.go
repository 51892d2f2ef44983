package rcu

import (
	"sync"
	"sync/atomic"

	"github.com/turingcompl33t/containers/ilist"
	"github.com/turingcompl33t/containers/pqueue"
	"github.com/turingcompl33t/containers/rwmutex"
)

// Reclaimer is a generation-based RCU memory reclaimer: it tracks the
// current generation, a registry of per-generation reference counts, and
// a queue of destructors deferred until their generation retires. The
// zero value is not usable; construct one with New.
type Reclaimer struct {
	currentGeneration     atomic.Uint64
	lastRetiredGeneration uint64 // owned by CollectThrough's serial caller

	// incMu serializes IncGeneration so that registering the new
	// generation's refCount and publishing the bumped generation happen
	// as one atomic step from every other goroutine's point of view.
	incMu sync.Mutex

	// registry is the intrusive list of refCount records, guarded by
	// this package's own write-preferring rwmutex.RWMutex.
	registryMu rwmutex.RWMutex
	registry   *ilist.List[*refCount]

	// deferred is writer-private: DeferDestroy and CollectThrough are
	// only ever called under whatever external synchronization the
	// owning data structure provides (its own writer mutex), so the
	// queue itself needs no internal lock.
	deferred *pqueue.Queue[*deferredEntry]
}

// New constructs a Reclaimer with generation 0 current and no readers
// pinned.
func New() *Reclaimer {
	r := &Reclaimer{
		registry: ilist.New[*refCount](),
		deferred: pqueue.New[*deferredEntry](deferredLessOrEqual),
	}
	r.registry.PushBack(newRefCount(0))
	return r
}

// GetGeneration returns the current generation.
func (r *Reclaimer) GetGeneration() uint64 {
	return r.currentGeneration.Load()
}

// IncGeneration advances the current generation by one and returns the
// previous value.
//
// IncGeneration onboards the new generation's refCount record into the
// registry *before* publishing the bumped currentGeneration (see
// DESIGN.md), so that the registry always contains a record for whatever
// generation a concurrent Enter might observe as current.
func (r *Reclaimer) IncGeneration() uint64 {
	r.incMu.Lock()
	defer r.incMu.Unlock()

	prev := r.currentGeneration.Load()
	next := prev + 1

	rc := newRefCount(next)
	r.registryMu.Lock()
	r.registry.PushBack(rc)
	r.registryMu.Unlock()

	r.currentGeneration.Store(next)
	return prev
}

// lookupEntry finds the registry entry for generation g. It panics if
// none exists, which can only happen if CollectThrough walks past a
// generation it already retired — a precondition violation that is
// undefined behavior, and Go has no silent way to return "no value" for
// a pointer that must exist. Enter cannot use this: a generation it
// sampled a moment ago may legitimately have already retired by the time
// it looks the registry up, and that is not a caller bug.
func (r *Reclaimer) lookupEntry(g uint64) *ilist.Entry[*refCount] {
	entry, ok := r.registry.Find(func(rc *refCount) bool { return rc.gen.Load() == g })
	if !ok {
		panic("rcu: no refCount record for generation")
	}
	return entry
}

// findRefCount returns the refCount record for generation g, or false if
// it has already retired.
func (r *Reclaimer) findRefCount(g uint64) (*refCount, bool) {
	r.registryMu.RLock()
	defer r.registryMu.RUnlock()
	entry, ok := r.registry.Find(func(rc *refCount) bool { return rc.gen.Load() == g })
	if !ok {
		return nil, false
	}
	return entry.Value, true
}

// Enter pins the current generation for reading and returns a Handle
// that must be Released exactly once.
//
// The generation sampled at the top of the loop can retire before its
// shard is acquired: a concurrent Synchronize may advance past it and a
// CollectThrough may drain and recycle its refCount in the gap between
// the load and the Acquire below. Enter re-checks the current generation
// after acquiring and, if it no longer matches (or the record is already
// gone), releases the shard and retries against whatever generation is
// current now.
func (r *Reclaimer) Enter() Handle {
	slot := nextSlot()
	for {
		gen := r.currentGeneration.Load()

		rc, ok := r.findRefCount(gen)
		if !ok {
			continue
		}

		rc.shards[slot].Acquire()
		if r.currentGeneration.Load() == gen {
			return Handle{rc: rc, slot: slot, gen: gen}
		}

		rc.shards[slot].Release()
	}
}

// DeferDestroy registers fn to run once the current generation has fully
// retired. fn is invoked exactly once, by whatever goroutine's
// CollectThrough call happens to retire that generation.
func (r *Reclaimer) DeferDestroy(fn func()) {
	r.deferred.Push(&deferredEntry{fn: fn, gen: r.currentGeneration.Load()})
}

// Synchronize advances the generation and blocks until everything
// deferred at or before the previous generation has been reclaimed. It is
// equivalent to CollectThrough(IncGeneration()).
func (r *Reclaimer) Synchronize() {
	r.CollectThrough(r.IncGeneration())
}

// CollectThrough blocks until every generation up to and including
// generation has retired: every reader pinned at or before it has left,
// and every finalizer deferred at or before it has run.
func (r *Reclaimer) CollectThrough(generation uint64) {
	for r.lastRetiredGeneration <= generation {
		g := r.lastRetiredGeneration

		r.registryMu.RLock()
		rc := r.lookupEntry(g).Value
		r.registryMu.RUnlock()

		for i := range rc.shards {
			rc.shards[i].Wait()
		}

		for {
			entry, ok := r.deferred.PopIf(func(e *deferredEntry) bool { return e.gen == g })
			if !ok {
				break
			}
			entry.fn()
		}

		r.registryMu.Lock()
		r.registry.Remove(r.lookupEntry(g))
		r.registryMu.Unlock()
		rc.release()

		r.lastRetiredGeneration++
	}
}
