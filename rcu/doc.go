// Package rcu implements generation-based RCU (read-copy-update) memory
// reclamation: a Reclaimer hands out a Handle to every reader that calls
// Enter, pinning whatever generation is current at that instant, and a
// writer that has unlinked something calls DeferDestroy to register a
// finalizer for it and then Synchronize to advance the generation and
// block until every reader that could still be looking at the unlinked
// object has left.
//
// The piece that makes Enter/Release cheap even under heavy read
// contention is sharding: rather than a single atomic counter per
// generation, each generation's reference count is a small pool of
// cache-line-padded shards, and Enter picks a shard using a pooled
// per-goroutine slot, so concurrent readers on different shards never
// contend with each other's cache line.
//
// A minimal user looks like:
//
//	r := rcu.New()
//
//	// reader
//	h := r.Enter()
//	// ... read some structure published by a writer ...
//	h.Release()
//
//	// writer, after unlinking some object obj from that structure
//	r.DeferDestroy(func() { releaseObj(obj) })
//	r.Synchronize() // blocks until every reader that could see obj has left
package rcu
