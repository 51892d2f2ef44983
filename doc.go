// Package containers is a small library of concurrency-oriented in-memory
// data structures. The centerpiece is a generation-based RCU
// (read-copy-update) memory-reclamation core, in package rcu, and an
// RCU-protected doubly-linked list built on top of it, in package rculist.
// Both are assembled out of smaller building blocks also exported here: a
// write-preferring reader/writer lock (rwmutex), a sentinel-rooted
// doubly-linked list (ilist), a single-threaded priority queue (pqueue),
// and a one-shot wake primitive (wakeevent).
//
// RCU lets readers traverse a structure without ever blocking, while a
// writer mutates it underneath them and defers freeing anything a reader
// might still be looking at until every reader that could have seen the
// old state has left. A typical consumer looks like:
//
//	list := rculist.New[string](nil)
//
//	writer := list.RegisterWriter()
//	writer.Lock()
//	list.PushBack("a", writer)
//	list.PushBack("b", writer)
//	writer.Unlock()
//
//	reader := list.RegisterReader()
//	reader.Lock()
//	for it := list.Begin(reader); ; it = it.Advance() {
//		v, ok := it.Get()
//		if !ok {
//			break
//		}
//		_ = v
//	}
//	reader.Unlock()
//
//	writer.Lock()
//	reader.Lock()
//	target := list.Find(func(v string) bool { return v == "a" }, reader)
//	reader.Unlock()
//	if target.Valid() {
//		list.Erase(target, writer)
//	}
//	writer.Synchronize() // blocks until no reader can still observe the erased node
//	writer.Unlock()
//
// Readers never block on a writer in rculist: the writer publishes new
// links with atomic stores and only reclaims an unlinked node's memory
// after calling Synchronize, which waits out every reader that entered
// before the node was unlinked. The rcu package is the part of this
// library that makes that guarantee; rculist is simply its first (and so
// far only) concurrent container built on top of it.
package containers
