// Package rculist implements a doubly-linked list whose readers traverse
// it without ever blocking: a single writer at a time splices nodes in
// and out using atomic stores, and a deleted node is only actually freed
// (its value finalized) once an rcu.Reclaimer confirms no reader that
// could still hold a pointer to it is live.
//
// ReadHandle and WriteHandle carry nothing but what is needed to drive
// the list's rcu.Reclaimer and writer mutex. Reclamation is entirely
// generation-counter based; there is no per-reader zombie list to walk
// on unlock, which would let one reader free another reader's
// still-live record.
package rculist
