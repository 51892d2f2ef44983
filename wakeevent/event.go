// Package wakeevent provides a one-shot wake primitive used by rwmutex to
// hand a baton between departing readers and a waiting writer.
//
// Event is backed by the Go runtime's own semaphore implementation — the
// same one sync.Mutex and sync.RWMutex use internally — rather than a bare
// sync.Mutex+sync.Cond pair. A runtime semaphore is a true counting
// primitive: a Post that happens before the matching Wait still banks a
// token rather than being lost, which a plain condition variable cannot
// guarantee unless the predicate check and the wait are both performed
// under the same lock the poster holds. rwmutex's fast path deliberately
// avoids holding any lock around its pending-reader count, so Event needs
// that stronger guarantee.
package wakeevent

// Event is a counting wake primitive. The zero value is ready to use.
type Event struct {
	sema uint32
}

// Wait blocks until a matching Post, claiming whichever token — already
// posted or not yet posted — becomes available first.
func (e *Event) Wait() {
	runtimeSemacquire(&e.sema)
}

// Post releases one waiter, or banks a token for the next Wait if none is
// currently blocked.
func (e *Event) Post() {
	runtimeSemrelease(&e.sema, false)
}
