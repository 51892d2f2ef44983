package rcu

// Handle is returned by (*Reclaimer).Enter. It pins the generation it
// reports for reading until Release is called exactly once — calling
// Release twice, or never, is a caller bug: a handle is only ever meant
// to be created by Enter and consumed by a single Release.
type Handle struct {
	rc   *refCount
	slot uint32
	gen  uint64
}

// Gen reports the generation this Handle pinned.
func (h Handle) Gen() uint64 {
	return h.gen
}

// Release unpins the generation this Handle pinned. It must be called
// exactly once.
func (h Handle) Release() {
	h.rc.shards[h.slot].Release()
}
