package wakeevent

import _ "unsafe" // for go:linkname

// runtimeSemacquire and runtimeSemrelease reach into the same runtime
// semaphore implementation sync.Mutex and sync.RWMutex build on, aliased
// to the untyped sync.runtime_Semacquire/sync.runtime_Semrelease symbols.

//go:linkname runtimeSemacquire sync.runtime_Semacquire
func runtimeSemacquire(s *uint32)

//go:linkname runtimeSemrelease sync.runtime_Semrelease
func runtimeSemrelease(s *uint32, handoff bool)
