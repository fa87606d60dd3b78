package svc

import "sync"

// CriticalSection is a plain mutex under the name the rest of this module
// uses for it, matching the "critical section + scoped lock" contract of
// §4.H. Go's own zero-value sync.Mutex already satisfies "acquisition is
// balanced with release on every scope exit" once paired with defer, so
// this type exists only to give that pairing an idiomatic name and an
// Auto helper that returns the unlock func directly.
type CriticalSection struct {
	mu sync.Mutex
}

// Auto acquires the section and returns a func that releases it, meant to
// be used as `defer cs.Auto()()` so release happens on every exit path,
// exceptional or not.
func (cs *CriticalSection) Auto() func() {
	cs.mu.Lock()
	return cs.mu.Unlock
}

// RefCounted is embedded by anything whose destruction must be routed
// through a single owner once its count reaches zero (the ViewLODList
// cache entries, most notably).
type RefCounted struct {
	mu    sync.Mutex
	count int
}

// AddRef increments the count and returns the new value.
func (r *RefCounted) AddRef() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.count++
	return r.count
}

// Release decrements the count and returns the new value. Callers must
// treat a return of 0 as "destroy now, exactly once" — Release itself
// does not destroy anything, since what "destroy" means is owner-specific.
func (r *RefCounted) Release() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.count > 0 {
		r.count--
	}
	return r.count
}

// Count returns the current reference count.
func (r *RefCounted) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.count
}
