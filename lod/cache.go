package lod

import (
	"fmt"
	"sync"

	"github.com/legoisland/sceneengine/svc"
)

// ViewLODList is a ref-counted List[*ViewLOD] owned by a Cache. It is
// deleted exactly when its refcount transitions to zero, and only the
// owning Cache performs that deletion — outside holders own only
// ref-counted handles, never the list itself.
type ViewLODList struct {
	svc.RefCounted
	*List[*ViewLOD]

	name string
}

// Name returns the (possibly disambiguated, see Cache.Create) name this
// list is registered under.
func (v *ViewLODList) Name() string { return v.name }

// Cache is the named, ref-counted ViewLODList registry keyed by ROI-type
// name (component C). All names are case-sensitive; comparison is strict
// lexicographic, i.e. plain Go string equality.
type Cache struct {
	mu      sync.Mutex
	lists   map[string]*ViewLODList
	nextUID int
}

// NewCache returns an empty cache.
func NewCache() *Cache {
	return &Cache{lists: map[string]*ViewLODList{}}
}

// Create reserves a new ViewLODList under name with the given LOD
// capacity, returning it with a refcount of 1. If name is already
// present, a monotonically increasing UID is appended to disambiguate
// and the call still succeeds — Create never fails.
func (c *Cache) Create(name string, capacity int) *ViewLODList {
	c.mu.Lock()
	defer c.mu.Unlock()

	final := name
	if _, exists := c.lists[final]; exists {
		c.nextUID++
		final = fmt.Sprintf("%s#%d", name, c.nextUID)
	}
	l := &ViewLODList{List: NewList[*ViewLOD](capacity), name: final}
	l.AddRef()
	c.lists[final] = l
	return l
}

// Lookup returns the list registered under name with its refcount
// incremented, or nil if no such list exists. All lookup failures are
// silent per §4.B.
func (c *Cache) Lookup(name string) *ViewLODList {
	c.mu.Lock()
	defer c.mu.Unlock()

	l, ok := c.lists[name]
	if !ok {
		return nil
	}
	l.AddRef()
	return l
}

// Release decrements l's refcount. When it transitions to zero, l is
// unregistered from the cache and destroyed — the cache is the only
// thing that ever removes a list from its map.
func (c *Cache) Release(l *ViewLODList) {
	if l == nil {
		return
	}
	if l.RefCounted.Release() == 0 {
		c.mu.Lock()
		defer c.mu.Unlock()
		if c.lists[l.name] == l {
			delete(c.lists, l.name)
		}
	}
}

// Destroy unconditionally removes l regardless of its refcount, and
// reports whether it was present.
func (c *Cache) Destroy(l *ViewLODList) bool {
	if l == nil {
		return false
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.lists[l.name] != l {
		return false
	}
	delete(c.lists, l.name)
	return true
}
