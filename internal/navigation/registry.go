package navigation

import (
	"sort"
	"sync"
)

// Path locates a field in the component tree. Each element is the child
// index at that depth, so lexicographic path order is depth-first order.
type Path []int

// Child returns a new path one level below p
func (p Path) Child(i int) Path {
	child := make(Path, len(p)+1)
	copy(child, p)
	child[len(p)] = i
	return child
}

// Compare orders paths depth-first. A parent sorts before its children.
func (p Path) Compare(other Path) int {
	for i := 0; i < len(p) && i < len(other); i++ {
		switch {
		case p[i] < other[i]:
			return -1
		case p[i] > other[i]:
			return 1
		}
	}
	switch {
	case len(p) < len(other):
		return -1
	case len(p) > len(other):
		return 1
	}
	return 0
}

type entry struct {
	path  Path
	field Field
	seq   uint64
}

// Registry holds the currently mounted fields keyed by identity.
// Components mount on creation and unmount on removal; the traversal order
// is derived from it on every call and never cached.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]*entry
	nextSeq uint64
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		entries: make(map[string]*entry),
	}
}

// Mount registers f at path. Mounting an id that is already present moves
// it to the new path.
func (r *Registry) Mount(path Path, f Field) {
	if f == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextSeq++
	p := make(Path, len(path))
	copy(p, path)
	r.entries[f.FieldID()] = &entry{path: p, field: f, seq: r.nextSeq}
}

// Unmount removes the field with the given id. Unknown ids are ignored.
func (r *Registry) Unmount(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.entries, id)
}

// Mounted reports whether id is currently mounted
func (r *Registry) Mounted(id string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.entries[id]
	return ok
}

// Len returns the number of mounted fields, navigable or not
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}

// Order returns the navigable fields in depth-first order. Fields sharing a
// path keep their mount order.
func (r *Registry) Order() []Field {
	r.mu.RLock()
	list := make([]*entry, 0, len(r.entries))
	for _, e := range r.entries {
		if e.field.Kind().Navigable() {
			list = append(list, e)
		}
	}
	r.mu.RUnlock()

	sort.Slice(list, func(i, j int) bool {
		if c := list[i].path.Compare(list[j].path); c != 0 {
			return c < 0
		}
		return list[i].seq < list[j].seq
	})

	order := make([]Field, len(list))
	for i, e := range list {
		order[i] = e.field
	}
	return order
}

// IndexOf returns the position of id in Order, or -1
func (r *Registry) IndexOf(id string) int {
	for i, f := range r.Order() {
		if f.FieldID() == id {
			return i
		}
	}
	return -1
}
