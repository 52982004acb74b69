package intern

import (
	"fmt"
	"sync/atomic"
)

// snapshot is one immutable generation of the table. Both lookup structures
// live behind a single pointer so a reader can never observe an id without
// its name entry or vice versa.
type snapshot[T any] struct {
	byName map[string]*T
	byID   []*T
}

// Table interns named entities of type T with lock-free reads.
//
// Lookup and the other read methods may be called from any goroutine at any
// time. Insert must be serialized externally (the registry holds one mutex
// across all of its tables).
type Table[T any] struct {
	current atomic.Pointer[snapshot[T]]
}

// NewTable creates an empty table.
func NewTable[T any]() *Table[T] {
	t := &Table[T]{}
	t.current.Store(&snapshot[T]{byName: map[string]*T{}})
	return t
}

// Lookup returns the entity registered under name, if any. It never blocks.
func (t *Table[T]) Lookup(name string) (*T, bool) {
	s := t.current.Load()
	v, ok := s.byName[name]
	return v, ok
}

// ByID returns the entity with the given dense id, if any. It never blocks.
func (t *Table[T]) ByID(id int) (*T, bool) {
	s := t.current.Load()
	if id < 0 || id >= len(s.byID) {
		return nil, false
	}
	return s.byID[id], true
}

// Len returns the number of registered entities.
func (t *Table[T]) Len() int {
	return len(t.current.Load().byID)
}

// All returns the current by-id slice. The slice is immutable; callers must
// not modify it.
func (t *Table[T]) All() []*T {
	return t.current.Load().byID
}

// NextID returns the id the next inserted entity will receive.
func (t *Table[T]) NextID() int {
	return len(t.current.Load().byID)
}

// Insert publishes v under name with the next dense id and returns that id.
// The caller must hold the registry mutex and must have checked that name is
// not yet present. The id invariant (new id == by-id length == by-name size)
// is asserted; a violation is a bug in the registry itself.
func (t *Table[T]) Insert(name string, v *T) int {
	old := t.current.Load()
	id := len(old.byID)
	if id != len(old.byName) {
		panic(fmt.Sprintf("intern: table corrupted: %d ids vs %d names", len(old.byID), len(old.byName)))
	}
	if _, dup := old.byName[name]; dup {
		panic(fmt.Sprintf("intern: duplicate insert of %q", name))
	}

	byName := make(map[string]*T, len(old.byName)+1)
	for k, e := range old.byName {
		byName[k] = e
	}
	byName[name] = v

	byID := make([]*T, id+1)
	copy(byID, old.byID)
	byID[id] = v

	// Store carries the release barrier: a reader that sees the new
	// snapshot sees both fully populated structures.
	t.current.Store(&snapshot[T]{byName: byName, byID: byID})
	return id
}
