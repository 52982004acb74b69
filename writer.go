package logging

import (
	"sync/atomic"
	"weak"

	"github.com/GriffinPlus/dotnet-libs-logging-interface-sub001/bitvec"
)

// Writer is a named log source, optionally carrying a set of tags.
//
// A primary writer is created on first request for a name and lives for the
// registry's lifetime. Attaching tags derives a secondary writer that shares
// the primary's id and name; secondaries are tracked by weak reference only,
// so dropping the last strong reference lets them be reclaimed.
//
// IsActive is the hot path: a lock-free, allocation-free read of the
// writer's atomically published activity mask.
type Writer struct {
	registry *Registry
	id       int
	name     string
	tags     TagSet
	primary  *Writer
	mask     atomic.Pointer[bitvec.Vector]

	// secondaries tracks tag-derived variants of a primary writer. Dead
	// entries are pruned lazily on the next tag attach or configuration
	// refresh. Guarded by registry.mu; always nil on secondaries.
	secondaries []weak.Pointer[Writer]
}

// ID returns the writer's dense id, shared between a primary and its
// secondaries.
func (w *Writer) ID() int { return w.id }

// Name returns the writer's name, shared between a primary and its
// secondaries.
func (w *Writer) Name() string { return w.name }

func (w *Writer) String() string { return w.name }

// Tags returns the writer's canonical tag set (empty for primary writers).
func (w *Writer) Tags() TagSet { return w.tags }

// IsPrimary reports whether w is the primary writer for its name.
func (w *Writer) IsPrimary() bool { return w.primary == w }

// IsActive reports whether a message at the given level should be emitted.
// The sentinel levels always report active; they must never be used to emit
// (remapping an emit attempt is the sink's contract, not the core's).
func (w *Writer) IsActive(l *Level) bool {
	id := l.id
	if id < 0 || id == LevelAll.id {
		return true
	}
	return w.mask.Load().IsSet(id)
}

// Mask returns a copy of the writer's current active-level mask.
func (w *Writer) Mask() bitvec.Vector {
	return w.mask.Load().Clone()
}

func (w *Writer) storeMask(m bitvec.Vector) {
	w.mask.Store(&m)
}

// WithTag derives a writer additionally carrying the given tag. See
// WithTags.
func (w *Writer) WithTag(name string) (*Writer, error) {
	return w.WithTags(name)
}

// WithTags derives a writer additionally carrying the given tags. Tags the
// writer already carries are ignored; if nothing new remains, w itself is
// returned. Otherwise a secondary writer with the combined canonical tag
// set is created, seeded from the current configuration and tracked by the
// primary through a weak reference.
//
// Two separate calls producing equal tag sets yield two distinct writers;
// callers must not rely on reference identity across derivations.
func (w *Writer) WithTags(names ...string) (*Writer, error) {
	if len(names) == 0 {
		return w, nil
	}
	tags := make([]*Tag, len(names))
	for i, name := range names {
		t, err := w.registry.Tag(name)
		if err != nil {
			return nil, err
		}
		tags[i] = t
	}

	candidate := w.tags.union(tags)
	if candidate.Len() == w.tags.Len() {
		// Every requested tag was already present.
		return w, nil
	}
	return w.registry.newSecondary(w, candidate), nil
}

// Write emits text at the given level if the level is active for this
// writer. Observers are notified without any lock held; the actual message
// pipeline (formatting overloads, buffering, output) lives outside this
// core.
func (w *Writer) Write(l *Level, text string) {
	if !w.IsActive(l) {
		return
	}
	w.registry.notifyMessage(w, l, text)
}
