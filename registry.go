package logging

import (
	"sync"
	"sync/atomic"
	"weak"

	"github.com/GriffinPlus/dotnet-libs-logging-interface-sub001/bitvec"
	"github.com/GriffinPlus/dotnet-libs-logging-interface-sub001/internal/intern"
)

// Registry is the catalogue of levels, tags and writers.
//
// One mutex serializes all mutation (registration and configuration
// install); every read path works on atomically published snapshots and
// never takes the lock. Registrations and reconfigurations are rare
// relative to activity checks, so the coarse lock trades write-side
// parallelism for read-side simplicity.
//
// Production code normally uses the process-wide instance via Default and
// the package-level helpers; tests construct their own instances with
// NewRegistry.
type Registry struct {
	mu      sync.Mutex
	levels  *intern.Table[Level]
	tags    *intern.Table[Tag]
	writers *intern.Table[Writer]

	// config is the currently installed configuration. Guarded by mu; it
	// is only consulted while registering a writer or installing a new
	// configuration, both of which hold the lock.
	config Configuration

	observers atomic.Pointer[[]Observer]
}

// NewRegistry creates an independent registry seeded with the predefined
// severity levels.
func NewRegistry(opts ...Option) *Registry {
	var o options
	for _, fn := range opts {
		fn(&o)
	}

	r := &Registry{
		levels:  intern.NewTable[Level](),
		tags:    intern.NewTable[Tag](),
		writers: intern.NewTable[Writer](),
		config:  o.config,
	}
	obs := make([]Observer, len(o.observers))
	copy(obs, o.observers)
	r.observers.Store(&obs)

	for _, l := range predefinedLevels {
		r.levels.Insert(l.name, l)
	}
	return r
}

var defaultRegistry = NewRegistry()

// Default returns the process-wide registry instance.
func Default() *Registry { return defaultRegistry }

// GetLevel interns a level by name in the default registry.
func GetLevel(name string) (*Level, error) { return defaultRegistry.Level(name) }

// GetTag interns a tag by name in the default registry.
func GetTag(name string) (*Tag, error) { return defaultRegistry.Tag(name) }

// GetWriter interns a primary writer by name in the default registry.
func GetWriter(name string) (*Writer, error) { return defaultRegistry.Writer(name) }

// InstallConfiguration installs cfg on the default registry.
func InstallConfiguration(cfg Configuration) error {
	return defaultRegistry.InstallConfiguration(cfg)
}

// observerList returns the current observer snapshot without locking.
func (r *Registry) observerList() []Observer {
	return *r.observers.Load()
}

// AddObserver registers an observer. Observers added after registrations
// have happened only see subsequent events.
func (r *Registry) AddObserver(obs Observer) {
	if obs == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	old := *r.observers.Load()
	next := make([]Observer, len(old)+1)
	copy(next, old)
	next[len(old)] = obs
	r.observers.Store(&next)
}

func (r *Registry) notifyMessage(w *Writer, l *Level, text string) {
	for _, o := range r.observerList() {
		o.MessageWritten(w, l, text)
	}
}

// Level returns the level registered under name, interning a new aspect
// level on first use. The sentinel names yield the sentinel levels. The
// fast path is a lock-free snapshot lookup; only a miss takes the mutation
// lock.
func (r *Registry) Level(name string) (*Level, error) {
	if err := checkName("level", name); err != nil {
		return nil, err
	}
	switch name {
	case LevelNone.name:
		return LevelNone, nil
	case LevelAll.name:
		return LevelAll, nil
	}

	if l, ok := r.levels.Lookup(name); ok {
		return l, nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	// Another goroutine may have interned the name in the meantime.
	if l, ok := r.levels.Lookup(name); ok {
		return l, nil
	}
	l := &Level{id: r.levels.NextID(), name: name}
	r.levels.Insert(name, l)
	for _, o := range r.observerList() {
		o.LevelRegistered(l)
	}
	return l, nil
}

// LevelByID returns the level with the given dense id, if registered.
func (r *Registry) LevelByID(id int) (*Level, bool) { return r.levels.ByID(id) }

// Levels returns all registered levels in id order.
func (r *Registry) Levels() []*Level { return r.levels.All() }

// Tag returns the tag registered under name, interning it on first use.
func (r *Registry) Tag(name string) (*Tag, error) {
	if err := checkTagName(name); err != nil {
		return nil, err
	}

	if t, ok := r.tags.Lookup(name); ok {
		return t, nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if t, ok := r.tags.Lookup(name); ok {
		return t, nil
	}
	t := &Tag{id: r.tags.NextID(), name: name}
	r.tags.Insert(name, t)
	for _, o := range r.observerList() {
		o.TagRegistered(t)
	}
	return t, nil
}

// Tags returns all registered tags in id order.
func (r *Registry) Tags() []*Tag { return r.tags.All() }

// Writer returns the primary writer registered under name, creating it on
// first use. A new writer's mask is seeded from the currently installed
// configuration, or left all-inactive when none is installed yet.
func (r *Registry) Writer(name string) (*Writer, error) {
	if err := checkName("writer", name); err != nil {
		return nil, err
	}

	if w, ok := r.writers.Lookup(name); ok {
		return w, nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if w, ok := r.writers.Lookup(name); ok {
		return w, nil
	}
	w := &Writer{registry: r, id: r.writers.NextID(), name: name}
	w.primary = w
	w.storeMask(r.maskLocked(w))
	r.writers.Insert(name, w)
	for _, o := range r.observerList() {
		o.WriterRegistered(w)
	}
	return w, nil
}

// Writers returns all primary writers in id order.
func (r *Registry) Writers() []*Writer { return r.writers.All() }

// maskLocked computes the activity mask for w from the current
// configuration. Callers hold r.mu.
func (r *Registry) maskLocked(w *Writer) bitvec.Vector {
	if r.config == nil {
		// Conservative default until the first install: nothing active.
		return bitvec.Vector{}
	}
	return r.config.ActiveLevelMask(w)
}

// InstallConfiguration makes cfg the current configuration and refreshes
// the activity mask of every live writer, primaries first, then their
// still-live secondaries (pruning dead weak references as encountered).
func (r *Registry) InstallConfiguration(cfg Configuration) error {
	if cfg == nil {
		return ErrNilConfiguration
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.config = cfg
	for _, p := range r.writers.All() {
		r.refreshLocked(p, cfg)
	}
	return nil
}

// refreshLocked recomputes w's mask and cascades into its secondaries.
// Callers hold r.mu.
func (r *Registry) refreshLocked(w *Writer, cfg Configuration) {
	w.storeMask(cfg.ActiveLevelMask(w))
	if !w.IsPrimary() {
		return
	}
	live := w.secondaries[:0]
	for _, ref := range w.secondaries {
		s := ref.Value()
		if s == nil {
			continue // reclaimed, drop the slot
		}
		live = append(live, ref)
		r.refreshLocked(s, cfg)
	}
	w.secondaries = live
}

// newSecondary creates a tag-carrying variant of w's primary, seeds its
// mask from the current configuration and tracks it through a weak
// reference. Dead references accumulated since the last touch are pruned on
// the way.
func (r *Registry) newSecondary(w *Writer, tags TagSet) *Writer {
	r.mu.Lock()
	defer r.mu.Unlock()

	primary := w.primary
	live := primary.secondaries[:0]
	for _, ref := range primary.secondaries {
		if ref.Value() != nil {
			live = append(live, ref)
		}
	}

	s := &Writer{
		registry: r,
		id:       primary.id,
		name:     primary.name,
		tags:     tags,
		primary:  primary,
	}
	s.storeMask(r.maskLocked(s))
	primary.secondaries = append(live, weak.Make(s))
	return s
}
