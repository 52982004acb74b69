package logging

import "sync/atomic"

// Observer receives registry notifications.
//
// The three registration callbacks are raised synchronously while the
// registry's mutation lock is held: implementations must not block and must
// not call back into the registry. MessageWritten is raised without the
// lock; it reflects whatever mask value was active at the time of the
// IsActive check, with no further ordering guarantee relative to a
// concurrent configuration install.
//
// Embed NoopObserver to implement only the callbacks of interest.
type Observer interface {
	// LevelRegistered is called once for each newly interned level.
	LevelRegistered(l *Level)

	// WriterRegistered is called once for each newly created primary writer.
	WriterRegistered(w *Writer)

	// TagRegistered is called once for each newly interned tag.
	TagRegistered(t *Tag)

	// MessageWritten is called for each message that passed the activity
	// check, carrying the emitting writer, the level and the text.
	MessageWritten(w *Writer, l *Level, text string)
}

// NoopObserver is a no-op implementation of Observer, suitable for
// embedding.
type NoopObserver struct{}

func (NoopObserver) LevelRegistered(*Level)                 {}
func (NoopObserver) WriterRegistered(*Writer)               {}
func (NoopObserver) TagRegistered(*Tag)                     {}
func (NoopObserver) MessageWritten(*Writer, *Level, string) {}

// CountingObserver counts notifications. Useful for tests and basic
// monitoring without external dependencies.
type CountingObserver struct {
	Levels   atomic.Int64
	Writers  atomic.Int64
	Tags     atomic.Int64
	Messages atomic.Int64
}

func (o *CountingObserver) LevelRegistered(*Level)   { o.Levels.Add(1) }
func (o *CountingObserver) WriterRegistered(*Writer) { o.Writers.Add(1) }
func (o *CountingObserver) TagRegistered(*Tag)       { o.Tags.Add(1) }
func (o *CountingObserver) MessageWritten(*Writer, *Level, string) {
	o.Messages.Add(1)
}
