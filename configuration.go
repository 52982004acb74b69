package logging

import (
	"github.com/GriffinPlus/dotnet-libs-logging-interface-sub001/bitvec"
)

// Configuration maps a writer to its active-level bitmask (bit index ==
// level id).
//
// ActiveLevelMask is invoked with the registry's mutation lock held, once
// per writer when a configuration is installed and once when a writer is
// created afterwards. Implementations must be safe for concurrent use and
// must not call back into the registry (registering a level, tag or writer
// from inside ActiveLevelMask would deadlock).
type Configuration interface {
	ActiveLevelMask(w *Writer) bitvec.Vector
}

// ThresholdConfig is a minimal Configuration activating every severity up
// to and including a threshold level, for all writers alike. Aspect levels
// are toggled as a group.
//
// It covers the common "log everything up to Notice" case and serves as a
// test double; rule-based matching on writer names and tags belongs to a
// full configuration implementation outside this core.
type ThresholdConfig struct {
	threshold *Level
	aspects   bool
}

// NewThresholdConfig creates a configuration activating severities with
// id <= threshold.ID(). LevelAll activates everything, LevelNone disables
// all severities. aspects controls whether lazily created aspect levels are
// active.
func NewThresholdConfig(threshold *Level, aspects bool) *ThresholdConfig {
	if threshold == nil {
		threshold = LevelNone
	}
	return &ThresholdConfig{threshold: threshold, aspects: aspects}
}

// ActiveLevelMask implements Configuration. The returned mask stores one
// word covering the predefined severities; aspect activity beyond the
// stored range is expressed through the padding value.
func (c *ThresholdConfig) ActiveLevelMask(w *Writer) bitvec.Vector {
	if c.threshold == LevelAll {
		return bitvec.New(32, true, true)
	}

	v := bitvec.New(32, false, c.aspects)
	maxSeverity := LevelTrace.ID()
	limit := c.threshold.ID()
	if limit > maxSeverity {
		limit = maxSeverity
	}
	if limit >= 0 {
		v.SetRange(0, limit+1)
	}
	if c.aspects {
		// Aspect ids start right after the severities; the first word's
		// tail belongs to them, the padding covers the rest.
		v.SetRange(maxSeverity+1, v.Size()-maxSeverity-1)
	}
	return v
}
