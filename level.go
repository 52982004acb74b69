package logging

import (
	"math"
	"strings"
)

// Level is a named, numerically ordered severity or aspect.
//
// Ids are dense and start at 0 for the predefined severities; aspect levels
// created at runtime extend the range upward. Levels are interned: the same
// name always yields the same *Level for the lifetime of a registry.
type Level struct {
	id   int
	name string
}

// ID returns the level's dense id. Sentinel levels return ids outside the
// dense range.
func (l *Level) ID() int { return l.id }

// Name returns the level's globally unique name.
func (l *Level) Name() string { return l.name }

func (l *Level) String() string { return l.name }

// Predefined severity levels. They exist before any registry access and
// share their objects across all registry instances.
var (
	LevelEmergency     = &Level{id: 0, name: "Emergency"}
	LevelAlert         = &Level{id: 1, name: "Alert"}
	LevelCritical      = &Level{id: 2, name: "Critical"}
	LevelError         = &Level{id: 3, name: "Error"}
	LevelWarning       = &Level{id: 4, name: "Warning"}
	LevelNotice        = &Level{id: 5, name: "Notice"}
	LevelInformational = &Level{id: 6, name: "Informational"}
	LevelDebug         = &Level{id: 7, name: "Debug"}
	LevelTrace         = &Level{id: 8, name: "Trace"}
)

// Filtering sentinels. Both always report active and are reserved for filter
// thresholds; emitting a message at a sentinel level is the sink's problem,
// not the core's.
var (
	// LevelNone sits below every severity (id -1).
	LevelNone = &Level{id: -1, name: "None"}
	// LevelAll sits above every severity and aspect.
	LevelAll = &Level{id: math.MaxInt32, name: "All"}
)

// predefinedLevels seeds every new registry, in id order.
var predefinedLevels = []*Level{
	LevelEmergency,
	LevelAlert,
	LevelCritical,
	LevelError,
	LevelWarning,
	LevelNotice,
	LevelInformational,
	LevelDebug,
	LevelTrace,
}

// isLineBreak reports whether r terminates a line per Unicode.
func isLineBreak(r rune) bool {
	switch r {
	case '\n', '\r', '\v', '\f', '\u0085', '\u2028', '\u2029':
		return true
	}
	return false
}

// checkName validates a level or writer name: it must contain at least one
// non-whitespace character and no line breaks.
func checkName(kind, name string) error {
	if strings.TrimSpace(name) == "" {
		return &InvalidNameError{Kind: kind, Name: name, Reason: "must not be blank"}
	}
	if strings.ContainsFunc(name, isLineBreak) {
		return &InvalidNameError{Kind: kind, Name: name, Reason: "must not contain line breaks"}
	}
	return nil
}
