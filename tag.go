package logging

import "strconv"

// Tag is an interned label attachable to a writer for subsystem-based
// filtering. Tags are never removed once registered.
type Tag struct {
	id   int
	name string
}

// ID returns the tag's dense id.
func (t *Tag) ID() int { return t.id }

// Name returns the tag's globally unique name.
func (t *Tag) Name() string { return t.name }

func (t *Tag) String() string { return t.name }

// isTagChar reports whether r may appear in a tag name. Wildcard characters
// ('*', '?') and anchors ('^', '$') are reserved for filter patterns and
// therefore rejected, along with everything outside the allow-list.
func isTagChar(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return true
	}
	switch r {
	case '_', '.', ',', ':', ';', '+', '-', '#', '(', ')', '[', ']', '<', '>':
		return true
	}
	return false
}

// checkTagName validates a tag name against the restricted character set.
func checkTagName(name string) error {
	if name == "" {
		return &InvalidNameError{Kind: "tag", Name: name, Reason: "must not be empty"}
	}
	for _, r := range name {
		if !isTagChar(r) {
			return &InvalidNameError{Kind: "tag", Name: name, Reason: "contains disallowed character " + strconv.QuoteRune(r)}
		}
	}
	return nil
}
