package logging

import (
	"hash/fnv"
	"sort"
	"strings"
)

// TagSet is an immutable, deduplicated, canonically ordered collection of
// tags. Canonicalization deduplicates by exact name and sorts by
// case-insensitive name, so two sets built from the same tags in any order
// are equal and hash alike.
//
// The zero value is the empty set.
type TagSet struct {
	tags []*Tag
}

// NewTagSet builds the canonical set for the given tags.
func NewTagSet(tags ...*Tag) TagSet {
	return newTagSet(tags)
}

func newTagSet(tags []*Tag) TagSet {
	if len(tags) == 0 {
		return TagSet{}
	}

	// Dedup by exact name. Interning makes same-name tags pointer-equal,
	// but dedup is defined on the name either way.
	seen := make(map[string]struct{}, len(tags))
	unique := make([]*Tag, 0, len(tags))
	for _, t := range tags {
		if _, dup := seen[t.name]; dup {
			continue
		}
		seen[t.name] = struct{}{}
		unique = append(unique, t)
	}

	sort.Slice(unique, func(i, j int) bool {
		a, b := unique[i].name, unique[j].name
		if la, lb := strings.ToLower(a), strings.ToLower(b); la != lb {
			return la < lb
		}
		// Case-sensitive tie-break keeps the order deterministic.
		return a < b
	})

	return TagSet{tags: unique}
}

// Len returns the number of tags in the set.
func (s TagSet) Len() int { return len(s.tags) }

// At returns the tag at index i in canonical order.
func (s TagSet) At(i int) *Tag { return s.tags[i] }

// Names returns the tag names in canonical order.
func (s TagSet) Names() []string {
	names := make([]string, len(s.tags))
	for i, t := range s.tags {
		names[i] = t.name
	}
	return names
}

// Contains reports whether the set holds a tag with the exact given name.
func (s TagSet) Contains(name string) bool {
	for _, t := range s.tags {
		if t.name == name {
			return true
		}
	}
	return false
}

// Equal reports whether both sets hold the same tags. Canonical ordering
// makes this an element-wise comparison.
func (s TagSet) Equal(o TagSet) bool {
	if len(s.tags) != len(o.tags) {
		return false
	}
	for i, t := range s.tags {
		if t.name != o.tags[i].name {
			return false
		}
	}
	return true
}

// Hash returns an order-independent hash of the set (FNV-1a over the
// canonical name sequence). Equal sets hash alike.
func (s TagSet) Hash() uint64 {
	h := fnv.New64a()
	for _, t := range s.tags {
		h.Write([]byte(t.name))
		h.Write([]byte{0})
	}
	return h.Sum64()
}

// union returns the canonical set holding every tag of s plus extra.
func (s TagSet) union(extra []*Tag) TagSet {
	if len(extra) == 0 {
		return s
	}
	merged := make([]*Tag, 0, len(s.tags)+len(extra))
	merged = append(merged, s.tags...)
	merged = append(merged, extra...)
	return newTagSet(merged)
}

func (s TagSet) String() string {
	return "{" + strings.Join(s.Names(), ", ") + "}"
}
