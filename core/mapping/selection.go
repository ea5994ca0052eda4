package mapping

import (
	"sort"
	"strings"
)

// SyncPrefix marks form keys that select a field for synchronization.
const SyncPrefix = "sync_"

// Selection is the set of generic field names a caller wants copied.
type Selection map[string]struct{}

// NewSelection builds a selection from field names. Blank names are ignored.
func NewSelection(fields ...string) Selection {
	s := Selection{}
	for _, f := range fields {
		f = strings.TrimSpace(f)
		if f != "" {
			s[f] = struct{}{}
		}
	}
	return s
}

// SelectionFromKeys collects every key carrying the sync_ prefix.
func SelectionFromKeys(keys []string) Selection {
	s := Selection{}
	for _, k := range keys {
		if name, ok := strings.CutPrefix(k, SyncPrefix); ok && name != "" {
			s[name] = struct{}{}
		}
	}
	return s
}

// Has reports whether the field is selected.
func (s Selection) Has(field string) bool {
	_, ok := s[field]
	return ok
}

// Empty reports whether nothing is selected.
func (s Selection) Empty() bool {
	return len(s) == 0
}

// Fields returns the selected names in sorted order.
func (s Selection) Fields() []string {
	out := make([]string, 0, len(s))
	for f := range s {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}
