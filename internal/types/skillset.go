// Package types provides the typed records shared across the skill-match
// engine: skill sets, match results, scores, and analysis reports.
package types

import (
	"encoding/json"
	"sort"
)

// SkillSet is a set of canonical skill names extracted from one document.
// A SkillSet is immutable once returned: Union, Intersect and Diff produce
// new sets rather than mutating their receivers, so sets can be shared
// freely between concurrent callers.
type SkillSet struct {
	names map[string]struct{}
}

// NewSkillSet builds a set from the given names. Duplicates collapse.
func NewSkillSet(names ...string) SkillSet {
	s := SkillSet{names: make(map[string]struct{}, len(names))}
	for _, n := range names {
		if n == "" {
			continue
		}
		s.names[n] = struct{}{}
	}
	return s
}

// Has reports whether name is in the set.
func (s SkillSet) Has(name string) bool {
	_, ok := s.names[name]
	return ok
}

// Len returns the number of skills in the set.
func (s SkillSet) Len() int {
	return len(s.names)
}

// Names returns the skill names sorted ascending.
func (s SkillSet) Names() []string {
	out := make([]string, 0, len(s.names))
	for n := range s.names {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

// Union returns a new set holding every skill in s or other.
func (s SkillSet) Union(other SkillSet) SkillSet {
	out := SkillSet{names: make(map[string]struct{}, len(s.names)+len(other.names))}
	for n := range s.names {
		out.names[n] = struct{}{}
	}
	for n := range other.names {
		out.names[n] = struct{}{}
	}
	return out
}

// Intersect returns a new set holding skills present in both s and other.
func (s SkillSet) Intersect(other SkillSet) SkillSet {
	out := SkillSet{names: make(map[string]struct{})}
	for n := range s.names {
		if other.Has(n) {
			out.names[n] = struct{}{}
		}
	}
	return out
}

// Diff returns a new set holding skills present in s but not in other.
func (s SkillSet) Diff(other SkillSet) SkillSet {
	out := SkillSet{names: make(map[string]struct{})}
	for n := range s.names {
		if !other.Has(n) {
			out.names[n] = struct{}{}
		}
	}
	return out
}

// MarshalJSON encodes the set as a sorted array of names.
func (s SkillSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Names())
}

// UnmarshalJSON decodes an array of names into a set.
func (s *SkillSet) UnmarshalJSON(data []byte) error {
	var names []string
	if err := json.Unmarshal(data, &names); err != nil {
		return err
	}
	*s = NewSkillSet(names...)
	return nil
}
