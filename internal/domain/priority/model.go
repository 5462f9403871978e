package priority

import "slices"

// State is the persisted priority overlay. Both fields are keyed by the upstream
// event id in string form.
type State struct {
	EventIDs []string
	Tags     map[string][]string
}

func NewState() State {
	return State{EventIDs: []string{}, Tags: map[string][]string{}}
}

// Clone returns a deep copy so callers can mutate without touching shared state.
func (s State) Clone() State {
	out := State{
		EventIDs: slices.Clone(s.EventIDs),
		Tags:     make(map[string][]string, len(s.Tags)),
	}
	if out.EventIDs == nil {
		out.EventIDs = []string{}
	}
	for id, tags := range s.Tags {
		out.Tags[id] = slices.Clone(tags)
	}
	return out
}

// Normalize drops duplicate ids and duplicate tags per id, keeping first occurrence.
func (s State) Normalize() State {
	out := NewState()
	seen := make(map[string]struct{}, len(s.EventIDs))
	for _, id := range s.EventIDs {
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out.EventIDs = append(out.EventIDs, id)
	}
	for id, tags := range s.Tags {
		if id == "" {
			continue
		}
		unique := make([]string, 0, len(tags))
		for _, tag := range tags {
			if tag == "" || slices.Contains(unique, tag) {
				continue
			}
			unique = append(unique, tag)
		}
		if len(unique) > 0 {
			out.Tags[id] = unique
		}
	}
	return out
}

func (s State) IsPriority(id string) bool {
	return slices.Contains(s.EventIDs, id)
}

func (s State) TagsFor(id string) []string {
	return slices.Clone(s.Tags[id])
}

// TogglePriority flips membership of id and returns the resulting id list.
func (s *State) TogglePriority(id string) []string {
	if idx := slices.Index(s.EventIDs, id); idx >= 0 {
		s.EventIDs = slices.Delete(s.EventIDs, idx, idx+1)
	} else {
		s.EventIDs = append(s.EventIDs, id)
	}
	return slices.Clone(s.EventIDs)
}

// ToggleTag flips membership of tag in the list for id and returns the resulting list.
// An id whose list becomes empty is removed from the map.
func (s *State) ToggleTag(id, tag string) []string {
	if s.Tags == nil {
		s.Tags = map[string][]string{}
	}
	tags := s.Tags[id]
	if idx := slices.Index(tags, tag); idx >= 0 {
		tags = slices.Delete(slices.Clone(tags), idx, idx+1)
	} else {
		tags = append(slices.Clone(tags), tag)
	}

	if len(tags) == 0 {
		delete(s.Tags, id)
		return []string{}
	}
	s.Tags[id] = tags
	return slices.Clone(tags)
}
