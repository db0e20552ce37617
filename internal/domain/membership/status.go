package membership

import "strings"

// StatusSet is the configured allow-list of order statuses that qualify a
// buyer for membership. Matching is case-insensitive; the platform has
// changed status casing between API versions.
type StatusSet struct {
	members map[string]struct{}
}

// NewStatusSet builds a set from configured status names.
func NewStatusSet(statuses []string) StatusSet {
	members := make(map[string]struct{}, len(statuses))
	for _, s := range statuses {
		s = strings.ToLower(strings.TrimSpace(s))
		if s == "" {
			continue
		}
		members[s] = struct{}{}
	}
	return StatusSet{members: members}
}

// Contains reports whether the given order status is in the set.
func (s StatusSet) Contains(status string) bool {
	_, ok := s.members[strings.ToLower(strings.TrimSpace(status))]
	return ok
}
