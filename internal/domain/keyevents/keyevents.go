// Package keyevents selects the events of a match that drive its story:
// goals, cards, substitutions and shots.
package keyevents

import "github.com/okian/matchlens/internal/domain/model"

// IsKey reports whether category is one of the key categories.
// Matching is exact; provider category names are not normalized.
func IsKey(category string) bool {
	switch category {
	case model.CategoryGoal, model.CategoryCard, model.CategorySubstitution, model.CategoryShot:
		return true
	default:
		return false
	}
}

// Filter returns the key events of events in their original order.
// The result is never nil.
func Filter(events []model.Event) []model.Event {
	out := make([]model.Event, 0, len(events)/8)
	for _, e := range events {
		if IsKey(e.Category) {
			out = append(out, e)
		}
	}
	return out
}
