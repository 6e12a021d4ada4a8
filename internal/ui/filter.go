package ui

import (
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/atomicstack/tile-grid-control/internal/tile"
)

func (m *Model) filteredSpecs() []tile.Spec {
	return FilterSpecs(m.full, m.filter)
}

// FilterSpecs returns the specs matching the supplied filter string. Fuzzy
// title matching is tried first; when it yields nothing, a plain substring
// match over title and id is used as a fallback.
func FilterSpecs(specs []tile.Spec, query string) []tile.Spec {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return append([]tile.Spec(nil), specs...)
	}
	titles := make([]string, len(specs))
	for i, spec := range specs {
		titles[i] = spec.Title
	}
	ranks := fuzzy.RankFindNormalizedFold(trimmed, titles)
	if len(ranks) > 0 {
		matches := make(map[int]struct{}, len(ranks))
		for _, rank := range ranks {
			matches[rank.OriginalIndex] = struct{}{}
		}
		filtered := make([]tile.Spec, 0, len(matches))
		for idx, spec := range specs {
			if _, ok := matches[idx]; ok {
				filtered = append(filtered, spec)
			}
		}
		if len(filtered) > 0 {
			return filtered
		}
	}
	lower := strings.ToLower(trimmed)
	filtered := make([]tile.Spec, 0, len(specs))
	for _, spec := range specs {
		if strings.Contains(strings.ToLower(spec.Title), lower) ||
			strings.Contains(strings.ToLower(spec.ID), lower) {
			filtered = append(filtered, spec)
		}
	}
	return filtered
}
