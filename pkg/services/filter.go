package services

import (
	"strings"
	"unicode/utf8"

	"github.com/kerbaras/pokedex/pkg/data"
)

// MinQueryLength is the shortest query that filters; anything shorter shows
// every card.
const MinQueryLength = 3

type FilterResult struct {
	Query     string
	Active    bool
	Visible   map[int]bool // keyed by catalogue index
	Matches   int
	NoResults bool
}

// IsVisible reports whether the card at index should be shown. Cards loaded
// after the filter ran were never matched and stay visible.
func (r FilterResult) IsVisible(index int) bool {
	if !r.Active {
		return true
	}
	visible, seen := r.Visible[index]
	return !seen || visible
}

// Filter matches the query case-insensitively against the display names of
// the records currently in the catalogue.
func Filter(catalogue *data.Catalogue, query string) FilterResult {
	q := strings.ToLower(query)
	records := catalogue.All()
	result := FilterResult{
		Query:   query,
		Visible: make(map[int]bool, len(records)),
	}

	if utf8.RuneCountInString(q) < MinQueryLength {
		for _, rec := range records {
			result.Visible[rec.ID] = true
		}
		result.Matches = len(records)
		return result
	}

	result.Active = true
	for _, rec := range records {
		match := strings.Contains(strings.ToLower(rec.DisplayName()), q)
		result.Visible[rec.ID] = match
		if match {
			result.Matches++
		}
	}
	result.NoResults = result.Matches == 0
	return result
}
