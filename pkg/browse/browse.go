// Package browse implements the filterable record browser shared by every
// portal screen: a free-text query plus categorical facets reduced over an
// in-memory record store, and a single-selection detail state.
package browse

import "strings"

// AllFacet is the sentinel facet value meaning "no constraint".
const AllFacet = "all"

// Criteria holds the transient filter state for one screen: a free-text
// query and zero or more categorical facet selections. A missing facet,
// an empty value, or AllFacet all mean unconstrained.
type Criteria struct {
	Query  string
	Facets map[string]string
}

// Facet returns the selected value for the named facet, or AllFacet when
// the facet is unset.
func (c Criteria) Facet(name string) string {
	if c.Facets == nil {
		return AllFacet
	}
	v, ok := c.Facets[name]
	if !ok || v == "" {
		return AllFacet
	}
	return v
}

// IsZero reports whether the criteria constrain nothing.
func (c Criteria) IsZero() bool {
	if c.Query != "" {
		return false
	}
	for _, v := range c.Facets {
		if v != "" && v != AllFacet {
			return false
		}
	}
	return true
}

// SearchFields returns the searchable field values of a record; Filter
// matches the query case-insensitively against each of them.
type SearchFields[T any] func(rec T) []string

// FacetValue returns a record's value for a named facet dimension.
type FacetValue[T any] func(rec T, facet string) string

// Filter reduces records to the subset matching criteria. A record matches
// when the query is empty or is a case-insensitive substring of at least
// one searchable field, and every selected facet equals the record's
// corresponding value. The result preserves store order and is a fresh
// slice; Filter never mutates its input and is safe to re-run.
func Filter[T any](records []T, c Criteria, search SearchFields[T], facet FacetValue[T]) []T {
	q := strings.ToLower(c.Query)
	out := make([]T, 0, len(records))
	for _, rec := range records {
		if q != "" && !matchesQuery(search(rec), q) {
			continue
		}
		if !matchesFacets(rec, c, facet) {
			continue
		}
		out = append(out, rec)
	}
	return out
}

func matchesQuery(fields []string, q string) bool {
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}

func matchesFacets[T any](rec T, c Criteria, facet FacetValue[T]) bool {
	for name := range c.Facets {
		want := c.Facet(name)
		if want == AllFacet {
			continue
		}
		if facet == nil || facet(rec, name) != want {
			return false
		}
	}
	return true
}

// CountBy reduces the FULL record store to per-key counts. Derived
// statistics are always computed over the unfiltered store, never over
// the current filter result.
func CountBy[T any](records []T, key func(rec T) string) map[string]int {
	counts := make(map[string]int)
	for _, rec := range records {
		counts[key(rec)]++
	}
	return counts
}

// CountIf returns how many records satisfy pred, over the full store.
func CountIf[T any](records []T, pred func(rec T) bool) int {
	n := 0
	for _, rec := range records {
		if pred(rec) {
			n++
		}
	}
	return n
}

// SumBy totals a numeric projection over the full store.
func SumBy[T any](records []T, val func(rec T) float64) float64 {
	var sum float64
	for _, rec := range records {
		sum += val(rec)
	}
	return sum
}
