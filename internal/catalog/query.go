package catalog

import (
	"cmp"
	"fmt"
	"maps"
	"slices"
	"strings"
)

// All is the filter sentinel that matches every value of a facet.
const All = "all"

// SortKey selects the ordering applied to a query result.
type SortKey int

const (
	// SortNone keeps authoring order.
	SortNone SortKey = iota
	// SortDate orders most recent first.
	SortDate
	// SortName orders by display name, ascending.
	SortName
	// SortCategory orders by category, ascending.
	SortCategory
)

// sortKeyCount is the number of sort keys.
const sortKeyCount = 4

var sortKeyNames = [sortKeyCount]string{
	SortNone:     "none",
	SortDate:     "date",
	SortName:     "name",
	SortCategory: "category",
}

// String returns the key's name as accepted by ParseSortKey.
func (k SortKey) String() string {
	if k >= 0 && int(k) < sortKeyCount {
		return sortKeyNames[k]
	}
	return "unknown"
}

// Next cycles to the following sort key, wrapping around.
func (k SortKey) Next() SortKey {
	return SortKey((int(k) + 1) % sortKeyCount)
}

// ParseSortKey converts a name to a SortKey. The empty string is SortNone.
func ParseSortKey(s string) (SortKey, error) {
	if s == "" {
		return SortNone, nil
	}
	for i, name := range sortKeyNames {
		if strings.EqualFold(s, name) {
			return SortKey(i), nil
		}
	}
	return SortNone, fmt.Errorf("unknown sort key %q (want none, date, name or category)", s)
}

// Query is the filter state applied to a store. The zero value matches
// every record in authoring order.
type Query struct {
	Search  string
	Filters map[string]string
	Sort    SortKey
}

// With returns a copy of q with facet set to value. Setting All (or the
// empty string) removes the filter.
func (q Query) With(facet, value string) Query {
	filters := maps.Clone(q.Filters)
	if filters == nil {
		filters = make(map[string]string)
	}
	if value == "" || value == All {
		delete(filters, facet)
	} else {
		filters[facet] = value
	}
	q.Filters = filters
	return q
}

// Filter returns the value selected for facet, or All.
func (q Query) Filter(facet string) string {
	if v, ok := q.Filters[facet]; ok && v != "" {
		return v
	}
	return All
}

// Result is the ordered output of a query. An empty result is valid.
type Result[R Record] struct {
	Records []R
}

// Count returns the number of matching records.
func (r Result[R]) Count() int { return len(r.Records) }

// Empty reports whether nothing matched.
func (r Result[R]) Empty() bool { return len(r.Records) == 0 }

// Query returns the records that pass every facet filter and contain the
// search term, ordered by q.Sort. A filter naming an unknown facet or a value
// outside the facet's enumeration matches nothing.
func (s *Store[R]) Query(q Query) Result[R] {
	candidates := s.all.Clone()
	for facet, value := range q.Filters {
		if value == "" || value == All {
			continue
		}
		values, ok := s.index[facet]
		if !ok {
			return Result[R]{}
		}
		bm, ok := values[value]
		if !ok {
			return Result[R]{}
		}
		candidates.And(bm)
	}

	needle := strings.ToLower(q.Search)
	out := make([]R, 0, candidates.GetCardinality())
	it := candidates.Iterator()
	for it.HasNext() {
		r := s.records[it.Next()]
		if matchesLower(r, needle) {
			out = append(out, r)
		}
	}

	SortRecords(out, q.Sort)
	return Result[R]{Records: out}
}

// Matches reports whether term is a case-insensitive substring of any of
// r's search fields. The empty term matches everything.
func Matches(r Record, term string) bool {
	return matchesLower(r, strings.ToLower(term))
}

func matchesLower(r Record, needle string) bool {
	if needle == "" {
		return true
	}
	for _, field := range r.SearchFields() {
		if strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}
	return false
}

// SortRecords orders rs in place by key. The sort is stable. Date ordering is
// applied only when every record has a known date; otherwise rs is left in
// its current order.
func SortRecords[R Record](rs []R, key SortKey) {
	switch key {
	case SortName:
		slices.SortStableFunc(rs, func(a, b R) int {
			return strings.Compare(a.DisplayName(), b.DisplayName())
		})
	case SortCategory:
		slices.SortStableFunc(rs, func(a, b R) int {
			return strings.Compare(a.RecordCategory(), b.RecordCategory())
		})
	case SortDate:
		epochs := make(map[string]float64, len(rs))
		for _, r := range rs {
			e, ok := epochOf(r)
			if !ok {
				return
			}
			epochs[r.RecordID()] = e
		}
		slices.SortStableFunc(rs, func(a, b R) int {
			return cmp.Compare(epochs[b.RecordID()], epochs[a.RecordID()])
		})
	}
}

func epochOf(r Record) (float64, bool) {
	c, ok := r.(Chronological)
	if !ok {
		return 0, false
	}
	return c.Epoch()
}
