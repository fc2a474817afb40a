package browse

import (
	"slices"

	"github.com/papapumpkin/astronexus/internal/catalog"
)

// List is the state of a searchable, filterable catalog view: the query,
// the cursor into its result, the open record and the expanded rows.
type List[R catalog.Record] struct {
	store    *catalog.Store[R]
	Query    catalog.Query
	Cursor   int
	Open     string // id of the record shown in detail; "" is the list
	Expanded catalog.Expanded
}

// NewList returns a list over store with query q and nothing open.
func NewList[R catalog.Record](store *catalog.Store[R], q catalog.Query) List[R] {
	return List[R]{store: store, Query: q}
}

// Store returns the backing store.
func (l List[R]) Store() *catalog.Store[R] { return l.store }

// Result runs the current query.
func (l List[R]) Result() catalog.Result[R] {
	return l.store.Query(l.Query)
}

// WithSearch replaces the search term.
func (l List[R]) WithSearch(term string) List[R] {
	l.Query.Search = term
	return l.clamp()
}

// WithFilter sets facet to value; catalog.All clears it.
func (l List[R]) WithFilter(facet, value string) List[R] {
	l.Query = l.Query.With(facet, value)
	return l.clamp()
}

// CycleFilter advances facet to its next value, wrapping back to all.
func (l List[R]) CycleFilter(facet string) List[R] {
	values := l.store.Values(facet)
	if len(values) == 0 {
		return l
	}
	i := slices.Index(values, l.Query.Filter(facet))
	return l.WithFilter(facet, values[(i+1)%len(values)])
}

// WithSort sets the sort key.
func (l List[R]) WithSort(k catalog.SortKey) List[R] {
	l.Query.Sort = k
	return l.clamp()
}

// CycleSort advances to the next sort key.
func (l List[R]) CycleSort() List[R] {
	return l.WithSort(l.Query.Sort.Next())
}

// Move shifts the cursor by delta, clamped to the result.
func (l List[R]) Move(delta int) List[R] {
	l.Cursor += delta
	return l.clamp()
}

// Selected returns the record under the cursor.
func (l List[R]) Selected() (R, bool) {
	res := l.Result()
	if l.Cursor < 0 || l.Cursor >= res.Count() {
		var zero R
		return zero, false
	}
	return res.Records[l.Cursor], true
}

// OpenSelected opens the record under the cursor. With an empty result it
// does nothing.
func (l List[R]) OpenSelected() List[R] {
	if r, ok := l.Selected(); ok {
		l.Open = r.RecordID()
	}
	return l
}

// OpenID opens the record with the given id, if it exists.
func (l List[R]) OpenID(id string) List[R] {
	if _, err := l.store.Get(id); err == nil {
		l.Open = id
	}
	return l
}

// Close returns to the list. The query and cursor are kept.
func (l List[R]) Close() List[R] {
	l.Open = ""
	return l
}

// Opened returns the record shown in detail.
func (l List[R]) Opened() (R, bool) {
	if l.Open == "" {
		var zero R
		return zero, false
	}
	r, err := l.store.Get(l.Open)
	return r, err == nil
}

// Toggle flips inline expansion of the record under the cursor.
func (l List[R]) Toggle() List[R] {
	if r, ok := l.Selected(); ok {
		l.Expanded = l.Expanded.Toggle(r.RecordID())
	}
	return l
}

func (l List[R]) clamp() List[R] {
	n := l.Result().Count()
	l.Cursor = max(0, min(l.Cursor, n-1))
	return l
}
