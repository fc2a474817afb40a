// Package catalog implements the read-only record store shared by every
// browsable dataset: identifier lookup, faceted free-text queries, and the
// focus state a detail view renders from.
//
// A Store is built once from literal records and never mutated. Categorical
// facets are indexed with roaring bitmaps over record positions, so combining
// filters is a bitmap intersection and iteration order is always the
// authoring order.
package catalog

import (
	"errors"
	"fmt"
	"slices"

	"github.com/RoaringBitmap/roaring/v2"
)

// ErrNotFound is returned when a record id is absent from a store.
var ErrNotFound = errors.New("record not found")

// Record is one entry in a read-only dataset.
type Record interface {
	// RecordID returns the identifier, unique within the record's store.
	RecordID() string
	// DisplayName returns the human-readable label used for name ordering.
	DisplayName() string
	// RecordCategory returns the record's value in its store's category
	// enumeration.
	RecordCategory() string
	// SearchFields returns the texts eligible for free-text matching.
	SearchFields() []string
}

// Chronological is implemented by records that can be ordered by date.
// Epoch reports the record's date as fractional years of the common era
// (negative for dates before it) and false when the date is unknown.
type Chronological interface {
	Epoch() (float64, bool)
}

// FacetCategory is the name of the facet every dataset declares.
const FacetCategory = "category"

// Facet is a categorical field with a closed enumeration of values.
type Facet[R Record] struct {
	Name   string
	Values []string
	Value  func(R) string
}

// CategoryFacet returns the category facet over the given enumeration.
func CategoryFacet[R Record](values ...string) Facet[R] {
	return Facet[R]{
		Name:   FacetCategory,
		Values: values,
		Value:  func(r R) string { return r.RecordCategory() },
	}
}

// Store holds an ordered, immutable list of records for one dataset.
type Store[R Record] struct {
	name    string
	records []R
	byID    map[string]int
	facets  []Facet[R]
	index   map[string]map[string]*roaring.Bitmap
	all     *roaring.Bitmap
}

// NewStore builds a store from records in authoring order. It fails when an
// id is empty or repeated, or when a record's facet value lies outside the
// facet's enumeration.
func NewStore[R Record](name string, records []R, facets ...Facet[R]) (*Store[R], error) {
	s := &Store[R]{
		name:    name,
		records: slices.Clone(records),
		byID:    make(map[string]int, len(records)),
		facets:  slices.Clone(facets),
		index:   make(map[string]map[string]*roaring.Bitmap, len(facets)),
		all:     roaring.New(),
	}

	for i, r := range s.records {
		id := r.RecordID()
		if id == "" {
			return nil, fmt.Errorf("catalog %s: record %d has an empty id", name, i)
		}
		if _, dup := s.byID[id]; dup {
			return nil, fmt.Errorf("catalog %s: duplicate id %q", name, id)
		}
		s.byID[id] = i
		s.all.Add(uint32(i))
	}

	for _, f := range s.facets {
		if f.Name == "" || f.Value == nil {
			return nil, fmt.Errorf("catalog %s: facet needs a name and a value func", name)
		}
		if _, dup := s.index[f.Name]; dup {
			return nil, fmt.Errorf("catalog %s: duplicate facet %q", name, f.Name)
		}
		values := make(map[string]*roaring.Bitmap, len(f.Values))
		for _, v := range f.Values {
			values[v] = roaring.New()
		}
		for i, r := range s.records {
			v := f.Value(r)
			bm, ok := values[v]
			if !ok {
				return nil, fmt.Errorf("catalog %s: record %q has %s %q outside %v",
					name, r.RecordID(), f.Name, v, f.Values)
			}
			bm.Add(uint32(i))
		}
		s.index[f.Name] = values
	}

	return s, nil
}

// Name returns the dataset name the store was built with.
func (s *Store[R]) Name() string { return s.name }

// Len returns the number of records.
func (s *Store[R]) Len() int { return len(s.records) }

// Load returns every record in authoring order. The slice is a copy; the
// result is the same on every call.
func (s *Store[R]) Load() []R {
	return slices.Clone(s.records)
}

// At returns the record at position i in authoring order.
func (s *Store[R]) At(i int) (R, bool) {
	if i < 0 || i >= len(s.records) {
		var zero R
		return zero, false
	}
	return s.records[i], true
}

// Get returns the record with the given id, or an error wrapping
// ErrNotFound.
func (s *Store[R]) Get(id string) (R, error) {
	i, ok := s.byID[id]
	if !ok {
		var zero R
		return zero, fmt.Errorf("%s %q: %w", s.name, id, ErrNotFound)
	}
	return s.records[i], nil
}

// GetOr returns the record with the given id, or fallback on a miss.
func (s *Store[R]) GetOr(id string, fallback R) R {
	if r, err := s.Get(id); err == nil {
		return r
	}
	return fallback
}

// Index reports the authoring position of id.
func (s *Store[R]) Index(id string) (int, bool) {
	i, ok := s.byID[id]
	return i, ok
}

// Facets returns the names of the store's facets in declaration order.
func (s *Store[R]) Facets() []string {
	names := make([]string, len(s.facets))
	for i, f := range s.facets {
		names[i] = f.Name
	}
	return names
}

// Values returns the filter choices for a facet, the All sentinel first.
// An unknown facet yields nil.
func (s *Store[R]) Values(facet string) []string {
	for _, f := range s.facets {
		if f.Name == facet {
			return append([]string{All}, f.Values...)
		}
	}
	return nil
}
