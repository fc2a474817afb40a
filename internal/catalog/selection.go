package catalog

import (
	"errors"
	"fmt"
	"maps"
	"slices"
)

// ErrInvalidSlot is returned when a comparison slot index is outside
// [0, SlotCount). It indicates a caller bug, not a runtime condition.
var ErrInvalidSlot = errors.New("invalid comparison slot")

// SlotCount is the number of slots in a Pair.
const SlotCount = 2

// Focus tracks the single record a detail view renders. It always holds a
// record: Clear returns to the default rather than to an empty state.
type Focus[R Record] struct {
	current  R
	fallback R
}

// NewFocus returns a focus on def, which is also its reset target.
func NewFocus[R Record](def R) Focus[R] {
	return Focus[R]{current: def, fallback: def}
}

// Current returns the focused record.
func (f Focus[R]) Current() R { return f.current }

// Select returns a focus on r.
func (f Focus[R]) Select(r R) Focus[R] {
	f.current = r
	return f
}

// Clear returns a focus back on the default record.
func (f Focus[R]) Clear() Focus[R] {
	f.current = f.fallback
	return f
}

// Pair holds the two records of a side-by-side comparison. Slots are
// independent and addressed by index.
type Pair[R Record] struct {
	slots    [SlotCount]R
	defaults [SlotCount]R
}

// NewPair returns a pair whose initial and reset contents are a and b.
func NewPair[R Record](a, b R) Pair[R] {
	return Pair[R]{slots: [SlotCount]R{a, b}, defaults: [SlotCount]R{a, b}}
}

// Select returns a pair with slot replaced by r.
func (p Pair[R]) Select(slot int, r R) (Pair[R], error) {
	if slot < 0 || slot >= SlotCount {
		return p, fmt.Errorf("slot %d: %w", slot, ErrInvalidSlot)
	}
	p.slots[slot] = r
	return p, nil
}

// Slot returns the record in slot.
func (p Pair[R]) Slot(slot int) (R, error) {
	if slot < 0 || slot >= SlotCount {
		var zero R
		return zero, fmt.Errorf("slot %d: %w", slot, ErrInvalidSlot)
	}
	return p.slots[slot], nil
}

// Slots returns both records.
func (p Pair[R]) Slots() (R, R) { return p.slots[0], p.slots[1] }

// Clear returns the pair reset to its defaults.
func (p Pair[R]) Clear() Pair[R] {
	p.slots = p.defaults
	return p
}

// Expanded is the set of record ids whose detail is expanded inline. The
// zero value is an empty set.
type Expanded struct {
	ids map[string]struct{}
}

// Toggle returns a set with id flipped: present ids are removed, absent ids
// are added. The receiver is not modified.
func (e Expanded) Toggle(id string) Expanded {
	ids := maps.Clone(e.ids)
	if ids == nil {
		ids = make(map[string]struct{})
	}
	if _, ok := ids[id]; ok {
		delete(ids, id)
	} else {
		ids[id] = struct{}{}
	}
	return Expanded{ids: ids}
}

// Has reports whether id is expanded.
func (e Expanded) Has(id string) bool {
	_, ok := e.ids[id]
	return ok
}

// Len returns the number of expanded ids.
func (e Expanded) Len() int { return len(e.ids) }

// IDs returns the expanded ids sorted, for stable rendering.
func (e Expanded) IDs() []string {
	return slices.Sorted(maps.Keys(e.ids))
}
