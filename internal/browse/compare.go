package browse

import (
	"github.com/papapumpkin/astronexus/internal/catalog"
	"github.com/papapumpkin/astronexus/internal/dataset"
	"github.com/papapumpkin/astronexus/internal/derive"
)

// Compare is the side-by-side body comparison. Active is the slot the
// picker keys change.
type Compare struct {
	store     *catalog.Store[dataset.Body]
	Pair      catalog.Pair[dataset.Body]
	Dimension derive.Dimension
	Active    int
}

// NewCompare starts with a and b compared by size.
func NewCompare(store *catalog.Store[dataset.Body], a, b dataset.Body) Compare {
	return Compare{store: store, Pair: catalog.NewPair(a, b), Dimension: derive.DimSize}
}

// Select puts body into slot.
func (c Compare) Select(slot int, body dataset.Body) (Compare, error) {
	p, err := c.Pair.Select(slot, body)
	if err != nil {
		return c, err
	}
	c.Pair = p
	return c, nil
}

// SwitchSlot moves the picker to the other slot.
func (c Compare) SwitchSlot() Compare {
	c.Active = (c.Active + 1) % catalog.SlotCount
	return c
}

// Move replaces the active slot's body with the one delta places away in
// store order, wrapping.
func (c Compare) Move(delta int) Compare {
	cur, err := c.Pair.Slot(c.Active)
	if err != nil {
		return c
	}
	next, _ := c.Select(c.Active, step(c.store, cur, delta))
	return next
}

// WithDimension sets the comparison dimension.
func (c Compare) WithDimension(d derive.Dimension) Compare {
	c.Dimension = d
	return c
}

// CycleDimension advances the comparison dimension.
func (c Compare) CycleDimension() Compare {
	return c.WithDimension(c.Dimension.Next())
}

// Reset restores the default pair and dimension.
func (c Compare) Reset() Compare {
	c.Pair = c.Pair.Clear()
	c.Dimension = derive.DimSize
	c.Active = 0
	return c
}

// Result compares the two slots.
func (c Compare) Result() derive.Comparison {
	a, b := c.Pair.Slots()
	return derive.Compare(a, b, c.Dimension)
}
