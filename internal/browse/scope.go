package browse

import (
	"slices"
	"strings"

	"github.com/papapumpkin/astronexus/internal/catalog"
	"github.com/papapumpkin/astronexus/internal/dataset"
)

// Tints applied to a telescope image by wavelength filter.
const (
	TintNone     = ""
	TintInfrared = "infrared"
	TintXRay     = "xray"
	TintUV       = "uv"
)

// Scope is the telescope simulator: a telescope, a target and an optional
// wavelength filter drawn from the telescope's bands.
type Scope struct {
	telescopes *catalog.Store[dataset.Telescope]
	objects    *catalog.Store[dataset.SkyObject]
	Telescope  catalog.Focus[dataset.Telescope]
	Object     catalog.Focus[dataset.SkyObject]
	Filter     string
}

// NewScope points the first telescope at the first object, unfiltered.
func NewScope(telescopes *catalog.Store[dataset.Telescope], objects *catalog.Store[dataset.SkyObject]) Scope {
	t, _ := telescopes.At(0)
	o, _ := objects.At(0)
	return Scope{
		telescopes: telescopes,
		objects:    objects,
		Telescope:  catalog.NewFocus(t),
		Object:     catalog.NewFocus(o),
	}
}

// SelectTelescope switches instrument and clears the filter.
func (s Scope) SelectTelescope(t dataset.Telescope) Scope {
	s.Telescope = s.Telescope.Select(t)
	s.Filter = ""
	return s
}

// SelectObject switches target and clears the filter.
func (s Scope) SelectObject(o dataset.SkyObject) Scope {
	s.Object = s.Object.Select(o)
	s.Filter = ""
	return s
}

// MoveTelescope switches to the telescope delta places away, wrapping.
func (s Scope) MoveTelescope(delta int) Scope {
	return s.SelectTelescope(step(s.telescopes, s.Telescope.Current(), delta))
}

// MoveObject switches to the object delta places away, wrapping.
func (s Scope) MoveObject(delta int) Scope {
	return s.SelectObject(step(s.objects, s.Object.Current(), delta))
}

// WithFilter applies a wavelength filter. Keys the telescope does not
// observe in, other than "", are ignored.
func (s Scope) WithFilter(key string) Scope {
	if key == "" || slices.Contains(s.Telescope.Current().WavelengthKeys(), key) {
		s.Filter = key
	}
	return s
}

// CycleFilter steps through no filter and then each band of the telescope.
func (s Scope) CycleFilter() Scope {
	keys := append([]string{""}, s.Telescope.Current().WavelengthKeys()...)
	i := slices.Index(keys, s.Filter)
	s.Filter = keys[(i+1)%len(keys)]
	return s
}

// ImageURL returns the current telescope's view of the current object.
func (s Scope) ImageURL() string {
	return s.Object.Current().Images[s.Telescope.Current().ID]
}

// Tint returns the colour treatment for the active filter.
func (s Scope) Tint() string {
	switch {
	case s.Filter == "xray":
		return TintXRay
	case strings.HasSuffix(s.Filter, "ir"):
		return TintInfrared
	case strings.HasSuffix(s.Filter, "uv"):
		return TintUV
	}
	return TintNone
}

func step[R catalog.Record](store *catalog.Store[R], cur R, delta int) R {
	n := store.Len()
	if n == 0 {
		return cur
	}
	i, _ := store.Index(cur.RecordID())
	next, _ := store.At(((i+delta)%n + n) % n)
	return next
}
