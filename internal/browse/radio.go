package browse

import (
	"github.com/papapumpkin/astronexus/internal/catalog"
	"github.com/papapumpkin/astronexus/internal/dataset"
)

// Radio is the deep-space radio: a filterable list of recordings, the
// tuned recording, and whether it is playing and showing details.
type Radio struct {
	List    List[dataset.Sound]
	Tuned   catalog.Focus[dataset.Sound]
	Playing bool
	Details bool
}

// NewRadio tunes to def with playback stopped.
func NewRadio(store *catalog.Store[dataset.Sound], def dataset.Sound) Radio {
	return Radio{List: NewList(store, catalog.Query{}), Tuned: catalog.NewFocus(def)}
}

// Tune switches to the recording under the cursor. Switching stops
// playback.
func (r Radio) Tune() Radio {
	s, ok := r.List.Selected()
	if !ok {
		return r
	}
	if s.ID != r.Tuned.Current().ID {
		r.Playing = false
	}
	r.Tuned = r.Tuned.Select(s)
	return r
}

// TogglePlay flips playback of the tuned recording.
func (r Radio) TogglePlay() Radio {
	r.Playing = !r.Playing
	return r
}

// ToggleDetails flips the details panel.
func (r Radio) ToggleDetails() Radio {
	r.Details = !r.Details
	return r
}
