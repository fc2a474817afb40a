package browse

import (
	"time"

	"github.com/papapumpkin/astronexus/internal/catalog"
	"github.com/papapumpkin/astronexus/internal/dataset"
	"github.com/papapumpkin/astronexus/internal/mentor"
)

// State is the whole application state. Each section owns its own field,
// so switching sections never disturbs another section's filters.
type State struct {
	Section  Section
	Gallery  Gallery
	Planets  Planets
	Timeline List[dataset.Event]
	Explorer Explorer
	Scope    Scope
	Compare  Compare
	Mission  MissionState
	Chat     mentor.Conversation
	Radio    Radio
}

// NewState returns the state at launch: home visible, every view on its
// default selection, the gallery sorted by date and not yet loaded.
func NewState(lib *dataset.Library, now time.Time) State {
	a, b := lib.DefaultBodies()
	return State{
		Section:  SectionHome,
		Gallery:  Gallery{List: NewList(lib.Gallery, catalog.Query{Sort: catalog.SortDate})},
		Planets:  Planets{List: NewList(lib.Planets, catalog.Query{})},
		Timeline: NewList(lib.Timeline, catalog.Query{}),
		Explorer: NewExplorer(lib.Explorer, lib.DefaultExplorerBody()),
		Scope:    NewScope(lib.Telescopes, lib.Objects),
		Compare:  NewCompare(lib.Bodies, a, b),
		Mission:  NewMissionState(lib.Components),
		Chat:     mentor.NewConversation(lib.Mentor.Greeting, now),
		Radio:    NewRadio(lib.Sounds, lib.DefaultSound()),
	}
}

// WithSection shows s.
func (st State) WithSection(s Section) State {
	if s >= 0 && int(s) < sectionCount {
		st.Section = s
	}
	return st
}
