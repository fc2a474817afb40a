package browse

import (
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/papapumpkin/astronexus/internal/catalog"
	"github.com/papapumpkin/astronexus/internal/dataset"
	"github.com/papapumpkin/astronexus/internal/derive"
)

func newState(t *testing.T) (State, *dataset.Library) {
	t.Helper()
	lib, err := dataset.Load()
	if err != nil {
		t.Fatalf("dataset.Load: %v", err)
	}
	return NewState(lib, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)), lib
}

func TestSectionNavigation(t *testing.T) {
	t.Parallel()

	if got := SectionHome.Prev(); got != SectionRadio {
		t.Errorf("home.Prev() = %s", got.Label())
	}
	if got := SectionRadio.Next(); got != SectionHome {
		t.Errorf("radio.Next() = %s", got.Label())
	}

	tests := []struct {
		n    int
		want Section
		ok   bool
	}{
		{1, SectionHome, true},
		{3, SectionGallery, true},
		{9, SectionMentor, true},
		{0, SectionRadio, true},
		{10, SectionHome, false},
		{-1, SectionHome, false},
	}
	for _, tt := range tests {
		got, ok := FromNumber(tt.n)
		if got != tt.want || ok != tt.ok {
			t.Errorf("FromNumber(%d) = %s, %v", tt.n, got.Label(), ok)
		}
	}

	for _, s := range Sections() {
		back, ok := FromNumber(s.Key())
		if !ok || back != s {
			t.Errorf("Key round trip failed for %s", s.Label())
		}
		parsed, err := ParseSection(s.Label())
		if err != nil || parsed != s {
			t.Errorf("ParseSection(%q) = %v, %v", s.Label(), parsed, err)
		}
	}
	if _, err := ParseSection("cockpit"); err == nil {
		t.Error("ParseSection(cockpit) should fail")
	}
}

func TestNewStateDefaults(t *testing.T) {
	t.Parallel()
	st, _ := newState(t)

	if st.Section != SectionHome {
		t.Errorf("default section = %s", st.Section.Label())
	}
	a, b := st.Compare.Pair.Slots()
	if a.ID != "earth" || b.ID != "jupiter" || st.Compare.Dimension != derive.DimSize {
		t.Errorf("compare defaults = %s/%s/%s", a.ID, b.ID, st.Compare.Dimension)
	}
	if st.Explorer.Body().ID != "earth" || st.Explorer.ZoomLevel().Name != "Planetary Scale" {
		t.Errorf("explorer defaults = %s @ %s", st.Explorer.Body().ID, st.Explorer.ZoomLevel().Name)
	}
	if st.Radio.Tuned.Current().ID != "pulsar-b0329" || st.Radio.Playing {
		t.Errorf("radio defaults = %s playing=%v", st.Radio.Tuned.Current().ID, st.Radio.Playing)
	}
	if st.Gallery.List.Query.Sort != catalog.SortDate || st.Gallery.Loaded {
		t.Errorf("gallery defaults = %+v", st.Gallery)
	}
	if st.Chat.Len() != 1 {
		t.Errorf("chat should start with the greeting, has %d messages", st.Chat.Len())
	}
}

func TestSectionsKeepTheirOwnState(t *testing.T) {
	t.Parallel()
	st, _ := newState(t)

	st.Timeline = st.Timeline.WithSearch("star")
	st = st.WithSection(SectionGallery)
	st.Gallery.List = st.Gallery.List.WithFilter(catalog.FacetCategory, "planets")
	st = st.WithSection(SectionTimeline)

	if st.Timeline.Query.Search != "star" {
		t.Errorf("timeline search lost: %q", st.Timeline.Query.Search)
	}
	if st.Gallery.List.Query.Filter(catalog.FacetCategory) != "planets" {
		t.Error("gallery filter lost")
	}
	if st.Section != SectionTimeline {
		t.Errorf("section = %s", st.Section.Label())
	}
	if got := st.WithSection(Section(42)).Section; got != SectionTimeline {
		t.Errorf("invalid section accepted: %d", got)
	}
}

func TestListOpenClosePreservesQuery(t *testing.T) {
	t.Parallel()
	st, _ := newState(t)

	l := st.Timeline.WithSearch("telescope").Move(1)
	opened := l.OpenSelected()
	if opened.Open == "" {
		t.Fatal("OpenSelected did nothing")
	}
	rec, ok := opened.Opened()
	if !ok || rec.ID != opened.Open {
		t.Fatalf("Opened() = %v, %v", rec.ID, ok)
	}

	closed := opened.Close()
	if closed.Open != "" {
		t.Error("Close left a record open")
	}
	if closed.Query.Search != "telescope" || closed.Cursor != l.Cursor {
		t.Errorf("Close lost list state: %+v", closed.Query)
	}
}

func TestListCursorClamps(t *testing.T) {
	t.Parallel()
	st, _ := newState(t)

	l := st.Timeline.Move(100)
	if l.Cursor != 9 {
		t.Errorf("cursor = %d, want 9", l.Cursor)
	}
	l = l.WithFilter(catalog.FacetCategory, "stellar")
	if l.Cursor != 0 {
		t.Errorf("cursor after narrowing = %d, want 0", l.Cursor)
	}
	l = l.Move(-5)
	if l.Cursor != 0 {
		t.Errorf("cursor = %d, want 0", l.Cursor)
	}

	empty := l.WithSearch("zzzz")
	if empty.Result().Count() != 0 {
		t.Fatal("expected empty result")
	}
	if empty.OpenSelected().Open != "" {
		t.Error("OpenSelected on an empty result opened something")
	}
	if _, ok := empty.Selected(); ok {
		t.Error("Selected on an empty result reported a record")
	}
}

func TestListCycleFilterWraps(t *testing.T) {
	t.Parallel()
	st, lib := newState(t)

	l := st.Timeline
	values := lib.Timeline.Values(dataset.FacetScale)
	for i := 1; i <= len(values); i++ {
		l = l.CycleFilter(dataset.FacetScale)
		want := values[i%len(values)]
		if got := l.Query.Filter(dataset.FacetScale); got != want {
			t.Fatalf("cycle %d: filter = %q, want %q", i, got, want)
		}
	}
	if got := l.CycleFilter("nope"); !cmp.Equal(got.Query, l.Query) {
		t.Error("cycling an unknown facet changed the query")
	}
}

func TestListToggleExpansion(t *testing.T) {
	t.Parallel()
	st, _ := newState(t)

	l := st.Timeline.Toggle()
	if !l.Expanded.Has("1") {
		t.Fatal("first event not expanded")
	}
	l = l.Move(2).Toggle()
	if diff := cmp.Diff([]string{"1", "3"}, l.Expanded.IDs()); diff != "" {
		t.Errorf("expanded mismatch (-want +got):\n%s", diff)
	}
	l = l.Move(-2).Toggle()
	if l.Expanded.Has("1") {
		t.Error("toggle did not collapse")
	}
}

func TestPlanetsTabs(t *testing.T) {
	t.Parallel()
	st, _ := newState(t)

	p := st.Planets.NextView().NextLayer().Open()
	if p.View != PlanetOverview || p.Layer != LayerCore {
		t.Errorf("Open should reset tabs: %s/%s", p.View.Label(), p.Layer.Label())
	}
	p = p.NextView().NextView()
	if p.View != PlanetLayers {
		t.Errorf("view = %s", p.View.Label())
	}
	p = p.NextLayer().NextLayer().NextLayer().NextLayer()
	if p.Layer != LayerCore {
		t.Errorf("layer should wrap to core, got %s", p.Layer.Label())
	}
	planet, _ := p.List.Opened()
	if got := LayerAtmosphere.Of(planet.Layers); got != planet.Layers.Atmosphere {
		t.Errorf("Of(atmosphere) = %+v", got)
	}
}

func TestExplorerZoomClamps(t *testing.T) {
	t.Parallel()
	st, _ := newState(t)

	e := st.Explorer
	for i := 0; i < 10; i++ {
		e = e.ZoomIn()
	}
	if e.Zoom != 0 {
		t.Errorf("zoom = %d, want 0", e.Zoom)
	}
	for i := 0; i < 10; i++ {
		e = e.ZoomOut()
	}
	if e.Zoom != len(ZoomLevels)-1 {
		t.Errorf("zoom = %d, want %d", e.Zoom, len(ZoomLevels)-1)
	}
	if e.Reset().Zoom != DefaultZoom {
		t.Error("Reset did not restore zoom")
	}
}

func TestExplorerMoveWraps(t *testing.T) {
	t.Parallel()
	st, lib := newState(t)

	e := st.Explorer.NextLayer().Move(1)
	if e.Body().ID != "mars" || e.Layer != LayerCore {
		t.Errorf("Move(1) from earth = %s layer %s", e.Body().ID, e.Layer.Label())
	}
	e = e.Move(lib.Explorer.Len())
	if e.Body().ID != "mars" {
		t.Errorf("full cycle landed on %s", e.Body().ID)
	}
	first, _ := lib.Explorer.At(0)
	if got := e.Select(first).Move(-1).Body().ID; got != "neptune" {
		t.Errorf("Move(-1) from first = %s", got)
	}
	if got := e.Reset().Body().ID; got != "earth" {
		t.Errorf("Reset = %s", got)
	}
	if e.ToggleRings().ShowRings == e.ShowRings {
		t.Error("ToggleRings did nothing")
	}
}

func TestScopeFilterResets(t *testing.T) {
	t.Parallel()
	st, _ := newState(t)

	s := st.Scope.CycleFilter()
	if s.Filter != "visible" {
		t.Fatalf("first hubble filter = %q", s.Filter)
	}
	s = s.CycleFilter()
	if s.Filter != "nearuv" || s.Tint() != TintUV {
		t.Errorf("filter %q tint %q", s.Filter, s.Tint())
	}
	if got := s.MoveObject(1); got.Filter != "" {
		t.Error("changing object kept the filter")
	}
	if got := s.MoveTelescope(1); got.Filter != "" || got.Telescope.Current().ID != "webb" {
		t.Errorf("changing telescope: filter %q, telescope %s", got.Filter, got.Telescope.Current().ID)
	}

	if got := s.WithFilter("xray"); got.Filter != "nearuv" {
		t.Error("hubble accepted an x-ray filter")
	}
	chandra := s.MoveTelescope(-1)
	if chandra.Telescope.Current().ID != "chandra" {
		t.Fatalf("Move(-1) from hubble = %s", chandra.Telescope.Current().ID)
	}
	if got := chandra.WithFilter("xray"); got.Tint() != TintXRay {
		t.Errorf("chandra xray tint = %q", got.Tint())
	}
	if chandra.ImageURL() == "" {
		t.Error("no image for chandra")
	}
}

func TestCompareState(t *testing.T) {
	t.Parallel()
	st, lib := newState(t)

	sun, err := lib.Bodies.Get("sun")
	if err != nil {
		t.Fatal(err)
	}
	c, err := st.Compare.Select(1, sun)
	if err != nil {
		t.Fatalf("Select: %v", err)
	}
	c = c.WithDimension(derive.DimMass)
	if r := c.Result(); r.Larger.ID != "sun" || r.Ratio != 333000 {
		t.Errorf("Result = %s x%v", r.Larger.ID, r.Ratio)
	}

	if _, err := c.Select(2, sun); !errors.Is(err, catalog.ErrInvalidSlot) {
		t.Errorf("Select(2) err = %v", err)
	}

	moved := c.SwitchSlot().Move(1)
	if _, b := moved.Pair.Slots(); b.ID != "mars" {
		t.Errorf("Move(1) on slot 1 from sun = %s", b.ID)
	}

	reset := moved.Reset()
	a, b := reset.Pair.Slots()
	if a.ID != "earth" || b.ID != "jupiter" || reset.Dimension != derive.DimSize || reset.Active != 0 {
		t.Errorf("Reset = %s/%s/%s slot %d", a.ID, b.ID, reset.Dimension, reset.Active)
	}
}

func TestMissionState(t *testing.T) {
	t.Parallel()
	st, lib := newState(t)

	m := st.Mission
	if _, ok := m.Start(); ok {
		t.Error("empty mission started")
	}
	if m.Stats() != (derive.Stats{}) {
		t.Errorf("empty stats = %+v", m.Stats())
	}

	for _, id := range []string{"falcon-9", "communications-sat", "geo", "earth"} {
		c, err := lib.Components.Get(id)
		if err != nil {
			t.Fatal(err)
		}
		if m, err = m.Choose(c); err != nil {
			t.Fatalf("Choose(%s): %v", id, err)
		}
	}
	if len(m.Issues()) != 0 {
		t.Errorf("issues = %v", m.Issues())
	}

	running, ok := m.Start()
	if !ok || !running.Simulating {
		t.Fatal("complete mission did not start")
	}
	if _, again := running.Start(); again {
		t.Error("second Start accepted while simulating")
	}
	leo, _ := lib.Components.Get("leo")
	blocked, _ := running.Choose(leo)
	if orbit, _ := blocked.Mission.Get(derive.SlotOrbit); orbit.ID != "geo" {
		t.Errorf("Choose changed the orbit mid-simulation to %s", orbit.ID)
	}

	done := running.Finish(derive.Outcome{Success: true, Probability: 90})
	if done.Simulating || !done.HasOutcome {
		t.Fatalf("Finish = %+v", done)
	}
	changed, _ := done.Choose(leo)
	if changed.HasOutcome {
		t.Error("choosing a component kept the stale outcome")
	}
	if got := changed.Issues(); len(got) != 1 {
		t.Errorf("comm sat in LEO issues = %v", got)
	}

	if r := done.Reset(); len(r.Mission.Components()) != 0 || r.HasOutcome {
		t.Errorf("Reset = %+v", r)
	}
	if got := running.Abort(); got.Simulating || got.HasOutcome {
		t.Errorf("Abort = %+v", got)
	}
}

func TestMissionCursor(t *testing.T) {
	t.Parallel()
	st, lib := newState(t)

	m := st.Mission.Move(-3)
	if m.Cursor != 0 {
		t.Errorf("cursor = %d", m.Cursor)
	}
	m = m.Move(1000)
	if m.Cursor != lib.Components.Len()-1 {
		t.Errorf("cursor = %d", m.Cursor)
	}
	m, err := m.ChooseHighlighted()
	if err != nil {
		t.Fatal(err)
	}
	if got, ok := m.Mission.Get(derive.SlotDestination); !ok || got.ID != "deep-space" {
		t.Errorf("destination = %s, %v", got.ID, ok)
	}
}

func TestRadio(t *testing.T) {
	t.Parallel()
	st, _ := newState(t)

	r := st.Radio.TogglePlay()
	if !r.Playing {
		t.Fatal("TogglePlay did not start")
	}
	same := r.Tune()
	if !same.Playing {
		t.Error("re-tuning the same recording stopped playback")
	}
	r.List = r.List.Move(1)
	switched := r.Tune()
	if switched.Playing || switched.Tuned.Current().ID != "saturn-radio" {
		t.Errorf("Tune = %s playing=%v", switched.Tuned.Current().ID, switched.Playing)
	}
	if !switched.ToggleDetails().Details {
		t.Error("ToggleDetails did nothing")
	}
	filtered := switched
	filtered.List = filtered.List.WithFilter(catalog.FacetCategory, "mission")
	if filtered.List.Result().Count() != 0 {
		t.Fatal("no mission recordings are authored")
	}
	if got := filtered.Tune(); got.Tuned.Current().ID != "saturn-radio" {
		t.Error("Tune on an empty list changed the recording")
	}
}
