// Package dataset holds AstroNexus's authored content. Every dataset is a
// TOML file embedded in the binary and decoded into typed records, which are
// then indexed into catalog stores.
package dataset

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"slices"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/papapumpkin/astronexus/internal/catalog"
)

//go:embed data/*.toml
var content embed.FS

// ErrUnknownStore is returned when a dataset name is not recognized.
var ErrUnknownStore = errors.New("unknown dataset")

// Store names, in the order Names reports them.
const (
	StoreGallery    = "gallery"
	StorePlanets    = "planets"
	StoreTimeline   = "timeline"
	StoreSounds     = "sounds"
	StoreBodies     = "bodies"
	StoreExplorer   = "explorer"
	StoreTelescopes = "telescopes"
	StoreObjects    = "objects"
	StoreComponents = "components"
)

// Category enumerations. Every authored record must use one of these.
var (
	GalleryCategories = []string{
		"nebulae", "galaxies", "planets", "missions", "black-holes",
		"star-clusters", "exoplanets", "solar-system", "deep-space",
	}
	PlanetCategories   = []string{"terrestrial", "gas-giant", "ice-giant"}
	TimelineCategories = []string{"cosmic", "stellar", "galactic", "planetary", "technological", "discovery"}
	TimelineScales     = []string{"universal", "galactic", "stellar", "planetary", "human"}
	SoundCategories    = []string{"planetary", "stellar", "galactic", "cosmic", "mission"}
	BodyTypes          = []string{"planet", "star", "moon"}
	ExplorerTypes      = []string{"star", "planet", "moon", "asteroid", "nebula", "galaxy"}
	TelescopeBands     = []string{"Optical/UV", "Infrared", "X-ray"}
	SkyObjectTypes     = []string{"Supernova Remnant", "Star-forming Region", "Spiral Galaxy"}
	ComponentTypes     = []string{"rocket", "payload", "orbit", "destination"}
)

// FacetScale is the timeline's secondary facet.
const FacetScale = "scale"

// Default record ids for views that always show a selection.
const (
	DefaultCompareA = "earth"
	DefaultCompareB = "jupiter"
	DefaultExplorer = "earth"
)

// Library bundles every dataset.
type Library struct {
	Gallery    *catalog.Store[Image]
	Planets    *catalog.Store[Planet]
	Timeline   *catalog.Store[Event]
	Sounds     *catalog.Store[Sound]
	Bodies     *catalog.Store[Body]
	Explorer   *catalog.Store[ExplorerBody]
	Telescopes *catalog.Store[Telescope]
	Objects    *catalog.Store[SkyObject]
	Components *catalog.Store[Component]
	Mentor     Script
}

type galleryFile struct {
	Images []Image `toml:"images"`
}

type planetsFile struct {
	Planets []Planet `toml:"planets"`
}

type timelineFile struct {
	Events []Event `toml:"events"`
}

type soundsFile struct {
	Sounds []Sound `toml:"sounds"`
}

type bodiesFile struct {
	Bodies []Body `toml:"bodies"`
}

type explorerFile struct {
	Bodies []ExplorerBody `toml:"bodies"`
}

type telescopesFile struct {
	Telescopes []Telescope `toml:"telescopes"`
	Objects    []SkyObject `toml:"objects"`
}

type missionFile struct {
	Components []Component `toml:"components"`
}

// Load decodes the embedded content and builds every store. It only fails
// on an authoring error, which the package tests catch.
func Load() (*Library, error) {
	var (
		gallery    galleryFile
		planets    planetsFile
		timeline   timelineFile
		sounds     soundsFile
		bodies     bodiesFile
		explorer   explorerFile
		telescopes telescopesFile
		mission    missionFile
		script     Script
	)
	for _, f := range []struct {
		name string
		dst  any
	}{
		{"gallery.toml", &gallery},
		{"planets.toml", &planets},
		{"timeline.toml", &timeline},
		{"sounds.toml", &sounds},
		{"bodies.toml", &bodies},
		{"explorer.toml", &explorer},
		{"telescopes.toml", &telescopes},
		{"mission.toml", &mission},
		{"mentor.toml", &script},
	} {
		if err := decode(f.name, f.dst); err != nil {
			return nil, err
		}
	}

	lib := &Library{Mentor: script}
	var err error
	if lib.Gallery, err = catalog.NewStore(StoreGallery, gallery.Images,
		catalog.CategoryFacet[Image](GalleryCategories...)); err != nil {
		return nil, err
	}
	if lib.Planets, err = catalog.NewStore(StorePlanets, planets.Planets,
		catalog.CategoryFacet[Planet](PlanetCategories...)); err != nil {
		return nil, err
	}
	if lib.Timeline, err = catalog.NewStore(StoreTimeline, timeline.Events,
		catalog.CategoryFacet[Event](TimelineCategories...),
		catalog.Facet[Event]{
			Name:   FacetScale,
			Values: TimelineScales,
			Value:  func(e Event) string { return e.Scale },
		}); err != nil {
		return nil, err
	}
	if lib.Sounds, err = catalog.NewStore(StoreSounds, sounds.Sounds,
		catalog.CategoryFacet[Sound](SoundCategories...)); err != nil {
		return nil, err
	}
	if lib.Bodies, err = catalog.NewStore(StoreBodies, bodies.Bodies,
		catalog.CategoryFacet[Body](BodyTypes...)); err != nil {
		return nil, err
	}
	if lib.Explorer, err = catalog.NewStore(StoreExplorer, explorer.Bodies,
		catalog.CategoryFacet[ExplorerBody](ExplorerTypes...)); err != nil {
		return nil, err
	}
	if lib.Telescopes, err = catalog.NewStore(StoreTelescopes, telescopes.Telescopes,
		catalog.CategoryFacet[Telescope](TelescopeBands...)); err != nil {
		return nil, err
	}
	if lib.Objects, err = catalog.NewStore(StoreObjects, telescopes.Objects,
		catalog.CategoryFacet[SkyObject](SkyObjectTypes...)); err != nil {
		return nil, err
	}
	if lib.Components, err = catalog.NewStore(StoreComponents, mission.Components,
		catalog.CategoryFacet[Component](ComponentTypes...)); err != nil {
		return nil, err
	}

	if err := lib.validate(); err != nil {
		return nil, err
	}
	return lib, nil
}

// MustLoad is Load for callers that treat an authoring error as fatal.
func MustLoad() *Library {
	lib, err := Load()
	if err != nil {
		panic(err)
	}
	return lib
}

// decode reads one embedded file strictly: an unknown key is an error.
func decode(name string, dst any) error {
	data, err := content.ReadFile("data/" + name)
	if err != nil {
		return fmt.Errorf("reading %s: %w", name, err)
	}
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("parsing %s: %w", name, err)
	}
	return nil
}

// validate checks cross-record references the stores cannot.
func (l *Library) validate() error {
	for _, id := range []string{DefaultCompareA, DefaultCompareB} {
		if _, err := l.Bodies.Get(id); err != nil {
			return fmt.Errorf("default comparison body: %w", err)
		}
	}
	if _, err := l.Explorer.Get(DefaultExplorer); err != nil {
		return fmt.Errorf("default explorer body: %w", err)
	}
	if l.Sounds.Len() == 0 || l.Telescopes.Len() == 0 || l.Objects.Len() == 0 {
		return errors.New("sounds, telescopes and objects must not be empty")
	}
	for _, e := range l.Timeline.Load() {
		for _, rel := range e.RelatedEvents {
			if _, err := l.Timeline.Get(rel); err != nil {
				return fmt.Errorf("event %s related event: %w", e.ID, err)
			}
		}
	}
	for _, o := range l.Objects.Load() {
		for tid := range o.Images {
			if _, err := l.Telescopes.Get(tid); err != nil {
				return fmt.Errorf("object %s image: %w", o.ID, err)
			}
		}
	}
	if len(l.Mentor.Rules) == 0 || l.Mentor.Fallback == "" {
		return errors.New("mentor script needs rules and a fallback")
	}
	return nil
}

// DefaultBodies returns the initial comparison pair.
func (l *Library) DefaultBodies() (Body, Body) {
	a, _ := l.Bodies.Get(DefaultCompareA)
	b, _ := l.Bodies.Get(DefaultCompareB)
	return a, b
}

// DefaultExplorerBody returns the body the universe explorer opens on.
func (l *Library) DefaultExplorerBody() ExplorerBody {
	b, _ := l.Explorer.Get(DefaultExplorer)
	return b
}

// DefaultSound returns the first radio recording.
func (l *Library) DefaultSound() Sound {
	s, _ := l.Sounds.At(0)
	return s
}

// Names returns every store name.
func Names() []string {
	return []string{
		StoreGallery, StorePlanets, StoreTimeline, StoreSounds, StoreBodies,
		StoreExplorer, StoreTelescopes, StoreObjects, StoreComponents,
	}
}

// Catalog returns a type-erased handle on the named store.
func (l *Library) Catalog(name string) (Catalog, error) {
	switch name {
	case StoreGallery:
		return erase(l.Gallery, first(l.Gallery)), nil
	case StorePlanets:
		return erase(l.Planets, first(l.Planets)), nil
	case StoreTimeline:
		return erase(l.Timeline, first(l.Timeline)), nil
	case StoreSounds:
		return erase(l.Sounds, l.DefaultSound()), nil
	case StoreBodies:
		a, _ := l.DefaultBodies()
		return erase(l.Bodies, a), nil
	case StoreExplorer:
		return erase(l.Explorer, l.DefaultExplorerBody()), nil
	case StoreTelescopes:
		return erase(l.Telescopes, first(l.Telescopes)), nil
	case StoreObjects:
		return erase(l.Objects, first(l.Objects)), nil
	case StoreComponents:
		return erase(l.Components, first(l.Components)), nil
	}
	return Catalog{}, fmt.Errorf("%q (want one of %v): %w", name, Names(), ErrUnknownStore)
}

func first[R catalog.Record](s *catalog.Store[R]) R {
	r, _ := s.At(0)
	return r
}

// Item is a record seen through its presentation interfaces.
type Item interface {
	catalog.Record
	Entry
}

// Catalog is a store whose record type has been erased, for callers that
// pick a dataset by name at runtime.
type Catalog struct {
	name   string
	facets []string
	values func(string) []string
	query  func(catalog.Query) []Item
	get    func(string) (Item, error)
	def    Item
}

func erase[R Item](s *catalog.Store[R], def R) Catalog {
	return Catalog{
		name:   s.Name(),
		facets: s.Facets(),
		values: s.Values,
		query: func(q catalog.Query) []Item {
			res := s.Query(q)
			out := make([]Item, len(res.Records))
			for i, r := range res.Records {
				out[i] = r
			}
			return out
		},
		get: func(id string) (Item, error) {
			r, err := s.Get(id)
			if err != nil {
				return nil, err
			}
			return r, nil
		},
		def: def,
	}
}

// Name returns the store name.
func (c Catalog) Name() string { return c.name }

// Facets returns the store's facet names.
func (c Catalog) Facets() []string { return slices.Clone(c.facets) }

// Values returns the filter choices for facet, "all" first.
func (c Catalog) Values(facet string) []string { return c.values(facet) }

// Query runs q against the store.
func (c Catalog) Query(q catalog.Query) []Item { return c.query(q) }

// Get looks up a record, wrapping catalog.ErrNotFound on a miss.
func (c Catalog) Get(id string) (Item, error) { return c.get(id) }

// Default returns the record shown when a lookup misses.
func (c Catalog) Default() Item { return c.def }
