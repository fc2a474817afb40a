package browse

import (
	"github.com/papapumpkin/astronexus/internal/catalog"
	"github.com/papapumpkin/astronexus/internal/dataset"
)

// PlanetView is the tab shown in a planet's detail panel.
type PlanetView int

// Planet detail tabs.
const (
	PlanetOverview PlanetView = iota
	PlanetDetailed
	PlanetLayers
	PlanetMissions
)

// planetViewCount is the number of planet detail tabs.
const planetViewCount = 4

var planetViewNames = [planetViewCount]string{"overview", "detailed", "layers", "missions"}

// Label returns the tab name.
func (v PlanetView) Label() string {
	if v >= 0 && int(v) < planetViewCount {
		return planetViewNames[v]
	}
	return "unknown"
}

// Next cycles to the following tab.
func (v PlanetView) Next() PlanetView {
	return PlanetView((int(v) + 1) % planetViewCount)
}

// Layer is one structural layer of a body.
type Layer int

// Layers, core outward.
const (
	LayerCore Layer = iota
	LayerMantle
	LayerCrust
	LayerAtmosphere
)

// layerCount is the number of layers.
const layerCount = 4

var layerNames = [layerCount]string{"core", "mantle", "crust", "atmosphere"}

// Label returns the layer name.
func (l Layer) Label() string {
	if l >= 0 && int(l) < layerCount {
		return layerNames[l]
	}
	return "unknown"
}

// Next cycles outward, wrapping to the core.
func (l Layer) Next() Layer {
	return Layer((int(l) + 1) % layerCount)
}

// Of returns this layer of ls.
func (l Layer) Of(ls dataset.Layers) dataset.Layer {
	switch l {
	case LayerMantle:
		return ls.Mantle
	case LayerCrust:
		return ls.Crust
	case LayerAtmosphere:
		return ls.Atmosphere
	default:
		return ls.Core
	}
}

// Planets is the solar-system view: a planet list plus the open planet's
// tab and layer.
type Planets struct {
	List  List[dataset.Planet]
	View  PlanetView
	Layer Layer
}

// Open shows the planet under the cursor on its overview tab.
func (p Planets) Open() Planets {
	p.List = p.List.OpenSelected()
	p.View = PlanetOverview
	p.Layer = LayerCore
	return p
}

// NextView cycles the detail tab.
func (p Planets) NextView() Planets {
	p.View = p.View.Next()
	return p
}

// NextLayer cycles the highlighted layer.
func (p Planets) NextLayer() Planets {
	p.Layer = p.Layer.Next()
	return p
}

// ImageView is the tab shown in a gallery image's detail panel.
type ImageView int

// Gallery detail tabs.
const (
	ImageOverview ImageView = iota
	ImageDetailed
	ImageTechnical
)

// imageViewCount is the number of gallery detail tabs.
const imageViewCount = 3

var imageViewNames = [imageViewCount]string{"overview", "detailed", "technical"}

// Label returns the tab name.
func (v ImageView) Label() string {
	if v >= 0 && int(v) < imageViewCount {
		return imageViewNames[v]
	}
	return "unknown"
}

// Next cycles to the following tab.
func (v ImageView) Next() ImageView {
	return ImageView((int(v) + 1) % imageViewCount)
}

// Gallery is the image gallery view. Loaded is false until the listing
// delay has elapsed.
type Gallery struct {
	List   List[dataset.Image]
	View   ImageView
	Loaded bool
}

// Open shows the image under the cursor on its overview tab.
func (g Gallery) Open() Gallery {
	g.List = g.List.OpenSelected()
	g.View = ImageOverview
	return g
}

// NextView cycles the detail tab.
func (g Gallery) NextView() Gallery {
	g.View = g.View.Next()
	return g
}

// ZoomLevel is a named magnification in the universe explorer.
type ZoomLevel struct {
	Name        string
	Scale       float64
	Description string
}

// ZoomLevels lists the explorer's magnifications, closest first.
var ZoomLevels = []ZoomLevel{
	{Name: "Surface Detail", Scale: 0.1, Description: "Extreme close-up surface features and textures"},
	{Name: "Local Scale", Scale: 1, Description: "Regional features and atmospheric layers"},
	{Name: "Planetary Scale", Scale: 2, Description: "Full celestial body with all features visible"},
	{Name: "System Scale", Scale: 5, Description: "Body with moons, rings, and environment"},
	{Name: "Cosmic Scale", Scale: 10, Description: "Wide field stellar neighborhood view"},
}

// DefaultZoom is the index of the explorer's initial zoom level.
const DefaultZoom = 2

// Explorer is the universe explorer: one focused body, its highlighted
// layer, the zoom level and the display toggles.
type Explorer struct {
	store          *catalog.Store[dataset.ExplorerBody]
	Focus          catalog.Focus[dataset.ExplorerBody]
	Layer          Layer
	Zoom           int
	ShowAtmosphere bool
	ShowRings      bool
	ShowMoons      bool
}

// NewExplorer focuses def at the default zoom with every overlay shown.
func NewExplorer(store *catalog.Store[dataset.ExplorerBody], def dataset.ExplorerBody) Explorer {
	return Explorer{
		store:          store,
		Focus:          catalog.NewFocus(def),
		Zoom:           DefaultZoom,
		ShowAtmosphere: true,
		ShowRings:      true,
		ShowMoons:      true,
	}
}

// Body returns the focused body.
func (e Explorer) Body() dataset.ExplorerBody { return e.Focus.Current() }

// Select focuses b and resets the layer.
func (e Explorer) Select(b dataset.ExplorerBody) Explorer {
	e.Focus = e.Focus.Select(b)
	e.Layer = LayerCore
	return e
}

// Move focuses the body delta places away in store order, wrapping.
func (e Explorer) Move(delta int) Explorer {
	n := e.store.Len()
	if n == 0 {
		return e
	}
	i, _ := e.store.Index(e.Body().ID)
	next, _ := e.store.At(((i+delta)%n + n) % n)
	return e.Select(next)
}

// Reset returns to the default body and zoom.
func (e Explorer) Reset() Explorer {
	e.Focus = e.Focus.Clear()
	e.Layer = LayerCore
	e.Zoom = DefaultZoom
	return e
}

// ZoomIn moves one level closer, stopping at the closest.
func (e Explorer) ZoomIn() Explorer {
	e.Zoom = max(e.Zoom-1, 0)
	return e
}

// ZoomOut moves one level further, stopping at the widest.
func (e Explorer) ZoomOut() Explorer {
	e.Zoom = min(e.Zoom+1, len(ZoomLevels)-1)
	return e
}

// ZoomLevel returns the current magnification.
func (e Explorer) ZoomLevel() ZoomLevel { return ZoomLevels[e.Zoom] }

// NextLayer cycles the highlighted layer.
func (e Explorer) NextLayer() Explorer {
	e.Layer = e.Layer.Next()
	return e
}

// ToggleAtmosphere flips the atmosphere overlay.
func (e Explorer) ToggleAtmosphere() Explorer {
	e.ShowAtmosphere = !e.ShowAtmosphere
	return e
}

// ToggleRings flips the ring overlay.
func (e Explorer) ToggleRings() Explorer {
	e.ShowRings = !e.ShowRings
	return e
}

// ToggleMoons flips the moon overlay.
func (e Explorer) ToggleMoons() Explorer {
	e.ShowMoons = !e.ShowMoons
	return e
}
