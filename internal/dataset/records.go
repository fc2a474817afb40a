package dataset

import "strings"

// Image is one entry in the space gallery.
type Image struct {
	ID          string           `toml:"id"`
	Title       string           `toml:"title"`
	URL         string           `toml:"url"`
	Description string           `toml:"description"`
	Category    string           `toml:"category"`
	Date        string           `toml:"date"` // ISO-8601 calendar date
	Credits     string           `toml:"credits"`
	Info        ImageInfo        `toml:"detailed_info"`
	Technical   TechnicalDetails `toml:"technical_details"`
}

// ImageInfo is the scientific background shown in an image's detailed view.
type ImageInfo struct {
	Location               string   `toml:"location"`
	Distance               string   `toml:"distance"`
	Size                   string   `toml:"size"`
	Age                    string   `toml:"age"`
	Composition            string   `toml:"composition"`
	Temperature            string   `toml:"temperature"`
	DiscoveryDate          string   `toml:"discovery_date"`
	Telescope              string   `toml:"telescope"`
	Wavelength             string   `toml:"wavelength"`
	ExposureTime           string   `toml:"exposure_time"`
	Resolution             string   `toml:"resolution"`
	ScientificSignificance string   `toml:"scientific_significance"`
	RelatedMissions        []string `toml:"related_missions"`
	InterestingFacts       []string `toml:"interesting_facts"`
}

// TechnicalDetails describes how an image was captured and processed.
type TechnicalDetails struct {
	Instrument     string   `toml:"instrument"`
	Filters        []string `toml:"filters"`
	ProcessingDate string   `toml:"processing_date"`
	ImageType      string   `toml:"image_type"`
	Coordinates    string   `toml:"coordinates"`
	Magnitude      string   `toml:"magnitude"`
}

func (r Image) RecordID() string       { return r.ID }
func (r Image) DisplayName() string    { return r.Title }
func (r Image) RecordCategory() string { return r.Category }

// SearchFields covers the title, description and sky location.
func (r Image) SearchFields() []string {
	return []string{r.Title, r.Description, r.Info.Location}
}

// Epoch reports the publication date.
func (r Image) Epoch() (float64, bool) { return ParseEpoch(r.Date) }

// Planet is a solar-system explorer entry.
type Planet struct {
	ID          string          `toml:"id"`
	Name        string          `toml:"name"`
	Category    string          `toml:"category"`
	Color       string          `toml:"color"`
	Moons       int             `toml:"moons"`
	Temperature string          `toml:"temperature"`
	Description string          `toml:"description"`
	Info        BodyInfo        `toml:"detailed_info"`
	Layers      Layers          `toml:"layers"`
	Missions    []MissionRecord `toml:"mission_history"`
}

// BodyInfo is the physical profile shared by planets and explorer bodies.
// Fields a dataset does not author stay empty.
type BodyInfo struct {
	Diameter         string   `toml:"diameter"`
	Mass             string   `toml:"mass"`
	Gravity          string   `toml:"gravity"`
	DayLength        string   `toml:"day_length"`
	YearLength       string   `toml:"year_length"`
	Atmosphere       string   `toml:"atmosphere"`
	Composition      string   `toml:"composition"`
	MagneticField    string   `toml:"magnetic_field"`
	Rings            bool     `toml:"rings"`
	WaterPresence    string   `toml:"water_presence"`
	Exploration      []string `toml:"exploration"`
	InterestingFacts []string `toml:"interesting_facts"`
	SurfaceFeatures  []string `toml:"surface_features"`
	Geology          string   `toml:"geology"`
	Weather          string   `toml:"weather"`
	Seasons          string   `toml:"seasons"`
	Visibility       string   `toml:"visibility"`
	DiscoveryDate    string   `toml:"discovery_date"`
	NamedAfter       string   `toml:"named_after"`
}

// Layers holds a body's internal structure, core outward.
type Layers struct {
	Core       Layer `toml:"core"`
	Mantle     Layer `toml:"mantle"`
	Crust      Layer `toml:"crust"`
	Atmosphere Layer `toml:"atmosphere"`
}

// Layer describes one structural layer.
type Layer struct {
	Description string `toml:"description"`
	Temperature string `toml:"temperature"`
	Thickness   string `toml:"thickness"`
	Composition string `toml:"composition"`
	Pressure    string `toml:"pressure"`
}

// MissionRecord is a historical mission to a planet.
type MissionRecord struct {
	Name        string   `toml:"name"`
	Year        string   `toml:"year"`
	Agency      string   `toml:"agency"`
	Type        string   `toml:"type"`
	Discoveries []string `toml:"discoveries"`
}

func (r Planet) RecordID() string       { return r.ID }
func (r Planet) DisplayName() string    { return r.Name }
func (r Planet) RecordCategory() string { return r.Category }

// SearchFields covers the name and description.
func (r Planet) SearchFields() []string { return []string{r.Name, r.Description} }

// Event is one entry on the cosmic timeline.
type Event struct {
	ID               string   `toml:"id"`
	Title            string   `toml:"title"`
	Date             string   `toml:"date"`
	Description      string   `toml:"description"`
	Category         string   `toml:"category"`
	Significance     string   `toml:"significance"`
	Details          []string `toml:"details"`
	RelatedEvents    []string `toml:"related_events"`
	ScientificImpact string   `toml:"scientific_impact"`
	ModernRelevance  string   `toml:"modern_relevance"`
	KeyFigures       []string `toml:"key_figures"`
	Location         string   `toml:"location"`
	Duration         string   `toml:"duration"`
	Scale            string   `toml:"scale"`
}

func (r Event) RecordID() string       { return r.ID }
func (r Event) DisplayName() string    { return r.Title }
func (r Event) RecordCategory() string { return r.Category }

// SearchFields covers the title, description and every key figure.
func (r Event) SearchFields() []string {
	return append([]string{r.Title, r.Description}, r.KeyFigures...)
}

// Epoch converts the event's date, which may be relative ("4.6 billion
// years ago") or a calendar year ("1957 CE").
func (r Event) Epoch() (float64, bool) { return ParseEpoch(r.Date) }

// Sound is a deep-space radio recording.
type Sound struct {
	ID          string    `toml:"id"`
	Name        string    `toml:"name"`
	Description string    `toml:"description"`
	Source      string    `toml:"source"`
	Color       string    `toml:"color"`
	Frequency   int       `toml:"frequency"` // audible tone in Hz
	Waveform    string    `toml:"waveform"`
	Category    string    `toml:"category"`
	Info        SoundInfo `toml:"detailed_info"`
}

// SoundInfo is the provenance of a recording.
type SoundInfo struct {
	Location               string   `toml:"location"`
	Distance               string   `toml:"distance"`
	DiscoveryDate          string   `toml:"discovery_date"`
	ScientificSignificance string   `toml:"scientific_significance"`
	RecordingDetails       string   `toml:"recording_details"`
	Frequency              string   `toml:"frequency"`
	Duration               string   `toml:"duration"`
	Instrument             string   `toml:"instrument"`
	DataProcessing         string   `toml:"data_processing"`
	RelatedPhenomena       []string `toml:"related_phenomena"`
	InterestingFacts       []string `toml:"interesting_facts"`
}

func (r Sound) RecordID() string       { return r.ID }
func (r Sound) DisplayName() string    { return r.Name }
func (r Sound) RecordCategory() string { return r.Category }

// SearchFields covers the name, description and source.
func (r Sound) SearchFields() []string { return []string{r.Name, r.Description, r.Source} }

// Body is a celestial body in the side-by-side comparison.
type Body struct {
	ID          string   `toml:"id"`
	Name        string   `toml:"name"`
	Type        string   `toml:"type"`
	Diameter    float64  `toml:"diameter"`    // km
	Mass        float64  `toml:"mass"`        // Earth masses
	Temperature float64  `toml:"temperature"` // degrees Celsius
	Color       string   `toml:"color"`
	Description string   `toml:"description"`
	Facts       []string `toml:"facts"`
}

func (r Body) RecordID() string       { return r.ID }
func (r Body) DisplayName() string    { return r.Name }
func (r Body) RecordCategory() string { return r.Type }

// SearchFields covers the name and description.
func (r Body) SearchFields() []string { return []string{r.Name, r.Description} }

// ExplorerBody is a body in the universe explorer.
type ExplorerBody struct {
	ID             string      `toml:"id"`
	Name           string      `toml:"name"`
	Type           string      `toml:"type"`
	Distance       float64     `toml:"distance"`
	Size           float64     `toml:"size"`
	Color          string      `toml:"color"`
	Temperature    string      `toml:"temperature"`
	Description    string      `toml:"description"`
	SoundFrequency int         `toml:"sound_frequency"`
	SoundWaveform  string      `toml:"sound_waveform"`
	TextureURL     string      `toml:"texture_url"`
	Moons          int         `toml:"moons"`
	Rings          *RingSystem `toml:"ring_system"`
	Atmosphere     *Atmosphere `toml:"atmosphere"`
	Info           BodyInfo    `toml:"detailed_info"`
	Layers         Layers      `toml:"layers"`
}

// RingSystem describes a ring system relative to the body's radius.
type RingSystem struct {
	InnerRadius float64 `toml:"inner_radius"`
	OuterRadius float64 `toml:"outer_radius"`
	Texture     string  `toml:"texture"`
	Opacity     float64 `toml:"opacity"`
}

// Atmosphere describes the visible atmospheric halo.
type Atmosphere struct {
	Color     string  `toml:"color"`
	Thickness float64 `toml:"thickness"`
	Opacity   float64 `toml:"opacity"`
}

func (r ExplorerBody) RecordID() string       { return r.ID }
func (r ExplorerBody) DisplayName() string    { return r.Name }
func (r ExplorerBody) RecordCategory() string { return r.Type }

// SearchFields covers the name and description.
func (r ExplorerBody) SearchFields() []string { return []string{r.Name, r.Description} }

// Telescope is an observatory in the telescope simulator.
type Telescope struct {
	ID          string   `toml:"id"`
	Name        string   `toml:"name"`
	Type        string   `toml:"type"`
	Description string   `toml:"description"`
	Wavelengths []string `toml:"wavelengths"`
	Launched    string   `toml:"launched"`
	ImageURL    string   `toml:"image_url"`
}

func (r Telescope) RecordID() string       { return r.ID }
func (r Telescope) DisplayName() string    { return r.Name }
func (r Telescope) RecordCategory() string { return r.Type }

// SearchFields covers the name and description.
func (r Telescope) SearchFields() []string { return []string{r.Name, r.Description} }

// Epoch reports the launch year.
func (r Telescope) Epoch() (float64, bool) { return ParseEpoch(r.Launched) }

// WavelengthKeys returns the filter key for each wavelength band: lower
// case with hyphens removed ("Near-IR" becomes "nearir").
func (r Telescope) WavelengthKeys() []string {
	keys := make([]string, len(r.Wavelengths))
	for i, w := range r.Wavelengths {
		keys[i] = strings.ReplaceAll(strings.ToLower(w), "-", "")
	}
	return keys
}

// SkyObject is a target the telescope simulator can point at.
type SkyObject struct {
	ID          string            `toml:"id"`
	Name        string            `toml:"name"`
	Type        string            `toml:"type"`
	Description string            `toml:"description"`
	Images      map[string]string `toml:"images"` // telescope id to image url
}

func (r SkyObject) RecordID() string       { return r.ID }
func (r SkyObject) DisplayName() string    { return r.Name }
func (r SkyObject) RecordCategory() string { return r.Type }

// SearchFields covers the name and description.
func (r SkyObject) SearchFields() []string { return []string{r.Name, r.Description} }

// Component is a mission builder part.
type Component struct {
	ID           string   `toml:"id"`
	Name         string   `toml:"name"`
	Type         string   `toml:"type"`
	Cost         int64    `toml:"cost"`        // USD
	Reliability  float64  `toml:"reliability"` // percent
	Description  string   `toml:"description"`
	Requirements []string `toml:"requirements"`
}

func (r Component) RecordID() string       { return r.ID }
func (r Component) DisplayName() string    { return r.Name }
func (r Component) RecordCategory() string { return r.Type }

// SearchFields covers the name and description.
func (r Component) SearchFields() []string { return []string{r.Name, r.Description} }

// Script is the scripted mentor's content.
type Script struct {
	Greeting       string     `toml:"greeting"`
	Fallback       string     `toml:"fallback"`
	QuickQuestions []string   `toml:"quick_questions"`
	Rules          []RuleSpec `toml:"rules"`
}

// RuleSpec is one keyword rule as authored. Rules are matched in order.
type RuleSpec struct {
	Name     string   `toml:"name"`
	Keywords []string `toml:"keywords"`
	Response string   `toml:"response"`
}
