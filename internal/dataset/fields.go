package dataset

import (
	"fmt"
	"strconv"
	"strings"
)

// Field is one labelled line of a record's detail view. A field carries
// either a scalar Value or a list of Items.
type Field struct {
	Label string
	Value string
	Items []string
}

// Entry is a record that can describe itself for list rows and detail
// panels.
type Entry interface {
	// Summary returns a one-line description for list rows.
	Summary() string
	// Fields returns the detail view content in display order.
	Fields() []Field
}

// fieldList accumulates fields, dropping empty ones so optional data never
// renders as a blank label.
type fieldList []Field

func (l *fieldList) add(label, value string) {
	if strings.TrimSpace(value) == "" {
		return
	}
	*l = append(*l, Field{Label: label, Value: value})
}

func (l *fieldList) items(label string, items []string) {
	if len(items) == 0 {
		return
	}
	*l = append(*l, Field{Label: label, Items: items})
}

func (l *fieldList) layer(name string, layer Layer) {
	if layer == (Layer{}) {
		return
	}
	parts := []string{layer.Description}
	for _, kv := range [][2]string{
		{"temperature", layer.Temperature},
		{"thickness", layer.Thickness},
		{"composition", layer.Composition},
		{"pressure", layer.Pressure},
	} {
		if kv[1] != "" {
			parts = append(parts, kv[0]+": "+kv[1])
		}
	}
	l.add(name, strings.Join(parts, "; "))
}

func (l *fieldList) bodyInfo(info BodyInfo) {
	l.add("Diameter", info.Diameter)
	l.add("Mass", info.Mass)
	l.add("Gravity", info.Gravity)
	l.add("Day length", info.DayLength)
	l.add("Year length", info.YearLength)
	l.add("Atmosphere", info.Atmosphere)
	l.add("Composition", info.Composition)
	l.add("Magnetic field", info.MagneticField)
	l.add("Water", info.WaterPresence)
	l.add("Geology", info.Geology)
	l.add("Weather", info.Weather)
	l.add("Seasons", info.Seasons)
	l.add("Visibility", info.Visibility)
	l.add("Discovered", info.DiscoveryDate)
	l.add("Named after", info.NamedAfter)
	l.items("Surface features", info.SurfaceFeatures)
	l.items("Exploration", info.Exploration)
	l.items("Interesting facts", info.InterestingFacts)
}

// Summary returns the category and date.
func (r Image) Summary() string {
	return fmt.Sprintf("%s · %s · %s", r.Category, r.Date, r.Credits)
}

// Fields returns the overview, the detailed info and the technical details.
func (r Image) Fields() []Field {
	var l fieldList
	l.add("Title", r.Title)
	l.add("Category", r.Category)
	l.add("Date", r.Date)
	l.add("Credits", r.Credits)
	l.add("Description", r.Description)
	l.add("URL", r.URL)
	l = append(l, r.InfoFields()...)
	l = append(l, r.TechnicalFields()...)
	return l
}

// InfoFields returns only the scientific background.
func (r Image) InfoFields() []Field {
	var l fieldList
	l.add("Location", r.Info.Location)
	l.add("Distance", r.Info.Distance)
	l.add("Size", r.Info.Size)
	l.add("Age", r.Info.Age)
	l.add("Composition", r.Info.Composition)
	l.add("Temperature", r.Info.Temperature)
	l.add("Discovered", r.Info.DiscoveryDate)
	l.add("Telescope", r.Info.Telescope)
	l.add("Wavelength", r.Info.Wavelength)
	l.add("Exposure", r.Info.ExposureTime)
	l.add("Resolution", r.Info.Resolution)
	l.add("Significance", r.Info.ScientificSignificance)
	l.items("Related missions", r.Info.RelatedMissions)
	l.items("Interesting facts", r.Info.InterestingFacts)
	return l
}

// TechnicalFields returns only the capture and processing details.
func (r Image) TechnicalFields() []Field {
	var l fieldList
	l.add("Instrument", r.Technical.Instrument)
	l.items("Filters", r.Technical.Filters)
	l.add("Processed", r.Technical.ProcessingDate)
	l.add("Image type", r.Technical.ImageType)
	l.add("Coordinates", r.Technical.Coordinates)
	l.add("Magnitude", r.Technical.Magnitude)
	return l
}

// Summary returns the planet class, temperature and moon count.
func (r Planet) Summary() string {
	return fmt.Sprintf("%s · %s · %d moons", r.Category, r.Temperature, r.Moons)
}

// Fields returns the overview followed by the physical profile.
func (r Planet) Fields() []Field {
	var l fieldList
	l.add("Name", r.Name)
	l.add("Class", r.Category)
	l.add("Temperature", r.Temperature)
	l.add("Moons", strconv.Itoa(r.Moons))
	l.add("Rings", yesNo(r.Info.Rings))
	l.add("Description", r.Description)
	l.bodyInfo(r.Info)
	return l
}

// LayerFields returns the four structural layers, core outward.
func (r Planet) LayerFields() []Field {
	return layerFields(r.Layers)
}

// MissionFields returns one field per historical mission.
func (r Planet) MissionFields() []Field {
	var l fieldList
	for _, m := range r.Missions {
		l = append(l, Field{
			Label: fmt.Sprintf("%s (%s)", m.Name, m.Year),
			Value: fmt.Sprintf("%s · %s", m.Agency, m.Type),
			Items: m.Discoveries,
		})
	}
	return l
}

// Summary returns the date, category and scale.
func (r Event) Summary() string {
	return fmt.Sprintf("%s · %s · %s", r.Date, r.Category, r.Scale)
}

// Fields returns the full event record.
func (r Event) Fields() []Field {
	var l fieldList
	l.add("Title", r.Title)
	l.add("Date", r.Date)
	l.add("Category", r.Category)
	l.add("Scale", r.Scale)
	l.add("Location", r.Location)
	l.add("Duration", r.Duration)
	l.add("Description", r.Description)
	l.add("Significance", r.Significance)
	l.items("Details", r.Details)
	l.add("Scientific impact", r.ScientificImpact)
	l.add("Modern relevance", r.ModernRelevance)
	l.items("Key figures", r.KeyFigures)
	l.items("Related events", r.RelatedEvents)
	return l
}

// Summary returns the category, tone and source.
func (r Sound) Summary() string {
	return fmt.Sprintf("%s · %d Hz %s · %s", r.Category, r.Frequency, r.Waveform, r.Source)
}

// Fields returns the recording and its provenance.
func (r Sound) Fields() []Field {
	var l fieldList
	l.add("Name", r.Name)
	l.add("Category", r.Category)
	l.add("Source", r.Source)
	l.add("Tone", fmt.Sprintf("%d Hz %s", r.Frequency, r.Waveform))
	l.add("Description", r.Description)
	l.add("Location", r.Info.Location)
	l.add("Distance", r.Info.Distance)
	l.add("Discovered", r.Info.DiscoveryDate)
	l.add("Significance", r.Info.ScientificSignificance)
	l.add("Recording", r.Info.RecordingDetails)
	l.add("Frequency", r.Info.Frequency)
	l.add("Duration", r.Info.Duration)
	l.add("Instrument", r.Info.Instrument)
	l.add("Processing", r.Info.DataProcessing)
	l.items("Related phenomena", r.Info.RelatedPhenomena)
	l.items("Interesting facts", r.Info.InterestingFacts)
	return l
}

// Summary returns the body type and headline figures.
func (r Body) Summary() string {
	return fmt.Sprintf("%s · %s km · %s Earth masses · %s°C",
		r.Type, formatFloat(r.Diameter), formatFloat(r.Mass), formatFloat(r.Temperature))
}

// Fields returns the comparison figures and facts.
func (r Body) Fields() []Field {
	var l fieldList
	l.add("Name", r.Name)
	l.add("Type", r.Type)
	l.add("Diameter", formatFloat(r.Diameter)+" km")
	l.add("Mass", formatFloat(r.Mass)+" Earth masses")
	l.add("Temperature", formatFloat(r.Temperature)+"°C")
	l.add("Description", r.Description)
	l.items("Facts", r.Facts)
	return l
}

// Summary returns the body type, temperature and moon count.
func (r ExplorerBody) Summary() string {
	return fmt.Sprintf("%s · %s · %d moons", r.Type, r.Temperature, r.Moons)
}

// Fields returns the overview followed by the physical profile.
func (r ExplorerBody) Fields() []Field {
	var l fieldList
	l.add("Name", r.Name)
	l.add("Type", r.Type)
	l.add("Temperature", r.Temperature)
	l.add("Moons", strconv.Itoa(r.Moons))
	l.add("Rings", yesNo(r.Rings != nil))
	l.add("Tone", fmt.Sprintf("%d Hz %s", r.SoundFrequency, r.SoundWaveform))
	l.add("Description", r.Description)
	l.bodyInfo(r.Info)
	return l
}

// LayerFields returns the four structural layers, core outward.
func (r ExplorerBody) LayerFields() []Field {
	return layerFields(r.Layers)
}

// Summary returns the band and launch year.
func (r Telescope) Summary() string {
	return fmt.Sprintf("%s · launched %s", r.Type, r.Launched)
}

// Fields returns the instrument profile.
func (r Telescope) Fields() []Field {
	var l fieldList
	l.add("Name", r.Name)
	l.add("Type", r.Type)
	l.add("Launched", r.Launched)
	l.add("Description", r.Description)
	l.items("Wavelengths", r.Wavelengths)
	return l
}

// Summary returns the object type.
func (r SkyObject) Summary() string { return r.Type }

// Fields returns the object profile.
func (r SkyObject) Fields() []Field {
	var l fieldList
	l.add("Name", r.Name)
	l.add("Type", r.Type)
	l.add("Description", r.Description)
	return l
}

// Summary returns the component type, cost and reliability.
func (r Component) Summary() string {
	return fmt.Sprintf("%s · %s · %s%% reliable", r.Type, FormatCost(r.Cost), formatFloat(r.Reliability))
}

// Fields returns the component profile.
func (r Component) Fields() []Field {
	var l fieldList
	l.add("Name", r.Name)
	l.add("Type", r.Type)
	l.add("Cost", FormatCost(r.Cost))
	l.add("Reliability", formatFloat(r.Reliability)+"%")
	l.add("Description", r.Description)
	l.items("Requirements", r.Requirements)
	return l
}

// FormatCost renders a USD amount in millions, e.g. "$62M".
func FormatCost(usd int64) string {
	return "$" + formatFloat(float64(usd)/1e6) + "M"
}

func layerFields(ls Layers) []Field {
	var l fieldList
	l.layer("Core", ls.Core)
	l.layer("Mantle", ls.Mantle)
	l.layer("Crust", ls.Crust)
	l.layer("Atmosphere", ls.Atmosphere)
	return l
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
