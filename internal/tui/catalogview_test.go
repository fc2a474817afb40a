package tui

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/papapumpkin/astronexus/internal/browse"
	"github.com/papapumpkin/astronexus/internal/dataset"
)

func TestGalleryOverviewDropsEmptyFields(t *testing.T) {
	t.Parallel()
	img := dataset.Image{
		Title:       "Pillars of Creation",
		Category:    "nebula",
		Date:        "2022-10-19",
		Description: "Towers of gas and dust.",
	}
	got := galleryFields(img, browse.ImageOverview)
	labels := make([]string, len(got))
	for i, f := range got {
		labels[i] = f.Label
	}
	want := []string{"Category", "Date", "Description"}
	if diff := cmp.Diff(want, labels); diff != "" {
		t.Errorf("overview labels mismatch (-want +got):\n%s", diff)
	}
}

func TestPlanetMissionsFallback(t *testing.T) {
	t.Parallel()
	got := planetFields(dataset.Planet{Name: "Nowhere"}, browse.PlanetMissions, browse.LayerCore)
	want := []dataset.Field{{Label: "Missions", Value: "No recorded missions"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("missions fallback mismatch (-want +got):\n%s", diff)
	}
}

func TestPlanetOverviewKeepsMoonCount(t *testing.T) {
	t.Parallel()
	got := planetFields(dataset.Planet{Category: "terrestrial"}, browse.PlanetOverview, browse.LayerCore)
	want := []dataset.Field{
		{Label: "Class", Value: "terrestrial"},
		{Label: "Moons", Value: "0"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("overview mismatch (-want +got):\n%s", diff)
	}
}

func TestMarkLayer(t *testing.T) {
	t.Parallel()
	in := []dataset.Field{
		{Label: "Core", Value: "iron"},
		{Label: "Mantle", Value: "silicate"},
		{Label: "Crust", Value: "basalt"},
	}
	got := markLayer(in, browse.LayerMantle)
	if got[1].Label != iconCollapsed+" Mantle" {
		t.Errorf("highlighted label = %q", got[1].Label)
	}
	if got[0].Label != "Core" || got[2].Label != "Crust" {
		t.Errorf("other labels changed: %q, %q", got[0].Label, got[2].Label)
	}
	if in[1].Label != "Mantle" {
		t.Error("markLayer modified its input")
	}
}

func TestWaveform(t *testing.T) {
	t.Parallel()
	tests := []struct {
		shape   string
		playing bool
		glyph   string
	}{
		{"sine", true, "∿"},
		{"square", true, "┌"},
		{"sawtooth", true, "/|"},
		{"triangle", true, "/\\"},
		{"sine", false, "─"},
	}
	for _, tt := range tests {
		t.Run(tt.shape, func(t *testing.T) {
			t.Parallel()
			got := waveform(tt.shape, 30, tt.playing)
			if !strings.Contains(got, tt.glyph) {
				t.Errorf("waveform(%q, playing=%v) = %q, want %q", tt.shape, tt.playing, got, tt.glyph)
			}
		})
	}
}
