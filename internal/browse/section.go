// Package browse holds AstroNexus's interactive state as plain values.
// Every update is a method that returns the next state, so views can be
// tested without a terminal and nothing is shared between sections.
package browse

import (
	"fmt"
	"strings"
)

// Section is one top-level view. Exactly one is visible at a time.
type Section int

// Sections in header order.
const (
	SectionHome Section = iota
	SectionUniverse
	SectionGallery
	SectionSolarSystem
	SectionTimeline
	SectionTelescope
	SectionComparison
	SectionMission
	SectionMentor
	SectionRadio
)

// sectionCount is the number of sections.
const sectionCount = 10

var sectionNames = [sectionCount]string{
	SectionHome:        "home",
	SectionUniverse:    "universe",
	SectionGallery:     "gallery",
	SectionSolarSystem: "solar-system",
	SectionTimeline:    "timeline",
	SectionTelescope:   "telescope",
	SectionComparison:  "comparison",
	SectionMission:     "mission",
	SectionMentor:      "ai-mentor",
	SectionRadio:       "radio",
}

var sectionTitles = [sectionCount]string{
	SectionHome:        "Home",
	SectionUniverse:    "Universe Explorer",
	SectionGallery:     "Space Gallery",
	SectionSolarSystem: "Solar System",
	SectionTimeline:    "Cosmic Timeline",
	SectionTelescope:   "Telescope Simulator",
	SectionComparison:  "Planet Comparison",
	SectionMission:     "Mission Builder",
	SectionMentor:      "AI Space Mentor",
	SectionRadio:       "Deep Space Radio",
}

// Sections returns every section in header order.
func Sections() []Section {
	out := make([]Section, sectionCount)
	for i := range out {
		out[i] = Section(i)
	}
	return out
}

// Label returns the section's short name, as accepted by ParseSection.
func (s Section) Label() string {
	if s >= 0 && int(s) < sectionCount {
		return sectionNames[s]
	}
	return "unknown"
}

// Title returns the section's heading.
func (s Section) Title() string {
	if s >= 0 && int(s) < sectionCount {
		return sectionTitles[s]
	}
	return "Unknown"
}

// Next cycles forward, wrapping around.
func (s Section) Next() Section {
	return Section((int(s) + 1) % sectionCount)
}

// Prev cycles backward, wrapping around.
func (s Section) Prev() Section {
	return Section((int(s) + sectionCount - 1) % sectionCount)
}

// Key returns the number key that selects the section: 1 through 9, then
// 0 for the tenth.
func (s Section) Key() int {
	return (int(s) + 1) % sectionCount
}

// FromNumber converts a number key to a section. 0 selects the tenth.
func FromNumber(n int) (Section, bool) {
	if n < 0 || n > 9 {
		return SectionHome, false
	}
	if n == 0 {
		return SectionRadio, true
	}
	return Section(n - 1), true
}

// ParseSection converts a label to a section. The empty string is home.
func ParseSection(s string) (Section, error) {
	if s == "" {
		return SectionHome, nil
	}
	for i, name := range sectionNames {
		if strings.EqualFold(s, name) {
			return Section(i), nil
		}
	}
	return SectionHome, fmt.Errorf("unknown section %q (want one of %s)", s, strings.Join(sectionNames[:], ", "))
}
