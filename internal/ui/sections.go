package ui

import (
	"fmt"

	"github.com/nfrund/folio/internal/domain"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Section identifies a top-level block of the page. The value doubles as the
// element id and the in-page anchor.
type Section string

const (
	SectionHero     Section = "hero"
	SectionAbout    Section = "about"
	SectionProjects Section = "projects"
	SectionSkills   Section = "skills"
	SectionContact  Section = "contact"
)

// NavSections are linked from the header and the footer, in order.
var NavSections = []Section{SectionAbout, SectionProjects, SectionSkills, SectionContact}

// FadeSections fade in the first time they scroll into view.
var FadeSections = []Section{SectionAbout, SectionProjects, SectionSkills, SectionContact}

// ParseSection maps an id back to a fade-in section.
func ParseSection(id string) (Section, error) {
	for _, s := range FadeSections {
		if string(s) == id {
			return s, nil
		}
	}
	return "", fmt.Errorf("%w: %q", domain.ErrUnknownSection, id)
}

// Anchor is the in-page link target, e.g. "#about".
func (s Section) Anchor() string {
	return "#" + string(s)
}

// Label is the navigation text, e.g. "About".
func (s Section) Label() string {
	// Casers carry state; one per call keeps this safe across goroutines.
	return cases.Title(language.English).String(string(s))
}
