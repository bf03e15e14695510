package ui

import (
	"strconv"

	"github.com/nfrund/folio/internal/domain"
)

// Card is a project card with its cosmetic hover flag.
type Card struct {
	Project domain.Project
	Hovered bool
}

// Key is the stable DOM key of the card, derived from the project id.
func (c Card) Key() string {
	return "project-" + strconv.Itoa(c.Project.ID)
}

// ImageScale is the image transform for the current hover state.
func (c Card) ImageScale() string {
	if c.Hovered {
		return "scale-110"
	}
	return "scale-100"
}

// ImageClass is the resting scale plus the hover scale as a group-hover variant,
// so the browser flips between the two states without a round trip.
func (c Card) ImageClass() string {
	rest := Card{Project: c.Project}
	hover := Card{Project: c.Project, Hovered: true}
	return rest.ImageScale() + " group-hover:" + hover.ImageScale()
}

// Cards builds one card per project, preserving input order.
func Cards(projects []domain.Project) []Card {
	cards := make([]Card, len(projects))
	for i, p := range projects {
		cards[i] = Card{Project: p}
	}
	return cards
}
