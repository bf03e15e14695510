package ui

import (
	"testing"

	"github.com/nfrund/folio/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCardsPreserveOrderAndKeys(t *testing.T) {
	projects := []domain.Project{
		{ID: 3, Title: "Weather Dashboard"},
		{ID: 1, Title: "E-Commerce Platform"},
		{ID: 2, Title: "Task Management App"},
	}
	cards := Cards(projects)
	require.Len(t, cards, 3)
	for i, c := range cards {
		assert.Equal(t, projects[i].ID, c.Project.ID)
		assert.False(t, c.Hovered)
	}
	assert.Equal(t, "project-3", cards[0].Key())
	assert.Equal(t, "project-2", cards[2].Key())
}

func TestCardHover(t *testing.T) {
	c := Card{Project: domain.Project{ID: 1}}
	assert.Equal(t, "scale-100", c.ImageScale())
	c.Hovered = true
	assert.Equal(t, "scale-110", c.ImageScale())
	assert.Equal(t, "scale-100 group-hover:scale-110", c.ImageClass())
}
