package domain

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPortfolioValidate(t *testing.T) {
	base := func() Portfolio {
		return Portfolio{
			Profile: Profile{Name: "Cam", Email: "hello@example.com"},
			Projects: []Project{
				{ID: 1, Title: "One", LiveURL: "https://example.com"},
				{ID: 2, Title: "Two"},
			},
			Skills: []SkillCategory{{Name: "Go", Skills: []Skill{{Name: "echo", Level: 80}}}},
		}
	}

	t.Run("valid content passes", func(t *testing.T) {
		p := base()
		require.NoError(t, p.Validate())
	})

	t.Run("duplicate project ids are rejected", func(t *testing.T) {
		p := base()
		p.Projects[1].ID = 1
		err := p.Validate()
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrDuplicateProject))
	})

	t.Run("missing profile name is invalid", func(t *testing.T) {
		p := base()
		p.Profile.Name = ""
		err := p.Validate()
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalidContent))
	})
}

func TestProfile(t *testing.T) {
	p := Profile{
		Name:    "Cam",
		Socials: []SocialLink{{Network: "github", URL: "https://github.com"}},
	}
	assert.Equal(t, "Cam | Portfolio", p.SiteTitle())

	link, ok := p.Social("github")
	require.True(t, ok)
	assert.Equal(t, "https://github.com", link.URL)

	_, ok = p.Social("twitter")
	assert.False(t, ok)
}

func TestContactMessageValidate(t *testing.T) {
	msg := NewContactMessage("Jane", "jane@x.com", "Hi", "Hello")
	require.NoError(t, msg.Validate())
	assert.NotEqual(t, uuid.Nil, msg.ID)
	assert.False(t, msg.ReceivedAt.IsZero())

	bad := NewContactMessage("Jane", "not-an-email", "Hi", "Hello")
	assert.Error(t, bad.Validate())

	empty := NewContactMessage("", "", "", "")
	assert.Error(t, empty.Validate())
}
