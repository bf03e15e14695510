package domain

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// validatorInstance is a package-level validator instance.
// Using a single instance is more efficient as it caches struct information.
var validatorInstance = validator.New()

// SocialLink is an outbound profile link (github, linkedin, twitter, mailto, tel).
type SocialLink struct {
	Network string `koanf:"network" validate:"required"`
	URL     string `koanf:"url" validate:"required"`
	Label   string `koanf:"label"`
}

// Profile describes the owner of the portfolio. The site title is derived from Name.
type Profile struct {
	Name       string       `koanf:"name" validate:"required"`
	Tagline    string       `koanf:"tagline"`
	Bio        string       `koanf:"bio"` // Markdown.
	Portrait   string       `koanf:"portrait"`
	Email      string       `koanf:"email" validate:"omitempty,email"`
	Phone      string       `koanf:"phone"`
	Location   []string     `koanf:"location"`
	Education  []string     `koanf:"education"`
	Experience []string     `koanf:"experience"`
	Traits     []string     `koanf:"traits"`
	Socials    []SocialLink `koanf:"socials" validate:"dive"`
	GithubURL  string       `koanf:"github"`
}

// SiteTitle is the document title, set once per page render.
func (p Profile) SiteTitle() string {
	return p.Name + " | Portfolio"
}

// Social returns the first link for the given network.
func (p Profile) Social(network string) (SocialLink, bool) {
	for _, s := range p.Socials {
		if s.Network == network {
			return s, true
		}
	}
	return SocialLink{}, false
}

// Project is a static, read-only portfolio entry. ID is the stable render key.
type Project struct {
	ID          int      `koanf:"id" validate:"required"`
	Title       string   `koanf:"title" validate:"required"`
	Description string   `koanf:"description"`
	Image       string   `koanf:"image" validate:"omitempty,url"`
	Tags        []string `koanf:"tags"`
	LiveURL     string   `koanf:"liveUrl" validate:"omitempty,url"`
	GithubURL   string   `koanf:"githubUrl" validate:"omitempty,url"`
}

// Skill is a self-reported proficiency. Level is trusted input in [0,100].
type Skill struct {
	Name  string `koanf:"name" validate:"required"`
	Level int    `koanf:"level"`
}

// SkillCategory groups skills under a heading, in display order.
type SkillCategory struct {
	Name   string  `koanf:"name" validate:"required"`
	Skills []Skill `koanf:"skills" validate:"dive"`
}

// Portfolio is the complete static content of the site.
type Portfolio struct {
	Profile  Profile         `koanf:"profile"`
	Projects []Project       `koanf:"projects" validate:"dive"`
	Skills   []SkillCategory `koanf:"skills" validate:"dive"`
}

// Validate checks field constraints and that project ids are unique.
func (p *Portfolio) Validate() error {
	if err := validatorInstance.Struct(p); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidContent, err)
	}
	seen := make(map[int]struct{}, len(p.Projects))
	for _, project := range p.Projects {
		if _, dup := seen[project.ID]; dup {
			return fmt.Errorf("%w: project id %d", ErrDuplicateProject, project.ID)
		}
		seen[project.ID] = struct{}{}
	}
	return nil
}
