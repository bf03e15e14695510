package content

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/nfrund/folio/internal/domain"
)

// EnvPrefix selects the environment variables that override profile fields,
// e.g. FOLIO_PROFILE_NAME or FOLIO_PROFILE_EMAIL.
const EnvPrefix = "FOLIO_"

// Site is the loaded, validated portfolio plus pre-rendered prose.
// It is built once at startup and only read afterwards.
type Site struct {
	domain.Portfolio
	BioHTML string
}

// NewSite validates p and renders its markdown.
func NewSite(p domain.Portfolio) (*Site, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	bio, err := Markdown(p.Profile.Bio)
	if err != nil {
		return nil, fmt.Errorf("render bio: %w", err)
	}
	return &Site{Portfolio: p, BioHTML: bio}, nil
}

// Load builds the site by layering, low to high:
//  1. compiled-in defaults (Default())
//  2. the YAML file at path, if path is not empty
//  3. FOLIO_PROFILE_* environment variables
//
// Lists present in a higher layer replace the lower layer's list as a whole.
func Load(path string) (*Site, error) {
	k := koanf.New(".")

	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("content file: %w", err)
		}
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("parse content file %s: %w", path, err)
		}
	}

	// FOLIO_PROFILE_NAME -> profile.name
	envProvider := env.Provider(EnvPrefix, ".", func(s string) string {
		s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
		return strings.ReplaceAll(s, "_", ".")
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("load content env: %w", err)
	}

	var over domain.Portfolio
	if err := k.UnmarshalWithConf("", &over, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("decode content: %w", err)
	}

	p := Default()
	mergeProfile(&p.Profile, over.Profile)
	if k.Exists("projects") {
		p.Projects = over.Projects
	}
	if k.Exists("skills") {
		p.Skills = over.Skills
	}
	return NewSite(p)
}

func mergeProfile(dst *domain.Profile, src domain.Profile) {
	setString := func(d *string, s string) {
		if s != "" {
			*d = s
		}
	}
	setList := func(d *[]string, s []string) {
		if len(s) > 0 {
			*d = s
		}
	}
	setString(&dst.Name, src.Name)
	setString(&dst.Tagline, src.Tagline)
	setString(&dst.Bio, src.Bio)
	setString(&dst.Portrait, src.Portrait)
	setString(&dst.Email, src.Email)
	setString(&dst.Phone, src.Phone)
	setString(&dst.GithubURL, src.GithubURL)
	setList(&dst.Location, src.Location)
	setList(&dst.Education, src.Education)
	setList(&dst.Experience, src.Experience)
	setList(&dst.Traits, src.Traits)
	if len(src.Socials) > 0 {
		dst.Socials = src.Socials
	}
}
