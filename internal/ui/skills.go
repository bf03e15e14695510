package ui

import (
	"fmt"
	"time"

	"github.com/nfrund/folio/internal/domain"
)

// Tier is the color band of a skill bar.
type Tier int

const (
	TierDeveloping Tier = iota
	TierModerate
	TierStrong
)

// Tier boundaries: above StrongAbove is strong, above ModerateAbove is moderate.
const (
	StrongAbove   = 85
	ModerateAbove = 70
)

// TierFor maps a level to its band.
func TierFor(level int) Tier {
	switch {
	case level > StrongAbove:
		return TierStrong
	case level > ModerateAbove:
		return TierModerate
	default:
		return TierDeveloping
	}
}

func (t Tier) String() string {
	switch t {
	case TierStrong:
		return "strong"
	case TierModerate:
		return "moderate"
	default:
		return "developing"
	}
}

type tierShade struct {
	darkClass, lightClass string
	darkHex, lightHex     string
}

var tierShades = map[Tier]tierShade{
	TierStrong:     {"bg-green-500", "bg-green-600", "#10B981", "#059669"},
	TierModerate:   {"bg-blue-500", "bg-blue-600", "#3B82F6", "#2563EB"},
	TierDeveloping: {"bg-amber-500", "bg-amber-600", "#F59E0B", "#D97706"},
}

// Class is the fill class for the tier in the given theme.
func (t Tier) Class(theme Theme) string {
	s := tierShades[t]
	return theme.Pick(s.darkClass, s.lightClass)
}

// Hex is the fill color for the tier in the given theme.
func (t Tier) Hex(theme Theme) string {
	s := tierShades[t]
	return theme.Pick(s.darkHex, s.lightHex)
}

// Bar animation timings.
const (
	BarBaseDelay = 100 * time.Millisecond
	BarStagger   = 50 * time.Millisecond
)

// BarDelay is the start delay of the bar at a global index.
func BarDelay(index int) time.Duration {
	return BarBaseDelay + time.Duration(index)*BarStagger
}

// ClampLevel bounds a level to a valid percentage.
func ClampLevel(level int) int {
	return min(max(level, 0), 100)
}

// Bar is a single rendered skill. Index counts across all categories.
type Bar struct {
	Skill domain.Skill
	Index int
}

// Tier is the bar's color band.
func (b Bar) Tier() Tier {
	return TierFor(b.Skill.Level)
}

// ID keeps the fill element stable across the reveal swap so the width
// transition runs from the collapsed render.
func (b Bar) ID() string {
	return fmt.Sprintf("skill-bar-%d", b.Index)
}

// Style is the inline style of the fill: collapsed before the section is
// revealed, at its target width with a staggered delay afterwards.
func (b Bar) Style(revealed bool) string {
	if !revealed {
		return "width: 0%; opacity: 0"
	}
	return fmt.Sprintf("width: %d%%; opacity: 1; transition-delay: %dms",
		ClampLevel(b.Skill.Level), BarDelay(b.Index).Milliseconds())
}

// SkillGroup is a category with its bars.
type SkillGroup struct {
	Name string
	Bars []Bar
}

// SkillGroups lays out categories and numbers their bars globally, in order.
func SkillGroups(categories []domain.SkillCategory) []SkillGroup {
	groups := make([]SkillGroup, 0, len(categories))
	index := 0
	for _, c := range categories {
		g := SkillGroup{Name: c.Name, Bars: make([]Bar, 0, len(c.Skills))}
		for _, s := range c.Skills {
			g.Bars = append(g.Bars, Bar{Skill: s, Index: index})
			index++
		}
		groups = append(groups, g)
	}
	return groups
}
