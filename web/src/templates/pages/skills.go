package pages

import (
	"fmt"

	"github.com/nfrund/folio/internal/ui"
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"
)

const skillsIntro = "I've developed a diverse set of skills throughout my career. Here's a glimpse of my technical expertise and proficiency levels."

// Skills renders each category with its proficiency bars. Bars sit collapsed
// until the section is revealed, then grow with a staggered transition.
func Skills(p PageData) cmp.Node {
	t := p.Theme
	revealed := p.Observer(ui.SectionSkills).Visible()

	return fadeSection(p, ui.SectionSkills, t.Pick("bg-gray-800 text-white", "bg-white text-gray-900"),
		sectionHeading(t, "My Skills", skillsIntro),
		g.Div(
			g.Class("grid grid-cols-1 md:grid-cols-2 gap-8"),
			cmp.Map(ui.SkillGroups(p.Site.Skills), func(group ui.SkillGroup) cmp.Node {
				return g.Div(
					g.Class("p-6 rounded-xl "+t.Pick("bg-gray-700", "bg-gray-50 shadow")),
					g.H3(g.Class("text-xl font-bold mb-6"), cmp.Text(group.Name)),
					g.Div(
						g.Class("space-y-5"),
						cmp.Map(group.Bars, func(b ui.Bar) cmp.Node {
							return skillBar(b, t, revealed)
						}),
					),
				)
			}),
		),
	)
}

func skillBar(b ui.Bar, t ui.Theme, revealed bool) cmp.Node {
	tier := b.Tier()
	return g.Div(
		g.Div(
			g.Class("flex justify-between mb-1"),
			g.Span(g.Class("font-medium"), cmp.Text(b.Skill.Name)),
			g.Span(
				g.Class(t.Pick("text-gray-400", "text-gray-500")),
				cmp.Textf("%d%%", ui.ClampLevel(b.Skill.Level)),
			),
		),
		g.Div(
			g.Class("w-full h-2 rounded-full "+t.Pick("bg-gray-600", "bg-gray-200")),
			g.Role("progressbar"),
			g.Aria("valuenow", fmt.Sprint(ui.ClampLevel(b.Skill.Level))),
			g.Aria("valuemin", "0"),
			g.Aria("valuemax", "100"),
			g.Aria("label", b.Skill.Name),
			g.Div(
				g.ID(b.ID()),
				g.Class("skill-bar h-full rounded-full transition-all duration-1000 ease-out "+tier.Class(t)),
				g.Data("tier", tier.String()),
				g.Data("color", tier.Hex(t)),
				g.Style(b.Style(revealed)),
			),
		),
	)
}
