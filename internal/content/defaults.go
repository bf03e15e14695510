// Package content provides the static portfolio tables and the load-time
// override mechanism.
package content

import (
	"fmt"

	"github.com/nfrund/folio/internal/domain"
)

const pexels = "https://images.pexels.com/photos/%s?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=2"

func photo(path string) string {
	return fmt.Sprintf(pexels, path)
}

// Default returns the compiled-in portfolio. Each call returns a fresh copy.
func Default() domain.Portfolio {
	return domain.Portfolio{
		Profile:  defaultProfile(),
		Projects: defaultProjects(),
		Skills:   defaultSkills(),
	}
}

func defaultProfile() domain.Profile {
	return domain.Profile{
		Name:     "Cam",
		Tagline:  "Full-Stack Developer & Designer crafting beautiful digital experiences that solve real problems.",
		Portrait: photo("2379004/pexels-photo-2379004.jpeg"),
		Bio: `I'm a passionate full-stack developer and designer with a keen eye for creating beautiful, functional digital experiences. With a background in computer science and design, I blend technical expertise with creative problem-solving.

My journey in tech began 5 years ago, and since then, I've had the privilege of working with various startups and established companies to bring their visions to life. I believe in writing clean, maintainable code and designing intuitive user interfaces that delight users.`,
		Email:      "hello@example.com",
		Phone:      "+1 (123) 456-7890",
		Location:   []string{"San Francisco, California", "United States"},
		Education:  []string{"B.S. Computer Science", "University of Technology"},
		Experience: []string{"5+ Years in Web Development", "3+ Years in UI/UX Design"},
		Traits:     []string{"Problem Solver", "Creative Thinker", "Team Player", "Detail-Oriented"},
		GithubURL:  "https://github.com",
		Socials: []domain.SocialLink{
			{Network: "github", URL: "https://github.com", Label: "GitHub"},
			{Network: "linkedin", URL: "https://linkedin.com", Label: "LinkedIn"},
			{Network: "twitter", URL: "https://twitter.com", Label: "Twitter"},
			{Network: "email", URL: "mailto:hello@example.com", Label: "Email"},
			{Network: "phone", URL: "tel:+11234567890", Label: "Phone"},
		},
	}
}

func defaultProjects() []domain.Project {
	return []domain.Project{
		{
			ID:          1,
			Title:       "E-Commerce Platform",
			Description: "A full-featured e-commerce platform built with React, Node.js, and MongoDB. Includes payment processing, user authentication, and admin dashboard.",
			Image:       photo("6956903/pexels-photo-6956903.jpeg"),
			Tags:        []string{"React", "Node.js", "MongoDB", "Stripe"},
			LiveURL:     "https://example.com",
			GithubURL:   "https://github.com",
		},
		{
			ID:          2,
			Title:       "Task Management App",
			Description: "A beautiful and intuitive task management application built with React and Firebase. Features include task categorization, deadlines, and team collaboration.",
			Image:       photo("3182773/pexels-photo-3182773.jpeg"),
			Tags:        []string{"React", "Firebase", "Tailwind CSS", "TypeScript"},
			LiveURL:     "https://example.com",
			GithubURL:   "https://github.com",
		},
		{
			ID:          3,
			Title:       "Weather Dashboard",
			Description: "A responsive weather dashboard that displays current weather conditions and forecasts for any location. Built with React and OpenWeather API.",
			Image:       photo("1118873/pexels-photo-1118873.jpeg"),
			Tags:        []string{"React", "API Integration", "CSS3", "JavaScript"},
			LiveURL:     "https://example.com",
			GithubURL:   "https://github.com",
		},
	}
}

func defaultSkills() []domain.SkillCategory {
	return []domain.SkillCategory{
		{Name: "Frontend", Skills: []domain.Skill{
			{Name: "React", Level: 90},
			{Name: "JavaScript", Level: 95},
			{Name: "TypeScript", Level: 85},
			{Name: "HTML/CSS", Level: 90},
			{Name: "Tailwind CSS", Level: 85},
		}},
		{Name: "Backend", Skills: []domain.Skill{
			{Name: "Node.js", Level: 85},
			{Name: "Express", Level: 80},
			{Name: "MongoDB", Level: 75},
			{Name: "PostgreSQL", Level: 70},
			{Name: "GraphQL", Level: 65},
		}},
		{Name: "Design", Skills: []domain.Skill{
			{Name: "Figma", Level: 80},
			{Name: "UI/UX", Level: 85},
			{Name: "Responsive Design", Level: 90},
			{Name: "Animation", Level: 70},
			{Name: "Design Systems", Level: 75},
		}},
		{Name: "Tools", Skills: []domain.Skill{
			{Name: "Git", Level: 85},
			{Name: "Docker", Level: 70},
			{Name: "CI/CD", Level: 65},
			{Name: "VS Code", Level: 90},
			{Name: "Jira", Level: 75},
		}},
	}
}
