// Package catalog holds the static registry of portfolio templates.
package catalog

import "github.com/jonathan/portfolio-builder/internal/types"

var templates = []types.PortfolioTemplate{
	{
		ID:          "modern-dev",
		Name:        "Modern Developer",
		Description: "Clean, professional design perfect for software developers",
		Category:    "Developer",
		Preview:     "/templates/modern-dev.jpg",
		Layout:      types.LayoutTwoColumn,
		Features:    []string{"Dark/Light Mode", "GitHub Integration", "Project Showcase"},
	},
	{
		ID:          "creative-designer",
		Name:        "Creative Designer",
		Description: "Bold, visual design ideal for creative professionals",
		Category:    "Designer",
		Preview:     "/templates/creative-designer.jpg",
		Layout:      types.LayoutCreative,
		Features:    []string{"Portfolio Gallery", "Animation Effects", "Visual Timeline"},
	},
	{
		ID:          "minimal-business",
		Name:        "Minimal Business",
		Description: "Clean, corporate design for business professionals",
		Category:    "Business",
		Preview:     "/templates/minimal-business.jpg",
		Layout:      types.LayoutSingle,
		Features:    []string{"Professional Layout", "Contact Form", "Achievement Highlights"},
	},
	{
		ID:          "academic-researcher",
		Name:        "Academic Researcher",
		Description: "Scholarly design for academics and researchers",
		Category:    "Academic",
		Preview:     "/templates/academic-researcher.jpg",
		Layout:      types.LayoutSingle,
		Features:    []string{"Publication List", "Research Timeline", "Citation Ready"},
	},
}

// List returns all templates in catalog order. The returned slice is a
// copy; callers may not mutate the registry.
func List() []types.PortfolioTemplate {
	out := make([]types.PortfolioTemplate, len(templates))
	copy(out, templates)
	return out
}

// Get looks up a template by id
func Get(id string) (types.PortfolioTemplate, bool) {
	for _, tmpl := range templates {
		if tmpl.ID == id {
			return tmpl, true
		}
	}
	return types.PortfolioTemplate{}, false
}
