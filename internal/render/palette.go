package render

import (
	"fmt"

	"github.com/jonathan/portfolio-builder/internal/types"
)

// palette is the set of CSS custom-property values a theme color
// resolves to
type palette struct {
	Primary             string
	Text                string
	TextMuted           string
	Background          string
	BackgroundSecondary string
	Border              string
}

var palettes = map[types.ThemeColor]palette{
	types.ColorPurple: {
		Primary:             "#8B5CF6",
		Text:                "#1F2937",
		TextMuted:           "#6B7280",
		Background:          "#FFFFFF",
		BackgroundSecondary: "#F9FAFB",
		Border:              "#E5E7EB",
	},
	types.ColorBlue: {
		Primary:             "#3B82F6",
		Text:                "#1F2937",
		TextMuted:           "#6B7280",
		Background:          "#FFFFFF",
		BackgroundSecondary: "#F9FAFB",
		Border:              "#E5E7EB",
	},
	types.ColorGreen: {
		Primary:             "#10B981",
		Text:                "#1F2937",
		TextMuted:           "#6B7280",
		Background:          "#FFFFFF",
		BackgroundSecondary: "#F9FAFB",
		Border:              "#E5E7EB",
	},
	types.ColorPink: {
		Primary:             "#EC4899",
		Text:                "#1F2937",
		TextMuted:           "#6B7280",
		Background:          "#FFFFFF",
		BackgroundSecondary: "#F9FAFB",
		Border:              "#E5E7EB",
	},
}

// resolvePalette maps a theme color name to its palette. Unknown names
// fall back to purple; this is never an error.
func resolvePalette(color types.ThemeColor) palette {
	if p, ok := palettes[color]; ok {
		return p
	}
	return palettes[types.ColorPurple]
}

// cssVariables renders the palette as CSS custom-property declarations
func (p palette) cssVariables() string {
	return fmt.Sprintf(`--primary-color: %s;
    --text-color: %s;
    --text-muted: %s;
    --bg-color: %s;
    --bg-secondary: %s;
    --border-color: %s;`,
		p.Primary, p.Text, p.TextMuted, p.Background, p.BackgroundSecondary, p.Border)
}
