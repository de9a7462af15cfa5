package types

// ThemeColor is one of the supported palette names
type ThemeColor string

// Supported theme colors. Unknown values resolve to the purple palette.
const (
	ColorPurple ThemeColor = "purple"
	ColorBlue   ThemeColor = "blue"
	ColorGreen  ThemeColor = "green"
	ColorPink   ThemeColor = "pink"
)

// ThemeSettings holds the user-selected theme for portfolio generation
type ThemeSettings struct {
	Color    ThemeColor `json:"color" validate:"omitempty,oneof=purple blue green pink"`
	Font     string     `json:"font"`
	Image    string     `json:"image,omitempty" validate:"omitempty,url"`
	Template string     `json:"template,omitempty"`
}

// TemplateLayout describes the overall page structure of a template
type TemplateLayout string

// Template layouts
const (
	LayoutSingle    TemplateLayout = "single"
	LayoutTwoColumn TemplateLayout = "two-column"
	LayoutMinimal   TemplateLayout = "minimal"
	LayoutCreative  TemplateLayout = "creative"
)

// PortfolioTemplate describes a named layout/feature bundle from the catalog
type PortfolioTemplate struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Category    string         `json:"category"`
	Preview     string         `json:"preview"`
	Layout      TemplateLayout `json:"layout"`
	Features    []string       `json:"features"`
}

// GeneratedPortfolio is the immutable output of portfolio generation.
// Any edit to the inputs requires regeneration; there is no incremental update.
type GeneratedPortfolio struct {
	HTML     string            `json:"html"`
	CSS      string            `json:"css"`
	Assets   []string          `json:"assets"`
	URL      string            `json:"url"`
	Template PortfolioTemplate `json:"template"`
}
