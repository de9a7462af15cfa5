package render

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/google/uuid"

	"github.com/jonathan/portfolio-builder/internal/catalog"
	"github.com/jonathan/portfolio-builder/internal/types"
)

// shareIDLength is the length of the random shareable-URL identifier.
// Uniqueness is probabilistic; nothing persists or checks the id.
const shareIDLength = 9

var portfolioTmpl = template.Must(template.New("portfolio").Parse(portfolioHTML))

// templateData is the structure passed to the portfolio HTML template
type templateData struct {
	Data     *types.ParsedData
	Theme    types.ThemeSettings
	Layout   types.TemplateLayout
	FontHref string
	CSS      template.CSS
}

// Generator produces shareable portfolio artifacts. The origin is
// prepended to generated share URLs.
type Generator struct {
	origin string
}

// NewGenerator creates a Generator for the given origin, e.g.
// "https://portfolio.example.com".
func NewGenerator(origin string) *Generator {
	return &Generator{origin: strings.TrimRight(origin, "/")}
}

// Generate renders parsed data against a catalog template and theme into
// an immutable GeneratedPortfolio. The only error condition is an
// unknown template id; unknown theme colors silently resolve to purple.
// Regenerating with identical inputs yields byte-identical html/css but
// a fresh share URL.
func (g *Generator) Generate(data *types.ParsedData, theme types.ThemeSettings, templateID string) (*types.GeneratedPortfolio, error) {
	tmpl, ok := catalog.Get(templateID)
	if !ok {
		return nil, &TemplateNotFoundError{ID: templateID}
	}

	css := buildCSS(theme)

	var html strings.Builder
	err := portfolioTmpl.Execute(&html, templateData{
		Data:     data,
		Theme:    theme,
		Layout:   tmpl.Layout,
		FontHref: fontHref(theme.Font),
		CSS:      template.CSS(css),
	})
	if err != nil {
		// the template is a compile-time constant; execution over plain
		// string fields cannot fail in practice
		return nil, fmt.Errorf("failed to execute portfolio template: %w", err)
	}

	return &types.GeneratedPortfolio{
		HTML:     html.String(),
		CSS:      css,
		Assets:   buildAssets(theme),
		URL:      g.shareURL(),
		Template: tmpl,
	}, nil
}

// fontHref builds the web-font stylesheet link, the only external
// dependency of the generated document
func fontHref(font string) string {
	if font == "" {
		font = "Inter"
	}
	family := strings.ReplaceAll(font, " ", "+")
	return fmt.Sprintf("https://fonts.googleapis.com/css2?family=%s:wght@300;400;500;600;700&display=swap", family)
}

// buildAssets lists URLs the portfolio references beyond the document
// itself: currently just the profile image when present
func buildAssets(theme types.ThemeSettings) []string {
	if theme.Image != "" {
		return []string{theme.Image}
	}
	return []string{}
}

// shareURL combines the origin with a freshly generated short random
// identifier
func (g *Generator) shareURL() string {
	id := strings.ReplaceAll(uuid.NewString(), "-", "")[:shareIDLength]
	return fmt.Sprintf("%s/portfolio/%s", g.origin, id)
}
