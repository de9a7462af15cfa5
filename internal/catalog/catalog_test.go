package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/portfolio-builder/internal/types"
)

func TestList(t *testing.T) {
	templates := List()
	require.Len(t, templates, 4)

	ids := make([]string, len(templates))
	for i, tmpl := range templates {
		ids[i] = tmpl.ID
	}
	assert.Equal(t, []string{"modern-dev", "creative-designer", "minimal-business", "academic-researcher"}, ids)

	for _, tmpl := range templates {
		assert.NotEmpty(t, tmpl.Name)
		assert.NotEmpty(t, tmpl.Description)
		assert.NotEmpty(t, tmpl.Category)
		assert.NotEmpty(t, tmpl.Preview)
		assert.NotEmpty(t, tmpl.Layout)
		assert.Len(t, tmpl.Features, 3)
	}
}

func TestListReturnsCopy(t *testing.T) {
	first := List()
	first[0].ID = "mutated"

	second := List()
	assert.Equal(t, "modern-dev", second[0].ID)
}

func TestGet(t *testing.T) {
	tests := []struct {
		name   string
		id     string
		found  bool
		layout types.TemplateLayout
	}{
		{"modern dev", "modern-dev", true, types.LayoutTwoColumn},
		{"creative designer", "creative-designer", true, types.LayoutCreative},
		{"minimal business", "minimal-business", true, types.LayoutSingle},
		{"academic researcher", "academic-researcher", true, types.LayoutSingle},
		{"unknown id", "neon-brutalist", false, ""},
		{"empty id", "", false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpl, ok := Get(tt.id)
			assert.Equal(t, tt.found, ok)
			if tt.found {
				assert.Equal(t, tt.id, tmpl.ID)
				assert.Equal(t, tt.layout, tmpl.Layout)
			}
		})
	}
}
