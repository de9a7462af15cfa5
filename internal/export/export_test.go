package export

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/portfolio-builder/internal/types"
)

func TestWriteHTML(t *testing.T) {
	portfolio := &types.GeneratedPortfolio{
		HTML: "<!DOCTYPE html><html><body><h1>Jane Smith</h1></body></html>",
		CSS:  "body {}",
	}

	t.Run("writes the document verbatim", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "portfolio.html")
		require.NoError(t, WriteHTML(portfolio, path))

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, portfolio.HTML, string(content))
	})

	t.Run("unwritable path", func(t *testing.T) {
		err := WriteHTML(portfolio, filepath.Join(t.TempDir(), "missing", "portfolio.html"))
		assert.Error(t, err)
	})
}
