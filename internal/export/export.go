// Package export writes generated portfolios to standalone artifacts: a
// self-contained .html file for direct download, or a PDF rendered
// through headless Chrome.
package export

import (
	"fmt"
	"os"

	"github.com/jonathan/portfolio-builder/internal/types"
)

// WriteHTML saves the portfolio's self-contained HTML document to path.
// The document inlines its stylesheet; no sibling files are needed.
func WriteHTML(portfolio *types.GeneratedPortfolio, path string) error {
	if err := os.WriteFile(path, []byte(portfolio.HTML), 0644); err != nil {
		return fmt.Errorf("failed to write portfolio HTML: %w", err)
	}
	return nil
}
