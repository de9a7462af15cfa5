// Package render maps structured résumé data, theme settings, and a catalog
// template to a self-contained HTML/CSS portfolio artifact.
package render

import "fmt"

// TemplateNotFoundError indicates the requested template id is absent
// from the catalog. Template ids are normally chosen from the catalog,
// so hitting this is a programming-contract violation by the caller.
type TemplateNotFoundError struct {
	ID string
}

func (e *TemplateNotFoundError) Error() string {
	return fmt.Sprintf("template not found: %s", e.ID)
}
