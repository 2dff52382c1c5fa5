// Package dashboard provides the embedded view templates for ProjectBoard.
//
// This package uses Go's embed directive to include the text templates the
// views render from. Each file defines one or more named templates:
//
//	templates/
//	  board.tmpl           - board header
//	  project-input.tmpl   - the project form
//	  project-list.tmpl    - list heading and empty marker
//	  single-project.tmpl  - one project card
//
// The templates are parsed by the internal view package. Users of the
// projectboard library should not need to interact with this package
// directly.
package dashboard

import "embed"

// Templates is an embedded filesystem containing the view templates.
//
//go:embed templates/*.tmpl
var Templates embed.FS
