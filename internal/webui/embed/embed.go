package embed

import "embed"

// TemplatesFS holds the server-rendered website view.
//
//go:embed templates/*.tmpl
var TemplatesFS embed.FS
