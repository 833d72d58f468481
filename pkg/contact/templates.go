package contact

import (
	"embed"
	"io/fs"

	"github.com/dmitrymomot/folio/pkg/mailer"
)

// TemplateName is the template pair rendered for every submission.
const TemplateName = "contact"

//go:embed templates/*.html templates/*.txt
var templateFS embed.FS

// Templates returns the embedded notification templates.
func Templates() fs.FS {
	sub, err := fs.Sub(templateFS, "templates")
	if err != nil {
		panic(err)
	}
	return sub
}

// NewRenderer returns a renderer over the embedded templates.
func NewRenderer() *mailer.Renderer {
	return mailer.NewRenderer(Templates())
}
