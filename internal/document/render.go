package document

import (
	"embed"
	"html/template"
	"strings"

	"github.com/Naiitikk/cv-creator/internal/themes"
)

//go:embed template.html
var templateFS embed.FS

var cvTemplate = template.Must(template.ParseFS(templateFS, "template.html"))

// templateData wraps a document with its resolved theme preset for template
// execution. Preset values are typed CSS so gradient and border expressions
// survive contextual escaping; inlined images are typed URLs for the same
// reason (data: URIs would otherwise be rejected).
type templateData struct {
	Doc *Document

	TextColor        template.CSS
	HeaderBackground template.CSS
	HeaderColor      template.CSS
	AccentColor      template.CSS
	BorderColor      template.CSS
	SectionBorder    template.CSS

	ProfilePicture template.URL
	ProjectImages  []template.URL
}

// RenderError indicates HTML rendering of a document failed.
type RenderError struct {
	Message string
	Cause   error
}

func (e *RenderError) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *RenderError) Unwrap() error {
	return e.Cause
}

// RenderHTML renders the document into a complete themed HTML page. Optional
// sections with empty underlying fields produce no markup at all. The theme
// name resolves through the closed preset set with the modern fallback.
func (d *Document) RenderHTML() (string, error) {
	_, preset := themes.Resolve(d.Theme)

	data := &templateData{
		Doc:              d,
		TextColor:        template.CSS(themes.TextColor),
		HeaderBackground: template.CSS(preset.HeaderBackground),
		HeaderColor:      template.CSS(preset.HeaderColor),
		AccentColor:      template.CSS(preset.AccentColor),
		BorderColor:      template.CSS(preset.BorderColor),
		SectionBorder:    template.CSS(preset.SectionBorder),
	}
	if pic := strings.TrimSpace(d.ProfilePicture); pic != "" {
		data.ProfilePicture = template.URL(pic)
	}
	for _, img := range d.ProjectImages {
		if img = strings.TrimSpace(img); img != "" {
			data.ProjectImages = append(data.ProjectImages, template.URL(img))
		}
	}

	var out strings.Builder
	if err := cvTemplate.Execute(&out, data); err != nil {
		return "", &RenderError{Message: "failed to render CV document", Cause: err}
	}
	return out.String(), nil
}
