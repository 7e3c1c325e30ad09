package hero

import (
	"bytes"
	"embed"
	"html/template"
	"io"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// SectionTemplateName is the template defined by the embedded section file.
const SectionTemplateName = "product-hero"

var sectionTmpl = template.Must(template.New("hero").ParseFS(templateFS, "templates/*.tmpl"))

// RenderSection executes the template-language rendition of the hero into w.
// The only errors are those of the writer.
func RenderSection(w io.Writer, s Settings) error {
	return sectionTmpl.ExecuteTemplate(w, SectionTemplateName, newView(s))
}

// SectionHTML renders the section into a string for embedding in a page.
func SectionHTML(s Settings) (template.HTML, error) {
	var buf bytes.Buffer
	if err := RenderSection(&buf, s); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}
