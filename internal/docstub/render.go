package docstub

import (
	"bytes"
	_ "embed"
	"fmt"
	"text/template"

	"github.com/himanshoe/chartytools/internal/catalog"
)

//go:embed page.md.tmpl
var pageTemplateSource string

var pageTemplate = template.Must(template.New("page").Option("missingkey=error").Parse(pageTemplateSource))

// RenderPage renders the stub page for one catalog entry.
func RenderPage(entry catalog.Entry) (string, error) {
	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, entry); err != nil {
		return "", fmt.Errorf("render page %s: %w", entry.RelativePath(), err)
	}
	return buf.String(), nil
}
