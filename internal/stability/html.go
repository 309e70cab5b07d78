package stability

import (
	"bytes"
	"fmt"
	"io"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

const (
	htmlHead = "<!DOCTYPE html>\n<html lang=\"en\">\n<head>\n<meta charset=\"utf-8\">\n<title>Compose Stability Report</title>\n</head>\n<body>\n"
	htmlTail = "</body>\n</html>\n"
)

var htmlMarkdown = goldmark.New(goldmark.WithExtensions(extension.GFM))

// RenderHTML writes the markdown report converted to a standalone HTML page.
func RenderHTML(w io.Writer, issues []Issue, opts RenderOptions) error {
	var body bytes.Buffer
	if err := htmlMarkdown.Convert([]byte(MarkdownReport(issues, opts)), &body); err != nil {
		return fmt.Errorf("convert report to html: %w", err)
	}

	if _, err := io.WriteString(w, htmlHead); err != nil {
		return err
	}
	if _, err := body.WriteTo(w); err != nil {
		return err
	}
	_, err := io.WriteString(w, htmlTail)
	return err
}
