package templates

import (
	"html/template"
	"strings"

	"forms-service/internal/pkg/exceptions"
)

// The two fixed page variants. When no origin URL was submitted the whole
// anchor element is dropped, leaving the plain text unchanged.
const (
	successPageText = `<html>
 <body>
  Data successfully added. {{if .OriginURL}}<a href="{{.OriginURL}}">Back to the form.</a>{{end}}
 </body>
</html>`
	failurePageText = `<html>
 <body>
  Data could not be added. {{if .OriginURL}}<a href="{{.OriginURL}}">Back to the form.</a>{{end}}
 </body>
</html>`
)

var (
	successPage = template.Must(template.New("success").Parse(successPageText))
	failurePage = template.Must(template.New("failure").Parse(failurePageText))
)

type pageData struct {
	OriginURL string
}

func RenderSuccessPage(originURL string) (string, error) {
	return renderPage(successPage, originURL)
}

func RenderFailurePage(originURL string) (string, error) {
	return renderPage(failurePage, originURL)
}

func renderPage(page *template.Template, originURL string) (string, error) {
	var buf strings.Builder
	err := page.Execute(&buf, pageData{OriginURL: originURL})
	if err != nil {
		return "", exceptions.ErrRenderTemplate(err)
	}
	return buf.String(), nil
}
