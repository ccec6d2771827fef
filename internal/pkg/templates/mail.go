package templates

import (
	"strings"
	"text/template"

	"forms-service/internal/pkg/exceptions"
)

// Notification template identifiers, one per suggestion origin.
const (
	MailSuggestionPortal   = "suggestion_portal"
	MailSuggestionRegistry = "suggestion_registry"
)

const (
	mailSuggestionPortalText = `A new suggestion was submitted through the data portal.

Name: {{.name}}
Email: {{.email}}
Types: {{.types}}

{{.suggestion}}
`
	mailSuggestionRegistryText = `A new suggestion was submitted through the registry.

Name: {{.name}}
Email: {{.email}}
Types: {{.types}}

{{.suggestion}}
`
)

// Missing substitution fields are an error rather than an empty render, so
// malformed input surfaces instead of mailing a half-filled message.
var mailTemplates = map[string]*template.Template{
	MailSuggestionPortal:   template.Must(template.New(MailSuggestionPortal).Option("missingkey=error").Parse(mailSuggestionPortalText)),
	MailSuggestionRegistry: template.Must(template.New(MailSuggestionRegistry).Option("missingkey=error").Parse(mailSuggestionRegistryText)),
}

func RenderMail(templateID string, substitutions map[string]string) (string, error) {
	mailTemplate, ok := mailTemplates[templateID]
	if !ok {
		return "", exceptions.ErrRenderTemplate(nil)
	}
	var buf strings.Builder
	err := mailTemplate.Execute(&buf, substitutions)
	if err != nil {
		return "", exceptions.ErrRenderTemplate(err)
	}
	return buf.String(), nil
}
