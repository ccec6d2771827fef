package utils

import (
	"net/http"

	"forms-service/internal/pkg/constvars"
	"forms-service/internal/pkg/exceptions"
)

// FormFields merges the request input into a single flat string map. Fields
// come from the query string on GET and from the form body on POST; unknown
// fields pass through untouched. Repeated fields keep their first value.
func FormFields(r *http.Request) (map[string]string, error) {
	fields := make(map[string]string)
	switch r.Method {
	case constvars.MethodPost:
		err := r.ParseForm()
		if err != nil {
			return nil, exceptions.ErrCannotParseForm(err)
		}
		for key, values := range r.PostForm {
			if len(values) > 0 {
				fields[key] = values[0]
			}
		}
	default:
		for key, values := range r.URL.Query() {
			if len(values) > 0 {
				fields[key] = values[0]
			}
		}
	}
	return fields, nil
}
