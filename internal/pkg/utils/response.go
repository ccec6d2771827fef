package utils

import (
	"errors"
	"net/http"

	"forms-service/internal/pkg/constvars"
	"forms-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

func BuildJSONResponse(w http.ResponseWriter, code int, data interface{}) {
	w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(data)
}

func BuildHTMLResponse(w http.ResponseWriter, code int, page string) {
	w.Header().Set(constvars.HeaderContentType, constvars.MIMETextHTMLCharsetUTF8)
	w.WriteHeader(code)
	w.Write([]byte(page))
}

func BuildEmptyResponse(w http.ResponseWriter, code int) {
	w.WriteHeader(code)
}

// BuildErrorResponse resolves an error to its HTTP rendering. Client errors
// (400/401/403/404) render as bare status codes with no body; everything else
// renders the JSON error envelope, withholding internal detail in production.
func BuildErrorResponse(log *zap.Logger, w http.ResponseWriter, err error) {
	code := constvars.StatusInternalServerError
	clientMessage := constvars.ErrClientSomethingWrongWithApplication

	var customErr *exceptions.CustomError
	if errors.As(err, &customErr) {
		code = customErr.StatusCode
		clientMessage = customErr.ClientMessage
		location := map[string]interface{}{
			"file":          customErr.Location.File,
			"line":          customErr.Location.Line,
			"function_name": customErr.Location.FunctionName,
		}
		log.Error(customErr.DevMessage,
			zap.Any("location", location),
		)
	} else {
		log.Error(err.Error())
	}

	switch code {
	case constvars.StatusBadRequest,
		constvars.StatusUnauthorized,
		constvars.StatusForbidden,
		constvars.StatusNotFound:
		BuildEmptyResponse(w, code)
		return
	}

	response := exceptions.CustomError{
		StatusCode:    code,
		Success:       false,
		ClientMessage: clientMessage,
	}
	BuildJSONResponse(w, code, response)
}
