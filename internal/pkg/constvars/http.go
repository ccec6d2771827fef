package constvars

const (
	MethodGet     = "GET"
	MethodPost    = "POST"
	MethodPut     = "PUT"
	MethodDelete  = "DELETE"
	MethodOptions = "OPTIONS"
)

const (
	MIMETextHTML                   = "text/html"
	MIMETextPlain                  = "text/plain"
	MIMEApplicationJSON            = "application/json"
	MIMEApplicationForm            = "application/x-www-form-urlencoded"
	MIMETextHTMLCharsetUTF8        = "text/html; charset=utf-8"
	MIMEApplicationJSONCharsetUTF8 = "application/json; charset=utf-8"
)

const (
	StatusOK                  = 200
	StatusBadRequest          = 400
	StatusUnauthorized        = 401
	StatusForbidden           = 403
	StatusNotFound            = 404
	StatusInternalServerError = 500
	StatusGatewayTimeout      = 504
)

const (
	HeaderContentType   = "Content-Type"
	HeaderXRequestID    = "X-Request-ID"
	HeaderAccept        = "Accept"
	HeaderAuthorization = "Authorization"

	// Hardening headers set on every response.
	HeaderXFrameOptions  = "X-Frame-Options"
	HeaderXXSSProtection = "X-XSS-Protection"

	XFrameOptionsSameOrigin = "SAMEORIGIN"
	XXSSProtectionBlock     = "1; mode=block"
)
