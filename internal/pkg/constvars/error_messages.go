package constvars

// Client-facing messages. These never carry internal detail.
const (
	ErrClientSomethingWrongWithApplication = "Something went wrong with the application, please try again later"
	ErrClientCannotProcessRequest          = "Cannot process the request"
	ErrClientNotAuthorized                 = "You are not authorized to perform this action"
	ErrClientNotFound                      = "The requested resource was not found"
)

// Developer messages, logged only.
const (
	ErrDevFormTokenInvalid        = "form token missing or not in the configured write-token set"
	ErrDevReadTokenInvalid        = "read token missing or does not match the configured read token"
	ErrDevFormKindUnknown         = "form kind does not map to a known collection"
	ErrDevSuggestionOriginUnknown = "suggestion origin does not select a known notification template"
	ErrDevValidationFailed        = "request validation failed"
	ErrDevCannotParseForm         = "failed to parse request form body"
	ErrDevCannotRenderTemplate    = "failed to render template"

	ErrDevDBFailedToInsertDocument   = "failed to insert document into MongoDB"
	ErrDevDBFailedToFindDocument     = "failed to find documents in MongoDB"
	ErrDevDBFailedToIterateDocuments = "failed to iterate MongoDB cursor"

	ErrDevCreateHTTPRequest      = "failed to create HTTP request"
	ErrDevSendHTTPRequest        = "failed to send HTTP request"
	ErrDevCaptchaVerifyBadStatus = "captcha verification endpoint returned non-OK status"
	ErrDevDecodeResponse         = "failed to decode response body from %s"

	ErrDevSMTPFailedToSendEmail = "failed to send email through SMTP host %s"
)
