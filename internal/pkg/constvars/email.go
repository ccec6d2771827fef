package constvars

const (
	// EmailSendBasicEmailFormat frames a plain-text message: to, subject, body.
	EmailSendBasicEmailFormat = "To: %s\r\nSubject: %s\r\n\r\n%s\r\n"

	EmailSuggestionPortalSubject   = "New suggestion from the data portal"
	EmailSuggestionRegistrySubject = "New suggestion from the registry"
)
