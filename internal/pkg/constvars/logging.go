package constvars

type contextKey string

const (
	CONTEXT_REQUEST_ID_KEY contextKey = "request_id"
)

const (
	LoggingRequestIDKey  = "request_id"
	LoggingMethodKey     = "method"
	LoggingEndpointKey   = "endpoint"
	LoggingRemoteAddrKey = "remote_addr"
	LoggingUserAgentKey  = "user_agent"
	LoggingQueryKey      = "query"
	LoggingStatusCodeKey = "status_code"
	LoggingDurationKey   = "duration"
	LoggingSuccessKey    = "success"
	LoggingFormKindKey   = "form_kind"
	LoggingCollectionKey = "collection"
)

const ResponseUnknown = "unknown"
