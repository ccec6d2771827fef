package constvars

// Form kinds as they appear in request paths.
const (
	FormKindAddBiobank    = "add_biobank"
	FormKindAddCollection = "add_collection"
	FormKindSuggestion    = "suggestion"
)

const (
	MongoCollectionAddBiobank    = "responsesAddBiobank"
	MongoCollectionAddCollection = "responsesAddCollection"
	MongoCollectionSuggestions   = "responsesSuggestion"
)

// Field names read from form input or written into stored records.
const (
	FieldToken           = "token"
	FieldCaptchaResponse = "g-recaptcha-response"
	FieldOriginURL       = "originUrl"
	FieldOrigin          = "origin"
	FieldTimestamp       = "timestamp"
	FieldTypes           = "types"

	// Value a checked suggestion-type checkbox submits.
	SuggestionTypeCheckedValue = "on"
)

// Suggestion origins selecting the notification template.
const (
	SuggestionOriginPortal   = "portal"
	SuggestionOriginRegistry = "registry"
)

// SuggestionTypeTags is the fixed tag enumeration for the suggestion form.
// The stored types field joins the tags set to "on", in this order.
var SuggestionTypeTags = []string{
	"biobank",
	"collection",
	"website",
	"other",
}

// CollectionForFormKind maps a form kind to its Mongo collection. The mapping
// is fixed; collection names are never derived from request input.
var CollectionForFormKind = map[string]string{
	FormKindAddBiobank:    MongoCollectionAddBiobank,
	FormKindAddCollection: MongoCollectionAddCollection,
	FormKindSuggestion:    MongoCollectionSuggestions,
}
