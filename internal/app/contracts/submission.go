package contracts

import "context"

// SubmissionResult carries what the response renderer needs after an accepted
// submission.
type SubmissionResult struct {
	OriginURL string
}

type SubmissionUsecase interface {
	// SubmitForm handles the token-gated write forms. The returned error is a
	// 401 CustomError when the token is missing or unknown.
	SubmitForm(ctx context.Context, formKind string, fields map[string]string) (*SubmissionResult, error)
	// SubmitSuggestion handles the captcha-gated suggestion form, including
	// the types derivation and the notification email.
	SubmitSuggestion(ctx context.Context, fields map[string]string) (*SubmissionResult, error)
	// ListEntries returns every record of the collection behind formKind,
	// with the store-internal identifier stripped.
	ListEntries(ctx context.Context, formKind, token string) ([]map[string]interface{}, error)
}

type SubmissionRepository interface {
	Insert(ctx context.Context, collection string, record map[string]interface{}) error
	FindAll(ctx context.Context, collection string) ([]map[string]interface{}, error)
}
