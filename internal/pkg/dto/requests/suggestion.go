package requests

// Suggestion holds the fields of the suggestion form that gate processing;
// everything else in the submission passes through untouched.
type Suggestion struct {
	CaptchaResponse string `validate:"required"`
	Origin          string `validate:"required"`
}
