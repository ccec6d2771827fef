package contracts

import "context"

type CaptchaClient interface {
	// Verify forwards the challenge-response token to the verification
	// endpoint and reports its success flag.
	Verify(ctx context.Context, responseToken string) (bool, error)
}
