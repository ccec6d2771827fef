package captcha

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"forms-service/internal/app/contracts"
	"forms-service/internal/pkg/constvars"
	"forms-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
)

type recaptchaClient struct {
	VerifyURL string
	Secret    string
}

func NewRecaptchaClient(verifyURL, secret string) contracts.CaptchaClient {
	return &recaptchaClient{
		VerifyURL: verifyURL,
		Secret:    secret,
	}
}

type siteverifyResponse struct {
	Success bool `json:"success"`
}

func (c *recaptchaClient) Verify(ctx context.Context, responseToken string) (bool, error) {
	form := url.Values{
		"secret":   {c.Secret},
		"response": {responseToken},
	}

	req, err := http.NewRequestWithContext(ctx, constvars.MethodPost, c.VerifyURL, strings.NewReader(form.Encode()))
	if err != nil {
		return false, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationForm)

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		return false, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK {
		return false, exceptions.ErrCaptchaVerifyBadStatus(nil)
	}

	verification := new(siteverifyResponse)
	err = json.NewDecoder(resp.Body).Decode(verification)
	if err != nil {
		return false, exceptions.ErrDecodeResponse(err, "captcha verification")
	}

	return verification.Success, nil
}
