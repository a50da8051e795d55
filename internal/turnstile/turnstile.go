// Package turnstile verifies Cloudflare Turnstile captcha tokens.
package turnstile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const defaultEndpoint = "https://challenges.cloudflare.com/turnstile/v0/siteverify"

// ErrVerificationFailed means the token was rejected; the client should
// retry the captcha.
var ErrVerificationFailed = errors.New("captcha verification failed")

// Verifier checks tokens against the Cloudflare siteverify endpoint.
type Verifier struct {
	secret   string
	endpoint string
	client   *http.Client
}

func New(secret string) *Verifier {
	return &Verifier{
		secret:   secret,
		endpoint: defaultEndpoint,
		client:   &http.Client{Timeout: 10 * time.Second},
	}
}

// NewWithEndpoint exists for tests pointing at a local server.
func NewWithEndpoint(secret, endpoint string) *Verifier {
	v := New(secret)
	v.endpoint = endpoint
	return v
}

type verifyResponse struct {
	Success    bool     `json:"success"`
	ErrorCodes []string `json:"error-codes"`
}

// Verify returns nil for a valid token, ErrVerificationFailed for a
// rejected one, and a transport error when the verifier is unreachable.
func (v *Verifier) Verify(ctx context.Context, token, remoteIP string) error {
	form := url.Values{
		"secret":   {v.secret},
		"response": {token},
	}
	if remoteIP != "" {
		form.Set("remoteip", remoteIP)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, v.endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("build siteverify request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := v.client.Do(req)
	if err != nil {
		return fmt.Errorf("siteverify request: %w", err)
	}
	defer resp.Body.Close()

	var out verifyResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return fmt.Errorf("decode siteverify response: %w", err)
	}
	if !out.Success {
		return fmt.Errorf("%w: %s", ErrVerificationFailed, strings.Join(out.ErrorCodes, ","))
	}
	return nil
}
