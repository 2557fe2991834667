package twitter

import (
	"context"
	"net/url"
)

// API is the OAuth 1.0a client surface the handlers depend on. The three
// handshake operations plus the two signed resource calls; no signature is
// ever computed outside the adapter.
type API interface {
	RequestToken() (token, secret string, err error)
	AuthorizationURL(token string) (*url.URL, error)
	AccessToken(requestToken, requestSecret, verifier string) (accessToken, accessSecret string, err error)
	VerifyCredentials(ctx context.Context, accessToken, accessSecret string) (*UserProfile, error)
	UpdateStatus(ctx context.Context, accessToken, accessSecret, status string) (*Tweet, error)
}

// ClientFactory builds a client bound to the callback URL computed from the
// inbound request. The adapter is per-request, never a shared singleton.
type ClientFactory func(callbackURL string) API
