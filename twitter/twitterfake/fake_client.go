package twitterfake

import (
	"context"
	"net/url"
	"sync"

	"github.com/jrsteele09/go-twitter-oauth/internal/errors"
	"github.com/jrsteele09/go-twitter-oauth/twitter"
)

var _ twitter.API = (*FakeClient)(nil)

// FakeClient is a scripted twitter.API for handler tests. Zero value fails
// everything; set the result fields to script success paths.
type FakeClient struct {
	lock sync.Mutex

	Token        string
	TokenSecret  string
	AuthorizeURL string
	Access       string
	AccessSecret string
	Profile      *twitter.UserProfile
	Tweet        *twitter.Tweet

	FailRequestToken      bool
	FailAccessToken       bool
	FailVerifyCredentials bool
	FailUpdateStatus      bool

	RequestTokenCalls int
	AccessTokenCalls  int
	VerifyCalls       int
	UpdateCalls       int

	LastCallbackURL string
	LastVerifier    string
	LastStatus      string
	LastAccessUsed  string
}

// NewFactory returns a twitter.ClientFactory handing out the same fake for
// every request, recording the callback URL each construction was bound to.
func NewFactory(fake *FakeClient) twitter.ClientFactory {
	return func(callbackURL string) twitter.API {
		fake.lock.Lock()
		defer fake.lock.Unlock()
		fake.LastCallbackURL = callbackURL
		return fake
	}
}

func (f *FakeClient) RequestToken() (string, string, error) {
	f.lock.Lock()
	defer f.lock.Unlock()
	f.RequestTokenCalls++
	if f.FailRequestToken {
		return "", "", errors.Wrapf(errors.ErrUpstream, "request token refused")
	}
	return f.Token, f.TokenSecret, nil
}

func (f *FakeClient) AuthorizationURL(token string) (*url.URL, error) {
	base := f.AuthorizeURL
	if base == "" {
		base = "https://api.twitter.com/oauth/authorize"
	}
	return url.Parse(base + "?oauth_token=" + url.QueryEscape(token))
}

func (f *FakeClient) AccessToken(requestToken, requestSecret, verifier string) (string, string, error) {
	f.lock.Lock()
	defer f.lock.Unlock()
	f.AccessTokenCalls++
	f.LastVerifier = verifier
	if f.FailAccessToken {
		return "", "", errors.Wrapf(errors.ErrUpstream, "verifier rejected")
	}
	return f.Access, f.AccessSecret, nil
}

func (f *FakeClient) VerifyCredentials(_ context.Context, accessToken, _ string) (*twitter.UserProfile, error) {
	f.lock.Lock()
	defer f.lock.Unlock()
	f.VerifyCalls++
	f.LastAccessUsed = accessToken
	if f.FailVerifyCredentials || f.Profile == nil {
		return nil, errors.Wrapf(errors.ErrUpstream, "verify_credentials failed")
	}
	profile := *f.Profile
	return &profile, nil
}

func (f *FakeClient) UpdateStatus(_ context.Context, accessToken, _, status string) (*twitter.Tweet, error) {
	f.lock.Lock()
	defer f.lock.Unlock()
	f.UpdateCalls++
	f.LastAccessUsed = accessToken
	f.LastStatus = status
	if f.FailUpdateStatus || f.Tweet == nil {
		return nil, errors.Wrapf(errors.ErrUpstream, "statuses/update failed")
	}
	tweet := *f.Tweet
	return &tweet, nil
}
