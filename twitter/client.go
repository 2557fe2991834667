package twitter

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dghubble/oauth1"
	twauth "github.com/dghubble/oauth1/twitter"

	"github.com/jrsteele09/go-twitter-oauth/internal/errors"
)

const apiBaseURL = "https://api.twitter.com/1.1"

const resourceCallTimeout = 15 * time.Second

// Endpoints carries the upstream URLs the adapter talks to. Tests point these
// at a local httptest server.
type Endpoints struct {
	OAuth                oauth1.Endpoint
	VerifyCredentialsURL string
	UpdateStatusURL      string
}

func DefaultEndpoints() Endpoints {
	return Endpoints{
		OAuth:                twauth.AuthorizeEndpoint,
		VerifyCredentialsURL: apiBaseURL + "/account/verify_credentials.json",
		UpdateStatusURL:      apiBaseURL + "/statuses/update.json",
	}
}

// Client signs requests with the consumer key/secret under OAuth 1.0a
// (HMAC-SHA1). One Client is built per inbound request, bound to the callback
// URL computed from that request's headers.
type Client struct {
	config     *oauth1.Config
	endpoints  Endpoints
	httpClient *http.Client
}

var _ API = (*Client)(nil)

func NewClient(apiKey, apiSecret, callbackURL string) *Client {
	return NewClientWithEndpoints(apiKey, apiSecret, callbackURL, DefaultEndpoints())
}

func NewClientWithEndpoints(apiKey, apiSecret, callbackURL string, endpoints Endpoints) *Client {
	return &Client{
		config: &oauth1.Config{
			ConsumerKey:    apiKey,
			ConsumerSecret: apiSecret,
			CallbackURL:    callbackURL,
			Endpoint:       endpoints.OAuth,
		},
		endpoints:  endpoints,
		httpClient: &http.Client{Timeout: resourceCallTimeout},
	}
}

// NewClientFactory returns a ClientFactory closing over the consumer
// credentials, so handlers construct per-request adapters without seeing them.
func NewClientFactory(apiKey, apiSecret string) ClientFactory {
	return func(callbackURL string) API {
		return NewClient(apiKey, apiSecret, callbackURL)
	}
}

// RequestToken obtains the short-lived credential pair that starts a login
// attempt, bound to the configured callback URL.
func (c *Client) RequestToken() (string, string, error) {
	token, secret, err := c.config.RequestToken()
	if err != nil {
		return "", "", errors.Wrapf(errors.ErrUpstream, "request token: %s", err)
	}
	return token, secret, nil
}

// AuthorizationURL builds the upstream page the browser is redirected to.
func (c *Client) AuthorizationURL(token string) (*url.URL, error) {
	authorizationURL, err := c.config.AuthorizationURL(token)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrUpstream, "authorization url: %s", err)
	}
	return authorizationURL, nil
}

// AccessToken exchanges a verified request token for the durable pair. Fails
// when the verifier does not match or the request token expired.
func (c *Client) AccessToken(requestToken, requestSecret, verifier string) (string, string, error) {
	accessToken, accessSecret, err := c.config.AccessToken(requestToken, requestSecret, verifier)
	if err != nil {
		return "", "", errors.Wrapf(errors.ErrUpstream, "access token exchange: %s", err)
	}
	return accessToken, accessSecret, nil
}

// VerifyCredentials performs the signed profile fetch used at login.
func (c *Client) VerifyCredentials(ctx context.Context, accessToken, accessSecret string) (*UserProfile, error) {
	body, err := c.signedCall(ctx, http.MethodGet, c.endpoints.VerifyCredentialsURL, accessToken, accessSecret, nil)
	if err != nil {
		return nil, err
	}
	var profile UserProfile
	if err := json.Unmarshal(body, &profile); err != nil {
		return nil, errors.Wrapf(errors.ErrUpstream, "decode verify_credentials response: %s", err)
	}
	return &profile, nil
}

// UpdateStatus posts a status update and returns the upstream echo of it.
func (c *Client) UpdateStatus(ctx context.Context, accessToken, accessSecret, status string) (*Tweet, error) {
	form := url.Values{"status": []string{status}}
	body, err := c.signedCall(ctx, http.MethodPost, c.endpoints.UpdateStatusURL, accessToken, accessSecret, form)
	if err != nil {
		return nil, err
	}
	var tweet Tweet
	if err := json.Unmarshal(body, &tweet); err != nil {
		return nil, errors.Wrapf(errors.ErrUpstream, "decode statuses/update response: %s", err)
	}
	return &tweet, nil
}

func (c *Client) signedCall(ctx context.Context, method, callURL, accessToken, accessSecret string, form url.Values) ([]byte, error) {
	// The oauth1 transport signs each request with the access token pair;
	// the underlying client carries the call timeout.
	ctx = context.WithValue(ctx, oauth1.HTTPClient, c.httpClient)
	signingClient := c.config.Client(ctx, oauth1.NewToken(accessToken, accessSecret))

	var bodyReader io.Reader
	if form != nil {
		bodyReader = strings.NewReader(form.Encode())
	}
	req, err := http.NewRequestWithContext(ctx, method, callURL, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("build %s %s: %w", method, callURL, err)
	}
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}

	resp, err := signingClient.Do(req)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrUpstream, "%s %s: %s", method, callURL, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrUpstream, "read %s response: %s", callURL, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, errors.Wrapf(errors.ErrUpstream, "%s %s returned %d", method, callURL, resp.StatusCode)
	}
	return body, nil
}
