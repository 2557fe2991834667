package twitter_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/dghubble/oauth1"
	"github.com/stretchr/testify/require"

	"github.com/jrsteele09/go-twitter-oauth/internal/errors"
	"github.com/jrsteele09/go-twitter-oauth/twitter"
)

// fakeUpstream serves the OAuth 1.0a token endpoints and the two resource
// endpoints the adapter calls, asserting every request arrives signed.
func fakeUpstream(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()

	requireSigned := func(r *http.Request) {
		auth := r.Header.Get("Authorization")
		require.True(t, strings.HasPrefix(auth, "OAuth "), "expected OAuth authorization header, got %q", auth)
		require.Contains(t, auth, "oauth_signature=")
	}

	mux.HandleFunc("POST /oauth/request_token", func(w http.ResponseWriter, r *http.Request) {
		requireSigned(r)
		w.Header().Set("Content-Type", "application/x-www-form-urlencoded")
		_, _ = w.Write([]byte("oauth_token=tok123&oauth_token_secret=sec123&oauth_callback_confirmed=true"))
	})
	mux.HandleFunc("POST /oauth/access_token", func(w http.ResponseWriter, r *http.Request) {
		requireSigned(r)
		w.Header().Set("Content-Type", "application/x-www-form-urlencoded")
		_, _ = w.Write([]byte("oauth_token=AT1&oauth_token_secret=AS1"))
	})
	mux.HandleFunc("GET /1.1/account/verify_credentials.json", func(w http.ResponseWriter, r *http.Request) {
		requireSigned(r)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id_str":"1001","screen_name":"alice","name":"Alice","followers_count":42}`))
	})
	mux.HandleFunc("POST /1.1/statuses/update.json", func(w http.ResponseWriter, r *http.Request) {
		requireSigned(r)
		require.NoError(t, r.ParseForm())
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id_str":"99001","text":"` + r.PostFormValue("status") + `","created_at":"Mon Sep 01 10:00:00 +0000 2025"}`))
	})

	ts := httptest.NewServer(mux)
	t.Cleanup(ts.Close)
	return ts
}

func newTestClient(upstream *httptest.Server) *twitter.Client {
	endpoints := twitter.Endpoints{
		OAuth: oauth1.Endpoint{
			RequestTokenURL: upstream.URL + "/oauth/request_token",
			AuthorizeURL:    upstream.URL + "/oauth/authorize",
			AccessTokenURL:  upstream.URL + "/oauth/access_token",
		},
		VerifyCredentialsURL: upstream.URL + "/1.1/account/verify_credentials.json",
		UpdateStatusURL:      upstream.URL + "/1.1/statuses/update.json",
	}
	return twitter.NewClientWithEndpoints("consumer-key", "consumer-secret", "http://localhost:8080/auth/twitter/callback", endpoints)
}

func TestClient_Handshake(t *testing.T) {
	upstream := fakeUpstream(t)
	client := newTestClient(upstream)

	token, secret, err := client.RequestToken()
	require.NoError(t, err)
	require.Equal(t, "tok123", token)
	require.Equal(t, "sec123", secret)

	authorizationURL, err := client.AuthorizationURL(token)
	require.NoError(t, err)
	require.Contains(t, authorizationURL.String(), "/oauth/authorize")
	require.Equal(t, "tok123", authorizationURL.Query().Get("oauth_token"))

	accessToken, accessSecret, err := client.AccessToken(token, secret, "ver456")
	require.NoError(t, err)
	require.Equal(t, "AT1", accessToken)
	require.Equal(t, "AS1", accessSecret)
}

func TestClient_VerifyCredentials(t *testing.T) {
	upstream := fakeUpstream(t)
	client := newTestClient(upstream)

	profile, err := client.VerifyCredentials(context.Background(), "AT1", "AS1")
	require.NoError(t, err)
	require.Equal(t, "alice", profile.ScreenName)
	require.Equal(t, "Alice", profile.Name)
	require.Equal(t, 42, profile.FollowersCount)
}

func TestClient_UpdateStatus(t *testing.T) {
	upstream := fakeUpstream(t)
	client := newTestClient(upstream)

	tweet, err := client.UpdateStatus(context.Background(), "AT1", "AS1", "hello world")
	require.NoError(t, err)
	require.Equal(t, "99001", tweet.ID)
	require.Equal(t, "hello world", tweet.Text)
	require.NotEmpty(t, tweet.CreatedAt)
}

func TestClient_UpstreamErrors(t *testing.T) {
	failing := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream down", http.StatusInternalServerError)
	}))
	t.Cleanup(failing.Close)

	endpoints := twitter.Endpoints{
		OAuth: oauth1.Endpoint{
			RequestTokenURL: failing.URL + "/oauth/request_token",
			AuthorizeURL:    failing.URL + "/oauth/authorize",
			AccessTokenURL:  failing.URL + "/oauth/access_token",
		},
		VerifyCredentialsURL: failing.URL + "/1.1/account/verify_credentials.json",
		UpdateStatusURL:      failing.URL + "/1.1/statuses/update.json",
	}
	client := twitter.NewClientWithEndpoints("consumer-key", "consumer-secret", "http://localhost:8080/auth/twitter/callback", endpoints)

	t.Run("request token", func(t *testing.T) {
		_, _, err := client.RequestToken()
		require.Error(t, err)
		require.True(t, errors.Is(err, errors.ErrUpstream))
	})

	t.Run("access token", func(t *testing.T) {
		_, _, err := client.AccessToken("tok123", "sec123", "ver456")
		require.Error(t, err)
		require.True(t, errors.Is(err, errors.ErrUpstream))
	})

	t.Run("verify credentials", func(t *testing.T) {
		_, err := client.VerifyCredentials(context.Background(), "AT1", "AS1")
		require.Error(t, err)
		require.True(t, errors.Is(err, errors.ErrUpstream))
	})

	t.Run("update status", func(t *testing.T) {
		_, err := client.UpdateStatus(context.Background(), "AT1", "AS1", "hello")
		require.Error(t, err)
		require.True(t, errors.Is(err, errors.ErrUpstream))
	})
}
