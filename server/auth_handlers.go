package server

import (
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/jrsteele09/go-twitter-oauth/server/session"
)

// TwitterLoginHandler starts the three-legged handshake: obtains a request
// token bound to this request's callback URL, stores the pending pair in the
// session, and redirects the browser to the Twitter authorization page.
// Reached via both /login and /auth/twitter.
func (s *Server) TwitterLoginHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Fail fast before any network call when credentials are absent
		if !s.config.HasAPICredentials() {
			log.Error().Msg("TWITTER_API_KEY / TWITTER_API_SECRET not set")
			s.renderError(w, http.StatusInternalServerError, "Configuration error",
				"Twitter API credentials are not configured on this server.")
			return
		}

		callbackURL := s.callbackURL(r)
		client := s.newClient(callbackURL)

		requestToken, requestSecret, err := client.RequestToken()
		if err != nil {
			// Session untouched; the visitor stays anonymous
			log.Err(err).Msg("Failed to obtain request token")
			s.renderError(w, http.StatusInternalServerError, "Authentication failed",
				"Could not start the Twitter login. Please try again.")
			return
		}

		// A login attempt while one is already pending overwrites it
		state := s.sessions.Load(r)
		state.Pending = &session.PendingHandshake{
			RequestToken:       requestToken,
			RequestTokenSecret: requestSecret,
			CallbackURL:        callbackURL,
		}
		if err := s.sessions.Save(w, r, state); err != nil {
			log.Err(err).Msg("Failed to save pending handshake")
			s.renderError(w, http.StatusInternalServerError, "Authentication failed",
				"Could not start the Twitter login. Please try again.")
			return
		}

		authorizationURL, err := client.AuthorizationURL(requestToken)
		if err != nil {
			log.Err(err).Msg("Failed to build authorization URL")
			s.renderError(w, http.StatusInternalServerError, "Authentication failed",
				"Could not start the Twitter login. Please try again.")
			return
		}

		http.Redirect(w, r, authorizationURL.String(), http.StatusFound)
	}
}

// TwitterCallbackHandler completes the handshake. Twitter redirects here with
// oauth_token and oauth_verifier; the verifier is exchanged for the durable
// access token pair and the profile is fetched. Any failure fails closed: the
// pending fields are cleared and nothing durable is stored, so the session
// never holds credentials without a profile.
func (s *Server) TwitterCallbackHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		oauthToken := r.URL.Query().Get("oauth_token")
		oauthVerifier := r.URL.Query().Get("oauth_verifier")
		if oauthToken == "" || oauthVerifier == "" {
			// No session mutation on a malformed callback
			s.renderError(w, http.StatusBadRequest, "Invalid callback",
				"Missing oauth_token or oauth_verifier parameter.")
			return
		}

		state := s.sessions.Load(r)
		if state.Pending == nil {
			s.renderError(w, http.StatusBadRequest, "Invalid callback",
				"No Twitter login is in progress for this session.")
			return
		}

		// The exchange must be signed against the same callback URL the
		// request token was issued for
		callbackURL := state.Pending.CallbackURL
		if callbackURL == "" {
			callbackURL = s.callbackURL(r)
		}
		client := s.newClient(callbackURL)

		accessToken, accessSecret, err := client.AccessToken(oauthToken, state.Pending.RequestTokenSecret, oauthVerifier)
		if err != nil {
			log.Err(err).Msg("Access token exchange failed")
			s.failHandshake(w, r, state)
			return
		}

		profile, err := client.VerifyCredentials(r.Context(), accessToken, accessSecret)
		if err != nil {
			log.Err(err).Msg("Failed to fetch user profile")
			s.failHandshake(w, r, state)
			return
		}

		newState := session.State{
			Auth: &session.Authenticated{
				AccessToken:       accessToken,
				AccessTokenSecret: accessSecret,
				User:              *profile,
				Meta: session.AuthMeta{
					Token:     oauthToken,
					Verifier:  oauthVerifier,
					Timestamp: time.Now().UTC(),
				},
			},
		}
		if err := s.sessions.Save(w, r, newState); err != nil {
			log.Err(err).Msg("Failed to save authenticated session")
			s.renderError(w, http.StatusInternalServerError, "Authentication failed",
				"Could not complete the Twitter login. Please try again.")
			return
		}

		log.Info().Str("screen_name", profile.ScreenName).Msg("User logged in")
		http.Redirect(w, r, "/", http.StatusFound)
	}
}

// failHandshake clears the ephemeral request-token fields and renders the
// generic error page. The session falls back to its pre-handshake state.
func (s *Server) failHandshake(w http.ResponseWriter, r *http.Request, state session.State) {
	state.Pending = nil
	if err := s.sessions.Save(w, r, state); err != nil {
		log.Err(err).Msg("Failed to clear pending handshake")
	}
	s.renderError(w, http.StatusInternalServerError, "Authentication failed",
		"Could not complete the Twitter login. Please try again.")
}

// LogoutHandler unconditionally destroys the session and redirects home
func (s *Server) LogoutHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := s.sessions.Destroy(w, r); err != nil {
			log.Err(err).Msg("Failed to destroy session")
		}
		log.Info().Msg("User logged out")
		http.Redirect(w, r, "/", http.StatusFound)
	}
}
