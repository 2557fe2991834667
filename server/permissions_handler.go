package server

import (
	"net/http"
	"time"

	"github.com/jrsteele09/go-twitter-oauth/twitter"
)

// PermissionsPageData contains data for the authenticated debug view. Token
// values are masked; the full secrets never reach the browser.
type PermissionsPageData struct {
	AppName             string
	User                twitter.UserProfile
	AccessToken         string
	AccessTokenSecret   string
	AuthToken           string
	AuthVerifier        string
	AuthTimestamp       string
	HasProvisionedToken bool
	Environment         string
}

// PermissionsHandler renders session and credential details for debugging
func (s *Server) PermissionsHandler() http.HandlerFunc {
	permissionsTmpl := mustParseTemplate("permissions.html")

	return func(w http.ResponseWriter, r *http.Request) {
		state := s.sessions.Load(r)
		auth := state.Auth

		data := PermissionsPageData{
			AppName:             s.config.GetAppName(),
			User:                auth.User,
			AccessToken:         maskToken(auth.AccessToken),
			AccessTokenSecret:   maskToken(auth.AccessTokenSecret),
			AuthToken:           maskToken(auth.Meta.Token),
			AuthVerifier:        maskToken(auth.Meta.Verifier),
			AuthTimestamp:       auth.Meta.Timestamp.Format(time.RFC3339),
			HasProvisionedToken: s.config.HasProvisionedToken(),
			Environment:         s.env,
		}
		w.Header().Set("Content-Type", contentTypeHTML)
		_ = permissionsTmpl.Execute(w, data)
	}
}

// maskToken keeps a short recognisable prefix and hides the rest
func maskToken(token string) string {
	if len(token) <= 6 {
		return "******"
	}
	return token[:6] + "..."
}
