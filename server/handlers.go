package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/jrsteele09/go-twitter-oauth/twitter"
)

// HomePageData contains data for rendering the home page
type HomePageData struct {
	AppName string
	User    *twitter.UserProfile
}

// IndexHandler renders the login-or-profile page depending on session state.
// As the "/" pattern also matches every unregistered path, anything that is
// not exactly the root renders the 404 page.
func (s *Server) IndexHandler() http.HandlerFunc {
	homeTmpl := mustParseTemplate("home.html")
	notFoundTmpl := mustParseTemplate("not_found.html")

	return func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			w.Header().Set("Content-Type", contentTypeHTML)
			w.WriteHeader(http.StatusNotFound)
			_ = notFoundTmpl.Execute(w, errorPageData{AppName: s.config.GetAppName()})
			return
		}

		state := s.sessions.Load(r)
		data := HomePageData{AppName: s.config.GetAppName()}
		if state.IsAuthenticated() {
			data.User = &state.Auth.User
		}

		w.Header().Set("Content-Type", contentTypeHTML)
		_ = homeTmpl.Execute(w, data)
	}
}

// HealthHandler is the liveness probe
func (s *Server) HealthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		_ = json.NewEncoder(w).Encode(map[string]string{
			"status":      "ok",
			"timestamp":   time.Now().UTC().Format(time.RFC3339),
			"environment": s.env,
		})
	}
}
