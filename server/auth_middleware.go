package server

import "net/http"

// RequireSessionAuth gates the authenticated routes. An anonymous visitor is
// redirected to the home page rather than shown an error.
func (s *Server) RequireSessionAuth() func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			state := s.sessions.Load(r)
			if !state.IsAuthenticated() {
				http.Redirect(w, r, "/", http.StatusFound)
				return
			}
			next(w, r)
		}
	}
}
