package server

import (
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/jrsteele09/go-twitter-oauth/internal/config"
	"github.com/jrsteele09/go-twitter-oauth/server/session"
	"github.com/jrsteele09/go-twitter-oauth/server/ui"
	"github.com/jrsteele09/go-twitter-oauth/twitter"
)

type Server struct {
	env       string // Environment (e.g., "DEV", "PROD")
	mux       *http.ServeMux
	routes    []string
	config    config.Config
	sessions  *session.Manager
	newClient twitter.ClientFactory
}

func New(cfg config.Config, sessionManager *session.Manager, clientFactory twitter.ClientFactory) *Server {
	s := &Server{
		mux:       http.NewServeMux(),
		config:    cfg,
		sessions:  sessionManager,
		newClient: clientFactory,
	}
	s.env = cfg.GetEnv()

	s.initRoutes()
	s.logRoutes()

	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

func (s *Server) RegisterRouteFunc(pattern string, handler func(http.ResponseWriter, *http.Request)) {
	s.routes = append(s.routes, pattern)
	s.mux.HandleFunc(pattern, handler)
}

func (s *Server) logRoutes() {
	if s.env != "DEV" {
		return // Skip logging in non-development environments
	}
	for _, route := range s.routes {
		parts := strings.SplitN(route, " ", 2)

		if len(parts) > 1 {
			logRoute(parts[0], parts[1])
		} else {
			logRoute("", parts[0])
		}
	}
}

func logRoute(method, path string) {
	var displayMethod string
	paddedMethod := fmt.Sprintf(" %-7s", method)
	if color, ok := ui.MethodColors[method]; ok {
		displayMethod = color + paddedMethod + ui.ResetColor
	} else {
		displayMethod = ui.Gray + paddedMethod + ui.ResetColor
	}
	log.Printf("[%-19s] %s\n", displayMethod, path)
}

// Helper function to determine the scheme (http/https)
func getScheme(r *http.Request) string {
	if r.TLS != nil {
		return "https"
	}
	if scheme := r.Header.Get("X-Forwarded-Proto"); scheme != "" {
		return scheme
	}
	return "http"
}

// callbackURL builds the handshake callback from the inbound request's host
// and forwarded-protocol headers, so the flow works behind a reverse proxy
// without a static base-URL setting.
func (s *Server) callbackURL(r *http.Request) string {
	return fmt.Sprintf("%s://%s%s", getScheme(r), r.Host, RouteCallback)
}
