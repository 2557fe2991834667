package server

func (s *Server) initRoutes() {
	s.RegisterRouteFunc("GET /", ChainMiddleware(s.IndexHandler(), s.HTMLMiddleware()...))

	// Handshake
	s.RegisterRouteFunc("GET "+RouteLogin, ChainMiddleware(s.TwitterLoginHandler(), s.HTMLMiddleware()...))
	s.RegisterRouteFunc("GET "+RouteAuthTwitter, ChainMiddleware(s.TwitterLoginHandler(), s.HTMLMiddleware()...))
	s.RegisterRouteFunc("GET "+RouteCallback, ChainMiddleware(s.TwitterCallbackHandler(), s.HTMLMiddleware()...))
	s.RegisterRouteFunc("GET "+RouteLogout, ChainMiddleware(s.LogoutHandler(), s.HTMLMiddleware()...))

	// Authenticated routes
	s.RegisterRouteFunc("GET "+RouteTweet, ChainMiddleware(s.TweetPageHandler(), s.HTMLMiddleware(s.RequireSessionAuth())...))
	s.RegisterRouteFunc("POST "+RouteTweet, ChainMiddleware(s.TweetSubmitHandler(), s.HTMLMiddleware(s.RequireSessionAuth())...))
	s.RegisterRouteFunc("GET "+RoutePermissions, ChainMiddleware(s.PermissionsHandler(), s.HTMLMiddleware(s.RequireSessionAuth())...))

	// Operational
	s.RegisterRouteFunc("GET "+RouteHealth, ChainMiddleware(s.HealthHandler(), s.APIMiddleware()...))
}
