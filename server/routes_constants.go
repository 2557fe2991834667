package server

// Route path constants
// All application routes are defined here to ensure consistency and prevent typos
const (
	// Handshake routes. /login and /auth/twitter are equivalent initiators,
	// both kept for backward compatibility.
	RouteLogin       = "/login"
	RouteAuthTwitter = "/auth/twitter"
	RouteCallback    = "/auth/twitter/callback"
	RouteLogout      = "/logout"

	// Authenticated routes
	RouteTweet       = "/tweet"
	RoutePermissions = "/permissions"

	// Operational routes
	RouteHealth = "/health"
)
