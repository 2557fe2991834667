package session

import (
	"encoding/gob"
	"time"

	"github.com/jrsteele09/go-twitter-oauth/twitter"
)

func init() {
	gob.Register(State{})
}

// State is the per-browser session record. Exactly one of the phase fields is
// set outside the anonymous state:
//
//	Pending == nil && Auth == nil  → anonymous
//	Pending != nil                 → request token issued, awaiting callback
//	Auth != nil                    → authenticated
//
// Access credentials live only inside Authenticated next to the user profile,
// so "credentials without a profile" (and the reverse) cannot be stored.
type State struct {
	Pending *PendingHandshake
	Auth    *Authenticated
}

// PendingHandshake is the ephemeral request-token state between initiation
// and callback. The callback URL must match the one the token was requested
// with, since the adapter is rebuilt per request from the host header.
type PendingHandshake struct {
	RequestToken       string
	RequestTokenSecret string
	CallbackURL        string
}

// Authenticated is the durable post-login state.
type Authenticated struct {
	AccessToken       string
	AccessTokenSecret string
	User              twitter.UserProfile
	Meta              AuthMeta
}

// AuthMeta is an informational audit record of the completed handshake.
type AuthMeta struct {
	Token     string
	Verifier  string
	Timestamp time.Time
}

func (s State) IsAuthenticated() bool {
	return s.Auth != nil
}

func (s State) HasPendingHandshake() bool {
	return s.Pending != nil
}
