package session

import (
	"net/http"

	"github.com/gorilla/sessions"

	"github.com/jrsteele09/go-twitter-oauth/internal/config"
	"github.com/jrsteele09/go-twitter-oauth/internal/errors"
)

const (
	cookieName = "twitter_oauth_demo"
	stateKey   = "state"
)

// Manager stores a State per browser inside a signed cookie session.
type Manager struct {
	store *sessions.CookieStore
}

func NewManager(cfg config.Config) (*Manager, error) {
	secret := cfg.GetSessionSecret()
	if secret == "" {
		return nil, errors.ErrNoSessionSecret
	}

	store := sessions.NewCookieStore([]byte(secret))
	options := &sessions.Options{
		Path:     "/",
		MaxAge:   int(cfg.GetSessionMaxAge().Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	// Cross-site cookies only make sense (and are only accepted by browsers)
	// over HTTPS, so these flags are production-only.
	if cfg.GetEnv() == "PROD" {
		options.Secure = true
		options.SameSite = http.SameSiteNoneMode
	}
	store.Options = options
	return &Manager{store: store}, nil
}

func (m *Manager) Load(r *http.Request) State {
	sess, _ := m.store.Get(r, cookieName)
	state, ok := sess.Values[stateKey].(State)
	if !ok {
		return State{}
	}
	return state
}

func (m *Manager) Save(w http.ResponseWriter, r *http.Request, state State) error {
	sess, _ := m.store.Get(r, cookieName)
	sess.Values[stateKey] = state
	if err := sess.Save(r, w); err != nil {
		return errors.Wrapf(err, "save session")
	}
	return nil
}

// Destroy erases all session state. MaxAge < 0 tells the browser to drop the
// cookie immediately.
func (m *Manager) Destroy(w http.ResponseWriter, r *http.Request) error {
	sess, _ := m.store.Get(r, cookieName)
	sess.Values = map[interface{}]interface{}{}
	sess.Options.MaxAge = -1
	if err := sess.Save(r, w); err != nil {
		return errors.Wrapf(err, "destroy session")
	}
	return nil
}
