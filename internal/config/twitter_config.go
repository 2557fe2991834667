package config

type TwitterConfig interface {
	GetAPIKey() string
	GetAPISecret() string
	GetAccessToken() string
	GetAccessTokenSecret() string
	HasAPICredentials() bool
	HasProvisionedToken() bool
}

type Twitter struct{}

var _ TwitterConfig = Twitter{}

func (Twitter) GetAPIKey() string {
	return GetEnv("TWITTER_API_KEY", "")
}

func (Twitter) GetAPISecret() string {
	return GetEnv("TWITTER_API_SECRET", "")
}

// GetAccessToken returns the optional pre-provisioned access token. The
// handshake never uses it; the permissions page reports its presence.
func (Twitter) GetAccessToken() string {
	return GetEnv("TWITTER_ACCESS_TOKEN", "")
}

func (Twitter) GetAccessTokenSecret() string {
	return GetEnv("TWITTER_ACCESS_TOKEN_SECRET", "")
}

func (t Twitter) HasAPICredentials() bool {
	return t.GetAPIKey() != "" && t.GetAPISecret() != ""
}

func (t Twitter) HasProvisionedToken() bool {
	return t.GetAccessToken() != "" && t.GetAccessTokenSecret() != ""
}
