package config

import "time"

type SessionConfig interface {
	GetSessionSecret() string
	GetSessionMaxAge() time.Duration
}

type Session struct{}

var _ SessionConfig = Session{}

func (Session) GetSessionSecret() string {
	return GetEnv("SESSION_SECRET", "")
}

func (Session) GetSessionMaxAge() time.Duration {
	return 24 * time.Hour
}
