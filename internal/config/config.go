package config

type Config interface {
	EnvConfig
	TwitterConfig
	SessionConfig
	CorsConfig
}

type EnvConfig interface {
	GetPort() string
	GetAppName() string
	GetEnv() string
}

type mainConfig struct {
	EnvVars
	Twitter
	Session
	Cors
}

func New() Config {
	return mainConfig{}
}
