package config

import "time"

type Config interface {
	EnvConfig
	HTTPConfig
}

type EnvConfig interface {
	GetAppName() string
	GetBaseURL() string
	GetDataFolder() string
	GetLogLevel() string
	GetEnv() string
}

type HTTPConfig interface {
	GetHTTPTimeout() time.Duration
}

type mainConfig struct {
	EnvVars
	HTTP
}

func New() Config {
	return mainConfig{}
}
