package config

type Config interface {
	EnvConfig
	TimeoutConfig
}

type EnvConfig interface {
	GetAppName() string
	GetAPIBaseURL() string
	GetDataFolder() string
	GetDemoMode() bool
	GetDemoEmail() string
	GetDemoPassword() string
	GetEnv() string
}

type mainConfig struct {
	EnvVars
	Timeouts
}

func New() Config {
	return mainConfig{}
}
