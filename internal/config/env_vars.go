package config

import (
	"os"
	"path/filepath"
	"strings"
)

const (
	appNameVar  = "APP_NAME"
	baseURLVar  = "API_BASE_URL"
	folderVar   = "FOLDER"
	demoModeVar = "DEMO_MODE"
)

type EnvVars struct{}

var _ EnvConfig = EnvVars{}

func (EnvVars) GetAppName() string {
	return GetEnv(appNameVar, "TradeSage")
}

// GetAPIBaseURL returns the base URL of the authentication backend
// (e.g. "http://localhost:8080"). Paths are appended verbatim.
func (EnvVars) GetAPIBaseURL() string {
	return strings.TrimRight(GetEnv(baseURLVar, "http://localhost:8080"), "/")
}

func (EnvVars) GetDataFolder() string {
	folder := GetEnv(folderVar, "")
	if folder != "" {
		return folder
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "./data"
	}
	return filepath.Join(home, ".tradesage")
}

// GetDemoMode reports whether the offline demo login is allowed at all.
// This is a deliberate trust bypass and must be switched off in builds that
// talk to a real backend.
func (EnvVars) GetDemoMode() bool {
	return GetEnv(demoModeVar, "true") != "false"
}

func (EnvVars) GetDemoEmail() string {
	return GetEnv("DEMO_EMAIL", "demo@example.com")
}

func (EnvVars) GetDemoPassword() string {
	return GetEnv("DEMO_PASSWORD", "demo123")
}

func (EnvVars) GetEnv() string {
	env := os.Getenv("ENV")
	if env == "" {
		return "DEV"
	}
	return env
}

func GetEnv(envVar, defaultValue string) string {
	value := os.Getenv(envVar)
	if value == "" {
		return defaultValue
	}
	return value
}
