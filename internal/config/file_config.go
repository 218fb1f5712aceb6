package config

import (
	"os"
	"strings"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// fileValues are the optional overrides a config file may carry. Absent
// fields fall through to the environment-backed defaults.
type fileValues struct {
	AppName            string `yaml:"app_name"`
	APIBaseURL         string `yaml:"api_base_url"`
	DataFolder         string `yaml:"data_folder"`
	DemoMode           *bool  `yaml:"demo_mode"`
	RequestTimeoutMS   int    `yaml:"request_timeout_ms"`
	HealthTimeoutMS    int    `yaml:"health_timeout_ms"`
	HealthPollMS       int    `yaml:"health_poll_interval_ms"`
}

type fileConfig struct {
	Config
	values fileValues
}

// NewFromFile layers a YAML config file over the environment configuration.
// A missing file is not an error; a malformed one is.
func NewFromFile(path string) (Config, error) {
	base := New()
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return base, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "[config.NewFromFile] read")
	}
	var values fileValues
	if err := yaml.Unmarshal(data, &values); err != nil {
		return nil, errors.Wrap(err, "[config.NewFromFile] parse")
	}
	return fileConfig{Config: base, values: values}, nil
}

func (f fileConfig) GetAppName() string {
	if f.values.AppName != "" {
		return f.values.AppName
	}
	return f.Config.GetAppName()
}

func (f fileConfig) GetAPIBaseURL() string {
	if f.values.APIBaseURL != "" {
		return strings.TrimRight(f.values.APIBaseURL, "/")
	}
	return f.Config.GetAPIBaseURL()
}

func (f fileConfig) GetDataFolder() string {
	if f.values.DataFolder != "" {
		return f.values.DataFolder
	}
	return f.Config.GetDataFolder()
}

func (f fileConfig) GetDemoMode() bool {
	if f.values.DemoMode != nil {
		return *f.values.DemoMode
	}
	return f.Config.GetDemoMode()
}

func (f fileConfig) GetRequestTimeout() time.Duration {
	if f.values.RequestTimeoutMS > 0 {
		return time.Duration(f.values.RequestTimeoutMS) * time.Millisecond
	}
	return f.Config.GetRequestTimeout()
}

func (f fileConfig) GetHealthTimeout() time.Duration {
	if f.values.HealthTimeoutMS > 0 {
		return time.Duration(f.values.HealthTimeoutMS) * time.Millisecond
	}
	return f.Config.GetHealthTimeout()
}

func (f fileConfig) GetHealthPollInterval() time.Duration {
	if f.values.HealthPollMS > 0 {
		return time.Duration(f.values.HealthPollMS) * time.Millisecond
	}
	return f.Config.GetHealthPollInterval()
}
