package config

import (
	"strconv"
	"time"
)

type TimeoutConfig interface {
	GetRequestTimeout() time.Duration
	GetHealthTimeout() time.Duration
	GetHealthPollInterval() time.Duration
}

type Timeouts struct{}

var _ TimeoutConfig = Timeouts{}

// GetRequestTimeout is the overall budget for any auth API call. Exceeding
// it classifies as a timeout error, not a generic network error.
func (Timeouts) GetRequestTimeout() time.Duration {
	return durationEnv("REQUEST_TIMEOUT_MS", 5000)
}

// GetHealthTimeout is the shorter budget used only for /health probes.
func (Timeouts) GetHealthTimeout() time.Duration {
	return durationEnv("HEALTH_TIMEOUT_MS", 2000)
}

func (Timeouts) GetHealthPollInterval() time.Duration {
	return durationEnv("HEALTH_POLL_INTERVAL_MS", 30000)
}

func durationEnv(envVar string, defaultMillis int) time.Duration {
	v := GetEnv(envVar, "")
	if v == "" {
		return time.Duration(defaultMillis) * time.Millisecond
	}
	millis, err := strconv.Atoi(v)
	if err != nil || millis <= 0 {
		return time.Duration(defaultMillis) * time.Millisecond
	}
	return time.Duration(millis) * time.Millisecond
}
