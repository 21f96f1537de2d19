package config

import "time"

// MonitorConfig configures the in-process watch loop. One-shot runs ignore it.
type MonitorConfig struct {
	CheckIntervalSeconds int `json:"check_interval_seconds,omitempty" yaml:"check_interval_seconds,omitempty" validate:"min=10,max=86400"`
}

// NewDefaultMonitorConfig creates default monitor configuration
func NewDefaultMonitorConfig() MonitorConfig {
	return MonitorConfig{
		CheckIntervalSeconds: DefaultMonitorCheckIntervalSeconds,
	}
}

// CheckInterval returns the interval between cycles
func (c MonitorConfig) CheckInterval() time.Duration {
	return time.Duration(c.CheckIntervalSeconds) * time.Second
}
