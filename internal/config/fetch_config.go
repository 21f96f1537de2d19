package config

import "time"

// FetchConfig defines how the upstream status API is reached
type FetchConfig struct {
	APIURL             string            `json:"api_url,omitempty" yaml:"api_url,omitempty" validate:"required,url"`
	TimeoutSeconds     int               `json:"timeout_seconds,omitempty" yaml:"timeout_seconds,omitempty" validate:"min=1,max=300"`
	UserAgent          string            `json:"user_agent,omitempty" yaml:"user_agent,omitempty"`
	Headers            map[string]string `json:"headers,omitempty" yaml:"headers,omitempty"`
	EnableHTTP2        bool              `json:"enable_http2" yaml:"enable_http2"`
	InsecureSkipVerify bool              `json:"insecure_skip_verify" yaml:"insecure_skip_verify"`
	MaxContentSize     int               `json:"max_content_size,omitempty" yaml:"max_content_size,omitempty" validate:"min=0"`
}

// NewDefaultFetchConfig creates default fetch configuration
func NewDefaultFetchConfig() FetchConfig {
	return FetchConfig{
		APIURL:         DefaultFetchAPIURL,
		TimeoutSeconds: DefaultFetchTimeoutSeconds,
		UserAgent:      DefaultFetchUserAgent,
		Headers: map[string]string{
			"Accept":          "application/json, text/plain, */*",
			"Accept-Language": "pt-BR,pt;q=0.9,en;q=0.8",
		},
		EnableHTTP2:    true,
		MaxContentSize: DefaultFetchMaxContentSize,
	}
}

// Timeout returns the request timeout as a duration
func (c FetchConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}
