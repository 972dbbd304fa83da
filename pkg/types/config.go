// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// DefaultBaseURL is the public PDDIKTI API endpoint.
const DefaultBaseURL = "https://api-pddikti.kemdiktisaintek.go.id"

// DefaultOrigin is the web frontend the API expects requests to come from.
const DefaultOrigin = "https://pddikti.kemdiktisaintek.go.id"

// HTTPConfig holds shared HTTP settings.
type HTTPConfig struct {
	// Timeout is the per-request HTTP timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with every request.
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// ClientConfig holds the settings for a PDDIKTI client session.
type ClientConfig struct {
	HTTPConfig `yaml:",inline"`

	// BaseURL is the API root, without a trailing slash.
	BaseURL string `json:"base_url" yaml:"base_url"`

	// Origin is sent as both Origin and Referer.
	Origin string `json:"origin" yaml:"origin"`

	// MaxRetries bounds retries on 429 and 503 responses (default 3).
	MaxRetries int `json:"max_retries" yaml:"max_retries"`

	// RateLimit is the sustained request rate in requests per second.
	// Zero disables limiting.
	RateLimit float64 `json:"rate_limit" yaml:"rate_limit"`

	// Burst is the number of requests allowed above RateLimit at once.
	Burst int `json:"burst" yaml:"burst"`
}

// DefaultClientConfig returns the settings used when no config file,
// environment variable, or flag overrides them.
func DefaultClientConfig() ClientConfig {
	return ClientConfig{
		HTTPConfig: HTTPConfig{
			Timeout:   30 * time.Second,
			UserAgent: "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0 Safari/537.36",
		},
		BaseURL:    DefaultBaseURL,
		Origin:     DefaultOrigin,
		MaxRetries: 3,
		RateLimit:  2,
		Burst:      4,
	}
}
