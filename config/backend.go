package config

import (
	"strings"
	"time"
)

// BackendConfig contains configuration for the marketplace REST backend
// the gateway proxies to.
type BackendConfig struct {
	// BaseURL is the root of the backend REST API.
	BaseURL string `env:"BASE_URL" envDefault:"http://localhost:5000"`

	// Timeout bounds each outbound backend call. The backend owns
	// request semantics; this only protects the gateway's goroutines.
	Timeout time.Duration `env:"TIMEOUT" envDefault:"30s"`
}

// Sanitize applies guardrails to backend configuration values.
func (b *BackendConfig) Sanitize() {
	b.BaseURL = strings.TrimRight(b.BaseURL, "/")
	if b.Timeout <= 0 {
		b.Timeout = 30 * time.Second
	}
}
