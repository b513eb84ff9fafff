package twxconfig

import (
	"time"

	"github.com/caarlos0/env/v11"
)

// Env holds the environment overrides recognized by twx.
type Env struct {
	// Account selects an account by name.
	Account string `env:"TWX_ACCOUNT"`
	// BaseURL overrides the selected account's base URL.
	BaseURL string `env:"TWX_BASE_URL"`
	// BearerToken overrides the selected account's token.
	BearerToken string `env:"TWX_BEARER_TOKEN"`
	// ConfigPath overrides the global config location.
	ConfigPath string `env:"TWX_CONFIG_PATH"`
	// Timeout is the per-request HTTP timeout.
	Timeout time.Duration `env:"TWX_TIMEOUT" envDefault:"10s"`
	// MaxRetries retries transient failures; zero disables retries.
	MaxRetries uint64 `env:"TWX_MAX_RETRIES" envDefault:"0"`
	// RatePerMinute caps outgoing requests; zero disables the limit.
	RatePerMinute int `env:"TWX_RATE_PER_MINUTE" envDefault:"0"`
}

// LoadEnv parses the process environment.
func LoadEnv() (Env, error) {
	return env.ParseAs[Env]()
}

// LoadEnvFrom parses the given environment instead of the process one.
func LoadEnvFrom(environ map[string]string) (Env, error) {
	return env.ParseAsWithOptions[Env](env.Options{Environment: environ})
}
