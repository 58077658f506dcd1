package config

import (
	"checkout-gateway/internal/common/enum"
	"checkout-gateway/internal/pkg/crossmint"
	"context"
	"sync"
)

// Config holds all application configuration loaded from environment variables
type Config struct {
	AppEnv  enum.EnvEnum `env:"APP_ENV" envDefault:"development"`
	AppPort int          `env:"APP_PORT" envDefault:"8080"`

	// Crossmint checkout. The server key deliberately defaults to empty:
	// a missing key must surface as a per-request proxy error, not a boot
	// failure.
	CrossmintServerAPIKey string `env:"CROSSMINT_SERVER_API_KEY" envDefault:""`
	CrossmintEnv          string `env:"CROSSMINT_ENV" envDefault:"staging"`
	ChainID               string `env:"CHAIN_ID" envDefault:""`
	USDCTokenMint         string `env:"USDC_TOKEN_MINT" envDefault:""`
}

// SetupServerDto contains dependencies for server setup
type SetupServerDto struct {
	Ctx    *context.Context
	Cancel context.CancelFunc
	Wg     *sync.WaitGroup
	Env    *Config
	Cm     *crossmint.Client
}
