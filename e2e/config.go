package e2e

import (
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	// E2E_CHAT_ADDR is the base URL of a running server; the suite is
	// skipped when it is empty.
	ChatAddr  string `envconfig:"E2E_CHAT_ADDR"`
	JWTSecret string `envconfig:"JWT_SECRET"`
	// E2E_DEBUG_JSON dumps full request and response bodies
	DebugJSON bool `envconfig:"E2E_DEBUG_JSON" default:"false"`
	// E2E_COLOURS enables colorized output for better log readability
	Colours bool `envconfig:"E2E_COLOURS" default:"true"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	return cfg, err
}
