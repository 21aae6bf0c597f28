package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/dualai/debate-agent/internal/provider"
)

// Config is the startup configuration for one debate process.
type Config struct {
	AnthropicAPIKey string
	GeminiAPIKey    string
	NovaModel       string
	SageModel       string
	TurnTimeout     time.Duration
}

// Remote calls inherit this bound unless DBT_TURN_TIMEOUT overrides it.
const defaultTurnTimeout = 120 * time.Second

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// Load reads .env (when present) and the environment. Both API keys are
// required; a missing key is fatal to startup.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		AnthropicAPIKey: os.Getenv("ANTHROPIC_API_KEY"),
		GeminiAPIKey:    os.Getenv("GEMINI_API_KEY"),
		NovaModel:       getEnv("DBT_NOVA_MODEL", string(provider.DefaultNovaModel)),
		SageModel:       getEnv("DBT_SAGE_MODEL", provider.DefaultSageModel),
		TurnTimeout:     defaultTurnTimeout,
	}

	var missing []string
	if cfg.AnthropicAPIKey == "" {
		missing = append(missing, "ANTHROPIC_API_KEY")
	}
	if cfg.GeminiAPIKey == "" {
		missing = append(missing, "GEMINI_API_KEY")
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required credentials: %s", strings.Join(missing, ", "))
	}

	if v := os.Getenv("DBT_TURN_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("invalid DBT_TURN_TIMEOUT %q: %w", v, err)
		}
		cfg.TurnTimeout = d
	}
	return cfg, nil
}
