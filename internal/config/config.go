package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Port            string   `mapstructure:"PORT"`
	Env             string   `mapstructure:"ENV"`
	JWTSecret       string   `mapstructure:"JWT_SECRET"`
	JWTTTLMinutes   int      `mapstructure:"JWT_TTL_MINUTES"`
	CORSOrigins     []string `mapstructure:"CORS_ORIGINS"`
	RateLimitRPS    float64  `mapstructure:"RATE_LIMIT_RPS"`
	RateLimitBurst  int      `mapstructure:"RATE_LIMIT_BURST"`
	ActionLatencyMS int      `mapstructure:"ACTION_LATENCY_MS"`
	SyncLatencyMS   int      `mapstructure:"SYNC_LATENCY_MS"`
	ToastBuffer     int      `mapstructure:"TOAST_BUFFER"`
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("PORT", "8000")
	v.SetDefault("ENV", "development")
	v.SetDefault("JWT_TTL_MINUTES", 480)
	v.SetDefault("CORS_ORIGINS", "http://localhost:3000")
	v.SetDefault("RATE_LIMIT_RPS", 100)
	v.SetDefault("RATE_LIMIT_BURST", 200)
	v.SetDefault("ACTION_LATENCY_MS", 800)
	v.SetDefault("SYNC_LATENCY_MS", 3000)
	v.SetDefault("TOAST_BUFFER", 256)

	// Bind env vars explicitly so Unmarshal picks them up
	v.BindEnv("PORT")
	v.BindEnv("ENV")
	v.BindEnv("JWT_SECRET")
	v.BindEnv("JWT_TTL_MINUTES")
	v.BindEnv("CORS_ORIGINS")
	v.BindEnv("RATE_LIMIT_RPS")
	v.BindEnv("RATE_LIMIT_BURST")
	v.BindEnv("ACTION_LATENCY_MS")
	v.BindEnv("SYNC_LATENCY_MS")
	v.BindEnv("TOAST_BUFFER")

	// Try reading .env file, but don't fail if missing
	_ = v.ReadInConfig()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if cfg.CORSOrigins == nil {
		origins := v.GetString("CORS_ORIGINS")
		if origins != "" {
			cfg.CORSOrigins = strings.Split(origins, ",")
		}
	}

	if cfg.IsDev() {
		log.Println("WARNING: Server is running in DEVELOPMENT mode (ENV=development).")
		log.Println("WARNING: Login fabricates users locally; session tokens use a built-in demo key.")
		log.Println("WARNING: This is a demo portal. Do NOT expose it as a production service.")
	}

	return cfg, nil
}

func (c *Config) IsDev() bool {
	return c.Env == "development"
}

// IsProduction returns true when the server is configured for production mode.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// JWTTTL returns the session token lifetime.
func (c *Config) JWTTTL() time.Duration {
	return time.Duration(c.JWTTTLMinutes) * time.Minute
}

// ActionLatency returns the simulated round-trip delay for record actions.
func (c *Config) ActionLatency() time.Duration {
	return time.Duration(c.ActionLatencyMS) * time.Millisecond
}

// SyncLatency returns the simulated duration of a manual sync run.
func (c *Config) SyncLatency() time.Duration {
	return time.Duration(c.SyncLatencyMS) * time.Millisecond
}

// Validate checks that the configuration is safe to run. Outside development
// a JWT secret must be set so session tokens cannot be minted with the
// built-in demo key.
func (c *Config) Validate() error {
	if !c.IsDev() && c.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required when ENV=%q", c.Env)
	}
	if c.JWTTTLMinutes <= 0 {
		return fmt.Errorf("JWT_TTL_MINUTES must be positive, got %d", c.JWTTTLMinutes)
	}
	if c.ToastBuffer <= 0 {
		return fmt.Errorf("TOAST_BUFFER must be positive, got %d", c.ToastBuffer)
	}
	if c.ActionLatencyMS < 0 || c.SyncLatencyMS < 0 {
		return fmt.Errorf("simulated latencies must not be negative")
	}
	return nil
}
