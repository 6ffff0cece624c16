// Package config loads app configuration from env and an optional .env file.
package config

import (
	"errors"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	// Addr is the address the HTTP server listens on.
	Addr string `mapstructure:"ADDR"`
	// MySQLDSN is the data source name for the leads database.
	MySQLDSN string `mapstructure:"MYSQL_DSN"`
	// JWTSecret signs session tokens. Required; startup fails without it.
	JWTSecret string `mapstructure:"JWT_SECRET"`
	// JWTExpiresIn is the token lifetime: suffixes s/m/h/d, bare digits are
	// seconds, anything else falls back to 6h.
	JWTExpiresIn string `mapstructure:"JWT_EXPIRES_IN"`
	// CookieName is the session cookie name.
	CookieName string `mapstructure:"COOKIE_NAME"`
	// CookieSameSite optionally overrides the derived SameSite attribute
	// (lax|strict|none).
	CookieSameSite string `mapstructure:"COOKIE_SAMESITE"`
	// FrontendURL is the origin allowed by CORS and drives cookie policy:
	// a non-localhost origin is treated as a cross-site deployment.
	FrontendURL string `mapstructure:"FRONTEND_URL"`
	// Env is the application environment (development|production).
	Env string `mapstructure:"APP_ENV"`
}

// Load reads .env (if present) then the environment. Env vars override .env.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigFile(".env")
	v.SetConfigType("env")
	_ = v.ReadInConfig() // missing .env is fine, e.g. in CI

	v.AutomaticEnv()

	v.SetDefault("ADDR", ":4000")
	v.SetDefault("MYSQL_DSN", "root@tcp(127.0.0.1:3306)/erino?parseTime=true")
	v.SetDefault("JWT_SECRET", "")
	v.SetDefault("JWT_EXPIRES_IN", "6h")
	v.SetDefault("COOKIE_NAME", "token")
	v.SetDefault("COOKIE_SAMESITE", "")
	v.SetDefault("FRONTEND_URL", "http://localhost:5173")
	v.SetDefault("APP_ENV", "development")

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if cfg.JWTSecret == "" {
		return nil, errors.New("config: JWT_SECRET must be set")
	}
	switch cfg.CookieSameSite {
	case "", "lax", "strict", "none":
	default:
		return nil, errors.New("config: COOKIE_SAMESITE must be one of lax, strict, none")
	}

	return &cfg, nil
}

// Production reports whether the app runs with production error reporting.
func (c *Config) Production() bool {
	return c.Env == "production"
}

// CrossSite reports whether the frontend is served from a different site,
// which forces SameSite=None; Secure on the session cookie.
func (c *Config) CrossSite() bool {
	return !strings.Contains(c.FrontendURL, "localhost") &&
		!strings.Contains(c.FrontendURL, "127.0.0.1")
}
