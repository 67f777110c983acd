package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all client configuration
type Config struct {
	API      APIConfig
	Auth     AuthConfig
	Log      LogConfig
	Page     PageConfig
	Checkout CheckoutConfig
}

// APIConfig holds backend endpoint settings
type APIConfig struct {
	BaseURL string        // e.g. "http://localhost:8080"
	Timeout time.Duration // zero means no client-side timeout
}

// AuthConfig holds the access token the client presents on every request
type AuthConfig struct {
	Token string
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, console
	Output string // stdout, stderr, or file path
}

// PageConfig holds pagination defaults for collection fetches
type PageConfig struct {
	DefaultSize int
	DefaultSort string
}

// CheckoutConfig holds the client-side pricing constants of the checkout flow
type CheckoutConfig struct {
	FreeShippingThreshold float64       // subtotal strictly above this ships free
	ShippingFee           float64       // flat fee below the threshold
	RedirectDelay         time.Duration // delay before navigating to the order list after success
}

// Load loads configuration from TOML file and environment variables
// Priority (highest to lowest):
// 1. Environment variables with SHOPFRONT_ prefix (e.g. SHOPFRONT_AUTH_TOKEN)
// 2. config.toml
// 3. Built-in defaults
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.shopfront")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found is OK, we'll use defaults and env vars
	}

	v.SetEnvPrefix("SHOPFRONT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	cfg := &Config{
		API: APIConfig{
			BaseURL: v.GetString("api.base_url"),
			Timeout: v.GetDuration("api.timeout"),
		},
		Auth: AuthConfig{
			Token: v.GetString("auth.token"),
		},
		Log: LogConfig{
			Level:  v.GetString("log.level"),
			Format: v.GetString("log.format"),
			Output: v.GetString("log.output"),
		},
		Page: PageConfig{
			DefaultSize: v.GetInt("page.default_size"),
			DefaultSort: v.GetString("page.default_sort"),
		},
		Checkout: CheckoutConfig{
			FreeShippingThreshold: v.GetFloat64("checkout.free_shipping_threshold"),
			ShippingFee:           v.GetFloat64("checkout.shipping_fee"),
			RedirectDelay:         v.GetDuration("checkout.redirect_delay"),
		},
	}

	applyDefaults(cfg)

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyDefaults sets default values for any empty config fields
func applyDefaults(cfg *Config) {
	if cfg.API.BaseURL == "" {
		cfg.API.BaseURL = "http://localhost:8080"
	}
	// API.Timeout deliberately defaults to zero: the synchronization
	// contract has no client-side timeout fallback.
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "console"
	}
	if cfg.Log.Output == "" {
		cfg.Log.Output = "stdout"
	}
	if cfg.Page.DefaultSize == 0 {
		cfg.Page.DefaultSize = 20
	}
	if cfg.Page.DefaultSort == "" {
		cfg.Page.DefaultSort = "id,asc"
	}
	if cfg.Checkout.FreeShippingThreshold == 0 {
		cfg.Checkout.FreeShippingThreshold = 100
	}
	if cfg.Checkout.ShippingFee == 0 {
		cfg.Checkout.ShippingFee = 10
	}
	if cfg.Checkout.RedirectDelay == 0 {
		cfg.Checkout.RedirectDelay = 2 * time.Second
	}
}

// validate performs validation on the configuration
func (c *Config) validate() error {
	u, err := url.Parse(c.API.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("api.base_url must be an absolute URL, got %q", c.API.BaseURL)
	}
	if c.API.Timeout < 0 {
		return fmt.Errorf("api.timeout cannot be negative")
	}
	if c.Page.DefaultSize < 1 {
		return fmt.Errorf("page.default_size must be positive")
	}
	if c.Checkout.FreeShippingThreshold < 0 {
		return fmt.Errorf("checkout.free_shipping_threshold cannot be negative")
	}
	if c.Checkout.ShippingFee < 0 {
		return fmt.Errorf("checkout.shipping_fee cannot be negative")
	}
	return nil
}
