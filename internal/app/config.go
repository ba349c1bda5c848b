package app

import (
	"os"
	"time"

	"github.com/cristalhq/aconfig"
	"github.com/cristalhq/aconfig/aconfigyaml"
	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"

	"github.com/xenking/kart-checkout/internal/domain/order"
)

// Config holds the complete application configuration, loadable from
// environment variables (KART_ prefix), flags, or YAML config files.
type Config struct {
	Addr          string `default:"0.0.0.0:8080" usage:"API server listen address"`
	DatabaseURL   string `usage:"PostgreSQL connection URL (KART_DATABASE_URL or DATABASE_URL)" flag:"database-url"`
	JWT           JWTConfig
	Shipping      ShippingConfig
	Exchange      ExchangeConfig
	RateLimit     RateLimitConfig
	CheckoutLimit CheckoutLimitConfig
	CORS          CORSConfig
	Graceful      GracefulConfig
}

// JWTConfig describes the bearer tokens minted by the identity service.
type JWTConfig struct {
	Secret string `usage:"HMAC secret for HS256 bearer tokens (KART_JWT_SECRET)"`
	Issuer string `default:"kart-identity" usage:"Expected iss claim; empty disables the check"`
}

// ShippingConfig prices delivery. Shipping is free strictly above FreeAbove.
type ShippingConfig struct {
	FreeAbove string `default:"999" usage:"Cart value above which shipping is free" flag:"shipping-free-above"`
	Flat      string `default:"100" usage:"Flat shipping charge" flag:"shipping-flat"`
}

// Policy parses the configured amounts.
func (c ShippingConfig) Policy() (order.ShippingPolicy, error) {
	freeAbove, err := decimal.NewFromString(c.FreeAbove)
	if err != nil {
		return order.ShippingPolicy{}, errors.Wrap(err, "shipping free-above")
	}
	flat, err := decimal.NewFromString(c.Flat)
	if err != nil {
		return order.ShippingPolicy{}, errors.Wrap(err, "shipping flat")
	}
	if freeAbove.IsNegative() || flat.IsNegative() {
		return order.ShippingPolicy{}, errors.New("shipping amounts must be non-negative")
	}
	return order.ShippingPolicy{FreeAbove: freeAbove, Flat: flat}, nil
}

// ExchangeConfig controls customer exchange requests.
type ExchangeConfig struct {
	Window time.Duration `default:"72h" usage:"Exchange window measured from order creation" flag:"exchange-window"`
}

// RateLimitConfig controls a sliding window rate limiter.
type RateLimitConfig struct {
	Max    int           `default:"100" usage:"Max requests per window"`
	Window time.Duration `default:"1m"  usage:"Rate limit window duration"`
}

// CheckoutLimitConfig throttles coupon validation and order placement per
// authenticated user. Max of zero disables it.
type CheckoutLimitConfig struct {
	Max    int           `default:"20" usage:"Max checkout requests per user per window" flag:"checkout-limit-max"`
	Window time.Duration `default:"1m" usage:"Checkout limit window duration" flag:"checkout-limit-window"`
}

// CORSConfig controls Cross-Origin Resource Sharing headers.
type CORSConfig struct {
	Origins          []string `default:"*" usage:"Allowed CORS origins"`
	AllowCredentials bool     `default:"false" usage:"Allow credentials (cookies, auth headers)" flag:"cors-credentials"`
}

// GracefulConfig controls graceful shutdown timing.
type GracefulConfig struct {
	ReadinessDelay  time.Duration `default:"3s"  usage:"Delay after readiness=false before shutdown" flag:"readiness-delay"`
	ShutdownTimeout time.Duration `default:"15s" usage:"Maximum shutdown duration" flag:"shutdown-timeout"`
}

// LoadConfig loads configuration from environment variables, YAML config files,
// and applies platform-specific defaults.
func LoadConfig() (*Config, error) {
	var cfg Config
	loader := aconfig.LoaderFor(&cfg, aconfig.Config{
		EnvPrefix: "KART",
		Files:     []string{"config.yaml", "/etc/kart/config.yaml"},
		FileDecoders: map[string]aconfig.FileDecoder{
			".yaml": aconfigyaml.New(),
		},
	})
	if err := loader.Load(); err != nil {
		return nil, errors.Wrap(err, "load config")
	}
	cfg.applyPlatformDefaults()

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// applyPlatformDefaults maps platform-provided environment variables (Railway,
// Render, etc.) that use standard names like DATABASE_URL and PORT to the
// application's KART_-prefixed configuration.
func (c *Config) applyPlatformDefaults() {
	if c.DatabaseURL == "" {
		if v := os.Getenv("DATABASE_URL"); v != "" {
			c.DatabaseURL = v
		}
	}
	if port := os.Getenv("PORT"); port != "" && c.Addr == "0.0.0.0:8080" {
		c.Addr = "0.0.0.0:" + port
	}
}

func (c *Config) validate() error {
	switch {
	case c.DatabaseURL == "":
		return errors.New("database URL is required: set KART_DATABASE_URL or DATABASE_URL")
	case c.JWT.Secret == "":
		return errors.New("JWT secret is required: set KART_JWT_SECRET")
	case c.RateLimit.Max <= 0 || c.RateLimit.Window <= 0:
		return errors.New("rate limit max and window must be positive")
	case c.CheckoutLimit.Max < 0:
		return errors.New("checkout limit max must be non-negative")
	case c.CheckoutLimit.Max > 0 && c.CheckoutLimit.Window <= 0:
		return errors.New("checkout limit window must be positive")
	}
	if _, err := c.Shipping.Policy(); err != nil {
		return errors.Wrap(err, "invalid shipping config")
	}
	return nil
}
