package app

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() Config {
	return Config{
		Addr:          "0.0.0.0:8080",
		DatabaseURL:   "postgres://kart@localhost/kart",
		JWT:           JWTConfig{Secret: "s3cret", Issuer: "kart-identity"},
		Shipping:      ShippingConfig{FreeAbove: "999", Flat: "100"},
		Exchange:      ExchangeConfig{Window: 72 * time.Hour},
		RateLimit:     RateLimitConfig{Max: 100, Window: time.Minute},
		CheckoutLimit: CheckoutLimitConfig{Max: 20, Window: time.Minute},
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "valid", mutate: func(*Config) {}},
		{name: "no database", mutate: func(c *Config) { c.DatabaseURL = "" }, wantErr: "database URL is required"},
		{name: "no secret", mutate: func(c *Config) { c.JWT.Secret = "" }, wantErr: "JWT secret is required"},
		{name: "zero rate limit", mutate: func(c *Config) { c.RateLimit.Max = 0 }, wantErr: "rate limit"},
		{name: "checkout limit without window", mutate: func(c *Config) { c.CheckoutLimit.Window = 0 }, wantErr: "checkout limit window"},
		{name: "checkout limit negative window", mutate: func(c *Config) { c.CheckoutLimit.Window = -time.Second }, wantErr: "checkout limit window"},
		{name: "checkout limit negative max", mutate: func(c *Config) { c.CheckoutLimit.Max = -1 }, wantErr: "checkout limit max"},
		{name: "checkout limit disabled", mutate: func(c *Config) { c.CheckoutLimit = CheckoutLimitConfig{} }},
		{name: "bad shipping", mutate: func(c *Config) { c.Shipping.Flat = "ten" }, wantErr: "invalid shipping config"},
		{name: "negative shipping", mutate: func(c *Config) { c.Shipping.FreeAbove = "-1" }, wantErr: "non-negative"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)
			err := cfg.validate()
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestShippingConfig_Policy(t *testing.T) {
	p, err := ShippingConfig{FreeAbove: "1499.50", Flat: "49"}.Policy()
	require.NoError(t, err)

	assert.True(t, p.Cost(decimal.RequireFromString("1499.50")).Equal(decimal.NewFromInt(49)))
	assert.True(t, p.Cost(decimal.RequireFromString("1499.51")).IsZero())
}

func TestApplyPlatformDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://platform/db")
	t.Setenv("PORT", "9000")

	cfg := Config{Addr: "0.0.0.0:8080"}
	cfg.applyPlatformDefaults()
	assert.Equal(t, "postgres://platform/db", cfg.DatabaseURL)
	assert.Equal(t, "0.0.0.0:9000", cfg.Addr)

	cfg = Config{Addr: "127.0.0.1:7000", DatabaseURL: "postgres://explicit/db"}
	cfg.applyPlatformDefaults()
	assert.Equal(t, "postgres://explicit/db", cfg.DatabaseURL)
	assert.Equal(t, "127.0.0.1:7000", cfg.Addr)
}
