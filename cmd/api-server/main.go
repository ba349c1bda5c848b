// Command api-server serves the storefront checkout API: carts, coupon
// validation and redemption, orders and the admin coupon endpoints.
package main

import (
	"context"

	"github.com/go-faster/errors"
	"github.com/go-faster/sdk/app"
	"go.uber.org/zap"

	appkg "github.com/xenking/kart-checkout/internal/app"
)

func main() {
	app.Run(func(ctx context.Context, lg *zap.Logger, m *app.Telemetry) error {
		cfg, err := appkg.LoadConfig()
		if err != nil {
			return errors.Wrap(err, "config")
		}
		lg.Info("Config loaded",
			zap.String("shipping_free_above", cfg.Shipping.FreeAbove),
			zap.String("shipping_flat", cfg.Shipping.Flat),
			zap.Duration("exchange_window", cfg.Exchange.Window),
			zap.Int("checkout_limit", cfg.CheckoutLimit.Max),
		)
		return appkg.Run(ctx, lg, m, cfg)
	})
}
