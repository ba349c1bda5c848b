package app

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-faster/errors"
	"github.com/go-faster/sdk/app"
	"github.com/go-faster/sdk/zctx"
	"go.uber.org/zap"

	"github.com/xenking/kart-checkout/gen/oas"
	"github.com/xenking/kart-checkout/internal/domain/auth"
	"github.com/xenking/kart-checkout/internal/domain/cart"
	"github.com/xenking/kart-checkout/internal/domain/coupon"
	"github.com/xenking/kart-checkout/internal/domain/order"
	"github.com/xenking/kart-checkout/internal/handler"
	"github.com/xenking/kart-checkout/internal/storage/postgres"
	"github.com/xenking/kart-checkout/pkg/health"
	"github.com/xenking/kart-checkout/pkg/httpmiddleware"
)

// Run creates all dependencies, starts the HTTP server, and handles graceful
// shutdown. It is the single wiring point for the application.
func Run(ctx context.Context, lg *zap.Logger, m *app.Telemetry, cfg *Config) error {
	lg.Info("Initializing", zap.String("addr", cfg.Addr))

	// PostgreSQL pool + migrations.
	pool, err := postgres.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		return errors.Wrap(err, "create db pool")
	}
	defer pool.Close()

	if err := postgres.RunMigrations(ctx, pool); err != nil {
		return errors.Wrap(err, "run migrations")
	}

	// Health check service.
	healthSvc := health.New()
	healthSvc.Readiness("postgres", 5*time.Second, health.PingCheck(pool))
	healthSvc.Liveness("goroutines", time.Second, health.GoroutineCountCheck(10000))
	healthSvc.Start(zctx.Base(ctx, lg.Named("health")), 10*time.Second)
	healthSvc.SetReady(true)

	// Repositories.
	products := postgres.NewProductRepository(pool)
	users := postgres.NewUserRepository(pool)
	coupons := postgres.NewCouponRepository(pool)
	orders := postgres.NewOrderRepository(pool)
	carts := postgres.NewCartRepository(pool)
	uow := postgres.NewUnitOfWork(pool)

	// Domain services.
	shipping, err := cfg.Shipping.Policy()
	if err != nil {
		return errors.Wrap(err, "shipping policy")
	}
	metrics, err := order.NewMetrics(m.MeterProvider())
	if err != nil {
		return errors.Wrap(err, "order metrics")
	}
	cartAgg := cart.NewAggregator(carts, products)
	evaluator := coupon.NewEvaluator(coupons, orders)
	coordinator := order.NewCoordinator(products, cartAgg, evaluator, uow, shipping,
		order.WithTracerProvider(m.TracerProvider()),
		order.WithMetrics(metrics),
	)

	var checkoutLimit *httpmiddleware.Limiter
	if cfg.CheckoutLimit.Max > 0 {
		checkoutLimit = httpmiddleware.NewLimiter(httpmiddleware.RateLimitConfig{
			Max:    cfg.CheckoutLimit.Max,
			Window: cfg.CheckoutLimit.Window,
		})
		go checkoutLimit.Run(ctx)
	}

	// HTTP handlers.
	h := handler.New(handler.Deps{
		Catalog:       products,
		Carts:         cartAgg,
		Evaluator:     evaluator,
		Coupons:       coupon.NewService(coupons, users),
		Coordinator:   coordinator,
		Orders:        order.NewService(orders, cfg.Exchange.Window),
		Shipping:      shipping,
		CheckoutLimit: checkoutLimit,
	})

	securityHandler := handler.NewSecurityHandler(auth.NewTokens(cfg.JWT.Secret, cfg.JWT.Issuer, 0), users)

	oasServer, err := handler.NewServer(h, securityHandler,
		oas.WithTracerProvider(m.TracerProvider()),
		oas.WithMeterProvider(m.MeterProvider()),
	)
	if err != nil {
		return errors.Wrap(err, "create oas server")
	}

	// Router: health endpoints + ogen API routes on one server.
	routeFinder := httpmiddleware.MakeRouteFinder(oasServer.FindPath)
	mux := chi.NewRouter()
	mux.Use(
		httpmiddleware.Instrument("kart-api", routeFinder, m),
		httpmiddleware.Labeler(routeFinder),
		httpmiddleware.LogRequests(routeFinder),
	)
	mux.Get("/livez", healthSvc.LiveEndpoint)
	mux.Get("/readyz", healthSvc.ReadyEndpoint)
	mux.Mount(handler.Prefix, oasServer)
	mux.NotFound(handler.NotFound)

	server := &http.Server{
		ReadHeaderTimeout: time.Second,
		ReadTimeout:       5 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       120 * time.Second,
		MaxHeaderBytes:    1 << 20,
		Addr:              cfg.Addr,
		Handler: httpmiddleware.Wrap(mux,
			httpmiddleware.RequestID(),
			httpmiddleware.InjectLogger(lg),
			httpmiddleware.Recovery(),
			httpmiddleware.CORS(httpmiddleware.CORSConfig{
				AllowOrigins:     cfg.CORS.Origins,
				AllowHeaders:     []string{"Content-Type", "Authorization", httpmiddleware.RequestIDHeader},
				ExposeHeaders:    []string{httpmiddleware.RequestIDHeader, "Retry-After"},
				AllowCredentials: cfg.CORS.AllowCredentials,
				MaxAge:           86400,
			}),
			httpmiddleware.RateLimit(ctx, httpmiddleware.RateLimitConfig{
				Max:    cfg.RateLimit.Max,
				Window: cfg.RateLimit.Window,
			}),
		),
	}

	// Graceful shutdown: wait for context cancellation, drain, then stop.
	shutdownDone := make(chan struct{})
	go func() {
		<-ctx.Done()
		healthSvc.SetReady(false)
		lg.Info("Readiness set to false, draining", zap.Duration("delay", cfg.Graceful.ReadinessDelay))
		time.Sleep(cfg.Graceful.ReadinessDelay)

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Graceful.ShutdownTimeout)
		defer cancel()

		lg.Info("Shutting down server", zap.Duration("timeout", cfg.Graceful.ShutdownTimeout))
		if err := server.Shutdown(shutdownCtx); err != nil {
			lg.Error("Server shutdown error", zap.Error(err))
		}
		healthSvc.Stop()
		close(shutdownDone)
	}()

	lg.Info("Server listening", zap.String("addr", cfg.Addr))
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.Wrap(err, "server")
	}
	<-shutdownDone
	return nil
}
