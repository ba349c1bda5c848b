package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/go-faster/errors"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/xenking/kart-checkout/internal/domain/auth"
	"github.com/xenking/kart-checkout/internal/domain/coupon"
	"github.com/xenking/kart-checkout/internal/domain/product"
	"github.com/xenking/kart-checkout/internal/domain/user"
	"github.com/xenking/kart-checkout/internal/storage/postgres"
)

type productJSON struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Category string          `json:"category"`
	Stock    int             `json:"stock"`
}

var defaultProducts = []productJSON{
	{ID: "kbd-tkl", Name: "Tenkeyless Mechanical Keyboard", Price: decimal.RequireFromString("4999.00"), Category: "Keyboards", Stock: 40},
	{ID: "mouse-wl", Name: "Wireless Mouse", Price: decimal.RequireFromString("1299.50"), Category: "Mice", Stock: 120},
	{ID: "pad-xl", Name: "XL Desk Pad", Price: decimal.RequireFromString("799.00"), Category: "Accessories", Stock: 75},
	{ID: "cable-c", Name: "Braided USB-C Cable", Price: decimal.RequireFromString("349.00"), Category: "Accessories", Stock: 300},
	{ID: "mon-27", Name: "27\" QHD Monitor", Price: decimal.RequireFromString("21999.00"), Category: "Displays", Stock: 15},
}

func main() {
	var (
		databaseURL  string
		productsFile string
		jwtSecret    string
		jwtIssuer    string
	)

	flag.StringVar(&databaseURL, "database-url", "", "PostgreSQL connection URL (or DATABASE_URL env)")
	flag.StringVar(&productsFile, "products-file", "", "path to products JSON file; built-in catalog when empty")
	flag.StringVar(&jwtSecret, "jwt-secret", "", "HMAC secret used to print demo tokens (or KART_JWT_SECRET env)")
	flag.StringVar(&jwtIssuer, "jwt-issuer", "kart-identity", "issuer claim of demo tokens")
	flag.Parse()

	lg, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer func() { _ = lg.Sync() }()

	if databaseURL == "" {
		databaseURL = os.Getenv("DATABASE_URL")
	}
	if databaseURL == "" {
		lg.Fatal("Database URL is required: set --database-url or DATABASE_URL")
	}
	if jwtSecret == "" {
		jwtSecret = os.Getenv("KART_JWT_SECRET")
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	s := seeder{lg: lg}
	if err := s.run(ctx, databaseURL, productsFile, jwtSecret, jwtIssuer); err != nil {
		lg.Fatal("Seed failed", zap.Error(err))
	}
	lg.Info("Seed completed")
}

type seeder struct {
	lg       *zap.Logger
	products *postgres.ProductRepository
	users    *postgres.UserRepository
	coupons  *postgres.CouponRepository
}

func (s *seeder) run(ctx context.Context, databaseURL, productsFile, secret, issuer string) error {
	s.lg.Info("Connecting to database")
	pool, err := postgres.NewPool(ctx, databaseURL)
	if err != nil {
		return errors.Wrap(err, "connect to database")
	}
	defer pool.Close()

	if err := postgres.RunMigrations(ctx, pool); err != nil {
		return errors.Wrap(err, "run migrations")
	}

	s.products = postgres.NewProductRepository(pool)
	s.users = postgres.NewUserRepository(pool)
	s.coupons = postgres.NewCouponRepository(pool)

	if err := s.seedProducts(ctx, productsFile); err != nil {
		return errors.Wrap(err, "seed products")
	}
	ids, err := s.seedUsers(ctx)
	if err != nil {
		return errors.Wrap(err, "seed users")
	}
	if err := s.seedCoupons(ctx, ids["vip@kart.dev"]); err != nil {
		return errors.Wrap(err, "seed coupons")
	}

	if secret == "" {
		s.lg.Info("No JWT secret given, skipping demo tokens")
		return nil
	}
	tokens := auth.NewTokens(secret, issuer, 30*24*time.Hour)
	for email, id := range ids {
		tok, err := tokens.Issue(id)
		if err != nil {
			return errors.Wrapf(err, "issue token for %s", email)
		}
		fmt.Printf("%s\t%s\n", email, tok)
	}
	return nil
}

func (s *seeder) seedProducts(ctx context.Context, path string) error {
	list := defaultProducts
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return errors.Wrap(err, "read products file")
		}
		list = nil
		if err := json.Unmarshal(data, &list); err != nil {
			return errors.Wrap(err, "parse products JSON")
		}
	}

	for _, p := range list {
		if err := s.products.Upsert(ctx, product.Product{
			ID:       p.ID,
			Name:     p.Name,
			Price:    p.Price,
			Category: p.Category,
			Stock:    p.Stock,
		}); err != nil {
			return err
		}
	}
	s.lg.Info("Upserted products", zap.Int("count", len(list)))
	return nil
}

// seedUsers returns the stored id of each demo user keyed by email.
func (s *seeder) seedUsers(ctx context.Context) (map[string]string, error) {
	demo := []user.User{
		{Email: "admin@kart.dev", Name: "Kart Admin", Role: user.RoleAdmin},
		{Email: "shopper@kart.dev", Name: "Demo Shopper", Role: user.RoleCustomer},
		{Email: "vip@kart.dev", Name: "VIP Shopper", Role: user.RoleCustomer},
	}

	ids := make(map[string]string, len(demo))
	for _, u := range demo {
		u.ID = uuid.NewString()
		id, err := s.users.Upsert(ctx, u)
		if err != nil {
			return nil, err
		}
		ids[u.Email] = id
		s.lg.Info("Upserted user", zap.String("email", u.Email), zap.String("id", id), zap.String("role", string(u.Role)))
	}
	return ids, nil
}

func (s *seeder) seedCoupons(ctx context.Context, vipID string) error {
	now := time.Now().UTC()
	expires := now.Add(90 * 24 * time.Hour)
	limit := 500

	demo := []coupon.Coupon{
		{
			Code:          "SAVE10",
			DiscountType:  coupon.DiscountPercentage,
			DiscountValue: decimal.NewFromInt(10),
			MinOrderValue: decimal.NewFromInt(500),
			PerUserLimit:  3,
			Description:   "10% off orders of 500 or more",
		},
		{
			Code:          "FLAT300",
			DiscountType:  coupon.DiscountFixed,
			DiscountValue: decimal.NewFromInt(300),
			MinOrderValue: decimal.NewFromInt(2000),
			ExpiresAt:     &expires,
			UsageLimit:    &limit,
			PerUserLimit:  1,
			Description:   "300 off orders of 2000 or more, first 500 shoppers",
		},
		{
			Code:           "WELCOME",
			DiscountType:   coupon.DiscountPercentage,
			DiscountValue:  decimal.NewFromInt(15),
			PerUserLimit:   1,
			FirstOrderOnly: true,
			Description:    "15% off your first order",
		},
		{
			Code:          "VIP",
			DiscountType:  coupon.DiscountPercentage,
			DiscountValue: decimal.NewFromInt(25),
			PerUserLimit:  5,
			AllowedUsers:  []string{vipID},
			Description:   "25% off for VIP shoppers",
		},
	}

	for i := range demo {
		c := &demo[i]
		c.ID = uuid.NewString()
		c.Active = true
		c.UpdatedAt = now
		inserted, err := s.coupons.Upsert(ctx, c)
		if err != nil {
			return err
		}
		s.lg.Info("Upserted coupon", zap.String("code", c.Code), zap.Bool("inserted", inserted))
	}
	return nil
}
