package postgres

import (
	"context"
	"math/rand/v2"
	"time"

	"github.com/go-faster/errors"
	"github.com/go-faster/sdk/zctx"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/xenking/kart-checkout/internal/domain/cart"
	"github.com/xenking/kart-checkout/internal/domain/coupon"
	"github.com/xenking/kart-checkout/internal/domain/order"
)

const (
	defaultMaxRetries = 3
	defaultBackoff    = 50 * time.Millisecond
)

var _ order.UnitOfWork = (*UnitOfWork)(nil)

// UnitOfWork runs checkout transactions on a pool. Transactions use READ
// COMMITTED and are retried on serialization failures and deadlocks.
type UnitOfWork struct {
	pool        *pgxpool.Pool
	maxRetries  int
	baseBackoff time.Duration
}

// NewUnitOfWork returns a UnitOfWork backed by pool.
func NewUnitOfWork(pool *pgxpool.Pool) *UnitOfWork {
	return &UnitOfWork{
		pool:        pool,
		maxRetries:  defaultMaxRetries,
		baseBackoff: defaultBackoff,
	}
}

// Within runs fn in a transaction, committing when fn returns nil.
func (u *UnitOfWork) Within(ctx context.Context, fn func(ctx context.Context, tx order.Tx) error) error {
	lg := zctx.From(ctx)

	for attempt := 0; ; attempt++ {
		err := u.runOnce(ctx, fn)
		if err == nil {
			return nil
		}
		if !isRetryable(err) || attempt >= u.maxRetries {
			return err
		}

		wait := backoff(attempt, u.baseBackoff)
		lg.Warn("Retrying transaction",
			zap.Int("attempt", attempt+1),
			zap.Duration("wait", wait),
			zap.Error(err),
		)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(wait):
		}
	}
}

func (u *UnitOfWork) runOnce(ctx context.Context, fn func(ctx context.Context, tx order.Tx) error) error {
	pgxTx, err := u.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return errors.Wrap(err, "begin")
	}
	defer func() {
		if rbErr := pgxTx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			zctx.From(ctx).Warn("Rollback failed", zap.Error(rbErr))
		}
	}()

	if err := fn(ctx, &pgTx{db: pgxTx}); err != nil {
		return err
	}
	if err := pgxTx.Commit(ctx); err != nil {
		return errors.Wrap(err, "commit")
	}
	return nil
}

func isRetryable(err error) bool {
	code, _ := pgCode(err)
	return code == pgSerialization || code == pgDeadlockDetected
}

func backoff(attempt int, base time.Duration) time.Duration {
	wait := base << attempt
	return wait + rand.N(wait/5+1)
}

// pgTx builds transaction-bound repositories on first use.
type pgTx struct {
	db DBTX

	orders  *OrderRepository
	coupons *CouponRepository
	carts   *CartRepository
}

func (t *pgTx) orderRepo() *OrderRepository {
	if t.orders == nil {
		t.orders = NewOrderRepository(t.db)
	}
	return t.orders
}

func (t *pgTx) couponRepo() *CouponRepository {
	if t.coupons == nil {
		t.coupons = NewCouponRepository(t.db)
	}
	return t.coupons
}

func (t *pgTx) Orders() order.Writer         { return t.orderRepo() }
func (t *pgTx) History() coupon.OrderHistory { return t.orderRepo() }
func (t *pgTx) Coupons() coupon.Repository   { return t.couponRepo() }
func (t *pgTx) Counters() coupon.Counters    { return t.couponRepo() }

func (t *pgTx) Carts() cart.Store {
	if t.carts == nil {
		t.carts = NewCartRepository(t.db)
	}
	return t.carts
}
