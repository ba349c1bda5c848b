// Command coupon-ingest loads partner campaign feeds into the coupon table.
//
// Feeds are streamed three times so memory stays bounded by the bloom
// filters and the codes that hit them: pass 1 builds a filter per feed, pass
// 2 finds codes defined by several feeds, pass 3 upserts everything else.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"path/filepath"
	"sort"
	"time"

	"github.com/go-faster/errors"
	"go.uber.org/zap"

	"github.com/xenking/kart-checkout/internal/domain/coupon"
	"github.com/xenking/kart-checkout/internal/storage/postgres"
)

const progressEvery = 1000

func main() {
	var (
		dataDir       string
		databaseURL   string
		expectedCodes uint
		dryRun        bool
	)

	flag.StringVar(&dataDir, "data-dir", "data", "directory containing *.jsonl.gz campaign feeds")
	flag.StringVar(&databaseURL, "database-url", "", "PostgreSQL connection URL (or DATABASE_URL env)")
	flag.UintVar(&expectedCodes, "expected-codes", 1_000_000, "expected number of codes per feed, sizes the bloom filters")
	flag.BoolVar(&dryRun, "dry-run", false, "find conflicting codes without writing")
	flag.Parse()

	lg, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer func() { _ = lg.Sync() }()

	if databaseURL == "" {
		databaseURL = os.Getenv("DATABASE_URL")
	}
	if databaseURL == "" && !dryRun {
		lg.Fatal("Database URL is required: set --database-url or DATABASE_URL")
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if err := run(ctx, lg, dataDir, databaseURL, expectedCodes, dryRun); err != nil {
		lg.Fatal("Coupon ingest failed", zap.Error(err))
	}
	lg.Info("Coupon ingest completed")
}

func run(ctx context.Context, lg *zap.Logger, dataDir, databaseURL string, expectedCodes uint, dryRun bool) error {
	paths, err := filepath.Glob(filepath.Join(dataDir, "*.jsonl.gz"))
	if err != nil {
		return errors.Wrap(err, "list feeds")
	}
	if len(paths) == 0 {
		return errors.Errorf("no *.jsonl.gz feeds in %s", dataDir)
	}
	sort.Strings(paths)
	sources := make([]source, len(paths))
	for i, p := range paths {
		sources[i] = fileSource(p)
	}
	now := time.Now().UTC()

	lg.Info("Pass 1: building bloom filters", zap.Int("files", len(sources)))
	filters, err := buildFilters(ctx, lg, sources, expectedCodes, now)
	if err != nil {
		return errors.Wrap(err, "build bloom filters")
	}

	lg.Info("Pass 2: finding codes defined by several feeds")
	conflicts, candidates, err := findConflicts(ctx, lg, sources, filters, now)
	if err != nil {
		return errors.Wrap(err, "find conflicts")
	}
	for _, code := range conflicts {
		lg.Warn("Code defined by several feeds, skipping", zap.String("code", code))
	}
	lg.Info("Conflicts resolved", zap.Int("candidates", candidates), zap.Int("conflicts", len(conflicts)))

	if dryRun {
		return nil
	}

	pool, err := postgres.NewPool(ctx, databaseURL)
	if err != nil {
		return errors.Wrap(err, "connect to database")
	}
	defer pool.Close()

	lg.Info("Pass 3: writing coupons")
	return writeCoupons(ctx, lg, postgres.NewCouponRepository(pool), sources, conflicts, now)
}

type upserter interface {
	Upsert(ctx context.Context, c *coupon.Coupon) (bool, error)
}

// writeCoupons streams the feeds in order and upserts every definition whose
// code is not in skip, so a code repeated within one feed keeps its last
// line. Usage counters of existing coupons are left alone; a definition
// whose limit is below the current usage is skipped.
func writeCoupons(ctx context.Context, lg *zap.Logger, repo upserter, sources []source, skip []string, now time.Time) error {
	skipped := make(map[string]struct{}, len(skip))
	for _, code := range skip {
		skipped[code] = struct{}{}
	}

	var written, inserted, updated, overused int
	for _, src := range sources {
		if _, err := eachDefinition(ctx, lg, src, now, func(c *coupon.Coupon) error {
			if _, ok := skipped[c.Code]; ok {
				return nil
			}
			created, err := repo.Upsert(ctx, c)
			switch {
			case errors.Is(err, coupon.ErrLimitBelowUsage):
				overused++
				lg.Warn("Usage limit below current usage, skipping", zap.String("code", c.Code))
				return nil
			case err != nil:
				return errors.Wrapf(err, "upsert coupon %s", c.Code)
			case created:
				inserted++
			default:
				updated++
			}

			written++
			if written%progressEvery == 0 {
				lg.Info("Write progress", zap.String("feed", src.name), zap.Int("written", written))
			}
			return nil
		}); err != nil {
			return errors.Wrapf(err, "write %s", src.name)
		}
	}

	lg.Info("Coupons written",
		zap.Int("inserted", inserted),
		zap.Int("updated", updated),
		zap.Int("skipped", overused),
	)
	return nil
}
