package main

import (
	"bufio"
	"context"
	"encoding/json"
	"io"
	"math/bits"
	"os"
	"sort"
	"time"

	"github.com/bits-and-blooms/bloom/v3"
	"github.com/go-faster/errors"
	"github.com/google/uuid"
	pgzip "github.com/klauspost/pgzip"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/xenking/kart-checkout/internal/domain/coupon"
)

const (
	bloomFPR = 0.001
	// maxFeeds is the number of feeds a candidate bitmask can track.
	maxFeeds = bits.UintSize
)

// record is one line of a partner campaign feed.
type record struct {
	Code           string          `json:"code"`
	DiscountType   string          `json:"discountType"`
	DiscountValue  decimal.Decimal `json:"discountValue"`
	MinOrderValue  decimal.Decimal `json:"minOrderValue"`
	ExpiresAt      *time.Time      `json:"expiryDate"`
	UsageLimit     *int            `json:"usageLimit"`
	PerUserLimit   *int            `json:"perUserLimit"`
	Active         *bool           `json:"isActive"`
	FirstOrderOnly bool            `json:"isFirstOrderOnly"`
	Description    string          `json:"description"`
}

func (r record) coupon(now time.Time) (*coupon.Coupon, error) {
	c := &coupon.Coupon{
		ID:             uuid.NewString(),
		Code:           coupon.NormalizeCode(r.Code),
		DiscountType:   coupon.DiscountType(r.DiscountType),
		DiscountValue:  r.DiscountValue,
		MinOrderValue:  r.MinOrderValue,
		ExpiresAt:      r.ExpiresAt,
		PerUserLimit:   1,
		Active:         true,
		FirstOrderOnly: r.FirstOrderOnly,
		Description:    r.Description,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if r.UsageLimit != nil && *r.UsageLimit > 0 {
		limit := *r.UsageLimit
		c.UsageLimit = &limit
	}
	if r.PerUserLimit != nil {
		c.PerUserLimit = *r.PerUserLimit
	}
	if r.Active != nil {
		c.Active = *r.Active
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// source is a feed that can be streamed once per pass.
type source struct {
	name string
	open func() (io.ReadCloser, error)
}

// fileSource streams a gzip-compressed feed from disk.
func fileSource(path string) source {
	return source{
		name: path,
		open: func() (io.ReadCloser, error) {
			f, err := os.Open(path)
			if err != nil {
				return nil, errors.Wrapf(err, "open %s", path)
			}
			gz, err := pgzip.NewReader(f)
			if err != nil {
				_ = f.Close()
				return nil, errors.Wrapf(err, "create gzip reader for %s", path)
			}
			return gzFile{Reader: gz, file: f}, nil
		},
	}
}

type gzFile struct {
	*pgzip.Reader
	file *os.File
}

func (g gzFile) Close() error {
	gzErr := g.Reader.Close()
	if err := g.file.Close(); err != nil {
		return err
	}
	return gzErr
}

type scanStats struct {
	lines    int
	rejected int
}

// eachDefinition streams src and calls fn for every valid definition in file
// order. Lines that fail to parse or validate are counted and skipped.
func eachDefinition(ctx context.Context, lg *zap.Logger, src source, now time.Time, fn func(*coupon.Coupon) error) (scanStats, error) {
	var stats scanStats

	r, err := src.open()
	if err != nil {
		return stats, err
	}
	defer func() { _ = r.Close() }()

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return stats, err
		}
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		stats.lines++

		var rec record
		if err := json.Unmarshal(line, &rec); err != nil {
			stats.rejected++
			lg.Debug("Malformed line", zap.String("feed", src.name), zap.Int("line", stats.lines), zap.Error(err))
			continue
		}
		c, err := rec.coupon(now)
		if err != nil {
			stats.rejected++
			lg.Debug("Invalid definition",
				zap.String("feed", src.name),
				zap.Int("line", stats.lines),
				zap.String("code", rec.Code),
				zap.String("reason", coupon.Message(err)),
			)
			continue
		}
		if err := fn(c); err != nil {
			return stats, err
		}
	}
	if err := scanner.Err(); err != nil {
		return stats, errors.Wrapf(err, "scan %s", src.name)
	}
	return stats, nil
}

// buildFilters streams every feed concurrently and returns one bloom filter
// of its valid codes per feed. Only the filters are kept in memory.
func buildFilters(ctx context.Context, lg *zap.Logger, sources []source, capacity uint, now time.Time) ([]*bloom.BloomFilter, error) {
	filters := make([]*bloom.BloomFilter, len(sources))

	g, ctx := errgroup.WithContext(ctx)
	for i, src := range sources {
		g.Go(func() error {
			filter := bloom.NewWithEstimates(max(capacity, 1), bloomFPR)
			var codes int
			stats, err := eachDefinition(ctx, lg, src, now, func(c *coupon.Coupon) error {
				filter.AddString(c.Code)
				codes++
				return nil
			})
			if err != nil {
				return errors.Wrapf(err, "build filter for %s", src.name)
			}
			lg.Info("Filter built",
				zap.String("feed", src.name),
				zap.Int("lines", stats.lines),
				zap.Int("codes", codes),
				zap.Int("rejected", stats.rejected),
			)
			filters[i] = filter
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return filters, nil
}

// findConflicts re-streams every feed and tracks only the codes that hit
// another feed's filter, tagging each with a bit per feed it came from. A
// code tagged by two or more feeds is defined by several feeds. It returns
// those codes sorted and the number of candidates that were tracked.
func findConflicts(ctx context.Context, lg *zap.Logger, sources []source, filters []*bloom.BloomFilter, now time.Time) (conflicts []string, candidates int, err error) {
	if len(sources) > maxFeeds {
		return nil, 0, errors.Errorf("at most %d feeds are supported, got %d", maxFeeds, len(sources))
	}
	results := make([]map[string]uint, len(sources))

	g, gctx := errgroup.WithContext(ctx)
	for i, src := range sources {
		g.Go(func() error {
			found := make(map[string]uint)
			feedBit := uint(1) << uint(i)
			if _, err := eachDefinition(gctx, lg, src, now, func(c *coupon.Coupon) error {
				for j, f := range filters {
					if j != i && f.TestString(c.Code) {
						found[c.Code] |= feedBit
						break
					}
				}
				return nil
			}); err != nil {
				return errors.Wrapf(err, "scan %s for candidates", src.name)
			}
			lg.Info("Candidates found", zap.String("feed", src.name), zap.Int("candidates", len(found)))
			results[i] = found
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, 0, err
	}

	merged := make(map[string]uint)
	for _, found := range results {
		candidates += len(found)
		for code, mask := range found {
			merged[code] |= mask
		}
	}
	for code, mask := range merged {
		if bits.OnesCount(mask) >= 2 {
			conflicts = append(conflicts, code)
		}
	}
	sort.Strings(conflicts)
	return conflicts, candidates, nil
}
