package main

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/bits-and-blooms/bloom/v3"
	pgzip "github.com/klauspost/pgzip"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/xenking/kart-checkout/internal/domain/coupon"
)

var now = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func memSource(name string, lines ...string) source {
	content := strings.Join(lines, "\n")
	return source{
		name: name,
		open: func() (io.ReadCloser, error) {
			return io.NopCloser(strings.NewReader(content)), nil
		},
	}
}

func codesSource(name string, codes ...string) source {
	var lines []string
	for _, code := range codes {
		lines = append(lines, `{"code":"`+code+`","discountType":"fixed","discountValue":1}`)
	}
	return memSource(name, lines...)
}

func collect(t *testing.T, src source) ([]*coupon.Coupon, scanStats) {
	t.Helper()

	var defs []*coupon.Coupon
	stats, err := eachDefinition(context.Background(), zap.NewNop(), src, now, func(c *coupon.Coupon) error {
		defs = append(defs, c)
		return nil
	})
	require.NoError(t, err)
	return defs, stats
}

func TestEachDefinition(t *testing.T) {
	src := memSource("feed",
		`{"code":" spring20 ","discountType":"percentage","discountValue":20,"minOrderValue":"500"}`,
		`{"code":"FLAT50","discountType":"fixed","discountValue":"50","usageLimit":0,"perUserLimit":2,"isActive":false}`,
		``,
		`not json`,
		`{"code":"BAD","discountType":"bogus","discountValue":5}`,
		`{"code":"NEG","discountType":"fixed","discountValue":-1}`,
		`{"code":"spring20","discountType":"percentage","discountValue":25}`,
	)

	defs, stats := collect(t, src)
	assert.Equal(t, 6, stats.lines)
	assert.Equal(t, 3, stats.rejected)
	require.Len(t, defs, 3)

	spring := defs[0]
	assert.Equal(t, "SPRING20", spring.Code)
	assert.True(t, spring.DiscountValue.Equal(decimal.NewFromInt(20)))
	assert.True(t, spring.MinOrderValue.Equal(decimal.NewFromInt(500)))
	assert.True(t, spring.Active)
	assert.Equal(t, 1, spring.PerUserLimit)

	flat := defs[1]
	assert.Equal(t, coupon.DiscountFixed, flat.DiscountType)
	assert.Nil(t, flat.UsageLimit, "zero limit means unlimited")
	assert.Equal(t, 2, flat.PerUserLimit)
	assert.False(t, flat.Active)
	assert.Equal(t, now, flat.UpdatedAt)

	assert.Equal(t, "SPRING20", defs[2].Code)
	assert.True(t, defs[2].DiscountValue.Equal(decimal.NewFromInt(25)))
}

func TestEachDefinition_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := eachDefinition(ctx, zap.NewNop(), codesSource("feed", "A"), now, func(*coupon.Coupon) error { return nil })
	require.ErrorIs(t, err, context.Canceled)
}

func TestFindConflicts(t *testing.T) {
	sources := []source{
		codesSource("a", "ONLYA", "SHARED", "ONLYA"),
		codesSource("b", "ONLYB", "SHARED"),
		codesSource("c", "ONLYC"),
	}
	ctx := context.Background()

	filters, err := buildFilters(ctx, zap.NewNop(), sources, 100, now)
	require.NoError(t, err)
	require.Len(t, filters, 3)
	assert.True(t, filters[0].TestString("ONLYA"))

	conflicts, candidates, err := findConflicts(ctx, zap.NewNop(), sources, filters, now)
	require.NoError(t, err)
	assert.Equal(t, []string{"SHARED"}, conflicts)
	// Both copies of SHARED are tracked; a false positive could add a few
	// more, never all five distinct per-feed codes.
	assert.GreaterOrEqual(t, candidates, 2)
	assert.Less(t, candidates, 5)
}

func TestFindConflicts_TracksOnlyFilterHits(t *testing.T) {
	sources := []source{
		codesSource("a", "ONLYA", "SHARED"),
		codesSource("b", "ONLYB", "SHARED"),
		codesSource("c", "ONLYC"),
	}
	ctx := context.Background()

	filtersOf := func(f func() *bloom.BloomFilter) []*bloom.BloomFilter {
		return []*bloom.BloomFilter{f(), f(), f()}
	}
	// A single bit filter with one entry reports every code as present.
	saturated := func() *bloom.BloomFilter {
		f := bloom.New(1, 1)
		f.AddString("x")
		return f
	}
	empty := func() *bloom.BloomFilter { return bloom.New(1024, 3) }

	t.Run("no hits", func(t *testing.T) {
		conflicts, candidates, err := findConflicts(ctx, zap.NewNop(), sources, filtersOf(empty), now)
		require.NoError(t, err)
		assert.Zero(t, candidates)
		assert.Empty(t, conflicts)
	})
	t.Run("every code hits", func(t *testing.T) {
		conflicts, candidates, err := findConflicts(ctx, zap.NewNop(), sources, filtersOf(saturated), now)
		require.NoError(t, err)
		assert.Equal(t, 5, candidates)
		assert.Equal(t, []string{"SHARED"}, conflicts, "false positives from one feed never make a conflict")
	})
}

func TestFindConflicts_TooManyFeeds(t *testing.T) {
	sources := make([]source, maxFeeds+1)
	_, _, err := findConflicts(context.Background(), zap.NewNop(), sources, nil, now)
	require.Error(t, err)
}

type fakeUpserter struct {
	existing map[string]bool
	overused map[string]bool
	written  []string
	values   map[string]decimal.Decimal
}

func (f *fakeUpserter) Upsert(_ context.Context, c *coupon.Coupon) (bool, error) {
	if f.overused[c.Code] {
		return false, coupon.ErrLimitBelowUsage
	}
	f.written = append(f.written, c.Code)
	if f.values == nil {
		f.values = make(map[string]decimal.Decimal)
	}
	f.values[c.Code] = c.DiscountValue
	return !f.existing[c.Code], nil
}

func TestWriteCoupons(t *testing.T) {
	repo := &fakeUpserter{
		existing: map[string]bool{"OLD": true},
		overused: map[string]bool{"TIGHT": true},
	}
	sources := []source{
		memSource("a",
			`{"code":"NEW","discountType":"fixed","discountValue":5}`,
			`{"code":"SHARED","discountType":"fixed","discountValue":5}`,
			`{"code":"NEW","discountType":"fixed","discountValue":7}`,
		),
		codesSource("b", "OLD", "TIGHT", "SHARED"),
	}

	require.NoError(t, writeCoupons(context.Background(), zap.NewNop(), repo, sources, []string{"SHARED"}, now))
	assert.Equal(t, []string{"NEW", "NEW", "OLD"}, repo.written)
	assert.True(t, repo.values["NEW"].Equal(decimal.NewFromInt(7)), "last line wins")
}

func TestIngest_GzipFeeds(t *testing.T) {
	dir := t.TempDir()
	writeGz(t, filepath.Join(dir, "one.jsonl.gz"),
		`{"code":"ONE","discountType":"fixed","discountValue":10}`,
		`{"code":"BOTH","discountType":"fixed","discountValue":10}`,
	)
	writeGz(t, filepath.Join(dir, "two.jsonl.gz"),
		`{"code":"TWO","discountType":"percentage","discountValue":5}`,
		`{"code":"both","discountType":"percentage","discountValue":5}`,
	)

	paths, err := filepath.Glob(filepath.Join(dir, "*.jsonl.gz"))
	require.NoError(t, err)
	sources := []source{fileSource(paths[0]), fileSource(paths[1])}
	ctx := context.Background()

	filters, err := buildFilters(ctx, zap.NewNop(), sources, 10, now)
	require.NoError(t, err)
	conflicts, _, err := findConflicts(ctx, zap.NewNop(), sources, filters, now)
	require.NoError(t, err)
	assert.Equal(t, []string{"BOTH"}, conflicts)

	repo := &fakeUpserter{}
	require.NoError(t, writeCoupons(ctx, zap.NewNop(), repo, sources, conflicts, now))
	assert.Equal(t, []string{"ONE", "TWO"}, repo.written)
}

func TestFileSource_Missing(t *testing.T) {
	_, err := fileSource(filepath.Join(t.TempDir(), "absent.jsonl.gz")).open()
	require.ErrorIs(t, err, os.ErrNotExist)
}

func writeGz(t *testing.T, path string, lines ...string) {
	t.Helper()

	var buf bytes.Buffer
	gz := pgzip.NewWriter(&buf)
	_, err := gz.Write([]byte(strings.Join(lines, "\n") + "\n"))
	require.NoError(t, err)
	require.NoError(t, gz.Close())
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o600))
}
