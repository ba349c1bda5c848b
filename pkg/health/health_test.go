package health

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/go-faster/errors"
	"github.com/go-faster/sdk/zctx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type statusBody struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

func get(t *testing.T, h http.HandlerFunc) (int, statusBody) {
	t.Helper()
	w := httptest.NewRecorder()
	h(w, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var body statusBody
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	return w.Code, body
}

// toggle is a check whose result can be flipped from the test.
type toggle struct{ fail atomic.Bool }

func (c *toggle) check(context.Context) error {
	if c.fail.Load() {
		return errors.New("connection refused")
	}
	return nil
}

func TestProbe_Thresholds(t *testing.T) {
	ctx := context.Background()
	var c toggle
	s := New()
	s.Register(Probe{Name: "db", Kind: Liveness, Check: c.check, FailureThreshold: 3, SuccessThreshold: 2})
	p := s.probes[0]

	c.fail.Store(true)
	assert.False(t, p.observe(ctx))
	assert.False(t, p.observe(ctx))
	code, _ := get(t, s.LiveEndpoint)
	assert.Equal(t, http.StatusOK, code, "below failure threshold")

	assert.True(t, p.observe(ctx), "third failure flips")
	code, body := get(t, s.LiveEndpoint)
	assert.Equal(t, http.StatusServiceUnavailable, code)
	assert.Equal(t, "unhealthy", body.Status)
	assert.Equal(t, "connection refused", body.Checks["db"])

	c.fail.Store(false)
	assert.False(t, p.observe(ctx))
	assert.True(t, p.observe(ctx), "second success flips back")
	code, body = get(t, s.LiveEndpoint)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "ok", body.Status)
}

func TestProbe_SuccessResetsFailureStreak(t *testing.T) {
	ctx := context.Background()
	var c toggle
	s := New()
	s.Liveness("db", time.Second, c.check)
	p := s.probes[0]

	c.fail.Store(true)
	p.observe(ctx)
	p.observe(ctx)
	c.fail.Store(false)
	p.observe(ctx)
	c.fail.Store(true)
	p.observe(ctx)
	p.observe(ctx)

	assert.True(t, p.passing.Load())
}

func TestProbe_Timeout(t *testing.T) {
	s := New()
	s.Register(Probe{
		Name:             "slow",
		Kind:             Readiness,
		Timeout:          10 * time.Millisecond,
		FailureThreshold: 1,
		Check: func(ctx context.Context) error {
			<-ctx.Done()
			return ctx.Err()
		},
	})
	s.SetReady(true)

	require.True(t, s.probes[0].observe(context.Background()))
	code, body := get(t, s.ReadyEndpoint)
	assert.Equal(t, http.StatusServiceUnavailable, code)
	assert.Contains(t, body.Checks["slow"], "deadline exceeded")
}

func TestReadyEndpoint(t *testing.T) {
	tests := []struct {
		name     string
		ready    bool
		failing  bool
		wantCode int
		wantKeys []string
	}{
		{name: "ready", ready: true, wantCode: http.StatusOK},
		{name: "gate closed", ready: false, wantCode: http.StatusServiceUnavailable, wantKeys: []string{"_gate"}},
		{name: "probe failing", ready: true, failing: true, wantCode: http.StatusServiceUnavailable, wantKeys: []string{"postgres"}},
		{name: "both", failing: true, wantCode: http.StatusServiceUnavailable, wantKeys: []string{"_gate", "postgres"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var c toggle
			c.fail.Store(tt.failing)
			s := New()
			s.Register(Probe{Name: "postgres", Kind: Readiness, Check: c.check, FailureThreshold: 1})
			s.SetReady(tt.ready)
			s.probes[0].observe(context.Background())

			code, body := get(t, s.ReadyEndpoint)
			assert.Equal(t, tt.wantCode, code)
			assert.Equal(t, tt.wantCode == http.StatusOK, s.IsReady())
			for _, k := range tt.wantKeys {
				assert.Contains(t, body.Checks, k)
			}
			assert.Len(t, body.Checks, len(tt.wantKeys))
		})
	}
}

func TestKindsAreSeparate(t *testing.T) {
	var c toggle
	c.fail.Store(true)
	s := New()
	s.Register(Probe{Name: "postgres", Kind: Readiness, Check: c.check, FailureThreshold: 1})
	s.SetReady(true)
	s.probes[0].observe(context.Background())

	code, _ := get(t, s.LiveEndpoint)
	assert.Equal(t, http.StatusOK, code, "readiness failure must not fail liveness")
}

func TestStart_LogsTransitions(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	ctx := zctx.Base(context.Background(), zap.New(core))

	var c toggle
	c.fail.Store(true)
	s := New()
	s.Register(Probe{Name: "postgres", Kind: Readiness, Check: c.check, FailureThreshold: 1})
	s.Start(ctx, 5*time.Millisecond)
	t.Cleanup(s.Stop)

	require.Eventually(t, func() bool {
		return logs.FilterMessage("Probe failing").Len() > 0
	}, time.Second, 5*time.Millisecond)

	c.fail.Store(false)
	require.Eventually(t, func() bool {
		return logs.FilterMessage("Probe recovered").Len() > 0
	}, time.Second, 5*time.Millisecond)

	s.Stop()
	s.Stop()
}

type pingFunc func(context.Context) error

func (f pingFunc) Ping(ctx context.Context) error { return f(ctx) }

func TestPingCheck(t *testing.T) {
	ok := PingCheck(pingFunc(func(context.Context) error { return nil }))
	assert.NoError(t, ok(context.Background()))

	down := PingCheck(pingFunc(func(context.Context) error { return errors.New("dial tcp: refused") }))
	assert.ErrorContains(t, down(context.Background()), "refused")
}

func TestGoroutineCountCheck(t *testing.T) {
	assert.NoError(t, GoroutineCountCheck(1_000_000)(context.Background()))
	assert.Error(t, GoroutineCountCheck(0)(context.Background()))
}
