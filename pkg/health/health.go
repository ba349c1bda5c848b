// Package health serves liveness and readiness probes.
//
// Every probe runs in its own goroutine. A probe flips to failing only after
// FailureThreshold consecutive errors and back to passing after
// SuccessThreshold consecutive successes, so a single slow ping does not
// pull the instance out of rotation.
package health

import (
	"context"
	"net/http"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-faster/jx"
	"github.com/go-faster/sdk/zctx"
	"go.uber.org/zap"
)

// CheckFunc returns nil while the checked dependency is usable.
type CheckFunc func(ctx context.Context) error

// Kind selects which endpoint a probe contributes to.
type Kind int

const (
	// Liveness probes fail /livez: the process should be restarted.
	Liveness Kind = iota
	// Readiness probes fail /readyz: the instance should not get traffic.
	Readiness
)

func (k Kind) String() string {
	if k == Liveness {
		return "liveness"
	}
	return "readiness"
}

// Probe describes a registered check.
type Probe struct {
	Name             string
	Kind             Kind
	Timeout          time.Duration
	Check            CheckFunc
	FailureThreshold int
	SuccessThreshold int
}

type probe struct {
	Probe

	passing atomic.Bool
	lastErr atomic.Pointer[string]

	// Owned by the probe goroutine.
	fails int
	oks   int
}

// observe runs the check once. It reports whether the passing state flipped.
func (p *probe) observe(ctx context.Context) (flipped bool) {
	ctx, cancel := context.WithTimeout(ctx, p.Timeout)
	defer cancel()

	err := p.Check(ctx)
	if err != nil {
		msg := err.Error()
		p.lastErr.Store(&msg)
		p.oks = 0
		p.fails++
		if p.fails >= p.FailureThreshold && p.passing.Load() {
			p.passing.Store(false)
			return true
		}
		return false
	}

	p.lastErr.Store(nil)
	p.fails = 0
	p.oks++
	if p.oks >= p.SuccessThreshold && !p.passing.Load() {
		p.passing.Store(true)
		return true
	}
	return false
}

func (p *probe) failure() string {
	if msg := p.lastErr.Load(); msg != nil {
		return *msg
	}
	return "check is failing"
}

// Service aggregates probes and exposes them as HTTP endpoints.
type Service struct {
	ready atomic.Bool

	mu     sync.RWMutex
	probes []*probe
	cancel context.CancelFunc
}

// New creates a Service. It reports not ready until SetReady(true).
func New() *Service {
	return &Service{}
}

// Register adds a probe. Zero thresholds default to 3 failures and 1
// success, a zero timeout to one second. Probes start out passing.
func (s *Service) Register(p Probe) {
	if p.FailureThreshold <= 0 {
		p.FailureThreshold = 3
	}
	if p.SuccessThreshold <= 0 {
		p.SuccessThreshold = 1
	}
	if p.Timeout <= 0 {
		p.Timeout = time.Second
	}
	pr := &probe{Probe: p}
	pr.passing.Store(true)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.probes = append(s.probes, pr)
}

// Liveness registers a liveness probe with default thresholds.
func (s *Service) Liveness(name string, timeout time.Duration, check CheckFunc) {
	s.Register(Probe{Name: name, Kind: Liveness, Timeout: timeout, Check: check})
}

// Readiness registers a readiness probe with default thresholds.
func (s *Service) Readiness(name string, timeout time.Duration, check CheckFunc) {
	s.Register(Probe{Name: name, Kind: Readiness, Timeout: timeout, Check: check})
}

// Start runs every registered probe each interval until Stop or ctx is done.
// State changes are logged with the logger carried by ctx.
func (s *Service) Start(ctx context.Context, interval time.Duration) {
	ctx, cancel := context.WithCancel(ctx)

	s.mu.Lock()
	s.cancel = cancel
	probes := slices.Clone(s.probes)
	s.mu.Unlock()

	for _, p := range probes {
		go s.loop(ctx, p, interval)
	}
}

func (s *Service) loop(ctx context.Context, p *probe, interval time.Duration) {
	lg := zctx.From(ctx).With(
		zap.String("probe", p.Name),
		zap.Stringer("kind", p.Kind),
	)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		if p.observe(ctx) {
			if p.passing.Load() {
				lg.Info("Probe recovered")
			} else {
				lg.Warn("Probe failing", zap.String("error", p.failure()))
			}
		}
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

// Stop cancels the probe goroutines. It is safe to call more than once.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
}

// SetReady toggles the manual readiness gate, closed during startup and
// graceful shutdown.
func (s *Service) SetReady(ready bool) {
	s.ready.Store(ready)
}

// IsReady reports whether the gate is open and every readiness probe passes.
func (s *Service) IsReady() bool {
	return s.ready.Load() && len(s.failures(Readiness)) == 0
}

func (s *Service) failures(kind Kind) map[string]string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string]string)
	for _, p := range s.probes {
		if p.Kind == kind && !p.passing.Load() {
			out[p.Name] = p.failure()
		}
	}
	return out
}

// LiveEndpoint serves /livez.
func (s *Service) LiveEndpoint(w http.ResponseWriter, _ *http.Request) {
	writeStatus(w, s.failures(Liveness))
}

// ReadyEndpoint serves /readyz.
func (s *Service) ReadyEndpoint(w http.ResponseWriter, _ *http.Request) {
	failures := s.failures(Readiness)
	if !s.ready.Load() {
		failures["_gate"] = "service is not ready"
	}
	writeStatus(w, failures)
}

// writeStatus writes {"status":"ok"} or 503 with
// {"status":"unhealthy","checks":{name: error}}.
func writeStatus(w http.ResponseWriter, failures map[string]string) {
	e := jx.GetEncoder()
	defer jx.PutEncoder(e)

	status := http.StatusOK
	e.Obj(func(e *jx.Encoder) {
		if len(failures) == 0 {
			e.Field("status", func(e *jx.Encoder) { e.Str("ok") })
			return
		}
		status = http.StatusServiceUnavailable
		e.Field("status", func(e *jx.Encoder) { e.Str("unhealthy") })
		e.Field("checks", func(e *jx.Encoder) {
			names := make([]string, 0, len(failures))
			for name := range failures {
				names = append(names, name)
			}
			slices.Sort(names)
			e.Obj(func(e *jx.Encoder) {
				for _, name := range names {
					e.Field(name, func(e *jx.Encoder) { e.Str(failures[name]) })
				}
			})
		})
	})

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(e.Bytes())
}
