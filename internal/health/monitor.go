// Package health keeps a cached view of backend reachability, fed by a
// periodic probe so page renders never wait on a connectivity check.
package health

import (
	"context"
	"io"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"coopweb/internal/infra"
)

// Probe performs one reachability check. A nil error means online.
type Probe func(ctx context.Context) error

// Monitor runs the probe on a fixed interval with a per-attempt timeout. Its
// lifecycle is tied only to the context passed to Run, not to any request.
type Monitor struct {
	probe    Probe
	interval time.Duration
	timeout  time.Duration
	logger   *infra.Logger

	mu     sync.Mutex
	online bool
}

// NewMonitor constructs a monitor. Interval and timeout fall back to the
// behavior of the hosted UI: a check every 10s abandoned after 3s.
func NewMonitor(probe Probe, interval, timeout time.Duration, logger *infra.Logger) *Monitor {
	if interval <= 0 {
		interval = 10 * time.Second
	}
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	if logger == nil {
		discard := zerolog.New(io.Discard)
		l := infra.Logger(discard)
		logger = &l
	}
	return &Monitor{probe: probe, interval: interval, timeout: timeout, logger: logger}
}

// Run checks immediately, then on every tick until ctx is canceled.
func (m *Monitor) Run(ctx context.Context) {
	m.check(ctx)
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.check(ctx)
		}
	}
}

// Online reports the result of the most recent probe. Before the first probe
// completes the backend is reported offline.
func (m *Monitor) Online() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.online
}

func (m *Monitor) check(ctx context.Context) {
	probeCtx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()

	err := m.probe(probeCtx)

	m.mu.Lock()
	was := m.online
	m.online = err == nil
	m.mu.Unlock()

	if was != (err == nil) {
		if err == nil {
			m.logger.Info().Msg("backend online")
		} else {
			m.logger.Warn().Err(err).Msg("backend offline")
		}
	}
}
