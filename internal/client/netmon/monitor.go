// Package netmon tracks whether the remote store can be reached. It holds
// a connected flag, set by the platform (or the user), and a tri-state
// reachability signal driven by periodic health checks.
package netmon

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/dmitrijs2005/wellsync/internal/logging"
)

type Reachability int

const (
	ReachabilityUnknown Reachability = iota
	Reachable
	Unreachable
)

func (r Reachability) String() string {
	switch r {
	case Reachable:
		return "reachable"
	case Unreachable:
		return "unreachable"
	}
	return "unknown"
}

// State is a snapshot of the monitor.
type State struct {
	Connected    bool
	Reachability Reachability
}

// Online is connected && reachability != unreachable. Unknown reachability
// counts as online.
func (s State) Online() bool {
	return s.Connected && s.Reachability != Unreachable
}

// Pinger checks the remote store once.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Monitor struct {
	mu     sync.Mutex
	state  State
	nextID uint64
	subs   map[uint64]func()

	pinger       Pinger
	interval     time.Duration
	checkTimeout time.Duration
	logger       logging.Logger
}

// New returns a monitor that starts connected with unknown reachability.
func New(p Pinger, interval time.Duration, l logging.Logger) *Monitor {
	if l == nil {
		l = logging.NewDiscardLogger()
	}
	timeout := 3 * time.Second
	if interval > 0 && interval < timeout {
		timeout = interval
	}
	return &Monitor{
		state:        State{Connected: true, Reachability: ReachabilityUnknown},
		subs:         make(map[uint64]func()),
		pinger:       p,
		interval:     interval,
		checkTimeout: timeout,
		logger:       l.With("module", "netmon"),
	}
}

func (m *Monitor) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

func (m *Monitor) Online() bool { return m.State().Online() }

// OnOnline registers fn to run on every offline to online transition. It is
// called synchronously from the goroutine that caused the transition.
func (m *Monitor) OnOnline(fn func()) (unsubscribe func()) {
	m.mu.Lock()
	id := m.nextID
	m.nextID++
	m.subs[id] = fn
	m.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			m.mu.Lock()
			delete(m.subs, id)
			m.mu.Unlock()
		})
	}
}

// Set replaces the whole state.
func (m *Monitor) Set(s State) {
	m.update(func(st *State) { *st = s })
}

func (m *Monitor) SetConnected(connected bool) {
	m.update(func(st *State) { st.Connected = connected })
}

func (m *Monitor) SetReachability(r Reachability) {
	m.update(func(st *State) { st.Reachability = r })
}

func (m *Monitor) update(mutate func(*State)) {
	m.mu.Lock()
	before := m.state
	mutate(&m.state)
	after := m.state

	var fire []func()
	if !before.Online() && after.Online() {
		ids := make([]uint64, 0, len(m.subs))
		for id := range m.subs {
			ids = append(ids, id)
		}
		slices.Sort(ids)
		for _, id := range ids {
			fire = append(fire, m.subs[id])
		}
	}
	m.mu.Unlock()

	if before != after {
		m.logger.Info(context.Background(), "network state changed",
			"connected", after.Connected, "reachability", after.Reachability.String(), "online", after.Online())
	}
	for _, fn := range fire {
		fn()
	}
}

// Check pings the remote store once and records the outcome.
func (m *Monitor) Check(ctx context.Context) {
	if m.pinger == nil {
		return
	}
	ctx, cancel := context.WithTimeout(ctx, m.checkTimeout)
	err := m.pinger.Ping(ctx)
	cancel()

	if err != nil {
		m.logger.Debug(ctx, "health check failed", "error", err)
		m.SetReachability(Unreachable)
		return
	}
	m.SetReachability(Reachable)
}

// Watch checks immediately and then every interval until ctx is done.
func (m *Monitor) Watch(ctx context.Context) {
	if m.interval <= 0 {
		return
	}
	m.Check(ctx)

	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			m.Check(ctx)
		case <-ctx.Done():
			return
		}
	}
}
