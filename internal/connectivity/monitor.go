// Package connectivity supplies the online/offline signal consumed by the
// mode controller. The signal changes asynchronously; subscribers receive
// whole-value notifications and must never observe partial state.
package connectivity

import (
	"context"
	"net/http"
	"sync"
	"time"
)

// Monitor exposes the current online/offline state and change events
type Monitor interface {
	// Online returns the current state
	Online() bool

	// Subscribe registers a callback invoked on every state transition.
	// The returned function cancels the subscription.
	Subscribe(fn func(online bool)) (cancel func())
}

// notifier implements subscription bookkeeping shared by all monitors
type notifier struct {
	mu     sync.Mutex
	nextID int
	subs   map[int]func(bool)
}

func (n *notifier) subscribe(fn func(bool)) func() {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.subs == nil {
		n.subs = make(map[int]func(bool))
	}
	id := n.nextID
	n.nextID++
	n.subs[id] = fn
	return func() {
		n.mu.Lock()
		defer n.mu.Unlock()
		delete(n.subs, id)
	}
}

func (n *notifier) notify(online bool) {
	n.mu.Lock()
	fns := make([]func(bool), 0, len(n.subs))
	for _, fn := range n.subs {
		fns = append(fns, fn)
	}
	n.mu.Unlock()

	for _, fn := range fns {
		fn(online)
	}
}

// Static is a monitor with a manually controlled state. Used by the
// --offline flag and by tests.
type Static struct {
	notifier
	mu     sync.RWMutex
	online bool
}

// NewStatic creates a static monitor in the given state
func NewStatic(online bool) *Static {
	return &Static{online: online}
}

// Online returns the current state
func (s *Static) Online() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.online
}

// SetOnline updates the state, notifying subscribers on change
func (s *Static) SetOnline(online bool) {
	s.mu.Lock()
	changed := s.online != online
	s.online = online
	s.mu.Unlock()

	if changed {
		s.notify(online)
	}
}

// Subscribe registers a state-change callback
func (s *Static) Subscribe(fn func(bool)) func() {
	return s.subscribe(fn)
}

// Probe periodically checks a lightweight HTTP endpoint to derive the
// online/offline state. Any HTTP response counts as online; only a
// transport error counts as offline.
type Probe struct {
	notifier
	client   *http.Client
	url      string
	interval time.Duration

	mu     sync.RWMutex
	online bool

	done chan struct{}
	wg   sync.WaitGroup
}

// NewProbe creates a probe monitor and performs a first synchronous check
// so the initial state is accurate before any query runs.
func NewProbe(url string, interval, timeout time.Duration) *Probe {
	if interval <= 0 {
		interval = 30 * time.Second
	}
	if timeout <= 0 {
		timeout = 5 * time.Second
	}

	p := &Probe{
		client:   &http.Client{Timeout: timeout},
		url:      url,
		interval: interval,
		done:     make(chan struct{}),
	}
	p.online = p.check(context.Background())

	p.wg.Add(1)
	go p.loop()
	return p
}

// Online returns the last probed state
func (p *Probe) Online() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.online
}

// Subscribe registers a state-change callback
func (p *Probe) Subscribe(fn func(bool)) func() {
	return p.subscribe(fn)
}

// Close stops the probe loop
func (p *Probe) Close() {
	close(p.done)
	p.wg.Wait()
}

func (p *Probe) loop() {
	defer p.wg.Done()

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-p.done:
			return
		case <-ticker.C:
			online := p.check(context.Background())

			p.mu.Lock()
			changed := p.online != online
			p.online = online
			p.mu.Unlock()

			if changed {
				p.notify(online)
			}
		}
	}
}

func (p *Probe) check(ctx context.Context) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.url, nil)
	if err != nil {
		return false
	}
	resp, err := p.client.Do(req)
	if err != nil {
		return false
	}
	_ = resp.Body.Close()
	return true
}
