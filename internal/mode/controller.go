// Package mode implements the online/offline degradation policy: per
// query it decides between the remote advisor and the local matcher,
// tracks the degraded flag for UI banners, and absorbs every remote
// failure into a successful local answer.
package mode

import (
	"context"
	"sync/atomic"

	"github.com/ppiankov/yojana/internal/advisor"
	"github.com/ppiankov/yojana/internal/connectivity"
	"github.com/ppiankov/yojana/internal/i18n"
	"github.com/ppiankov/yojana/internal/model"
	"github.com/ppiankov/yojana/internal/search"
)

// DefaultHistoryWindow bounds how many recent turns go to the advisor
const DefaultHistoryWindow = 6

// State is the session-scoped mode snapshot. It is replaced as a whole
// value on every update so connectivity events racing with an in-flight
// query can never expose partial state.
type State struct {
	// Online mirrors the connectivity monitor
	Online bool

	// Configured is true when a usable remote provider exists
	Configured bool

	// LastRemoteFailed is set after a failed remote call and cleared by
	// a successful call or a fresh online transition
	LastRemoteFailed bool
}

// Degraded derives the banner flag from the state
func (s State) Degraded() bool {
	return !s.Online || !s.Configured || s.LastRemoteFailed
}

// Request is one user query entering the controller
type Request struct {
	Query    string
	History  []model.Message
	Profile  map[string]string
	Language string
}

// Controller routes queries between the remote advisor and the local
// matcher. Failures of the remote side never escape Answer.
type Controller struct {
	provider      advisor.Provider // nil when unconfigured
	matcher       *search.Matcher
	monitor       connectivity.Monitor
	historyWindow int

	state       atomic.Pointer[State]
	unsubscribe func()
}

// Option mutates controller construction
type Option func(*Controller)

// WithHistoryWindow overrides the advisor history window
func WithHistoryWindow(n int) Option {
	return func(c *Controller) {
		if n > 0 {
			c.historyWindow = n
		}
	}
}

// New creates a controller. The provider may be nil (no credential
// configured); the controller then always answers locally. The initial
// state is read from the monitor, and the controller subscribes to its
// transition events until Close is called.
func New(provider advisor.Provider, matcher *search.Matcher, monitor connectivity.Monitor, opts ...Option) *Controller {
	c := &Controller{
		provider:      provider,
		matcher:       matcher,
		monitor:       monitor,
		historyWindow: DefaultHistoryWindow,
	}
	for _, opt := range opts {
		opt(c)
	}

	c.state.Store(&State{
		Online:     monitor.Online(),
		Configured: provider != nil,
	})
	c.unsubscribe = monitor.Subscribe(c.onConnectivityChange)
	return c
}

// Close detaches the controller from the connectivity monitor
func (c *Controller) Close() {
	if c.unsubscribe != nil {
		c.unsubscribe()
	}
}

// State returns the current mode snapshot
func (c *Controller) State() State {
	return *c.state.Load()
}

// Degraded reports whether the next answer would come from local data
func (c *Controller) Degraded() bool {
	return c.State().Degraded()
}

// Answer resolves one query. It never returns an error: remote failures
// are absorbed into a local answer with the degraded flag set.
func (c *Controller) Answer(ctx context.Context, req Request) *model.Answer {
	st := c.state.Load()

	if !st.Online || !st.Configured {
		return c.localAnswer(req, "banner.degraded")
	}

	resp, err := c.provider.Advise(ctx, advisor.Request{
		Query:    req.Query,
		History:  trimHistory(req.History, c.historyWindow),
		Profile:  req.Profile,
		Language: req.Language,
	})
	if err != nil {
		c.mutate(func(s *State) { s.LastRemoteFailed = true })
		return c.localAnswer(req, "banner.unavailable")
	}

	c.mutate(func(s *State) { s.LastRemoteFailed = false })
	return &model.Answer{
		Text:     resp.Text,
		Links:    advisor.FilterLinks(resp.Links),
		Degraded: false,
	}
}

// localAnswer wraps the matcher output with a localized banner prefix
func (c *Controller) localAnswer(req Request, bannerKey string) *model.Answer {
	text := c.matcher.Search(req.Query, req.Language)
	return &model.Answer{
		Text:     i18n.T(req.Language, bannerKey) + text,
		Degraded: true,
	}
}

// onConnectivityChange applies a connectivity event as a whole-value
// state replacement. A fresh online transition clears LastRemoteFailed
// so the next query retries the remote call.
func (c *Controller) onConnectivityChange(online bool) {
	c.mutate(func(s *State) {
		if online && !s.Online {
			s.LastRemoteFailed = false
		}
		s.Online = online
	})
}

// mutate applies fn to a copy of the state and swaps it in atomically,
// retrying if a concurrent update won the race.
func (c *Controller) mutate(fn func(*State)) {
	for {
		old := c.state.Load()
		next := *old
		fn(&next)
		if c.state.CompareAndSwap(old, &next) {
			return
		}
	}
}

// trimHistory keeps the most recent n turns
func trimHistory(history []model.Message, n int) []model.Message {
	if len(history) <= n {
		return history
	}
	return history[len(history)-n:]
}
