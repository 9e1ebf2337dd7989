package mode

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/ppiankov/yojana/internal/advisor"
	"github.com/ppiankov/yojana/internal/catalog"
	"github.com/ppiankov/yojana/internal/connectivity"
	"github.com/ppiankov/yojana/internal/i18n"
	"github.com/ppiankov/yojana/internal/model"
	"github.com/ppiankov/yojana/internal/search"
)

// spyProvider records calls and returns a canned response or error
type spyProvider struct {
	calls    int
	lastReq  advisor.Request
	response *advisor.Response
	err      error
}

func (s *spyProvider) Name() string { return "spy" }

func (s *spyProvider) IsAvailable(ctx context.Context) bool { return true }

func (s *spyProvider) Advise(ctx context.Context, req advisor.Request) (*advisor.Response, error) {
	s.calls++
	s.lastReq = req
	if s.err != nil {
		return nil, s.err
	}
	return s.response, nil
}

func (s *spyProvider) GenerateJSON(ctx context.Context, system, prompt string) ([]byte, error) {
	return nil, errors.New("not implemented")
}

func newMatcher(t *testing.T) *search.Matcher {
	t.Helper()
	c, err := catalog.Load()
	if err != nil {
		t.Fatalf("catalog load: %v", err)
	}
	return search.NewMatcher(c)
}

func TestAnswer_OfflineNeverCallsRemote(t *testing.T) {
	spy := &spyProvider{response: &advisor.Response{Text: "remote"}}
	monitor := connectivity.NewStatic(false)
	c := New(spy, newMatcher(t), monitor)
	defer c.Close()

	ans := c.Answer(context.Background(), Request{Query: "farmer", Language: model.LangEnglish})

	if spy.calls != 0 {
		t.Errorf("Remote advisor called %d times while offline, want 0", spy.calls)
	}
	if !ans.Degraded {
		t.Error("Expected degraded answer while offline")
	}
	if !strings.HasPrefix(ans.Text, i18n.T(model.LangEnglish, "banner.degraded")) {
		t.Error("Expected degraded banner prefix")
	}
	if !strings.Contains(ans.Text, "PM-Kisan Samman Nidhi") {
		t.Error("Expected local search results in answer")
	}
}

func TestAnswer_UnconfiguredAnswersLocally(t *testing.T) {
	monitor := connectivity.NewStatic(true)
	c := New(nil, newMatcher(t), monitor)
	defer c.Close()

	ans := c.Answer(context.Background(), Request{Query: "farmer", Language: model.LangEnglish})
	if !ans.Degraded {
		t.Error("Expected degraded answer without a configured provider")
	}
	if !c.Degraded() {
		t.Error("Controller must report degraded when unconfigured")
	}
}

func TestAnswer_OnlineSuccess(t *testing.T) {
	spy := &spyProvider{response: &advisor.Response{
		Text: "You are eligible for PM-Kisan.",
		Links: []model.CitationLink{
			{Title: "PM-Kisan", URI: "https://pmkisan.gov.in/"},
			{Title: "Gov Source", URI: "#"},
		},
	}}
	monitor := connectivity.NewStatic(true)
	c := New(spy, newMatcher(t), monitor)
	defer c.Close()

	ans := c.Answer(context.Background(), Request{Query: "farmer", Language: model.LangEnglish})

	if spy.calls != 1 {
		t.Fatalf("Expected exactly one remote call, got %d", spy.calls)
	}
	if ans.Degraded {
		t.Error("Successful remote answer must not be degraded")
	}
	if ans.Text != "You are eligible for PM-Kisan." {
		t.Errorf("Remote text must pass through verbatim, got %q", ans.Text)
	}

	// Sentinel citation links are filtered out
	if len(ans.Links) != 1 || ans.Links[0].URI != "https://pmkisan.gov.in/" {
		t.Errorf("Expected sentinel link filtered, got %v", ans.Links)
	}

	if c.State().LastRemoteFailed {
		t.Error("LastRemoteFailed must be cleared on success")
	}
}

func TestAnswer_FallbackOnFailure(t *testing.T) {
	spy := &spyProvider{err: errors.New("upstream timeout")}
	monitor := connectivity.NewStatic(true)
	matcher := newMatcher(t)
	c := New(spy, matcher, monitor)
	defer c.Close()

	ans := c.Answer(context.Background(), Request{Query: "farmer", Language: model.LangEnglish})

	if !ans.Degraded {
		t.Error("Expected degraded answer after remote failure")
	}
	want := i18n.T(model.LangEnglish, "banner.unavailable") + matcher.Search("farmer", model.LangEnglish)
	if ans.Text != want {
		t.Error("Fallback answer must equal banner plus local search output")
	}
	if !c.State().LastRemoteFailed {
		t.Error("LastRemoteFailed must be set after failure")
	}
	if !c.Degraded() {
		t.Error("Controller must report degraded after failure")
	}
}

func TestAnswer_RetriesEveryQueryWhileOnline(t *testing.T) {
	// Failures are query-scoped: a prior failure never suppresses the
	// next remote attempt while online.
	spy := &spyProvider{err: errors.New("boom")}
	monitor := connectivity.NewStatic(true)
	c := New(spy, newMatcher(t), monitor)
	defer c.Close()

	c.Answer(context.Background(), Request{Query: "farmer", Language: model.LangEnglish})
	c.Answer(context.Background(), Request{Query: "health", Language: model.LangEnglish})

	if spy.calls != 2 {
		t.Errorf("Expected 2 remote attempts, got %d", spy.calls)
	}

	// Recovery clears the failure flag
	spy.err = nil
	spy.response = &advisor.Response{Text: "recovered"}
	ans := c.Answer(context.Background(), Request{Query: "farmer", Language: model.LangEnglish})
	if ans.Degraded || c.State().LastRemoteFailed {
		t.Error("Expected recovery after successful remote call")
	}
}

func TestConnectivityTransitions(t *testing.T) {
	spy := &spyProvider{err: errors.New("boom")}
	monitor := connectivity.NewStatic(true)
	c := New(spy, newMatcher(t), monitor)
	defer c.Close()

	// Fail once to set the flag
	c.Answer(context.Background(), Request{Query: "farmer", Language: model.LangEnglish})
	if !c.State().LastRemoteFailed {
		t.Fatal("Setup: expected LastRemoteFailed")
	}

	// Going offline keeps degraded on and stops remote attempts
	monitor.SetOnline(false)
	st := c.State()
	if st.Online || !st.Degraded() {
		t.Error("Expected offline degraded state")
	}
	c.Answer(context.Background(), Request{Query: "farmer", Language: model.LangEnglish})
	if spy.calls != 1 {
		t.Error("No remote attempt while offline")
	}

	// A fresh online transition resets the failure flag
	monitor.SetOnline(true)
	st = c.State()
	if !st.Online || st.LastRemoteFailed {
		t.Errorf("Online transition must clear LastRemoteFailed, got %+v", st)
	}
	if st.Degraded() {
		t.Error("Expected non-degraded state after online transition")
	}
}

func TestAnswer_HistoryWindow(t *testing.T) {
	spy := &spyProvider{response: &advisor.Response{Text: "ok"}}
	monitor := connectivity.NewStatic(true)
	c := New(spy, newMatcher(t), monitor)
	defer c.Close()

	history := make([]model.Message, 10)
	for i := range history {
		history[i] = model.Message{Role: model.RoleUser, Content: string(rune('a' + i))}
	}

	c.Answer(context.Background(), Request{Query: "q", History: history, Language: model.LangEnglish})

	if len(spy.lastReq.History) != DefaultHistoryWindow {
		t.Fatalf("Expected %d history turns, got %d", DefaultHistoryWindow, len(spy.lastReq.History))
	}
	// The most recent turns are kept
	if spy.lastReq.History[0].Content != "e" || spy.lastReq.History[5].Content != "j" {
		t.Errorf("Expected the most recent window, got %v", spy.lastReq.History)
	}
}

func TestAnswer_HindiBanner(t *testing.T) {
	monitor := connectivity.NewStatic(false)
	c := New(nil, newMatcher(t), monitor)
	defer c.Close()

	ans := c.Answer(context.Background(), Request{Query: "किसान", Language: model.LangHindi})
	if !strings.HasPrefix(ans.Text, i18n.T(model.LangHindi, "banner.degraded")) {
		t.Error("Expected Hindi degraded banner")
	}
}
