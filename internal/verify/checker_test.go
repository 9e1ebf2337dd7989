package verify

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/ppiankov/yojana/internal/model"
)

func testConfig() model.VerifyConfig {
	return model.VerifyConfig{
		Timeout:     5 * time.Second,
		Workers:     4,
		RatePerHost: 100,
		Burst:       10,
		UserAgent:   "yojana-test",
	}
}

func scheme(id, link string) model.Scheme {
	return model.Scheme{ID: id, ApplyLink: link}
}

func TestCheckAll_AccessibleLink(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/robots.txt" {
			http.NotFound(w, r)
			return
		}
		if got := r.Header.Get("User-Agent"); got != "yojana-test" {
			t.Errorf("User-Agent = %q, want yojana-test", got)
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		fmt.Fprint(w, "<html><head><title>PM-Kisan Portal</title></head><body>ok</body></html>")
	}))
	defer server.Close()

	checker := NewChecker(testConfig())
	results := checker.CheckAll(context.Background(), []model.Scheme{scheme("pm-kisan", server.URL+"/apply")})

	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	r := results[0]
	if !r.Accessible {
		t.Errorf("expected accessible, got %+v", r)
	}
	if r.StatusCode != http.StatusOK {
		t.Errorf("StatusCode = %d, want 200", r.StatusCode)
	}
	if r.Title != "PM-Kisan Portal" {
		t.Errorf("Title = %q, want PM-Kisan Portal", r.Title)
	}
	if r.Blocked {
		t.Error("expected not blocked")
	}
}

func TestCheckAll_DeadLink(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/robots.txt" {
			http.NotFound(w, r)
			return
		}
		http.NotFound(w, r)
	}))
	defer server.Close()

	checker := NewChecker(testConfig())
	results := checker.CheckAll(context.Background(), []model.Scheme{scheme("gone", server.URL+"/apply")})

	if results[0].Accessible {
		t.Errorf("expected inaccessible, got %+v", results[0])
	}
	if results[0].StatusCode != http.StatusNotFound {
		t.Errorf("StatusCode = %d, want 404", results[0].StatusCode)
	}
}

func TestCheckAll_UnreachableHost(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(http.NotFound))
	url := server.URL
	server.Close()

	checker := NewChecker(testConfig())
	results := checker.CheckAll(context.Background(), []model.Scheme{scheme("down", url+"/apply")})

	r := results[0]
	if r.Accessible {
		t.Error("expected inaccessible")
	}
	if r.Error == "" {
		t.Error("expected an error for unreachable host")
	}
}

func TestCheckAll_RobotsDisallow(t *testing.T) {
	var pageHits int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/robots.txt":
			fmt.Fprint(w, "User-agent: *\nDisallow: /apply\n")
		case "/apply":
			pageHits++
			fmt.Fprint(w, "should not be fetched")
		}
	}))
	defer server.Close()

	checker := NewChecker(testConfig())
	results := checker.CheckAll(context.Background(), []model.Scheme{scheme("blocked", server.URL+"/apply")})

	r := results[0]
	if !r.Blocked {
		t.Errorf("expected blocked, got %+v", r)
	}
	if r.Accessible {
		t.Error("blocked link must not be marked accessible")
	}
	if pageHits != 0 {
		t.Errorf("disallowed page was fetched %d times", pageHits)
	}
}

func TestCheckAll_PreservesOrder(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/robots.txt" {
			http.NotFound(w, r)
			return
		}
		fmt.Fprint(w, "ok")
	}))
	defer server.Close()

	schemes := make([]model.Scheme, 5)
	for i := range schemes {
		schemes[i] = scheme(fmt.Sprintf("s%d", i), fmt.Sprintf("%s/apply/%d", server.URL, i))
	}

	checker := NewChecker(testConfig())
	results := checker.CheckAll(context.Background(), schemes)

	for i, r := range results {
		if want := fmt.Sprintf("s%d", i); r.SchemeID != want {
			t.Errorf("results[%d].SchemeID = %q, want %q", i, r.SchemeID, want)
		}
	}
}

func TestExtractTitle_NoTitle(t *testing.T) {
	title := extractTitle(strings.NewReader("<html><body>no title here</body></html>"))
	if title != "" {
		t.Errorf("expected empty title, got %q", title)
	}
}

func TestRobots_FetchFailureAllows(t *testing.T) {
	robots := NewRobots("yojana-test", time.Second)
	if !robots.Allowed(context.Background(), "http://127.0.0.1:1/apply") {
		t.Error("fetch failure should default to allowed")
	}
}
