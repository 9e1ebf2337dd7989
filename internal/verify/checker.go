// Package verify checks the reachability of scheme application links.
// It is a maintenance tool for the bundled catalog: the catalog itself
// never validates links at load time.
package verify

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"golang.org/x/net/html"

	"github.com/ppiankov/yojana/internal/model"
)

// maxTitleBytes bounds how much of a page is read for the title
const maxTitleBytes = 256 * 1024

// Result is the outcome of checking one apply link
type Result struct {
	SchemeID   string `json:"scheme_id"`
	URL        string `json:"url"`
	Accessible bool   `json:"accessible"`
	StatusCode int    `json:"status_code,omitempty"`
	Title      string `json:"title,omitempty"`
	Blocked    bool   `json:"blocked"` // Disallowed by robots.txt
	Error      string `json:"error,omitempty"`
}

// Checker validates apply links concurrently, honoring robots.txt and a
// per-host rate limit.
type Checker struct {
	httpClient *http.Client
	robots     *Robots
	limiter    *Limiter
	workers    int
	userAgent  string
}

// NewChecker creates a checker from the verify configuration
func NewChecker(cfg model.VerifyConfig) *Checker {
	workers := cfg.Workers
	if workers <= 0 {
		workers = 8
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &Checker{
		httpClient: &http.Client{
			Timeout: timeout,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 3 {
					return fmt.Errorf("stopped after 3 redirects")
				}
				return nil
			},
		},
		robots:    NewRobots(cfg.UserAgent, timeout),
		limiter:   NewLimiter(cfg.RatePerHost, cfg.Burst),
		workers:   workers,
		userAgent: cfg.UserAgent,
	}
}

// CheckAll validates the apply link of every scheme concurrently.
// Results are returned in scheme order.
func (c *Checker) CheckAll(ctx context.Context, schemes []model.Scheme) []Result {
	results := make([]Result, len(schemes))
	var wg sync.WaitGroup

	semaphore := make(chan struct{}, c.workers)
	for i := range schemes {
		wg.Add(1)
		go func(idx int, s *model.Scheme) {
			defer wg.Done()

			select {
			case <-ctx.Done():
				results[idx] = Result{SchemeID: s.ID, URL: s.ApplyLink, Error: "context cancelled"}
				return
			case semaphore <- struct{}{}:
			}
			defer func() { <-semaphore }()

			results[idx] = c.checkOne(ctx, s)
		}(i, &schemes[i])
	}
	wg.Wait()

	return results
}

// checkOne validates a single apply link
func (c *Checker) checkOne(ctx context.Context, s *model.Scheme) Result {
	result := Result{SchemeID: s.ID, URL: s.ApplyLink}

	if !c.robots.Allowed(ctx, s.ApplyLink) {
		result.Blocked = true
		return result
	}

	if err := c.limiter.Wait(ctx, s.ApplyLink); err != nil {
		result.Error = fmt.Sprintf("rate limit wait: %v", err)
		return result
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.ApplyLink, nil)
	if err != nil {
		result.Error = fmt.Sprintf("create request: %v", err)
		return result
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		result.Error = fmt.Sprintf("request failed: %v", err)
		return result
	}
	defer func() { _ = resp.Body.Close() }()

	result.StatusCode = resp.StatusCode
	result.Accessible = resp.StatusCode >= 200 && resp.StatusCode < 400

	if result.Accessible && strings.Contains(resp.Header.Get("Content-Type"), "text/html") {
		result.Title = extractTitle(io.LimitReader(resp.Body, maxTitleBytes))
	}
	return result
}

// extractTitle pulls the <title> text from an HTML document
func extractTitle(r io.Reader) string {
	doc, err := html.Parse(r)
	if err != nil {
		return ""
	}

	var title string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if title != "" {
			return
		}
		if n.Type == html.ElementNode && n.Data == "title" {
			if n.FirstChild != nil && n.FirstChild.Type == html.TextNode {
				title = strings.TrimSpace(n.FirstChild.Data)
			}
			return
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(doc)
	return title
}
