// Package advisor wraps the hosted generative-model services that produce
// live, search-grounded answers. Providers may fail or be unreachable at
// any time; callers (the mode controller) are expected to absorb every
// error and fall back to the local matcher.
package advisor

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/ppiankov/yojana/internal/model"
)

// Provider defines the interface for remote advisor backends
type Provider interface {
	// Name returns the provider name
	Name() string

	// Advise answers a citizen query with free-form advisory text plus
	// zero or more citation links
	Advise(ctx context.Context, req Request) (*Response, error)

	// GenerateJSON runs a structured-output prompt and returns the raw
	// JSON payload. Used by the discovery feed and scheme comparison.
	GenerateJSON(ctx context.Context, system, prompt string) ([]byte, error)

	// IsAvailable checks if the provider is properly configured and
	// reachable
	IsAvailable(ctx context.Context) bool
}

// Request contains the input for one advisory call
type Request struct {
	// Query is the raw user query
	Query string

	// History is the trimmed conversation window (the caller bounds it)
	History []model.Message

	// Profile is the opaque user-profile context, passed through verbatim
	Profile map[string]string

	// Language is the target answer language
	Language string
}

// Response contains the advisor's answer
type Response struct {
	// Text is the free-form advisory text
	Text string

	// Links are the citation links backing the answer. Entries carrying
	// the sentinel URI are filtered by FilterLinks before display.
	Links []model.CitationLink

	// Model is the model that generated the response
	Model string

	// TokensUsed tracks token consumption
	TokensUsed int
}

// Config holds advisor provider configuration
type Config struct {
	// Provider name: "gemini", "openai", ""
	Provider string

	// Model name (provider-specific)
	Model string

	// APIKey for the provider
	APIKey string

	// BaseURL for custom endpoints and tests
	BaseURL string

	// Timeout for API requests, seconds
	Timeout int

	// MaxTokens limits the response length
	MaxTokens int
}

// ConfigFromModel converts model.AdvisorConfig to advisor.Config
func ConfigFromModel(mc model.AdvisorConfig) Config {
	return Config{
		Provider:  mc.Provider,
		Model:     mc.Model,
		APIKey:    mc.APIKey,
		BaseURL:   mc.BaseURL,
		Timeout:   mc.Timeout,
		MaxTokens: mc.MaxTokens,
	}
}

// FilterLinks discards citation links whose URI is the sentinel
// placeholder or empty. The returned slice preserves order.
func FilterLinks(links []model.CitationLink) []model.CitationLink {
	var out []model.CitationLink
	for _, l := range links {
		if l.URI == "" || l.URI == model.CitationSentinel {
			continue
		}
		out = append(out, l)
	}
	return out
}

// systemPrompt is the shared instruction set for advisory calls
const systemPrompt = `You are Yojana, a multilingual AI assistant designed to help Indian citizens discover and apply for government schemes.
Your goal is to provide real-time, personalized, and accessible support.

STRICT RULES:
1. Understand queries in multiple Indian languages and English.
2. Identify user intent and extract details: Age, Gender, Occupation, Income, Category (SC/ST/OBC), Location (State/District), Education, Disability, Employment.
3. Match profiles with relevant central and state schemes using search grounding for real-time accuracy.
4. Explain eligibility clearly.
5. Guide users through the application process (Documents, How to apply, Deadlines).
6. Be friendly and use emojis (✅, 📄, 🔗, ❌).
7. Handle code-switching (Hinglish, etc.) but strictly follow the requested output language.
8. If the user is frustrated, offer to escalate or use a more empathetic tone.
9. Support checking eligibility for family members.
10. Summarize findings clearly.`

// BuildSystemPrompt assembles the system instruction for a request,
// appending the serialized profile context and target language.
func BuildSystemPrompt(req Request) string {
	var b strings.Builder
	b.WriteString(systemPrompt)
	b.WriteString("\n\nRespond in " + req.Language + ".")
	if len(req.Profile) > 0 {
		b.WriteString("\nUser Profile Context: " + formatProfile(req.Profile))
	}
	return b.String()
}

// formatProfile renders the profile map deterministically (sorted keys)
// so prompts are stable across runs and tests.
func formatProfile(profile map[string]string) string {
	keys := make([]string, 0, len(profile))
	for k := range profile {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%s", k, profile[k]))
	}
	return strings.Join(parts, ", ")
}
