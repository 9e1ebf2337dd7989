package advisor

import (
	"fmt"
	"strings"
)

// NewProvider creates a new advisor provider based on configuration.
// An empty provider name returns (nil, nil): the advisor is disabled and
// every query resolves through the local matcher.
func NewProvider(config Config) (Provider, error) {
	switch strings.ToLower(config.Provider) {
	case "gemini", "google":
		return NewGeminiProvider(config)

	case "openai":
		return NewOpenAIProvider(config)

	case "":
		return nil, nil

	default:
		return nil, fmt.Errorf("unknown advisor provider: %s (supported: gemini, openai)", config.Provider)
	}
}
