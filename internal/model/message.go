package model

// Role identifies the author of a conversation turn
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is a single conversation turn passed to the remote advisor
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// CitationLink points to a supporting source for a remote answer
type CitationLink struct {
	Title string `json:"title"`
	URI   string `json:"uri"`
}

// CitationSentinel marks a grounding chunk that carried no usable URL.
// Links with this URI are discarded before reaching the caller.
const CitationSentinel = "#"

// Answer is the complete result of one query, whether it came from the
// remote advisor or from the local fallback search
type Answer struct {
	Text     string         `json:"text"`
	Links    []CitationLink `json:"links,omitempty"`
	Degraded bool           `json:"degraded"` // True when answered from local data
}
