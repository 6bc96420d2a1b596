package translation

// Message is a single message from a source conversation thread
type Message struct {
	Author string `json:"author"`
	Text   string `json:"text"`
}

// Profile describes the requesting user's role and preferences
type Profile struct {
	Role               string `json:"role"`
	Language           string `json:"language"`
	CustomInstructions string `json:"custom_instructions,omitempty"`
	PreferredStyle     string `json:"preferred_style,omitempty"`
}

// TokenUsage reports token consumption for one completion
type TokenUsage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// Result is the final output of one translation pipeline run.
// This is the value that gets cached and persisted.
type Result struct {
	Content    string     `json:"content"`
	TokenUsage TokenUsage `json:"token_usage"`
	Provider   string     `json:"provider"`
	Model      string     `json:"model"`
}

// Supported translation styles
const (
	StyleELI5            = "ELI5"
	StyleBusinessSummary = "Business Summary"
	StyleTechnicalLite   = "Technical Lite"
	StyleAnalogiesOnly   = "Analogies Only"
)

// SummaryAuthor is the sentinel author of the synthetic message produced
// when an oversized conversation is compressed
const SummaryAuthor = "System Summary"

// Disclaimer is appended to every successful translation
const Disclaimer = "_This explanation was generated by AI and may contain inaccuracies._"

// ------------------------------------------------------------------------------------------------------
// ValidStyle reports whether s is one of the supported styles
func ValidStyle(s string) bool {
	switch s {
	case StyleELI5, StyleBusinessSummary, StyleTechnicalLite, StyleAnalogiesOnly:
		return true
	}
	return false
}
