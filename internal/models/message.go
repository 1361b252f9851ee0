package models

// Message roles, matching the wire format of the completion API.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message represents a single turn in a conversation.
// This structure is what's stored in the JSONB messages field of the
// 'conversations' table (system messages are excluded on save).
type Message struct {
	Role    string `json:"role"`    // "system", "user" or "assistant"
	Content string `json:"content"` // The text content of the turn
}

// Conversation is the ordered transcript for one session. Index 0, when
// present, holds the system persona message.
type Conversation struct {
	SessionID string
	Messages  []Message
}
