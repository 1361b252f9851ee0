package models

// --- Chat API ---

// ChatRequest is the body of POST /api/chat.
type ChatRequest struct {
	Message   string `json:"message"`
	SessionID string `json:"sessionId,omitempty"`
}

// ChatResponse carries the generated reply back to the widget. The same
// shape is used for the fixed apology on upstream failure.
type ChatResponse struct {
	Reply string `json:"reply"`
}

// --- Conversation read API ---

// GetConversationResponse is the body of GET /api/conversations/{id}.
// Only the persisted turns are returned; the system message never leaves
// the server.
type GetConversationResponse struct {
	Conversation []Message `json:"conversation"`
}

// ListConversationsResponse is the body of GET /api/conversations.
type ListConversationsResponse struct {
	Conversations []ConversationRecord `json:"conversations"`
}

// --- Errors ---

// ErrorResponse is the generic error body used by the read endpoints.
type ErrorResponse struct {
	Error string `json:"error"`
}

// ClientErrorResponse is the body of 400/404/405 responses on the chat
// endpoint, matching the widget's expectations.
type ClientErrorResponse struct {
	Message string `json:"message"`
}
