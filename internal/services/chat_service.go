package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"pizzachat-backend/internal/history"
	"pizzachat-backend/internal/llm"
	"pizzachat-backend/internal/models"
	"pizzachat-backend/internal/store"
)

// DefaultSessionID is used when the widget supplies no session id.
const DefaultSessionID = "default"

// ErrCompletionFailed wraps any failure from the completion API. Callers
// branch on it to return the fixed apology; the underlying cause is only
// logged server-side.
var ErrCompletionFailed = errors.New("completion failed")

// ChatService orchestrates one chat turn: resolve the session transcript,
// append the visitor's message, call the model, append the reply and
// persist best-effort.
type ChatService struct {
	historyMgr *history.Manager
	completion llm.CompletionClient
	store      store.ConversationStore
	params     llm.Params
}

// NewChatService creates a new ChatService.
func NewChatService(historyMgr *history.Manager, completion llm.CompletionClient, convStore store.ConversationStore, params llm.Params) *ChatService {
	return &ChatService{
		historyMgr: historyMgr,
		completion: completion,
		store:      convStore,
		params:     params,
	}
}

// HandleMessage runs one chat turn for a session and returns the reply.
//
// On completion failure the user's turn stays in the in-memory transcript
// but no assistant turn is appended and nothing is persisted; the
// transcript is one-sided until the next successful turn. Persistence
// failures after a successful completion are logged and swallowed: the
// reply has already been computed and must still reach the visitor.
func (s *ChatService) HandleMessage(ctx context.Context, sessionID, message string) (string, error) {
	if sessionID == "" {
		sessionID = DefaultSessionID
	}

	conv := s.historyMgr.GetOrCreate(ctx, sessionID)
	s.historyMgr.AppendUserTurn(conv, message)

	reply, err := s.completion.Complete(ctx, conv.Messages, s.params)
	if err != nil {
		log.Printf("ERROR [ChatService] HandleMessage: completion API call failed for session %s: %v", sessionID, err)
		return "", fmt.Errorf("%w: %v", ErrCompletionFailed, err)
	}

	s.historyMgr.AppendAssistantReply(conv, reply)

	if err := s.store.Save(ctx, sessionID, s.historyMgr.Persistable(conv)); err != nil {
		log.Printf("WARN [ChatService] HandleMessage: failed to persist session %s, continuing on in-memory state: %v", sessionID, err)
	}

	return reply, nil
}

// GetConversation returns the persisted turns for a session.
// Returns store.ErrNotFound when the session was never saved.
func (s *ChatService) GetConversation(ctx context.Context, sessionID string) ([]models.Message, error) {
	return s.store.Load(ctx, sessionID)
}

// ListConversations returns all persisted conversations, newest first.
func (s *ChatService) ListConversations(ctx context.Context) ([]models.ConversationRecord, error) {
	return s.store.List(ctx)
}
