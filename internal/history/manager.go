// Package history owns the per-session conversation transcript: how it
// is initialized, which copy wins when cache and database disagree, and
// how the length cap is enforced.
package history

import (
	"context"
	"errors"
	"log"

	"pizzachat-backend/internal/models"
	"pizzachat-backend/internal/store"
)

// Manager resolves and mutates conversation transcripts.
type Manager struct {
	cache        *SessionCache
	store        store.ConversationStore
	systemPrompt string
	limit        int
}

// NewManager creates a Manager enforcing the given transcript cap.
func NewManager(cache *SessionCache, convStore store.ConversationStore, systemPrompt string, limit int) *Manager {
	return &Manager{
		cache:        cache,
		store:        convStore,
		systemPrompt: systemPrompt,
		limit:        limit,
	}
}

// GetOrCreate returns the up-to-date transcript for a session.
//
// Precedence: the durable store's transcript if present and non-empty,
// then the in-process cache, then a freshly seeded conversation holding
// only the system message. Store read failures are logged and swallowed;
// a database outage degrades the relay to in-memory history rather than
// failing the request.
func (m *Manager) GetOrCreate(ctx context.Context, sessionID string) *models.Conversation {
	stored, err := m.store.Load(ctx, sessionID)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		log.Printf("WARN [History] GetOrCreate: store read failed for session %s, falling back to cache: %v", sessionID, err)
	}

	if len(stored) > 0 {
		conv := &models.Conversation{
			SessionID: sessionID,
			Messages:  m.seed(stored),
		}
		m.cache.Set(sessionID, conv)
		return conv
	}

	if conv := m.cache.Get(sessionID); conv != nil {
		return conv
	}

	conv := &models.Conversation{
		SessionID: sessionID,
		Messages:  m.seed(nil),
	}
	m.cache.Set(sessionID, conv)
	return conv
}

// AppendUserTurn appends the visitor's message and enforces the cap,
// dropping the oldest non-system turns until the transcript fits. This
// runs before the completion call; the reply appended afterwards is
// allowed to push the transcript one past the cap until the next turn.
func (m *Manager) AppendUserTurn(conv *models.Conversation, text string) {
	conv.Messages = append(conv.Messages, models.Message{
		Role:    models.RoleUser,
		Content: text,
	})

	if excess := len(conv.Messages) - m.limit; excess > 0 {
		// Preserve index 0, the system message.
		conv.Messages = append(conv.Messages[:1], conv.Messages[1+excess:]...)
	}
}

// AppendAssistantReply appends the model's reply. No re-truncation here.
func (m *Manager) AppendAssistantReply(conv *models.Conversation, text string) {
	conv.Messages = append(conv.Messages, models.Message{
		Role:    models.RoleAssistant,
		Content: text,
	})
}

// Persistable returns the turns to hand to the store: everything except
// the static system message, which is re-seeded on load instead of being
// written once per session.
func (m *Manager) Persistable(conv *models.Conversation) []models.Message {
	out := make([]models.Message, 0, len(conv.Messages))
	for _, msg := range conv.Messages {
		if msg.Role == models.RoleSystem {
			continue
		}
		out = append(out, msg)
	}
	return out
}

// seed prefixes stored turns with the system message, unless the stored
// transcript already carries one.
func (m *Manager) seed(stored []models.Message) []models.Message {
	if len(stored) > 0 && stored[0].Role == models.RoleSystem {
		return stored
	}
	messages := make([]models.Message, 0, len(stored)+1)
	messages = append(messages, models.Message{
		Role:    models.RoleSystem,
		Content: m.systemPrompt,
	})
	return append(messages, stored...)
}
