package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// ConversationRecord represents one persisted conversation row.
// Rows are upserted by ConversationID, so at most one exists per session.
type ConversationRecord struct {
	ID             uuid.UUID       `db:"id" json:"id"`
	ConversationID string          `db:"conversation_id" json:"conversation_id"`
	Messages       json.RawMessage `db:"messages" json:"messages"` // JSONB array of Message, system turn excluded
	CreatedAt      time.Time       `db:"created_at" json:"created_at"`
}
