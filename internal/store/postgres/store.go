package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"pizzachat-backend/internal/models"
	"pizzachat-backend/internal/store"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Compile-time check to ensure ConversationStore implements store.ConversationStore
var _ store.ConversationStore = (*ConversationStore)(nil)

// ConversationStore persists transcripts in the 'conversations' table.
type ConversationStore struct {
	db *pgxpool.Pool
}

func NewConversationStore(db *pgxpool.Pool) *ConversationStore {
	return &ConversationStore{db: db}
}

const loadConversation = `-- name: LoadConversation :one
SELECT messages
FROM conversations
WHERE conversation_id = $1;
`

// Load fetches the persisted turns for a session.
// Returns store.ErrNotFound if no row exists for the session id.
func (s *ConversationStore) Load(ctx context.Context, sessionID string) ([]models.Message, error) {
	var raw json.RawMessage
	err := s.db.QueryRow(ctx, loadConversation, sessionID).Scan(&raw)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, store.ErrNotFound
		}
		log.Printf("ERROR [ConversationStore] Load: Failed to query transcript for session %s: %v", sessionID, err)
		return nil, fmt.Errorf("database error loading conversation: %w", err)
	}

	var messages []models.Message
	if err := json.Unmarshal(raw, &messages); err != nil {
		log.Printf("ERROR [ConversationStore] Load: Failed to decode stored messages for session %s: %v", sessionID, err)
		return nil, fmt.Errorf("corrupt stored conversation: %w", err)
	}

	return messages, nil
}

const upsertConversation = `-- name: UpsertConversation :exec
INSERT INTO conversations (id, conversation_id, messages, created_at)
VALUES ($1, $2, $3, NOW())
ON CONFLICT (conversation_id)
DO UPDATE SET messages = EXCLUDED.messages;
`

// Save upserts the transcript for a session, keyed on conversation_id.
func (s *ConversationStore) Save(ctx context.Context, sessionID string, messages []models.Message) error {
	payload, err := json.Marshal(messages)
	if err != nil {
		return fmt.Errorf("failed to marshal messages for session %s: %w", sessionID, err)
	}

	_, err = s.db.Exec(ctx, upsertConversation, uuid.New(), sessionID, payload)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			log.Printf("ERROR [ConversationStore] Save: PostgreSQL error upserting session %s: Code=%s, Message=%s, Detail=%s", sessionID, pgErr.Code, pgErr.Message, pgErr.Detail)
		} else {
			log.Printf("ERROR [ConversationStore] Save: Failed to upsert session %s: %v", sessionID, err)
		}
		return fmt.Errorf("database error saving conversation: %w", err)
	}

	log.Printf("[ConversationStore] Save: Upserted %d messages for session %s", len(messages), sessionID)
	return nil
}

const listConversations = `-- name: ListConversations :many
SELECT id, conversation_id, messages, created_at
FROM conversations
ORDER BY created_at DESC;
`

// List returns all persisted conversations, newest first.
func (s *ConversationStore) List(ctx context.Context) ([]models.ConversationRecord, error) {
	rows, err := s.db.Query(ctx, listConversations)
	if err != nil {
		log.Printf("ERROR [ConversationStore] List: Failed to query conversations: %v", err)
		return nil, fmt.Errorf("database error listing conversations: %w", err)
	}
	defer rows.Close()

	var records []models.ConversationRecord
	for rows.Next() {
		var rec models.ConversationRecord
		if err := rows.Scan(&rec.ID, &rec.ConversationID, &rec.Messages, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("database error scanning conversation row: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("database error iterating conversations: %w", err)
	}

	return records, nil
}
