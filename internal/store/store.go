package store

import (
	"context"
	"errors"

	"pizzachat-backend/internal/models"
)

// ErrNotFound is returned when no conversation exists for a session id.
// A miss is a normal outcome for first-contact sessions, not a failure.
var ErrNotFound = errors.New("record not found")

// ConversationStore defines the durable persistence contract for
// conversation transcripts, keyed by session identifier.
// This allows for mocking in tests and potential DB backend switching.
type ConversationStore interface {
	// Load fetches the persisted turns for a session.
	// Returns ErrNotFound when the session has never been saved.
	Load(ctx context.Context, sessionID string) ([]models.Message, error)

	// Save upserts the transcript for a session. A second save for the
	// same id overwrites, never duplicates. Callers are expected to
	// exclude the system message before saving.
	Save(ctx context.Context, sessionID string, messages []models.Message) error

	// List returns all persisted conversations, newest first.
	List(ctx context.Context) ([]models.ConversationRecord, error)
}
