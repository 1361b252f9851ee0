package llm

import (
	"context"

	"pizzachat-backend/internal/models"
)

// Params carries the per-request model parameters.
type Params struct {
	Model       string
	Temperature float32
	MaxTokens   int
}

// CompletionClient is the narrow contract with the external
// language-model completion API: one transcript in, one reply out.
// Callers treat every failure uniformly; no error subtypes are exposed.
type CompletionClient interface {
	Complete(ctx context.Context, messages []models.Message, params Params) (string, error)
}
