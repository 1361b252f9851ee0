package history

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"pizzachat-backend/internal/models"
	"pizzachat-backend/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testPrompt = "You are the Pizza House assistant."

type fakeStore struct {
	saved   map[string][]models.Message
	loadErr error
}

func newFakeStore() *fakeStore {
	return &fakeStore{saved: make(map[string][]models.Message)}
}

func (f *fakeStore) Load(_ context.Context, sessionID string) ([]models.Message, error) {
	if f.loadErr != nil {
		return nil, f.loadErr
	}
	msgs, ok := f.saved[sessionID]
	if !ok {
		return nil, store.ErrNotFound
	}
	return msgs, nil
}

func (f *fakeStore) Save(_ context.Context, sessionID string, messages []models.Message) error {
	f.saved[sessionID] = messages
	return nil
}

func (f *fakeStore) List(_ context.Context) ([]models.ConversationRecord, error) {
	return nil, nil
}

func newTestManager(fs *fakeStore, limit int) (*Manager, *SessionCache) {
	cache := NewSessionCache()
	return NewManager(cache, fs, testPrompt, limit), cache
}

func TestGetOrCreateSeedsFreshSession(t *testing.T) {
	mgr, cache := newTestManager(newFakeStore(), 20)

	conv := mgr.GetOrCreate(context.Background(), "fresh")

	require.Len(t, conv.Messages, 1)
	assert.Equal(t, models.RoleSystem, conv.Messages[0].Role)
	assert.Equal(t, testPrompt, conv.Messages[0].Content)
	assert.Same(t, conv, cache.Get("fresh"), "resolved conversation should be cached")
}

func TestGetOrCreatePrefersStoreOverCache(t *testing.T) {
	fs := newFakeStore()
	fs.saved["s1"] = []models.Message{
		{Role: models.RoleUser, Content: "stored question"},
		{Role: models.RoleAssistant, Content: "stored answer"},
	}
	mgr, cache := newTestManager(fs, 20)
	cache.Set("s1", &models.Conversation{SessionID: "s1", Messages: []models.Message{
		{Role: models.RoleSystem, Content: testPrompt},
		{Role: models.RoleUser, Content: "cached only"},
	}})

	conv := mgr.GetOrCreate(context.Background(), "s1")

	require.Len(t, conv.Messages, 3)
	assert.Equal(t, models.RoleSystem, conv.Messages[0].Role)
	assert.Equal(t, "stored question", conv.Messages[1].Content)
	assert.Equal(t, "stored answer", conv.Messages[2].Content)
}

func TestGetOrCreateFallsBackToCacheOnStoreError(t *testing.T) {
	fs := newFakeStore()
	fs.loadErr = errors.New("connection refused")
	mgr, cache := newTestManager(fs, 20)

	cached := &models.Conversation{SessionID: "s2", Messages: []models.Message{
		{Role: models.RoleSystem, Content: testPrompt},
		{Role: models.RoleUser, Content: "hi"},
	}}
	cache.Set("s2", cached)

	conv := mgr.GetOrCreate(context.Background(), "s2")
	assert.Same(t, cached, conv, "store outage should degrade to the cached transcript")
}

func TestGetOrCreateSeedsWhenStoreErrsAndCacheEmpty(t *testing.T) {
	fs := newFakeStore()
	fs.loadErr = errors.New("connection refused")
	mgr, _ := newTestManager(fs, 20)

	conv := mgr.GetOrCreate(context.Background(), "s3")

	require.Len(t, conv.Messages, 1)
	assert.Equal(t, models.RoleSystem, conv.Messages[0].Role)
}

func TestGetOrCreateReseedsSystemMessageOnLoad(t *testing.T) {
	fs := newFakeStore()
	fs.saved["s4"] = []models.Message{
		{Role: models.RoleUser, Content: "hello"},
	}
	mgr, _ := newTestManager(fs, 20)

	conv := mgr.GetOrCreate(context.Background(), "s4")

	require.Len(t, conv.Messages, 2)
	assert.Equal(t, models.RoleSystem, conv.Messages[0].Role)
	assert.Equal(t, models.RoleUser, conv.Messages[1].Role)
}

func TestGetOrCreateDoesNotDuplicateStoredSystemMessage(t *testing.T) {
	fs := newFakeStore()
	fs.saved["s5"] = []models.Message{
		{Role: models.RoleSystem, Content: "older prompt wording"},
		{Role: models.RoleUser, Content: "hello"},
	}
	mgr, _ := newTestManager(fs, 20)

	conv := mgr.GetOrCreate(context.Background(), "s5")

	require.Len(t, conv.Messages, 2)
	assert.Equal(t, "older prompt wording", conv.Messages[0].Content)
}

func TestAppendUserTurnCapNeverEvictsSystemMessage(t *testing.T) {
	const limit = 20
	mgr, _ := newTestManager(newFakeStore(), limit)
	conv := mgr.GetOrCreate(context.Background(), "capped")

	for n := 1; n <= 30; n++ {
		mgr.AppendUserTurn(conv, fmt.Sprintf("message %d", n))

		want := 1 + n
		if want > limit {
			want = limit
		}
		require.Len(t, conv.Messages, want, "after %d appends", n)
		assert.Equal(t, models.RoleSystem, conv.Messages[0].Role, "after %d appends", n)
		assert.Equal(t, fmt.Sprintf("message %d", n), conv.Messages[len(conv.Messages)-1].Content)
	}

	// Oldest non-system turns were the ones dropped.
	assert.Equal(t, "message 12", conv.Messages[1].Content)
}

func TestAppendAssistantReplyDoesNotRetruncate(t *testing.T) {
	const limit = 5
	mgr, _ := newTestManager(newFakeStore(), limit)
	conv := mgr.GetOrCreate(context.Background(), "overflow")

	for n := 1; n <= 10; n++ {
		mgr.AppendUserTurn(conv, fmt.Sprintf("q%d", n))
	}
	require.Len(t, conv.Messages, limit)

	mgr.AppendAssistantReply(conv, "final answer")

	// The cap is only enforced before the model call, so the reply may
	// push the transcript one past it.
	assert.Len(t, conv.Messages, limit+1)
	assert.Equal(t, models.RoleAssistant, conv.Messages[limit].Role)
}

func TestPersistableExcludesSystemMessage(t *testing.T) {
	mgr, _ := newTestManager(newFakeStore(), 20)
	conv := mgr.GetOrCreate(context.Background(), "persist")
	mgr.AppendUserTurn(conv, "hello")
	mgr.AppendAssistantReply(conv, "hi there")

	persisted := mgr.Persistable(conv)

	require.Len(t, persisted, 2)
	assert.Equal(t, models.RoleUser, persisted[0].Role)
	assert.Equal(t, models.RoleAssistant, persisted[1].Role)
}
