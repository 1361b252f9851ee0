package history

import (
	"sync"

	"pizzachat-backend/internal/models"
)

// SessionCache is the process-local map from session id to transcript.
// It is shared by all in-flight requests, so access to the map is
// mutex-guarded. Entries are never evicted; they live for the life of
// the process, like the durable rows live forever in the database.
//
// Note that the cache serializes map access only. Two concurrent
// requests for the same session id still race on the conversation they
// share; the original system accepts this (one browser tab per session).
type SessionCache struct {
	mu       sync.RWMutex
	sessions map[string]*models.Conversation
}

func NewSessionCache() *SessionCache {
	return &SessionCache{
		sessions: make(map[string]*models.Conversation),
	}
}

// Get returns the cached conversation for a session, or nil.
func (c *SessionCache) Get(sessionID string) *models.Conversation {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.sessions[sessionID]
}

// Set installs or replaces the cached conversation for a session.
func (c *SessionCache) Set(sessionID string, conv *models.Conversation) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sessions[sessionID] = conv
}

// Len returns the number of cached sessions.
func (c *SessionCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.sessions)
}
