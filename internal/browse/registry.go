// Copyright (c) 2026 ArtScope. All rights reserved.

package browse

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/jenna9192/artscope/internal/platform/constants"
	"github.com/jenna9192/artscope/internal/taxonomy"
	"github.com/jenna9192/artscope/pkg/uuid"
)

// Session is one browsing context exposed over the API.
type Session struct {
	ID         string
	Controller *Controller

	mu       sync.Mutex
	lastSeen time.Time
}

func (session *Session) touch(now time.Time) {
	session.mu.Lock()
	session.lastSeen = now
	session.mu.Unlock()
}

func (session *Session) idleSince() time.Time {
	session.mu.Lock()
	defer session.mu.Unlock()
	return session.lastSeen
}

// Registry tracks live sessions and expires idle ones.
type Registry struct {
	runner  Runner
	catalog taxonomy.Catalog
	ttl     time.Duration
	logger  *slog.Logger
	now     func() time.Time

	mu       sync.Mutex
	sessions map[string]*Session
}

// NewRegistry constructs an empty [Registry]. Sessions idle for longer than ttl are
// closed by [Registry.Run].
func NewRegistry(runner Runner, catalog taxonomy.Catalog, ttl time.Duration, logger *slog.Logger) *Registry {
	return &Registry{
		runner:   runner,
		catalog:  catalog,
		ttl:      ttl,
		logger:   logger,
		now:      time.Now,
		sessions: make(map[string]*Session),
	}
}

// Create starts a new session with an empty filter.
func (registry *Registry) Create() *Session {
	id := uuid.New()
	session := &Session{
		ID:         id,
		Controller: NewController(registry.runner, registry.catalog, registry.logger.With(slog.String("session_id", id))),
		lastSeen:   registry.now(),
	}

	registry.mu.Lock()
	registry.sessions[id] = session
	registry.mu.Unlock()

	registry.logger.Info("session_created", slog.String("session_id", id))
	return session
}

// Get returns a live session and marks it as used.
func (registry *Registry) Get(id string) (*Session, bool) {
	registry.mu.Lock()
	session, ok := registry.sessions[id]
	registry.mu.Unlock()

	if ok {
		session.touch(registry.now())
	}
	return session, ok
}

// Touch marks a session as used without looking it up again.
func (registry *Registry) Touch(session *Session) {
	session.touch(registry.now())
}

// Delete closes and forgets a session.
func (registry *Registry) Delete(id string) bool {
	registry.mu.Lock()
	session, ok := registry.sessions[id]
	delete(registry.sessions, id)
	registry.mu.Unlock()

	if ok {
		session.Controller.Close()
		registry.logger.Info("session_closed", slog.String("session_id", id))
	}
	return ok
}

// Len reports the number of live sessions.
func (registry *Registry) Len() int {
	registry.mu.Lock()
	defer registry.mu.Unlock()
	return len(registry.sessions)
}

// Sweep closes every session idle for longer than the TTL and returns how many
// were removed.
func (registry *Registry) Sweep() int {
	cutoff := registry.now().Add(-registry.ttl)

	registry.mu.Lock()
	var expired []*Session
	for id, session := range registry.sessions {
		if session.idleSince().Before(cutoff) {
			expired = append(expired, session)
			delete(registry.sessions, id)
		}
	}
	registry.mu.Unlock()

	for _, session := range expired {
		session.Controller.Close()
	}
	if len(expired) > 0 {
		registry.logger.Info("sessions_expired", slog.Int("count", len(expired)))
	}
	return len(expired)
}

// Run sweeps expired sessions periodically until ctx is cancelled, then closes
// every remaining session.
func (registry *Registry) Run(ctx context.Context) {
	ticker := time.NewTicker(constants.SessionCleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			registry.Close()
			return
		case <-ticker.C:
			registry.Sweep()
		}
	}
}

// Close closes every session.
func (registry *Registry) Close() {
	registry.mu.Lock()
	sessions := registry.sessions
	registry.sessions = make(map[string]*Session)
	registry.mu.Unlock()

	for _, session := range sessions {
		session.Controller.Close()
	}
}
