package chat

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/tantsahamarket/chatbot/internal/models"
	"github.com/tantsahamarket/chatbot/internal/store"
)

// SessionManager resolves TTL-bounded conversation sessions. An
// expired session is transparently replaced with a fresh one; a live
// session keeps its accumulated interests and mentioned products but
// has its language overwritten by the latest detected or requested
// one.
type SessionManager struct {
	store store.Store
	ttl   time.Duration
}

func NewSessionManager(s store.Store) *SessionManager {
	return &SessionManager{store: s, ttl: models.SessionTTL}
}

// NewSessionID generates a server-side session id when the caller
// supplies none.
func NewSessionID() string {
	frag := strings.SplitN(uuid.NewString(), "-", 2)[0]
	return fmt.Sprintf("sess_%d_%s", time.Now().UnixMilli(), frag)
}

// GetOrCreate resolves the session for id, creating a fresh one when
// absent or expired, and bumps lastActivity. Every resolution also
// sweeps expired entries opportunistically, matching the behavior of
// the periodic sweeper between its ticks.
func (m *SessionManager) GetOrCreate(ctx context.Context, id, clientID, language string) (*models.Session, error) {
	now := time.Now()

	var session models.Session
	found, err := m.store.Get(ctx, id, &session)
	if err != nil {
		return nil, err
	}

	if !found || now.Sub(session.LastActivity) > m.ttl {
		session = models.Session{
			ID:                id,
			ClientID:          clientID,
			CreatedAt:         now,
			LastActivity:      now,
			Language:          language,
			Interests:         []string{},
			MentionedProducts: []string{},
		}
	} else {
		session.LastActivity = now
		session.Language = language
	}

	if err := m.store.Set(ctx, id, &session, m.ttl); err != nil {
		return nil, err
	}

	_ = m.store.Sweep(ctx)

	return &session, nil
}

// Save persists session mutations made after resolution (intent,
// interests, mentioned products).
func (m *SessionManager) Save(ctx context.Context, session *models.Session) error {
	return m.store.Set(ctx, session.ID, session, m.ttl)
}

// Count reports live sessions for the health probe.
func (m *SessionManager) Count(ctx context.Context) int {
	n, err := m.store.Len(ctx)
	if err != nil {
		return 0
	}
	return n
}
