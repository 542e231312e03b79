package chat

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSessionID(t *testing.T) {
	id := NewSessionID()
	assert.True(t, strings.HasPrefix(id, "sess_"))
	assert.NotEqual(t, id, NewSessionID())
}

func TestSessionGetOrCreate(t *testing.T) {
	m := NewSessionManager(newTestStore(t))
	ctx := context.Background()

	session, err := m.GetOrCreate(ctx, "sess_1", "client-a", "fr")
	require.NoError(t, err)
	assert.Equal(t, "sess_1", session.ID)
	assert.Equal(t, "client-a", session.ClientID)
	assert.Equal(t, "fr", session.Language)
	assert.Empty(t, session.Interests)
	assert.NotNil(t, session.Interests)
}

func TestSessionAccumulatesAcrossRequests(t *testing.T) {
	m := NewSessionManager(newTestStore(t))
	ctx := context.Background()

	session, err := m.GetOrCreate(ctx, "sess_1", "client-a", "fr")
	require.NoError(t, err)
	session.AddInterest("tomate")
	session.AddMentionedProduct("tomate")
	require.NoError(t, m.Save(ctx, session))

	again, err := m.GetOrCreate(ctx, "sess_1", "client-a", "en")
	require.NoError(t, err)
	assert.Equal(t, []string{"tomate"}, again.Interests)
	assert.Equal(t, []string{"tomate"}, again.MentionedProducts)
	assert.Equal(t, "en", again.Language, "latest language wins")
	assert.True(t, again.CreatedAt.Equal(session.CreatedAt))
}

func TestSessionExpiryStartsFresh(t *testing.T) {
	m := &SessionManager{store: newTestStore(t), ttl: 20 * time.Millisecond}
	ctx := context.Background()

	session, err := m.GetOrCreate(ctx, "sess_1", "client-a", "fr")
	require.NoError(t, err)
	session.AddInterest("vanille")
	require.NoError(t, m.Save(ctx, session))

	time.Sleep(30 * time.Millisecond)

	fresh, err := m.GetOrCreate(ctx, "sess_1", "client-a", "fr")
	require.NoError(t, err)
	assert.Empty(t, fresh.Interests, "an expired session is replaced, not resumed")
}

func TestSessionDedup(t *testing.T) {
	m := NewSessionManager(newTestStore(t))
	ctx := context.Background()

	session, err := m.GetOrCreate(ctx, "sess_1", "client-a", "fr")
	require.NoError(t, err)
	session.AddInterest("riz")
	session.AddInterest("riz")
	session.AddMentionedProduct("riz")
	session.AddMentionedProduct("riz")

	assert.Equal(t, []string{"riz"}, session.Interests)
	assert.Equal(t, []string{"riz"}, session.MentionedProducts)
}
