package chat

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tantsahamarket/chatbot/internal/models"
)

func TestSanitize(t *testing.T) {
	assert.Equal(t, "scriptalert(1)/script", Sanitize("<script>alert(1)</script>"))
	assert.Equal(t, "bonjour", Sanitize("  bonjour  "))

	long := strings.Repeat("a", models.MaxMessageLength+50)
	assert.Len(t, Sanitize(long), models.MaxMessageLength)

	// Idempotent.
	once := Sanitize("  <b>salut</b>  ")
	assert.Equal(t, once, Sanitize(once))
}

func TestValidateMessagesOK(t *testing.T) {
	messages := []models.Message{
		{Role: "system", Content: "Tu es un assistant."},
		{Role: "user", Content: "  Bonjour <b>!</b>  "},
	}
	require.NoError(t, ValidateMessages(messages))
	assert.Equal(t, "Bonjour b!/b", messages[1].Content, "content is sanitized in place")
}

func TestValidateMessagesTooMany(t *testing.T) {
	messages := make([]models.Message, models.MaxMessages+1)
	for i := range messages {
		messages[i] = models.Message{Role: "user", Content: "x"}
	}
	err := ValidateMessages(messages)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "too many messages")
}

func TestValidateMessagesInvalidRole(t *testing.T) {
	err := ValidateMessages([]models.Message{{Role: "wizard", Content: "hi"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid role at message 0")
}

func TestValidateMessagesEmptyContent(t *testing.T) {
	err := ValidateMessages([]models.Message{
		{Role: "user", Content: "bonjour"},
		{Role: "user", Content: "   "},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty content at message 1")
}

func TestValidateMessagesTotalLength(t *testing.T) {
	chunk := strings.Repeat("a", models.MaxMessageLength)
	var messages []models.Message
	for i := 0; i < 5; i++ {
		messages = append(messages, models.Message{Role: "user", Content: chunk})
	}
	err := ValidateMessages(messages)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "total message length")
}

func TestLastUserMessage(t *testing.T) {
	messages := []models.Message{
		{Role: "user", Content: "première"},
		{Role: "assistant", Content: "réponse"},
		{Role: "user", Content: "dernière"},
		{Role: "assistant", Content: "autre réponse"},
	}
	assert.Equal(t, "dernière", LastUserMessage(messages))
	assert.Equal(t, "", LastUserMessage([]models.Message{{Role: "assistant", Content: "x"}}))
	assert.Equal(t, "", LastUserMessage(nil))
}
