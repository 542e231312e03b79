package chat

import (
	"fmt"
	"strings"

	"github.com/tantsahamarket/chatbot/internal/models"
)

// Sanitize strips HTML bracket characters, truncates to the message
// length cap and trims whitespace. Idempotent.
func Sanitize(text string) string {
	text = strings.ReplaceAll(text, "<", "")
	text = strings.ReplaceAll(text, ">", "")
	if len(text) > models.MaxMessageLength {
		text = text[:models.MaxMessageLength]
	}
	return strings.TrimSpace(text)
}

// ValidateMessages bounds-checks the message list and normalizes each
// content in place. Errors are positional and descriptive; the caller
// maps them to HTTP 400.
func ValidateMessages(messages []models.Message) error {
	if len(messages) > models.MaxMessages {
		return fmt.Errorf("too many messages (max %d)", models.MaxMessages)
	}

	totalChars := 0
	for i := range messages {
		msg := &messages[i]

		switch msg.Role {
		case "user", "assistant", "system":
		default:
			return fmt.Errorf("invalid role at message %d: %s", i, msg.Role)
		}

		msg.Content = Sanitize(msg.Content)

		if msg.Content == "" {
			return fmt.Errorf("empty content at message %d", i)
		}
		if len(msg.Content) > models.MaxMessageLength {
			return fmt.Errorf("message %d too long (max %d chars)", i, models.MaxMessageLength)
		}

		totalChars += len(msg.Content)
		if totalChars > models.MaxTotalChars {
			return fmt.Errorf("total message length exceeds %d chars", models.MaxTotalChars)
		}
	}

	return nil
}

// LastUserMessage returns the content of the most recent user turn, or
// "" when the request carries none.
func LastUserMessage(messages []models.Message) string {
	for i := len(messages) - 1; i >= 0; i-- {
		if messages[i].Role == "user" {
			return messages[i].Content
		}
	}
	return ""
}
