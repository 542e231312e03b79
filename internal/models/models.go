package models

import (
	"time"
)

// Limits and windows applied to every chat request.
const (
	MaxMessages        = 100
	MaxMessageLength   = 2000
	MaxTotalChars      = 8000
	SummaryThreshold   = 10
	KeepRecentMessages = 4

	RateLimitWindow = time.Minute
	RateLimitMax    = 10

	FaqCacheTTL = 5 * time.Minute
	SessionTTL  = 30 * time.Minute
)

// Message is a single conversation turn sent by the client.
type Message struct {
	Role    string `json:"role" validate:"required,oneof=user assistant system"`
	Content string `json:"content"`
}

// Preferences holds buyer qualification data accumulated over a session.
type Preferences struct {
	Region      string `json:"region,omitempty"`
	Budget      string `json:"budget,omitempty"`
	Frequency   string `json:"frequency,omitempty"`
	Quantity    string `json:"quantity,omitempty"`
	ProductType string `json:"productType,omitempty"` // fresh | processed | export | all
}

// Session is the ephemeral conversation state tracked per session id.
// A session is live while now - LastActivity <= SessionTTL; an expired
// session is transparently replaced on next access.
type Session struct {
	ID                string       `json:"id"`
	ClientID          string       `json:"clientId"`
	CreatedAt         time.Time    `json:"createdAt"`
	LastActivity      time.Time    `json:"lastActivity"`
	Language          string       `json:"language"` // fr | mg | en
	Interests         []string     `json:"interests"`
	MentionedProducts []string     `json:"mentionedProducts"`
	Preferences       *Preferences `json:"preferences,omitempty"`
	LastIntent        string       `json:"lastIntent,omitempty"`
	ContactRequested  bool         `json:"contactRequested"`
}

// AddInterest records a product interest once.
func (s *Session) AddInterest(name string) {
	for _, it := range s.Interests {
		if it == name {
			return
		}
	}
	s.Interests = append(s.Interests, name)
}

// AddMentionedProduct records a mentioned product once.
func (s *Session) AddMentionedProduct(name string) {
	for _, p := range s.MentionedProducts {
		if p == name {
			return
		}
	}
	s.MentionedProducts = append(s.MentionedProducts, name)
}

// ConversionEvent is derived per request from session state and logged.
// It is never persisted; downstream analytics only see the log line.
type ConversionEvent struct {
	ProductInterest  string `json:"productInterest,omitempty"`
	ContactRequested bool   `json:"contactRequested"`
	AccountSuggested bool   `json:"accountSuggested"`
	LeadQualified    bool   `json:"leadQualified"`
}

// DeriveConversion computes the conversion signals for the current request.
func DeriveConversion(session *Session, intent string) *ConversionEvent {
	ev := &ConversionEvent{
		ContactRequested: intent == "contact_request",
	}
	if len(session.Interests) > 0 {
		ev.ProductInterest = session.Interests[0]
	}
	if len(session.Interests) > 0 && session.Preferences != nil &&
		(session.Preferences.Region != "" || session.Preferences.Quantity != "") {
		ev.LeadQualified = true
	}
	return ev
}
