package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeriveConversion(t *testing.T) {
	session := &Session{}
	ev := DeriveConversion(session, "general_query")
	assert.False(t, ev.ContactRequested)
	assert.False(t, ev.LeadQualified)
	assert.Empty(t, ev.ProductInterest)

	session.AddInterest("vanille")
	ev = DeriveConversion(session, "contact_request")
	assert.True(t, ev.ContactRequested)
	assert.Equal(t, "vanille", ev.ProductInterest)
	assert.False(t, ev.LeadQualified, "interest alone does not qualify a lead")

	session.Preferences = &Preferences{Region: "Antsirabe"}
	ev = DeriveConversion(session, "purchase_intent")
	assert.True(t, ev.LeadQualified)

	session.Preferences = &Preferences{Quantity: "50kg"}
	assert.True(t, DeriveConversion(session, "purchase_intent").LeadQualified)
}
