package chat

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tantsahamarket/chatbot/internal/models"
)

func TestDetectLanguage(t *testing.T) {
	cases := []struct {
		text string
		want string
	}{
		{"salama, mila vokatra aho", "mg"},
		{"misaotra betsaka", "mg"},
		{"bonjour, merci pour le produit", "fr"},
		{"je veux commander une livraison", "fr"},
		{"hello, what is the price of rice", "en"},
		{"", "en"},
		{"xyzzy", "en"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, DetectLanguage(tc.text), "text: %q", tc.text)
	}
}

func TestIsOwnershipQuestion(t *testing.T) {
	assert.True(t, IsOwnershipQuestion("Qui est ton propriétaire ?"))
	assert.True(t, IsOwnershipQuestion("qui vous a créé ?"))
	assert.True(t, IsOwnershipQuestion("Who is the OWNER of this bot?"))
	assert.False(t, IsOwnershipQuestion("Je veux acheter du riz"))
}

func TestDetectIntentRules(t *testing.T) {
	session := &models.Session{}

	cases := []struct {
		text string
		want string
	}{
		{"Qui est ton propriétaire ?", IntentOwnership},
		{"Je veux acheter du riz", IntentPurchase},
		{"Je souhaite vendre mes récoltes", IntentSeller},
		{"Quel est le prix du kilo ?", IntentPrice},
		{"Comment se passe la livraison ?", IntentDelivery},
		{"Quels produits proposez-vous ?", IntentProduct},
		{"Est-ce disponible en stock ?", IntentAvailability},
		{"Pouvez-vous m'appeler ?", IntentContact},
		{"Faites-vous de l'export international ?", IntentExport},
		{"Cherchez-vous du frais ou du transformé ?", IntentProductType},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, DetectIntent(tc.text, session), "text: %q", tc.text)
	}
}

func TestDetectIntentCatalogMention(t *testing.T) {
	session := &models.Session{}
	assert.Equal(t, IntentProduct, DetectIntent("avez-vous des tomates ?", session))
}

func TestDetectIntentFollowUp(t *testing.T) {
	session := &models.Session{Interests: []string{"tomate"}}
	assert.Equal(t, IntentFollowUp, DetectIntent("oui merci beaucoup", session))

	session.ContactRequested = true
	assert.Equal(t, IntentGeneral, DetectIntent("oui merci beaucoup", session))
}

func TestDetectIntentGeneral(t *testing.T) {
	session := &models.Session{}
	assert.Equal(t, IntentGeneral, DetectIntent("oui merci beaucoup", session))
}

func TestExtractMentionedProducts(t *testing.T) {
	session := &models.Session{}

	mentioned := ExtractMentionedProducts("Je cherche des tomates et du riz", session)
	assert.Contains(t, mentioned, "tomate")
	assert.Contains(t, mentioned, "riz")
	assert.Contains(t, session.MentionedProducts, "tomate")
	assert.Contains(t, session.MentionedProducts, "riz")

	// A second mention does not duplicate.
	ExtractMentionedProducts("encore des tomates", session)
	count := 0
	for _, p := range session.MentionedProducts {
		if p == "tomate" {
			count++
		}
	}
	assert.Equal(t, 1, count)
}
