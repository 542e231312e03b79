package chat

import (
	"strings"

	"github.com/tantsahamarket/chatbot/internal/catalog"
	"github.com/tantsahamarket/chatbot/internal/models"
)

// Intent tags, in detection precedence order.
const (
	IntentOwnership       = "ownership_inquiry"
	IntentPurchase        = "purchase_intent"
	IntentSeller          = "seller_inquiry"
	IntentPrice           = "price_inquiry"
	IntentDelivery        = "delivery_inquiry"
	IntentProduct         = "product_inquiry"
	IntentAvailability    = "availability_inquiry"
	IntentContact         = "contact_request"
	IntentExport          = "export_inquiry"
	IntentProductType     = "product_type_inquiry"
	IntentFollowUp        = "follow_up_qualification"
	IntentGeneral         = "general_query"
)

var ownershipKeywords = []string{
	"qui vous a créé", "qui est ton propriétaire", "qui t'a fait",
	"qui t'as créé", "owner", "créateur", "propriétaire",
	"tantsahamarket est à qui", "qui possède tantsahamarket",
	"vous appartenez à qui", "à qui êtes-vous", "qui est ton boss",
	"qui te dirige", "qui t'a programmé", "qui t'a développé",
	"votre créateur", "ton maker", "votre propriétaire",
}

// Ordered first-match-wins rule table. Ownership is evaluated ahead of
// this table because it also drives the canned-response short-circuit.
var intentRules = []struct {
	tag      string
	keywords []string
}{
	{IntentPurchase, []string{"commander", "acheter", "order", "mividy", "mila", "besoin"}},
	{IntentSeller, []string{"vendre", "vendeur", "seller", "mpamokatra", "manana", "offrir"}},
	{IntentPrice, []string{"prix", "tarif", "price", "vidiny", "combien", "coût"}},
	{IntentDelivery, []string{"livraison", "delivery", "handeha", "expédition", "transport", "livrer"}},
	{IntentProduct, []string{"produit", "product", "vokatra", "article", "marchandise", "denrée"}},
	{IntentAvailability, []string{"stock", "disponible", "available", "tsy misy", "manana ve", "en stock"}},
	{IntentContact, []string{"contact", "appeler", "appel", "téléphoner", "mifandray", "adresse"}},
	{IntentExport, []string{"export", "international", "étranger", "mivoaka", "overseas", "ship abroad"}},
	{IntentProductType, []string{"frais", "fresh", "maitso", "cru", "transformé", "processed", "conservé", "canned"}},
}

var (
	frKeywords = []string{"bonjour", "merci", "produit", "commander", "livraison", "prix", "quantité"}
	mgKeywords = []string{"salama", "misaotra", "vokatra", "vidiny", "entana", "habetsahana", "handeha"}
	enKeywords = []string{"hello", "thank", "product", "order", "delivery", "price", "quantity"}
)

// IsOwnershipQuestion reports whether text asks who owns or built the bot.
func IsOwnershipQuestion(text string) bool {
	lower := strings.ToLower(text)
	for _, keyword := range ownershipKeywords {
		if strings.Contains(lower, keyword) {
			return true
		}
	}
	return false
}

// DetectLanguage scores text against fixed keyword lists for French,
// Malagasy and English. The initial scores are asymmetric: fr starts
// at 0 when any mg keyword is present (else 1) and vice versa, en
// always starts at 1; each matched keyword then adds 1. Clients depend
// on these exact results, so the arithmetic stays as is, quirks
// included.
func DetectLanguage(text string) string {
	lower := strings.ToLower(text)

	frScore, mgScore, enScore := 1, 1, 1
	if matchesAny(lower, mgKeywords) {
		frScore = 0
	}
	if matchesAny(lower, frKeywords) {
		mgScore = 0
	}

	for _, keyword := range frKeywords {
		if strings.Contains(lower, keyword) {
			frScore++
		}
	}
	for _, keyword := range mgKeywords {
		if strings.Contains(lower, keyword) {
			mgScore++
		}
	}
	for _, keyword := range enKeywords {
		if strings.Contains(lower, keyword) {
			enScore++
		}
	}

	if mgScore > frScore && mgScore > enScore {
		return "mg"
	}
	if frScore > enScore {
		return "fr"
	}
	return "en"
}

func matchesAny(lower string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(lower, keyword) {
			return true
		}
	}
	return false
}

// DetectIntent classifies the latest user message with the ordered
// rule table, falling back on session history: a message naming a
// known catalog product counts as a product inquiry, an established
// conversation without a contact request yet continues qualification,
// anything else is a general query.
func DetectIntent(text string, session *models.Session) string {
	if IsOwnershipQuestion(text) {
		return IntentOwnership
	}

	lower := strings.ToLower(text)
	for _, rule := range intentRules {
		if matchesAny(lower, rule.keywords) {
			return rule.tag
		}
	}

	if len(catalog.ExtractMentions(text)) > 0 {
		return IntentProduct
	}

	if len(session.Interests) > 0 && !session.ContactRequested {
		return IntentFollowUp
	}

	return IntentGeneral
}

// ExtractMentionedProducts returns catalog products named in text and
// merges them into the session's mentioned-products set.
func ExtractMentionedProducts(text string, session *models.Session) []string {
	mentioned := catalog.ExtractMentions(text)
	for _, name := range mentioned {
		session.AddMentionedProduct(name)
	}
	return mentioned
}
