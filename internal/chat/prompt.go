package chat

import (
	"fmt"
	"strings"
	"time"

	"github.com/tantsahamarket/chatbot/internal/catalog"
	"github.com/tantsahamarket/chatbot/internal/models"
)

const catalogOverviewFR = `🌾 **CÉRÉALES** : Riz, maïs, blé, avoine, orge, millet, sorgho, quinoa
🥦 **LÉGUMES** : Tomate, oignon, pomme de terre, carotte, chou, laitue, aubergine, courgette, concombre, poivron, piment, haricots, petits pois
🍠 **TUBERCULES** : Manioc, patate douce, igname, taro, gingembre, curcuma
🍎 **FRUITS** : Banane, mangue, litchi, ananas, papaye, goyave, agrumes, raisins, avocat, noix de coco, fruits tropicaux
🌿 **ÉPICES & AROMATES** : Vanille, poivre, cannelle, girofle, cardamome, thym, romarin, basilic, coriandre, menthe
☕ **PRODUITS D'EXPORT** : Café, cacao, thé, vanille, girofle, poivre, huiles essentielles, ylang-ylang
🥩 **VIANDES** : Zébu, poulet, porc, agneau, chèvre, lapin, canard, dinde
🐟 **PRODUITS DE LA MER** : Poisson, crevette, crabe, langouste, poulpe, calamar, huîtres, moules
🥛 **PRODUITS LAITIERS** : Lait, fromage, yaourt, beurre, crème, œufs
🥜 **LÉGUMINEUSES** : Haricots, lentilles, pois chiches, soja, arachides
🌻 **OLÉAGINEUX** : Tournesol, colza, sésame, palmier à huile
🏭 **PRODUITS TRANSFORMÉS** : Confitures, jus, conserves, fruits secs, légumes surgelés, viandes séchées
🌿 **PLANTES MÉDICINALES** : Ravintsara, niaouli, katrafay, mandravasarotra
🏵️ **FLEURS** : Orchidées, roses, lys, protea, gerbera`

const catalogOverviewMG = `🌾 **VARY SY VOAMENA** : Vary, katsaka, varimbazaha, avoine, orge, millet, sorgho, quinoa
🥦 **ANANA** : Voatabia, tongolo, ovy, karaoty, lasary, salady, baranjely, kôzety, konkombra, pilipily, sakay, tsaramaso, petit pois
🍠 **VOAMBA** : Mangahazo, ovimbazaha, ovy mahery, saonjo, sakamalao, tamotamo
🍎 **VOANKAZO** : Akondro, manga, litchi, mananasy, voapaza, goavy, voasary, voaloboka, zavoka, voaniho, voankazo tropikaly
🌿 **ZAVA-MANITRA** : Vanila, dipoavatra, kanelina, girofle, cardamome, thym, romarin, bonanitra, coriandre, menta
☕ **FANONDRANANA** : Kafe, kakaô, dite, vanila, girofle, dipoavatra, menaka esansiela, ilang-ilang
🥩 **HENA** : Omby, akoho, kisoa, zanimpito, osy, bitro, gana, dinde
🐟 **VOKATRA AN-DRANOMASINA** : Trondro, crevettes, foza, orambato, poulpe, calamar, oyster, mussel
🥛 **VOKATRA RONONO** : Ronono, fromazy, yaourt, dibera, crème, atody
🥜 **ZAVAMANIRY AN-TSAHA** : Tsaramaso, lentille, pois chiche, soja, voanjo
🌻 **VOAMENA MENAKA** : Tournesol, colza, sesame, palmier à huile
🏭 **VOKATRA VOAOVA** : Marmelady, ranom-boankazo, konserba, voankazo maina, anana mangatsiaka, kitoza
🌿 **ZAVAMANIRY FANAFODY** : Ravintsara, niaouli, katrafay, mandravasarotra
🏵️ **VONINKAZO** : Orchidée, rose, lys, protea, gerbera`

const catalogOverviewEN = `🌾 **CEREALS** : Rice, corn, wheat, oats, barley, millet, sorghum, quinoa
🥦 **VEGETABLES** : Tomato, onion, potato, carrot, cabbage, lettuce, eggplant, zucchini, cucumber, bell pepper, chili, beans, peas
🍠 **TUBERS** : Cassava, sweet potato, yam, taro, ginger, turmeric
🍎 **FRUITS** : Banana, mango, lychee, pineapple, papaya, guava, citrus, grapes, avocado, coconut, tropical fruits
🌿 **SPICES & HERBS** : Vanilla, pepper, cinnamon, cloves, cardamom, thyme, rosemary, basil, coriander, mint
☕ **EXPORT PRODUCTS** : Coffee, cocoa, tea, vanilla, cloves, pepper, essential oils, ylang-ylang
🥩 **MEATS** : Zebu, chicken, pork, lamb, goat, rabbit, duck, turkey
🐟 **SEAFOOD** : Fish, shrimp, crab, lobster, octopus, squid, oysters, mussels
🥛 **DAIRY PRODUCTS** : Milk, cheese, yogurt, butter, cream, eggs
🥜 **LEGUMES** : Beans, lentils, chickpeas, soybeans, peanuts
🌻 **OILSEEDS** : Sunflower, rapeseed, sesame, oil palm
🏭 **PROCESSED PRODUCTS** : Jams, juices, canned goods, dried fruits, frozen vegetables, dried meats
🌿 **MEDICINAL PLANTS** : Ravintsara, niaouli, katrafay, mandravasarotra
🏵️ **FLOWERS** : Orchids, roses, lilies, protea, gerbera`

// BuildSystemPrompt renders the language-specific system prompt
// embedding the product catalog, the session context, the current
// month's seasonal products and the detected intent. The prompt
// forbids the model from echoing session or client identifiers.
func BuildSystemPrompt(session *models.Session, intent string, now time.Time) string {
	month := catalog.MonthName(now.Month())
	seasonal := strings.Join(catalog.SeasonalFor(month), ", ")

	region := "non spécifiée"
	if session.Preferences != nil && session.Preferences.Region != "" {
		region = session.Preferences.Region
	}
	interests := joinOr(session.Interests, "aucun")
	mentioned := joinOr(session.MentionedProducts, "aucun")

	switch session.Language {
	case "mg":
		return fmt.Sprintf(`Hianao no TantsahaBot, mpanampy manam-pahaizana momba ny TantsahaMarket, sehatra lehibe indrindra amin'ny varotra ara-pambolena eto Madagasikara.

BASE DE DONNÉES FENO AMIN'NY VOKATRA ARA-PAMBOLENA MALAGASY :
%s

TOETRA MPAMPIASA :
- Fihaonambe : %s (mpampiasa: %s)
- Faritra : %s
- Zana-tsaina teo aloha : %s
- Vokatra nolazaina : %s

TOE-JAVATRA AFAKETSY :
- Volana : %s
- Vokatra mety amin'izao fotoana izao : %s
- Tanjona hita : %s
- Fiteny : malagasy

NY ANJARA ASAO :
1. FAMPANDROSOANA : Ampiasao ny base de données feno etsy ambony
2. FANADINANA : Hita ve ilaina vokatra maitso/voaova/fanondranana
3. FANAMARINANA : Ampifanaraho amin'ny vokatra mety sy faritra
4. SOSO-KEVITRA : Atolory safidy sy fanampiny

FEPETRA :
- Lazao sokajin'ny vokatra
- Asongadio ny mety amin'izao fotoana izao
- Atolory safidy 2-3
- Omeo refy mety
- Aza averina mihitsy ny laharan'ny fihaonambe na ny mpampiasa
- Faribolana vokatra iray isaky ny sokajy ao amin'ny valiny

TANJONA : Toroy ny vokatra mety indrindra amin'ny tanan'ny vokatra ara-pambolena malagasy rehetra.`,
			catalogOverviewMG, session.ID, session.ClientID, region, interests, mentioned, month, seasonal, intent)

	case "en":
		return fmt.Sprintf(`You are TantsahaBot, the expert assistant of TantsahaMarket, the leading agricultural commerce platform in Madagascar.

COMPLETE DATABASE OF MALAGASY AGRICULTURAL PRODUCTS:
%s

USER CONTEXT:
- Session: %s (client: %s)
- Region: %s
- Previous interests: %s
- Mentioned products: %s

CURRENT CONTEXT:
- Month: %s
- Seasonal products: %s
- Detected intent: %s
- Language: English

YOUR ROLE:
1. PRODUCT KNOWLEDGE: Use the complete database above
2. QUALIFICATION: Detect if need fresh/processed/export product
3. PERSONALIZATION: Adapt to seasonal products and region
4. SUGGESTIONS: Propose alternatives and complements

RULES:
- Mention product category
- Indicate seasonality
- Propose 2-3 alternatives
- Give appropriate unit of measure
- Never repeat session or client identifiers back to the user
- For export: mention possible certifications (organic, fair trade)
- For meats: mention available cuts
- For fresh products: storage advice
- Max 1 product per category in response

GOAL: Guide to the most suitable product among all Malagasy agricultural offerings.`,
			catalogOverviewEN, session.ID, session.ClientID, region, interests, mentioned, month, seasonal, intent)

	default:
		return fmt.Sprintf(`Tu es TantsahaBot, l'assistant expert de TantsahaMarket, plateforme leader du commerce agricole à Madagascar.

BASE DE DONNÉES COMPLÈTE DES PRODUITS AGRICOLES MALGACHES :
%s

CONTEXTE UTILISATEUR :
- Session : %s (client: %s)
- Région : %s
- Intérêts précédents : %s
- Produits mentionnés : %s

CONTEXTE ACTUEL :
- Mois : %s
- Produits de saison : %s
- Intention détectée : %s
- Langue : français

TON RÔLE (CONVERSION FOCUS) :
1. CONNAISSANCE PRODUITS : Utiliser la base de données complète ci-dessus
2. QUALIFICATION : Détecter si besoin produit frais/transformé/export
3. PERSONNALISATION : Adapter aux produits de saison et région
4. SUGGESTIONS : Proposer alternatives et compléments

RÈGLES :
- Mentionner catégorie du produit
- Indiquer saisonnalité
- Proposer 2-3 alternatives
- Donner unité de mesure appropriée
- Ne jamais répéter les identifiants de session ou de client à l'utilisateur
- Pour export : mentionner certifications possibles (bio, fair trade)
- Pour viandes : mentionner coupes disponibles
- Pour produits frais : conseils conservation
- Max 1 produit par catégorie dans réponse

OBJECTIF : Guider vers produit le plus adapté parmi toute l'offre agricole malgache.`,
			catalogOverviewFR, session.ID, session.ClientID, region, interests, mentioned, month, seasonal, intent)
	}
}

func joinOr(items []string, empty string) string {
	if len(items) == 0 {
		return empty
	}
	return strings.Join(items, ", ")
}

// CompactHistory bounds prompt size once the conversation exceeds the
// summary threshold: system messages are kept, one synthesized
// assistant summary carries the session-level context, and only the
// most recent turns follow.
func CompactHistory(messages []models.Message, session *models.Session) []models.Message {
	if len(messages) <= models.SummaryThreshold {
		return messages
	}

	var compacted []models.Message
	for _, m := range messages {
		if m.Role == "system" {
			compacted = append(compacted, m)
		}
	}

	lastIntent := session.LastIntent
	if lastIntent == "" {
		lastIntent = "générale"
	}
	summary := fmt.Sprintf(`Résumé de la conversation avec l'utilisateur %s :
  - Intérêts détectés : %s
  - Produits mentionnés : %s
  - Langue préférée : %s
  - Dernière intention : %s`,
		session.ClientID,
		joinOr(session.Interests, "aucun"),
		joinOr(session.MentionedProducts, "aucun"),
		session.Language,
		lastIntent)
	compacted = append(compacted, models.Message{Role: "assistant", Content: summary})

	recent := messages[len(messages)-models.KeepRecentMessages:]
	return append(compacted, recent...)
}

// FollowUpQuestions proposes qualification questions for preferences
// the session has not captured yet.
func FollowUpQuestions(session *models.Session, suggestions int, hasExport bool) []string {
	prefs := session.Preferences
	if prefs == nil {
		prefs = &models.Preferences{}
	}

	var questions []string
	language := session.Language

	if suggestions > 0 && prefs.Region == "" {
		questions = append(questions, localized(language,
			"Dans quelle région souhaitez-vous recevoir la livraison ?",
			"Amin'ny faritra aiza no tianao handraisana ny entana ?",
			"In which region would you like to receive delivery?"))
	}

	if len(session.MentionedProducts) > 0 && prefs.Quantity == "" {
		questions = append(questions, localized(language,
			"Quelle quantité approximative recherchez-vous ?",
			"Habetsahana ahoana no tadiavinao ?",
			"What approximate quantity are you looking for?"))
	}

	if hasExport && prefs.ProductType == "" {
		questions = append(questions, localized(language,
			"Souhaitez-vous des produits frais ou transformés ?",
			"Vokatra maitso na efa voaova no tadiavinao ?",
			"Do you want fresh or processed products?"))
	}

	return questions
}

func localized(language, fr, mg, en string) string {
	switch language {
	case "mg":
		return mg
	case "en":
		return en
	default:
		return fr
	}
}

// Localized client-facing error strings.
var rateLimitMessages = map[string]string{
	"fr": "Trop de requêtes. Veuillez réessayer dans une minute.",
	"mg": "Fangatahana be loatra. Andraso kely azafady.",
	"en": "Too many requests. Please try again in a minute.",
}

var timeoutMessages = map[string]string{
	"fr": "La requête a pris trop de temps. Veuillez réessayer.",
	"mg": "Naharitra be loatra ny fangatahana. Andramo indray azafady.",
	"en": "The request took too long. Please try again.",
}

// RateLimitMessage returns the localized 429 body message.
func RateLimitMessage(language string) string {
	if m, ok := rateLimitMessages[language]; ok {
		return m
	}
	return rateLimitMessages["fr"]
}

// TimeoutMessage returns the localized 408 body message.
func TimeoutMessage(language string) string {
	if m, ok := timeoutMessages[language]; ok {
		return m
	}
	return timeoutMessages["fr"]
}
