package chat

import (
	"context"
	"strings"

	"github.com/tantsahamarket/chatbot/internal/models"
	"github.com/tantsahamarket/chatbot/internal/store"
)

// Canned responses for recognized question patterns, per language.
var ownershipResponses = map[string]string{
	"fr": "Je suis TantsahaBot, l'assistant intelligent de TantsahaMarket. J'ai été créé par l'équipe de TantsahaMarket pour aider les producteurs et acheteurs agricoles à Madagascar. Mon propriétaire est TantsahaMarket, la plateforme leader du commerce agricole malgache. 🚜",
	"mg": "Izaho no TantsahaBot, mpanampy manan-tsaina ao amin'ny TantsahaMarket. Noforonin'ny ekipan'ny TantsahaMarket aho hanampy ny mpamokatra sy ny mpividy ara-pambolena eto Madagasikara. Ny tompoko dia TantsahaMarket, sehatra voalohany amin'ny varotra ara-pambolena malagasy. 🌱",
	"en": "I am TantsahaBot, the intelligent assistant of TantsahaMarket. I was created by the TantsahaMarket team to help agricultural producers and buyers in Madagascar. My owner is TantsahaMarket, the leading agricultural commerce platform in Madagascar. 🌾",
}

var contactResponses = map[string]string{
	"fr": "📞 Pour contacter TantsahaMarket :\n• Téléphone : +261 34 11 815 03\n• Email : contact@tantsahamarket.mg\n• Site web : www.tantsahamarket.mg\n• Adresse : Antananarivo, Madagascar\n\nNous sommes disponibles du lundi au vendredi, 8h-17h.",
	"mg": "📞 Mifandray amin'ny TantsahaMarket :\n• Telefaonina : +261 34 11 815 03\n• Mailaka : contact@tantsahamarket.mg\n• Tranonkala : www.tantsahamarket.mg\n• Adiresy : Antananarivo, Madagasikara\n\nManoa isan'ny alatsinainy ka hatramin'ny zomà 8h-17h.",
	"en": "📞 Contact TantsahaMarket:\n• Phone: +261 34 11 815 03\n• Email: contact@tantsahamarket.mg\n• Website: www.tantsahamarket.mg\n• Address: Antananarivo, Madagascar\n\nWe're available Monday to Friday, 8AM-5PM.",
}

var productListResponses = map[string]string{
	"fr": "🎯 **PRODUITS DISPONIBLES SUR TANTSAHAMARKET** 🎯\n\n🌾 **Céréales & Grains** : Riz, maïs, blé, avoine, quinoa\n🥦 **Légumes** : Tomate, oignon, carotte, chou, laitue, aubergine\n🍎 **Fruits** : Mangue, litchi, banane, ananas, papaye, agrumes\n🥩 **Viandes** : Zébu, poulet, porc, agneau, chèvre\n🐟 **Produits de la mer** : Poisson, crevette, crabe, langouste\n🌿 **Épices & Export** : Vanille, café, cacao, girofle, poivre\n🥛 **Produits laitiers** : Lait, fromage, yaourt, beurre\n🥜 **Légumineuses** : Haricots, lentilles, arachides, soja\n🏵️ **Produits spéciaux** : Huiles essentielles, plantes médicinales, fleurs\n\n💡 *Demandez-moi des détails sur un produit spécifique !*",
	"mg": "🎯 **VOKATRA HITA AO AMIN'NY TANTSAHAMARKET** 🎯\n\n🌾 **Vary sy voamena** : Vary, katsaka, varimbazaha, avoine, quinoa\n🥦 **Anana** : Voatabia, tongolo, karaoty, lasary, salady, baranjely\n🍎 **Voankazo** : Manga, litchi, akondro, mananasy, voapaza, voasary\n🥩 **Hena** : Omby, akoho, kisoa, zanimpito, osy\n🐟 **Vokatra an-dranomasina** : Trondro, crevettes, foza, orambato\n🌿 **Zava-manitra sy fanondranana** : Vanila, kafe, kakaô, girofle, dipoavatra\n🥛 **Vokatra ronono** : Ronono, fromazy, yaourt, dibera\n🥜 **Zavamaniry an-tsaha** : Tsaramaso, lentille, voanjo, soja\n🏵️ **Vokatra manokana** : Menaka esansiela, zavamaniry fanafody, voninkazo\n\n💡 *Anontanio ny momba ny vokatra iray manokana!*",
	"en": "🎯 **PRODUCTS AVAILABLE ON TANTSAHAMARKET** 🎯\n\n🌾 **Cereals & Grains** : Rice, corn, wheat, oats, quinoa\n🥦 **Vegetables** : Tomato, onion, carrot, cabbage, lettuce, eggplant\n🍎 **Fruits** : Mango, lychee, banana, pineapple, papaya, citrus\n🥩 **Meats** : Zebu, chicken, pork, lamb, goat\n🐟 **Seafood** : Fish, shrimp, crab, lobster\n🌿 **Spices & Exports** : Vanilla, coffee, cocoa, cloves, pepper\n🥛 **Dairy Products** : Milk, cheese, yogurt, butter\n🥜 **Legumes** : Beans, lentils, peanuts, soybeans\n🏵️ **Special Products** : Essential oils, medicinal plants, flowers\n\n💡 *Ask me for details about a specific product!*",
}

var fallbackResponses = map[string]string{
	"fr": "Je rencontre des difficultés techniques. En attendant, voici quelques produits populaires :\n• Fruits de saison : litchis, mangues\n• Légumes : tomates, carottes\n• Viandes : zébu, poulet\n• Exportations : vanille, café\n\nContact : +261 34 11 815 03",
	"mg": "Misy olana tekinika aho. Mandritra izany, ireto vokatra malaza :\n• Voankazo mety : litchis, manga\n• Anana : voatabia, karaoty\n• Hena : omby, akoho\n• Fanondranana : vanila, kafe\n\nFifandraisana : +261 34 11 815 03",
	"en": "I'm experiencing technical issues. Meanwhile, here are popular products:\n• Seasonal fruits: litchis, mangoes\n• Vegetables: tomatoes, carrots\n• Meats: zebu, chicken\n• Exports: vanilla, coffee\n\nContact: +261 34 11 815 03",
}

// OwnershipResponse returns the fixed per-language ownership answer.
// Always a hit; bypasses the general cache entirely.
func OwnershipResponse(language string) string {
	if r, ok := ownershipResponses[language]; ok {
		return r
	}
	return ownershipResponses["fr"]
}

// FallbackResponse is the graceful degradation message for
// unrecoverable errors.
func FallbackResponse(language string) string {
	if r, ok := fallbackResponses[language]; ok {
		return r
	}
	return fallbackResponses["fr"]
}

var contactCacheKeywords = []string{"contact", "appel", "téléphone"}

var productListCacheKeywords = []string{
	"produit", "vokatra", "product",
	"disponible", "manana", "available",
	"liste", "catalogue", "tout",
}

type faqEntry struct {
	Response string `json:"response"`
}

// FaqCache memoizes canned answers for recognized non-personalized
// question patterns, keyed by language plus the first 50 lowercased
// characters of the question.
type FaqCache struct {
	store store.Store
}

func NewFaqCache(s store.Store) *FaqCache {
	return &FaqCache{store: s}
}

func cacheKey(question, language string) string {
	truncated := question
	if len(truncated) > 50 {
		truncated = truncated[:50]
	}
	return language + "_" + strings.ToLower(truncated)
}

// Lookup returns the memoized or freshly matched canned answer for a
// question, or "" on a miss (which propagates to the upstream call).
func (c *FaqCache) Lookup(ctx context.Context, question, language string) (string, error) {
	key := cacheKey(question, language)

	var entry faqEntry
	found, err := c.store.Get(ctx, key, &entry)
	if err != nil {
		return "", err
	}
	if found {
		return entry.Response, nil
	}

	lower := strings.ToLower(question)

	if matchesAny(lower, contactCacheKeywords) {
		response := contactResponses[language]
		if response == "" {
			response = contactResponses["fr"]
		}
		err := c.store.Set(ctx, key, &faqEntry{Response: response}, models.FaqCacheTTL)
		return response, err
	}

	if matchesAny(lower, productListCacheKeywords) {
		response := productListResponses[language]
		if response == "" {
			response = productListResponses["fr"]
		}
		err := c.store.Set(ctx, key, &faqEntry{Response: response}, models.FaqCacheTTL)
		return response, err
	}

	return "", nil
}

// Count reports live cache entries for the health probe.
func (c *FaqCache) Count(ctx context.Context) int {
	n, err := c.store.Len(ctx)
	if err != nil {
		return 0
	}
	return n
}
