package catalog

import "strings"

// Suggestion is one product proposal included in a chat response.
type Suggestion struct {
	Name         string   `json:"name"`
	Category     string   `json:"category"`
	Alternatives []string `json:"alternatives"`
	Seasonality  string   `json:"seasonality"`
	Available    bool     `json:"available"`
	Region       string   `json:"region,omitempty"`
	Unit         string   `json:"unit,omitempty"`
	PriceRange   string   `json:"priceRange,omitempty"`
}

// Alternatives proposes substitutes for a product: the curated
// substitution table first, then category-mates and per-bucket extras,
// deduplicated and capped at 6.
func Alternatives(name string) []string {
	if curated, ok := productAlternatives[name]; ok {
		return capUnique(curated, 6)
	}

	if Details(name) == nil {
		return nil
	}

	var alternatives []string
	bucketName, mates := bucketOf(name)
	for _, p := range mates {
		if p.Name != name {
			alternatives = append(alternatives, p.Name)
		}
	}

	switch bucketName {
	case "cereals":
		alternatives = append(alternatives, "maïs", "blé", "quinoa", "sorgho")
	case "vegetables":
		alternatives = append(alternatives, "carotte", "chou", "laitue", "courgette")
	case "fruits":
		if strings.Contains(name, "mangue") {
			alternatives = append(alternatives, "papaye", "goyave", "ananas")
		} else if strings.Contains(name, "litchi") {
			alternatives = append(alternatives, "ramboutan", "longane", "fruit de la passion")
		}
	case "meats":
		if strings.Contains(name, "zébu") {
			alternatives = append(alternatives, "poulet", "porc", "agneau")
		}
	case "exports":
		alternatives = append(alternatives, "vanille", "café", "cacao", "girofle")
	}

	return capUnique(alternatives, 6)
}

func capUnique(items []string, max int) []string {
	seen := make(map[string]bool, len(items))
	var out []string
	for _, it := range items {
		if seen[it] {
			continue
		}
		seen[it] = true
		out = append(out, it)
		if len(out) == max {
			break
		}
	}
	return out
}

// UnitFor returns the measurement unit a product is traded in.
func UnitFor(name string) string {
	product := strings.ToLower(name)

	switch {
	case containsAny(product, "riz", "maïs", "blé", "haricot", "lentille", "arachide"):
		return "kg"
	case containsAny(product, "viande", "poisson", "lait", "fromage", "beurre"):
		return "kg"
	case containsAny(product, "fruit", "légume", "tomate", "oignon", "carotte"):
		return "kg ou cagette"
	case containsAny(product, "vanille", "café", "cacao", "girofle", "poivre"):
		return "kg"
	case containsAny(product, "huile", "essentielle"):
		return "ml ou litre"
	}
	return "unité"
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

// Indicative price ranges in Ariary (fr/mg) and USD (en). Ordered so
// lookups are deterministic.
type priceEntry struct {
	key string
	fr  string
	mg  string
	en  string
}

var priceRanges = []priceEntry{
	{"riz", "2 000 - 4 000 MGA/kg", "2 000 - 4 000 Ar/kg", "0.5 - 1 USD/kg"},
	{"maïs", "1 500 - 3 000 MGA/kg", "1 500 - 3 000 Ar/kg", "0.4 - 0.8 USD/kg"},
	{"tomate", "1 000 - 3 000 MGA/kg", "1 000 - 3 000 Ar/kg", "0.3 - 0.8 USD/kg"},
	{"oignon", "1 500 - 3 500 MGA/kg", "1 500 - 3 500 Ar/kg", "0.4 - 0.9 USD/kg"},
	{"pomme de terre", "1 500 - 3 000 MGA/kg", "1 500 - 3 000 Ar/kg", "0.4 - 0.8 USD/kg"},
	{"carotte", "2 000 - 4 000 MGA/kg", "2 000 - 4 000 Ar/kg", "0.5 - 1 USD/kg"},
	{"mangue", "800 - 2 000 MGA/kg", "800 - 2 000 Ar/kg", "0.2 - 0.5 USD/kg"},
	{"litchi", "3 000 - 6 000 MGA/kg", "3 000 - 6 000 Ar/kg", "0.8 - 1.5 USD/kg"},
	{"banane", "500 - 1 500 MGA/kg", "500 - 1 500 Ar/kg", "0.1 - 0.4 USD/kg"},
	{"viande de zébu", "15 000 - 25 000 MGA/kg", "15 000 - 25 000 Ar/kg", "4 - 6 USD/kg"},
	{"poulet", "8 000 - 15 000 MGA/kg", "8 000 - 15 000 Ar/kg", "2 - 4 USD/kg"},
	{"poisson frais", "5 000 - 15 000 MGA/kg", "5 000 - 15 000 Ar/kg", "1.3 - 4 USD/kg"},
	{"vanille", "300 000 - 800 000 MGA/kg", "300 000 - 800 000 Ar/kg", "80 - 200 USD/kg"},
	{"café", "10 000 - 30 000 MGA/kg", "10 000 - 30 000 Ar/kg", "2.5 - 7.5 USD/kg"},
	{"cacao", "8 000 - 20 000 MGA/kg", "8 000 - 20 000 Ar/kg", "2 - 5 USD/kg"},
	{"girofle", "15 000 - 30 000 MGA/kg", "15 000 - 30 000 Ar/kg", "3.8 - 7.5 USD/kg"},
	{"lait", "2 000 - 4 000 MGA/litre", "2 000 - 4 000 Ar/litre", "0.5 - 1 USD/litre"},
	{"fromage", "10 000 - 25 000 MGA/kg", "10 000 - 25 000 Ar/kg", "2.5 - 6 USD/kg"},
	{"œufs", "300 - 500 MGA/pièce", "300 - 500 Ar/iraiky", "0.08 - 0.13 USD/piece"},
}

// PriceRange returns the indicative price range for a product in the
// requested language, or a localized "price on request".
func PriceRange(name, language string) string {
	product := strings.ToLower(name)
	for _, entry := range priceRanges {
		if strings.Contains(product, entry.key) {
			switch language {
			case "mg":
				return entry.mg
			case "en":
				return entry.en
			default:
				return entry.fr
			}
		}
	}

	switch language {
	case "mg":
		return "Vidiny araka ny fangatahana"
	case "en":
		return "Price on request"
	default:
		return "Prix sur demande"
	}
}

// Suggestions assembles up to three product proposals: mentioned
// products first, padded with intent-based defaults. month is a French
// month name; seasonality labels derive from it.
func Suggestions(intent string, mentioned []string, language, month string) []Suggestion {
	seasonal := SeasonalFor(month)

	var suggestions []Suggestion
	for _, name := range mentioned {
		if len(suggestions) == 3 {
			break
		}
		details := Details(name)
		if details == nil {
			continue
		}
		category := "général"
		if len(details.Categories) > 0 {
			category = details.Categories[0]
		}
		suggestions = append(suggestions, Suggestion{
			Name:         details.Name,
			Category:     category,
			Alternatives: capUnique(Alternatives(name), 3),
			Seasonality:  seasonLabel(contains(seasonal, name)),
			Available:    true,
			Region:       "Madagascar",
			Unit:         UnitFor(name),
			PriceRange:   PriceRange(name, language),
		})
	}

	if len(suggestions) < 3 {
		defaults := intentSuggestions(intent, language, seasonal)
		for _, s := range defaults {
			if len(suggestions) == 3 {
				break
			}
			suggestions = append(suggestions, s)
		}
	}

	return suggestions
}

func seasonLabel(inSeason bool) string {
	if inSeason {
		return "De saison"
	}
	return "Hors saison"
}

func contains(items []string, s string) bool {
	for _, it := range items {
		if it == s {
			return true
		}
	}
	return false
}

func intentSuggestions(intent, language string, seasonal []string) []Suggestion {
	lead := "mangue"
	if len(seasonal) > 0 {
		lead = seasonal[0]
	}

	switch intent {
	case "purchase_intent":
		return []Suggestion{
			{Name: lead, Category: "fruit", Alternatives: capUnique(Alternatives(lead), 3), Seasonality: "De saison", Available: true, Region: "Madagascar", Unit: "kg", PriceRange: PriceRange(lead, language)},
			{Name: "riz", Category: "céréale", Alternatives: []string{"maïs", "blé", "quinoa"}, Seasonality: "Toute l'année", Available: true, Region: "Madagascar", Unit: "kg", PriceRange: PriceRange("riz", language)},
			{Name: "viande de zébu", Category: "viande", Alternatives: []string{"poulet", "porc", "agneau"}, Seasonality: "Toute l'année", Available: true, Region: "Madagascar", Unit: "kg", PriceRange: PriceRange("viande de zébu", language)},
		}
	case "export_inquiry":
		variable := "Prix variable selon qualité"
		switch language {
		case "mg":
			variable = "Miovaova arakaraka ny kalitao"
		case "en":
			variable = "Variable price depending on quality"
		}
		return []Suggestion{
			{Name: "vanille", Category: "export", Alternatives: []string{"café", "cacao", "girofle"}, Seasonality: "Spécialité", Available: true, Region: "Madagascar", Unit: "kg", PriceRange: PriceRange("vanille", language)},
			{Name: "litchi", Category: "fruit-export", Alternatives: []string{"mangue", "ananas", "fruit de la passion"}, Seasonality: seasonLabel(contains(seasonal, "litchi")), Available: contains(seasonal, "litchi"), Region: "Madagascar", Unit: "kg", PriceRange: PriceRange("litchi", language)},
			{Name: "huile essentielle", Category: "export", Alternatives: []string{"ylang-ylang", "vétiver", "ravintsara"}, Seasonality: "Toute l'année", Available: true, Region: "Madagascar", Unit: "ml", PriceRange: variable},
		}
	default:
		return []Suggestion{
			{Name: lead, Category: "fruit", Alternatives: capUnique(Alternatives(lead), 3), Seasonality: "De saison", Available: true, Region: "Madagascar", Unit: "kg", PriceRange: PriceRange(lead, language)},
			{Name: "tomate", Category: "légume", Alternatives: []string{"aubergine", "poivron", "courgette"}, Seasonality: "Toute l'année", Available: true, Region: "Madagascar", Unit: "kg", PriceRange: PriceRange("tomate", language)},
			{Name: "poulet", Category: "volaille", Alternatives: []string{"canard", "dinde", "viande de zébu"}, Seasonality: "Toute l'année", Available: true, Region: "Madagascar", Unit: "kg", PriceRange: PriceRange("poulet", language)},
		}
	}
}
