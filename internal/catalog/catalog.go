// Package catalog holds the static knowledge base of Malagasy
// agricultural products: category buckets, alias lists, seasonal
// calendar, substitution tables, units and indicative price ranges.
// The data is immutable for the process lifetime and only read.
package catalog

import "strings"

// Product is one catalog entry. Names lists every alias (French,
// Malagasy, English) the extractor matches against; Name is canonical.
type Product struct {
	Name       string
	Names      []string
	Categories []string
}

type bucket struct {
	Name     string
	Products []Product
}

var buckets = []bucket{
	{Name: "cereals", Products: []Product{
		{Name: "riz", Names: []string{"riz", "vary", "rice"}, Categories: []string{"céréale", "base"}},
		{Name: "maïs", Names: []string{"maïs", "katsaka", "corn"}, Categories: []string{"céréale", "fourrage"}},
		{Name: "blé", Names: []string{"blé", "wheat"}, Categories: []string{"céréale"}},
		{Name: "avoine", Names: []string{"avoine", "oat"}, Categories: []string{"céréale", "fourrage"}},
		{Name: "orge", Names: []string{"orge", "barley"}, Categories: []string{"céréale", "brasserie"}},
		{Name: "millet", Names: []string{"millet", "petit mil"}, Categories: []string{"céréale"}},
		{Name: "sorgho", Names: []string{"sorgho", "sorghum"}, Categories: []string{"céréale", "fourrage"}},
		{Name: "quinoa", Names: []string{"quinoa"}, Categories: []string{"céréale", "bio"}},
	}},
	{Name: "vegetables", Products: []Product{
		{Name: "tomate", Names: []string{"tomate", "tomato", "voatabia"}, Categories: []string{"légume", "frais"}},
		{Name: "oignon", Names: []string{"oignon", "onion", "tongolo"}, Categories: []string{"légume", "condiment"}},
		{Name: "pomme de terre", Names: []string{"pomme de terre", "patate", "potato", "ovy"}, Categories: []string{"légume", "tubercule"}},
		{Name: "carotte", Names: []string{"carotte", "carrot", "karaoty"}, Categories: []string{"légume", "racine"}},
		{Name: "chou", Names: []string{"chou", "cabbage", "lasary"}, Categories: []string{"légume", "feuille"}},
		{Name: "laitue", Names: []string{"laitue", "salade", "lettuce", "salady"}, Categories: []string{"légume", "feuille"}},
		{Name: "aubergine", Names: []string{"aubergine", "eggplant", "baranjely"}, Categories: []string{"légume", "frais"}},
		{Name: "courgette", Names: []string{"courgette", "zucchini", "kôzety"}, Categories: []string{"légume"}},
		{Name: "concombre", Names: []string{"concombre", "cucumber", "konkombra"}, Categories: []string{"légume"}},
		{Name: "poivron", Names: []string{"poivron", "bell pepper", "pilipily maitso"}, Categories: []string{"légume", "condiment"}},
		{Name: "piment", Names: []string{"piment", "chili", "sakay"}, Categories: []string{"légume", "condiment"}},
		{Name: "haricot vert", Names: []string{"haricot vert", "green bean", "tsaramaso maitso"}, Categories: []string{"légume", "légumineuse"}},
		{Name: "petits pois", Names: []string{"petits pois", "pea", "tsaramaso kely"}, Categories: []string{"légume", "légumineuse"}},
		{Name: "poireau", Names: []string{"poireau", "leek"}, Categories: []string{"légume"}},
		{Name: "céleri", Names: []string{"céleri", "celery"}, Categories: []string{"légume", "aromatique"}},
		{Name: "radis", Names: []string{"radis", "radish"}, Categories: []string{"légume", "racine"}},
		{Name: "betterave", Names: []string{"betterave", "beetroot", "betiravy"}, Categories: []string{"légume", "racine"}},
		{Name: "navet", Names: []string{"navet", "turnip"}, Categories: []string{"légume", "racine"}},
		{Name: "épinard", Names: []string{"épinard", "spinach", "épina"}, Categories: []string{"légume", "feuille"}},
		{Name: "brocoli", Names: []string{"brocoli", "broccoli"}, Categories: []string{"légume"}},
		{Name: "chou-fleur", Names: []string{"chou-fleur", "cauliflower"}, Categories: []string{"légume"}},
	}},
	{Name: "tubers", Products: []Product{
		{Name: "manioc", Names: []string{"manioc", "cassava", "mangahazo"}, Categories: []string{"tubercule", "base"}},
		{Name: "patate douce", Names: []string{"patate douce", "sweet potato", "ovim-bazaha"}, Categories: []string{"tubercule"}},
		{Name: "igname", Names: []string{"igname", "yam", "ovy mahery"}, Categories: []string{"tubercule"}},
		{Name: "taro", Names: []string{"taro", "saonjo"}, Categories: []string{"tubercule"}},
		{Name: "gingembre", Names: []string{"gingembre", "ginger", "sakamalao"}, Categories: []string{"tubercule", "condiment"}},
		{Name: "curcuma", Names: []string{"curcuma", "turmeric", "tamotamo"}, Categories: []string{"tubercule", "condiment"}},
	}},
	{Name: "fruits", Products: []Product{
		{Name: "banane", Names: []string{"banane", "banana", "akondro"}, Categories: []string{"fruit", "tropical"}},
		{Name: "mangue", Names: []string{"mangue", "mango", "manga"}, Categories: []string{"fruit", "tropical"}},
		{Name: "litchi", Names: []string{"litchi", "lychee"}, Categories: []string{"fruit", "tropical", "export"}},
		{Name: "ananas", Names: []string{"ananas", "pineapple", "mananasy"}, Categories: []string{"fruit", "tropical"}},
		{Name: "papaye", Names: []string{"papaye", "papaya", "voapaza"}, Categories: []string{"fruit", "tropical"}},
		{Name: "goyave", Names: []string{"goyave", "guava", "goavy"}, Categories: []string{"fruit"}},
		{Name: "citron", Names: []string{"citron", "lemon", "limony"}, Categories: []string{"fruit", "agrume"}},
		{Name: "orange", Names: []string{"orange", "voasary"}, Categories: []string{"fruit", "agrume"}},
		{Name: "pamplemousse", Names: []string{"pamplemousse", "grapefruit", "pampla"}, Categories: []string{"fruit", "agrume"}},
		{Name: "mandarine", Names: []string{"mandarine", "tangerine"}, Categories: []string{"fruit", "agrume"}},
		{Name: "raisin", Names: []string{"raisin", "grape", "voaloboka"}, Categories: []string{"fruit"}},
		{Name: "avocat", Names: []string{"avocat", "avocado", "zavoka"}, Categories: []string{"fruit"}},
		{Name: "noix de coco", Names: []string{"noix de coco", "coconut", "voaniho"}, Categories: []string{"fruit", "tropical"}},
		{Name: "fruit de la passion", Names: []string{"fruit de la passion", "passion fruit", "grenadille"}, Categories: []string{"fruit", "tropical"}},
		{Name: "corossol", Names: []string{"corossol", "soursop", "voanantsindrana"}, Categories: []string{"fruit"}},
		{Name: "jacquier", Names: []string{"jacquier", "jackfruit", "voankazo be"}, Categories: []string{"fruit"}},
		{Name: "durian", Names: []string{"durian"}, Categories: []string{"fruit"}},
		{Name: "ramboutan", Names: []string{"ramboutan"}, Categories: []string{"fruit", "tropical"}},
		{Name: "longane", Names: []string{"longane"}, Categories: []string{"fruit"}},
		{Name: "mûre", Names: []string{"mûre", "blackberry"}, Categories: []string{"fruit", "baie"}},
		{Name: "framboise", Names: []string{"framboise", "raspberry"}, Categories: []string{"fruit", "baie"}},
		{Name: "fraise", Names: []string{"fraise", "strawberry", "fresy"}, Categories: []string{"fruit", "baie"}},
		{Name: "myrtille", Names: []string{"myrtille", "blueberry"}, Categories: []string{"fruit", "baie"}},
	}},
	{Name: "spices", Products: []Product{
		{Name: "vanille", Names: []string{"vanille", "vanilla"}, Categories: []string{"épice", "export"}},
		{Name: "poivre", Names: []string{"poivre", "pepper", "dipoavatra"}, Categories: []string{"épice"}},
		{Name: "cannelle", Names: []string{"cannelle", "cinnamon", "kanelina"}, Categories: []string{"épice"}},
		{Name: "clou de girofle", Names: []string{"clou de girofle", "clove", "girofle"}, Categories: []string{"épice", "export"}},
		{Name: "cardamome", Names: []string{"cardamome", "cardamom"}, Categories: []string{"épice"}},
		{Name: "muscade", Names: []string{"muscade", "nutmeg"}, Categories: []string{"épice"}},
		{Name: "curry", Names: []string{"curry"}, Categories: []string{"épice", "mélange"}},
		{Name: "thym", Names: []string{"thym", "thyme"}, Categories: []string{"aromate"}},
		{Name: "romarin", Names: []string{"romarin", "rosemary"}, Categories: []string{"aromate"}},
		{Name: "basilic", Names: []string{"basilic", "basil", "bonanitra"}, Categories: []string{"aromate"}},
		{Name: "persil", Names: []string{"persil", "parsley"}, Categories: []string{"aromate"}},
		{Name: "coriandre", Names: []string{"coriandre", "coriander"}, Categories: []string{"aromate"}},
		{Name: "menthe", Names: []string{"menthe", "mint", "menta"}, Categories: []string{"aromate"}},
	}},
	{Name: "exports", Products: []Product{
		{Name: "café", Names: []string{"café", "coffee", "kafe"}, Categories: []string{"boisson", "export"}},
		{Name: "cacao", Names: []string{"cacao", "cocoa"}, Categories: []string{"export", "transformation"}},
		{Name: "thé", Names: []string{"thé", "tea", "dite"}, Categories: []string{"boisson", "export"}},
		{Name: "poivre noir", Names: []string{"poivre noir", "black pepper"}, Categories: []string{"épice", "export"}},
		{Name: "poivre blanc", Names: []string{"poivre blanc", "white pepper"}, Categories: []string{"épice", "export"}},
		{Name: "poivre vert", Names: []string{"poivre vert", "green pepper"}, Categories: []string{"épice", "export"}},
		{Name: "huile essentielle", Names: []string{"huile essentielle", "essential oil"}, Categories: []string{"export", "transformation"}},
		{Name: "ylang-ylang", Names: []string{"ylang-ylang", "ilang-ilang"}, Categories: []string{"export", "parfumerie"}},
		{Name: "vétiver", Names: []string{"vétiver", "vetiver"}, Categories: []string{"export", "parfumerie"}},
	}},
	{Name: "meats", Products: []Product{
		{Name: "viande de zébu", Names: []string{"viande de zébu", "zébu", "beef", "hena omby"}, Categories: []string{"viande", "bovin"}},
		{Name: "poulet", Names: []string{"poulet", "chicken", "akoho"}, Categories: []string{"viande", "volaille"}},
		{Name: "canard", Names: []string{"canard", "duck", "gana"}, Categories: []string{"viande", "volaille"}},
		{Name: "dinde", Names: []string{"dinde", "turkey"}, Categories: []string{"viande", "volaille"}},
		{Name: "porc", Names: []string{"porc", "pork", "hena kisoa"}, Categories: []string{"viande", "porcin"}},
		{Name: "agneau", Names: []string{"agneau", "lamb", "zaanimpito"}, Categories: []string{"viande", "ovin"}},
		{Name: "chèvre", Names: []string{"chèvre", "goat", "osy"}, Categories: []string{"viande", "caprin"}},
		{Name: "lapin", Names: []string{"lapin", "rabbit", "bitro"}, Categories: []string{"viande"}},
	}},
	{Name: "seafood", Products: []Product{
		{Name: "poisson frais", Names: []string{"poisson frais", "fish", "trondro maitso"}, Categories: []string{"mer", "frais"}},
		{Name: "crevette", Names: []string{"crevette", "shrimp"}, Categories: []string{"mer", "crustacé"}},
		{Name: "crabe", Names: []string{"crabe", "crab"}, Categories: []string{"mer", "crustacé"}},
		{Name: "langouste", Names: []string{"langouste", "lobster"}, Categories: []string{"mer", "crustacé", "export"}},
		{Name: "poulpe", Names: []string{"poulpe", "octopus"}, Categories: []string{"mer", "mollusque"}},
		{Name: "calamar", Names: []string{"calamar", "squid"}, Categories: []string{"mer", "mollusque"}},
		{Name: "huître", Names: []string{"huître", "oyster"}, Categories: []string{"mer", "mollusque"}},
		{Name: "moule", Names: []string{"moule", "mussel"}, Categories: []string{"mer", "mollusque"}},
	}},
	{Name: "dairy", Products: []Product{
		{Name: "lait", Names: []string{"lait", "milk", "ronono"}, Categories: []string{"laitier"}},
		{Name: "fromage", Names: []string{"fromage", "cheese", "fromazy"}, Categories: []string{"laitier", "transformation"}},
		{Name: "yaourt", Names: []string{"yaourt", "yogurt"}, Categories: []string{"laitier", "transformation"}},
		{Name: "beurre", Names: []string{"beurre", "butter", "dibera"}, Categories: []string{"laitier", "transformation"}},
		{Name: "crème", Names: []string{"crème", "cream"}, Categories: []string{"laitier", "transformation"}},
		{Name: "œufs", Names: []string{"œufs", "eggs", "atody"}, Categories: []string{"animal"}},
	}},
	{Name: "legumes", Products: []Product{
		{Name: "haricot sec", Names: []string{"haricot sec", "bean", "tsaramaso maina"}, Categories: []string{"légumineuse", "sec"}},
		{Name: "lentille", Names: []string{"lentille", "lentil"}, Categories: []string{"légumineuse"}},
		{Name: "pois chiche", Names: []string{"pois chiche", "chickpea"}, Categories: []string{"légumineuse"}},
		{Name: "pois cassé", Names: []string{"pois cassé", "split pea"}, Categories: []string{"légumineuse"}},
		{Name: "soja", Names: []string{"soja", "soybean"}, Categories: []string{"légumineuse", "transformation"}},
		{Name: "arachide", Names: []string{"arachide", "peanut", "voanjo"}, Categories: []string{"légumineuse", "oléagineux"}},
	}},
	{Name: "oilseeds", Products: []Product{
		{Name: "tournesol", Names: []string{"tournesol", "sunflower"}, Categories: []string{"oléagineux"}},
		{Name: "colza", Names: []string{"colza", "rapeseed"}, Categories: []string{"oléagineux"}},
		{Name: "sésame", Names: []string{"sésame", "sesame"}, Categories: []string{"oléagineux"}},
		{Name: "palmier à huile", Names: []string{"palmier à huile", "oil palm"}, Categories: []string{"oléagineux"}},
	}},
	{Name: "processed", Products: []Product{
		{Name: "confiture", Names: []string{"confiture", "jam", "marmelady"}, Categories: []string{"transformé", "fruit"}},
		{Name: "jus de fruit", Names: []string{"jus de fruit", "fruit juice"}, Categories: []string{"transformé", "boisson"}},
		{Name: "conserves", Names: []string{"conserves", "canned food", "konserba"}, Categories: []string{"transformé"}},
		{Name: "fruits secs", Names: []string{"fruits secs", "dried fruits"}, Categories: []string{"transformé", "fruit"}},
		{Name: "légumes surgelés", Names: []string{"légumes surgelés", "frozen vegetables"}, Categories: []string{"transformé"}},
		{Name: "viande séchée", Names: []string{"viande séchée", "dried meat", "kitoza"}, Categories: []string{"transformé", "viande"}},
		{Name: "saucisse", Names: []string{"saucisse", "sausage"}, Categories: []string{"transformé", "viande"}},
		{Name: "charcuterie", Names: []string{"charcuterie"}, Categories: []string{"transformé", "viande"}},
	}},
	{Name: "medicinal", Products: []Product{
		{Name: "ravintsara", Names: []string{"ravintsara"}, Categories: []string{"médicinal", "huile essentielle"}},
		{Name: "niaouli", Names: []string{"niaouli"}, Categories: []string{"médicinal", "huile essentielle"}},
		{Name: "katrafay", Names: []string{"katrafay"}, Categories: []string{"médicinal"}},
		{Name: "mandravasarotra", Names: []string{"mandravasarotra"}, Categories: []string{"médicinal"}},
		{Name: "voandelaka", Names: []string{"voandelaka"}, Categories: []string{"médicinal"}},
	}},
	{Name: "flowers", Products: []Product{
		{Name: "orchidée", Names: []string{"orchidée", "orchid"}, Categories: []string{"ornemental", "export"}},
		{Name: "rose", Names: []string{"rose"}, Categories: []string{"ornemental"}},
		{Name: "lys", Names: []string{"lys", "lily"}, Categories: []string{"ornemental"}},
		{Name: "protea", Names: []string{"protea"}, Categories: []string{"ornemental", "export"}},
		{Name: "gerbera", Names: []string{"gerbera"}, Categories: []string{"ornemental"}},
	}},
}

// Details returns the catalog entry matching a canonical name or alias,
// or nil when unknown.
func Details(name string) *Product {
	lower := strings.ToLower(name)
	for _, b := range buckets {
		for i := range b.Products {
			p := &b.Products[i]
			if p.Name == name {
				return p
			}
			for _, alias := range p.Names {
				if alias == lower {
					return p
				}
			}
		}
	}
	return nil
}

// ByCategory returns the products of one category bucket.
func ByCategory(name string) []Product {
	for _, b := range buckets {
		if b.Name == name {
			return b.Products
		}
	}
	return nil
}

// ExtractMentions scans text case-insensitively against every alias
// and returns the canonical names of matched products.
func ExtractMentions(text string) []string {
	lower := strings.ToLower(text)
	var mentioned []string
	for _, b := range buckets {
		for _, p := range b.Products {
			for _, alias := range p.Names {
				if strings.Contains(lower, strings.ToLower(alias)) {
					mentioned = append(mentioned, p.Name)
					break
				}
			}
		}
	}
	return mentioned
}

// bucketOf finds the bucket name containing a canonical product name.
func bucketOf(name string) (string, []Product) {
	for _, b := range buckets {
		for _, p := range b.Products {
			if p.Name == name {
				return b.Name, b.Products
			}
		}
	}
	return "", nil
}
