package catalog

import "time"

// SeasonGroup lists products in season for one month, by display category.
type SeasonGroup struct {
	Products []string
	Category string
}

// Madagascar growing calendar, keyed by French month name.
var seasonalProducts = map[string][]SeasonGroup{
	"janvier": {
		{Products: []string{"litchi", "mangue verte"}, Category: "fruits"},
		{Products: []string{"tomate", "piment", "aubergine"}, Category: "légumes"},
		{Products: []string{"riz", "manioc"}, Category: "céréales"},
		{Products: []string{"vanille (récolte)"}, Category: "export"},
	},
	"février": {
		{Products: []string{"litchi", "mangue", "avocat"}, Category: "fruits"},
		{Products: []string{"haricot vert", "carotte", "chou"}, Category: "légumes"},
		{Products: []string{"riz (récolte)"}, Category: "céréales"},
	},
	"mars": {
		{Products: []string{"mangue", "ananas", "banane"}, Category: "fruits"},
		{Products: []string{"patate douce", "igname", "tomate"}, Category: "tubercules"},
		{Products: []string{"café (récolte)"}, Category: "export"},
	},
	"avril": {
		{Products: []string{"mangue", "citron", "papaye"}, Category: "fruits"},
		{Products: []string{"carotte", "oignon", "ail"}, Category: "légumes"},
		{Products: []string{"maïs"}, Category: "céréales"},
	},
	"mai": {
		{Products: []string{"orange", "mandarine", "pamplemousse"}, Category: "agrumes"},
		{Products: []string{"pomme de terre", "chou", "poireau"}, Category: "légumes"},
		{Products: []string{"vanille (préparation)"}, Category: "export"},
	},
	"juin": {
		{Products: []string{"litchi d'hiver", "grenadille", "kaki"}, Category: "fruits"},
		{Products: []string{"ail", "gingembre", "curcuma"}, Category: "tubercules"},
		{Products: []string{"laitue", "épinard"}, Category: "légumes-feuilles"},
	},
	"juillet": {
		{Products: []string{"grenadille", "fruit de la passion", "corossol"}, Category: "fruits"},
		{Products: []string{"poireau", "navet", "betterave"}, Category: "légumes"},
		{Products: []string{"clou de girofle"}, Category: "export"},
	},
	"août": {
		{Products: []string{"fraise", "framboise", "myrtille"}, Category: "petits fruits"},
		{Products: []string{"betterave", "céleri", "radis"}, Category: "légumes"},
		{Products: []string{"cacao"}, Category: "export"},
	},
	"septembre": {
		{Products: []string{"raisin", "figue", "prune"}, Category: "fruits"},
		{Products: []string{"aubergine", "courgette", "poivron"}, Category: "légumes"},
		{Products: []string{"thé"}, Category: "export"},
	},
	"octobre": {
		{Products: []string{"papaye", "goyave", "noix de coco"}, Category: "fruits tropicaux"},
		{Products: []string{"maïs", "poivron", "concombre"}, Category: "légumes"},
		{Products: []string{"girofle", "vanille", "poivre"}, Category: "épices-export"},
	},
	"novembre": {
		{Products: []string{"mangue précoce", "pastèque", "melon"}, Category: "fruits"},
		{Products: []string{"concombre", "salade", "tomate cerise"}, Category: "légumes"},
		{Products: []string{"clou de girofle", "café", "cacao"}, Category: "export"},
	},
	"décembre": {
		{Products: []string{"litchi", "mangue", "ananas"}, Category: "fruits"},
		{Products: []string{"tomate cerise", "herbes aromatiques", "piment"}, Category: "légumes-aromatiques"},
		{Products: []string{"litchi (export)", "vanille", "huiles essentielles"}, Category: "export"},
	},
}

var frenchMonths = map[time.Month]string{
	time.January:   "janvier",
	time.February:  "février",
	time.March:     "mars",
	time.April:     "avril",
	time.May:       "mai",
	time.June:      "juin",
	time.July:      "juillet",
	time.August:    "août",
	time.September: "septembre",
	time.October:   "octobre",
	time.November:  "novembre",
	time.December:  "décembre",
}

// MonthName renders a month the way the seasonal table is keyed.
func MonthName(m time.Month) string {
	return frenchMonths[m]
}

// SeasonalFor flattens the seasonal table for a month. Unknown months
// fall back to janvier.
func SeasonalFor(month string) []string {
	groups, ok := seasonalProducts[month]
	if !ok {
		groups = seasonalProducts["janvier"]
	}
	var products []string
	for _, g := range groups {
		products = append(products, g.Products...)
	}
	return products
}

// Extended substitution table consulted before category-mates.
var productAlternatives = map[string][]string{
	"riz":            {"riz rouge", "riz blanc", "riz parfumé", "riz gluant", "maïs", "blé", "quinoa", "sorgho"},
	"maïs":           {"riz", "blé", "sorgho", "millet"},
	"blé":            {"riz", "maïs", "avoine", "orge"},
	"tomate":         {"tomate cerise", "tomate ronde", "tomate allongée", "aubergine", "poivron", "courgette"},
	"oignon":         {"oignon rouge", "oignon blanc", "échalote", "ail", "poireau"},
	"pomme de terre": {"patate douce", "igname", "manioc", "taro"},
	"carotte":        {"betterave", "navet", "radis", "panais"},
	"mangue":         {"papaye", "goyave", "ananas", "avocat"},
	"litchi":         {"ramboutan", "longane", "fruit de la passion", "grenadille"},
	"banane":         {"plantain", "banane douce", "banane plantain", "fruit de la passion"},
	"viande de zébu": {"poulet", "porc", "agneau", "chèvre", "lapin"},
	"poulet":         {"canard", "dinde", "pintade", "viande de zébu"},
	"poisson frais":  {"crevette", "crabe", "calamar", "poulpe"},
	"vanille":        {"extrait de vanille", "vanille en gousse", "vanille bourbon", "arôme vanille"},
	"café":           {"café arabica", "café robusta", "café moka", "café bio"},
	"cacao":          {"chocolat", "poudre de cacao", "beurre de cacao", "fèves de cacao"},
	"girofle":        {"clou de girofle moulu", "girofle entier", "huile de girofle"},
	"haricot sec":    {"lentille", "pois chiche", "soja", "arachide"},
	"lentille":       {"haricot sec", "pois cassé", "pois chiche"},
	"lait":           {"lait en poudre", "lait UHT", "lait frais", "lait de soja"},
	"fromage":        {"fromage frais", "fromage affiné", "yaourt", "fromage blanc"},
}
