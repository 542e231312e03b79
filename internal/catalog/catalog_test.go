package catalog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetails(t *testing.T) {
	product := Details("tomate")
	require.NotNil(t, product)
	assert.Equal(t, "tomate", product.Name)
	assert.Contains(t, product.Categories, "légume")

	// Malagasy alias resolves to the canonical entry.
	assert.Equal(t, product, Details("voatabia"))

	assert.Nil(t, Details("licorne"))
}

func TestByCategory(t *testing.T) {
	cereals := ByCategory("cereals")
	require.NotEmpty(t, cereals)
	assert.Equal(t, "riz", cereals[0].Name)

	assert.Nil(t, ByCategory("minerals"))
}

func TestExtractMentions(t *testing.T) {
	mentioned := ExtractMentions("Je veux des TOMATES et du riz")
	assert.Contains(t, mentioned, "tomate")
	assert.Contains(t, mentioned, "riz")
	assert.NotContains(t, mentioned, "mangue")

	assert.Empty(t, ExtractMentions("oui merci beaucoup"))
}

func TestSeasonalFor(t *testing.T) {
	december := SeasonalFor("décembre")
	assert.Contains(t, december, "litchi")
	assert.Contains(t, december, "vanille")

	// Unknown months fall back to janvier.
	assert.Equal(t, SeasonalFor("janvier"), SeasonalFor("smarch"))
}

func TestMonthName(t *testing.T) {
	assert.Equal(t, "janvier", MonthName(time.January))
	assert.Equal(t, "décembre", MonthName(time.December))
	assert.Equal(t, "août", MonthName(time.August))
}

func TestAlternatives(t *testing.T) {
	alts := Alternatives("tomate")
	require.NotEmpty(t, alts)
	assert.LessOrEqual(t, len(alts), 6)
	assert.Contains(t, alts, "aubergine")

	// Curated entries win over category-mates.
	assert.Contains(t, Alternatives("litchi"), "ramboutan")

	assert.Nil(t, Alternatives("licorne"))
}

func TestUnitFor(t *testing.T) {
	assert.Equal(t, "kg", UnitFor("riz"))
	assert.Equal(t, "kg ou cagette", UnitFor("tomate"))
	assert.Equal(t, "ml ou litre", UnitFor("huile essentielle"))
	assert.Equal(t, "unité", UnitFor("objet inconnu"))
}

func TestPriceRange(t *testing.T) {
	assert.Contains(t, PriceRange("tomate", "fr"), "MGA")
	assert.Contains(t, PriceRange("tomate", "mg"), "Ar")
	assert.Contains(t, PriceRange("tomate", "en"), "USD")

	assert.Equal(t, "Prix sur demande", PriceRange("licorne", "fr"))
	assert.Equal(t, "Price on request", PriceRange("licorne", "en"))
	assert.Equal(t, "Vidiny araka ny fangatahana", PriceRange("licorne", "mg"))
}

func TestSuggestionsMentionedFirst(t *testing.T) {
	suggestions := Suggestions("product_inquiry", []string{"tomate"}, "fr", "janvier")
	require.Len(t, suggestions, 3)

	first := suggestions[0]
	assert.Equal(t, "tomate", first.Name)
	assert.Equal(t, "légume", first.Category)
	assert.Equal(t, "De saison", first.Seasonality)
	assert.True(t, first.Available)
	assert.Equal(t, "kg ou cagette", first.Unit)
	assert.Contains(t, first.PriceRange, "MGA")
	assert.LessOrEqual(t, len(first.Alternatives), 3)
}

func TestSuggestionsExportIntent(t *testing.T) {
	suggestions := Suggestions("export_inquiry", nil, "en", "juin")
	require.Len(t, suggestions, 3)
	assert.Equal(t, "vanille", suggestions[0].Name)
	assert.Equal(t, "export", suggestions[0].Category)
	assert.False(t, suggestions[1].Available, "litchi is out of season in juin")
}

func TestSuggestionsSkipsUnknownMentions(t *testing.T) {
	suggestions := Suggestions("general_query", []string{"licorne"}, "fr", "janvier")
	require.Len(t, suggestions, 3)
	assert.NotEqual(t, "licorne", suggestions[0].Name)
}
