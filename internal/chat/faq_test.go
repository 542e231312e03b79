package chat

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFaqLookupContact(t *testing.T) {
	cache := NewFaqCache(newTestStore(t))
	ctx := context.Background()

	response, err := cache.Lookup(ctx, "Comment puis-je vous contacter ?", "fr")
	require.NoError(t, err)
	assert.Contains(t, response, "+261 34 11 815 03")
	assert.Equal(t, 1, cache.Count(ctx))

	// Identical question is served from the cache, not recomputed.
	again, err := cache.Lookup(ctx, "Comment puis-je vous contacter ?", "fr")
	require.NoError(t, err)
	assert.Equal(t, response, again)
	assert.Equal(t, 1, cache.Count(ctx))
}

func TestFaqLookupProductList(t *testing.T) {
	cache := NewFaqCache(newTestStore(t))
	ctx := context.Background()

	response, err := cache.Lookup(ctx, "Quelle est la liste de vos articles ?", "en")
	require.NoError(t, err)
	assert.Contains(t, response, "PRODUCTS AVAILABLE ON TANTSAHAMARKET")
}

func TestFaqLookupMiss(t *testing.T) {
	cache := NewFaqCache(newTestStore(t))
	ctx := context.Background()

	response, err := cache.Lookup(ctx, "Je cherche quelque chose de spécial", "fr")
	require.NoError(t, err)
	assert.Empty(t, response, "unmatched questions go to the model")
	assert.Zero(t, cache.Count(ctx))
}

func TestFaqLookupLanguageFallback(t *testing.T) {
	cache := NewFaqCache(newTestStore(t))
	ctx := context.Background()

	response, err := cache.Lookup(ctx, "contact", "de")
	require.NoError(t, err)
	assert.Equal(t, contactResponses["fr"], response)
}

func TestOwnershipResponse(t *testing.T) {
	assert.Contains(t, OwnershipResponse("fr"), "TantsahaMarket")
	assert.Contains(t, OwnershipResponse("mg"), "TantsahaMarket")
	assert.Contains(t, OwnershipResponse("en"), "TantsahaMarket")
	assert.Equal(t, ownershipResponses["fr"], OwnershipResponse("xx"))
}

func TestFallbackResponse(t *testing.T) {
	assert.Contains(t, FallbackResponse("fr"), "+261 34 11 815 03")
	assert.Equal(t, fallbackResponses["fr"], FallbackResponse(""))
}
