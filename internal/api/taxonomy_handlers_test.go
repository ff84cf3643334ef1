package api

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentdex/agentdex-server/internal/service"
	"github.com/agentdex/agentdex-server/internal/taxonomy"
)

func TestGetTaxonomyTree(t *testing.T) {
	_, api := setupTestServer(t)

	for _, typ := range []string{"skill", "domain"} {
		resp := api.Get("/api/v1/taxonomy/" + typ)
		require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())

		var body TaxonomyTreeResponse
		require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
		assert.Equal(t, typ, body.Type)
		assert.Equal(t, taxonomy.Version, body.Version)
		assert.NotEmpty(t, body.Categories)
	}
}

func TestGetTaxonomyTree_BadType(t *testing.T) {
	_, api := setupTestServer(t)

	resp := api.Get("/api/v1/taxonomy/flavors")
	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code, resp.Body.String())
}

func TestResolveTaxonomySlug(t *testing.T) {
	_, api := setupTestServer(t)

	resp := api.Get("/api/v1/taxonomy/skill/resolve?slug=trading/arbitrage")
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())

	var tag service.ResolvedTag
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &tag))
	assert.True(t, tag.Known)
	assert.Equal(t, "Trading > Arbitrage", tag.Label)
}

func TestResolveTaxonomySlug_UnknownGetsFallbackLabel(t *testing.T) {
	_, api := setupTestServer(t)

	resp := api.Get("/api/v1/taxonomy/skill/resolve?slug=unknown_skill")
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())

	var tag service.ResolvedTag
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &tag))
	assert.False(t, tag.Known)
	assert.Equal(t, "Unknown Skill", tag.Label)
}

func TestResolveTaxonomySlug_MissingSlug(t *testing.T) {
	_, api := setupTestServer(t)

	resp := api.Get("/api/v1/taxonomy/skill/resolve")
	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code, resp.Body.String())
}

func TestSearchTaxonomy(t *testing.T) {
	_, api := setupTestServer(t)

	resp := api.Get("/api/v1/taxonomy/domain/search?q=fin")
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())

	var body SearchTaxonomyResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	require.NotEmpty(t, body.Categories)

	found := false
	for _, c := range body.Categories {
		if c.Slug == "finance" {
			found = true
		}
	}
	assert.True(t, found, "finance should match query %q", "fin")
}

func TestSearchTaxonomy_EmptyQuery(t *testing.T) {
	_, api := setupTestServer(t)

	resp := api.Get("/api/v1/taxonomy/domain/search")
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())

	var body SearchTaxonomyResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Empty(t, body.Categories)
}

func TestExpandTaxonomySlug(t *testing.T) {
	_, api := setupTestServer(t)

	resp := api.Get("/api/v1/taxonomy/skill/expand?slug=trading")
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())

	var body ExpandSlugResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	require.NotEmpty(t, body.Slugs)
	assert.Equal(t, "trading", body.Slugs[0])
	assert.Contains(t, body.Slugs, "trading/arbitrage")
}

func TestExpandTaxonomySlug_Unknown(t *testing.T) {
	_, api := setupTestServer(t)

	resp := api.Get("/api/v1/taxonomy/skill/expand?slug=nonexistent")
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())

	var body ExpandSlugResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Empty(t, body.Slugs)
}
