package taxonomy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearch_MatchesNameAndSlug(t *testing.T) {
	tax := testTaxonomy(t)

	// "things" appears only in the name "Internet of Things".
	byName := tax.Search("things", TypeDomain)
	require.Len(t, byName, 1)
	assert.Equal(t, "iot", byName[0].Slug)

	// "iot" appears only in the slug.
	bySlug := tax.Search("iot", TypeDomain)
	require.Len(t, bySlug, 1)
	assert.Equal(t, "iot", bySlug[0].Slug)
}

func TestSearch_CaseInsensitive(t *testing.T) {
	tax := testTaxonomy(t)

	assert.Equal(t, tax.Search("BLOCKCHAIN", TypeDomain), tax.Search("blockchain", TypeDomain))
}

func TestSearch_EmptyQuery(t *testing.T) {
	tax := testTaxonomy(t)

	assert.Empty(t, tax.Search("", TypeDomain))
	assert.Empty(t, tax.Search("   \t\n", TypeDomain))
}

func TestSearch_NoMatch(t *testing.T) {
	tax := testTaxonomy(t)

	assert.Empty(t, tax.Search("astrology", TypeDomain))
}

func TestSearch_ParentAndChildTestedIndependently(t *testing.T) {
	tax := testTaxonomy(t)

	// The query matches the parent slug only; children are not dragged in.
	results := tax.Search("technology", TypeDomain)
	require.Len(t, results, 1)
	assert.Equal(t, "technology", results[0].Slug)

	// And a child match does not drag in its parent.
	results = tax.Search("blockchain", TypeDomain)
	require.Len(t, results, 1)
	assert.Equal(t, "blockchain", results[0].Slug)
}

func TestSearch_TreeOrder(t *testing.T) {
	tax := testTaxonomy(t)

	// "t" matches several categories; order must follow the tree walk.
	results := tax.Search("t", TypeDomain)
	var slugs []string
	for _, c := range results {
		slugs = append(slugs, c.Slug)
	}
	assert.Equal(t, []string{"technology", "iot", "healthcare"}, slugs)
}

func TestSearch_PartialSlugOnShippedTree(t *testing.T) {
	tax := Default()

	results := tax.Search("natural_language", TypeSkill)
	require.NotEmpty(t, results)
	assert.Equal(t, "Natural Language Processing", results[0].Name)
}
