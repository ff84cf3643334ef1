package taxonomy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve_TopLevel(t *testing.T) {
	tax := testTaxonomy(t)

	item := tax.Resolve("technology", TypeDomain)
	require.NotNil(t, item)
	assert.Equal(t, "technology", item.Slug)
	assert.Equal(t, "Technology", item.Name)
	assert.Equal(t, "Technology", item.FullPath)
	assert.Empty(t, item.ParentName)
	assert.Nil(t, item.Parent)
}

func TestResolve_Child(t *testing.T) {
	tax := testTaxonomy(t)

	item := tax.Resolve("technology/blockchain", TypeDomain)
	require.NotNil(t, item)
	assert.Equal(t, "technology/blockchain", item.Slug)
	assert.Equal(t, "Blockchain", item.Name)
	assert.Equal(t, "Technology", item.ParentName)
	assert.Equal(t, "Technology > Blockchain", item.FullPath)
	require.NotNil(t, item.Parent)
	assert.Equal(t, "technology", item.Parent.Slug)
}

func TestResolve_CaseInsensitive(t *testing.T) {
	tax := testTaxonomy(t)

	lower := tax.Resolve("technology", TypeDomain)
	upper := tax.Resolve("TECHNOLOGY", TypeDomain)
	require.NotNil(t, lower)
	require.NotNil(t, upper)
	assert.Same(t, lower.Category, upper.Category)
	assert.Equal(t, lower.FullPath, upper.FullPath)

	// The echoed slug preserves the caller's casing.
	assert.Equal(t, "TECHNOLOGY", upper.Slug)
}

func TestResolve_TrimsWhitespace(t *testing.T) {
	tax := testTaxonomy(t)

	item := tax.Resolve("  technology/iot \n", TypeDomain)
	require.NotNil(t, item)
	assert.Equal(t, "technology/iot", item.Slug)
	assert.Equal(t, "Internet of Things", item.Name)
}

func TestResolve_UnknownSlug(t *testing.T) {
	tax := testTaxonomy(t)

	assert.Nil(t, tax.Resolve("unknown_skill", TypeSkill))
	assert.Nil(t, tax.Resolve("", TypeSkill))
	assert.Nil(t, tax.Resolve("technology/nonexistent", TypeDomain))
}

func TestResolve_TypesAreIndependent(t *testing.T) {
	tax := testTaxonomy(t)

	// "trading" exists only in the skill tree.
	assert.NotNil(t, tax.Resolve("trading", TypeSkill))
	assert.Nil(t, tax.Resolve("trading", TypeDomain))

	assert.Nil(t, tax.Resolve("technology", Type("genre")))
}

func TestResolve_Deterministic(t *testing.T) {
	tax := testTaxonomy(t)

	first := tax.Resolve("natural_language_processing/translation", TypeSkill)
	second := tax.Resolve("natural_language_processing/translation", TypeSkill)
	require.NotNil(t, first)
	assert.Equal(t, first, second)
}
