package registry

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentdex/agentdex-server/internal/domain"
	"github.com/agentdex/agentdex-server/internal/taxonomy"
)

// Every fallback agent's tags must resolve against the shipped taxonomy;
// the dataset exists to exercise the same display paths as live data.
func TestFallbackAgents_TagsResolve(t *testing.T) {
	tax := taxonomy.Default()

	for _, a := range FallbackAgents() {
		for _, s := range a.Skills {
			assert.NotNil(t, tax.Resolve(s, taxonomy.TypeSkill), "agent %s skill %q", a.ID, s)
		}
		for _, d := range a.Domains {
			assert.NotNil(t, tax.Resolve(d, taxonomy.TypeDomain), "agent %s domain %q", a.ID, d)
		}
		require.NotNil(t, domain.ChainByID(a.ChainID), "agent %s chain %d", a.ID, a.ChainID)
	}
}

func TestFilterFallback_NoParamsReturnsAll(t *testing.T) {
	agents := FallbackAgents()
	result := FilterFallback(agents, SearchParams{})

	assert.Equal(t, len(agents), result.Total)
	assert.Len(t, result.Agents, len(agents))
}

func TestFilterFallback_QuerySubstring(t *testing.T) {
	result := FilterFallback(FallbackAgents(), SearchParams{Query: "ORACLE"})

	require.NotEmpty(t, result.Agents)
	for _, a := range result.Agents {
		mentions := strings.Contains(strings.ToLower(a.Name), "oracle") ||
			strings.Contains(strings.ToLower(a.Description), "oracle")
		assert.True(t, mentions, "agent %s does not mention the query", a.ID)
	}
}

func TestFilterFallback_SkillParentCoversChildren(t *testing.T) {
	// Selecting the "trading" parent must match agents tagged with any
	// trading child skill.
	result := FilterFallback(FallbackAgents(), SearchParams{Skills: []string{"trading"}})

	var ids []string
	for _, a := range result.Agents {
		ids = append(ids, a.ID)
	}
	assert.Contains(t, ids, "agent-0x81c4") // trading/market_making
	assert.Contains(t, ids, "agent-0x70aa") // trading/portfolio_management
	assert.NotContains(t, ids, "agent-0x3f21")
}

func TestFilterFallback_DomainChildSelection(t *testing.T) {
	result := FilterFallback(FallbackAgents(), SearchParams{Domains: []string{"finance/defi"}})

	require.Len(t, result.Agents, 1)
	assert.Equal(t, "agent-0x81c4", result.Agents[0].ID)
}

func TestFilterFallback_ChainAndStatus(t *testing.T) {
	result := FilterFallback(FallbackAgents(), SearchParams{ChainID: 137, Status: "inactive"})

	require.Len(t, result.Agents, 1)
	assert.Equal(t, "agent-0x5b07", result.Agents[0].ID)
}

func TestFilterFallback_Paging(t *testing.T) {
	agents := FallbackAgents()

	page1 := FilterFallback(agents, SearchParams{Limit: 5})
	page2 := FilterFallback(agents, SearchParams{Limit: 5, Offset: 5})

	assert.Len(t, page1.Agents, 5)
	assert.Len(t, page2.Agents, 5)
	assert.Equal(t, len(agents), page1.Total)
	assert.NotEqual(t, page1.Agents[0].ID, page2.Agents[0].ID)

	// Offset beyond the dataset yields an empty page, not an error.
	beyond := FilterFallback(agents, SearchParams{Offset: 1000})
	assert.Empty(t, beyond.Agents)
	assert.Equal(t, len(agents), beyond.Total)
}

func TestFilterFallback_Deterministic(t *testing.T) {
	params := SearchParams{Domains: []string{"technology"}}

	first := FilterFallback(FallbackAgents(), params)
	second := FilterFallback(FallbackAgents(), params)
	assert.Equal(t, first, second)
}

func TestFindFallback(t *testing.T) {
	agents := FallbackAgents()

	found := FindFallback(agents, 1, "agent-0x3f21")
	require.NotNil(t, found)
	assert.Equal(t, "Lexica", found.Name)

	assert.Nil(t, FindFallback(agents, 1, "agent-unknown"))
	assert.Nil(t, FindFallback(agents, 999, "agent-0x3f21"))
}
