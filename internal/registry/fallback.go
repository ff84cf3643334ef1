package registry

import (
	"strings"
	"time"

	"github.com/agentdex/agentdex-server/internal/domain"
	"github.com/agentdex/agentdex-server/internal/taxonomy"
)

// FallbackAgents returns the static dataset served when the backend
// registry is unreachable. It mirrors the wire shape of real registry
// responses so the browsing UI behaves identically against it.
func FallbackAgents() []domain.Agent {
	registered := func(s string) time.Time {
		t, _ := time.Parse(time.RFC3339, s)
		return t
	}

	return []domain.Agent{
		{
			ID:          "agent-0x3f21",
			ChainID:     1,
			Address:     "0x3f21ab90c44e8d6f1a7e2b9c8d5e4f3a2b1c0d9e",
			Name:        "Lexica",
			Description: "Multilingual document translation and summarization for DAOs.",
			Skills:      []string{"natural_language_processing/translation", "natural_language_processing/summarization"},
			Domains:     []string{"governance/dao_operations"},
			Status:      domain.AgentStatusActive,
			Version:     "2.4.1",
			RegisteredAt: registered("2025-01-14T09:30:00Z"),
		},
		{
			ID:          "agent-0x81c4",
			ChainID:     1,
			Address:     "0x81c4f2ae7b90d3c5e6f1a2b3c4d5e6f708192a3b",
			Name:        "DeltaQuant",
			Description: "Market-making and arbitrage across major DEX venues.",
			Skills:      []string{"trading/market_making", "trading/arbitrage"},
			Domains:     []string{"finance/defi"},
			Status:      domain.AgentStatusActive,
			Version:     "1.9.0",
			RegisteredAt: registered("2024-11-02T17:05:00Z"),
		},
		{
			ID:          "agent-0xa7e9",
			ChainID:     100,
			Address:     "0xa7e9c1d2b3f4a5e6d7c8b9a0f1e2d3c4b5a69788",
			Name:        "Sentinel",
			Description: "Continuous smart contract monitoring with anomaly alerts.",
			Skills:      []string{"automation/monitoring", "data_analysis/anomaly_detection"},
			Domains:     []string{"technology/cybersecurity", "technology/blockchain"},
			Status:      domain.AgentStatusActive,
			Version:     "3.1.2",
			RegisteredAt: registered("2024-08-21T11:48:00Z"),
		},
		{
			ID:          "agent-0x5b07",
			ChainID:     137,
			Address:     "0x5b07d9e8f7a6b5c4d3e2f1a0b9c8d7e6f5a4b3c2",
			Name:        "Curator",
			Description: "Content curation and community moderation for token communities.",
			Skills:      []string{"social/moderation", "social/community_management"},
			Domains:     []string{"media/gaming"},
			Status:      domain.AgentStatusInactive,
			Version:     "0.9.3",
			RegisteredAt: registered("2025-03-30T22:12:00Z"),
		},
		{
			ID:          "agent-0xcc18",
			ChainID:     8453,
			Address:     "0xcc18a2b3c4d5e6f708192a3b4c5d6e7f80912a3b",
			Name:        "Oraculum",
			Description: "Price and weather oracle feeds with on-chain attestation.",
			Skills:      []string{"smart_contracts/oracle_services"},
			Domains:     []string{"technology/blockchain", "science/climate"},
			Status:      domain.AgentStatusActive,
			Version:     "4.0.0",
			RegisteredAt: registered("2024-06-17T08:00:00Z"),
		},
		{
			ID:          "agent-0x94d2",
			ChainID:     42161,
			Address:     "0x94d2e3f4a5b6c7d8e9f0a1b2c3d4e5f6a7b8c9d0",
			Name:        "Scribe",
			Description: "Long-form report generation from on-chain activity data.",
			Skills:      []string{"natural_language_processing/text_generation", "data_analysis/data_visualization"},
			Domains:     []string{"finance/asset_management"},
			Status:      domain.AgentStatusActive,
			Version:     "1.2.7",
			RegisteredAt: registered("2025-05-09T13:25:00Z"),
		},
		{
			ID:          "agent-0x2ef6",
			ChainID:     10,
			Address:     "0x2ef6a1b2c3d4e5f6a7b8c9d0e1f2a3b4c5d6e7f8",
			Name:        "Triage",
			Description: "Preliminary diagnostic triage from structured patient intake.",
			Skills:      []string{"natural_language_processing/question_answering", "planning/task_decomposition"},
			Domains:     []string{"healthcare/diagnostics"},
			Status:      domain.AgentStatusActive,
			Version:     "0.6.1",
			RegisteredAt: registered("2025-02-27T19:40:00Z"),
		},
		{
			ID:          "agent-0x70aa",
			ChainID:     1,
			Address:     "0x70aab1c2d3e4f5a6b7c8d9e0f1a2b3c4d5e6f7a8",
			Name:        "Ledgerly",
			Description: "Automated treasury rebalancing and reporting for DAOs.",
			Skills:      []string{"trading/portfolio_management", "automation/scheduling"},
			Domains:     []string{"governance/treasury_management", "finance"},
			Status:      domain.AgentStatusActive,
			Version:     "2.0.4",
			RegisteredAt: registered("2024-12-05T06:55:00Z"),
		},
		{
			ID:          "agent-0x46b3",
			ChainID:     137,
			Address:     "0x46b3c4d5e6f708192a3b4c5d6e7f80912a3b4c5d",
			Name:        "Courier",
			Description: "Shipment tracking and supply chain exception handling.",
			Skills:      []string{"automation/workflow_orchestration", "automation/notification"},
			Domains:     []string{"commerce/supply_chain"},
			Status:      domain.AgentStatusInactive,
			Version:     "1.1.0",
			RegisteredAt: registered("2024-09-13T15:10:00Z"),
		},
		{
			ID:          "agent-0xe1c0",
			ChainID:     8453,
			Address:     "0xe1c0d1e2f3a4b5c6d7e8f9a0b1c2d3e4f5a6b7c8",
			Name:        "Refactor",
			Description: "Automated code review and vulnerability scanning for Solidity.",
			Skills:      []string{"code_generation", "smart_contracts/contract_auditing"},
			Domains:     []string{"technology/developer_tools"},
			Status:      domain.AgentStatusActive,
			Version:     "5.2.0",
			RegisteredAt: registered("2025-04-18T10:02:00Z"),
		},
		{
			ID:          "agent-0x88f1",
			ChainID:     11155111,
			Address:     "0x88f1a2b3c4d5e6f708192a3b4c5d6e7f80912a3b",
			Name:        "Polyglot",
			Description: "Test-network language tutor with spaced repetition scheduling.",
			Skills:      []string{"natural_language_processing/translation", "speech/speech_synthesis"},
			Domains:     []string{"education/language_learning"},
			Status:      domain.AgentStatusActive,
			Version:     "0.3.0",
			RegisteredAt: registered("2025-06-01T12:00:00Z"),
		},
		{
			ID:          "agent-0x1d9e",
			ChainID:     100,
			Address:     "0x1d9ea0b1c2d3e4f5a6b7c8d9e0f1a2b3c4d5e6f7",
			Name:        "GridWatch",
			Description: "Demand forecasting and settlement for community energy pools.",
			Skills:      []string{"data_analysis/forecasting"},
			Domains:     []string{"energy/grid_management", "energy/carbon_markets"},
			Status:      domain.AgentStatusActive,
			Version:     "1.5.3",
			RegisteredAt: registered("2024-10-29T07:33:00Z"),
		},
	}
}

// FilterFallback applies SearchParams to the fallback dataset with the
// same semantics the backend registry implements: plain substring match
// for the free-text query, ancestor/descendant-aware taxonomy matching
// for skill and domain selections, exact match for chain and status.
// Results keep dataset order; no relevance ranking is applied.
func FilterFallback(agents []domain.Agent, params SearchParams) *SearchResult {
	query := strings.ToLower(strings.TrimSpace(params.Query))

	var matched []domain.Agent
	for _, a := range agents {
		if query != "" &&
			!strings.Contains(strings.ToLower(a.Name), query) &&
			!strings.Contains(strings.ToLower(a.Description), query) {
			continue
		}
		if len(params.Skills) > 0 && !taxonomy.MatchesAny(a.Skills, params.Skills) {
			continue
		}
		if len(params.Domains) > 0 && !taxonomy.MatchesAny(a.Domains, params.Domains) {
			continue
		}
		if params.ChainID > 0 && a.ChainID != params.ChainID {
			continue
		}
		if params.Status != "" && string(a.Status) != params.Status {
			continue
		}
		matched = append(matched, a)
	}

	total := len(matched)

	// Page after filtering, mirroring the backend's offset/limit behavior.
	offset := params.Offset
	if offset > total {
		offset = total
	}
	matched = matched[offset:]

	limit := params.Limit
	if limit <= 0 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	if len(matched) > limit {
		matched = matched[:limit]
	}

	return &SearchResult{Agents: matched, Total: total}
}

// FindFallback returns the fallback agent with the given chain and ID,
// or nil when absent.
func FindFallback(agents []domain.Agent, chainID int, agentID string) *domain.Agent {
	for i := range agents {
		if agents[i].ChainID == chainID && agents[i].ID == agentID {
			return &agents[i]
		}
	}
	return nil
}
