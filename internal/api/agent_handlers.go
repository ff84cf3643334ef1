package api

import (
	"context"
	"net/http"
	"strings"

	"github.com/danielgtaylor/huma/v2"

	"github.com/agentdex/agentdex-server/internal/domain"
	domainerrors "github.com/agentdex/agentdex-server/internal/errors"
	"github.com/agentdex/agentdex-server/internal/registry"
	"github.com/agentdex/agentdex-server/internal/service"
	"github.com/agentdex/agentdex-server/internal/taxonomy"
)

func (s *Server) registerAgentRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "listAgents",
		Method:      http.MethodGet,
		Path:        "/api/v1/agents",
		Summary:     "List agents",
		Description: "Searches the agent registry with optional taxonomy filters",
		Tags:        []string{"Agents"},
	}, s.handleListAgents)

	huma.Register(s.api, huma.Operation{
		OperationID: "getAgent",
		Method:      http.MethodGet,
		Path:        "/api/v1/agents/{chainID}/{id}",
		Summary:     "Get agent",
		Description: "Returns one agent with resolved taxonomy labels",
		Tags:        []string{"Agents"},
	}, s.handleGetAgent)

	huma.Register(s.api, huma.Operation{
		OperationID: "compareAgents",
		Method:      http.MethodPost,
		Path:        "/api/v1/agents/compare",
		Summary:     "Compare agents",
		Description: "Returns a side-by-side comparison of 2 to 4 agents",
		Tags:        []string{"Agents"},
	}, s.handleCompareAgents)
}

// === DTOs ===

type ListAgentsInput struct {
	Query   string `query:"q" maxLength:"200" doc:"Free-text query on name and description"`
	Skills  string `query:"skills" doc:"Skill filter, comma-separated composite slugs"`
	Domains string `query:"domains" doc:"Domain filter, comma-separated composite slugs"`
	ChainID int    `query:"chain" minimum:"0" doc:"Restrict to one chain ID"`
	Status  string `query:"status" doc:"Restrict to one agent status: active or inactive"`
	Limit   int    `query:"limit" minimum:"0" maximum:"100" doc:"Page size (default 25, max 100)"`
	Offset  int    `query:"offset" minimum:"0" doc:"Page offset"`
}

type ListAgentsResponse struct {
	Agents []domain.Agent `json:"agents" doc:"Matching agents"`
	Total  int            `json:"total" doc:"Total matches before paging"`
	Source string         `json:"source" doc:"Where the page came from: registry or fallback"`
}

type ListAgentsOutput struct {
	Body ListAgentsResponse
}

type GetAgentInput struct {
	ChainID int    `path:"chainID" doc:"Chain ID"`
	ID      string `path:"id" doc:"Agent ID"`
}

type AgentDetailOutput struct {
	Body service.AgentDetail
}

type CompareAgentsRequest struct {
	Agents []domain.Ref `json:"agents" minItems:"2" maxItems:"4" doc:"Agents to compare"`
}

type CompareAgentsInput struct {
	Body CompareAgentsRequest
}

type CompareAgentsOutput struct {
	Body service.Comparison
}

// === Handlers ===

func (s *Server) handleListAgents(ctx context.Context, input *ListAgentsInput) (*ListAgentsOutput, error) {
	skills := splitList(input.Skills)
	domains := splitList(input.Domains)

	if err := s.validateSelection(skills, domains); err != nil {
		return nil, err
	}
	if input.ChainID != 0 && domain.ChainByID(input.ChainID) == nil {
		return nil, domainerrors.Validationf("unsupported chain %d", input.ChainID)
	}
	if input.Status != "" && !domain.AgentStatus(input.Status).Valid() {
		return nil, domainerrors.Validationf("unknown agent status %q", input.Status)
	}

	page, err := s.services.Agent.Search(ctx, registry.SearchParams{
		Query:   input.Query,
		Skills:  skills,
		Domains: domains,
		ChainID: input.ChainID,
		Status:  input.Status,
		Limit:   input.Limit,
		Offset:  input.Offset,
	})
	if err != nil {
		return nil, err
	}

	// First pages only, so paging through results is not replayed as
	// separate searches.
	if input.Offset == 0 {
		if err := s.services.History.Record(ctx, input.Query, skills, domains, input.ChainID); err != nil {
			s.logger.Warn("failed to record search history", "error", err)
		}
	}

	return &ListAgentsOutput{Body: ListAgentsResponse(*page)}, nil
}

func (s *Server) handleGetAgent(ctx context.Context, input *GetAgentInput) (*AgentDetailOutput, error) {
	detail, err := s.services.Agent.Get(ctx, input.ChainID, input.ID)
	if err != nil {
		return nil, err
	}
	return &AgentDetailOutput{Body: *detail}, nil
}

func (s *Server) handleCompareAgents(ctx context.Context, input *CompareAgentsInput) (*CompareAgentsOutput, error) {
	cmp, err := s.services.Agent.Compare(ctx, input.Body.Agents)
	if err != nil {
		return nil, err
	}
	return &CompareAgentsOutput{Body: *cmp}, nil
}

// splitList parses a comma-separated filter value, dropping empty
// entries.
func splitList(raw string) []string {
	if raw == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// validateSelection rejects filter entries that do not resolve against
// the taxonomy, reporting the offending values.
func (s *Server) validateSelection(skills, domains []string) error {
	details := map[string][]string{}
	if unknown := s.services.Taxonomy.UnknownSlugs(taxonomy.TypeSkill, skills); len(unknown) > 0 {
		details["skills"] = unknown
	}
	if unknown := s.services.Taxonomy.UnknownSlugs(taxonomy.TypeDomain, domains); len(unknown) > 0 {
		details["domains"] = unknown
	}
	if len(details) > 0 {
		return domainerrors.ValidationWithDetails("unknown taxonomy filter values", details)
	}
	return nil
}
