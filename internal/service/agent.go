package service

import (
	"context"
	"log/slog"

	"github.com/agentdex/agentdex-server/internal/domain"
	domainerrors "github.com/agentdex/agentdex-server/internal/errors"
	"github.com/agentdex/agentdex-server/internal/registry"
	"github.com/agentdex/agentdex-server/internal/taxonomy"
)

// Response sources.
const (
	SourceRegistry = "registry"
	SourceFallback = "fallback"
)

// Comparison bounds.
const (
	minCompareAgents = 2
	maxCompareAgents = 4
)

// AgentService serves agent listings from the backend registry, falling
// back to the bundled dataset when the backend is unreachable.
type AgentService struct {
	client   *registry.Client
	taxonomy *taxonomy.Taxonomy
	fallback []domain.Agent
	logger   *slog.Logger
}

// NewAgentService creates a new agent service.
func NewAgentService(client *registry.Client, tax *taxonomy.Taxonomy, logger *slog.Logger) *AgentService {
	return &AgentService{
		client:   client,
		taxonomy: tax,
		fallback: registry.FallbackAgents(),
		logger:   logger,
	}
}

// BackendConfigured reports whether a backend registry URL was set.
// When false, every response is served from the fallback dataset.
func (s *AgentService) BackendConfigured() bool {
	return s.client.Configured()
}

// AgentPage is one page of agents plus where it came from.
type AgentPage struct {
	Agents []domain.Agent `json:"agents"`
	Total  int            `json:"total"`
	Source string         `json:"source"`
}

// ResolvedTag is a taxonomy slug with its display label. Known is false
// when the slug did not resolve and the label was derived from the slug
// itself.
type ResolvedTag struct {
	Slug  string `json:"slug"`
	Label string `json:"label"`
	Known bool   `json:"known"`
}

// AgentDetail is an agent with its taxonomy tags resolved to labels.
type AgentDetail struct {
	domain.Agent
	SkillLabels  []ResolvedTag `json:"skill_labels,omitempty"`
	DomainLabels []ResolvedTag `json:"domain_labels,omitempty"`
	Source       string        `json:"source"`
}

// Search lists agents matching params. The backend registry is tried
// first; when it is unconfigured or unreachable the bundled dataset is
// filtered locally and the page is marked as fallback.
func (s *AgentService) Search(ctx context.Context, params registry.SearchParams) (*AgentPage, error) {
	if s.client.Configured() {
		result, err := s.client.SearchAgents(ctx, params)
		switch {
		case err == nil:
			return &AgentPage{Agents: result.Agents, Total: result.Total, Source: SourceRegistry}, nil
		case domainerrors.Is(err, registry.ErrUnavailable):
			s.logger.Warn("registry unavailable, serving fallback dataset", "error", err)
		case domainerrors.Is(err, registry.ErrRateLimited):
			return nil, domainerrors.ErrRateLimited.WithCause(err)
		case domainerrors.Is(err, registry.ErrBadRequest):
			return nil, domainerrors.Validation("registry rejected the search request").WithCause(err)
		default:
			return nil, domainerrors.ErrInternal.WithCause(err)
		}
	}

	result := registry.FilterFallback(s.fallback, params)
	return &AgentPage{Agents: result.Agents, Total: result.Total, Source: SourceFallback}, nil
}

// Get returns one agent with resolved taxonomy labels.
func (s *AgentService) Get(ctx context.Context, chainID int, agentID string) (*AgentDetail, error) {
	if s.client.Configured() {
		agent, err := s.client.GetAgent(ctx, chainID, agentID)
		switch {
		case err == nil:
			return s.describe(agent, SourceRegistry), nil
		case domainerrors.Is(err, registry.ErrNotFound):
			return nil, domainerrors.NotFoundf("agent %s not found on chain %d", agentID, chainID)
		case domainerrors.Is(err, registry.ErrUnavailable):
			s.logger.Warn("registry unavailable, serving fallback dataset", "error", err)
		case domainerrors.Is(err, registry.ErrRateLimited):
			return nil, domainerrors.ErrRateLimited.WithCause(err)
		default:
			return nil, domainerrors.ErrInternal.WithCause(err)
		}
	}

	agent := registry.FindFallback(s.fallback, chainID, agentID)
	if agent == nil {
		return nil, domainerrors.NotFoundf("agent %s not found on chain %d", agentID, chainID)
	}
	return s.describe(agent, SourceFallback), nil
}

// Comparison is a side-by-side view of several agents.
type Comparison struct {
	Agents        []*AgentDetail `json:"agents"`
	SharedSkills  []ResolvedTag  `json:"shared_skills,omitempty"`
	SharedDomains []ResolvedTag  `json:"shared_domains,omitempty"`
}

// Compare fetches between two and four agents and assembles a
// side-by-side comparison, including the taxonomy tags every compared
// agent shares.
func (s *AgentService) Compare(ctx context.Context, refs []domain.Ref) (*Comparison, error) {
	if len(refs) < minCompareAgents || len(refs) > maxCompareAgents {
		return nil, domainerrors.Validationf("compare takes %d to %d agents, got %d",
			minCompareAgents, maxCompareAgents, len(refs))
	}

	seen := make(map[domain.Ref]bool, len(refs))
	details := make([]*AgentDetail, 0, len(refs))
	for _, ref := range refs {
		if seen[ref] {
			return nil, domainerrors.Validationf("duplicate agent %s on chain %d", ref.AgentID, ref.ChainID)
		}
		seen[ref] = true

		detail, err := s.Get(ctx, ref.ChainID, ref.AgentID)
		if err != nil {
			return nil, err
		}
		details = append(details, detail)
	}

	return &Comparison{
		Agents:        details,
		SharedSkills:  s.sharedTags(details, func(d *AgentDetail) []string { return d.Skills }, taxonomy.TypeSkill),
		SharedDomains: s.sharedTags(details, func(d *AgentDetail) []string { return d.Domains }, taxonomy.TypeDomain),
	}, nil
}

// describe attaches resolved taxonomy labels to an agent.
func (s *AgentService) describe(agent *domain.Agent, source string) *AgentDetail {
	return &AgentDetail{
		Agent:        *agent,
		SkillLabels:  s.resolveTags(agent.Skills, taxonomy.TypeSkill),
		DomainLabels: s.resolveTags(agent.Domains, taxonomy.TypeDomain),
		Source:       source,
	}
}

func (s *AgentService) resolveTags(slugs []string, typ taxonomy.Type) []ResolvedTag {
	if len(slugs) == 0 {
		return nil
	}
	tags := make([]ResolvedTag, 0, len(slugs))
	for _, slug := range slugs {
		if item := s.taxonomy.Resolve(slug, typ); item != nil {
			tags = append(tags, ResolvedTag{Slug: slug, Label: item.FullPath, Known: true})
			continue
		}
		tags = append(tags, ResolvedTag{Slug: slug, Label: taxonomy.FormatSlug(slug)})
	}
	return tags
}

// sharedTags returns the tags carried by every compared agent, in the
// first agent's order.
func (s *AgentService) sharedTags(details []*AgentDetail, tags func(*AgentDetail) []string, typ taxonomy.Type) []ResolvedTag {
	if len(details) == 0 {
		return nil
	}

	var shared []ResolvedTag
	for _, slug := range tags(details[0]) {
		onAll := true
		for _, d := range details[1:] {
			if !taxonomy.Matches(slug, tags(d)) {
				onAll = false
				break
			}
		}
		if !onAll {
			continue
		}
		if item := s.taxonomy.Resolve(slug, typ); item != nil {
			shared = append(shared, ResolvedTag{Slug: slug, Label: item.FullPath, Known: true})
		} else {
			shared = append(shared, ResolvedTag{Slug: slug, Label: taxonomy.FormatSlug(slug)})
		}
	}
	return shared
}
