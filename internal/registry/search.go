package registry

import (
	"context"
	"encoding/json/v2"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/agentdex/agentdex-server/internal/domain"
)

// SearchParams describes one listing/search request against the registry.
// Skills and Domains carry composite taxonomy slugs; they pass through to
// the backend as opaque strings.
type SearchParams struct {
	Query   string
	Skills  []string
	Domains []string
	ChainID int
	Status  string
	Limit   int
	Offset  int
}

// SearchResult is one page of agents plus the backend's total count.
type SearchResult struct {
	Agents []domain.Agent
	Total  int
}

// buildQuery translates SearchParams into the registry's query string.
// The taxonomy filters are comma-joined lists of composite slugs in the
// format "category" or "category/child".
func (p SearchParams) buildQuery() url.Values {
	query := url.Values{}

	if p.Query != "" {
		query.Set("q", p.Query)
	}
	if len(p.Skills) > 0 {
		query.Set("skills", strings.Join(p.Skills, ","))
	}
	if len(p.Domains) > 0 {
		query.Set("domains", strings.Join(p.Domains, ","))
	}
	if p.ChainID > 0 {
		query.Set("chain", strconv.Itoa(p.ChainID))
	}
	if p.Status != "" {
		query.Set("status", p.Status)
	}

	limit := p.Limit
	if limit <= 0 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	query.Set("limit", strconv.Itoa(limit))
	if p.Offset > 0 {
		query.Set("offset", strconv.Itoa(p.Offset))
	}

	return query
}

// SearchAgents queries the registry for agents matching the params.
func (c *Client) SearchAgents(ctx context.Context, params SearchParams) (*SearchResult, error) {
	body, err := c.doRequest(ctx, "/agents", params.buildQuery())
	if err != nil {
		return nil, wrapError("searchAgents", 0, "", err)
	}

	var resp struct {
		Agents []domain.Agent `json:"agents"`
		Total  int            `json:"total"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, wrapError("searchAgents", 0, "", fmt.Errorf("parse response: %w", err))
	}

	return &SearchResult{Agents: resp.Agents, Total: resp.Total}, nil
}

// GetAgent fetches a single agent by chain and ID.
func (c *Client) GetAgent(ctx context.Context, chainID int, agentID string) (*domain.Agent, error) {
	path := fmt.Sprintf("/agents/%d/%s", chainID, url.PathEscape(agentID))
	body, err := c.doRequest(ctx, path, nil)
	if err != nil {
		return nil, wrapError("getAgent", chainID, agentID, err)
	}

	var agent domain.Agent
	if err := json.Unmarshal(body, &agent); err != nil {
		return nil, wrapError("getAgent", chainID, agentID, fmt.Errorf("parse response: %w", err))
	}
	return &agent, nil
}
