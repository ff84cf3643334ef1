package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/agentdex/agentdex-server/internal/service"
	"github.com/agentdex/agentdex-server/internal/taxonomy"
)

func (s *Server) registerTaxonomyRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "getTaxonomyTree",
		Method:      http.MethodGet,
		Path:        "/api/v1/taxonomy/{type}",
		Summary:     "Get taxonomy tree",
		Description: "Returns the full category tree for one taxonomy type",
		Tags:        []string{"Taxonomy"},
	}, s.handleGetTaxonomyTree)

	huma.Register(s.api, huma.Operation{
		OperationID: "resolveTaxonomySlug",
		Method:      http.MethodGet,
		Path:        "/api/v1/taxonomy/{type}/resolve",
		Summary:     "Resolve slug",
		Description: "Resolves a slug to a display label, falling back to a formatted label for unknown slugs",
		Tags:        []string{"Taxonomy"},
	}, s.handleResolveTaxonomySlug)

	huma.Register(s.api, huma.Operation{
		OperationID: "searchTaxonomy",
		Method:      http.MethodGet,
		Path:        "/api/v1/taxonomy/{type}/search",
		Summary:     "Search categories",
		Description: "Returns categories whose name or slug contains the query",
		Tags:        []string{"Taxonomy"},
	}, s.handleSearchTaxonomy)

	huma.Register(s.api, huma.Operation{
		OperationID: "expandTaxonomySlug",
		Method:      http.MethodGet,
		Path:        "/api/v1/taxonomy/{type}/expand",
		Summary:     "Expand category",
		Description: "Returns the composite slugs covered by a category, its own slug first",
		Tags:        []string{"Taxonomy"},
	}, s.handleExpandTaxonomySlug)
}

// === DTOs ===

type TaxonomyTypeInput struct {
	Type string `path:"type" enum:"skill,domain" doc:"Taxonomy type"`
}

type TaxonomyTreeResponse struct {
	Type       string              `json:"type" doc:"Taxonomy type"`
	Version    string              `json:"version" doc:"Taxonomy dataset version"`
	Categories []taxonomy.Category `json:"categories" doc:"Top-level categories with children"`
}

type TaxonomyTreeOutput struct {
	Body TaxonomyTreeResponse
}

type ResolveSlugInput struct {
	Type string `path:"type" enum:"skill,domain" doc:"Taxonomy type"`
	Slug string `query:"slug" required:"true" minLength:"1" doc:"Slug to resolve"`
}

type ResolvedTagOutput struct {
	Body service.ResolvedTag
}

type SearchTaxonomyInput struct {
	Type  string `path:"type" enum:"skill,domain" doc:"Taxonomy type"`
	Query string `query:"q" doc:"Substring to match on names and slugs"`
}

type SearchTaxonomyResponse struct {
	Categories []taxonomy.Category `json:"categories" doc:"Matching categories in tree order"`
}

type SearchTaxonomyOutput struct {
	Body SearchTaxonomyResponse
}

type ExpandSlugInput struct {
	Type string `path:"type" enum:"skill,domain" doc:"Taxonomy type"`
	Slug string `query:"slug" required:"true" minLength:"1" doc:"Category slug to expand"`
}

type ExpandSlugResponse struct {
	Slugs []string `json:"slugs" doc:"Composite slugs covered by the category"`
}

type ExpandSlugOutput struct {
	Body ExpandSlugResponse
}

// === Handlers ===

func (s *Server) handleGetTaxonomyTree(ctx context.Context, input *TaxonomyTypeInput) (*TaxonomyTreeOutput, error) {
	tree, err := s.services.Taxonomy.Tree(taxonomy.Type(input.Type))
	if err != nil {
		return nil, err
	}
	return &TaxonomyTreeOutput{Body: TaxonomyTreeResponse{
		Type:       input.Type,
		Version:    tree.Version,
		Categories: tree.Categories,
	}}, nil
}

func (s *Server) handleResolveTaxonomySlug(ctx context.Context, input *ResolveSlugInput) (*ResolvedTagOutput, error) {
	tag, err := s.services.Taxonomy.Resolve(taxonomy.Type(input.Type), input.Slug)
	if err != nil {
		return nil, err
	}
	return &ResolvedTagOutput{Body: *tag}, nil
}

func (s *Server) handleSearchTaxonomy(ctx context.Context, input *SearchTaxonomyInput) (*SearchTaxonomyOutput, error) {
	results, err := s.services.Taxonomy.Search(taxonomy.Type(input.Type), input.Query)
	if err != nil {
		return nil, err
	}

	categories := make([]taxonomy.Category, len(results))
	for i, c := range results {
		categories[i] = *c
	}
	return &SearchTaxonomyOutput{Body: SearchTaxonomyResponse{Categories: categories}}, nil
}

func (s *Server) handleExpandTaxonomySlug(ctx context.Context, input *ExpandSlugInput) (*ExpandSlugOutput, error) {
	slugs, err := s.services.Taxonomy.Expand(taxonomy.Type(input.Type), input.Slug)
	if err != nil {
		return nil, err
	}
	return &ExpandSlugOutput{Body: ExpandSlugResponse{Slugs: slugs}}, nil
}
