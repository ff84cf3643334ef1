package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/agentdex/agentdex-server/internal/domain"
)

func (s *Server) registerChainRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "listChains",
		Method:      http.MethodGet,
		Path:        "/api/v1/chains",
		Summary:     "List chains",
		Description: "Returns the chains the registry browser knows about",
		Tags:        []string{"Chains"},
	}, s.handleListChains)
}

type ListChainsResponse struct {
	Chains []domain.Chain `json:"chains" doc:"Supported chains"`
}

type ListChainsOutput struct {
	Body ListChainsResponse
}

func (s *Server) handleListChains(ctx context.Context, _ *struct{}) (*ListChainsOutput, error) {
	return &ListChainsOutput{Body: ListChainsResponse{Chains: domain.SupportedChains}}, nil
}
