package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/agentdex/agentdex-server/internal/domain"
)

func (s *Server) registerHistoryRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "listSearchHistory",
		Method:      http.MethodGet,
		Path:        "/api/v1/history",
		Summary:     "List search history",
		Description: "Returns remembered searches, most recent first",
		Tags:        []string{"History"},
	}, s.handleListHistory)

	huma.Register(s.api, huma.Operation{
		OperationID:   "clearSearchHistory",
		Method:        http.MethodDelete,
		Path:          "/api/v1/history",
		Summary:       "Clear search history",
		Description:   "Forgets all remembered searches",
		Tags:          []string{"History"},
		DefaultStatus: http.StatusNoContent,
	}, s.handleClearHistory)
}

type ListHistoryInput struct {
	Limit int `query:"limit" minimum:"0" maximum:"50" doc:"Cap the number of entries returned"`
}

type ListHistoryResponse struct {
	Searches []*domain.SearchEntry `json:"searches" doc:"Remembered searches"`
}

type ListHistoryOutput struct {
	Body ListHistoryResponse
}

type ClearHistoryOutput struct {
	Status int
}

func (s *Server) handleListHistory(ctx context.Context, input *ListHistoryInput) (*ListHistoryOutput, error) {
	searches, err := s.services.History.List(ctx, input.Limit)
	if err != nil {
		return nil, err
	}
	if searches == nil {
		searches = []*domain.SearchEntry{}
	}
	return &ListHistoryOutput{Body: ListHistoryResponse{Searches: searches}}, nil
}

func (s *Server) handleClearHistory(ctx context.Context, _ *struct{}) (*ClearHistoryOutput, error) {
	if err := s.services.History.Clear(ctx); err != nil {
		return nil, err
	}
	return &ClearHistoryOutput{Status: http.StatusNoContent}, nil
}
