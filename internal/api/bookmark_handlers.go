package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/agentdex/agentdex-server/internal/domain"
	"github.com/agentdex/agentdex-server/internal/service"
)

func (s *Server) registerBookmarkRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "listBookmarks",
		Method:      http.MethodGet,
		Path:        "/api/v1/bookmarks",
		Summary:     "List bookmarks",
		Description: "Returns saved agents, most recently saved first",
		Tags:        []string{"Bookmarks"},
	}, s.handleListBookmarks)

	huma.Register(s.api, huma.Operation{
		OperationID:   "createBookmark",
		Method:        http.MethodPost,
		Path:          "/api/v1/bookmarks",
		Summary:       "Create bookmark",
		Description:   "Saves an agent for later",
		Tags:          []string{"Bookmarks"},
		DefaultStatus: http.StatusCreated,
	}, s.handleCreateBookmark)

	huma.Register(s.api, huma.Operation{
		OperationID: "getBookmark",
		Method:      http.MethodGet,
		Path:        "/api/v1/bookmarks/{id}",
		Summary:     "Get bookmark",
		Description: "Returns a bookmark by ID",
		Tags:        []string{"Bookmarks"},
	}, s.handleGetBookmark)

	huma.Register(s.api, huma.Operation{
		OperationID: "updateBookmark",
		Method:      http.MethodPatch,
		Path:        "/api/v1/bookmarks/{id}",
		Summary:     "Update bookmark",
		Description: "Updates a bookmark's note",
		Tags:        []string{"Bookmarks"},
	}, s.handleUpdateBookmark)

	huma.Register(s.api, huma.Operation{
		OperationID:   "deleteBookmark",
		Method:        http.MethodDelete,
		Path:          "/api/v1/bookmarks/{id}",
		Summary:       "Delete bookmark",
		Description:   "Removes a bookmark",
		Tags:          []string{"Bookmarks"},
		DefaultStatus: http.StatusNoContent,
	}, s.handleDeleteBookmark)
}

// === DTOs ===

type ListBookmarksResponse struct {
	Bookmarks []*domain.Bookmark `json:"bookmarks" doc:"Saved agents"`
}

type ListBookmarksOutput struct {
	Body ListBookmarksResponse
}

type CreateBookmarkRequest struct {
	ChainID int    `json:"chain_id" minimum:"1" doc:"Chain the agent lives on"`
	AgentID string `json:"agent_id" minLength:"1" maxLength:"128" doc:"Agent ID"`
	Note    string `json:"note,omitempty" maxLength:"500" doc:"Free-form note"`
}

type CreateBookmarkInput struct {
	Body CreateBookmarkRequest
}

type BookmarkOutput struct {
	Body domain.Bookmark
}

type BookmarkIDInput struct {
	ID string `path:"id" doc:"Bookmark ID"`
}

type UpdateBookmarkRequest struct {
	Note *string `json:"note,omitempty" maxLength:"500" doc:"Free-form note"`
}

type UpdateBookmarkInput struct {
	ID   string `path:"id" doc:"Bookmark ID"`
	Body UpdateBookmarkRequest
}

type DeleteBookmarkOutput struct {
	Status int
}

// === Handlers ===

func (s *Server) handleListBookmarks(ctx context.Context, _ *struct{}) (*ListBookmarksOutput, error) {
	bookmarks, err := s.services.Bookmark.List(ctx)
	if err != nil {
		return nil, err
	}
	if bookmarks == nil {
		bookmarks = []*domain.Bookmark{}
	}
	return &ListBookmarksOutput{Body: ListBookmarksResponse{Bookmarks: bookmarks}}, nil
}

func (s *Server) handleCreateBookmark(ctx context.Context, input *CreateBookmarkInput) (*BookmarkOutput, error) {
	b, err := s.services.Bookmark.Create(ctx, service.CreateBookmarkRequest{
		ChainID: input.Body.ChainID,
		AgentID: input.Body.AgentID,
		Note:    input.Body.Note,
	})
	if err != nil {
		return nil, err
	}
	return &BookmarkOutput{Body: *b}, nil
}

func (s *Server) handleGetBookmark(ctx context.Context, input *BookmarkIDInput) (*BookmarkOutput, error) {
	b, err := s.services.Bookmark.Get(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	return &BookmarkOutput{Body: *b}, nil
}

func (s *Server) handleUpdateBookmark(ctx context.Context, input *UpdateBookmarkInput) (*BookmarkOutput, error) {
	b, err := s.services.Bookmark.Update(ctx, input.ID, service.UpdateBookmarkRequest{
		Note: input.Body.Note,
	})
	if err != nil {
		return nil, err
	}
	return &BookmarkOutput{Body: *b}, nil
}

func (s *Server) handleDeleteBookmark(ctx context.Context, input *BookmarkIDInput) (*DeleteBookmarkOutput, error) {
	if err := s.services.Bookmark.Delete(ctx, input.ID); err != nil {
		return nil, err
	}
	return &DeleteBookmarkOutput{Status: http.StatusNoContent}, nil
}
