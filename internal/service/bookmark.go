package service

import (
	"context"
	"log/slog"

	"github.com/agentdex/agentdex-server/internal/domain"
	domainerrors "github.com/agentdex/agentdex-server/internal/errors"
	"github.com/agentdex/agentdex-server/internal/id"
	"github.com/agentdex/agentdex-server/internal/store"
	"github.com/agentdex/agentdex-server/internal/validation"
)

// BookmarkService manages saved agents.
type BookmarkService struct {
	store     *store.Store
	logger    *slog.Logger
	validator *validation.Validator
}

// NewBookmarkService creates a new bookmark service.
func NewBookmarkService(store *store.Store, logger *slog.Logger) *BookmarkService {
	return &BookmarkService{
		store:     store,
		logger:    logger,
		validator: validation.New(),
	}
}

// CreateBookmarkRequest contains fields for bookmarking an agent.
type CreateBookmarkRequest struct {
	ChainID int    `json:"chain_id" validate:"required,gt=0"`
	AgentID string `json:"agent_id" validate:"required,min=1,max=128"`
	Note    string `json:"note" validate:"max=500"`
}

// Create bookmarks an agent. Each agent can be bookmarked once.
func (s *BookmarkService) Create(ctx context.Context, req CreateBookmarkRequest) (*domain.Bookmark, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}
	if domain.ChainByID(req.ChainID) == nil {
		return nil, domainerrors.Validationf("unsupported chain %d", req.ChainID)
	}

	bookmarkID, err := id.Generate("bmk")
	if err != nil {
		return nil, err
	}

	b := &domain.Bookmark{
		ID:      bookmarkID,
		ChainID: req.ChainID,
		AgentID: req.AgentID,
		Note:    req.Note,
	}
	b.InitTimestamps()

	if err := s.store.CreateBookmark(ctx, b); err != nil {
		if domainerrors.Is(err, store.ErrBookmarkExists) {
			return nil, domainerrors.Conflict("agent is already bookmarked").WithCause(err)
		}
		return nil, err
	}

	s.logger.Info("bookmark created", "id", bookmarkID, "chain_id", req.ChainID, "agent_id", req.AgentID)
	return b, nil
}

// Get returns a bookmark by ID.
func (s *BookmarkService) Get(ctx context.Context, bookmarkID string) (*domain.Bookmark, error) {
	b, err := s.store.GetBookmark(ctx, bookmarkID)
	if domainerrors.Is(err, store.ErrBookmarkNotFound) {
		return nil, domainerrors.NotFoundf("bookmark %s not found", bookmarkID)
	}
	return b, err
}

// List returns all bookmarks, most recently created first.
func (s *BookmarkService) List(ctx context.Context) ([]*domain.Bookmark, error) {
	return s.store.ListBookmarks(ctx)
}

// UpdateBookmarkRequest contains fields for updating a bookmark.
type UpdateBookmarkRequest struct {
	Note *string `json:"note" validate:"omitempty,max=500"`
}

// Update changes a bookmark's note.
func (s *BookmarkService) Update(ctx context.Context, bookmarkID string, req UpdateBookmarkRequest) (*domain.Bookmark, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	b, err := s.Get(ctx, bookmarkID)
	if err != nil {
		return nil, err
	}

	if req.Note != nil {
		b.Note = *req.Note
	}
	b.Touch()

	if err := s.store.UpdateBookmark(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

// Delete removes a bookmark.
func (s *BookmarkService) Delete(ctx context.Context, bookmarkID string) error {
	err := s.store.DeleteBookmark(ctx, bookmarkID)
	if domainerrors.Is(err, store.ErrBookmarkNotFound) {
		return domainerrors.NotFoundf("bookmark %s not found", bookmarkID)
	}
	if err != nil {
		return err
	}
	s.logger.Info("bookmark deleted", "id", bookmarkID)
	return nil
}
