package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/agentdex/agentdex-server/internal/domain"
	"github.com/agentdex/agentdex-server/internal/id"
	"github.com/agentdex/agentdex-server/internal/store"
	"github.com/agentdex/agentdex-server/internal/taxonomy"
)

// HistoryService records recent searches so clients can replay them.
type HistoryService struct {
	store  *store.Store
	logger *slog.Logger
}

// NewHistoryService creates a new history service.
func NewHistoryService(store *store.Store, logger *slog.Logger) *HistoryService {
	return &HistoryService{store: store, logger: logger}
}

// Record remembers a search. Empty searches (no query, no filters) are
// skipped silently. Each entry is stamped with the taxonomy version it
// was made against, so old filter slugs can be detected after upgrades.
func (s *HistoryService) Record(ctx context.Context, query string, skills, domains []string, chainID int) error {
	entry := &domain.SearchEntry{
		Query:           query,
		Skills:          skills,
		Domains:         domains,
		ChainID:         chainID,
		TaxonomyVersion: taxonomy.Version,
	}
	if entry.IsEmpty() {
		return nil
	}

	entryID, err := id.Generate("hist")
	if err != nil {
		return err
	}
	entry.ID = entryID
	entry.CreatedAt = time.Now().UTC()

	return s.store.AddSearch(ctx, entry)
}

// List returns remembered searches, most recent first.
func (s *HistoryService) List(ctx context.Context, limit int) ([]*domain.SearchEntry, error) {
	return s.store.ListSearches(ctx, limit)
}

// Clear forgets all remembered searches.
func (s *HistoryService) Clear(ctx context.Context) error {
	if err := s.store.ClearHistory(ctx); err != nil {
		return err
	}
	s.logger.Info("search history cleared")
	return nil
}
