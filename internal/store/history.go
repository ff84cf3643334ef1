package store

import (
	"context"
	"encoding/json/v2"
	"fmt"
	"slices"

	"github.com/dgraph-io/badger/v4"

	"github.com/agentdex/agentdex-server/internal/domain"
)

// historyPrefix keys search history entries by ID.
const historyPrefix = "history:"

// maxHistoryEntries bounds how many searches are remembered.
const maxHistoryEntries = 50

// AddSearch stores a search history entry and prunes the oldest entries
// beyond the retention bound.
func (s *Store) AddSearch(ctx context.Context, entry *domain.SearchEntry) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("marshal search entry: %w", err)
	}

	if err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(historyPrefix+entry.ID), data)
	}); err != nil {
		return err
	}

	return s.pruneHistory(ctx)
}

// ListSearches returns remembered searches, most recent first, capped at
// limit (or all up to the retention bound when limit <= 0).
func (s *Store) ListSearches(ctx context.Context, limit int) ([]*domain.SearchEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	entries, err := s.loadHistory()
	if err != nil {
		return nil, err
	}

	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	return entries, nil
}

// ClearHistory deletes all search history entries.
func (s *Store) ClearHistory(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	prefix := []byte(historyPrefix)
	return s.db.Update(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = prefix
		opts.PrefetchValues = false

		it := txn.NewIterator(opts)
		defer it.Close()

		var keys [][]byte
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			keys = append(keys, it.Item().KeyCopy(nil))
		}
		for _, key := range keys {
			if err := txn.Delete(key); err != nil {
				return err
			}
		}
		return nil
	})
}

// loadHistory reads all entries sorted most recent first.
func (s *Store) loadHistory() ([]*domain.SearchEntry, error) {
	var entries []*domain.SearchEntry
	prefix := []byte(historyPrefix)

	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = prefix

		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			var e domain.SearchEntry
			err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &e)
			})
			if err != nil {
				continue
			}
			entries = append(entries, &e)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slices.SortFunc(entries, func(a, b *domain.SearchEntry) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	return entries, nil
}

// pruneHistory removes entries beyond the retention bound, oldest first.
func (s *Store) pruneHistory(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	entries, err := s.loadHistory()
	if err != nil {
		return err
	}
	if len(entries) <= maxHistoryEntries {
		return nil
	}

	excess := entries[maxHistoryEntries:]
	return s.db.Update(func(txn *badger.Txn) error {
		for _, e := range excess {
			if err := txn.Delete([]byte(historyPrefix + e.ID)); err != nil {
				return err
			}
		}
		return nil
	})
}
