package store

import (
	"context"
	"encoding/json/v2"
	"errors"
	"fmt"
	"slices"
	"strconv"

	"github.com/dgraph-io/badger/v4"

	"github.com/agentdex/agentdex-server/internal/domain"
)

// Key prefixes for bookmark storage.
const (
	bookmarkPrefix        = "bookmark:"
	bookmarkByAgentPrefix = "idx:bookmark:agent:" // chainID:agentID -> bookmark ID
)

// Bookmark errors.
var (
	ErrBookmarkNotFound = errors.New("bookmark not found")
	ErrBookmarkExists   = errors.New("agent is already bookmarked")
)

// agentIndexKey builds the per-agent uniqueness index key.
func agentIndexKey(chainID int, agentID string) []byte {
	return []byte(bookmarkByAgentPrefix + strconv.Itoa(chainID) + ":" + agentID)
}

// CreateBookmark stores a new bookmark. Each agent can be bookmarked at
// most once.
func (s *Store) CreateBookmark(ctx context.Context, b *domain.Bookmark) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	key := []byte(bookmarkPrefix + b.ID)
	idxKey := agentIndexKey(b.ChainID, b.AgentID)

	return s.db.Update(func(txn *badger.Txn) error {
		if _, err := txn.Get(idxKey); err == nil {
			return ErrBookmarkExists
		}

		data, err := json.Marshal(b)
		if err != nil {
			return fmt.Errorf("marshal bookmark: %w", err)
		}
		if err := txn.Set(key, data); err != nil {
			return err
		}
		return txn.Set(idxKey, []byte(b.ID))
	})
}

// GetBookmark returns a bookmark by ID.
func (s *Store) GetBookmark(ctx context.Context, id string) (*domain.Bookmark, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var b domain.Bookmark
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(bookmarkPrefix + id))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return ErrBookmarkNotFound
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &b)
		})
	})
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// ListBookmarks returns all bookmarks, most recently created first.
func (s *Store) ListBookmarks(ctx context.Context) ([]*domain.Bookmark, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var bookmarks []*domain.Bookmark
	prefix := []byte(bookmarkPrefix)

	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = prefix

		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			var b domain.Bookmark
			err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &b)
			})
			if err != nil {
				continue
			}
			bookmarks = append(bookmarks, &b)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slices.SortFunc(bookmarks, func(a, b *domain.Bookmark) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	return bookmarks, nil
}

// UpdateBookmark persists changes to an existing bookmark.
func (s *Store) UpdateBookmark(ctx context.Context, b *domain.Bookmark) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	key := []byte(bookmarkPrefix + b.ID)

	return s.db.Update(func(txn *badger.Txn) error {
		if _, err := txn.Get(key); errors.Is(err, badger.ErrKeyNotFound) {
			return ErrBookmarkNotFound
		} else if err != nil {
			return err
		}

		data, err := json.Marshal(b)
		if err != nil {
			return fmt.Errorf("marshal bookmark: %w", err)
		}
		return txn.Set(key, data)
	})
}

// DeleteBookmark removes a bookmark and its agent index entry.
func (s *Store) DeleteBookmark(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	key := []byte(bookmarkPrefix + id)

	return s.db.Update(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if errors.Is(err, badger.ErrKeyNotFound) {
			return ErrBookmarkNotFound
		}
		if err != nil {
			return err
		}

		var b domain.Bookmark
		if err := item.Value(func(val []byte) error {
			return json.Unmarshal(val, &b)
		}); err != nil {
			return err
		}

		if err := txn.Delete(agentIndexKey(b.ChainID, b.AgentID)); err != nil {
			return err
		}
		return txn.Delete(key)
	})
}
