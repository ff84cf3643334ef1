package store

import (
	"context"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentdex/agentdex-server/internal/domain"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	st, err := New(t.TempDir(), logger)
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	return st
}

func testBookmark(id, agentID string, chainID int) *domain.Bookmark {
	b := &domain.Bookmark{
		ID:      id,
		ChainID: chainID,
		AgentID: agentID,
		Note:    "note for " + agentID,
	}
	b.InitTimestamps()
	return b
}

func TestCreateAndGetBookmark(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	b := testBookmark("bmk-1", "agent-0x3f21", 1)
	require.NoError(t, st.CreateBookmark(ctx, b))

	got, err := st.GetBookmark(ctx, "bmk-1")
	require.NoError(t, err)
	assert.Equal(t, b.AgentID, got.AgentID)
	assert.Equal(t, b.ChainID, got.ChainID)
	assert.Equal(t, b.Note, got.Note)
}

func TestCreateBookmark_DuplicateAgent(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, st.CreateBookmark(ctx, testBookmark("bmk-1", "agent-0x3f21", 1)))

	err := st.CreateBookmark(ctx, testBookmark("bmk-2", "agent-0x3f21", 1))
	assert.ErrorIs(t, err, ErrBookmarkExists)

	// Same agent ID on a different chain is a different agent.
	assert.NoError(t, st.CreateBookmark(ctx, testBookmark("bmk-3", "agent-0x3f21", 137)))
}

func TestGetBookmark_NotFound(t *testing.T) {
	st := newTestStore(t)

	_, err := st.GetBookmark(context.Background(), "bmk-missing")
	assert.ErrorIs(t, err, ErrBookmarkNotFound)
}

func TestListBookmarks_MostRecentFirst(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	older := testBookmark("bmk-old", "agent-a", 1)
	older.CreatedAt = time.Now().Add(-time.Hour)
	newer := testBookmark("bmk-new", "agent-b", 1)

	require.NoError(t, st.CreateBookmark(ctx, older))
	require.NoError(t, st.CreateBookmark(ctx, newer))

	list, err := st.ListBookmarks(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "bmk-new", list[0].ID)
	assert.Equal(t, "bmk-old", list[1].ID)
}

func TestUpdateBookmark(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	b := testBookmark("bmk-1", "agent-a", 1)
	require.NoError(t, st.CreateBookmark(ctx, b))

	b.Note = "updated note"
	b.Touch()
	require.NoError(t, st.UpdateBookmark(ctx, b))

	got, err := st.GetBookmark(ctx, "bmk-1")
	require.NoError(t, err)
	assert.Equal(t, "updated note", got.Note)
}

func TestUpdateBookmark_NotFound(t *testing.T) {
	st := newTestStore(t)

	err := st.UpdateBookmark(context.Background(), testBookmark("bmk-ghost", "agent-x", 1))
	assert.ErrorIs(t, err, ErrBookmarkNotFound)
}

func TestDeleteBookmark_FreesAgentForRebookmarking(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, st.CreateBookmark(ctx, testBookmark("bmk-1", "agent-a", 1)))
	require.NoError(t, st.DeleteBookmark(ctx, "bmk-1"))

	_, err := st.GetBookmark(ctx, "bmk-1")
	assert.ErrorIs(t, err, ErrBookmarkNotFound)

	// The agent index entry must be gone too.
	assert.NoError(t, st.CreateBookmark(ctx, testBookmark("bmk-2", "agent-a", 1)))
}

func TestDeleteBookmark_NotFound(t *testing.T) {
	st := newTestStore(t)

	err := st.DeleteBookmark(context.Background(), "bmk-missing")
	assert.ErrorIs(t, err, ErrBookmarkNotFound)
}

func TestBookmarks_CanceledContext(t *testing.T) {
	st := newTestStore(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.Error(t, st.CreateBookmark(ctx, testBookmark("bmk-1", "agent-a", 1)))
	_, err := st.ListBookmarks(ctx)
	assert.Error(t, err)
}
