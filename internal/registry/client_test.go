package registry

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c, err := New(Config{BaseURL: srv.URL, RequestsPerSecond: 1000, Burst: 1000}, testLogger())
	require.NoError(t, err)
	return c
}

func TestSearchAgents_WireFormat(t *testing.T) {
	var gotQuery map[string][]string

	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/agents", r.URL.Path)
		gotQuery = r.URL.Query()
		_, _ = w.Write([]byte(`{"agents":[{"id":"agent-1","chain_id":1,"name":"Test","status":"active"}],"total":1}`))
	}))

	result, err := c.SearchAgents(context.Background(), SearchParams{
		Query:   "oracle",
		Skills:  []string{"trading", "smart_contracts/oracle_services"},
		Domains: []string{"finance/defi"},
		ChainID: 1,
		Status:  "active",
		Limit:   10,
		Offset:  20,
	})
	require.NoError(t, err)

	// Taxonomy filters travel as comma-joined composite slugs.
	assert.Equal(t, []string{"trading,smart_contracts/oracle_services"}, gotQuery["skills"])
	assert.Equal(t, []string{"finance/defi"}, gotQuery["domains"])
	assert.Equal(t, []string{"oracle"}, gotQuery["q"])
	assert.Equal(t, []string{"1"}, gotQuery["chain"])
	assert.Equal(t, []string{"active"}, gotQuery["status"])
	assert.Equal(t, []string{"10"}, gotQuery["limit"])
	assert.Equal(t, []string{"20"}, gotQuery["offset"])

	require.Len(t, result.Agents, 1)
	assert.Equal(t, "agent-1", result.Agents[0].ID)
	assert.Equal(t, 1, result.Total)
}

func TestSearchAgents_DefaultAndCappedLimit(t *testing.T) {
	var gotLimit string
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotLimit = r.URL.Query().Get("limit")
		_, _ = w.Write([]byte(`{"agents":[],"total":0}`))
	}))

	_, err := c.SearchAgents(context.Background(), SearchParams{})
	require.NoError(t, err)
	assert.Equal(t, "25", gotLimit)

	_, err = c.SearchAgents(context.Background(), SearchParams{Limit: 10000})
	require.NoError(t, err)
	assert.Equal(t, "100", gotLimit)
}

func TestGetAgent(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/agents/1/agent-0x3f21", r.URL.Path)
		_, _ = w.Write([]byte(`{"id":"agent-0x3f21","chain_id":1,"name":"Lexica","status":"active"}`))
	}))

	agent, err := c.GetAgent(context.Background(), 1, "agent-0x3f21")
	require.NoError(t, err)
	assert.Equal(t, "Lexica", agent.Name)
	assert.True(t, agent.IsActive())
}

func TestStatusMapping(t *testing.T) {
	tests := []struct {
		status int
		want   error
	}{
		{http.StatusNotFound, ErrNotFound},
		{http.StatusTooManyRequests, ErrRateLimited},
		{http.StatusBadRequest, ErrBadRequest},
		{http.StatusInternalServerError, ErrUnavailable},
		{http.StatusBadGateway, ErrUnavailable},
	}

	for _, tt := range tests {
		c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(tt.status)
		}))

		_, err := c.GetAgent(context.Background(), 1, "agent-x")
		assert.ErrorIs(t, err, tt.want, "status %d", tt.status)
	}
}

func TestConnectionFailureIsUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close() // nothing listening anymore

	c, err := New(Config{BaseURL: srv.URL, RequestsPerSecond: 1000, Burst: 1000}, testLogger())
	require.NoError(t, err)

	_, err = c.SearchAgents(context.Background(), SearchParams{})
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestUnconfiguredClient(t *testing.T) {
	c, err := New(Config{}, testLogger())
	require.NoError(t, err)

	assert.False(t, c.Configured())

	_, err = c.SearchAgents(context.Background(), SearchParams{})
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestErrorContext(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))

	_, err := c.GetAgent(context.Background(), 8453, "agent-0xe1c0")
	require.Error(t, err)

	var regErr *Error
	require.ErrorAs(t, err, &regErr)
	assert.Equal(t, "getAgent", regErr.Op)
	assert.Equal(t, 8453, regErr.ChainID)
	assert.Equal(t, "agent-0xe1c0", regErr.AgentID)
}
