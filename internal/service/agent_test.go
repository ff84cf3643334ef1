package service

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentdex/agentdex-server/internal/domain"
	domainerrors "github.com/agentdex/agentdex-server/internal/errors"
	"github.com/agentdex/agentdex-server/internal/registry"
	"github.com/agentdex/agentdex-server/internal/taxonomy"
)

func newAgentService(t *testing.T, baseURL string) *AgentService {
	t.Helper()

	client, err := registry.New(registry.Config{BaseURL: baseURL}, slog.New(slog.DiscardHandler))
	require.NoError(t, err)
	return NewAgentService(client, taxonomy.Default(), slog.New(slog.DiscardHandler))
}

func TestAgentSearch_FallbackWhenUnconfigured(t *testing.T) {
	svc := newAgentService(t, "")

	page, err := svc.Search(context.Background(), registry.SearchParams{})
	require.NoError(t, err)
	assert.Equal(t, SourceFallback, page.Source)
	assert.NotEmpty(t, page.Agents)
	assert.Equal(t, len(registry.FallbackAgents()), page.Total)
}

func TestAgentSearch_FallbackWhenUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	svc := newAgentService(t, srv.URL)

	page, err := svc.Search(context.Background(), registry.SearchParams{Query: "oracle"})
	require.NoError(t, err)
	assert.Equal(t, SourceFallback, page.Source)
}

func TestAgentSearch_Registry(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"agents":[{"id":"agent-1","chain_id":1,"name":"Backend Agent","status":"active"}],"total":1}`))
	}))
	defer srv.Close()

	svc := newAgentService(t, srv.URL)

	page, err := svc.Search(context.Background(), registry.SearchParams{})
	require.NoError(t, err)
	assert.Equal(t, SourceRegistry, page.Source)
	require.Len(t, page.Agents, 1)
	assert.Equal(t, "Backend Agent", page.Agents[0].Name)
}

func TestAgentSearch_RateLimitedBubblesUp(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	svc := newAgentService(t, srv.URL)

	_, err := svc.Search(context.Background(), registry.SearchParams{})
	require.Error(t, err)
	var derr *domainerrors.Error
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, domainerrors.CodeRateLimited, derr.Code)
}

func TestAgentGet_FallbackWithResolvedLabels(t *testing.T) {
	svc := newAgentService(t, "")
	agents := registry.FallbackAgents()
	want := agents[0]

	detail, err := svc.Get(context.Background(), want.ChainID, want.ID)
	require.NoError(t, err)
	assert.Equal(t, SourceFallback, detail.Source)
	assert.Equal(t, want.Name, detail.Name)

	require.Len(t, detail.SkillLabels, len(want.Skills))
	for _, tag := range detail.SkillLabels {
		assert.True(t, tag.Known, "fallback skill %q should resolve", tag.Slug)
		assert.NotEmpty(t, tag.Label)
	}
}

func TestAgentGet_NotFound(t *testing.T) {
	svc := newAgentService(t, "")

	_, err := svc.Get(context.Background(), 1, "agent-0xdoesnotexist")
	require.Error(t, err)
	var derr *domainerrors.Error
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, domainerrors.CodeNotFound, derr.Code)
}

func TestAgentGet_UnknownSlugGetsFormattedLabel(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"agent-1","chain_id":1,"name":"X","status":"active","skills":["quantum_sorcery"]}`))
	}))
	defer srv.Close()

	svc := newAgentService(t, srv.URL)

	detail, err := svc.Get(context.Background(), 1, "agent-1")
	require.NoError(t, err)
	require.Len(t, detail.SkillLabels, 1)
	assert.False(t, detail.SkillLabels[0].Known)
	assert.Equal(t, "Quantum Sorcery", detail.SkillLabels[0].Label)
}

func TestCompare_RefCountValidation(t *testing.T) {
	svc := newAgentService(t, "")
	agents := registry.FallbackAgents()

	one := []domain.Ref{{ChainID: agents[0].ChainID, AgentID: agents[0].ID}}
	_, err := svc.Compare(context.Background(), one)
	require.Error(t, err)
	var derr *domainerrors.Error
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, domainerrors.CodeValidation, derr.Code)

	var five []domain.Ref
	for i := range 5 {
		five = append(five, domain.Ref{ChainID: agents[i].ChainID, AgentID: agents[i].ID})
	}
	_, err = svc.Compare(context.Background(), five)
	assert.Error(t, err)
}

func TestCompare_RejectsDuplicates(t *testing.T) {
	svc := newAgentService(t, "")
	agents := registry.FallbackAgents()

	ref := domain.Ref{ChainID: agents[0].ChainID, AgentID: agents[0].ID}
	_, err := svc.Compare(context.Background(), []domain.Ref{ref, ref})
	require.Error(t, err)
	var derr *domainerrors.Error
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, domainerrors.CodeValidation, derr.Code)
}

func TestCompare_SideBySide(t *testing.T) {
	svc := newAgentService(t, "")
	agents := registry.FallbackAgents()

	refs := []domain.Ref{
		{ChainID: agents[0].ChainID, AgentID: agents[0].ID},
		{ChainID: agents[1].ChainID, AgentID: agents[1].ID},
		{ChainID: agents[2].ChainID, AgentID: agents[2].ID},
	}
	cmp, err := svc.Compare(context.Background(), refs)
	require.NoError(t, err)
	require.Len(t, cmp.Agents, 3)
	for i, detail := range cmp.Agents {
		assert.Equal(t, refs[i].AgentID, detail.ID)
	}
}

func TestCompare_SharedTagsCoverChildren(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/agents/1/agent-a":
			_, _ = w.Write([]byte(`{"id":"agent-a","chain_id":1,"name":"A","status":"active","skills":["trading/arbitrage"]}`))
		case "/agents/1/agent-b":
			_, _ = w.Write([]byte(`{"id":"agent-b","chain_id":1,"name":"B","status":"active","skills":["trading"]}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	svc := newAgentService(t, srv.URL)

	cmp, err := svc.Compare(context.Background(), []domain.Ref{
		{ChainID: 1, AgentID: "agent-a"},
		{ChainID: 1, AgentID: "agent-b"},
	})
	require.NoError(t, err)

	// Agent A's "trading/arbitrage" is covered by agent B's parent-level
	// "trading", so it counts as shared.
	require.Len(t, cmp.SharedSkills, 1)
	assert.Equal(t, "trading/arbitrage", cmp.SharedSkills[0].Slug)
	assert.True(t, cmp.SharedSkills[0].Known)
}
