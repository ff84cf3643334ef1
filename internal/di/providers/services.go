package providers

import (
	"github.com/samber/do/v2"

	"github.com/agentdex/agentdex-server/internal/logger"
	"github.com/agentdex/agentdex-server/internal/registry"
	"github.com/agentdex/agentdex-server/internal/service"
	"github.com/agentdex/agentdex-server/internal/taxonomy"
)

// ProvideAgentService provides the agent browsing service.
func ProvideAgentService(i do.Injector) (*service.AgentService, error) {
	client := do.MustInvoke[*registry.Client](i)
	tax := do.MustInvoke[*taxonomy.Taxonomy](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewAgentService(client, tax, log.Logger), nil
}

// ProvideTaxonomyService provides the taxonomy service.
func ProvideTaxonomyService(i do.Injector) (*service.TaxonomyService, error) {
	tax := do.MustInvoke[*taxonomy.Taxonomy](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewTaxonomyService(tax, log.Logger), nil
}

// ProvideBookmarkService provides the bookmark service.
func ProvideBookmarkService(i do.Injector) (*service.BookmarkService, error) {
	storeHandle := do.MustInvoke[*StoreHandle](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewBookmarkService(storeHandle.Store, log.Logger), nil
}

// ProvideHistoryService provides the search history service.
func ProvideHistoryService(i do.Injector) (*service.HistoryService, error) {
	storeHandle := do.MustInvoke[*StoreHandle](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewHistoryService(storeHandle.Store, log.Logger), nil
}
