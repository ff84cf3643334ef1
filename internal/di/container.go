// Package di provides dependency injection configuration for the AgentDex server.
package di

import (
	"github.com/samber/do/v2"

	"github.com/agentdex/agentdex-server/internal/config"
	"github.com/agentdex/agentdex-server/internal/di/providers"
	"github.com/agentdex/agentdex-server/internal/logger"
	"github.com/agentdex/agentdex-server/internal/registry"
	"github.com/agentdex/agentdex-server/internal/service"
	"github.com/agentdex/agentdex-server/internal/taxonomy"
)

// NewContainer creates and configures the DI container with all providers.
func NewContainer() *do.RootScope {
	injector := do.New()

	// Core infrastructure
	do.Provide(injector, providers.ProvideConfig)
	do.Provide(injector, providers.ProvideLogger)

	// Data layer
	do.Provide(injector, providers.ProvideStore)
	do.Provide(injector, providers.ProvideRegistryClient)
	do.Provide(injector, providers.ProvideTaxonomy)

	// Business services
	do.Provide(injector, providers.ProvideAgentService)
	do.Provide(injector, providers.ProvideTaxonomyService)
	do.Provide(injector, providers.ProvideBookmarkService)
	do.Provide(injector, providers.ProvideHistoryService)

	// Server
	do.Provide(injector, providers.ProvideHTTPServer)

	return injector
}

// Bootstrap initializes all services and returns once the server is up.
// This triggers lazy initialization of every provider.
func Bootstrap(injector *do.RootScope) error {
	_ = do.MustInvoke[*config.Config](injector)
	_ = do.MustInvoke[*logger.Logger](injector)
	_ = do.MustInvoke[*providers.StoreHandle](injector)
	_ = do.MustInvoke[*registry.Client](injector)
	_ = do.MustInvoke[*taxonomy.Taxonomy](injector)

	_ = do.MustInvoke[*service.AgentService](injector)
	_ = do.MustInvoke[*service.TaxonomyService](injector)
	_ = do.MustInvoke[*service.BookmarkService](injector)
	_ = do.MustInvoke[*service.HistoryService](injector)

	_ = do.MustInvoke[*providers.HTTPServerHandle](injector)

	return nil
}
