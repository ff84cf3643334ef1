package providers

import (
	"github.com/samber/do/v2"

	"github.com/agentdex/agentdex-server/internal/config"
	"github.com/agentdex/agentdex-server/internal/logger"
	"github.com/agentdex/agentdex-server/internal/registry"
	"github.com/agentdex/agentdex-server/internal/taxonomy"
)

// ProvideRegistryClient provides the backend registry client.
func ProvideRegistryClient(i do.Injector) (*registry.Client, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)

	client, err := registry.New(registry.Config{
		BaseURL:           cfg.Registry.BaseURL,
		Timeout:           cfg.Registry.Timeout,
		RequestsPerSecond: cfg.Registry.RequestsPerSecond,
		Burst:             cfg.Registry.Burst,
	}, log.Logger)
	if err != nil {
		return nil, err
	}

	if client.Configured() {
		log.Info("Registry client configured", "base_url", cfg.Registry.BaseURL)
	} else {
		log.Warn("No backend registry configured, serving fallback dataset")
	}

	return client, nil
}

// ProvideTaxonomy provides the built-in taxonomy dataset.
func ProvideTaxonomy(i do.Injector) (*taxonomy.Taxonomy, error) {
	return taxonomy.Default(), nil
}
