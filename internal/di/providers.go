package di

import (
	"github.com/samber/do/v2"

	"github.com/shelfmarkapp/shelfmark/internal/config"
	"github.com/shelfmarkapp/shelfmark/internal/logger"
	"github.com/shelfmarkapp/shelfmark/internal/service"
)

// ProvideConfig returns a provider for the application configuration,
// parsing the given command-line arguments.
func ProvideConfig(args []string) func(do.Injector) (*config.Config, error) {
	return func(do.Injector) (*config.Config, error) {
		return config.LoadConfig(args)
	}
}

// ProvideLogger provides the structured logger.
func ProvideLogger(i do.Injector) (*logger.Logger, error) {
	cfg := do.MustInvoke[*config.Config](i)

	log := logger.New(logger.Config{
		Level:       logger.ParseLevel(cfg.Logger.Level),
		Format:      cfg.Logger.Format,
		Environment: cfg.App.Environment,
	})

	log.Info("starting Shelfmark catalog",
		"environment", cfg.App.Environment,
		"log_level", cfg.Logger.Level,
	)

	return log, nil
}

// ProvideCatalog provides the catalog service.
func ProvideCatalog(i do.Injector) (*service.Catalog, error) {
	log := do.MustInvoke[*logger.Logger](i)
	return service.NewCatalog(log.Logger), nil
}
