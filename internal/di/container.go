// Package di provides dependency injection configuration for the Shelfmark demo binary.
package di

import (
	"github.com/samber/do/v2"
)

// NewContainer creates and configures the DI container with all providers.
func NewContainer(args []string) *do.RootScope {
	injector := do.New()

	// Core infrastructure
	do.Provide(injector, ProvideConfig(args))
	do.Provide(injector, ProvideLogger)

	// Catalog engine
	do.Provide(injector, ProvideCatalog)

	return injector
}
