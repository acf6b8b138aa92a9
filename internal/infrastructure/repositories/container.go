package repositories

import (
	"github.com/rios0rios0/releaseforge/internal/domain/entities"
	"github.com/rios0rios0/releaseforge/internal/infrastructure/repositories/gitcli"
	"github.com/rios0rios0/releaseforge/internal/infrastructure/repositories/gogit"
	"go.uber.org/dig"
)

// RegisterProviders registers all repository providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register gateway registry with all gateway factories
	if err := container.Provide(func() *GatewayRegistry {
		reg := NewGatewayRegistry()
		reg.Register(entities.GatewayCLI, gitcli.NewSourceControlRepository)
		reg.Register(entities.GatewayNative, gogit.NewSourceControlRepository)
		return reg
	}); err != nil {
		return err
	}

	// Register the output sink factory
	if err := container.Provide(NewOutputFactory); err != nil {
		return err
	}

	return nil
}
