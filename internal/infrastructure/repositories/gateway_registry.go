package repositories

import (
	"fmt"

	domainRepos "github.com/rios0rios0/releaseforge/internal/domain/repositories"
)

// GatewayFactory is a constructor function that creates a SourceControlRepository
// reading the repository at the given directory.
type GatewayFactory func(repoDir string) domainRepos.SourceControlRepository

// GatewayRegistry manages all registered source control gateway implementations.
type GatewayRegistry struct {
	gateways map[string]GatewayFactory
}

// NewGatewayRegistry creates an empty gateway registry.
func NewGatewayRegistry() *GatewayRegistry {
	return &GatewayRegistry{
		gateways: make(map[string]GatewayFactory),
	}
}

// Register adds a gateway factory under the given name (e.g. "cli").
func (r *GatewayRegistry) Register(name string, factory GatewayFactory) {
	r.gateways[name] = factory
}

// Get returns a configured gateway instance for the given name and directory.
func (r *GatewayRegistry) Get(name, repoDir string) (domainRepos.SourceControlRepository, error) {
	factory, ok := r.gateways[name]
	if !ok {
		return nil, fmt.Errorf("unknown gateway type: %q", name)
	}
	return factory(repoDir), nil
}

// Names returns the list of registered gateway names.
func (r *GatewayRegistry) Names() []string {
	names := make([]string, 0, len(r.gateways))
	for name := range r.gateways {
		names = append(names, name)
	}
	return names
}
