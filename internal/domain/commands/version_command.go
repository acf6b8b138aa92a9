package commands

import (
	"context"
	"fmt"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/releaseforge/internal/domain/entities"
	"github.com/rios0rios0/releaseforge/internal/domain/repositories"
	infraRepos "github.com/rios0rios0/releaseforge/internal/infrastructure/repositories"
)

// Version is the interface for the version command.
type Version interface {
	Execute(ctx context.Context, settings *entities.Settings, opts VersionOptions) error
}

// VersionOptions holds runtime options for a single version computation.
type VersionOptions struct {
	BumpKind string // "patch", "minor" or "major"
}

// VersionCommand computes the next release version: read the newest tag,
// apply the requested bump and publish both versions to the sink.
type VersionCommand struct {
	gatewayRegistry *infraRepos.GatewayRegistry
	outputFactory   *infraRepos.OutputFactory
}

// NewVersionCommand creates a new VersionCommand with the given registries.
func NewVersionCommand(
	gatewayRegistry *infraRepos.GatewayRegistry,
	outputFactory *infraRepos.OutputFactory,
) *VersionCommand {
	return &VersionCommand{
		gatewayRegistry: gatewayRegistry,
		outputFactory:   outputFactory,
	}
}

// Execute runs the version computation using the provided configuration.
func (it *VersionCommand) Execute(
	ctx context.Context,
	settings *entities.Settings,
	opts VersionOptions,
) error {
	if opts.BumpKind == "" {
		return fmt.Errorf("%w: bump kind (patch, minor or major)", entities.ErrMissingArgument)
	}

	kind, err := entities.ParseBumpKind(opts.BumpKind)
	if err != nil {
		return err
	}

	gateway, err := it.gatewayRegistry.Get(settings.Gateway.Type, settings.Gateway.RepoDir)
	if err != nil {
		return err
	}

	current, err := currentVersion(ctx, gateway)
	if err != nil {
		return err
	}

	next, err := current.Bump(kind)
	if err != nil {
		return err
	}

	logger.Infof("Version bump (%s): %s -> %s", kind, current, next)

	sink := it.outputFactory.For(settings.Output)
	return sink.WriteValues([]entities.OutputValue{
		{Name: "old_version", Value: current.String()},
		{Name: "new_version", Value: next.String()},
	})
}

// currentVersion reads the newest tag from the gateway. An untagged
// repository counts as v0.0.0, so the very first release still works.
func currentVersion(
	ctx context.Context,
	gateway repositories.SourceControlRepository,
) (entities.SemanticVersion, error) {
	tag, found, err := gateway.LatestTag(ctx)
	if err != nil {
		return entities.SemanticVersion{}, err
	}
	if !found {
		logger.Debug("No tags found, starting from v0.0.0")
		return entities.SemanticVersion{}, nil
	}

	return entities.ParseSemanticVersion(tag)
}
