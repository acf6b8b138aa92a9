package commands

import (
	"context"
	"fmt"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/releaseforge/internal/domain/entities"
	infraRepos "github.com/rios0rios0/releaseforge/internal/infrastructure/repositories"
)

// Changelog is the interface for the changelog command.
type Changelog interface {
	Execute(ctx context.Context, settings *entities.Settings, opts ChangelogOptions) error
}

// ChangelogOptions holds runtime options for a single changelog rendering.
type ChangelogOptions struct {
	TargetVersion string // label for the document heading, e.g. "v1.4.0"
	SourceRef     string // If set, render commits since this ref (CLI override)
}

// ChangelogCommand renders the changelog for the upcoming release: collect
// the commits since the last release and group them into sections.
type ChangelogCommand struct {
	gatewayRegistry *infraRepos.GatewayRegistry
	outputFactory   *infraRepos.OutputFactory
}

// NewChangelogCommand creates a new ChangelogCommand with the given registries.
func NewChangelogCommand(
	gatewayRegistry *infraRepos.GatewayRegistry,
	outputFactory *infraRepos.OutputFactory,
) *ChangelogCommand {
	return &ChangelogCommand{
		gatewayRegistry: gatewayRegistry,
		outputFactory:   outputFactory,
	}
}

// Execute renders the changelog using the provided configuration. Without an
// explicit source ref the range starts at the newest tag, or covers the whole
// history when the repository has no tags yet.
func (it *ChangelogCommand) Execute(
	ctx context.Context,
	settings *entities.Settings,
	opts ChangelogOptions,
) error {
	if opts.TargetVersion == "" {
		return fmt.Errorf("%w: target version label", entities.ErrMissingArgument)
	}

	gateway, err := it.gatewayRegistry.Get(settings.Gateway.Type, settings.Gateway.RepoDir)
	if err != nil {
		return err
	}

	sourceRef := opts.SourceRef
	if sourceRef == "" {
		tag, found, tagErr := gateway.LatestTag(ctx)
		if tagErr != nil {
			return tagErr
		}
		if found {
			sourceRef = tag
		}
	}

	commits, err := gateway.CommitsInRange(ctx, sourceRef, "HEAD")
	if err != nil {
		return err
	}

	if sourceRef == "" {
		logger.Infof("Rendering changelog for %s from full history (%d commits)",
			opts.TargetVersion, len(commits))
	} else {
		logger.Infof("Rendering changelog for %s since %s (%d commits)",
			opts.TargetVersion, sourceRef, len(commits))
	}

	document := entities.RenderChangelog(commits, opts.TargetVersion)

	sink := it.outputFactory.For(settings.Output)
	return sink.WriteValues([]entities.OutputValue{
		{Name: "changelog", Value: document},
	})
}
