package controllers

import (
	"github.com/rios0rios0/releaseforge/internal/domain/entities"
	"go.uber.org/dig"
)

// RegisterProviders registers all controller providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register controller constructors
	if err := container.Provide(NewVersionController); err != nil {
		return err
	}
	if err := container.Provide(NewChangelogController); err != nil {
		return err
	}
	if err := container.Provide(NewSummaryController); err != nil {
		return err
	}
	if err := container.Provide(NewControllers); err != nil {
		return err
	}

	return nil
}

// NewControllers aggregates all controllers into a slice for the AppInternal.
func NewControllers(
	versionController *VersionController,
	changelogController *ChangelogController,
	summaryController *SummaryController,
) *[]entities.Controller {
	return &[]entities.Controller{
		versionController,
		changelogController,
		summaryController,
	}
}
