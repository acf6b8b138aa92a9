package commands

import (
	"go.uber.org/dig"
)

// RegisterProviders registers all command providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register command constructors
	if err := container.Provide(NewVersionCommand); err != nil {
		return err
	}
	if err := container.Provide(NewChangelogCommand); err != nil {
		return err
	}
	if err := container.Provide(NewSummaryCommand); err != nil {
		return err
	}

	// Bind interfaces to implementations
	if err := container.Provide(func(impl *VersionCommand) Version {
		return impl
	}); err != nil {
		return err
	}
	if err := container.Provide(func(impl *ChangelogCommand) Changelog {
		return impl
	}); err != nil {
		return err
	}
	if err := container.Provide(func(impl *SummaryCommand) Summary {
		return impl
	}); err != nil {
		return err
	}

	return nil
}
