//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/releaseforge/internal/domain/commands"
	"github.com/rios0rios0/releaseforge/internal/domain/entities"
)

// StubVersionCommand is a stub implementation of commands.Version.
type StubVersionCommand struct {
	ExecuteCallCount int
	ExecuteErr       error
	LastSettings     *entities.Settings
	LastOpts         commands.VersionOptions
}

var _ commands.Version = (*StubVersionCommand)(nil)

func (s *StubVersionCommand) Execute(
	_ context.Context,
	settings *entities.Settings,
	opts commands.VersionOptions,
) error {
	s.ExecuteCallCount++
	s.LastSettings = settings
	s.LastOpts = opts
	return s.ExecuteErr
}
