//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/releaseforge/internal/domain/commands"
	"github.com/rios0rios0/releaseforge/internal/domain/entities"
)

// StubSummaryCommand is a stub implementation of commands.Summary.
type StubSummaryCommand struct {
	ExecuteCallCount int
	ExecuteErr       error
	LastSettings     *entities.Settings
	LastOpts         commands.SummaryOptions
}

var _ commands.Summary = (*StubSummaryCommand)(nil)

func (s *StubSummaryCommand) Execute(
	settings *entities.Settings,
	opts commands.SummaryOptions,
) error {
	s.ExecuteCallCount++
	s.LastSettings = settings
	s.LastOpts = opts
	return s.ExecuteErr
}
