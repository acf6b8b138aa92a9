//go:build integration || unit || test

// Package repositorydoubles provides test doubles (spies, stubs, dummies) for
// repository interfaces. These are hand-crafted implementations, no mock
// frameworks.
package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/releaseforge/internal/domain/entities"
	"github.com/rios0rios0/releaseforge/internal/domain/repositories"
)

// StubSourceControlRepository implements repositories.SourceControlRepository
// as a configurable stub with call tracking.
type StubSourceControlRepository struct {
	// --- LatestTag ---
	Tag      string
	TagFound bool
	TagErr   error
	TagCalls int

	// --- CommitsInRange ---
	Commits    []entities.Commit
	CommitsErr error
	// spy: ranges that were requested
	RequestedRanges []CommitRange
}

// CommitRange records a single CommitsInRange invocation.
type CommitRange struct {
	From string
	To   string
}

var _ repositories.SourceControlRepository = (*StubSourceControlRepository)(nil)

func (s *StubSourceControlRepository) LatestTag(_ context.Context) (string, bool, error) {
	s.TagCalls++
	return s.Tag, s.TagFound, s.TagErr
}

func (s *StubSourceControlRepository) CommitsInRange(
	_ context.Context,
	from, to string,
) ([]entities.Commit, error) {
	s.RequestedRanges = append(s.RequestedRanges, CommitRange{From: from, To: to})
	return s.Commits, s.CommitsErr
}

// DummySourceControlRepository is a no-op implementation of
// repositories.SourceControlRepository.
type DummySourceControlRepository struct{}

var _ repositories.SourceControlRepository = (*DummySourceControlRepository)(nil)

func (d *DummySourceControlRepository) LatestTag(_ context.Context) (string, bool, error) {
	return "", false, nil
}

func (d *DummySourceControlRepository) CommitsInRange(
	_ context.Context,
	_, _ string,
) ([]entities.Commit, error) {
	return nil, nil
}
