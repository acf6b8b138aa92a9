package repositories

import (
	"context"

	"github.com/rios0rios0/releaseforge/internal/domain/entities"
)

// SourceControlRepository abstracts the source control system the release
// data is read from. Implementations only read; nothing in the release flow
// writes back to the repository.
type SourceControlRepository interface {
	// LatestTag returns the most recent release tag. found is false when the
	// repository has no tags yet; err is reserved for gateway failures.
	LatestTag(ctx context.Context) (tag string, found bool, err error)

	// CommitsInRange lists the commits reachable from to but not from from,
	// newest first, excluding merge commits. An empty from means the entire
	// history of to.
	CommitsInRange(ctx context.Context, from, to string) ([]entities.Commit, error)
}
