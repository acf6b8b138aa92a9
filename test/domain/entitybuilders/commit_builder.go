//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/releaseforge/internal/domain/entities"
	testkit "github.com/rios0rios0/testkit/pkg/test"
)

// CommitBuilder helps create test commits with a fluent interface.
type CommitBuilder struct {
	*testkit.BaseBuilder
	hash    string
	subject string
}

// NewCommitBuilder creates a new commit builder with sensible defaults.
func NewCommitBuilder() *CommitBuilder {
	return &CommitBuilder{
		BaseBuilder: testkit.NewBaseBuilder(),
		hash:        "0123456789abcdef0123456789abcdef01234567",
		subject:     "chore: test commit",
	}
}

// WithHash sets the commit hash.
func (b *CommitBuilder) WithHash(hash string) *CommitBuilder {
	b.hash = hash
	return b
}

// WithSubject sets the commit subject.
func (b *CommitBuilder) WithSubject(subject string) *CommitBuilder {
	b.subject = subject
	return b
}

// Build creates the commit (satisfies testkit.Builder interface).
func (b *CommitBuilder) Build() interface{} {
	return b.BuildCommit()
}

// BuildCommit creates the commit with a concrete return type.
func (b *CommitBuilder) BuildCommit() entities.Commit {
	return entities.Commit{
		Hash:    b.hash,
		Subject: b.subject,
	}
}

// Reset clears the builder state, allowing it to be reused.
func (b *CommitBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.hash = "0123456789abcdef0123456789abcdef01234567"
	b.subject = "chore: test commit"
	return b
}

// Clone creates a deep copy of the CommitBuilder.
func (b *CommitBuilder) Clone() testkit.Builder {
	return &CommitBuilder{
		BaseBuilder: b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		hash:        b.hash,
		subject:     b.subject,
	}
}
