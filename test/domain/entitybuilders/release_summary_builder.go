//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/releaseforge/internal/domain/entities"
	testkit "github.com/rios0rios0/testkit/pkg/test"
)

// ReleaseSummaryBuilder helps create test release summaries with a fluent interface.
type ReleaseSummaryBuilder struct {
	*testkit.BaseBuilder
	newVersion       entities.SemanticVersion
	previousVersion  entities.SemanticVersion
	bumpKind         entities.BumpKind
	imageTags        []string
	deploymentStatus string
}

// NewReleaseSummaryBuilder creates a new summary builder with sensible defaults.
func NewReleaseSummaryBuilder() *ReleaseSummaryBuilder {
	return &ReleaseSummaryBuilder{
		BaseBuilder:      testkit.NewBaseBuilder(),
		newVersion:       entities.SemanticVersion{Major: 1, Minor: 3, Patch: 0},
		previousVersion:  entities.SemanticVersion{Major: 1, Minor: 2, Patch: 4},
		bumpKind:         entities.BumpMinor,
		imageTags:        nil,
		deploymentStatus: "",
	}
}

// WithNewVersion sets the version being released.
func (b *ReleaseSummaryBuilder) WithNewVersion(version entities.SemanticVersion) *ReleaseSummaryBuilder {
	b.newVersion = version
	return b
}

// WithPreviousVersion sets the version released before this one.
func (b *ReleaseSummaryBuilder) WithPreviousVersion(version entities.SemanticVersion) *ReleaseSummaryBuilder {
	b.previousVersion = version
	return b
}

// WithBumpKind sets the bump kind of the transition.
func (b *ReleaseSummaryBuilder) WithBumpKind(kind entities.BumpKind) *ReleaseSummaryBuilder {
	b.bumpKind = kind
	return b
}

// WithImageTags sets the container image tags.
func (b *ReleaseSummaryBuilder) WithImageTags(tags ...string) *ReleaseSummaryBuilder {
	b.imageTags = tags
	return b
}

// WithDeploymentStatus sets the deployment status token.
func (b *ReleaseSummaryBuilder) WithDeploymentStatus(status string) *ReleaseSummaryBuilder {
	b.deploymentStatus = status
	return b
}

// Build creates the summary (satisfies testkit.Builder interface).
func (b *ReleaseSummaryBuilder) Build() interface{} {
	return b.BuildReleaseSummary()
}

// BuildReleaseSummary creates the summary with a concrete return type.
func (b *ReleaseSummaryBuilder) BuildReleaseSummary() entities.ReleaseSummary {
	return entities.ReleaseSummary{
		NewVersion:       b.newVersion,
		PreviousVersion:  b.previousVersion,
		BumpKind:         b.bumpKind,
		ImageTags:        b.imageTags,
		DeploymentStatus: b.deploymentStatus,
	}
}

// Reset clears the builder state, allowing it to be reused.
func (b *ReleaseSummaryBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.newVersion = entities.SemanticVersion{Major: 1, Minor: 3, Patch: 0}
	b.previousVersion = entities.SemanticVersion{Major: 1, Minor: 2, Patch: 4}
	b.bumpKind = entities.BumpMinor
	b.imageTags = nil
	b.deploymentStatus = ""
	return b
}

// Clone creates a deep copy of the ReleaseSummaryBuilder.
func (b *ReleaseSummaryBuilder) Clone() testkit.Builder {
	tags := make([]string, len(b.imageTags))
	copy(tags, b.imageTags)

	return &ReleaseSummaryBuilder{
		BaseBuilder:      b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		newVersion:       b.newVersion,
		previousVersion:  b.previousVersion,
		bumpKind:         b.bumpKind,
		imageTags:        tags,
		deploymentStatus: b.deploymentStatus,
	}
}
