//go:build unit

package entities_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rios0rios0/releaseforge/internal/domain/entities"
	builders "github.com/rios0rios0/releaseforge/test/domain/entitybuilders"
)

func TestRenderReleaseSummary(t *testing.T) {
	t.Parallel()

	t.Run("should render the version table for every release", func(t *testing.T) {
		t.Parallel()

		// given
		summary := builders.NewReleaseSummaryBuilder().
			WithPreviousVersion(entities.SemanticVersion{Major: 1, Minor: 2, Patch: 4}).
			WithNewVersion(entities.SemanticVersion{Major: 1, Minor: 3, Patch: 0}).
			WithBumpKind(entities.BumpMinor).
			BuildReleaseSummary()

		// when
		report := entities.RenderReleaseSummary(summary)

		// then
		assert.Contains(t, report, "# Release v1.3.0\n")
		assert.Contains(t, report, "| Previous version | v1.2.4 |\n")
		assert.Contains(t, report, "| New version | v1.3.0 |\n")
		assert.Contains(t, report, "| Bump kind | minor |\n")
	})

	t.Run("should list image tags when present", func(t *testing.T) {
		t.Parallel()

		// given
		summary := builders.NewReleaseSummaryBuilder().
			WithImageTags("registry.example.com/app:v1.3.0", "registry.example.com/app:latest").
			BuildReleaseSummary()

		// when
		report := entities.RenderReleaseSummary(summary)

		// then
		assert.Contains(t, report, "## Images\n")
		assert.Contains(t, report, "- registry.example.com/app:v1.3.0\n")
		assert.Contains(t, report, "- registry.example.com/app:latest\n")
	})

	t.Run("should omit the images section without tags", func(t *testing.T) {
		t.Parallel()

		// given
		summary := builders.NewReleaseSummaryBuilder().BuildReleaseSummary()

		// when
		report := entities.RenderReleaseSummary(summary)

		// then
		assert.NotContains(t, report, "## Images")
	})

	t.Run("should render the success indicator", func(t *testing.T) {
		t.Parallel()

		// given
		summary := builders.NewReleaseSummaryBuilder().
			WithDeploymentStatus(entities.DeploymentSuccess).
			BuildReleaseSummary()

		// when
		report := entities.RenderReleaseSummary(summary)

		// then
		assert.Contains(t, report, "## Deployment\n")
		assert.Contains(t, report, "✅ Deployment succeeded\n")
	})

	t.Run("should render the skipped indicator", func(t *testing.T) {
		t.Parallel()

		// given
		summary := builders.NewReleaseSummaryBuilder().
			WithDeploymentStatus(entities.DeploymentSkipped).
			BuildReleaseSummary()

		// when
		report := entities.RenderReleaseSummary(summary)

		// then
		assert.Contains(t, report, "⏭️ Deployment skipped\n")
	})

	t.Run("should render every unrecognized status as failed", func(t *testing.T) {
		t.Parallel()

		for _, status := range []string{"failure", "error", "SUCCESS", "cancelled"} {
			// given
			summary := builders.NewReleaseSummaryBuilder().
				WithDeploymentStatus(status).
				BuildReleaseSummary()

			// when
			report := entities.RenderReleaseSummary(summary)

			// then
			assert.Contains(t, report, "❌ Deployment failed\n", "status: %q", status)
		}
	})

	t.Run("should omit the deployment section without a status", func(t *testing.T) {
		t.Parallel()

		// given
		summary := builders.NewReleaseSummaryBuilder().BuildReleaseSummary()

		// when
		report := entities.RenderReleaseSummary(summary)

		// then
		assert.NotContains(t, report, "## Deployment")
	})

	t.Run("should always render the follow-up checklist", func(t *testing.T) {
		t.Parallel()

		// given
		bare := builders.NewReleaseSummaryBuilder().BuildReleaseSummary()
		full := builders.NewReleaseSummaryBuilder().
			WithImageTags("app:v1.3.0").
			WithDeploymentStatus(entities.DeploymentSuccess).
			BuildReleaseSummary()

		// when / then
		for _, summary := range []entities.ReleaseSummary{bare, full} {
			report := entities.RenderReleaseSummary(summary)

			assert.Contains(t, report, "## Follow-up checklist\n")
			assert.GreaterOrEqual(t, strings.Count(report, "- [ ] "), 4)
		}
	})

	t.Run("should render a valid document for the zero summary", func(t *testing.T) {
		t.Parallel()

		// when
		report := entities.RenderReleaseSummary(entities.ReleaseSummary{})

		// then
		assert.Contains(t, report, "# Release v0.0.0\n")
		assert.Contains(t, report, "## Follow-up checklist\n")
	})
}
