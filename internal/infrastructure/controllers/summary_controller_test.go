//go:build unit

package controllers_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/releaseforge/internal/infrastructure/controllers"
	doubles "github.com/rios0rios0/releaseforge/test/domain/commanddoubles"
)

func TestSummaryControllerExecute(t *testing.T) {
	t.Parallel()

	t.Run("should map every flag into the command options", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &doubles.StubSummaryCommand{}
		controller := controllers.NewSummaryController(stub)
		cmd := newTestCommand()
		controller.AddFlags(cmd)
		require.NoError(t, cmd.Flags().Set("new-version", "v1.3.0"))
		require.NoError(t, cmd.Flags().Set("previous-version", "v1.2.4"))
		require.NoError(t, cmd.Flags().Set("bump-kind", "minor"))
		require.NoError(t, cmd.Flags().Set("image-tags", "app:v1.3.0,app:latest"))
		require.NoError(t, cmd.Flags().Set("deployment-status", "skipped"))

		// when
		err := controller.Execute(cmd, nil)

		// then
		require.NoError(t, err)
		assert.Equal(t, "v1.3.0", stub.LastOpts.NewVersion)
		assert.Equal(t, "v1.2.4", stub.LastOpts.PreviousVersion)
		assert.Equal(t, "minor", stub.LastOpts.BumpKind)
		assert.Equal(t, []string{"app:v1.3.0", "app:latest"}, stub.LastOpts.ImageTags)
		assert.Equal(t, "skipped", stub.LastOpts.DeploymentStatus)
	})

	t.Run("should trim image tags and drop empty items", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &doubles.StubSummaryCommand{}
		controller := controllers.NewSummaryController(stub)
		cmd := newTestCommand()
		controller.AddFlags(cmd)
		require.NoError(t, cmd.Flags().Set("new-version", "v1.3.0"))
		require.NoError(t, cmd.Flags().Set("previous-version", "v1.2.4"))
		require.NoError(t, cmd.Flags().Set("bump-kind", "minor"))
		require.NoError(t, cmd.Flags().Set("image-tags", `app:v1.3.0, app:latest ,,`))

		// when
		err := controller.Execute(cmd, nil)

		// then
		require.NoError(t, err)
		assert.Equal(t, []string{"app:v1.3.0", "app:latest"}, stub.LastOpts.ImageTags)
	})

	t.Run("should leave optional flags empty when not set", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &doubles.StubSummaryCommand{}
		controller := controllers.NewSummaryController(stub)
		cmd := newTestCommand()
		controller.AddFlags(cmd)

		// when
		err := controller.Execute(cmd, nil)

		// then
		require.NoError(t, err)
		assert.Empty(t, stub.LastOpts.ImageTags)
		assert.Empty(t, stub.LastOpts.DeploymentStatus)
	})
}
