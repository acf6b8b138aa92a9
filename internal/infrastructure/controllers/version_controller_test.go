//go:build unit

package controllers_test

import (
	"context"
	"errors"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/releaseforge/internal/infrastructure/controllers"
	doubles "github.com/rios0rios0/releaseforge/test/domain/commanddoubles"
)

func newTestCommand() *cobra.Command {
	//nolint:exhaustruct // Minimal Command initialization with required fields only
	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().String("config", "", "")
	cmd.Flags().String("repo-dir", "", "")
	cmd.SetContext(context.Background())
	return cmd
}

func TestVersionControllerExecute(t *testing.T) {
	t.Parallel()

	t.Run("should forward the bump kind argument to the command", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &doubles.StubVersionCommand{}
		controller := controllers.NewVersionController(stub)

		// when
		err := controller.Execute(newTestCommand(), []string{"minor"})

		// then
		require.NoError(t, err)
		assert.Equal(t, 1, stub.ExecuteCallCount)
		assert.Equal(t, "minor", stub.LastOpts.BumpKind)
		assert.NotNil(t, stub.LastSettings)
	})

	t.Run("should pass an empty bump kind when no argument is given", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &doubles.StubVersionCommand{}
		controller := controllers.NewVersionController(stub)

		// when
		err := controller.Execute(newTestCommand(), nil)

		// then
		require.NoError(t, err)
		assert.Empty(t, stub.LastOpts.BumpKind)
	})

	t.Run("should apply the repo-dir flag override", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &doubles.StubVersionCommand{}
		controller := controllers.NewVersionController(stub)
		cmd := newTestCommand()
		require.NoError(t, cmd.Flags().Set("repo-dir", "/srv/repo"))

		// when
		err := controller.Execute(cmd, []string{"patch"})

		// then
		require.NoError(t, err)
		assert.Equal(t, "/srv/repo", stub.LastSettings.Gateway.RepoDir)
	})

	t.Run("should return the command error", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &doubles.StubVersionCommand{ExecuteErr: errors.New("gateway exploded")}
		controller := controllers.NewVersionController(stub)

		// when
		err := controller.Execute(newTestCommand(), []string{"patch"})

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "gateway exploded")
	})
}
