//go:build unit

package commands_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/releaseforge/internal/domain/commands"
	"github.com/rios0rios0/releaseforge/internal/domain/entities"
	"github.com/rios0rios0/releaseforge/internal/domain/repositories"
	infraRepos "github.com/rios0rios0/releaseforge/internal/infrastructure/repositories"
	doubles "github.com/rios0rios0/releaseforge/test/infrastructure/repositorydoubles"
)

// testSinkSettings points both sink files into a fresh temp dir and returns
// the settings plus the values file path.
func testSinkSettings(t *testing.T) (*entities.Settings, string) {
	t.Helper()

	dir := t.TempDir()
	valuesPath := filepath.Join(dir, "values.txt")
	return &entities.Settings{
		Gateway: entities.GatewaySettings{Type: "stub", RepoDir: "."},
		Output: entities.OutputSettings{
			ValuesPath: valuesPath,
			ReportPath: filepath.Join(dir, "report.md"),
		},
	}, valuesPath
}

func registryWith(stub repositories.SourceControlRepository) *infraRepos.GatewayRegistry {
	registry := infraRepos.NewGatewayRegistry()
	registry.Register("stub", func(_ string) repositories.SourceControlRepository {
		return stub
	})
	return registry
}

func TestVersionCommandExecute(t *testing.T) {
	t.Parallel()

	t.Run("should bump the newest tag and publish both versions", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &doubles.StubSourceControlRepository{Tag: "v1.2.3", TagFound: true}
		cmd := commands.NewVersionCommand(registryWith(stub), infraRepos.NewOutputFactory())
		settings, valuesPath := testSinkSettings(t)

		// when
		err := cmd.Execute(context.Background(), settings, commands.VersionOptions{BumpKind: "minor"})

		// then
		require.NoError(t, err)
		content, readErr := os.ReadFile(valuesPath)
		require.NoError(t, readErr)
		assert.Contains(t, string(content), "old_version=v1.2.3\n")
		assert.Contains(t, string(content), "new_version=v1.3.0\n")
	})

	t.Run("should start from v0.0.0 when the repository has no tags", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &doubles.StubSourceControlRepository{TagFound: false}
		cmd := commands.NewVersionCommand(registryWith(stub), infraRepos.NewOutputFactory())
		settings, valuesPath := testSinkSettings(t)

		// when
		err := cmd.Execute(context.Background(), settings, commands.VersionOptions{BumpKind: "patch"})

		// then
		require.NoError(t, err)
		content, readErr := os.ReadFile(valuesPath)
		require.NoError(t, readErr)
		assert.Contains(t, string(content), "old_version=v0.0.0\n")
		assert.Contains(t, string(content), "new_version=v0.0.1\n")
	})

	t.Run("should fail with ErrMissingArgument when the bump kind is absent", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &doubles.StubSourceControlRepository{}
		cmd := commands.NewVersionCommand(registryWith(stub), infraRepos.NewOutputFactory())
		settings, _ := testSinkSettings(t)

		// when
		err := cmd.Execute(context.Background(), settings, commands.VersionOptions{})

		// then
		require.ErrorIs(t, err, entities.ErrMissingArgument)
		assert.Zero(t, stub.TagCalls)
	})

	t.Run("should fail with ErrUnknownBumpKind before touching the gateway", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &doubles.StubSourceControlRepository{Tag: "v1.0.0", TagFound: true}
		cmd := commands.NewVersionCommand(registryWith(stub), infraRepos.NewOutputFactory())
		settings, _ := testSinkSettings(t)

		// when
		err := cmd.Execute(context.Background(), settings, commands.VersionOptions{BumpKind: "hotfix"})

		// then
		require.ErrorIs(t, err, entities.ErrUnknownBumpKind)
		assert.Zero(t, stub.TagCalls)
	})

	t.Run("should surface ErrInvalidFormat for a malformed newest tag", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &doubles.StubSourceControlRepository{Tag: "release-2026-08", TagFound: true}
		cmd := commands.NewVersionCommand(registryWith(stub), infraRepos.NewOutputFactory())
		settings, _ := testSinkSettings(t)

		// when
		err := cmd.Execute(context.Background(), settings, commands.VersionOptions{BumpKind: "patch"})

		// then
		require.ErrorIs(t, err, entities.ErrInvalidFormat)
	})

	t.Run("should propagate gateway failures", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &doubles.StubSourceControlRepository{TagErr: entities.ErrGatewayUnavailable}
		cmd := commands.NewVersionCommand(registryWith(stub), infraRepos.NewOutputFactory())
		settings, _ := testSinkSettings(t)

		// when
		err := cmd.Execute(context.Background(), settings, commands.VersionOptions{BumpKind: "patch"})

		// then
		require.ErrorIs(t, err, entities.ErrGatewayUnavailable)
	})

	t.Run("should fail for an unregistered gateway type", func(t *testing.T) {
		t.Parallel()

		// given
		cmd := commands.NewVersionCommand(infraRepos.NewGatewayRegistry(), infraRepos.NewOutputFactory())
		settings, _ := testSinkSettings(t)

		// when
		err := cmd.Execute(context.Background(), settings, commands.VersionOptions{BumpKind: "patch"})

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown gateway type")
	})
}
