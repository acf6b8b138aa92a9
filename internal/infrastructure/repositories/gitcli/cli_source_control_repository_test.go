//go:build unit

package gitcli_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/releaseforge/internal/infrastructure/repositories/gitcli"
)

func TestParseLog(t *testing.T) {
	t.Parallel()

	t.Run("should parse hash and subject split by the unit separator", func(t *testing.T) {
		t.Parallel()

		// given
		output := "1111111aaaaaaa" + gitcli.FieldSeparator + "feat: add retry logic\n" +
			"2222222bbbbbbb" + gitcli.FieldSeparator + "fix: handle nil pointer\n"

		// when
		commits := gitcli.ParseLog(output)

		// then
		require.Len(t, commits, 2)
		assert.Equal(t, "1111111aaaaaaa", commits[0].Hash)
		assert.Equal(t, "feat: add retry logic", commits[0].Subject)
		assert.Equal(t, "2222222bbbbbbb", commits[1].Hash)
		assert.Equal(t, "fix: handle nil pointer", commits[1].Subject)
	})

	t.Run("should keep subjects containing separators like dashes and colons", func(t *testing.T) {
		t.Parallel()

		// given
		output := "3333333ccccccc" + gitcli.FieldSeparator + "fix: parse a:b=c -- weird subjects"

		// when
		commits := gitcli.ParseLog(output)

		// then
		require.Len(t, commits, 1)
		assert.Equal(t, "fix: parse a:b=c -- weird subjects", commits[0].Subject)
	})

	t.Run("should return no commits for empty output", func(t *testing.T) {
		t.Parallel()

		// when / then
		assert.Empty(t, gitcli.ParseLog(""))
		assert.Empty(t, gitcli.ParseLog("\n\n"))
	})

	t.Run("should skip lines without the separator", func(t *testing.T) {
		t.Parallel()

		// given
		output := "garbage line\n" +
			"4444444ddddddd" + gitcli.FieldSeparator + "chore: keep this one\n"

		// when
		commits := gitcli.ParseLog(output)

		// then
		require.Len(t, commits, 1)
		assert.Equal(t, "chore: keep this one", commits[0].Subject)
	})

	t.Run("should keep an empty subject for subject-less commits", func(t *testing.T) {
		t.Parallel()

		// given
		output := "5555555eeeeeee" + gitcli.FieldSeparator

		// when
		commits := gitcli.ParseLog(output)

		// then
		require.Len(t, commits, 1)
		assert.Empty(t, commits[0].Subject)
	})
}

func TestIsNoTagSignal(t *testing.T) {
	t.Parallel()

	t.Run("should recognize every stderr message describe prints without tags", func(t *testing.T) {
		t.Parallel()

		// given
		signals := []string{
			"fatal: No names found, cannot describe anything.\n",
			"fatal: No tags can describe 'abc123'.\n",
			"fatal: cannot describe 'abc123'\n",
		}

		// when / then
		for _, stderr := range signals {
			assert.True(t, gitcli.IsNoTagSignal(stderr), stderr)
		}
	})

	t.Run("should treat any other failure as a gateway error", func(t *testing.T) {
		t.Parallel()

		// given
		stderr := "fatal: not a git repository (or any of the parent directories): .git\n"

		// when / then
		assert.False(t, gitcli.IsNoTagSignal(stderr))
	})
}
