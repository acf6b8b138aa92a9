package gitcli

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/rios0rios0/releaseforge/internal/domain/entities"
	domainRepos "github.com/rios0rios0/releaseforge/internal/domain/repositories"
)

// fieldSeparator splits the hash from the subject in git log output. The
// ASCII unit separator cannot appear in either field.
const fieldSeparator = "\x1f"

// noTagSignals are stderr fragments git prints when describe finds no tag.
// Matching any of them means "empty repository", not a gateway failure.
var noTagSignals = []string{
	"No names found",
	"No tags can describe",
	"cannot describe",
}

// SourceControlRepository reads release history by shelling out to the git
// binary, the default gateway.
type SourceControlRepository struct {
	repoDir string
}

// NewSourceControlRepository creates a gateway reading the repository at repoDir.
func NewSourceControlRepository(repoDir string) domainRepos.SourceControlRepository {
	return &SourceControlRepository{repoDir: repoDir}
}

// LatestTag resolves the newest tag reachable from HEAD via `git describe`.
func (it *SourceControlRepository) LatestTag(ctx context.Context) (string, bool, error) {
	output, err := it.runGit(ctx, "describe", "--tags", "--abbrev=0")
	if err != nil {
		stderr := stderrOf(err)
		if isNoTagSignal(stderr) {
			return "", false, nil
		}
		return "", false, fmt.Errorf(
			"%w: git describe in %q: %s", entities.ErrGatewayUnavailable, it.repoDir, firstLine(stderr),
		)
	}

	return strings.TrimSpace(output), true, nil
}

// CommitsInRange lists the commits in from..to, newest first, without merge
// commits. An empty from lists the entire history of to.
func (it *SourceControlRepository) CommitsInRange(
	ctx context.Context,
	from, to string,
) ([]entities.Commit, error) {
	rangeSpec := to
	if from != "" {
		rangeSpec = from + ".." + to
	}

	output, err := it.runGit(
		ctx, "log", "--no-merges", "--pretty=format:%H"+fieldSeparator+"%s", rangeSpec,
	)
	if err != nil {
		return nil, fmt.Errorf(
			"%w: git log %s in %q: %s",
			entities.ErrGatewayUnavailable, rangeSpec, it.repoDir, firstLine(stderrOf(err)),
		)
	}

	return parseLog(output), nil
}

// runGit executes one git command in the repository directory, returning its
// stdout.
func (it *SourceControlRepository) runGit(ctx context.Context, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = it.repoDir

	output, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("git %s: %w", strings.Join(args, " "), err)
	}

	return string(output), nil
}

// parseLog converts `git log --pretty=format:%H<US>%s` output into commits,
// skipping lines without the separator.
func parseLog(output string) []entities.Commit {
	lines := strings.Split(strings.TrimSpace(output), "\n")
	commits := make([]entities.Commit, 0, len(lines))
	for _, line := range lines {
		hash, subject, found := strings.Cut(line, fieldSeparator)
		if !found || hash == "" {
			continue
		}
		commits = append(commits, entities.Commit{
			Hash:    strings.TrimSpace(hash),
			Subject: strings.TrimSpace(subject),
		})
	}
	return commits
}

// isNoTagSignal reports whether the stderr of a failed describe means the
// repository simply has no tags yet.
func isNoTagSignal(stderr string) bool {
	for _, signal := range noTagSignals {
		if strings.Contains(stderr, signal) {
			return true
		}
	}
	return false
}

// stderrOf extracts the captured stderr of a failed git invocation.
func stderrOf(err error) string {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return string(exitErr.Stderr)
	}
	return err.Error()
}

func firstLine(text string) string {
	line, _, _ := strings.Cut(strings.TrimSpace(text), "\n")
	return line
}
