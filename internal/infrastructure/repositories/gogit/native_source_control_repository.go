package gogit

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"golang.org/x/mod/semver"

	"github.com/rios0rios0/releaseforge/internal/domain/entities"
	domainRepos "github.com/rios0rios0/releaseforge/internal/domain/repositories"
)

// SourceControlRepository reads release history in-process via go-git, for
// hosts without a git binary (containers, scratch images).
type SourceControlRepository struct {
	repoDir string
}

// NewSourceControlRepository creates a gateway reading the repository at repoDir.
func NewSourceControlRepository(repoDir string) domainRepos.SourceControlRepository {
	return &SourceControlRepository{repoDir: repoDir}
}

// LatestTag returns the highest semantic version among all tag names.
// Non-semver tags sort by plain string comparison.
func (it *SourceControlRepository) LatestTag(ctx context.Context) (string, bool, error) {
	repo, err := it.open()
	if err != nil {
		return "", false, err
	}

	tagRefs, err := repo.Tags()
	if err != nil {
		return "", false, fmt.Errorf("%w: list tags: %v", entities.ErrGatewayUnavailable, err)
	}
	defer tagRefs.Close()

	var names []string
	err = tagRefs.ForEach(func(ref *plumbing.Reference) error {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		names = append(names, ref.Name().Short())
		return nil
	})
	if err != nil {
		return "", false, fmt.Errorf("%w: iterate tags: %v", entities.ErrGatewayUnavailable, err)
	}

	if len(names) == 0 {
		return "", false, nil
	}

	sortVersionsDescending(names)
	return names[0], true, nil
}

// CommitsInRange walks history from to, skipping merge commits and every
// commit reachable from from, newest first.
func (it *SourceControlRepository) CommitsInRange(
	ctx context.Context,
	from, to string,
) ([]entities.Commit, error) {
	repo, err := it.open()
	if err != nil {
		return nil, err
	}

	toHash, err := resolveCommit(repo, to)
	if err != nil {
		return nil, err
	}

	excluded := map[plumbing.Hash]struct{}{}
	if from != "" {
		fromHash, resolveErr := resolveCommit(repo, from)
		if resolveErr != nil {
			return nil, resolveErr
		}
		excluded, err = reachableFrom(ctx, repo, fromHash)
		if err != nil {
			return nil, err
		}
	}

	iter, err := repo.Log(&git.LogOptions{From: toHash, Order: git.LogOrderCommitterTime})
	if err != nil {
		return nil, fmt.Errorf("%w: read log: %v", entities.ErrGatewayUnavailable, err)
	}
	defer iter.Close()

	var commits []entities.Commit
	err = iter.ForEach(func(commit *object.Commit) error {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if commit.NumParents() > 1 {
			return nil // merge commit
		}
		if _, skip := excluded[commit.Hash]; skip {
			return nil
		}
		commits = append(commits, entities.Commit{
			Hash:    commit.Hash.String(),
			Subject: subjectOf(commit.Message),
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: walk history: %v", entities.ErrGatewayUnavailable, err)
	}

	return commits, nil
}

func (it *SourceControlRepository) open() (*git.Repository, error) {
	repo, err := git.PlainOpen(it.repoDir)
	if err != nil {
		return nil, fmt.Errorf("%w: open %q: %v", entities.ErrGatewayUnavailable, it.repoDir, err)
	}
	return repo, nil
}

// resolveCommit resolves a revision (tag, branch, hash) to a commit hash,
// peeling annotated tags.
func resolveCommit(repo *git.Repository, revision string) (plumbing.Hash, error) {
	hash, err := repo.ResolveRevision(plumbing.Revision(revision))
	if err != nil {
		return plumbing.ZeroHash, fmt.Errorf(
			"%w: resolve %q: %v", entities.ErrGatewayUnavailable, revision, err,
		)
	}

	if tag, tagErr := repo.TagObject(*hash); tagErr == nil {
		commit, commitErr := tag.Commit()
		if commitErr != nil {
			return plumbing.ZeroHash, fmt.Errorf(
				"%w: peel tag %q: %v", entities.ErrGatewayUnavailable, revision, commitErr,
			)
		}
		return commit.Hash, nil
	}

	return *hash, nil
}

// reachableFrom collects every commit hash reachable from start, giving
// from..to the same exclusion semantics the git binary has.
func reachableFrom(
	ctx context.Context,
	repo *git.Repository,
	start plumbing.Hash,
) (map[plumbing.Hash]struct{}, error) {
	iter, err := repo.Log(&git.LogOptions{From: start})
	if err != nil {
		return nil, fmt.Errorf("%w: read log: %v", entities.ErrGatewayUnavailable, err)
	}
	defer iter.Close()

	seen := make(map[plumbing.Hash]struct{})
	err = iter.ForEach(func(commit *object.Commit) error {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		seen[commit.Hash] = struct{}{}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: walk history: %v", entities.ErrGatewayUnavailable, err)
	}

	return seen, nil
}

func subjectOf(message string) string {
	line, _, _ := strings.Cut(message, "\n")
	return strings.TrimSpace(line)
}

func sortVersionsDescending(versions []string) {
	sort.Slice(versions, func(i, j int) bool {
		v1 := normalizeVersion(versions[i])
		v2 := normalizeVersion(versions[j])
		if semver.IsValid(v1) && semver.IsValid(v2) {
			return semver.Compare(v1, v2) > 0
		}
		return versions[i] > versions[j]
	})
}

func normalizeVersion(version string) string {
	if strings.HasPrefix(version, "v") {
		return version
	}
	return "v" + version
}
