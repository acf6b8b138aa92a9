package commands

import (
	"fmt"
	"strings"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/releaseforge/internal/domain/entities"
	infraRepos "github.com/rios0rios0/releaseforge/internal/infrastructure/repositories"
)

// Summary is the interface for the summary command.
type Summary interface {
	Execute(settings *entities.Settings, opts SummaryOptions) error
}

// SummaryOptions holds the inputs for a single summary rendering.
type SummaryOptions struct {
	NewVersion       string
	PreviousVersion  string
	BumpKind         string
	ImageTags        []string // container images built for this release
	DeploymentStatus string   // "success", "skipped", anything else means failed; empty omits the section
}

// SummaryCommand renders the human-facing release report from values the
// earlier pipeline steps computed.
type SummaryCommand struct {
	outputFactory *infraRepos.OutputFactory
}

// NewSummaryCommand creates a new SummaryCommand with the given sink factory.
func NewSummaryCommand(outputFactory *infraRepos.OutputFactory) *SummaryCommand {
	return &SummaryCommand{outputFactory: outputFactory}
}

// Execute validates the inputs, renders the report and publishes it.
func (it *SummaryCommand) Execute(settings *entities.Settings, opts SummaryOptions) error {
	if opts.NewVersion == "" {
		return fmt.Errorf("%w: --new-version", entities.ErrMissingArgument)
	}
	if opts.PreviousVersion == "" {
		return fmt.Errorf("%w: --previous-version", entities.ErrMissingArgument)
	}
	if opts.BumpKind == "" {
		return fmt.Errorf("%w: --bump-kind", entities.ErrMissingArgument)
	}

	kind, err := entities.ParseBumpKind(opts.BumpKind)
	if err != nil {
		return err
	}

	newVersion, err := entities.ParseSemanticVersion(opts.NewVersion)
	if err != nil {
		return err
	}

	previousVersion, err := entities.ParseSemanticVersion(opts.PreviousVersion)
	if err != nil {
		return err
	}

	warnOnBumpMismatch(previousVersion, newVersion, kind)

	report := entities.RenderReleaseSummary(entities.ReleaseSummary{
		NewVersion:       newVersion,
		PreviousVersion:  previousVersion,
		BumpKind:         kind,
		ImageTags:        opts.ImageTags,
		DeploymentStatus: opts.DeploymentStatus,
	})

	logger.Infof("Release summary: %s -> %s (%s bump)", previousVersion, newVersion, kind)
	if len(opts.ImageTags) > 0 {
		logger.Infof("Images: %s", strings.Join(opts.ImageTags, ", "))
	}
	if opts.DeploymentStatus != "" {
		logger.Infof("Deployment: %s", opts.DeploymentStatus)
	}

	sink := it.outputFactory.For(settings.Output)
	return sink.WriteReport(report)
}

// warnOnBumpMismatch flags transitions that disagree with the declared bump
// kind. A mismatch is suspicious but not fatal: the report still renders.
func warnOnBumpMismatch(previous, next entities.SemanticVersion, kind entities.BumpKind) {
	diff, clean := entities.DiffKind(previous, next)
	if !clean {
		logger.Warnf("Version transition %s -> %s is not a single bump step", previous, next)
		return
	}
	if diff != kind {
		logger.Warnf(
			"Version transition %s -> %s looks like a %s bump, not %s", previous, next, diff, kind,
		)
	}
}
