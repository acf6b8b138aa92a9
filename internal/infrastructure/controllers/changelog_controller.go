package controllers

import (
	"github.com/spf13/cobra"

	"github.com/rios0rios0/releaseforge/internal/domain/commands"
	"github.com/rios0rios0/releaseforge/internal/domain/entities"
)

// ChangelogController handles the "changelog" subcommand.
type ChangelogController struct {
	command commands.Changelog
}

// NewChangelogController creates a new ChangelogController.
func NewChangelogController(command commands.Changelog) *ChangelogController {
	return &ChangelogController{command: command}
}

// GetBind returns the Cobra command metadata for the changelog controller.
func (it *ChangelogController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "changelog <target-version> [source-ref]",
		Short: "Render the changelog for the upcoming release",
		Long: `Collect the commits since the last release tag (or since an explicit
source ref), group them into sections by commit subject, and publish
the rendered markdown to the output sink.

Without tags and without a source ref the whole history is used.`,
	}
}

// Execute renders the changelog for the given CLI arguments.
func (it *ChangelogController) Execute(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	opts := commands.ChangelogOptions{}
	if len(args) > 0 {
		opts.TargetVersion = args[0]
	}
	if len(args) > 1 {
		opts.SourceRef = args[1]
	}

	return it.command.Execute(cmd.Context(), settings, opts)
}
