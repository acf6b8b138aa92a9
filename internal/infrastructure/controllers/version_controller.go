package controllers

import (
	"github.com/spf13/cobra"

	"github.com/rios0rios0/releaseforge/internal/domain/commands"
	"github.com/rios0rios0/releaseforge/internal/domain/entities"
)

// VersionController handles the "version" subcommand.
type VersionController struct {
	command commands.Version
}

// NewVersionController creates a new VersionController.
func NewVersionController(command commands.Version) *VersionController {
	return &VersionController{command: command}
}

// GetBind returns the Cobra command metadata for the version controller.
func (it *VersionController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "version <patch|minor|major>",
		Short: "Compute the next release version",
		Long: `Read the newest tag from the repository, apply the requested bump
and publish the old and new versions to the output sink.

A repository without tags starts from v0.0.0, so the first
patch release becomes v0.0.1.`,
	}
}

// Execute runs the version computation.
func (it *VersionController) Execute(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	opts := commands.VersionOptions{}
	if len(args) > 0 {
		opts.BumpKind = args[0]
	}

	return it.command.Execute(cmd.Context(), settings, opts)
}
