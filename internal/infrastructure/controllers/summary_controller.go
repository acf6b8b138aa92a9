package controllers

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/rios0rios0/releaseforge/internal/domain/commands"
	"github.com/rios0rios0/releaseforge/internal/domain/entities"
)

// SummaryController handles the "summary" subcommand.
type SummaryController struct {
	command commands.Summary
}

// NewSummaryController creates a new SummaryController.
func NewSummaryController(command commands.Summary) *SummaryController {
	return &SummaryController{command: command}
}

// GetBind returns the Cobra command metadata for the summary controller.
func (it *SummaryController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "summary",
		Short: "Render the release summary report",
		Long: `Render the human-facing release report from the versions computed by
the earlier pipeline steps, plus optional image tags and deployment
status, and publish it to the report sink.`,
	}
}

// Execute renders the summary from the given flags.
func (it *SummaryController) Execute(cmd *cobra.Command, _ []string) error {
	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	newVersion, _ := cmd.Flags().GetString("new-version")
	previousVersion, _ := cmd.Flags().GetString("previous-version")
	bumpKind, _ := cmd.Flags().GetString("bump-kind")
	imageTags, _ := cmd.Flags().GetStringSlice("image-tags")
	deploymentStatus, _ := cmd.Flags().GetString("deployment-status")

	return it.command.Execute(settings, commands.SummaryOptions{
		NewVersion:       newVersion,
		PreviousVersion:  previousVersion,
		BumpKind:         bumpKind,
		ImageTags:        cleanImageTags(imageTags),
		DeploymentStatus: deploymentStatus,
	})
}

// cleanImageTags trims surrounding whitespace and drops empty items left
// over from the comma-separated flag value.
func cleanImageTags(tags []string) []string {
	cleaned := make([]string, 0, len(tags))
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		cleaned = append(cleaned, tag)
	}
	if len(cleaned) == 0 {
		return nil
	}
	return cleaned
}

// AddFlags adds the summary-specific flags to the given Cobra command.
func (it *SummaryController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().String("new-version", "", "Version being released (e.g. v1.4.0)")
	cmd.Flags().String("previous-version", "", "Version released before this one")
	cmd.Flags().String("bump-kind", "", "Bump kind the transition used (patch, minor, major)")
	cmd.Flags().StringSlice("image-tags", nil, "Container image tags built for this release")
	cmd.Flags().String("deployment-status", "",
		"Deployment outcome (success, skipped, anything else counts as failed)")
}
