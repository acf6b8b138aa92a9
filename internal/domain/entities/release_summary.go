package entities

import (
	"fmt"
	"strings"
)

// Deployment status tokens recognized by the summary. Any other token,
// including an explicit "failure", renders as a failed deployment.
const (
	DeploymentSuccess = "success"
	DeploymentSkipped = "skipped"
)

const (
	deploymentSuccessLine = "✅ Deployment succeeded"
	deploymentSkippedLine = "⏭️ Deployment skipped"
	deploymentFailureLine = "❌ Deployment failed"
)

// followUpChecklist is rendered at the end of every summary, identical
// regardless of input.
var followUpChecklist = []string{
	"Verify the new version is reachable in the target environment",
	"Review the changelog for entries that need manual editing",
	"Announce the release in the team channel",
	"Watch dashboards and error rates for regressions",
}

// ReleaseSummary aggregates one computed release for human review: the
// version transition, the images that were built and how the deployment went.
type ReleaseSummary struct {
	NewVersion      SemanticVersion
	PreviousVersion SemanticVersion
	BumpKind        BumpKind
	ImageTags       []string
	// DeploymentStatus is one of the deployment tokens above; empty means
	// no deployment happened and the section is omitted.
	DeploymentStatus string
}

// RenderReleaseSummary renders the markdown report for a release. Rendering
// is total: every combination of present and absent optional fields yields a
// valid document.
func RenderReleaseSummary(summary ReleaseSummary) string {
	var doc strings.Builder

	doc.WriteString("# Release " + summary.NewVersion.String() + "\n\n")
	doc.WriteString("| Field | Value |\n")
	doc.WriteString("| --- | --- |\n")
	doc.WriteString(fmt.Sprintf("| Previous version | %s |\n", summary.PreviousVersion))
	doc.WriteString(fmt.Sprintf("| New version | %s |\n", summary.NewVersion))
	doc.WriteString(fmt.Sprintf("| Bump kind | %s |\n", summary.BumpKind))

	if len(summary.ImageTags) > 0 {
		doc.WriteString("\n## Images\n\n")
		for _, tag := range summary.ImageTags {
			doc.WriteString(entryPrefix + tag + "\n")
		}
	}

	if summary.DeploymentStatus != "" {
		doc.WriteString("\n## Deployment\n\n")
		doc.WriteString(deploymentIndicator(summary.DeploymentStatus) + "\n")
	}

	doc.WriteString("\n## Follow-up checklist\n\n")
	for _, item := range followUpChecklist {
		doc.WriteString("- [ ] " + item + "\n")
	}

	return doc.String()
}

// deploymentIndicator maps a status token to one of three fixed lines.
func deploymentIndicator(status string) string {
	switch status {
	case DeploymentSuccess:
		return deploymentSuccessLine
	case DeploymentSkipped:
		return deploymentSkippedLine
	default:
		return deploymentFailureLine
	}
}
