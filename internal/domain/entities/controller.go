package entities

import "github.com/spf13/cobra"

// ControllerBind holds the Cobra command metadata a controller binds to.
type ControllerBind struct {
	Use   string
	Short string
	Long  string
}

// Controller is the contract every CLI controller fulfills. Execute returns
// an error so the entrypoint can exit non-zero on failure.
type Controller interface {
	// GetBind returns the Cobra command metadata for this controller.
	GetBind() ControllerBind

	// Execute runs the controller with the parsed command and arguments.
	Execute(cmd *cobra.Command, args []string) error
}
