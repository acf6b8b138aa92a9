package repositories

import (
	"os"

	"github.com/rios0rios0/releaseforge/internal/domain/entities"
	domainRepos "github.com/rios0rios0/releaseforge/internal/domain/repositories"
	"github.com/rios0rios0/releaseforge/internal/infrastructure/repositories/sink"
)

// OutputFactory selects the output repository for one invocation based on the
// configured sink locations.
type OutputFactory struct{}

// NewOutputFactory creates the factory.
func NewOutputFactory() *OutputFactory {
	return &OutputFactory{}
}

// For returns the repository matching the settings: workflow files when any
// path is configured, the console otherwise. A file repository falls back to
// the console for whichever path is left empty.
func (it *OutputFactory) For(output entities.OutputSettings) domainRepos.OutputRepository {
	console := sink.NewConsoleOutputRepository(os.Stdout)
	if output.ValuesPath == "" && output.ReportPath == "" {
		return console
	}
	return sink.NewFileOutputRepository(output.ValuesPath, output.ReportPath, console)
}
