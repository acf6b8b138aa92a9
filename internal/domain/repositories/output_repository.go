package repositories

import (
	"github.com/rios0rios0/releaseforge/internal/domain/entities"
)

// OutputRepository publishes computed release data to the surrounding
// automation, e.g. workflow output files or the console.
type OutputRepository interface {
	// WriteValues publishes named values such as the old and new versions.
	WriteValues(values []entities.OutputValue) error

	// WriteReport publishes a rendered markdown report.
	WriteReport(report string) error
}
