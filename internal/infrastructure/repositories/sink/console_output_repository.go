package sink

import (
	"fmt"
	"io"

	"github.com/rios0rios0/releaseforge/internal/domain/entities"
)

// ConsoleOutputRepository prints values and reports to a stream, the fallback
// when no workflow files are configured (local runs, debugging).
type ConsoleOutputRepository struct {
	writer io.Writer
}

// NewConsoleOutputRepository creates a console sink writing to the given stream.
func NewConsoleOutputRepository(writer io.Writer) *ConsoleOutputRepository {
	return &ConsoleOutputRepository{writer: writer}
}

// WriteValues prints one name=value line per value.
func (it *ConsoleOutputRepository) WriteValues(values []entities.OutputValue) error {
	for _, value := range values {
		if _, err := fmt.Fprintf(it.writer, "%s=%s\n", value.Name, value.Value); err != nil {
			return fmt.Errorf("failed to write value %q: %w", value.Name, err)
		}
	}
	return nil
}

// WriteReport prints the report verbatim.
func (it *ConsoleOutputRepository) WriteReport(report string) error {
	if _, err := fmt.Fprint(it.writer, report); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}
