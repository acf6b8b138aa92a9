package sink

import (
	"fmt"
	"os"
	"strings"

	"github.com/rios0rios0/releaseforge/internal/domain/entities"
	domainRepos "github.com/rios0rios0/releaseforge/internal/domain/repositories"
)

// heredocDelimiter fences multi-line values in the name=value file, the same
// convention GitHub Actions uses for GITHUB_OUTPUT.
const heredocDelimiter = "RELEASEFORGE_EOF"

const sinkFileMode = 0o644

// FileOutputRepository appends values and reports to workflow files. A path
// left empty delegates that write to the fallback repository.
type FileOutputRepository struct {
	valuesPath string
	reportPath string
	fallback   domainRepos.OutputRepository
}

// NewFileOutputRepository creates a file sink appending to the given paths.
func NewFileOutputRepository(
	valuesPath, reportPath string,
	fallback domainRepos.OutputRepository,
) *FileOutputRepository {
	return &FileOutputRepository{
		valuesPath: valuesPath,
		reportPath: reportPath,
		fallback:   fallback,
	}
}

// WriteValues appends one name=value line per value. Values containing a
// newline are fenced with a heredoc so the consumer reads them verbatim.
func (it *FileOutputRepository) WriteValues(values []entities.OutputValue) error {
	if it.valuesPath == "" {
		return it.fallback.WriteValues(values)
	}

	var content strings.Builder
	for _, value := range values {
		if strings.Contains(value.Value, "\n") {
			content.WriteString(value.Name + "<<" + heredocDelimiter + "\n")
			content.WriteString(value.Value)
			if !strings.HasSuffix(value.Value, "\n") {
				content.WriteString("\n")
			}
			content.WriteString(heredocDelimiter + "\n")
		} else {
			content.WriteString(value.Name + "=" + value.Value + "\n")
		}
	}

	return appendToFile(it.valuesPath, content.String())
}

// WriteReport appends the rendered report, ensuring it ends with a newline.
func (it *FileOutputRepository) WriteReport(report string) error {
	if it.reportPath == "" {
		return it.fallback.WriteReport(report)
	}

	if !strings.HasSuffix(report, "\n") {
		report += "\n"
	}
	return appendToFile(it.reportPath, report)
}

func appendToFile(path, content string) error {
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, sinkFileMode)
	if err != nil {
		return fmt.Errorf("failed to open output file %q: %w", path, err)
	}
	defer func() {
		_ = file.Close()
	}()

	if _, writeErr := file.WriteString(content); writeErr != nil {
		return fmt.Errorf("failed to write output file %q: %w", path, writeErr)
	}

	return nil
}
