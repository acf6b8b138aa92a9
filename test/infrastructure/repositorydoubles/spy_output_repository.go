//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/releaseforge/internal/domain/entities"
	"github.com/rios0rios0/releaseforge/internal/domain/repositories"
)

// SpyOutputRepository implements repositories.OutputRepository, recording
// everything written to it.
type SpyOutputRepository struct {
	// --- WriteValues ---
	ValuesErr error
	// spy: values received, flattened across calls
	Values []entities.OutputValue

	// --- WriteReport ---
	ReportErr error
	// spy: reports received
	Reports []string
}

var _ repositories.OutputRepository = (*SpyOutputRepository)(nil)

func (s *SpyOutputRepository) WriteValues(values []entities.OutputValue) error {
	s.Values = append(s.Values, values...)
	return s.ValuesErr
}

func (s *SpyOutputRepository) WriteReport(report string) error {
	s.Reports = append(s.Reports, report)
	return s.ReportErr
}

// ValueNamed returns the recorded value with the given name, or an empty
// string when it was never written.
func (s *SpyOutputRepository) ValueNamed(name string) string {
	for _, value := range s.Values {
		if value.Name == name {
			return value.Value
		}
	}
	return ""
}
