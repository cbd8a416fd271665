/*
errors.go - Error types for scenario construction

PURPOSE:
  The model package is total and never fails. Errors only exist at the
  boundary where a caller hands in parameters: a scenario whose rates fall
  outside their domain, or a preset name that does not exist.

USAGE:
  if err := scenario.Validate(); err != nil {
      var pe *founder.ParameterError
      if errors.As(err, &pe) {
          fmt.Println("bad field:", pe.Field)
      }
  }

SEE ALSO:
  - scenario.go: Validate
  - presets.go: LookupPreset
*/
package founder

import (
	"errors"
	"fmt"
)

// =============================================================================
// SENTINEL ERRORS - Use with errors.Is()
// =============================================================================

var (
	// ErrInvalidScenario is returned when a scenario parameter is out of range.
	ErrInvalidScenario = errors.New("invalid scenario")

	// ErrUnknownPreset is returned when a preset name is not registered.
	ErrUnknownPreset = errors.New("unknown preset")
)

// =============================================================================
// STRUCTURED ERRORS
// =============================================================================

// ParameterError names the offending scenario field.
type ParameterError struct {
	Field  string
	Value  float64
	Reason string
}

func (e *ParameterError) Error() string {
	return fmt.Sprintf("invalid scenario: %s=%v: %s", e.Field, e.Value, e.Reason)
}

func (e *ParameterError) Unwrap() error {
	return ErrInvalidScenario
}

// IsInvalidScenario returns true if the error is due to bad scenario input.
func IsInvalidScenario(err error) bool {
	return errors.Is(err, ErrInvalidScenario)
}
