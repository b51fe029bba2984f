package sequence

import "fmt"

// ConfigurationError reports an option value that rules out any valid run.
// It is raised by Config.Validate before any allocation work begins.
type ConfigurationError struct {
	Field  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration %s: %s", e.Field, e.Reason)
}

// CapacityError reports a manifest that has no feasible capacity-respecting
// plan under the configured trays. Samples are never silently dropped; the
// whole run is rejected instead.
type CapacityError struct {
	Source string
	Reason string
}

func (e *CapacityError) Error() string {
	if e.Source == "" {
		return fmt.Sprintf("capacity: %s", e.Reason)
	}
	return fmt.Sprintf("capacity: source %s: %s", e.Source, e.Reason)
}
