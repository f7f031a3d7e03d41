package stats

import (
	"errors"
	"fmt"
)

// Common errors returned by metric construction.
// These provide stable targets for errors.Is checks while the typed errors
// below carry the details.
var (
	// ErrInvalidName is returned when a metric name violates the name grammar
	ErrInvalidName = errors.New("invalid metric name")
)

// InvalidNameError reports a metric name rejected by the name grammar
// ^[a-zA-Z_:][a-zA-Z0-9_:]*$. It is returned by the New* constructors and
// carried by the panic raised from the Must* constructors.
type InvalidNameError struct {
	// Name is the rejected metric name.
	Name string
}

// Error describes the rejected name and the rules it must follow.
func (e *InvalidNameError) Error() string {
	return fmt.Sprintf("invalid metric name: %q. Metric names can only contain "+
		"letters, numbers, _, and :. Metric names cannot start with numbers. "+
		"Metric name cannot be empty.", e.Name)
}

// Unwrap lets errors.Is(err, ErrInvalidName) match construction failures.
func (e *InvalidNameError) Unwrap() error {
	return ErrInvalidName
}
