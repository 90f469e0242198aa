package product

import "fmt"

// BuildError represents a record construction failure, e.g. a required field
// that cannot be parsed.
type BuildError struct {
	Field   string
	Message string
	Cause   error
}

func (e *BuildError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("record build error in %s: %s: %v", e.Field, e.Message, e.Cause)
	}
	return fmt.Sprintf("record build error in %s: %s", e.Field, e.Message)
}

func (e *BuildError) Unwrap() error {
	return e.Cause
}
