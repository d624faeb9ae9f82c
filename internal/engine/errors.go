package engine

import "fmt"

// InvalidInputError reports a caller-supplied value outside its
// documented range.
type InvalidInputError struct {
	Field  string
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input %q: %s", e.Field, e.Reason)
}
