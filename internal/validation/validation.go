// Package validation holds the rule-based request validators. Every rule
// produces a (property, message) pair; a validation pass returns the union
// of all triggered pairs, never just the first one.
package validation

import (
	"fmt"
	"strings"
)

type Failure struct {
	PropertyName string
	Message      string
}

// Error aggregates every failure from one validation pass.
type Error struct {
	Failures []Failure
}

func (e *Error) Error() string {
	parts := make([]string, len(e.Failures))
	for i, f := range e.Failures {
		parts[i] = fmt.Sprintf("%s: %s", f.PropertyName, f.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}
