package release

import (
	"fmt"
	"strings"
)

// SchemaError reports a single release entry failing validation.
type SchemaError struct {
	Release string
	Message string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("for %q release: %s", e.Release, e.Message)
}

func schemaErrorf(release, format string, args ...any) *SchemaError {
	return &SchemaError{Release: release, Message: fmt.Sprintf(format, args...)}
}

// ValidationError aggregates the schema errors of all failed entries so a
// single run reports every problem at once.
type ValidationError struct {
	Errs []error
}

func (e *ValidationError) Error() string {
	msgs := make([]string, len(e.Errs))
	for i, err := range e.Errs {
		msgs[i] = "- " + err.Error()
	}
	return "invalid releases:\n" + strings.Join(msgs, "\n")
}

func (e *ValidationError) Unwrap() []error {
	return e.Errs
}
