package validation

import "go-users-api/internal/domain"

const (
	minPageSize = 1
	maxPageSize = 25
)

// OptionsValidator checks listing options. Pure, no I/O.
type OptionsValidator struct{}

func (OptionsValidator) Validate(opts domain.GetAllUsersOptions) []Failure {
	var failures []Failure
	if opts.Page < 1 {
		failures = append(failures, Failure{"page", "The minimum page is 1."})
	}
	if opts.PageSize < minPageSize || opts.PageSize > maxPageSize {
		failures = append(failures, Failure{"pageSize", "The size of the page must be between 1 and 25."})
	}
	return failures
}

func (v OptionsValidator) ValidateOptions(opts domain.GetAllUsersOptions) error {
	if failures := v.Validate(opts); len(failures) > 0 {
		return &Error{Failures: failures}
	}
	return nil
}
