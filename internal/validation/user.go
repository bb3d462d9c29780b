package validation

import (
	"context"
	"regexp"
	"unicode/utf8"

	"go-users-api/internal/domain"
)

var (
	emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	phonePattern = regexp.MustCompile(`^\d{10}$`)
)

const maxNameLength = 128

// UserValidator checks a user against the registration rules. All checks
// are local except email uniqueness, which looks the address up in the
// repository and therefore only runs once presence and format have passed.
type UserValidator struct {
	repo  domain.UserRepository
	clock domain.Clock
}

func NewUserValidator(repo domain.UserRepository, clock domain.Clock) *UserValidator {
	return &UserValidator{repo: repo, clock: clock}
}

// Validate evaluates every field's rule chain and returns the union of
// failures. A chain stops at its own first failure but never blocks the
// other fields. A non-nil error means the uniqueness lookup itself failed,
// not that the input is invalid.
func (v *UserValidator) Validate(ctx context.Context, u *domain.User) ([]Failure, error) {
	var failures []Failure

	switch {
	case u.PersonalData.FirstName == "":
		failures = append(failures, Failure{"personalData.firstName", "FirstName is required"})
	case utf8.RuneCountInString(u.PersonalData.FirstName) > maxNameLength:
		failures = append(failures, Failure{"personalData.firstName", "Maximum length is 128 characters."})
	}

	if utf8.RuneCountInString(u.PersonalData.LastName) > maxNameLength {
		failures = append(failures, Failure{"personalData.lastName", "Maximum length is 128 characters."})
	}

	switch {
	case u.EmailAddress.Email == "":
		failures = append(failures, Failure{"emailAddress.email", "Email is required."})
	case !emailPattern.MatchString(u.EmailAddress.Email):
		failures = append(failures, Failure{"emailAddress.email", "Invalid email format."})
	default:
		unique, err := v.emailUnique(ctx, u)
		if err != nil {
			return nil, err
		}
		if !unique {
			failures = append(failures, Failure{"emailAddress.email", "Email already registered."})
		}
	}

	switch {
	case u.PersonalData.DateOfBirth.IsZero():
		failures = append(failures, Failure{"personalData.dateOfBirth", "DateOfBirth is required"})
	case domain.Age(u.PersonalData.DateOfBirth, v.clock.Now()) < 18:
		failures = append(failures, Failure{"personalData.dateOfBirth", "User should be over 18 years old."})
	}

	switch {
	case u.PersonalData.PhoneNumber == "":
		failures = append(failures, Failure{"personalData.phoneNumber", "Phone number is required."})
	case !phonePattern.MatchString(u.PersonalData.PhoneNumber):
		failures = append(failures, Failure{"personalData.phoneNumber", "Phone number must contain only digits and be 10 characters long."})
	}

	return failures, nil
}

// ValidateUser wraps Validate and returns *Error when any rule failed.
func (v *UserValidator) ValidateUser(ctx context.Context, u *domain.User) error {
	failures, err := v.Validate(ctx, u)
	if err != nil {
		return err
	}
	if len(failures) > 0 {
		return &Error{Failures: failures}
	}
	return nil
}

// emailUnique fails when another user already holds the address. The record
// of the user under validation does not count, so an update that keeps the
// email unchanged stays valid.
func (v *UserValidator) emailUnique(ctx context.Context, u *domain.User) (bool, error) {
	existing, err := v.repo.FindByEmail(ctx, u.EmailAddress.Email)
	if err != nil {
		return false, err
	}
	if existing == nil {
		return true, nil
	}
	return u.ID != 0 && existing.ID == u.ID, nil
}
