package validation_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-users-api/internal/domain"
	"go-users-api/internal/validation"
)

type fakeRepo struct {
	domain.UserRepository

	findByEmailFn func(ctx context.Context, email string) (*domain.User, error)
	emailLookups  int
}

func (f *fakeRepo) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	f.emailLookups++
	if f.findByEmailFn == nil {
		return nil, nil
	}
	return f.findByEmailFn(ctx, email)
}

type fixedClock time.Time

func (c fixedClock) Now() time.Time { return time.Time(c) }

var testNow = time.Date(2024, 2, 19, 0, 0, 0, 0, time.UTC)

func validUser() *domain.User {
	return &domain.User{
		PersonalData: domain.PersonalData{
			FirstName:   "Nick",
			LastName:    "Chapsas",
			PhoneNumber: "0123456789",
			DateOfBirth: time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC),
		},
		EmailAddress: domain.EmailAddress{Email: "nick@chapsas.com"},
	}
}

func newValidator(repo *fakeRepo) *validation.UserValidator {
	return validation.NewUserValidator(repo, fixedClock(testNow))
}

func messagesFor(failures []validation.Failure, property string) []string {
	var out []string
	for _, f := range failures {
		if f.PropertyName == property {
			out = append(out, f.Message)
		}
	}
	return out
}

func TestUserValidator_ValidUserPasses(t *testing.T) {
	v := newValidator(&fakeRepo{})

	failures, err := v.Validate(context.Background(), validUser())

	require.NoError(t, err)
	assert.Empty(t, failures)
}

func TestUserValidator_FirstName(t *testing.T) {
	tests := []struct {
		name      string
		firstName string
		want      []string
	}{
		{"empty", "", []string{"FirstName is required"}},
		{"129 characters", strings.Repeat("a", 129), []string{"Maximum length is 128 characters."}},
		{"128 characters", strings.Repeat("a", 128), nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := validUser()
			u.PersonalData.FirstName = tt.firstName

			failures, err := newValidator(&fakeRepo{}).Validate(context.Background(), u)

			require.NoError(t, err)
			assert.Equal(t, tt.want, messagesFor(failures, "personalData.firstName"))
		})
	}
}

func TestUserValidator_LastName(t *testing.T) {
	u := validUser()
	u.PersonalData.LastName = strings.Repeat("b", 129)

	failures, err := newValidator(&fakeRepo{}).Validate(context.Background(), u)

	require.NoError(t, err)
	assert.Equal(t, []string{"Maximum length is 128 characters."}, messagesFor(failures, "personalData.lastName"))

	u.PersonalData.LastName = ""
	failures, err = newValidator(&fakeRepo{}).Validate(context.Background(), u)
	require.NoError(t, err)
	assert.Empty(t, failures)
}

func TestUserValidator_Email(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		u := validUser()
		u.EmailAddress.Email = ""

		failures, err := newValidator(&fakeRepo{}).Validate(context.Background(), u)

		require.NoError(t, err)
		assert.Equal(t, []string{"Email is required."}, messagesFor(failures, "emailAddress.email"))
	})

	t.Run("invalid format skips the uniqueness lookup", func(t *testing.T) {
		u := validUser()
		u.EmailAddress.Email = "invalid-email"
		repo := &fakeRepo{}

		failures, err := newValidator(repo).Validate(context.Background(), u)

		require.NoError(t, err)
		assert.Equal(t, []string{"Invalid email format."}, messagesFor(failures, "emailAddress.email"))
		assert.Zero(t, repo.emailLookups)
	})

	t.Run("already registered", func(t *testing.T) {
		u := validUser()
		repo := &fakeRepo{findByEmailFn: func(ctx context.Context, email string) (*domain.User, error) {
			other := validUser()
			other.ID = 42
			return other, nil
		}}

		failures, err := newValidator(repo).Validate(context.Background(), u)

		require.NoError(t, err)
		assert.Equal(t, []string{"Email already registered."}, messagesFor(failures, "emailAddress.email"))
	})

	t.Run("own record does not count on update", func(t *testing.T) {
		u := validUser()
		u.ID = 42
		repo := &fakeRepo{findByEmailFn: func(ctx context.Context, email string) (*domain.User, error) {
			same := validUser()
			same.ID = 42
			return same, nil
		}}

		failures, err := newValidator(repo).Validate(context.Background(), u)

		require.NoError(t, err)
		assert.Empty(t, failures)
	})

	t.Run("lookup failure propagates", func(t *testing.T) {
		u := validUser()
		repoErr := errors.New("connection refused")
		repo := &fakeRepo{findByEmailFn: func(ctx context.Context, email string) (*domain.User, error) {
			return nil, repoErr
		}}

		_, err := newValidator(repo).Validate(context.Background(), u)

		assert.ErrorIs(t, err, repoErr)
	})
}

func TestUserValidator_DateOfBirth(t *testing.T) {
	t.Run("unset", func(t *testing.T) {
		u := validUser()
		u.PersonalData.DateOfBirth = time.Time{}

		failures, err := newValidator(&fakeRepo{}).Validate(context.Background(), u)

		require.NoError(t, err)
		assert.Equal(t, []string{"DateOfBirth is required"}, messagesFor(failures, "personalData.dateOfBirth"))
	})

	t.Run("eighteenth birthday is today", func(t *testing.T) {
		u := validUser()
		u.PersonalData.DateOfBirth = testNow.AddDate(-18, 0, 0)

		failures, err := newValidator(&fakeRepo{}).Validate(context.Background(), u)

		require.NoError(t, err)
		assert.Empty(t, failures)
	})

	t.Run("eighteenth birthday is tomorrow", func(t *testing.T) {
		u := validUser()
		u.PersonalData.DateOfBirth = testNow.AddDate(-18, 0, 1)

		failures, err := newValidator(&fakeRepo{}).Validate(context.Background(), u)

		require.NoError(t, err)
		assert.Equal(t, []string{"User should be over 18 years old."}, messagesFor(failures, "personalData.dateOfBirth"))
	})
}

func TestUserValidator_PhoneNumber(t *testing.T) {
	tests := []struct {
		name  string
		phone string
		want  []string
	}{
		{"empty", "", []string{"Phone number is required."}},
		{"too short", "35850", []string{"Phone number must contain only digits and be 10 characters long."}},
		{"non-digit", "123456789A", []string{"Phone number must contain only digits and be 10 characters long."}},
		{"eleven digits", "12345678901", []string{"Phone number must contain only digits and be 10 characters long."}},
		{"exactly ten digits", "1234567890", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := validUser()
			u.PersonalData.PhoneNumber = tt.phone

			failures, err := newValidator(&fakeRepo{}).Validate(context.Background(), u)

			require.NoError(t, err)
			assert.Equal(t, tt.want, messagesFor(failures, "personalData.phoneNumber"))
		})
	}
}

func TestUserValidator_FailuresAggregateAcrossFields(t *testing.T) {
	u := &domain.User{}

	failures, err := newValidator(&fakeRepo{}).Validate(context.Background(), u)

	require.NoError(t, err)
	assert.ElementsMatch(t, []validation.Failure{
		{PropertyName: "personalData.firstName", Message: "FirstName is required"},
		{PropertyName: "emailAddress.email", Message: "Email is required."},
		{PropertyName: "personalData.dateOfBirth", Message: "DateOfBirth is required"},
		{PropertyName: "personalData.phoneNumber", Message: "Phone number is required."},
	}, failures)
}

func TestUserValidator_ValidateUserReturnsTypedError(t *testing.T) {
	u := validUser()
	u.PersonalData.FirstName = ""

	err := newValidator(&fakeRepo{}).ValidateUser(context.Background(), u)

	var verr *validation.Error
	require.ErrorAs(t, err, &verr)
	assert.Len(t, verr.Failures, 1)

	assert.NoError(t, newValidator(&fakeRepo{}).ValidateUser(context.Background(), validUser()))
}
