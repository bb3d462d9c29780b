package domain

import (
	"context"
	"time"
)

type User struct {
	ID           int64
	PersonalData PersonalData
	EmailAddress EmailAddress
}

type PersonalData struct {
	FirstName   string
	LastName    string
	PhoneNumber string
	DateOfBirth time.Time
}

type EmailAddress struct {
	Email string
}

// GetAllUsersOptions narrows and pages the user listing. Date keeps only
// users born on or after it.
type GetAllUsersOptions struct {
	Date     *time.Time
	Page     int
	PageSize int
}

// UserRepository is the persistence contract. Reads return (nil, nil) when
// the record does not exist; errors mean the store itself failed.
type UserRepository interface {
	Create(ctx context.Context, u *User) error
	FindByID(ctx context.Context, id int64) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindAll(ctx context.Context, opts GetAllUsersOptions) ([]User, error)
	Update(ctx context.Context, u *User) error
	DeleteByID(ctx context.Context, id int64) (bool, error)
	Count(ctx context.Context, date *time.Time) (int64, error)
}

// Age is the calendar age at now. The birthday anniversary itself already
// counts toward the new age.
func Age(dateOfBirth, now time.Time) int {
	age := now.Year() - dateOfBirth.Year()
	if now.Before(dateOfBirth.AddDate(age, 0, 0)) {
		age--
	}
	return age
}
