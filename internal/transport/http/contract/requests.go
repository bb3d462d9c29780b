package contract

import "time"

type CreateUserRequest struct {
	FirstName   string    `json:"firstName"`
	LastName    string    `json:"lastName"`
	Email       string    `json:"email"`
	DateOfBirth time.Time `json:"dateOfBirth"`
	PhoneNumber string    `json:"phoneNumber"`
}

type UpdateUserRequest struct {
	FirstName   string    `json:"firstName"`
	LastName    string    `json:"lastName"`
	Email       string    `json:"email"`
	DateOfBirth time.Time `json:"dateOfBirth"`
	PhoneNumber string    `json:"phoneNumber"`
}

// GetAllUsersRequest is the parsed listing query. Page and PageSize carry
// the caller's values verbatim so out-of-range input still reaches the
// options validator.
type GetAllUsersRequest struct {
	Date     *time.Time
	Page     int
	PageSize int
}
