package contract

import "time"

type UserResponse struct {
	FirstName   string    `json:"firstName"`
	LastName    string    `json:"lastName,omitempty"`
	Age         int       `json:"age"`
	Email       string    `json:"email"`
	DateOfBirth time.Time `json:"dateOfBirth"`
	PhoneNumber string    `json:"phoneNumber"`
}

// UsersResponse is the paged envelope. HasNextPage is derived once at
// mapping time: total > page*pageSize.
type UsersResponse struct {
	Users       []UserResponse `json:"users"`
	Page        int            `json:"page"`
	PageSize    int            `json:"pageSize"`
	Total       int64          `json:"total"`
	HasNextPage bool           `json:"hasNextPage"`
}

type ValidationResponse struct {
	PropertyName string `json:"propertyName"`
	Message      string `json:"message"`
}

type ValidationFailureResponse struct {
	Errors []ValidationResponse `json:"errors"`
}
