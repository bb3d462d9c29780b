// Package contract defines the wire shapes and their mapping to the domain.
// Mapping copies fields verbatim (no trimming or normalization); the only
// derived value is age, computed from the injected clock.
package contract

import (
	"strings"

	"go-users-api/internal/domain"
	"go-users-api/internal/validation"
)

// ToUser builds a transient user for creation; the store assigns the id.
func (r *CreateUserRequest) ToUser() *domain.User {
	return &domain.User{
		ID: 0,
		PersonalData: domain.PersonalData{
			FirstName:   r.FirstName,
			LastName:    r.LastName,
			PhoneNumber: r.PhoneNumber,
			DateOfBirth: r.DateOfBirth,
		},
		EmailAddress: domain.EmailAddress{Email: r.Email},
	}
}

func (r *UpdateUserRequest) ToUser(id int64) *domain.User {
	return &domain.User{
		ID: id,
		PersonalData: domain.PersonalData{
			FirstName:   r.FirstName,
			LastName:    r.LastName,
			PhoneNumber: r.PhoneNumber,
			DateOfBirth: r.DateOfBirth,
		},
		EmailAddress: domain.EmailAddress{Email: r.Email},
	}
}

func (r *GetAllUsersRequest) ToOptions() domain.GetAllUsersOptions {
	return domain.GetAllUsersOptions{
		Date:     r.Date,
		Page:     r.Page,
		PageSize: r.PageSize,
	}
}

func ToUserResponse(u *domain.User, clock domain.Clock) UserResponse {
	return UserResponse{
		FirstName:   u.PersonalData.FirstName,
		LastName:    u.PersonalData.LastName,
		Age:         domain.Age(u.PersonalData.DateOfBirth, clock.Now()),
		Email:       u.EmailAddress.Email,
		DateOfBirth: u.PersonalData.DateOfBirth,
		PhoneNumber: u.PersonalData.PhoneNumber,
	}
}

func ToUsersResponse(users []domain.User, page, pageSize int, total int64, clock domain.Clock) UsersResponse {
	items := make([]UserResponse, len(users))
	for i := range users {
		items[i] = ToUserResponse(&users[i], clock)
	}
	return UsersResponse{
		Users:       items,
		Page:        page,
		PageSize:    pageSize,
		Total:       total,
		HasNextPage: total > int64(page)*int64(pageSize),
	}
}

// ToValidationFailureResponse strips parent-object prefixes from property
// names (personalData.firstName becomes firstName); names without a prefix
// pass through unchanged.
func ToValidationFailureResponse(err *validation.Error) ValidationFailureResponse {
	out := ValidationFailureResponse{Errors: make([]ValidationResponse, 0, len(err.Failures))}
	for _, f := range err.Failures {
		name := f.PropertyName
		if i := strings.LastIndexByte(name, '.'); i >= 0 {
			name = name[i+1:]
		}
		out.Errors = append(out.Errors, ValidationResponse{PropertyName: name, Message: f.Message})
	}
	return out
}
