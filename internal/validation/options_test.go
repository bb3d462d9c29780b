package validation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-users-api/internal/domain"
	"go-users-api/internal/validation"
)

func TestOptionsValidator(t *testing.T) {
	var v validation.OptionsValidator

	tests := []struct {
		name     string
		page     int
		pageSize int
		want     []validation.Failure
	}{
		{"valid", 1, 10, nil},
		{"upper page size bound", 3, 25, nil},
		{"page zero", 0, 10, []validation.Failure{
			{PropertyName: "page", Message: "The minimum page is 1."},
		}},
		{"page size zero", 1, 0, []validation.Failure{
			{PropertyName: "pageSize", Message: "The size of the page must be between 1 and 25."},
		}},
		{"page size above 25", 1, 26, []validation.Failure{
			{PropertyName: "pageSize", Message: "The size of the page must be between 1 and 25."},
		}},
		{"both invalid", 0, 26, []validation.Failure{
			{PropertyName: "page", Message: "The minimum page is 1."},
			{PropertyName: "pageSize", Message: "The size of the page must be between 1 and 25."},
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := domain.GetAllUsersOptions{Page: tt.page, PageSize: tt.pageSize}
			assert.Equal(t, tt.want, v.Validate(opts))
		})
	}
}

func TestOptionsValidator_ValidateOptions(t *testing.T) {
	var v validation.OptionsValidator

	err := v.ValidateOptions(domain.GetAllUsersOptions{Page: 0, PageSize: 10})

	var verr *validation.Error
	require.ErrorAs(t, err, &verr)
	assert.Len(t, verr.Failures, 1)

	assert.NoError(t, v.ValidateOptions(domain.GetAllUsersOptions{Page: 1, PageSize: 25}))
}
