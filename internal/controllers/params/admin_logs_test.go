package params

import (
	"testing"

	"github.com/go-playground/validator/v10"
)

func TestListAdminLogsQueryParamsValidation(t *testing.T) {
	validate := validator.New()

	testCases := []struct {
		name   string
		params ListAdminLogsQueryParams
		expErr bool
	}{
		{
			name: "Should accept defaults with pagination",
			params: ListAdminLogsQueryParams{
				PaginationQueryParams: PaginationQueryParams{Limit: 20, Offset: 0},
			},
		},
		{
			name: "Should accept filters with valid UUIDs",
			params: ListAdminLogsQueryParams{
				PaginationQueryParams: PaginationQueryParams{Limit: 100, Offset: 40},
				Action:                "ban_user",
				AdminID:               "7c9e6679-7425-40de-944b-e07fc1f90ae7",
			},
		},
		{
			name: "Should reject a zero limit",
			params: ListAdminLogsQueryParams{
				PaginationQueryParams: PaginationQueryParams{Limit: 0, Offset: 0},
			},
			expErr: true,
		},
		{
			name: "Should reject a limit above the maximum",
			params: ListAdminLogsQueryParams{
				PaginationQueryParams: PaginationQueryParams{Limit: 101, Offset: 0},
			},
			expErr: true,
		},
		{
			name: "Should reject a negative offset",
			params: ListAdminLogsQueryParams{
				PaginationQueryParams: PaginationQueryParams{Limit: 20, Offset: -1},
			},
			expErr: true,
		},
		{
			name: "Should reject a malformed admin id",
			params: ListAdminLogsQueryParams{
				PaginationQueryParams: PaginationQueryParams{Limit: 20, Offset: 0},
				AdminID:               "not-a-uuid",
			},
			expErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := validate.Struct(&tc.params)

			if tc.expErr && err == nil {
				t.Fatal("Expected a validation error")
			}
			if !tc.expErr && err != nil {
				t.Fatal("Expected params to be valid", err)
			}
		})
	}
}
