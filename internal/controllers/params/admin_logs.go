package params

type ListAdminLogsQueryParams struct {
	PaginationQueryParams
	Action       string `validate:"omitempty,min=1,max=64"`
	AdminID      string `validate:"omitempty,uuid"`
	TargetUserID string `validate:"omitempty,uuid"`
}
