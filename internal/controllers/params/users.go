package params

type UserURLParams struct {
	UserID string `validate:"required,uuid"`
}
