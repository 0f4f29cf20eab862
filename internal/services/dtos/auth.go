package dtos

type AuthDTO struct {
	AccessToken string  `json:"access_token"`
	TokenType   string  `json:"token_type"`
	ExpiresIn   int64   `json:"expires_in"`
	User        UserDTO `json:"user"`
}

func NewAuthDTO(accessToken string, expiresIn int64, user UserDTO) AuthDTO {
	return AuthDTO{
		AccessToken: accessToken,
		TokenType:   "Bearer",
		ExpiresIn:   expiresIn,
		User:        user,
	}
}
