package dtos

type DiscordAuthorizationDTO struct {
	AuthorizationURL string `json:"authorization_url"`
}

type DiscordLinkDTO struct {
	DiscordID        string  `json:"discord_id"`
	DiscordUsername  string  `json:"discord_username"`
	DiscordAvatarURL *string `json:"discord_avatar_url"`
}
