package config

type TokensConfig struct {
	secret       string
	accessTTLSec int64
}

func NewTokensConfig(secret string, accessTTLSec int64) TokensConfig {
	return TokensConfig{
		secret:       secret,
		accessTTLSec: accessTTLSec,
	}
}

func (t *TokensConfig) Secret() string {
	return t.secret
}

func (t *TokensConfig) AccessTTLSec() int64 {
	return t.accessTTLSec
}
