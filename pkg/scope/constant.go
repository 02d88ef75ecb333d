package scope

import "time"

const (
	// TokenExpirationDuration is the lifetime of tokens minted by CreateToken.
	TokenExpirationDuration = time.Hour * 8
	// MinSecretKeyLen is the shortest accepted HMAC secret.
	MinSecretKeyLen = 32
)
