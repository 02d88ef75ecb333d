package scope

import "github.com/golang-jwt/jwt/v5"

// Config configures the token Manager.
type Config struct {
	SecretKey string
	Issuer    string
	Audience  string
}

// Payload represents the JWT token claims. Subject identifies the user record.
type Payload struct {
	jwt.RegisteredClaims
	Email string `json:"email,omitempty"`
}

// implManager implements Manager.
type implManager struct {
	secretKey []byte
	issuer    string
	audience  string
}

// Context key types for payload and scope.
type (
	PayloadCtxKey struct{}
	ScopeCtxKey   struct{}
)
