package scope

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Verify verifies the JWT token and returns the payload if valid.
// It checks the signature, expiry, issuer, audience and the presence of a subject.
func (m *implManager) Verify(token string) (Payload, error) {
	if token == "" {
		return Payload{}, fmt.Errorf("%w: token is empty", ErrInvalidToken)
	}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if m.issuer != "" {
		opts = append(opts, jwt.WithIssuer(m.issuer))
	}
	if m.audience != "" {
		opts = append(opts, jwt.WithAudience(m.audience))
	}

	payload := &Payload{}
	jwtToken, err := jwt.ParseWithClaims(token, payload, func(t *jwt.Token) (any, error) {
		return m.secretKey, nil
	}, opts...)
	if err != nil {
		return Payload{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !jwtToken.Valid {
		return Payload{}, fmt.Errorf("%w: token is not valid", ErrInvalidToken)
	}
	if payload.Subject == "" {
		return Payload{}, fmt.Errorf("%w: missing subject", ErrInvalidToken)
	}

	return *payload, nil
}

// CreateToken signs a token for the payload's subject. Used by tooling and tests.
func (m *implManager) CreateToken(payload Payload) (string, error) {
	now := time.Now()
	payload.IssuedAt = jwt.NewNumericDate(now)
	payload.NotBefore = jwt.NewNumericDate(now)
	if payload.ExpiresAt == nil {
		payload.ExpiresAt = jwt.NewNumericDate(now.Add(TokenExpirationDuration))
	}
	if payload.ID == "" {
		payload.ID = uuid.NewString()
	}
	if payload.Issuer == "" {
		payload.Issuer = m.issuer
	}
	if len(payload.Audience) == 0 && m.audience != "" {
		payload.Audience = jwt.ClaimStrings{m.audience}
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, payload)
	return token.SignedString(m.secretKey)
}
