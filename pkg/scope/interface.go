package scope

// Manager verifies bearer tokens issued by the identity provider.
// Implementations are safe for concurrent use.
type Manager interface {
	Verify(token string) (Payload, error)
	CreateToken(payload Payload) (string, error)
}

// NewManager creates a Manager validating HS256 tokens for the given issuer and audience.
// Empty issuer or audience disables that check.
func NewManager(cfg Config) (Manager, error) {
	if len(cfg.SecretKey) < MinSecretKeyLen {
		return nil, ErrSecretTooShort
	}
	return &implManager{
		secretKey: []byte(cfg.SecretKey),
		issuer:    cfg.Issuer,
		audience:  cfg.Audience,
	}, nil
}
