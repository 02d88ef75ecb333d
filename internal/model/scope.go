package model

// Scope is the authenticated caller attached to a request.
type Scope struct {
	UserID   string   `json:"user_id"`
	Subject  string   `json:"subject"`
	Email    string   `json:"email"`
	Claims   ClaimSet `json:"-"`
	IsActive bool     `json:"is_active"`
}

// IsSuperAdmin checks if the caller holds the global override role
func (s Scope) IsSuperAdmin() bool {
	return s.Claims.Has(RoleSuperAdmin)
}

// NewScope builds the caller scope from a stored user.
func NewScope(u User) Scope {
	return Scope{
		UserID:   u.ID,
		Subject:  u.Subject,
		Email:    u.Email,
		Claims:   NewClaimSet(u.AuthClaims),
		IsActive: u.IsActive,
	}
}
