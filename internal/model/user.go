package model

import "time"

// User is an administrator account of the directory.
// Subject is the identity provider's id for the account.
type User struct {
	ID                            string     `json:"id"`
	Subject                       string     `json:"Auth0Id"`
	Email                         string     `json:"Email"`
	AuthClaims                    []string   `json:"AuthClaims"`
	AssociatedProviderLocationIds []string   `json:"AssociatedProviderLocationIds"`
	IsActive                      bool       `json:"IsActive"`
	CreatedAt                     time.Time  `json:"DocumentCreationDate"`
	UpdatedAt                     time.Time  `json:"DocumentModifiedDate"`
	ArchivedAt                    *time.Time `json:"ArchivedAt,omitempty"`
}

// ClaimSet parses the stored claims.
func (u User) ClaimSet() ClaimSet {
	return NewClaimSet(u.AuthClaims)
}
