package repository

// Filter contains filtering options for user queries.
type Filter struct {
	IDs      []string
	IsActive *bool
}

// CreateOptions contains options for creating a user.
type CreateOptions struct {
	Subject                       string
	Email                         string
	AuthClaims                    []string
	AssociatedProviderLocationIds []string
}

// UpdateClaimsOptions replaces a user's claim set.
type UpdateClaimsOptions struct {
	ID         string
	AuthClaims []string
}

// GetOneOptions looks a user up by id or identity provider subject.
type GetOneOptions struct {
	ID      string
	Subject string
}

// ListOptions contains options for listing users.
type ListOptions struct {
	Filter Filter
}
