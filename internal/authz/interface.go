package authz

import "context"

// OrganisationLocator resolves an organisation key to its associated locations.
// It returns ErrOrganisationNotFound when the key does not resolve.
type OrganisationLocator interface {
	OrganisationLocations(ctx context.Context, key string) ([]string, error)
}
