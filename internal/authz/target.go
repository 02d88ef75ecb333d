package authz

import (
	"context"
	"errors"

	"directory-api/internal/model"
)

// Target is what the scope check compares against: the locations and owning
// organisation of a loaded entity or a creation payload.
type Target struct {
	ID        string
	Locations []string
	OrgKey    string
}

// OrganisationTarget scopes an organisation by its own key and locations.
func OrganisationTarget(o model.Organisation) Target {
	return Target{ID: o.ID, Locations: o.AssociatedLocationIds, OrgKey: o.Key}
}

// OwnedTarget scopes a record that belongs to an organisation.
func OwnedTarget(id string, owner model.Organisation) Target {
	return Target{ID: id, Locations: owner.AssociatedLocationIds, OrgKey: owner.Key}
}

// UserTarget collects every location that makes a user visible to a city admin:
// provider locations, CityAdminFor scopes, and the locations of each AdminFor organisation.
// Organisations that no longer exist are skipped.
func UserTarget(ctx context.Context, orgs OrganisationLocator, u model.User) (Target, error) {
	claims := u.ClaimSet()

	t := Target{ID: u.ID}
	t.Locations = append(t.Locations, u.AssociatedProviderLocationIds...)
	t.Locations = append(t.Locations, claims.LocationScopes()...)

	for _, key := range claims.OrgScopes() {
		locs, err := orgs.OrganisationLocations(ctx, key)
		if err != nil {
			if errors.Is(err, ErrOrganisationNotFound) {
				continue
			}
			return Target{}, err
		}
		t.Locations = append(t.Locations, locs...)
	}

	return t, nil
}
