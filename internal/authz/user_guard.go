package authz

import (
	"context"
	"errors"

	"directory-api/internal/model"
)

const (
	ReasonManageUsers       = "Insufficient permissions to manage users"
	ReasonVolunteerOrgOnly  = "VolunteerAdmin can only create organisation administrators"
	ReasonOrgAdminShape     = "OrgAdmin can only create users with exactly OrgAdmin and one AdminFor claim"
	ReasonOrgAdminOwnOrgs   = "OrgAdmin can only create users for organizations they manage"
	ReasonOrgAdminRole      = "OrgAdmin cannot assign role: "
	ReasonProtectedTarget   = "Cannot modify a SuperAdmin or VolunteerAdmin user"
	ReasonDeleteOutOfScope  = "Cannot delete user outside your locations"
	ReasonDeleteUnsupported = "Cannot delete user with these claims"
	reasonAddClaimPrefix    = "Cannot add claim: "
	reasonRemoveClaimPrefix = "Cannot remove claim: "
)

// protectedRoles may only be granted, revoked or acted on by a SuperAdmin.
var protectedRoles = []model.Role{model.RoleSuperAdmin, model.RoleVolunteerAdmin}

// exemptBaseRoles can be added or removed by a city admin without a scope check.
var exemptBaseRoles = map[model.Role]bool{
	model.RoleCityAdmin: true,
	model.RoleOrgAdmin:  true,
	model.RoleSwepAdmin: true,
}

// UserGuard decides who may create, re-claim, delete and view users.
// Caller precedence is SuperAdmin, VolunteerAdmin, CityAdmin, OrgAdmin.
type UserGuard struct {
	orgs OrganisationLocator
}

func NewUserGuard(orgs OrganisationLocator) *UserGuard {
	return &UserGuard{orgs: orgs}
}

// CanCreateUser checks a new user's claim set against the caller. The set
// must already have passed model.ValidateClaimSet.
func (g *UserGuard) CanCreateUser(ctx context.Context, caller model.ClaimSet, newClaims []string) error {
	next := model.NewClaimSet(newClaims)

	switch {
	case caller.Has(model.RoleSuperAdmin):
		return nil

	case caller.Has(model.RoleVolunteerAdmin):
		for _, c := range next.Claims() {
			if c.Kind == model.ClaimOrg || c.Role == model.RoleOrgAdmin {
				continue
			}
			return denied(ReasonVolunteerOrgOnly)
		}
		return nil

	case caller.Has(model.RoleCityAdmin):
		for _, c := range next.Claims() {
			if err := g.cityAdminMayTouch(ctx, caller, c); err != nil {
				if errors.Is(err, errOutOfScope) {
					return denied(reasonAddClaimPrefix + c.Raw)
				}
				return err
			}
		}
		return nil

	case caller.Has(model.RoleOrgAdmin):
		return orgAdminMayCreate(caller, next)
	}

	return denied(ReasonManageUsers)
}

func orgAdminMayCreate(caller, next model.ClaimSet) error {
	for _, r := range []model.Role{model.RoleSuperAdmin, model.RoleVolunteerAdmin, model.RoleCityAdmin} {
		if next.Has(r) {
			return denied(ReasonOrgAdminRole + string(r))
		}
	}

	orgs := next.OrgScopes()
	if next.Len() != 2 || !next.Has(model.RoleOrgAdmin) || len(orgs) != 1 {
		return denied(ReasonOrgAdminShape)
	}

	if !caller.AdministersOrg(orgs[0]) {
		return denied(ReasonOrgAdminOwnOrgs)
	}
	return nil
}

// CanUpdateUserClaims checks a claim-set change. Every added and removed claim
// must be within the caller's reach; the offending claim is named.
func (g *UserGuard) CanUpdateUserClaims(ctx context.Context, caller model.ClaimSet, oldClaims, newClaims []string) error {
	if caller.Has(model.RoleSuperAdmin) {
		return nil
	}
	if !caller.Has(model.RoleCityAdmin) {
		return denied(ReasonManageUsers)
	}

	prev := model.NewClaimSet(oldClaims)
	if prev.HasAny(protectedRoles...) {
		return denied(ReasonProtectedTarget)
	}

	added, removed := prev.Diff(model.NewClaimSet(newClaims))
	for _, c := range added {
		if err := g.cityAdminMayTouch(ctx, caller, c); err != nil {
			if errors.Is(err, errOutOfScope) {
				return denied(reasonAddClaimPrefix + c.Raw)
			}
			return err
		}
	}
	for _, c := range removed {
		if err := g.cityAdminMayTouch(ctx, caller, c); err != nil {
			if errors.Is(err, errOutOfScope) {
				return denied(reasonRemoveClaimPrefix + c.Raw)
			}
			return err
		}
	}

	return nil
}

// CanDeleteUser checks deletion or deactivation of a user holding targetClaims.
func (g *UserGuard) CanDeleteUser(ctx context.Context, caller model.ClaimSet, targetClaims []string) error {
	if caller.Has(model.RoleSuperAdmin) {
		return nil
	}
	if !caller.Has(model.RoleCityAdmin) {
		return denied(ReasonManageUsers)
	}

	target := model.NewClaimSet(targetClaims)
	if target.HasAny(protectedRoles...) {
		return denied(ReasonProtectedTarget)
	}

	isOrgAdmin := target.Has(model.RoleOrgAdmin)
	isLocationAdmin := target.HasAny(model.RoleCityAdmin, model.RoleSwepAdmin)
	if !isOrgAdmin && !isLocationAdmin {
		return denied(ReasonDeleteUnsupported)
	}

	// An admin role without scopes cannot be shown to fall inside the caller's.
	if isOrgAdmin {
		if len(target.OrgScopes()) == 0 {
			return denied(ReasonDeleteOutOfScope)
		}
		for _, key := range target.OrgScopes() {
			ok, err := g.orgInScope(ctx, caller, key)
			if err != nil {
				return err
			}
			if !ok {
				return denied(ReasonDeleteOutOfScope)
			}
		}
	}

	if isLocationAdmin {
		slugs := append(target.LocationScopes(), target.SwepScopes()...)
		if len(slugs) == 0 {
			return denied(ReasonDeleteOutOfScope)
		}
		for _, l := range slugs {
			if !caller.CoversLocation(l) {
				return denied(ReasonDeleteOutOfScope)
			}
		}
	}

	return nil
}

// CanViewUser reports whether caller may read target. A city admin sees users
// linked to any of its locations directly, through a CityAdminFor claim, or
// through an organisation they administer.
func (g *UserGuard) CanViewUser(ctx context.Context, caller model.ClaimSet, target model.User) (bool, error) {
	if caller.Has(model.RoleSuperAdmin) {
		return true, nil
	}
	if !caller.Has(model.RoleCityAdmin) {
		return false, nil
	}

	claims := target.ClaimSet()
	if caller.CoversAnyLocation(target.AssociatedProviderLocationIds) {
		return true, nil
	}
	if caller.CoversAnyLocation(claims.LocationScopes()) {
		return true, nil
	}

	for _, key := range claims.OrgScopes() {
		ok, err := g.orgInScope(ctx, caller, key)
		if err != nil {
			if errors.Is(err, ErrOrganisationNotFound) {
				continue
			}
			return false, err
		}
		if ok {
			return true, nil
		}
	}

	return false, nil
}

var errOutOfScope = errors.New("claim out of scope")

// cityAdminMayTouch reports whether a city admin may add or remove c.
// It returns errOutOfScope, ErrOrganisationNotFound or a lookup error.
func (g *UserGuard) cityAdminMayTouch(ctx context.Context, caller model.ClaimSet, c model.Claim) error {
	switch c.Kind {
	case model.ClaimBase:
		if exemptBaseRoles[c.Role] {
			return nil
		}
		return errOutOfScope

	case model.ClaimLocation:
		if caller.CoversLocation(c.Slug) {
			return nil
		}
		return errOutOfScope

	case model.ClaimOrg:
		ok, err := g.orgInScope(ctx, caller, c.Slug)
		if err != nil {
			return err
		}
		if !ok {
			return errOutOfScope
		}
		return nil
	}

	return errOutOfScope
}

func (g *UserGuard) orgInScope(ctx context.Context, caller model.ClaimSet, key string) (bool, error) {
	locs, err := g.orgs.OrganisationLocations(ctx, key)
	if err != nil {
		return false, err
	}
	return caller.CoversAnyLocation(locs), nil
}
