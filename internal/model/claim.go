package model

import "strings"

// Role is a base claim: a global role token with no qualifier.
type Role string

const (
	RoleSuperAdmin     Role = "SuperAdmin"
	RoleSuperAdminPlus Role = "SuperAdminPlus"
	RoleCityAdmin      Role = "CityAdmin"
	RoleVolunteerAdmin Role = "VolunteerAdmin"
	RoleOrgAdmin       Role = "OrgAdmin"
	RoleSwepAdmin      Role = "SwepAdmin"
)

// ScopePrefix qualifies a scoped claim, as in "CityAdminFor:leeds".
type ScopePrefix string

const (
	PrefixCityAdminFor ScopePrefix = "CityAdminFor"
	PrefixSwepAdminFor ScopePrefix = "SwepAdminFor"
	PrefixAdminFor     ScopePrefix = "AdminFor"
)

const scopeSeparator = ":"

// ClaimKind tags the variant a claim string parsed into.
type ClaimKind int

const (
	ClaimUnknown ClaimKind = iota
	ClaimBase
	ClaimLocation
	ClaimOrg
)

var baseRoles = map[Role]struct{}{
	RoleSuperAdmin:     {},
	RoleSuperAdminPlus: {},
	RoleCityAdmin:      {},
	RoleVolunteerAdmin: {},
	RoleOrgAdmin:       {},
	RoleSwepAdmin:      {},
}

// scopePrefixes is the prefix table used to classify scoped claims.
var scopePrefixes = []struct {
	prefix ScopePrefix
	kind   ClaimKind
}{
	{PrefixCityAdminFor, ClaimLocation},
	{PrefixSwepAdminFor, ClaimLocation},
	{PrefixAdminFor, ClaimOrg},
}

// Claim is a parsed claim string.
type Claim struct {
	Raw    string
	Kind   ClaimKind
	Role   Role
	Prefix ScopePrefix
	Slug   string
}

// ParseClaim classifies s once so callers never repeat prefix tests.
func ParseClaim(s string) Claim {
	if _, ok := baseRoles[Role(s)]; ok {
		return Claim{Raw: s, Kind: ClaimBase, Role: Role(s)}
	}
	for _, p := range scopePrefixes {
		head := string(p.prefix) + scopeSeparator
		if strings.HasPrefix(s, head) {
			return Claim{Raw: s, Kind: p.kind, Prefix: p.prefix, Slug: strings.TrimPrefix(s, head)}
		}
	}
	return Claim{Raw: s, Kind: ClaimUnknown}
}

func (c Claim) String() string { return c.Raw }

// IsScoped reports whether the claim carries a location or organisation slug.
func (c Claim) IsScoped() bool {
	return c.Kind == ClaimLocation || c.Kind == ClaimOrg
}

func IsBaseRole(s string) bool {
	return ParseClaim(s).Kind == ClaimBase
}

func IsLocationScopedRole(s string) bool {
	return ParseClaim(s).Kind == ClaimLocation
}

func IsOrgScopedRole(s string) bool {
	return ParseClaim(s).Kind == ClaimOrg
}

// ScopeOf returns the slug of a scoped claim.
func ScopeOf(s string) (string, bool) {
	c := ParseClaim(s)
	if !c.IsScoped() {
		return "", false
	}
	return c.Slug, true
}

func scoped(prefix ScopePrefix, slug string) string {
	return string(prefix) + scopeSeparator + slug
}

func CityAdminFor(location string) string { return scoped(PrefixCityAdminFor, location) }
func SwepAdminFor(location string) string { return scoped(PrefixSwepAdminFor, location) }
func AdminFor(orgKey string) string       { return scoped(PrefixAdminFor, orgKey) }

// ClaimSetValidation is the outcome of ValidateClaimSet.
type ClaimSetValidation struct {
	Valid bool
	Error string
}

const (
	ErrMsgEmptyClaims         = "At least one claim is required"
	ErrMsgCityAdminNeedsScope = "CityAdmin role requires at least one CityAdminFor claim"
	ErrMsgSwepAdminNeedsScope = "SwepAdmin role requires at least one SwepAdminFor claim"
	ErrMsgOrgAdminNeedsScope  = "OrgAdmin role requires at least one AdminFor claim"
)

// ValidateClaimSet enforces that every scoped base role comes with at least one
// non-empty scoped claim of its family.
func ValidateClaimSet(claims []string) ClaimSetValidation {
	if len(claims) == 0 {
		return ClaimSetValidation{Error: ErrMsgEmptyClaims}
	}

	set := NewClaimSet(claims)
	rules := []struct {
		role   Role
		prefix ScopePrefix
		msg    string
	}{
		{RoleCityAdmin, PrefixCityAdminFor, ErrMsgCityAdminNeedsScope},
		{RoleSwepAdmin, PrefixSwepAdminFor, ErrMsgSwepAdminNeedsScope},
		{RoleOrgAdmin, PrefixAdminFor, ErrMsgOrgAdminNeedsScope},
	}
	for _, r := range rules {
		if set.Has(r.role) && len(set.slugs(r.prefix)) == 0 {
			return ClaimSetValidation{Error: r.msg}
		}
	}

	return ClaimSetValidation{Valid: true}
}
