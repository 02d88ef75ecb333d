package model

// ClaimSet is an order-preserving, de-duplicated set of parsed claims.
// The zero value is an empty set.
type ClaimSet struct {
	claims []Claim
	index  map[string]struct{}
}

func NewClaimSet(raw []string) ClaimSet {
	s := ClaimSet{index: make(map[string]struct{}, len(raw))}
	for _, r := range raw {
		if _, dup := s.index[r]; dup {
			continue
		}
		s.index[r] = struct{}{}
		s.claims = append(s.claims, ParseClaim(r))
	}
	return s
}

func (s ClaimSet) Len() int { return len(s.claims) }

func (s ClaimSet) Claims() []Claim {
	out := make([]Claim, len(s.claims))
	copy(out, s.claims)
	return out
}

func (s ClaimSet) Strings() []string {
	out := make([]string, len(s.claims))
	for i, c := range s.claims {
		out[i] = c.Raw
	}
	return out
}

func (s ClaimSet) Contains(raw string) bool {
	_, ok := s.index[raw]
	return ok
}

func (s ClaimSet) Has(r Role) bool {
	return s.Contains(string(r))
}

func (s ClaimSet) HasAny(roles ...Role) bool {
	for _, r := range roles {
		if s.Has(r) {
			return true
		}
	}
	return false
}

func (s ClaimSet) HasAll(roles ...Role) bool {
	for _, r := range roles {
		if !s.Has(r) {
			return false
		}
	}
	return true
}

func (s ClaimSet) slugs(prefix ScopePrefix) []string {
	var out []string
	for _, c := range s.claims {
		if c.Prefix == prefix && c.Slug != "" {
			out = append(out, c.Slug)
		}
	}
	return out
}

// LocationScopes returns the locations the holder administers as a city admin.
func (s ClaimSet) LocationScopes() []string { return s.slugs(PrefixCityAdminFor) }

func (s ClaimSet) SwepScopes() []string { return s.slugs(PrefixSwepAdminFor) }

// OrgScopes returns the organisation keys from AdminFor claims.
func (s ClaimSet) OrgScopes() []string { return s.slugs(PrefixAdminFor) }

// CoversLocation reports whether the holder has CityAdminFor:<location>.
func (s ClaimSet) CoversLocation(location string) bool {
	return location != "" && s.Contains(CityAdminFor(location))
}

// CoversAnyLocation reports ANY-of-N overlap between the holder's scopes and locations.
func (s ClaimSet) CoversAnyLocation(locations []string) bool {
	for _, l := range locations {
		if s.CoversLocation(l) {
			return true
		}
	}
	return false
}

// AdministersOrg reports whether the holder has AdminFor:<orgKey>.
func (s ClaimSet) AdministersOrg(orgKey string) bool {
	return orgKey != "" && s.Contains(AdminFor(orgKey))
}

// Diff returns the claims present only in next (added) and only in s (removed).
func (s ClaimSet) Diff(next ClaimSet) (added, removed []Claim) {
	for _, c := range next.claims {
		if !s.Contains(c.Raw) {
			added = append(added, c)
		}
	}
	for _, c := range s.claims {
		if !next.Contains(c.Raw) {
			removed = append(removed, c)
		}
	}
	return added, removed
}
