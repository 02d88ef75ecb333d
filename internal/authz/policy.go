package authz

import (
	_ "embed"
	"fmt"

	"directory-api/internal/model"

	"gopkg.in/yaml.v3"
)

//go:embed policies.yaml
var defaultPolicies []byte

// Resource names a protected resource type in the policy table.
type Resource string

const (
	ResourceOrganisation          Resource = "organisation"
	ResourceOrganisationLocations Resource = "organisation-locations"
	ResourceService               Resource = "service"
	ResourceAccommodation         Resource = "accommodation"
	ResourceFAQ                   Resource = "faq"
	ResourceFAQLocations          Resource = "faq-locations"
	ResourceBanner                Resource = "banner"
	ResourceBannerLocations       Resource = "banner-locations"
	ResourceSwepBanner            Resource = "swep-banner"
	ResourceSwepBannerLocations   Resource = "swep-banner-locations"
	ResourceCMS                   Resource = "resource"
	ResourceUser                  Resource = "user"
)

var knownResources = []Resource{
	ResourceOrganisation, ResourceOrganisationLocations,
	ResourceService, ResourceAccommodation,
	ResourceFAQ, ResourceFAQLocations,
	ResourceBanner, ResourceBannerLocations,
	ResourceSwepBanner, ResourceSwepBannerLocations,
	ResourceCMS, ResourceUser,
}

// MatchMode selects ANY-of-N overlap or ALL-of-N coverage.
type MatchMode string

const (
	MatchAny MatchMode = "any"
	MatchAll MatchMode = "all"
)

// Policy is one row of the access table.
type Policy struct {
	Resource        Resource     `yaml:"resource"`
	AnyOf           []model.Role `yaml:"any_of"`
	AllOf           []model.Role `yaml:"all_of"`
	VolunteerBypass bool         `yaml:"volunteer_bypass"`
	OrgScoped       bool         `yaml:"org_scoped"`
	Match           MatchMode    `yaml:"match"`
	GeneralKey      string       `yaml:"general_key"`
	StubbedScope    bool         `yaml:"stubbed_scope"`
	RoleError       string       `yaml:"role_error"`
}

// passesGate checks the base-role capability gate.
func (p Policy) passesGate(caller model.ClaimSet) bool {
	if len(p.AnyOf) > 0 && !caller.HasAny(p.AnyOf...) {
		return false
	}
	return caller.HasAll(p.AllOf...)
}

type policyFile struct {
	Policies []Policy `yaml:"policies"`
}

// ParsePolicies decodes and validates a policy table. Every known resource must
// appear exactly once.
func ParsePolicies(data []byte) (map[Resource]Policy, error) {
	var f policyFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decode policies: %w", err)
	}

	known := make(map[Resource]bool, len(knownResources))
	for _, r := range knownResources {
		known[r] = true
	}

	out := make(map[Resource]Policy, len(f.Policies))
	for i, p := range f.Policies {
		if !known[p.Resource] {
			return nil, fmt.Errorf("policy %d: %w: %q", i, ErrUnknownResource, p.Resource)
		}
		if _, dup := out[p.Resource]; dup {
			return nil, fmt.Errorf("policy %q: duplicate entry", p.Resource)
		}
		if p.Match != MatchAny && p.Match != MatchAll {
			return nil, fmt.Errorf("policy %q: unknown match mode %q", p.Resource, p.Match)
		}
		if len(p.AnyOf) == 0 && len(p.AllOf) == 0 {
			return nil, fmt.Errorf("policy %q: no capability gate", p.Resource)
		}
		for _, r := range append(append([]model.Role{}, p.AnyOf...), p.AllOf...) {
			if !model.IsBaseRole(string(r)) {
				return nil, fmt.Errorf("policy %q: unknown role %q", p.Resource, r)
			}
		}
		if p.RoleError == "" {
			return nil, fmt.Errorf("policy %q: role_error is required", p.Resource)
		}
		out[p.Resource] = p
	}

	for _, r := range knownResources {
		if _, ok := out[r]; !ok {
			return nil, fmt.Errorf("policy %q: missing", r)
		}
	}

	return out, nil
}
