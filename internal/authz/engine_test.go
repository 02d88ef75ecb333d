package authz

import (
	"context"
	"testing"

	"directory-api/internal/model"
	"directory-api/pkg/log"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEngine(t *testing.T, opts Options) *Engine {
	t.Helper()
	e, err := New(log.NewNop(), opts)
	require.NoError(t, err)
	return e
}

func claims(c ...string) model.ClaimSet {
	return model.NewClaimSet(c)
}

func mustPolicy(t *testing.T, e *Engine, r Resource) Policy {
	t.Helper()
	p, err := e.Policy(r)
	require.NoError(t, err)
	return p
}

func TestDecide(t *testing.T) {
	e := newTestEngine(t, Options{})

	org := Target{ID: "o1", Locations: []string{"manchester", "leeds"}, OrgKey: "shelter-x"}

	tests := []struct {
		name     string
		resource Resource
		caller   model.ClaimSet
		target   Target
		want     Verdict
	}{
		{
			name:     "super admin ignores locations",
			resource: ResourceOrganisation,
			caller:   claims("SuperAdmin"),
			target:   Target{Locations: []string{"nowhere"}},
			want:     Allow(),
		},
		{
			name:     "city admin with one overlapping location",
			resource: ResourceOrganisation,
			caller:   claims("CityAdmin", "CityAdminFor:manchester"),
			target:   org,
			want:     Allow(),
		},
		{
			name:     "city admin without overlap",
			resource: ResourceOrganisation,
			caller:   claims("CityAdmin", "CityAdminFor:manchester"),
			target:   Target{Locations: []string{"leeds", "bradford"}},
			want:     Deny(ReasonInsufficientScope),
		},
		{
			name:     "org admin through AdminFor",
			resource: ResourceOrganisation,
			caller:   claims("OrgAdmin", "AdminFor:shelter-x"),
			target:   org,
			want:     Allow(),
		},
		{
			name:     "org admin of another org",
			resource: ResourceOrganisation,
			caller:   claims("OrgAdmin", "AdminFor:shelter-y"),
			target:   org,
			want:     Deny(ReasonInsufficientScope),
		},
		{
			name:     "volunteer admin has no organisation bypass",
			resource: ResourceOrganisation,
			caller:   claims("VolunteerAdmin"),
			target:   org,
			want:     Deny("City admin or organisation admin role required"),
		},
		{
			name:     "volunteer admin bypasses services",
			resource: ResourceService,
			caller:   claims("VolunteerAdmin"),
			target:   org,
			want:     Allow(),
		},
		{
			name:     "volunteer admin bypasses accommodations",
			resource: ResourceAccommodation,
			caller:   claims("VolunteerAdmin"),
			target:   org,
			want:     Allow(),
		},
		{
			name:     "service scoped through owning organisation",
			resource: ResourceService,
			caller:   claims("CityAdmin", "CityAdminFor:leeds"),
			target:   org,
			want:     Allow(),
		},
		{
			name:     "general faq passes any city admin",
			resource: ResourceFAQ,
			caller:   claims("CityAdmin", "CityAdminFor:york"),
			target:   Target{Locations: []string{model.GeneralLocationKey}},
			want:     Allow(),
		},
		{
			name:     "general faq still needs the gate",
			resource: ResourceFAQ,
			caller:   claims("OrgAdmin", "AdminFor:x"),
			target:   Target{Locations: []string{model.GeneralLocationKey}},
			want:     Deny("City admin role required"),
		},
		{
			name:     "banner with multi-location slug",
			resource: ResourceBanner,
			caller:   claims("CityAdmin", "CityAdminFor:leeds"),
			target:   Target{Locations: model.SplitLocationSlug("manchester, leeds")},
			want:     Allow(),
		},
		{
			name:     "swep banner needs both roles",
			resource: ResourceSwepBanner,
			caller:   claims("CityAdmin", "CityAdminFor:leeds"),
			target:   Target{Locations: []string{"leeds"}},
			want:     Deny("SWEP admin and city admin roles required"),
		},
		{
			name:     "swep banner location check is stubbed",
			resource: ResourceSwepBanner,
			caller:   claims("SwepAdmin", "CityAdmin", "CityAdminFor:leeds", "SwepAdminFor:leeds"),
			target:   Target{Locations: []string{"york"}},
			want:     Allow(),
		},
		{
			name:     "resource location check is stubbed",
			resource: ResourceCMS,
			caller:   claims("CityAdmin", "CityAdminFor:leeds"),
			target:   Target{ID: "r1"},
			want:     Allow(),
		},
		{
			name:     "user read without overlap",
			resource: ResourceUser,
			caller:   claims("CityAdmin", "CityAdminFor:leeds"),
			target:   Target{Locations: []string{"york"}},
			want:     Deny(ReasonInsufficientScope),
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := e.Decide(mustPolicy(t, e, tc.resource), tc.caller, tc.target)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestDecideStubbedEnforced(t *testing.T) {
	e := newTestEngine(t, Options{EnforceStubbedLocationChecks: true})
	caller := claims("SwepAdmin", "CityAdmin", "CityAdminFor:leeds")

	swep := mustPolicy(t, e, ResourceSwepBanner)
	assert.Equal(t, Deny(ReasonInsufficientScope), e.Decide(swep, caller, Target{Locations: []string{"york"}}))
	assert.Equal(t, Allow(), e.Decide(swep, caller, Target{Locations: []string{"york", "leeds"}}))

	res := mustPolicy(t, e, ResourceCMS)
	assert.Equal(t, Allow(), e.Decide(res, claims("CityAdmin", "CityAdminFor:leeds"), Target{ID: "r1"}))
}

func TestDecideLocations(t *testing.T) {
	e := newTestEngine(t, Options{})

	tests := []struct {
		name      string
		resource  Resource
		caller    model.ClaimSet
		requested []string
		want      Verdict
	}{
		{
			name:      "every location covered",
			resource:  ResourceOrganisationLocations,
			caller:    claims("CityAdmin", "CityAdminFor:manchester", "CityAdminFor:leeds"),
			requested: []string{"manchester", "leeds"},
			want:      Allow(),
		},
		{
			name:      "one location missing is named",
			resource:  ResourceOrganisationLocations,
			caller:    claims("CityAdmin", "CityAdminFor:manchester"),
			requested: []string{"manchester", "leeds"},
			want:      Deny("Access denied for location: leeds"),
		},
		{
			name:      "empty list",
			resource:  ResourceBannerLocations,
			caller:    claims("CityAdmin", "CityAdminFor:manchester"),
			requested: nil,
			want:      Deny(ReasonNoLocations),
		},
		{
			name:      "general passes for faqs",
			resource:  ResourceFAQLocations,
			caller:    claims("CityAdmin", "CityAdminFor:manchester"),
			requested: []string{"general", "manchester"},
			want:      Allow(),
		},
		{
			name:      "general is an ordinary slug for banners",
			resource:  ResourceBannerLocations,
			caller:    claims("CityAdmin", "CityAdminFor:manchester"),
			requested: []string{"general"},
			want:      Deny("Access denied for location: general"),
		},
		{
			name:      "swep list needs swep admin",
			resource:  ResourceSwepBannerLocations,
			caller:    claims("CityAdmin", "CityAdminFor:manchester"),
			requested: []string{"manchester"},
			want:      Deny("SWEP admin and city admin roles required"),
		},
		{
			name:      "super admin with empty list",
			resource:  ResourceOrganisationLocations,
			caller:    claims("SuperAdmin"),
			requested: nil,
			want:      Allow(),
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := e.DecideLocations(mustPolicy(t, e, tc.resource), tc.caller, tc.requested)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestPolicyUnknownResource(t *testing.T) {
	e := newTestEngine(t, Options{})
	_, err := e.Policy("widgets")
	assert.ErrorIs(t, err, ErrUnknownResource)
}

func TestRecord(t *testing.T) {
	e := newTestEngine(t, Options{})
	sc := model.Scope{UserID: "u1"}
	assert.NotPanics(t, func() {
		e.Record(context.Background(), sc, ResourceFAQ, "f1", Allow())
		e.Record(context.Background(), sc, ResourceFAQ, "f1", Deny(ReasonInsufficientScope))
	})
}
