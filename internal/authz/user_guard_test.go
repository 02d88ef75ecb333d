package authz

import (
	"context"
	"errors"
	"testing"

	"directory-api/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLocator struct {
	orgs  map[string][]string
	err   error
	calls int
}

func (f *fakeLocator) OrganisationLocations(_ context.Context, key string) ([]string, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	locs, ok := f.orgs[key]
	if !ok {
		return nil, ErrOrganisationNotFound
	}
	return locs, nil
}

func newLocator() *fakeLocator {
	return &fakeLocator{orgs: map[string][]string{
		"shelter-x": {"manchester"},
		"shelter-y": {"leeds", "bradford"},
	}}
}

func assertDenied(t *testing.T, err error, reason string) {
	t.Helper()
	got, ok := IsDenied(err)
	require.True(t, ok, "expected DeniedError, got %v", err)
	assert.Equal(t, reason, got)
}

func TestCanCreateUser(t *testing.T) {
	cityAdmin := claims("CityAdmin", "CityAdminFor:manchester")

	tests := []struct {
		name       string
		caller     model.ClaimSet
		newClaims  []string
		wantReason string
		wantErr    error
	}{
		{
			name:      "super admin creates anything",
			caller:    claims("SuperAdmin"),
			newClaims: []string{"VolunteerAdmin"},
		},
		{
			name:      "volunteer admin provisions any org admin",
			caller:    claims("VolunteerAdmin"),
			newClaims: []string{"OrgAdmin", "AdminFor:shelter-y"},
		},
		{
			name:       "volunteer admin cannot create city admins",
			caller:     claims("VolunteerAdmin"),
			newClaims:  []string{"CityAdmin", "CityAdminFor:leeds"},
			wantReason: ReasonVolunteerOrgOnly,
		},
		{
			name:      "org admin creates peer for own org",
			caller:    claims("OrgAdmin", "AdminFor:shelter-x"),
			newClaims: []string{"OrgAdmin", "AdminFor:shelter-x"},
		},
		{
			name:       "org admin for wrong org with extra role",
			caller:     claims("OrgAdmin", "AdminFor:shelter-x"),
			newClaims:  []string{"OrgAdmin", "AdminFor:shelter-y", "CityAdmin"},
			wantReason: ReasonOrgAdminRole + "CityAdmin",
		},
		{
			name:       "org admin with wrong shape",
			caller:     claims("OrgAdmin", "AdminFor:shelter-x"),
			newClaims:  []string{"OrgAdmin", "AdminFor:shelter-x", "AdminFor:shelter-y"},
			wantReason: ReasonOrgAdminShape,
		},
		{
			name:       "org admin for another org",
			caller:     claims("OrgAdmin", "AdminFor:shelter-x"),
			newClaims:  []string{"OrgAdmin", "AdminFor:shelter-y"},
			wantReason: ReasonOrgAdminOwnOrgs,
		},
		{
			name:      "city admin creates org admin in scope",
			caller:    cityAdmin,
			newClaims: []string{"OrgAdmin", "AdminFor:shelter-x"},
		},
		{
			name:       "city admin creates org admin out of scope",
			caller:     cityAdmin,
			newClaims:  []string{"OrgAdmin", "AdminFor:shelter-y"},
			wantReason: reasonAddClaimPrefix + "AdminFor:shelter-y",
		},
		{
			name:      "city admin org admin for missing org",
			caller:    cityAdmin,
			newClaims: []string{"OrgAdmin", "AdminFor:ghost"},
			wantErr:   ErrOrganisationNotFound,
		},
		{
			name:       "city admin cannot grant super admin",
			caller:     cityAdmin,
			newClaims:  []string{"SuperAdmin"},
			wantReason: reasonAddClaimPrefix + "SuperAdmin",
		},
		{
			name:      "city admin creates city admin in scope",
			caller:    cityAdmin,
			newClaims: []string{"CityAdmin", "CityAdminFor:manchester", "SwepAdmin", "SwepAdminFor:manchester"},
		},
		{
			name:       "city admin creates swep admin out of scope",
			caller:     cityAdmin,
			newClaims:  []string{"SwepAdmin", "SwepAdminFor:leeds"},
			wantReason: reasonAddClaimPrefix + "SwepAdminFor:leeds",
		},
		{
			name:       "swep admin alone cannot create",
			caller:     claims("SwepAdmin", "SwepAdminFor:leeds"),
			newClaims:  []string{"OrgAdmin", "AdminFor:shelter-x"},
			wantReason: ReasonManageUsers,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := NewUserGuard(newLocator())
			err := g.CanCreateUser(context.Background(), tc.caller, tc.newClaims)
			switch {
			case tc.wantErr != nil:
				assert.ErrorIs(t, err, tc.wantErr)
			case tc.wantReason != "":
				assertDenied(t, err, tc.wantReason)
			default:
				assert.NoError(t, err)
			}
		})
	}
}

func TestCanUpdateUserClaims(t *testing.T) {
	cityAdmin := claims("CityAdmin", "CityAdminFor:manchester")

	tests := []struct {
		name       string
		caller     model.ClaimSet
		old, new   []string
		wantReason string
	}{
		{
			name:   "super admin",
			caller: claims("SuperAdmin"),
			old:    []string{"OrgAdmin", "AdminFor:shelter-x"},
			new:    []string{"SuperAdmin"},
		},
		{
			name:       "protected target",
			caller:     cityAdmin,
			old:        []string{"VolunteerAdmin"},
			new:        []string{"VolunteerAdmin", "CityAdmin", "CityAdminFor:manchester"},
			wantReason: ReasonProtectedTarget,
		},
		{
			name:       "cannot assign volunteer admin",
			caller:     cityAdmin,
			old:        []string{"OrgAdmin", "AdminFor:shelter-x"},
			new:        []string{"OrgAdmin", "AdminFor:shelter-x", "VolunteerAdmin"},
			wantReason: reasonAddClaimPrefix + "VolunteerAdmin",
		},
		{
			name:   "swap org within scope and add base role",
			caller: claims("CityAdmin", "CityAdminFor:manchester", "CityAdminFor:leeds"),
			old:    []string{"OrgAdmin", "AdminFor:shelter-x"},
			new:    []string{"OrgAdmin", "AdminFor:shelter-y", "SwepAdmin", "SwepAdminFor:leeds"},
		},
		{
			name:       "remove claim out of scope",
			caller:     cityAdmin,
			old:        []string{"CityAdmin", "CityAdminFor:manchester", "CityAdminFor:york"},
			new:        []string{"CityAdmin", "CityAdminFor:manchester"},
			wantReason: reasonRemoveClaimPrefix + "CityAdminFor:york",
		},
		{
			name:       "add org claim out of scope",
			caller:     cityAdmin,
			old:        []string{"OrgAdmin", "AdminFor:shelter-x"},
			new:        []string{"OrgAdmin", "AdminFor:shelter-x", "AdminFor:shelter-y"},
			wantReason: reasonAddClaimPrefix + "AdminFor:shelter-y",
		},
		{
			name:       "org admin cannot update",
			caller:     claims("OrgAdmin", "AdminFor:shelter-x"),
			old:        []string{"OrgAdmin", "AdminFor:shelter-x"},
			new:        []string{"OrgAdmin", "AdminFor:shelter-x"},
			wantReason: ReasonManageUsers,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := NewUserGuard(newLocator())
			err := g.CanUpdateUserClaims(context.Background(), tc.caller, tc.old, tc.new)
			if tc.wantReason == "" {
				assert.NoError(t, err)
				return
			}
			assertDenied(t, err, tc.wantReason)
		})
	}
}

func TestCanDeleteUser(t *testing.T) {
	cityAdmin := claims("CityAdmin", "CityAdminFor:manchester")

	tests := []struct {
		name       string
		caller     model.ClaimSet
		target     []string
		wantReason string
	}{
		{name: "super admin", caller: claims("SuperAdmin"), target: []string{"VolunteerAdmin"}},
		{name: "protected target", caller: cityAdmin, target: []string{"SuperAdmin"}, wantReason: ReasonProtectedTarget},
		{name: "org admin in scope", caller: cityAdmin, target: []string{"OrgAdmin", "AdminFor:shelter-x"}},
		{name: "org admin out of scope", caller: cityAdmin, target: []string{"OrgAdmin", "AdminFor:shelter-y"}, wantReason: ReasonDeleteOutOfScope},
		{name: "city admin in scope", caller: cityAdmin, target: []string{"CityAdmin", "CityAdminFor:manchester"}},
		{
			name:       "city admin partly out of scope",
			caller:     cityAdmin,
			target:     []string{"CityAdmin", "CityAdminFor:manchester", "CityAdminFor:leeds"},
			wantReason: ReasonDeleteOutOfScope,
		},
		{name: "swep admin out of scope", caller: cityAdmin, target: []string{"SwepAdmin", "SwepAdminFor:leeds"}, wantReason: ReasonDeleteOutOfScope},
		{name: "org admin without organisations", caller: cityAdmin, target: []string{"OrgAdmin"}, wantReason: ReasonDeleteOutOfScope},
		{name: "city admin without locations", caller: cityAdmin, target: []string{"CityAdmin"}, wantReason: ReasonDeleteOutOfScope},
		{name: "unsupported shape", caller: cityAdmin, target: []string{"SuperAdminPlus"}, wantReason: ReasonDeleteUnsupported},
		{name: "non admin caller", caller: claims("OrgAdmin", "AdminFor:shelter-x"), target: []string{"OrgAdmin", "AdminFor:shelter-x"}, wantReason: ReasonManageUsers},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := NewUserGuard(newLocator())
			err := g.CanDeleteUser(context.Background(), tc.caller, tc.target)
			if tc.wantReason == "" {
				assert.NoError(t, err)
				return
			}
			assertDenied(t, err, tc.wantReason)
		})
	}
}

func TestCanViewUser(t *testing.T) {
	cityAdmin := claims("CityAdmin", "CityAdminFor:manchester")

	tests := []struct {
		name   string
		caller model.ClaimSet
		target model.User
		want   bool
	}{
		{name: "super admin", caller: claims("SuperAdmin"), target: model.User{AuthClaims: []string{"SuperAdmin"}}, want: true},
		{name: "provider location", caller: cityAdmin, target: model.User{AssociatedProviderLocationIds: []string{"manchester"}}, want: true},
		{name: "city admin claim", caller: cityAdmin, target: model.User{AuthClaims: []string{"CityAdmin", "CityAdminFor:manchester"}}, want: true},
		{name: "org claim", caller: cityAdmin, target: model.User{AuthClaims: []string{"OrgAdmin", "AdminFor:ghost", "AdminFor:shelter-x"}}, want: true},
		{name: "no overlap", caller: cityAdmin, target: model.User{AuthClaims: []string{"OrgAdmin", "AdminFor:shelter-y"}}, want: false},
		{name: "org admin caller", caller: claims("OrgAdmin", "AdminFor:shelter-x"), target: model.User{AuthClaims: []string{"OrgAdmin", "AdminFor:shelter-x"}}, want: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := NewUserGuard(newLocator())
			got, err := g.CanViewUser(context.Background(), tc.caller, tc.target)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestCanViewUserLookupError(t *testing.T) {
	boom := errors.New("db down")
	g := NewUserGuard(&fakeLocator{err: boom})
	_, err := g.CanViewUser(context.Background(), claims("CityAdmin", "CityAdminFor:manchester"),
		model.User{AuthClaims: []string{"OrgAdmin", "AdminFor:shelter-x"}})
	assert.ErrorIs(t, err, boom)
}

func TestUserTarget(t *testing.T) {
	loc := newLocator()
	u := model.User{
		ID:                            "u1",
		AuthClaims:                    []string{"CityAdmin", "CityAdminFor:york", "OrgAdmin", "AdminFor:shelter-y", "AdminFor:ghost"},
		AssociatedProviderLocationIds: []string{"hull"},
	}

	tg, err := UserTarget(context.Background(), loc, u)
	require.NoError(t, err)
	assert.Equal(t, "u1", tg.ID)
	assert.ElementsMatch(t, []string{"hull", "york", "leeds", "bradford"}, tg.Locations)
	assert.Equal(t, 2, loc.calls)
}
