package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"directory-api/internal/authz"
	"directory-api/internal/model"
	"directory-api/internal/organisation"
	"directory-api/internal/organisation/repository"
	"directory-api/pkg/log"
	postgresPkg "directory-api/pkg/postgre"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRepo keeps organisations in memory. Writes made inside WithinTx are
// discarded when fn fails.
type fakeRepo struct {
	repository.Repository

	orgs        map[string]model.Organisation
	patches     []model.ServicePatch
	cascadeErr  error
	commits     int
	rollbacks   int
	reminderIDs []string
}

func newFakeRepo(orgs ...model.Organisation) *fakeRepo {
	f := &fakeRepo{orgs: map[string]model.Organisation{}}
	for _, o := range orgs {
		f.orgs[o.Key] = o
	}
	return f
}

func (f *fakeRepo) snapshot() (map[string]model.Organisation, int) {
	cp := make(map[string]model.Organisation, len(f.orgs))
	for k, v := range f.orgs {
		cp[k] = v
	}
	return cp, len(f.patches)
}

func (f *fakeRepo) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	orgs, n := f.snapshot()
	if err := fn(ctx); err != nil {
		f.orgs, f.patches = orgs, f.patches[:n]
		f.rollbacks++
		if errors.Is(err, postgresPkg.ErrRollback) {
			return nil
		}
		return err
	}
	f.commits++
	return nil
}

func (f *fakeRepo) GetByKey(_ context.Context, key string) (model.Organisation, error) {
	o, ok := f.orgs[key]
	if !ok {
		return model.Organisation{}, repository.ErrNotFound
	}
	return o, nil
}

func (f *fakeRepo) byID(id string) (model.Organisation, bool) {
	for _, o := range f.orgs {
		if o.ID == id {
			return o, true
		}
	}
	return model.Organisation{}, false
}

func (f *fakeRepo) TogglePublished(_ context.Context, key string) (model.Organisation, error) {
	o, ok := f.orgs[key]
	if !ok {
		return model.Organisation{}, repository.ErrNotFound
	}
	o.IsPublished = !o.IsPublished
	f.orgs[key] = o
	return o, nil
}

func (f *fakeRepo) ToggleVerified(_ context.Context, key string) (model.Organisation, error) {
	o, ok := f.orgs[key]
	if !ok {
		return model.Organisation{}, repository.ErrNotFound
	}
	o.IsVerified = !o.IsVerified
	f.orgs[key] = o
	return o, nil
}

func (f *fakeRepo) Unpublish(_ context.Context, id string) (bool, error) {
	o, ok := f.byID(id)
	if !ok || !o.IsPublished {
		return false, nil
	}
	o.IsPublished = false
	f.orgs[o.Key] = o
	return true, nil
}

func (f *fakeRepo) Unverify(_ context.Context, id string) (bool, error) {
	o, ok := f.byID(id)
	if !ok || !o.IsVerified {
		return false, nil
	}
	o.IsVerified = false
	f.orgs[o.Key] = o
	return true, nil
}

func (f *fakeRepo) UpdateRelatedServices(_ context.Context, _ string, patch model.ServicePatch) (int64, error) {
	if f.cascadeErr != nil {
		return 0, f.cascadeErr
	}
	f.patches = append(f.patches, patch)
	return 2, nil
}

func (f *fakeRepo) MarkReminderSent(_ context.Context, id string, _ time.Time) error {
	f.reminderIDs = append(f.reminderIDs, id)
	return nil
}

func testOrg() model.Organisation {
	return model.Organisation{ID: "o1", Key: "shelter-x", AssociatedLocationIds: []string{"leeds"}, IsPublished: true, IsVerified: true}
}

func TestTogglePublishedCascades(t *testing.T) {
	repo := newFakeRepo(testOrg())
	uc := New(log.NewNop(), repo)

	o, err := uc.TogglePublished(context.Background(), model.Scope{UserID: "u1"}, "shelter-x")
	require.NoError(t, err)
	assert.False(t, o.IsPublished)
	require.Len(t, repo.patches, 1)
	assert.False(t, *repo.patches[0].IsPublished)
	assert.Nil(t, repo.patches[0].IsVerified)
	assert.Equal(t, 1, repo.commits)
}

func TestToggleVerifiedRollsBackOnCascadeFailure(t *testing.T) {
	repo := newFakeRepo(testOrg())
	repo.cascadeErr = errors.New("write conflict")
	uc := New(log.NewNop(), repo)

	_, err := uc.ToggleVerified(context.Background(), model.Scope{}, "shelter-x")
	assert.EqualError(t, err, "write conflict")
	assert.True(t, repo.orgs["shelter-x"].IsVerified)
	assert.Equal(t, 1, repo.rollbacks)
}

func TestToggleMissingOrganisation(t *testing.T) {
	uc := New(log.NewNop(), newFakeRepo())
	_, err := uc.TogglePublished(context.Background(), model.Scope{}, "ghost")
	assert.ErrorIs(t, err, organisation.ErrNotFound)
}

func TestDisable(t *testing.T) {
	t.Run("flips and cascades", func(t *testing.T) {
		repo := newFakeRepo(testOrg())
		uc := New(log.NewNop(), repo)

		changed, err := uc.Disable(context.Background(), testOrg())
		require.NoError(t, err)
		assert.True(t, changed)
		assert.False(t, repo.orgs["shelter-x"].IsPublished)
		assert.Len(t, repo.patches, 1)
		assert.Equal(t, 1, repo.commits)
	})

	t.Run("already unpublished rolls back", func(t *testing.T) {
		org := testOrg()
		org.IsPublished = false
		repo := newFakeRepo(org)
		uc := New(log.NewNop(), repo)

		changed, err := uc.Disable(context.Background(), testOrg())
		require.NoError(t, err)
		assert.False(t, changed)
		assert.Empty(t, repo.patches)
		assert.Equal(t, 1, repo.rollbacks)
	})
}

func TestExpireVerification(t *testing.T) {
	repo := newFakeRepo(testOrg())
	uc := New(log.NewNop(), repo)

	changed, err := uc.ExpireVerification(context.Background(), testOrg())
	require.NoError(t, err)
	assert.True(t, changed)
	assert.False(t, repo.orgs["shelter-x"].IsVerified)
	assert.False(t, *repo.patches[0].IsVerified)
}

func TestOrganisationLocations(t *testing.T) {
	uc := New(log.NewNop(), newFakeRepo(testOrg()))

	locs, err := uc.OrganisationLocations(context.Background(), "shelter-x")
	require.NoError(t, err)
	assert.Equal(t, []string{"leeds"}, locs)

	_, err = uc.OrganisationLocations(context.Background(), "ghost")
	assert.ErrorIs(t, err, authz.ErrOrganisationNotFound)
}

func TestCreateRequiresKeyAndName(t *testing.T) {
	uc := New(log.NewNop(), newFakeRepo())
	_, err := uc.Create(context.Background(), model.Scope{}, organisation.CreateInput{Name: "x"})
	assert.ErrorIs(t, err, organisation.ErrFieldRequired)
}
