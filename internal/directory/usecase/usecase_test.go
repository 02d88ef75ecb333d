package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"directory-api/internal/directory"
	"directory-api/internal/directory/repository"
	"directory-api/internal/model"
	pkgErrors "directory-api/pkg/errors"
	"directory-api/pkg/log"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRepo implements the banner and service paths; other methods panic
// through the embedded nil interface.
type fakeRepo struct {
	repository.Repository

	banners     []model.Banner
	swepBanners []model.SwepBanner
	setCalls    map[string]bool
	setErr      map[string]error
	services    map[string]model.Service
}

func (f *fakeRepo) ListBannersDue(_ context.Context, _, _ time.Time) ([]model.Banner, error) {
	return f.banners, nil
}

func (f *fakeRepo) ListSwepBannersDue(_ context.Context, _, _ time.Time) ([]model.SwepBanner, error) {
	return f.swepBanners, nil
}

func (f *fakeRepo) SetBannerActive(_ context.Context, id string, active bool) (bool, error) {
	if err := f.setErr[id]; err != nil {
		return false, err
	}
	if f.setCalls == nil {
		f.setCalls = map[string]bool{}
	}
	f.setCalls[id] = active
	return true, nil
}

func (f *fakeRepo) SetSwepBannerActive(ctx context.Context, id string, active bool) (bool, error) {
	return f.SetBannerActive(ctx, id, active)
}

func (f *fakeRepo) DetailService(_ context.Context, id string) (model.Service, error) {
	s, ok := f.services[id]
	if !ok {
		return model.Service{}, repository.ErrNotFound
	}
	return s, nil
}

func (f *fakeRepo) CreateService(_ context.Context, opts repository.CreateServiceOptions) (model.Service, error) {
	return model.Service{ID: "s-new", ServiceProviderKey: opts.ProviderKey, Name: opts.Name}, nil
}

func at(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 9, 30, 0, 0, time.UTC)
	return &t
}

func TestActivateBanners(t *testing.T) {
	now := time.Date(2026, 3, 10, 0, 5, 0, 0, time.UTC)
	repo := &fakeRepo{
		banners: []model.Banner{
			{ID: "starts-today", StartDate: at(2026, 3, 10)},
			{ID: "already-active", StartDate: at(2026, 3, 10), IsActive: true},
			{ID: "ended-yesterday", EndDate: at(2026, 3, 9), IsActive: true},
			{ID: "ended-and-off", EndDate: at(2026, 3, 9)},
			{ID: "unrelated", StartDate: at(2026, 3, 1)},
		},
	}

	stats, err := New(log.NewNop(), repo).ActivateBanners(context.Background(), now)
	require.NoError(t, err)
	assert.Equal(t, 5, stats.Checked)
	assert.Equal(t, 2, stats.Transitioned)
	assert.Equal(t, map[string]bool{"starts-today": true, "ended-yesterday": false}, repo.setCalls)
	assert.Empty(t, stats.Errors)
}

func TestActivateSwepBannersIsolatesFailures(t *testing.T) {
	now := time.Date(2026, 12, 1, 0, 0, 0, 0, time.UTC)
	repo := &fakeRepo{
		swepBanners: []model.SwepBanner{
			{ID: "broken", SwepActiveFrom: at(2026, 12, 1)},
			{ID: "ok", SwepActiveFrom: at(2026, 12, 1)},
		},
		setErr: map[string]error{"broken": errors.New("connection reset")},
	}

	stats, err := New(log.NewNop(), repo).ActivateSwepBanners(context.Background(), now)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Transitioned)
	require.Len(t, stats.Errors, 1)
	assert.Contains(t, stats.Errors[0], "broken")
	assert.True(t, repo.setCalls["ok"])
}

func TestActivateBannersRerunIsNoop(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	repo := &fakeRepo{
		banners: []model.Banner{
			{ID: "a", StartDate: at(2026, 3, 10), IsActive: true},
			{ID: "b", EndDate: at(2026, 3, 9)},
		},
	}

	stats, err := New(log.NewNop(), repo).ActivateBanners(context.Background(), now)
	require.NoError(t, err)
	assert.Zero(t, stats.Transitioned)
	assert.Nil(t, repo.setCalls)
}

func TestServiceErrors(t *testing.T) {
	uc := New(log.NewNop(), &fakeRepo{services: map[string]model.Service{}})

	_, err := uc.DetailService(context.Background(), "missing")
	assert.ErrorIs(t, err, directory.ErrNotFound)

	_, err = uc.CreateService(context.Background(), model.Scope{}, directory.CreateServiceInput{Name: "Soup run"})
	assert.ErrorIs(t, err, directory.ErrFieldRequired)
	var vc *pkgErrors.ValidationErrorCollector
	require.ErrorAs(t, err, &vc)
	require.Len(t, vc.Errors(), 1)
	assert.Equal(t, "ServiceProviderKey", vc.Errors()[0].Field)

	_, err = uc.CreateFAQ(context.Background(), model.Scope{}, directory.CreateFAQInput{Body: "..."})
	require.ErrorAs(t, err, &vc)
	assert.Len(t, vc.Errors(), 2)

	s, err := uc.CreateService(context.Background(), model.Scope{}, directory.CreateServiceInput{
		ServiceProviderKey: "shelter-x",
		Name:               "Soup run",
	})
	require.NoError(t, err)
	assert.Equal(t, "shelter-x", s.ServiceProviderKey)
}
