package postgres

import (
	"context"
	"time"

	"directory-api/internal/directory/repository"
	"directory-api/internal/model"
	postgresPkg "directory-api/pkg/postgre"

	"github.com/lib/pq"
)

func (r *implRepository) DetailFAQ(ctx context.Context, id string) (model.FAQ, error) {
	return detail(ctx, r, "DetailFAQ", queryDetailFAQ, id, scanFAQ)
}

func (r *implRepository) ListFAQs(ctx context.Context, locations []string) ([]model.FAQ, error) {
	return list(ctx, r, "ListFAQs", queryListFAQs, scanFAQ, pq.Array(locations))
}

func (r *implRepository) CreateFAQ(ctx context.Context, opts repository.CreateFAQOptions) (model.FAQ, error) {
	return insert(ctx, r, "CreateFAQ", queryInsertFAQ, scanFAQ,
		postgresPkg.NewUUID(), opts.LocationKey, opts.Title, opts.Body)
}

func (r *implRepository) DeleteFAQ(ctx context.Context, id string) error {
	return r.delete(ctx, "DeleteFAQ", queryDeleteFAQ, id)
}

func (r *implRepository) DetailBanner(ctx context.Context, id string) (model.Banner, error) {
	return detail(ctx, r, "DetailBanner", queryDetailBanner, id, scanBanner)
}

func (r *implRepository) ListBanners(ctx context.Context, locations []string) ([]model.Banner, error) {
	return list(ctx, r, "ListBanners", queryListBanners, scanBanner, pq.Array(locations))
}

func (r *implRepository) CreateBanner(ctx context.Context, opts repository.CreateBannerOptions) (model.Banner, error) {
	return insert(ctx, r, "CreateBanner", queryInsertBanner, scanBanner,
		postgresPkg.NewUUID(), opts.LocationSlug, opts.Title, nullTime(opts.From), nullTime(opts.Until), opts.IsActive)
}

func (r *implRepository) DeleteBanner(ctx context.Context, id string) error {
	return r.delete(ctx, "DeleteBanner", queryDeleteBanner, id)
}

func (r *implRepository) ListBannersDue(ctx context.Context, today, yesterday time.Time) ([]model.Banner, error) {
	return list(ctx, r, "ListBannersDue", queryListBannersDue, scanBanner,
		today.Format(time.DateOnly), yesterday.Format(time.DateOnly))
}

func (r *implRepository) SetBannerActive(ctx context.Context, id string, active bool) (bool, error) {
	return r.exec(ctx, "SetBannerActive", querySetBannerActive, id, active)
}

func (r *implRepository) DetailSwepBanner(ctx context.Context, id string) (model.SwepBanner, error) {
	return detail(ctx, r, "DetailSwepBanner", queryDetailSwepBanner, id, scanSwepBanner)
}

func (r *implRepository) ListSwepBanners(ctx context.Context, locations []string) ([]model.SwepBanner, error) {
	return list(ctx, r, "ListSwepBanners", queryListSwepBanners, scanSwepBanner, pq.Array(locations))
}

func (r *implRepository) CreateSwepBanner(ctx context.Context, opts repository.CreateBannerOptions) (model.SwepBanner, error) {
	return insert(ctx, r, "CreateSwepBanner", queryInsertSwepBanner, scanSwepBanner,
		postgresPkg.NewUUID(), opts.LocationSlug, opts.Title, nullTime(opts.From), nullTime(opts.Until), opts.IsActive)
}

func (r *implRepository) DeleteSwepBanner(ctx context.Context, id string) error {
	return r.delete(ctx, "DeleteSwepBanner", queryDeleteSwepBanner, id)
}

func (r *implRepository) ListSwepBannersDue(ctx context.Context, today, yesterday time.Time) ([]model.SwepBanner, error) {
	return list(ctx, r, "ListSwepBannersDue", queryListSwepBannersDue, scanSwepBanner,
		today.Format(time.DateOnly), yesterday.Format(time.DateOnly))
}

func (r *implRepository) SetSwepBannerActive(ctx context.Context, id string, active bool) (bool, error) {
	return r.exec(ctx, "SetSwepBannerActive", querySetSwepBannerActive, id, active)
}

func (r *implRepository) DetailResource(ctx context.Context, id string) (model.Resource, error) {
	return detail(ctx, r, "DetailResource", queryDetailResource, id, scanResource)
}

func (r *implRepository) CreateResource(ctx context.Context, opts repository.CreateResourceOptions) (model.Resource, error) {
	return insert(ctx, r, "CreateResource", queryInsertResource, scanResource,
		postgresPkg.NewUUID(), opts.Key, opts.Name, opts.Body)
}

func (r *implRepository) DeleteResource(ctx context.Context, id string) error {
	return r.delete(ctx, "DeleteResource", queryDeleteResource, id)
}
