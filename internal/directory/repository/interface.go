package repository

import (
	"context"
	"time"

	"directory-api/internal/model"
)

//go:generate mockery --name Repository
type Repository interface {
	DetailService(ctx context.Context, id string) (model.Service, error)
	CreateService(ctx context.Context, opts CreateServiceOptions) (model.Service, error)
	DeleteService(ctx context.Context, id string) error

	DetailGroupedService(ctx context.Context, id string) (model.GroupedService, error)
	CreateGroupedService(ctx context.Context, opts CreateServiceOptions) (model.GroupedService, error)
	DeleteGroupedService(ctx context.Context, id string) error

	DetailAccommodation(ctx context.Context, id string) (model.Accommodation, error)
	CreateAccommodation(ctx context.Context, opts CreateAccommodationOptions) (model.Accommodation, error)
	DeleteAccommodation(ctx context.Context, id string) error

	DetailFAQ(ctx context.Context, id string) (model.FAQ, error)
	ListFAQs(ctx context.Context, locations []string) ([]model.FAQ, error)
	CreateFAQ(ctx context.Context, opts CreateFAQOptions) (model.FAQ, error)
	DeleteFAQ(ctx context.Context, id string) error

	DetailBanner(ctx context.Context, id string) (model.Banner, error)
	ListBanners(ctx context.Context, locations []string) ([]model.Banner, error)
	CreateBanner(ctx context.Context, opts CreateBannerOptions) (model.Banner, error)
	DeleteBanner(ctx context.Context, id string) error
	// ListBannersDue returns banners starting on today or ending on yesterday.
	ListBannersDue(ctx context.Context, today, yesterday time.Time) ([]model.Banner, error)
	// SetBannerActive reports false when the row already had that state.
	SetBannerActive(ctx context.Context, id string, active bool) (bool, error)

	DetailSwepBanner(ctx context.Context, id string) (model.SwepBanner, error)
	ListSwepBanners(ctx context.Context, locations []string) ([]model.SwepBanner, error)
	CreateSwepBanner(ctx context.Context, opts CreateBannerOptions) (model.SwepBanner, error)
	DeleteSwepBanner(ctx context.Context, id string) error
	ListSwepBannersDue(ctx context.Context, today, yesterday time.Time) ([]model.SwepBanner, error)
	SetSwepBannerActive(ctx context.Context, id string, active bool) (bool, error)

	DetailResource(ctx context.Context, id string) (model.Resource, error)
	CreateResource(ctx context.Context, opts CreateResourceOptions) (model.Resource, error)
	DeleteResource(ctx context.Context, id string) error
}
