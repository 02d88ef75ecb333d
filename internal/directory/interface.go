package directory

import (
	"context"
	"time"

	"directory-api/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	DetailService(ctx context.Context, id string) (model.Service, error)
	CreateService(ctx context.Context, sc model.Scope, ip CreateServiceInput) (model.Service, error)
	DeleteService(ctx context.Context, sc model.Scope, id string) error

	DetailGroupedService(ctx context.Context, id string) (model.GroupedService, error)
	CreateGroupedService(ctx context.Context, sc model.Scope, ip CreateGroupedServiceInput) (model.GroupedService, error)
	DeleteGroupedService(ctx context.Context, sc model.Scope, id string) error

	DetailAccommodation(ctx context.Context, id string) (model.Accommodation, error)
	CreateAccommodation(ctx context.Context, sc model.Scope, ip CreateAccommodationInput) (model.Accommodation, error)
	DeleteAccommodation(ctx context.Context, sc model.Scope, id string) error

	DetailFAQ(ctx context.Context, id string) (model.FAQ, error)
	ListFAQs(ctx context.Context, locations []string) ([]model.FAQ, error)
	CreateFAQ(ctx context.Context, sc model.Scope, ip CreateFAQInput) (model.FAQ, error)
	DeleteFAQ(ctx context.Context, sc model.Scope, id string) error

	DetailBanner(ctx context.Context, id string) (model.Banner, error)
	ListBanners(ctx context.Context, locations []string) ([]model.Banner, error)
	CreateBanner(ctx context.Context, sc model.Scope, ip CreateBannerInput) (model.Banner, error)
	DeleteBanner(ctx context.Context, sc model.Scope, id string) error

	DetailSwepBanner(ctx context.Context, id string) (model.SwepBanner, error)
	ListSwepBanners(ctx context.Context, locations []string) ([]model.SwepBanner, error)
	CreateSwepBanner(ctx context.Context, sc model.Scope, ip CreateSwepBannerInput) (model.SwepBanner, error)
	DeleteSwepBanner(ctx context.Context, sc model.Scope, id string) error

	DetailResource(ctx context.Context, id string) (model.Resource, error)
	CreateResource(ctx context.Context, sc model.Scope, ip CreateResourceInput) (model.Resource, error)
	DeleteResource(ctx context.Context, sc model.Scope, id string) error

	// ActivateBanners and ActivateSwepBanners bring is_active in line with the
	// schedule for day. Rows already in the right state are not written.
	ActivateBanners(ctx context.Context, day time.Time) (model.JobStats, error)
	ActivateSwepBanners(ctx context.Context, day time.Time) (model.JobStats, error)
}
