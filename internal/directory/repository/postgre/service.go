package postgres

import (
	"context"

	"directory-api/internal/directory/repository"
	"directory-api/internal/model"
	postgresPkg "directory-api/pkg/postgre"
)

func (r *implRepository) DetailService(ctx context.Context, id string) (model.Service, error) {
	return detail(ctx, r, "DetailService", queryDetailService, id, scanService)
}

func (r *implRepository) CreateService(ctx context.Context, opts repository.CreateServiceOptions) (model.Service, error) {
	return insert(ctx, r, "CreateService", queryInsertService, scanService,
		postgresPkg.NewUUID(), opts.ProviderKey, opts.Name, opts.IsPublished, opts.IsVerified)
}

func (r *implRepository) DeleteService(ctx context.Context, id string) error {
	return r.delete(ctx, "DeleteService", queryDeleteService, id)
}

func (r *implRepository) DetailGroupedService(ctx context.Context, id string) (model.GroupedService, error) {
	return detail(ctx, r, "DetailGroupedService", queryDetailGroupedService, id, scanGroupedService)
}

func (r *implRepository) CreateGroupedService(ctx context.Context, opts repository.CreateServiceOptions) (model.GroupedService, error) {
	return insert(ctx, r, "CreateGroupedService", queryInsertGroupedService, scanGroupedService,
		postgresPkg.NewUUID(), opts.ProviderKey, opts.Name, opts.IsPublished, opts.IsVerified)
}

func (r *implRepository) DeleteGroupedService(ctx context.Context, id string) error {
	return r.delete(ctx, "DeleteGroupedService", queryDeleteGroupedService, id)
}

func (r *implRepository) DetailAccommodation(ctx context.Context, id string) (model.Accommodation, error) {
	return detail(ctx, r, "DetailAccommodation", queryDetailAccommodation, id, scanAccommodation)
}

func (r *implRepository) CreateAccommodation(ctx context.Context, opts repository.CreateAccommodationOptions) (model.Accommodation, error) {
	return insert(ctx, r, "CreateAccommodation", queryInsertAccommodation, scanAccommodation,
		postgresPkg.NewUUID(), opts.Name, opts.ServiceProviderId)
}

func (r *implRepository) DeleteAccommodation(ctx context.Context, id string) error {
	return r.delete(ctx, "DeleteAccommodation", queryDeleteAccommodation, id)
}
