package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"directory-api/internal/directory"
	"directory-api/internal/directory/repository"
	"directory-api/internal/model"
	pkgErrors "directory-api/pkg/errors"
)

// mapErr turns repository sentinels into domain errors and logs the rest.
func (uc *usecase) mapErr(ctx context.Context, op string, err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return directory.ErrNotFound
	}
	uc.l.Errorf(ctx, "internal.directory.usecase.%s: %v", op, err)
	return err
}

type field struct {
	name  string
	value string
}

// required reports every blank field at once.
func required(fields ...field) error {
	vc := pkgErrors.NewValidationErrorCollector()
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			vc.Add(pkgErrors.NewValidationError(http.StatusBadRequest, f.name, "is required"))
		}
	}
	if !vc.HasError() {
		return nil
	}
	return fmt.Errorf("%w: %w", directory.ErrFieldRequired, vc)
}

func (uc *usecase) DetailService(ctx context.Context, id string) (model.Service, error) {
	s, err := uc.repo.DetailService(ctx, id)
	if err != nil {
		return model.Service{}, uc.mapErr(ctx, "DetailService", err)
	}
	return s, nil
}

func (uc *usecase) CreateService(ctx context.Context, sc model.Scope, ip directory.CreateServiceInput) (model.Service, error) {
	if err := required(field{"ServiceProviderKey", ip.ServiceProviderKey}, field{"Name", ip.Name}); err != nil {
		return model.Service{}, err
	}
	s, err := uc.repo.CreateService(ctx, repository.CreateServiceOptions{
		ProviderKey: ip.ServiceProviderKey,
		Name:        ip.Name,
		IsPublished: ip.IsPublished,
		IsVerified:  ip.IsVerified,
	})
	if err != nil {
		return model.Service{}, uc.mapErr(ctx, "CreateService", err)
	}
	uc.l.Infof(ctx, "internal.directory.usecase.CreateService: service %s created by %s", s.ID, sc.UserID)
	return s, nil
}

func (uc *usecase) DeleteService(ctx context.Context, sc model.Scope, id string) error {
	if err := uc.repo.DeleteService(ctx, id); err != nil {
		return uc.mapErr(ctx, "DeleteService", err)
	}
	uc.l.Infof(ctx, "internal.directory.usecase.DeleteService: service %s deleted by %s", id, sc.UserID)
	return nil
}

func (uc *usecase) DetailGroupedService(ctx context.Context, id string) (model.GroupedService, error) {
	s, err := uc.repo.DetailGroupedService(ctx, id)
	if err != nil {
		return model.GroupedService{}, uc.mapErr(ctx, "DetailGroupedService", err)
	}
	return s, nil
}

func (uc *usecase) CreateGroupedService(ctx context.Context, sc model.Scope, ip directory.CreateGroupedServiceInput) (model.GroupedService, error) {
	if err := required(field{"ProviderId", ip.ProviderId}, field{"Name", ip.Name}); err != nil {
		return model.GroupedService{}, err
	}
	s, err := uc.repo.CreateGroupedService(ctx, repository.CreateServiceOptions{
		ProviderKey: ip.ProviderId,
		Name:        ip.Name,
		IsPublished: ip.IsPublished,
		IsVerified:  ip.IsVerified,
	})
	if err != nil {
		return model.GroupedService{}, uc.mapErr(ctx, "CreateGroupedService", err)
	}
	uc.l.Infof(ctx, "internal.directory.usecase.CreateGroupedService: grouped service %s created by %s", s.ID, sc.UserID)
	return s, nil
}

func (uc *usecase) DeleteGroupedService(ctx context.Context, sc model.Scope, id string) error {
	if err := uc.repo.DeleteGroupedService(ctx, id); err != nil {
		return uc.mapErr(ctx, "DeleteGroupedService", err)
	}
	uc.l.Infof(ctx, "internal.directory.usecase.DeleteGroupedService: grouped service %s deleted by %s", id, sc.UserID)
	return nil
}

func (uc *usecase) DetailAccommodation(ctx context.Context, id string) (model.Accommodation, error) {
	a, err := uc.repo.DetailAccommodation(ctx, id)
	if err != nil {
		return model.Accommodation{}, uc.mapErr(ctx, "DetailAccommodation", err)
	}
	return a, nil
}

func (uc *usecase) CreateAccommodation(ctx context.Context, sc model.Scope, ip directory.CreateAccommodationInput) (model.Accommodation, error) {
	if err := required(field{"GeneralInfo.Name", ip.GeneralInfo.Name}, field{"GeneralInfo.ServiceProviderId", ip.GeneralInfo.ServiceProviderId}); err != nil {
		return model.Accommodation{}, err
	}
	a, err := uc.repo.CreateAccommodation(ctx, repository.CreateAccommodationOptions{
		Name:              ip.GeneralInfo.Name,
		ServiceProviderId: ip.GeneralInfo.ServiceProviderId,
	})
	if err != nil {
		return model.Accommodation{}, uc.mapErr(ctx, "CreateAccommodation", err)
	}
	uc.l.Infof(ctx, "internal.directory.usecase.CreateAccommodation: accommodation %s created by %s", a.ID, sc.UserID)
	return a, nil
}

func (uc *usecase) DeleteAccommodation(ctx context.Context, sc model.Scope, id string) error {
	if err := uc.repo.DeleteAccommodation(ctx, id); err != nil {
		return uc.mapErr(ctx, "DeleteAccommodation", err)
	}
	uc.l.Infof(ctx, "internal.directory.usecase.DeleteAccommodation: accommodation %s deleted by %s", id, sc.UserID)
	return nil
}
