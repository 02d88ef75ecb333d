package usecase

import (
	"context"

	"directory-api/internal/directory"
	"directory-api/internal/directory/repository"
	"directory-api/internal/model"
)

func (uc *usecase) DetailFAQ(ctx context.Context, id string) (model.FAQ, error) {
	f, err := uc.repo.DetailFAQ(ctx, id)
	if err != nil {
		return model.FAQ{}, uc.mapErr(ctx, "DetailFAQ", err)
	}
	return f, nil
}

func (uc *usecase) ListFAQs(ctx context.Context, locations []string) ([]model.FAQ, error) {
	faqs, err := uc.repo.ListFAQs(ctx, locations)
	if err != nil {
		return nil, uc.mapErr(ctx, "ListFAQs", err)
	}
	return faqs, nil
}

func (uc *usecase) CreateFAQ(ctx context.Context, sc model.Scope, ip directory.CreateFAQInput) (model.FAQ, error) {
	if err := required(field{"LocationKey", ip.LocationKey}, field{"Title", ip.Title}); err != nil {
		return model.FAQ{}, err
	}
	f, err := uc.repo.CreateFAQ(ctx, repository.CreateFAQOptions{
		LocationKey: ip.LocationKey,
		Title:       ip.Title,
		Body:        ip.Body,
	})
	if err != nil {
		return model.FAQ{}, uc.mapErr(ctx, "CreateFAQ", err)
	}
	uc.l.Infof(ctx, "internal.directory.usecase.CreateFAQ: faq %s created by %s", f.ID, sc.UserID)
	return f, nil
}

func (uc *usecase) DeleteFAQ(ctx context.Context, sc model.Scope, id string) error {
	if err := uc.repo.DeleteFAQ(ctx, id); err != nil {
		return uc.mapErr(ctx, "DeleteFAQ", err)
	}
	uc.l.Infof(ctx, "internal.directory.usecase.DeleteFAQ: faq %s deleted by %s", id, sc.UserID)
	return nil
}

func (uc *usecase) DetailBanner(ctx context.Context, id string) (model.Banner, error) {
	b, err := uc.repo.DetailBanner(ctx, id)
	if err != nil {
		return model.Banner{}, uc.mapErr(ctx, "DetailBanner", err)
	}
	return b, nil
}

func (uc *usecase) ListBanners(ctx context.Context, locations []string) ([]model.Banner, error) {
	banners, err := uc.repo.ListBanners(ctx, locations)
	if err != nil {
		return nil, uc.mapErr(ctx, "ListBanners", err)
	}
	return banners, nil
}

func (uc *usecase) CreateBanner(ctx context.Context, sc model.Scope, ip directory.CreateBannerInput) (model.Banner, error) {
	if err := required(field{"LocationSlug", ip.LocationSlug}, field{"Title", ip.Title}); err != nil {
		return model.Banner{}, err
	}
	b, err := uc.repo.CreateBanner(ctx, repository.CreateBannerOptions{
		LocationSlug: ip.LocationSlug,
		Title:        ip.Title,
		From:         ip.StartDate,
		Until:        ip.EndDate,
		IsActive:     ip.IsActive,
	})
	if err != nil {
		return model.Banner{}, uc.mapErr(ctx, "CreateBanner", err)
	}
	uc.l.Infof(ctx, "internal.directory.usecase.CreateBanner: banner %s created by %s", b.ID, sc.UserID)
	return b, nil
}

func (uc *usecase) DeleteBanner(ctx context.Context, sc model.Scope, id string) error {
	if err := uc.repo.DeleteBanner(ctx, id); err != nil {
		return uc.mapErr(ctx, "DeleteBanner", err)
	}
	uc.l.Infof(ctx, "internal.directory.usecase.DeleteBanner: banner %s deleted by %s", id, sc.UserID)
	return nil
}

func (uc *usecase) DetailSwepBanner(ctx context.Context, id string) (model.SwepBanner, error) {
	b, err := uc.repo.DetailSwepBanner(ctx, id)
	if err != nil {
		return model.SwepBanner{}, uc.mapErr(ctx, "DetailSwepBanner", err)
	}
	return b, nil
}

func (uc *usecase) ListSwepBanners(ctx context.Context, locations []string) ([]model.SwepBanner, error) {
	banners, err := uc.repo.ListSwepBanners(ctx, locations)
	if err != nil {
		return nil, uc.mapErr(ctx, "ListSwepBanners", err)
	}
	return banners, nil
}

func (uc *usecase) CreateSwepBanner(ctx context.Context, sc model.Scope, ip directory.CreateSwepBannerInput) (model.SwepBanner, error) {
	if err := required(field{"LocationSlug", ip.LocationSlug}, field{"Title", ip.Title}); err != nil {
		return model.SwepBanner{}, err
	}
	b, err := uc.repo.CreateSwepBanner(ctx, repository.CreateBannerOptions{
		LocationSlug: ip.LocationSlug,
		Title:        ip.Title,
		From:         ip.SwepActiveFrom,
		Until:        ip.SwepActiveUntil,
		IsActive:     ip.IsActive,
	})
	if err != nil {
		return model.SwepBanner{}, uc.mapErr(ctx, "CreateSwepBanner", err)
	}
	uc.l.Infof(ctx, "internal.directory.usecase.CreateSwepBanner: swep banner %s created by %s", b.ID, sc.UserID)
	return b, nil
}

func (uc *usecase) DeleteSwepBanner(ctx context.Context, sc model.Scope, id string) error {
	if err := uc.repo.DeleteSwepBanner(ctx, id); err != nil {
		return uc.mapErr(ctx, "DeleteSwepBanner", err)
	}
	uc.l.Infof(ctx, "internal.directory.usecase.DeleteSwepBanner: swep banner %s deleted by %s", id, sc.UserID)
	return nil
}

func (uc *usecase) DetailResource(ctx context.Context, id string) (model.Resource, error) {
	res, err := uc.repo.DetailResource(ctx, id)
	if err != nil {
		return model.Resource{}, uc.mapErr(ctx, "DetailResource", err)
	}
	return res, nil
}

func (uc *usecase) CreateResource(ctx context.Context, sc model.Scope, ip directory.CreateResourceInput) (model.Resource, error) {
	if err := required(field{"Key", ip.Key}, field{"Name", ip.Name}); err != nil {
		return model.Resource{}, err
	}
	res, err := uc.repo.CreateResource(ctx, repository.CreateResourceOptions{
		Key:  ip.Key,
		Name: ip.Name,
		Body: ip.Body,
	})
	if err != nil {
		return model.Resource{}, uc.mapErr(ctx, "CreateResource", err)
	}
	uc.l.Infof(ctx, "internal.directory.usecase.CreateResource: resource %s created by %s", res.ID, sc.UserID)
	return res, nil
}

func (uc *usecase) DeleteResource(ctx context.Context, sc model.Scope, id string) error {
	if err := uc.repo.DeleteResource(ctx, id); err != nil {
		return uc.mapErr(ctx, "DeleteResource", err)
	}
	uc.l.Infof(ctx, "internal.directory.usecase.DeleteResource: resource %s deleted by %s", id, sc.UserID)
	return nil
}
