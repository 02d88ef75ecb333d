package http

import (
	"context"
	"errors"
	"fmt"

	"directory-api/internal/authz"
	"directory-api/internal/directory"
	"directory-api/internal/middleware"
	"directory-api/internal/model"
	"directory-api/internal/organisation"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

// owned scopes a record through the organisation that owns it. A record whose
// organisation is gone cannot be authorised and reads as missing.
func (h *Handler) owned(ctx context.Context, id, ownerKey string) (authz.Target, error) {
	o, err := h.orgs.GetByKey(ctx, ownerKey)
	if err != nil {
		if errors.Is(err, organisation.ErrNotFound) {
			return authz.Target{}, authz.ErrOrganisationNotFound
		}
		return authz.Target{}, err
	}
	return authz.OwnedTarget(id, o), nil
}

func lookupErr(err error) error {
	if errors.Is(err, directory.ErrNotFound) {
		return middleware.ErrTargetNotFound
	}
	return err
}

func bindBody[T any](c *gin.Context) (T, error) {
	var v T
	if err := c.ShouldBindBodyWith(&v, binding.JSON); err != nil {
		return v, fmt.Errorf("%w: %v", middleware.ErrInvalidBody, err)
	}
	return v, nil
}

func (h *Handler) serviceResolver() middleware.Resolver {
	return middleware.Resolver{
		Load: func(ctx context.Context, id string) (authz.Target, any, error) {
			s, err := h.uc.DetailService(ctx, id)
			if err != nil {
				return authz.Target{}, nil, lookupErr(err)
			}
			t, err := h.owned(ctx, s.ID, s.ServiceProviderKey)
			return t, s, err
		},
		FromBody: func(c *gin.Context) (authz.Target, error) {
			ip, err := bindBody[directory.CreateServiceInput](c)
			if err != nil {
				return authz.Target{}, err
			}
			return h.owned(c.Request.Context(), "", ip.ServiceProviderKey)
		},
	}
}

func (h *Handler) groupedServiceResolver() middleware.Resolver {
	return middleware.Resolver{
		Load: func(ctx context.Context, id string) (authz.Target, any, error) {
			s, err := h.uc.DetailGroupedService(ctx, id)
			if err != nil {
				return authz.Target{}, nil, lookupErr(err)
			}
			t, err := h.owned(ctx, s.ID, s.ProviderId)
			return t, s, err
		},
		FromBody: func(c *gin.Context) (authz.Target, error) {
			ip, err := bindBody[directory.CreateGroupedServiceInput](c)
			if err != nil {
				return authz.Target{}, err
			}
			return h.owned(c.Request.Context(), "", ip.ProviderId)
		},
	}
}

func (h *Handler) accommodationResolver() middleware.Resolver {
	return middleware.Resolver{
		Load: func(ctx context.Context, id string) (authz.Target, any, error) {
			a, err := h.uc.DetailAccommodation(ctx, id)
			if err != nil {
				return authz.Target{}, nil, lookupErr(err)
			}
			t, err := h.owned(ctx, a.ID, a.GeneralInfo.ServiceProviderId)
			return t, a, err
		},
		FromBody: func(c *gin.Context) (authz.Target, error) {
			ip, err := bindBody[directory.CreateAccommodationInput](c)
			if err != nil {
				return authz.Target{}, err
			}
			return h.owned(c.Request.Context(), "", ip.GeneralInfo.ServiceProviderId)
		},
	}
}

func (h *Handler) faqResolver() middleware.Resolver {
	return middleware.Resolver{
		Load: func(ctx context.Context, id string) (authz.Target, any, error) {
			f, err := h.uc.DetailFAQ(ctx, id)
			if err != nil {
				return authz.Target{}, nil, lookupErr(err)
			}
			return authz.Target{ID: f.ID, Locations: []string{f.LocationKey}}, f, nil
		},
		FromBody: func(c *gin.Context) (authz.Target, error) {
			ip, err := bindBody[directory.CreateFAQInput](c)
			if err != nil {
				return authz.Target{}, err
			}
			return authz.Target{Locations: []string{ip.LocationKey}}, nil
		},
	}
}

func (h *Handler) bannerResolver() middleware.Resolver {
	return middleware.Resolver{
		Load: func(ctx context.Context, id string) (authz.Target, any, error) {
			b, err := h.uc.DetailBanner(ctx, id)
			if err != nil {
				return authz.Target{}, nil, lookupErr(err)
			}
			return authz.Target{ID: b.ID, Locations: b.Locations()}, b, nil
		},
		FromBody: func(c *gin.Context) (authz.Target, error) {
			ip, err := bindBody[directory.CreateBannerInput](c)
			if err != nil {
				return authz.Target{}, err
			}
			return authz.Target{Locations: model.SplitLocationSlug(ip.LocationSlug)}, nil
		},
	}
}

func (h *Handler) swepBannerResolver() middleware.Resolver {
	return middleware.Resolver{
		Load: func(ctx context.Context, id string) (authz.Target, any, error) {
			b, err := h.uc.DetailSwepBanner(ctx, id)
			if err != nil {
				return authz.Target{}, nil, lookupErr(err)
			}
			return authz.Target{ID: b.ID, Locations: b.Locations()}, b, nil
		},
		FromBody: func(c *gin.Context) (authz.Target, error) {
			ip, err := bindBody[directory.CreateSwepBannerInput](c)
			if err != nil {
				return authz.Target{}, err
			}
			return authz.Target{Locations: model.SplitLocationSlug(ip.LocationSlug)}, nil
		},
	}
}

// resourceResolver only proves the record exists; resources carry no location.
func (h *Handler) resourceResolver() middleware.Resolver {
	return middleware.Resolver{
		Load: func(ctx context.Context, id string) (authz.Target, any, error) {
			res, err := h.uc.DetailResource(ctx, id)
			if err != nil {
				return authz.Target{}, nil, lookupErr(err)
			}
			return authz.Target{ID: res.ID}, res, nil
		},
	}
}
