package http

import (
	"directory-api/internal/authz"
	"directory-api/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (h *Handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	services := r.Group("/services")
	{
		guard := mw.Guard(authz.ResourceService, h.serviceResolver())
		services.POST("", guard, create(h, h.uc.CreateService))
		services.GET("/:id", guard, detail(h, h.uc.DetailService))
		services.DELETE("/:id", guard, remove(h, h.uc.DeleteService))
	}

	grouped := r.Group("/grouped-services")
	{
		guard := mw.Guard(authz.ResourceService, h.groupedServiceResolver())
		grouped.POST("", guard, create(h, h.uc.CreateGroupedService))
		grouped.GET("/:id", guard, detail(h, h.uc.DetailGroupedService))
		grouped.DELETE("/:id", guard, remove(h, h.uc.DeleteGroupedService))
	}

	accommodations := r.Group("/accommodations")
	{
		guard := mw.Guard(authz.ResourceAccommodation, h.accommodationResolver())
		accommodations.POST("", guard, create(h, h.uc.CreateAccommodation))
		accommodations.GET("/:id", guard, detail(h, h.uc.DetailAccommodation))
		accommodations.DELETE("/:id", guard, remove(h, h.uc.DeleteAccommodation))
	}

	faqs := r.Group("/faqs")
	{
		guard := mw.Guard(authz.ResourceFAQ, h.faqResolver())
		faqs.GET("", mw.GuardLocations(authz.ResourceFAQLocations), list(h, h.uc.ListFAQs))
		faqs.POST("", guard, create(h, h.uc.CreateFAQ))
		faqs.GET("/:id", guard, detail(h, h.uc.DetailFAQ))
		faqs.DELETE("/:id", guard, remove(h, h.uc.DeleteFAQ))
	}

	banners := r.Group("/banners")
	{
		guard := mw.Guard(authz.ResourceBanner, h.bannerResolver())
		banners.GET("", mw.GuardLocations(authz.ResourceBannerLocations), list(h, h.uc.ListBanners))
		banners.POST("", guard, create(h, h.uc.CreateBanner))
		banners.GET("/:id", guard, detail(h, h.uc.DetailBanner))
		banners.DELETE("/:id", guard, remove(h, h.uc.DeleteBanner))
	}

	swep := r.Group("/swep-banners")
	{
		guard := mw.Guard(authz.ResourceSwepBanner, h.swepBannerResolver())
		swep.GET("", mw.GuardLocations(authz.ResourceSwepBannerLocations), list(h, h.uc.ListSwepBanners))
		swep.POST("", guard, create(h, h.uc.CreateSwepBanner))
		swep.GET("/:id", guard, detail(h, h.uc.DetailSwepBanner))
		swep.DELETE("/:id", guard, remove(h, h.uc.DeleteSwepBanner))
	}

	resources := r.Group("/resources")
	{
		guard := mw.Guard(authz.ResourceCMS, h.resourceResolver())
		resources.POST("", guard, create(h, h.uc.CreateResource))
		resources.GET("/:id", guard, detail(h, h.uc.DetailResource))
		resources.DELETE("/:id", guard, remove(h, h.uc.DeleteResource))
	}
}
