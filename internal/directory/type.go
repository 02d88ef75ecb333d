package directory

import "time"

type CreateServiceInput struct {
	ServiceProviderKey string `json:"ServiceProviderKey"`
	Name               string `json:"Name"`
	IsPublished        bool   `json:"IsPublished"`
	IsVerified         bool   `json:"IsVerified"`
}

type CreateGroupedServiceInput struct {
	ProviderId  string `json:"ProviderId"`
	Name        string `json:"Name"`
	IsPublished bool   `json:"IsPublished"`
	IsVerified  bool   `json:"IsVerified"`
}

type CreateAccommodationInput struct {
	GeneralInfo struct {
		Name              string `json:"Name"`
		ServiceProviderId string `json:"ServiceProviderId"`
	} `json:"GeneralInfo"`
}

type CreateFAQInput struct {
	LocationKey string `json:"LocationKey"`
	Title       string `json:"Title"`
	Body        string `json:"Body"`
}

type CreateBannerInput struct {
	LocationSlug string     `json:"LocationSlug"`
	Title        string     `json:"Title"`
	StartDate    *time.Time `json:"StartDate"`
	EndDate      *time.Time `json:"EndDate"`
	IsActive     bool       `json:"IsActive"`
}

type CreateSwepBannerInput struct {
	LocationSlug    string     `json:"LocationSlug"`
	Title           string     `json:"Title"`
	SwepActiveFrom  *time.Time `json:"SwepActiveFrom"`
	SwepActiveUntil *time.Time `json:"SwepActiveUntil"`
	IsActive        bool       `json:"IsActive"`
}

type CreateResourceInput struct {
	Key  string `json:"Key"`
	Name string `json:"Name"`
	Body string `json:"Body"`
}
