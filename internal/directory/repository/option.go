package repository

import "time"

type CreateServiceOptions struct {
	ProviderKey string
	Name        string
	IsPublished bool
	IsVerified  bool
}

type CreateAccommodationOptions struct {
	Name              string
	ServiceProviderId string
}

type CreateFAQOptions struct {
	LocationKey string
	Title       string
	Body        string
}

// CreateBannerOptions serves both banner kinds. From and Until map to
// start/end dates or to the SWEP activation window.
type CreateBannerOptions struct {
	LocationSlug string
	Title        string
	From         *time.Time
	Until        *time.Time
	IsActive     bool
}

type CreateResourceOptions struct {
	Key  string
	Name string
	Body string
}
