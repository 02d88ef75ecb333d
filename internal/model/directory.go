package model

import (
	"strings"
	"time"
)

// GeneralLocationKey marks an FAQ that is not tied to a location.
const GeneralLocationKey = "general"

// Service is a provided service owned by an organisation through ServiceProviderKey.
type Service struct {
	ID                 string `json:"id"`
	ServiceProviderKey string `json:"ServiceProviderKey"`
	Name               string `json:"Name"`
	IsPublished        bool   `json:"IsPublished"`
	IsVerified         bool   `json:"IsVerified"`
}

// GroupedService is a service group owned by an organisation through ProviderId.
type GroupedService struct {
	ID          string `json:"id"`
	ProviderId  string `json:"ProviderId"`
	Name        string `json:"Name"`
	IsPublished bool   `json:"IsPublished"`
	IsVerified  bool   `json:"IsVerified"`
}

type AccommodationGeneralInfo struct {
	Name              string `json:"Name"`
	ServiceProviderId string `json:"ServiceProviderId"`
}

type Accommodation struct {
	ID          string                   `json:"id"`
	GeneralInfo AccommodationGeneralInfo `json:"GeneralInfo"`
}

type FAQ struct {
	ID          string `json:"id"`
	LocationKey string `json:"LocationKey"`
	Title       string `json:"Title"`
	Body        string `json:"Body"`
}

type Banner struct {
	ID           string     `json:"id"`
	LocationSlug string     `json:"LocationSlug"`
	Title        string     `json:"Title"`
	StartDate    *time.Time `json:"StartDate,omitempty"`
	EndDate      *time.Time `json:"EndDate,omitempty"`
	IsActive     bool       `json:"IsActive"`
}

func (b Banner) Locations() []string { return SplitLocationSlug(b.LocationSlug) }

type SwepBanner struct {
	ID              string     `json:"id"`
	LocationSlug    string     `json:"LocationSlug"`
	Title           string     `json:"Title"`
	SwepActiveFrom  *time.Time `json:"SwepActiveFrom,omitempty"`
	SwepActiveUntil *time.Time `json:"SwepActiveUntil,omitempty"`
	IsActive        bool       `json:"IsActive"`
}

func (b SwepBanner) Locations() []string { return SplitLocationSlug(b.LocationSlug) }

// Resource is a CMS content entry. It carries no location.
type Resource struct {
	ID   string `json:"id"`
	Key  string `json:"Key"`
	Name string `json:"Name"`
	Body string `json:"Body"`
}

// SplitLocationSlug splits a comma-joined location string, dropping blanks.
func SplitLocationSlug(slug string) []string {
	var out []string
	for _, part := range strings.Split(slug, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
