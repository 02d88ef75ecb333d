package postgres

import (
	"database/sql"
	"time"

	"directory-api/internal/model"
)

const (
	queryDetailService = `SELECT id, service_provider_key, name, is_published, is_verified
	FROM services WHERE id = $1`
	queryInsertService = `INSERT INTO services (id, service_provider_key, name, is_published, is_verified)
	VALUES ($1, $2, $3, $4, $5)
	RETURNING id, service_provider_key, name, is_published, is_verified`
	queryDeleteService = `DELETE FROM services WHERE id = $1`

	queryDetailGroupedService = `SELECT id, provider_id, name, is_published, is_verified
	FROM grouped_services WHERE id = $1`
	queryInsertGroupedService = `INSERT INTO grouped_services (id, provider_id, name, is_published, is_verified)
	VALUES ($1, $2, $3, $4, $5)
	RETURNING id, provider_id, name, is_published, is_verified`
	queryDeleteGroupedService = `DELETE FROM grouped_services WHERE id = $1`

	queryDetailAccommodation = `SELECT id, name, service_provider_id FROM accommodations WHERE id = $1`
	queryInsertAccommodation = `INSERT INTO accommodations (id, name, service_provider_id)
	VALUES ($1, $2, $3)
	RETURNING id, name, service_provider_id`
	queryDeleteAccommodation = `DELETE FROM accommodations WHERE id = $1`

	// Empty location filters list everything; only global roles reach them.
	queryDetailFAQ = `SELECT id, location_key, title, body FROM faqs WHERE id = $1`
	queryListFAQs  = `SELECT id, location_key, title, body FROM faqs
	WHERE coalesce(cardinality($1::text[]), 0) = 0 OR location_key = ANY($1::text[])
	ORDER BY title`
	queryInsertFAQ = `INSERT INTO faqs (id, location_key, title, body)
	VALUES ($1, $2, $3, $4)
	RETURNING id, location_key, title, body`
	queryDeleteFAQ = `DELETE FROM faqs WHERE id = $1`

	bannerColumns     = `id, location_slug, title, start_date, end_date, is_active`
	queryDetailBanner = `SELECT ` + bannerColumns + ` FROM banners WHERE id = $1`
	queryListBanners  = `SELECT ` + bannerColumns + ` FROM banners
	WHERE coalesce(cardinality($1::text[]), 0) = 0
	OR string_to_array(replace(location_slug, ' ', ''), ',') && $1::text[]
	ORDER BY title`
	queryInsertBanner = `INSERT INTO banners (id, location_slug, title, start_date, end_date, is_active)
	VALUES ($1, $2, $3, $4, $5, $6)
	RETURNING ` + bannerColumns
	queryDeleteBanner   = `DELETE FROM banners WHERE id = $1`
	queryListBannersDue = `SELECT ` + bannerColumns + ` FROM banners
	WHERE (start_date AT TIME ZONE 'UTC')::date = $1::date
	OR (end_date AT TIME ZONE 'UTC')::date = $2::date`
	querySetBannerActive = `UPDATE banners SET is_active = $2 WHERE id = $1 AND is_active <> $2`

	swepBannerColumns     = `id, location_slug, title, swep_active_from, swep_active_until, is_active`
	queryDetailSwepBanner = `SELECT ` + swepBannerColumns + ` FROM swep_banners WHERE id = $1`
	queryListSwepBanners  = `SELECT ` + swepBannerColumns + ` FROM swep_banners
	WHERE coalesce(cardinality($1::text[]), 0) = 0
	OR string_to_array(replace(location_slug, ' ', ''), ',') && $1::text[]
	ORDER BY title`
	queryInsertSwepBanner = `INSERT INTO swep_banners (id, location_slug, title, swep_active_from, swep_active_until, is_active)
	VALUES ($1, $2, $3, $4, $5, $6)
	RETURNING ` + swepBannerColumns
	queryDeleteSwepBanner   = `DELETE FROM swep_banners WHERE id = $1`
	queryListSwepBannersDue = `SELECT ` + swepBannerColumns + ` FROM swep_banners
	WHERE (swep_active_from AT TIME ZONE 'UTC')::date = $1::date
	OR (swep_active_until AT TIME ZONE 'UTC')::date = $2::date`
	querySetSwepBannerActive = `UPDATE swep_banners SET is_active = $2 WHERE id = $1 AND is_active <> $2`

	queryDetailResource = `SELECT id, key, name, body FROM resources WHERE id = $1`
	queryInsertResource = `INSERT INTO resources (id, key, name, body)
	VALUES ($1, $2, $3, $4)
	RETURNING id, key, name, body`
	queryDeleteResource = `DELETE FROM resources WHERE id = $1`
)

type rowScanner interface {
	Scan(dest ...any) error
}

func scanService(s rowScanner) (model.Service, error) {
	var v model.Service
	err := s.Scan(&v.ID, &v.ServiceProviderKey, &v.Name, &v.IsPublished, &v.IsVerified)
	return v, err
}

func scanGroupedService(s rowScanner) (model.GroupedService, error) {
	var v model.GroupedService
	err := s.Scan(&v.ID, &v.ProviderId, &v.Name, &v.IsPublished, &v.IsVerified)
	return v, err
}

func scanAccommodation(s rowScanner) (model.Accommodation, error) {
	var v model.Accommodation
	err := s.Scan(&v.ID, &v.GeneralInfo.Name, &v.GeneralInfo.ServiceProviderId)
	return v, err
}

func scanFAQ(s rowScanner) (model.FAQ, error) {
	var v model.FAQ
	err := s.Scan(&v.ID, &v.LocationKey, &v.Title, &v.Body)
	return v, err
}

func scanBanner(s rowScanner) (model.Banner, error) {
	var (
		v          model.Banner
		start, end sql.NullTime
	)
	if err := s.Scan(&v.ID, &v.LocationSlug, &v.Title, &start, &end, &v.IsActive); err != nil {
		return model.Banner{}, err
	}
	v.StartDate, v.EndDate = timePtr(start), timePtr(end)
	return v, nil
}

func scanSwepBanner(s rowScanner) (model.SwepBanner, error) {
	var (
		v           model.SwepBanner
		from, until sql.NullTime
	)
	if err := s.Scan(&v.ID, &v.LocationSlug, &v.Title, &from, &until, &v.IsActive); err != nil {
		return model.SwepBanner{}, err
	}
	v.SwepActiveFrom, v.SwepActiveUntil = timePtr(from), timePtr(until)
	return v, nil
}

func scanResource(s rowScanner) (model.Resource, error) {
	var v model.Resource
	err := s.Scan(&v.ID, &v.Key, &v.Name, &v.Body)
	return v, err
}

func timePtr(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	v := t.Time
	return &v
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: t.UTC(), Valid: true}
}
