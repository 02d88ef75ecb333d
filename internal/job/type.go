package job

import (
	"context"
	"time"

	"directory-api/internal/model"
)

// Config tunes every run regardless of how it was triggered.
type Config struct {
	Timeout            time.Duration
	LockTTL            time.Duration
	ReminderTemplateID string
	ExpiryTemplateID   string
}

// OrganisationStore is the slice of the organisation usecase the jobs drive.
type OrganisationStore interface {
	ListForVerification(ctx context.Context) ([]model.Organisation, error)
	ListForDisabling(ctx context.Context) ([]model.Organisation, error)
	ExpireVerification(ctx context.Context, org model.Organisation) (bool, error)
	Disable(ctx context.Context, org model.Organisation) (bool, error)
	MarkReminderSent(ctx context.Context, id string, at time.Time) error
}

// BannerActivator flips banner activity for a given UTC day.
type BannerActivator interface {
	ActivateBanners(ctx context.Context, day time.Time) (model.JobStats, error)
	ActivateSwepBanners(ctx context.Context, day time.Time) (model.JobStats, error)
}
