package usecase

import (
	"context"
	"fmt"
	"time"

	"directory-api/internal/model"
)

// scheduled is one banner row as seen by the activation pass.
type scheduled struct {
	id       string
	from     *time.Time
	until    *time.Time
	isActive bool
}

func (uc *usecase) ActivateBanners(ctx context.Context, day time.Time) (model.JobStats, error) {
	today, yesterday := dayBounds(day)
	banners, err := uc.repo.ListBannersDue(ctx, today, yesterday)
	if err != nil {
		uc.l.Errorf(ctx, "internal.directory.usecase.ActivateBanners.ListBannersDue: %v", err)
		return model.JobStats{}, err
	}

	rows := make([]scheduled, 0, len(banners))
	for _, b := range banners {
		rows = append(rows, scheduled{id: b.ID, from: b.StartDate, until: b.EndDate, isActive: b.IsActive})
	}
	return uc.activate(ctx, rows, today, uc.repo.SetBannerActive), nil
}

func (uc *usecase) ActivateSwepBanners(ctx context.Context, day time.Time) (model.JobStats, error) {
	today, yesterday := dayBounds(day)
	banners, err := uc.repo.ListSwepBannersDue(ctx, today, yesterday)
	if err != nil {
		uc.l.Errorf(ctx, "internal.directory.usecase.ActivateSwepBanners.ListSwepBannersDue: %v", err)
		return model.JobStats{}, err
	}

	rows := make([]scheduled, 0, len(banners))
	for _, b := range banners {
		rows = append(rows, scheduled{id: b.ID, from: b.SwepActiveFrom, until: b.SwepActiveUntil, isActive: b.IsActive})
	}
	return uc.activate(ctx, rows, today, uc.repo.SetSwepBannerActive), nil
}

// activate writes only rows whose state differs from the schedule. A banner
// whose window closed yesterday is switched off even if it also starts today.
func (uc *usecase) activate(ctx context.Context, rows []scheduled, today time.Time, set func(context.Context, string, bool) (bool, error)) model.JobStats {
	var stats model.JobStats
	yesterday := today.AddDate(0, 0, -1)

	for _, row := range rows {
		stats.Checked++

		var want bool
		switch {
		case sameDay(row.until, yesterday):
			want = false
		case sameDay(row.from, today):
			want = true
		default:
			continue
		}
		if row.isActive == want {
			continue
		}

		changed, err := set(ctx, row.id, want)
		if err != nil {
			uc.l.Errorf(ctx, "internal.directory.usecase.activate: banner %s: %v", row.id, err)
			stats.AddError(fmt.Sprintf("banner %s: %v", row.id, err))
			continue
		}
		if changed {
			stats.Transitioned++
		}
	}

	return stats
}

func dayBounds(day time.Time) (today, yesterday time.Time) {
	y, m, d := day.UTC().Date()
	today = time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return today, today.AddDate(0, 0, -1)
}

func sameDay(t *time.Time, day time.Time) bool {
	if t == nil {
		return false
	}
	y1, m1, d1 := t.UTC().Date()
	y2, m2, d2 := day.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
