package usecase

import (
	"context"
	"fmt"
	"time"

	"directory-api/internal/model"
)

// runDisabling unpublishes organisations whose most recent note is dated today.
func (uc *usecase) runDisabling(ctx context.Context, now time.Time, stats *model.JobStats) error {
	orgs, err := uc.orgs.ListForDisabling(ctx)
	if err != nil {
		return fmt.Errorf("list for disabling: %w", err)
	}

	today := startOfDay(now)
	for _, org := range orgs {
		stats.Checked++

		note, ok := org.LatestNote()
		if !ok || !startOfDay(note.Date).Equal(today) {
			continue
		}

		changed, err := uc.orgs.Disable(ctx, org)
		if err != nil {
			uc.l.Errorf(ctx, "internal.job.usecase.runDisabling.Disable: %s: %v", org.Key, err)
			stats.AddError(fmt.Sprintf("disable %s: %v", org.Key, err))
			continue
		}
		if changed {
			stats.Transitioned++
		}
	}
	return nil
}
