package usecase

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"directory-api/internal/model"
	"directory-api/pkg/email"
)

const (
	reminderAfterDays = 90
	expireAfterDays   = 100
)

// runVerification reminds administrators of organisations whose documents are
// going stale and expires verification once they are.
func (uc *usecase) runVerification(ctx context.Context, now time.Time, stats *model.JobStats) error {
	orgs, err := uc.orgs.ListForVerification(ctx)
	if err != nil {
		return fmt.Errorf("list for verification: %w", err)
	}

	for _, org := range orgs {
		stats.Checked++

		days := daysBetween(org.DocumentModifiedDate, now)
		switch {
		case days >= expireAfterDays:
			if org.IsVerified {
				uc.expire(ctx, org, days, stats)
			}
		case days >= reminderAfterDays:
			if reminderSent(org) {
				continue
			}
			uc.remind(ctx, org, days, now, stats)
		}
	}
	return nil
}

func (uc *usecase) expire(ctx context.Context, org model.Organisation, days int, stats *model.JobStats) {
	changed, err := uc.orgs.ExpireVerification(ctx, org)
	if err != nil {
		uc.l.Errorf(ctx, "internal.job.usecase.expire.ExpireVerification: %s: %v", org.Key, err)
		stats.AddError(fmt.Sprintf("expire %s: %v", org.Key, err))
		return
	}
	if !changed {
		return
	}
	stats.Transitioned++

	if err := uc.mailer.Send(ctx, expiryMessage(org, days, uc.cfg.ExpiryTemplateID)); err != nil {
		uc.l.Errorf(ctx, "internal.job.usecase.expire.Send: %s: %v", org.Key, err)
		stats.AddError(fmt.Sprintf("expiry email %s: %v", org.Key, err))
	}
}

// remind sends the reminder and only then records it, so a failed send is
// retried on the next run.
func (uc *usecase) remind(ctx context.Context, org model.Organisation, days int, now time.Time, stats *model.JobStats) {
	if err := uc.mailer.Send(ctx, reminderMessage(org, days, uc.cfg.ReminderTemplateID)); err != nil {
		uc.l.Errorf(ctx, "internal.job.usecase.remind.Send: %s: %v", org.Key, err)
		stats.AddError(fmt.Sprintf("reminder email %s: %v", org.Key, err))
		return
	}
	stats.RemindersSent++

	if err := uc.orgs.MarkReminderSent(ctx, org.ID, now); err != nil {
		uc.l.Errorf(ctx, "internal.job.usecase.remind.MarkReminderSent: %s: %v", org.Key, err)
		stats.AddError(fmt.Sprintf("mark reminder %s: %v", org.Key, err))
	}
}

func reminderSent(org model.Organisation) bool {
	return org.ReminderSentAt != nil && !org.ReminderSentAt.Before(org.DocumentModifiedDate)
}

// daysBetween counts UTC calendar days from from to to.
func daysBetween(from, to time.Time) int {
	return int(startOfDay(to).Sub(startOfDay(from)).Hours() / 24)
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func reminderMessage(org model.Organisation, days int, templateID string) email.Message {
	return email.Message{
		To:      org.AdministratorEmail,
		Subject: fmt.Sprintf("Please review the listing for %s", org.Name),
		Body: fmt.Sprintf("The information for %s was last updated %d days ago. "+
			"Please check it is still correct, otherwise the listing will lose its verified status in %d days.",
			org.Name, days, expireAfterDays-days),
		TemplateID: templateID,
		Data:       messageData(org, days),
	}
}

func expiryMessage(org model.Organisation, days int, templateID string) email.Message {
	return email.Message{
		To:      org.AdministratorEmail,
		Subject: fmt.Sprintf("%s is no longer verified", org.Name),
		Body: fmt.Sprintf("The information for %s has not been updated for %d days and the listing is no longer marked as verified. "+
			"Updating the listing will restore it.", org.Name, days),
		TemplateID: templateID,
		Data:       messageData(org, days),
	}
}

func messageData(org model.Organisation, days int) map[string]string {
	return map[string]string{
		"organisation_key":  org.Key,
		"organisation_name": org.Name,
		"days":              strconv.Itoa(days),
	}
}
