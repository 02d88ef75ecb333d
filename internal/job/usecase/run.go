package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/oklog/ulid/v2"

	"directory-api/internal/job"
	"directory-api/internal/model"
	pkgLog "directory-api/pkg/log"
	"directory-api/pkg/metrics"
	"directory-api/pkg/tracer"
)

func (uc *usecase) Run(ctx context.Context, name model.JobName) (model.JobStats, error) {
	fn, ok := uc.jobs[name]
	if !ok {
		return model.JobStats{}, job.ErrUnknownJob
	}

	mu := uc.locks[name]
	if !mu.TryLock() {
		metrics.JobRun(string(name), metrics.ResultSkipped, 0, 0)
		return model.JobStats{}, job.ErrJobRunning
	}
	defer mu.Unlock()

	release, err := uc.acquire(ctx, name)
	if err != nil {
		if errors.Is(err, job.ErrJobRunning) {
			metrics.JobRun(string(name), metrics.ResultSkipped, 0, 0)
		}
		return model.JobStats{}, err
	}
	defer release()

	stats := model.JobStats{
		Job:       name,
		RunID:     ulid.Make().String(),
		StartedAt: uc.now().UTC(),
		Errors:    []string{},
	}

	ctx = pkgLog.WithRequestID(ctx, stats.RunID)
	ctx, cancel := context.WithTimeout(ctx, uc.cfg.Timeout)
	defer cancel()
	ctx, span := tracer.StartSpan(ctx, "job."+string(name))
	defer span.End()
	span.SetAttributes(tracer.StringAttr("job.run_id", stats.RunID))

	err = fn(ctx, stats.StartedAt, &stats)
	stats.FinishedAt = uc.now().UTC()

	span.SetAttributes(
		tracer.IntAttr("job.checked", stats.Checked),
		tracer.IntAttr("job.transitioned", stats.Transitioned),
		tracer.IntAttr("job.errors", len(stats.Errors)),
	)

	result := metrics.ResultOK
	switch {
	case err != nil:
		result = metrics.ResultFailed
		tracer.RecordError(span, err)
		uc.l.Errorf(ctx, "internal.job.usecase.Run.%s: %v", name, err)
	case len(stats.Errors) > 0:
		result = metrics.ResultPartial
		uc.l.Warnf(ctx, "internal.job.usecase.Run.%s: %d record errors", name, len(stats.Errors))
	default:
		tracer.SetOK(span)
	}
	metrics.JobRun(string(name), result, stats.Transitioned, stats.FinishedAt.Sub(stats.StartedAt))
	uc.l.Infof(ctx, "job %s finished: checked=%d transitioned=%d reminders=%d errors=%d",
		name, stats.Checked, stats.Transitioned, stats.RemindersSent, len(stats.Errors))

	if err != nil || len(stats.Errors) > 0 {
		uc.report(ctx, stats, err)
	}
	return stats, err
}

// acquire takes the distributed lock when one is configured. A lock backend
// failure stops the run rather than risking two replicas running it.
func (uc *usecase) acquire(ctx context.Context, name model.JobName) (func(), error) {
	if uc.locker == nil {
		return func() {}, nil
	}

	key := lockPrefix + string(name)
	token, ok, err := uc.locker.TryLock(ctx, key, uc.cfg.LockTTL)
	if err != nil {
		return nil, fmt.Errorf("acquire %s: %w", key, err)
	}
	if !ok {
		return nil, job.ErrJobRunning
	}

	return func() {
		if err := uc.locker.Unlock(context.WithoutCancel(ctx), key, token); err != nil {
			uc.l.Warnf(ctx, "internal.job.usecase.Run.Unlock: %v", err)
		}
	}, nil
}

func (uc *usecase) runBannerActivation(ctx context.Context, now time.Time, stats *model.JobStats) error {
	res, err := uc.banners.ActivateBanners(ctx, now)
	if err != nil {
		return err
	}
	merge(stats, res)
	return nil
}

func (uc *usecase) runSwepActivation(ctx context.Context, now time.Time, stats *model.JobStats) error {
	res, err := uc.banners.ActivateSwepBanners(ctx, now)
	if err != nil {
		return err
	}
	merge(stats, res)
	return nil
}

func merge(dst *model.JobStats, src model.JobStats) {
	dst.Checked += src.Checked
	dst.Transitioned += src.Transitioned
	dst.RemindersSent += src.RemindersSent
	dst.Errors = append(dst.Errors, src.Errors...)
}
