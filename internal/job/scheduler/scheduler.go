package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"directory-api/internal/job"
	"directory-api/internal/model"
	pkgLog "directory-api/pkg/log"
)

var parser = cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)

// Scheduler triggers jobs on cron specs evaluated in UTC.
type Scheduler struct {
	l    pkgLog.Logger
	uc   job.UseCase
	cron *cron.Cron

	mu      sync.Mutex
	ctx     context.Context
	cancel  context.CancelFunc
	started bool
	entries map[model.JobName]cron.EntryID
}

// New registers one entry per non-empty spec. Names must be jobs the usecase knows.
func New(l pkgLog.Logger, uc job.UseCase, specs map[model.JobName]string) (*Scheduler, error) {
	known := make(map[model.JobName]bool)
	for _, name := range uc.Jobs() {
		known[name] = true
	}

	s := &Scheduler{
		l:       l,
		uc:      uc,
		cron:    cron.New(cron.WithLocation(time.UTC), cron.WithParser(parser)),
		entries: make(map[model.JobName]cron.EntryID),
	}

	for name, spec := range specs {
		if spec == "" {
			continue
		}
		if !known[name] {
			return nil, fmt.Errorf("scheduler: %w: %s", job.ErrUnknownJob, name)
		}
		schedule, err := parser.Parse(spec)
		if err != nil {
			return nil, fmt.Errorf("scheduler: invalid spec %q for %s: %w", spec, name, err)
		}
		s.entries[name] = s.cron.Schedule(schedule, cron.FuncJob(s.tick(name)))
	}
	return s, nil
}

func (s *Scheduler) tick(name model.JobName) func() {
	return func() {
		s.mu.Lock()
		ctx := s.ctx
		s.mu.Unlock()
		if ctx == nil {
			return
		}

		defer func() {
			if r := recover(); r != nil {
				s.l.Errorf(ctx, "internal.job.scheduler.tick.%s: panic: %v", name, r)
			}
		}()

		_, err := s.uc.Run(ctx, name)
		switch {
		case err == nil:
		case errors.Is(err, job.ErrJobRunning):
			s.l.Infof(ctx, "internal.job.scheduler.tick: %s still running, skipping", name)
		default:
			s.l.Errorf(ctx, "internal.job.scheduler.tick.%s: %v", name, err)
		}
	}
}

// Next reports when name is due next. ok is false for jobs with no spec.
func (s *Scheduler) Next(name model.JobName) (time.Time, bool) {
	id, ok := s.entries[name]
	if !ok {
		return time.Time{}, false
	}
	return s.cron.Entry(id).Next, true
}

func (s *Scheduler) Start(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.started {
		return
	}
	s.ctx, s.cancel = context.WithCancel(ctx)
	s.cron.Start()
	s.started = true

	for name := range s.entries {
		next, _ := s.Next(name)
		s.l.Infof(ctx, "job %s scheduled, next run at %s", name, next.Format(time.RFC3339))
	}
}

// Stop cancels running jobs and waits for them to return or for ctx to expire.
func (s *Scheduler) Stop(ctx context.Context) error {
	s.mu.Lock()
	if !s.started {
		s.mu.Unlock()
		return nil
	}
	s.cancel()
	s.started = false
	s.mu.Unlock()

	select {
	case <-s.cron.Stop().Done():
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
