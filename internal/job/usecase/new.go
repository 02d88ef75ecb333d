package usecase

import (
	"context"
	"sync"
	"time"

	"directory-api/internal/job"
	"directory-api/internal/model"
	"directory-api/pkg/discord"
	"directory-api/pkg/email"
	pkgLog "directory-api/pkg/log"
	"directory-api/pkg/redis"
)

const (
	defaultTimeout = 10 * time.Minute
	defaultLockTTL = 15 * time.Minute
	lockPrefix     = "directory:job:"
)

type jobFunc func(ctx context.Context, now time.Time, stats *model.JobStats) error

type usecase struct {
	l       pkgLog.Logger
	cfg     job.Config
	orgs    job.OrganisationStore
	banners job.BannerActivator
	mailer  email.Sender
	locker  redis.Locker
	discord discord.IDiscord
	now     func() time.Time

	order []model.JobName
	jobs  map[model.JobName]jobFunc
	locks map[model.JobName]*sync.Mutex
}

type Option func(*usecase)

// WithLocker adds a cross-replica lock on top of the in-process one.
func WithLocker(l redis.Locker) Option {
	return func(uc *usecase) { uc.locker = l }
}

func WithDiscord(d discord.IDiscord) Option {
	return func(uc *usecase) { uc.discord = d }
}

func WithClock(now func() time.Time) Option {
	return func(uc *usecase) { uc.now = now }
}

func New(l pkgLog.Logger, cfg job.Config, orgs job.OrganisationStore, banners job.BannerActivator, mailer email.Sender, opts ...Option) job.UseCase {
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	if cfg.LockTTL <= 0 {
		cfg.LockTTL = defaultLockTTL
	}

	uc := &usecase{
		l:       l,
		cfg:     cfg,
		orgs:    orgs,
		banners: banners,
		mailer:  mailer,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(uc)
	}

	uc.register(model.JobVerification, uc.runVerification)
	uc.register(model.JobDisabling, uc.runDisabling)
	uc.register(model.JobBannerActivation, uc.runBannerActivation)
	uc.register(model.JobSwepActivation, uc.runSwepActivation)
	return uc
}

func (uc *usecase) register(name model.JobName, fn jobFunc) {
	if uc.jobs == nil {
		uc.jobs = make(map[model.JobName]jobFunc)
		uc.locks = make(map[model.JobName]*sync.Mutex)
	}
	uc.order = append(uc.order, name)
	uc.jobs[name] = fn
	uc.locks[name] = &sync.Mutex{}
}

func (uc *usecase) Jobs() []model.JobName {
	return append([]model.JobName(nil), uc.order...)
}
