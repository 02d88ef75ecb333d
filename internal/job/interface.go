package job

import (
	"context"

	"directory-api/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Run executes one job under its lock. It returns ErrJobRunning when
	// another run holds the lock and ErrUnknownJob for an unregistered name.
	Run(ctx context.Context, name model.JobName) (model.JobStats, error)
	Jobs() []model.JobName
}
