package postgres

import (
	"context"
	"database/sql"
	"time"

	"directory-api/internal/organisation/repository"
	pkgLog "directory-api/pkg/log"
	postgresPkg "directory-api/pkg/postgre"
)

type implRepository struct {
	l     pkgLog.Logger
	db    *sql.DB
	clock func() time.Time
}

var _ repository.Repository = &implRepository{}

func New(l pkgLog.Logger, db *sql.DB) *implRepository {
	return &implRepository{
		l:     l,
		db:    db,
		clock: time.Now,
	}
}

// conn returns the transaction attached to ctx, or the pool.
func (r *implRepository) conn(ctx context.Context) postgresPkg.Executor {
	return postgresPkg.Conn(ctx, r.db)
}

func (r *implRepository) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return postgresPkg.RunInTx(ctx, r.db, fn)
}
