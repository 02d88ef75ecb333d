package postgres

import (
	"context"
	"database/sql"

	"directory-api/internal/directory/repository"
	pkgLog "directory-api/pkg/log"
	postgresPkg "directory-api/pkg/postgre"
)

type implRepository struct {
	l  pkgLog.Logger
	db *sql.DB
}

var _ repository.Repository = &implRepository{}

func New(l pkgLog.Logger, db *sql.DB) *implRepository {
	return &implRepository{
		l:  l,
		db: db,
	}
}

func (r *implRepository) conn(ctx context.Context) postgresPkg.Executor {
	return postgresPkg.Conn(ctx, r.db)
}
