package postgres

import (
	"context"
	"database/sql"
	"errors"

	"directory-api/internal/directory/repository"
	postgresPkg "directory-api/pkg/postgre"
)

func detail[T any](ctx context.Context, r *implRepository, op, query, id string, scan func(rowScanner) (T, error)) (T, error) {
	var zero T
	if err := postgresPkg.IsUUID(id); err != nil {
		return zero, repository.ErrNotFound
	}

	v, err := scan(r.conn(ctx).QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return zero, repository.ErrNotFound
		}
		r.l.Errorf(ctx, "internal.directory.repository.postgres.%s.Scan: %v", op, err)
		return zero, err
	}
	return v, nil
}

func insert[T any](ctx context.Context, r *implRepository, op, query string, scan func(rowScanner) (T, error), args ...any) (T, error) {
	v, err := scan(r.conn(ctx).QueryRowContext(ctx, query, args...))
	if err != nil {
		r.l.Errorf(ctx, "internal.directory.repository.postgres.%s.Scan: %v", op, err)
		var zero T
		return zero, err
	}
	return v, nil
}

func list[T any](ctx context.Context, r *implRepository, op, query string, scan func(rowScanner) (T, error), args ...any) ([]T, error) {
	rows, err := r.conn(ctx).QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "internal.directory.repository.postgres.%s.Query: %v", op, err)
		return nil, err
	}
	defer rows.Close()

	out := []T{}
	for rows.Next() {
		v, err := scan(rows)
		if err != nil {
			r.l.Errorf(ctx, "internal.directory.repository.postgres.%s.Scan: %v", op, err)
			return nil, err
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "internal.directory.repository.postgres.%s.Rows: %v", op, err)
		return nil, err
	}
	return out, nil
}

// exec runs a single-row write and reports whether a row changed.
func (r *implRepository) exec(ctx context.Context, op, query string, args ...any) (bool, error) {
	res, err := r.conn(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "internal.directory.repository.postgres.%s.Exec: %v", op, err)
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		r.l.Errorf(ctx, "internal.directory.repository.postgres.%s.RowsAffected: %v", op, err)
		return false, err
	}
	return n > 0, nil
}

func (r *implRepository) delete(ctx context.Context, op, query, id string) error {
	if err := postgresPkg.IsUUID(id); err != nil {
		return repository.ErrNotFound
	}
	ok, err := r.exec(ctx, op, query, id)
	if err != nil {
		return err
	}
	if !ok {
		return repository.ErrNotFound
	}
	return nil
}
