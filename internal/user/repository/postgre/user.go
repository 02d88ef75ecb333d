package postgres

import (
	"context"
	"database/sql"
	"errors"

	"directory-api/internal/model"
	"directory-api/internal/user/repository"
	postgresPkg "directory-api/pkg/postgre"

	"github.com/lib/pq"
)

const uniqueViolation = "23505"

func (r *implRepository) Detail(ctx context.Context, id string) (model.User, error) {
	if err := postgresPkg.IsUUID(id); err != nil {
		return model.User{}, repository.ErrNotFound
	}

	u, err := scanUser(r.conn(ctx).QueryRowContext(ctx, queryDetail, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.User{}, repository.ErrNotFound
		}
		r.l.Errorf(ctx, "internal.user.repository.postgres.Detail.Scan: %v", err)
		return model.User{}, err
	}
	return u, nil
}

func (r *implRepository) GetOne(ctx context.Context, opts repository.GetOneOptions) (model.User, error) {
	if opts.ID != "" {
		return r.Detail(ctx, opts.ID)
	}
	if opts.Subject == "" {
		return model.User{}, repository.ErrNotFound
	}

	u, err := scanUser(r.conn(ctx).QueryRowContext(ctx, queryBySubject, opts.Subject))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.User{}, repository.ErrNotFound
		}
		r.l.Errorf(ctx, "internal.user.repository.postgres.GetOne.Scan: %v", err)
		return model.User{}, err
	}
	return u, nil
}

func (r *implRepository) List(ctx context.Context, opts repository.ListOptions) ([]model.User, error) {
	if err := postgresPkg.ValidateUUIDs(opts.Filter.IDs); err != nil {
		r.l.Errorf(ctx, "internal.user.repository.postgres.List.ValidateUUIDs: %v", err)
		return nil, err
	}

	q, args := buildListQuery(opts)
	rows, err := r.conn(ctx).QueryContext(ctx, q, args...)
	if err != nil {
		r.l.Errorf(ctx, "internal.user.repository.postgres.List.Query: %v", err)
		return nil, err
	}
	defer rows.Close()

	var out []model.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			r.l.Errorf(ctx, "internal.user.repository.postgres.List.Scan: %v", err)
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

func (r *implRepository) Create(ctx context.Context, opts repository.CreateOptions) (model.User, error) {
	row := r.conn(ctx).QueryRowContext(ctx, queryInsert,
		postgresPkg.NewUUID(), opts.Subject, opts.Email,
		pq.Array(opts.AuthClaims), pq.Array(opts.AssociatedProviderLocationIds),
		r.clock().UTC(),
	)

	u, err := scanUser(row)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return model.User{}, repository.ErrConflict
		}
		r.l.Errorf(ctx, "internal.user.repository.postgres.Create.Scan: %v", err)
		return model.User{}, err
	}
	return u, nil
}

func (r *implRepository) UpdateClaims(ctx context.Context, opts repository.UpdateClaimsOptions) (model.User, error) {
	if err := postgresPkg.IsUUID(opts.ID); err != nil {
		return model.User{}, repository.ErrNotFound
	}

	row := r.conn(ctx).QueryRowContext(ctx, queryUpdateClaims, opts.ID, pq.Array(opts.AuthClaims), r.clock().UTC())
	u, err := scanUser(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.User{}, repository.ErrNotFound
		}
		r.l.Errorf(ctx, "internal.user.repository.postgres.UpdateClaims.Scan: %v", err)
		return model.User{}, err
	}
	return u, nil
}

func (r *implRepository) Archive(ctx context.Context, id string) error {
	if err := postgresPkg.IsUUID(id); err != nil {
		return repository.ErrNotFound
	}

	res, err := r.conn(ctx).ExecContext(ctx, queryArchive, id, r.clock().UTC())
	if err != nil {
		r.l.Errorf(ctx, "internal.user.repository.postgres.Archive.Exec: %v", err)
		return err
	}

	rows, err := res.RowsAffected()
	if err != nil {
		r.l.Errorf(ctx, "internal.user.repository.postgres.Archive.RowsAffected: %v", err)
		return err
	}
	if rows == 0 {
		return repository.ErrNotFound
	}
	return nil
}
