package postgres

import (
	"fmt"
	"strings"

	"directory-api/internal/model"
	"directory-api/internal/user/repository"

	"github.com/lib/pq"
)

const userColumns = `id, subject, email, auth_claims, associated_provider_location_ids, is_active, created_at, updated_at`

const (
	queryDetail = `SELECT ` + userColumns + ` FROM users WHERE id = $1 AND archived_at IS NULL`

	queryBySubject = `SELECT ` + userColumns + ` FROM users WHERE subject = $1 AND archived_at IS NULL`

	queryInsert = `INSERT INTO users
	(id, subject, email, auth_claims, associated_provider_location_ids, is_active, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, true, $6, $6)
	RETURNING ` + userColumns

	queryUpdateClaims = `UPDATE users SET auth_claims = $2, updated_at = $3
	WHERE id = $1 AND archived_at IS NULL
	RETURNING ` + userColumns

	queryArchive = `UPDATE users SET archived_at = $2, is_active = false, updated_at = $2
	WHERE id = $1 AND archived_at IS NULL`
)

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(s rowScanner) (model.User, error) {
	var u model.User
	err := s.Scan(
		&u.ID, &u.Subject, &u.Email,
		pq.Array(&u.AuthClaims), pq.Array(&u.AssociatedProviderLocationIds),
		&u.IsActive, &u.CreatedAt, &u.UpdatedAt,
	)
	return u, err
}

// buildListQuery renders the list query with positional arguments.
func buildListQuery(opts repository.ListOptions) (string, []any) {
	var (
		where = []string{"archived_at IS NULL"}
		args  []any
	)
	if len(opts.Filter.IDs) > 0 {
		args = append(args, pq.Array(opts.Filter.IDs))
		where = append(where, fmt.Sprintf("id = ANY($%d)", len(args)))
	}
	if opts.Filter.IsActive != nil {
		args = append(args, *opts.Filter.IsActive)
		where = append(where, fmt.Sprintf("is_active = $%d", len(args)))
	}

	q := `SELECT ` + userColumns + ` FROM users WHERE ` + strings.Join(where, " AND ") + ` ORDER BY created_at DESC`
	return q, args
}
