package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"directory-api/internal/user/repository"
	"directory-api/pkg/log"
	postgresPkg "directory-api/pkg/postgre"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, 5, 4, 10, 0, 0, 0, time.UTC)

var userCols = []string{"id", "subject", "email", "auth_claims", "associated_provider_location_ids", "is_active", "created_at", "updated_at"}

func newMockRepo(t *testing.T) (*implRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	r := New(log.NewNop(), db)
	r.clock = func() time.Time { return fixedNow }
	return r, mock
}

func TestGetOneBySubject(t *testing.T) {
	r, mock := newMockRepo(t)
	mock.ExpectQuery(queryBySubject).WithArgs("auth0|abc").
		WillReturnRows(sqlmock.NewRows(userCols).
			AddRow("u1", "auth0|abc", "a@example.org", "{CityAdmin,CityAdminFor:leeds}", "{}", true, fixedNow, fixedNow))

	u, err := r.GetOne(context.Background(), repository.GetOneOptions{Subject: "auth0|abc"})
	require.NoError(t, err)
	assert.Equal(t, []string{"CityAdmin", "CityAdminFor:leeds"}, u.AuthClaims)
	assert.Empty(t, u.AssociatedProviderLocationIds)
	assert.True(t, u.IsActive)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetOneMissing(t *testing.T) {
	r, mock := newMockRepo(t)
	mock.ExpectQuery(queryBySubject).WithArgs("nobody").WillReturnError(sql.ErrNoRows)

	_, err := r.GetOne(context.Background(), repository.GetOneOptions{Subject: "nobody"})
	assert.ErrorIs(t, err, repository.ErrNotFound)

	_, err = r.GetOne(context.Background(), repository.GetOneOptions{})
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestList(t *testing.T) {
	r, mock := newMockRepo(t)
	active := true
	q, _ := buildListQuery(repository.ListOptions{Filter: repository.Filter{IsActive: &active}})
	assert.Equal(t, `SELECT `+userColumns+` FROM users WHERE archived_at IS NULL AND is_active = $1 ORDER BY created_at DESC`, q)

	mock.ExpectQuery(q).WithArgs(true).
		WillReturnRows(sqlmock.NewRows(userCols).
			AddRow("u1", "s1", "a@example.org", "{OrgAdmin,AdminFor:x}", "{leeds}", true, fixedNow, fixedNow).
			AddRow("u2", "s2", "b@example.org", "{SuperAdmin}", "{}", true, fixedNow, fixedNow))

	users, err := r.List(context.Background(), repository.ListOptions{Filter: repository.Filter{IsActive: &active}})
	require.NoError(t, err)
	assert.Len(t, users, 2)
	assert.Equal(t, []string{"leeds"}, users[0].AssociatedProviderLocationIds)
}

func TestCreateConflict(t *testing.T) {
	r, mock := newMockRepo(t)
	mock.ExpectQuery(queryInsert).
		WithArgs(sqlmock.AnyArg(), "s1", "a@example.org", pq.Array([]string{"SuperAdmin"}), pq.Array([]string(nil)), fixedNow).
		WillReturnError(&pq.Error{Code: uniqueViolation})

	_, err := r.Create(context.Background(), repository.CreateOptions{
		Subject:    "s1",
		Email:      "a@example.org",
		AuthClaims: []string{"SuperAdmin"},
	})
	assert.ErrorIs(t, err, repository.ErrConflict)
}

func TestUpdateClaims(t *testing.T) {
	r, mock := newMockRepo(t)
	id := postgresPkg.NewUUID()
	claims := []string{"OrgAdmin", "AdminFor:y"}
	mock.ExpectQuery(queryUpdateClaims).WithArgs(id, pq.Array(claims), fixedNow).
		WillReturnRows(sqlmock.NewRows(userCols).
			AddRow(id, "s1", "a@example.org", "{OrgAdmin,AdminFor:y}", "{}", true, fixedNow, fixedNow))

	u, err := r.UpdateClaims(context.Background(), repository.UpdateClaimsOptions{ID: id, AuthClaims: claims})
	require.NoError(t, err)
	assert.Equal(t, claims, u.AuthClaims)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestArchive(t *testing.T) {
	r, mock := newMockRepo(t)
	id := postgresPkg.NewUUID()
	mock.ExpectExec(queryArchive).WithArgs(id, fixedNow).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(queryArchive).WithArgs(id, fixedNow).WillReturnResult(sqlmock.NewResult(0, 0))

	assert.NoError(t, r.Archive(context.Background(), id))
	assert.ErrorIs(t, r.Archive(context.Background(), id), repository.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
