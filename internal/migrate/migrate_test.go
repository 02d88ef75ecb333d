package migrate

import (
	"context"
	"errors"
	"testing"
	"testing/fstest"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgLog "directory-api/pkg/log"
)

var files = fstest.MapFS{
	"0001_init.up.sql":   {Data: []byte("CREATE TABLE a (id int)")},
	"0001_init.down.sql": {Data: []byte("DROP TABLE a")},
	"0002_notes.up.sql":  {Data: []byte("CREATE TABLE b (id int)")},
	"README.md":          {Data: []byte("docs")},
}

func newMock(t *testing.T) (*Manager, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return New(pkgLog.NewNop(), db, files), mock
}

func TestUp(t *testing.T) {
	m, mock := newMock(t)

	mock.ExpectExec(m.createTableQuery()).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT name FROM schema_migrations").
		WillReturnRows(sqlmock.NewRows([]string{"name"}).AddRow("0001_init.up.sql"))
	mock.ExpectBegin()
	mock.ExpectExec("CREATE TABLE b (id int)").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("INSERT INTO schema_migrations (name) VALUES ($1)").
		WithArgs("0002_notes.up.sql").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	applied, err := m.Up(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"0002_notes.up.sql"}, applied)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpRollsBackFailedFile(t *testing.T) {
	m, mock := newMock(t)

	mock.ExpectExec(m.createTableQuery()).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT name FROM schema_migrations").
		WillReturnRows(sqlmock.NewRows([]string{"name"}))
	mock.ExpectBegin()
	mock.ExpectExec("CREATE TABLE a (id int)").WillReturnError(errors.New("syntax error"))
	mock.ExpectRollback()

	_, err := m.Up(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "0001_init.up.sql")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpNothingPending(t *testing.T) {
	m, mock := newMock(t)

	mock.ExpectExec(m.createTableQuery()).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT name FROM schema_migrations").
		WillReturnRows(sqlmock.NewRows([]string{"name"}).AddRow("0001_init.up.sql").AddRow("0002_notes.up.sql"))

	applied, err := m.Up(context.Background())
	require.NoError(t, err)
	assert.Empty(t, applied)
	assert.NoError(t, mock.ExpectationsWereMet())
}
