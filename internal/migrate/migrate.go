package migrate

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	pkgLog "directory-api/pkg/log"
	postgresPkg "directory-api/pkg/postgre"
)

const (
	defaultTable = "schema_migrations"
	upSuffix     = ".up.sql"
)

// Manager applies the *.up.sql files of an fs.FS in name order, once each.
type Manager struct {
	l     pkgLog.Logger
	db    *sql.DB
	files fs.FS
	table string
}

type Option func(*Manager)

func WithTable(name string) Option {
	return func(m *Manager) {
		if name != "" {
			m.table = name
		}
	}
}

func New(l pkgLog.Logger, db *sql.DB, files fs.FS, opts ...Option) *Manager {
	m := &Manager{
		l:     l,
		db:    db,
		files: files,
		table: defaultTable,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Up applies pending migrations. Each file and its bookkeeping row commit together.
func (m *Manager) Up(ctx context.Context) ([]string, error) {
	if _, err := m.db.ExecContext(ctx, m.createTableQuery()); err != nil {
		return nil, fmt.Errorf("ensure %s: %w", m.table, err)
	}

	executed, err := m.executed(ctx)
	if err != nil {
		return nil, err
	}

	names, err := pending(m.files, executed)
	if err != nil {
		return nil, err
	}

	for _, name := range names {
		body, err := fs.ReadFile(m.files, name)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", name, err)
		}

		err = postgresPkg.RunInTx(ctx, m.db, func(ctx context.Context) error {
			conn := postgresPkg.Conn(ctx, m.db)
			if _, err := conn.ExecContext(ctx, string(body)); err != nil {
				return err
			}
			_, err := conn.ExecContext(ctx, m.insertQuery(), name)
			return err
		})
		if err != nil {
			return nil, fmt.Errorf("apply migration %s: %w", name, err)
		}
		m.l.Infof(ctx, "internal.migrate.Up: applied %s", name)
	}
	return names, nil
}

func (m *Manager) executed(ctx context.Context) (map[string]bool, error) {
	rows, err := m.db.QueryContext(ctx, m.selectQuery())
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", m.table, err)
	}
	defer rows.Close()

	out := make(map[string]bool)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		out[name] = true
	}
	return out, rows.Err()
}

func pending(files fs.FS, executed map[string]bool) ([]string, error) {
	entries, err := fs.ReadDir(files, ".")
	if err != nil {
		return nil, fmt.Errorf("read migrations: %w", err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), upSuffix) || executed[e.Name()] {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names, nil
}

func (m *Manager) createTableQuery() string {
	return fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (name text PRIMARY KEY, applied_at timestamptz NOT NULL DEFAULT now())`, m.table)
}

func (m *Manager) selectQuery() string {
	return fmt.Sprintf(`SELECT name FROM %s`, m.table)
}

func (m *Manager) insertQuery() string {
	return fmt.Sprintf(`INSERT INTO %s (name) VALUES ($1)`, m.table)
}
