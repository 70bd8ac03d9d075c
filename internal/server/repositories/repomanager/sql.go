package repomanager

import (
	"context"
	"database/sql"
	"errors"

	"github.com/dmitrijs2005/infrakeeper/internal/cryptox"
	"github.com/dmitrijs2005/infrakeeper/internal/dbx"
	"github.com/dmitrijs2005/infrakeeper/internal/logging"
	"github.com/dmitrijs2005/infrakeeper/internal/server/migrations"
	"github.com/dmitrijs2005/infrakeeper/internal/server/repositories/credentials"
	"github.com/dmitrijs2005/infrakeeper/internal/server/repositories/notes"
	"github.com/dmitrijs2005/infrakeeper/internal/server/repositories/operators"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"
)

// SQLRepositoryManager vends SQL-backed repositories bound either to the
// pool or, inside WithTx, to a transaction.
type SQLRepositoryManager struct {
	db      *sql.DB
	q       dbx.DBTX
	dialect dbx.Dialect
	sealer  *cryptox.Sealer
	logger  logging.Logger
}

// sqlOpen is a seam for tests.
var sqlOpen = sql.Open

// NewSQLRepositoryManager opens the database named by dsn.
func NewSQLRepositoryManager(dsn string, sealer *cryptox.Sealer, l logging.Logger) (*SQLRepositoryManager, error) {
	dialect, driverDSN, err := dbx.DialectFromDSN(dsn)
	if err != nil {
		return nil, err
	}
	db, err := sqlOpen(string(dialect), driverDSN)
	if err != nil {
		return nil, err
	}
	if dialect == dbx.SQLite {
		// modernc serialises writers; one connection avoids SQLITE_BUSY.
		db.SetMaxOpenConns(1)
	}
	return NewSQLRepositoryManagerFromDB(db, dialect, sealer, l), nil
}

// NewSQLRepositoryManagerFromDB wraps an already opened pool.
func NewSQLRepositoryManagerFromDB(db *sql.DB, dialect dbx.Dialect, sealer *cryptox.Sealer, l logging.Logger) *SQLRepositoryManager {
	return &SQLRepositoryManager{db: db, q: db, dialect: dialect, sealer: sealer, logger: l.With("module", "migrations")}
}

func (m *SQLRepositoryManager) Credentials() credentials.Repository {
	return credentials.NewSQLRepository(m.q, m.dialect, m.sealer)
}

func (m *SQLRepositoryManager) Notes() notes.Repository {
	return notes.NewSQLRepository(m.q, m.dialect)
}

func (m *SQLRepositoryManager) Operators() operators.Repository {
	return operators.NewSQLRepository(m.q, m.dialect)
}

func (m *SQLRepositoryManager) WithTx(ctx context.Context, fn func(ctx context.Context, m RepositoryManager) error) error {
	return dbx.WithTx(ctx, m.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		scoped := *m
		scoped.q = tx
		return fn(ctx, &scoped)
	})
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// RunMigrations sets up goose with the embedded migrations for the dialect
// and runs them. goose output goes to the manager's logger.
func (m *SQLRepositoryManager) RunMigrations(ctx context.Context) error {
	goose.SetLogger(gooseLogger{ctx: ctx, logger: m.logger})
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect(string(m.dialect)); err != nil {
		return err
	}
	return gooseUpContext(ctx, m.db, migrations.Dir(string(m.dialect)))
}

func (m *SQLRepositoryManager) Close() error {
	if m.q != m.db {
		return errors.New("close called on a transaction-scoped manager")
	}
	return m.db.Close()
}
