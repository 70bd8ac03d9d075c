package notes

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/infrakeeper/internal/common"
	"github.com/dmitrijs2005/infrakeeper/internal/dbx"
	"github.com/dmitrijs2005/infrakeeper/internal/models"
)

const selectColumns = `SELECT id, associated_type, associated_id, severity, note, created_by, created_at
	FROM notes`

// SQLRepository implements Repository over dbx.DBTX.
type SQLRepository struct {
	db      dbx.DBTX
	dialect dbx.Dialect
}

func NewSQLRepository(db dbx.DBTX, dialect dbx.Dialect) *SQLRepository {
	return &SQLRepository{db: db, dialect: dialect}
}

type scanner interface {
	Scan(dest ...any) error
}

func scanNote(row scanner) (*models.Note, error) {
	n := &models.Note{}
	var kind, severity string
	if err := row.Scan(&n.ID, &kind, &n.Association.ID, &severity, &n.Note, &n.CreatedBy, &n.CreatedAt); err != nil {
		return nil, err
	}
	n.Association.Kind = models.Kind(kind)
	n.Severity = models.Severity(severity)
	return n, nil
}

func (r *SQLRepository) query(ctx context.Context, query string, args ...any) ([]*models.Note, error) {
	rows, err := r.db.QueryContext(ctx, r.dialect.Rebind(query), args...)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	out := []*models.Note{}
	for rows.Next() {
		n, err := scanNote(rows)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		out = append(out, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return out, nil
}

func (r *SQLRepository) List(ctx context.Context, a models.Association) ([]*models.Note, error) {
	return r.query(ctx, selectColumns+`
	WHERE associated_type = $1 AND associated_id = $2
	ORDER BY created_at DESC, id DESC`, string(a.Kind), a.ID)
}

func (r *SQLRepository) ListAll(ctx context.Context) ([]*models.Note, error) {
	return r.query(ctx, selectColumns+` ORDER BY created_at DESC, id DESC`)
}

func (r *SQLRepository) Get(ctx context.Context, id int64) (*models.Note, error) {
	n, err := scanNote(r.db.QueryRowContext(ctx, r.dialect.Rebind(selectColumns+` WHERE id = $1`), id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return n, nil
}

func (r *SQLRepository) Create(ctx context.Context, n *models.Note) (*models.Note, error) {
	query := `INSERT INTO notes (associated_type, associated_id, severity, note, created_by, created_at)
	VALUES ($1, $2, $3, $4, $5, $6)
	RETURNING id`

	out := n.Clone()
	err := r.db.QueryRowContext(ctx, r.dialect.Rebind(query),
		string(n.Association.Kind), n.Association.ID, string(n.Severity), n.Note, n.CreatedBy, n.CreatedAt,
	).Scan(&out.ID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return out, nil
}

func (r *SQLRepository) miss(ctx context.Context, id int64) error {
	var n int
	err := r.db.QueryRowContext(ctx, r.dialect.Rebind(`SELECT COUNT(*) FROM notes WHERE id = $1`), id).Scan(&n)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}
	return common.ErrAssociationMismatch
}

func (r *SQLRepository) Update(ctx context.Context, n *models.Note) (*models.Note, error) {
	query := `UPDATE notes SET severity = $1, note = $2
	WHERE id = $3 AND associated_type = $4 AND associated_id = $5`

	res, err := r.db.ExecContext(ctx, r.dialect.Rebind(query),
		string(n.Severity), n.Note, n.ID, string(n.Association.Kind), n.Association.ID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	if affected == 0 {
		return nil, r.miss(ctx, n.ID)
	}
	return r.Get(ctx, n.ID)
}

func (r *SQLRepository) Delete(ctx context.Context, a models.Association, id int64) error {
	query := `DELETE FROM notes WHERE id = $1 AND associated_type = $2 AND associated_id = $3`

	res, err := r.db.ExecContext(ctx, r.dialect.Rebind(query), id, string(a.Kind), a.ID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if affected == 0 {
		return r.miss(ctx, id)
	}
	return nil
}

func (r *SQLRepository) Counts(ctx context.Context) (map[models.Association]int, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT associated_type, associated_id, COUNT(*) FROM notes
	GROUP BY associated_type, associated_id`)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	out := make(map[models.Association]int)
	for rows.Next() {
		var kind string
		var a models.Association
		var n int
		if err := rows.Scan(&kind, &a.ID, &n); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		a.Kind = models.Kind(kind)
		out[a] = n
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return out, nil
}

func (r *SQLRepository) CountBySeverity(ctx context.Context) (map[models.Severity]int, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT severity, COUNT(*) FROM notes GROUP BY severity`)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	out := make(map[models.Severity]int)
	for rows.Next() {
		var s string
		var n int
		if err := rows.Scan(&s, &n); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		out[models.Severity(s)] = n
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return out, nil
}
