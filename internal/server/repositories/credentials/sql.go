package credentials

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/infrakeeper/internal/common"
	"github.com/dmitrijs2005/infrakeeper/internal/cryptox"
	"github.com/dmitrijs2005/infrakeeper/internal/dbx"
	"github.com/dmitrijs2005/infrakeeper/internal/models"
)

const selectColumns = `SELECT id, associated_type, associated_id, username, password, note,
		hidden_display, port, protocol_id, url, last_updated
	FROM credentials`

// SQLRepository implements Repository over dbx.DBTX (satisfied by *sql.DB
// or *sql.Tx). Queries are written with $N placeholders and rebound for
// the dialect.
type SQLRepository struct {
	db      dbx.DBTX
	dialect dbx.Dialect
	sealer  *cryptox.Sealer
}

// NewSQLRepository constructs a repository bound to the given DBTX. The
// sealer encrypts passwords before they are written.
func NewSQLRepository(db dbx.DBTX, dialect dbx.Dialect, sealer *cryptox.Sealer) *SQLRepository {
	return &SQLRepository{db: db, dialect: dialect, sealer: sealer}
}

type scanner interface {
	Scan(dest ...any) error
}

func (r *SQLRepository) scan(row scanner) (*models.Credential, error) {
	c := &models.Credential{}
	var kind string
	var protocol sql.NullInt64
	if err := row.Scan(&c.ID, &kind, &c.Association.ID, &c.Username, &c.Password, &c.Note,
		&c.HiddenDisplay, &c.Port, &protocol, &c.URL, &c.LastUpdated); err != nil {
		return nil, err
	}
	c.Association.Kind = models.Kind(kind)
	if protocol.Valid {
		id := protocol.Int64
		c.ProtocolID = &id
	}
	plain, err := r.sealer.Open(c.Password)
	if err != nil {
		return nil, fmt.Errorf("credential %d: %w", c.ID, err)
	}
	c.Password = plain
	return c, nil
}

func (r *SQLRepository) query(ctx context.Context, query string, args ...any) ([]*models.Credential, error) {
	rows, err := r.db.QueryContext(ctx, r.dialect.Rebind(query), args...)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	out := []*models.Credential{}
	for rows.Next() {
		c, err := r.scan(rows)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return out, nil
}

func (r *SQLRepository) List(ctx context.Context, a models.Association) ([]*models.Credential, error) {
	return r.query(ctx, selectColumns+`
	WHERE associated_type = $1 AND associated_id = $2
	ORDER BY id`, string(a.Kind), a.ID)
}

func (r *SQLRepository) ListAll(ctx context.Context) ([]*models.Credential, error) {
	return r.query(ctx, selectColumns+` ORDER BY id`)
}

func (r *SQLRepository) Get(ctx context.Context, id int64) (*models.Credential, error) {
	row := r.db.QueryRowContext(ctx, r.dialect.Rebind(selectColumns+` WHERE id = $1`), id)
	c, err := r.scan(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return c, nil
}

func nullable(id *int64) any {
	if id == nil {
		return nil
	}
	return *id
}

func (r *SQLRepository) Create(ctx context.Context, c *models.Credential) (*models.Credential, error) {
	sealed, err := r.sealer.Seal(c.Password)
	if err != nil {
		return nil, err
	}

	query := `INSERT INTO credentials (associated_type, associated_id, username, password, note,
		hidden_display, port, protocol_id, url, last_updated)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	RETURNING id`

	out := c.Clone()
	err = r.db.QueryRowContext(ctx, r.dialect.Rebind(query),
		string(c.Association.Kind), c.Association.ID, c.Username, sealed, c.Note,
		c.HiddenDisplay, c.Port, nullable(c.ProtocolID), c.URL, c.LastUpdated,
	).Scan(&out.ID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return out, nil
}

// miss tells a missing id apart from one filed under another association,
// after a scoped statement affected no rows.
func (r *SQLRepository) miss(ctx context.Context, id int64) error {
	var n int
	err := r.db.QueryRowContext(ctx, r.dialect.Rebind(`SELECT COUNT(*) FROM credentials WHERE id = $1`), id).Scan(&n)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}
	return common.ErrAssociationMismatch
}

func (r *SQLRepository) Update(ctx context.Context, c *models.Credential) (*models.Credential, error) {
	sealed, err := r.sealer.Seal(c.Password)
	if err != nil {
		return nil, err
	}

	query := `UPDATE credentials
	SET username = $1, password = $2, note = $3, hidden_display = $4, port = $5,
		protocol_id = $6, url = $7, last_updated = $8
	WHERE id = $9 AND associated_type = $10 AND associated_id = $11`

	res, err := r.db.ExecContext(ctx, r.dialect.Rebind(query),
		c.Username, sealed, c.Note, c.HiddenDisplay, c.Port,
		nullable(c.ProtocolID), c.URL, c.LastUpdated,
		c.ID, string(c.Association.Kind), c.Association.ID,
	)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	if n == 0 {
		return nil, r.miss(ctx, c.ID)
	}
	return c.Clone(), nil
}

func (r *SQLRepository) Delete(ctx context.Context, a models.Association, id int64) error {
	query := `DELETE FROM credentials WHERE id = $1 AND associated_type = $2 AND associated_id = $3`

	res, err := r.db.ExecContext(ctx, r.dialect.Rebind(query), id, string(a.Kind), a.ID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n == 0 {
		return r.miss(ctx, id)
	}
	return nil
}

func (r *SQLRepository) Counts(ctx context.Context) (map[models.Association]int, error) {
	query := `SELECT associated_type, associated_id, COUNT(*) FROM credentials
	GROUP BY associated_type, associated_id`

	rows, err := r.db.QueryContext(ctx, query)
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
