package credentials

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/infrakeeper/internal/common"
	"github.com/dmitrijs2005/infrakeeper/internal/cryptox"
	"github.com/dmitrijs2005/infrakeeper/internal/dbx"
	"github.com/dmitrijs2005/infrakeeper/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var columns = []string{"id", "associated_type", "associated_id", "username", "password", "note",
	"hidden_display", "port", "protocol_id", "url", "last_updated"}

func newRepoWithMock(t *testing.T, dialect dbx.Dialect) (*SQLRepository, sqlmock.Sqlmock, *cryptox.Sealer) {
	t.Helper()
	conn, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	sealer, err := cryptox.NewSealer("test-secret")
	require.NoError(t, err)
	return NewSQLRepository(conn, dialect, sealer), mock, sealer
}

func TestSQL_List_OpensPasswords(t *testing.T) {
	repo, mock, sealer := newRepoWithMock(t, dbx.Postgres)

	sealed, err := sealer.Seal("hunter2")
	require.NoError(t, err)
	now := time.Now().UTC()
	ssh := int64(1)

	mock.ExpectQuery(`(?s)SELECT id, associated_type, .* FROM credentials\s+WHERE associated_type = \$1 AND associated_id = \$2\s+ORDER BY id`).
		WithArgs("virtual_appliance", int64(1)).
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow(int64(3), "virtual_appliance", int64(1), "root", sealed, "", true, 22, ssh, "", now).
			AddRow(int64(5), "virtual_appliance", int64(1), "deploy", "", "ci", false, 2222, nil, "", now))

	got, err := repo.List(context.Background(), web)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "hunter2", got[0].Password)
	require.NotNil(t, got[0].ProtocolID)
	assert.Equal(t, int64(1), *got[0].ProtocolID)
	assert.Equal(t, web, got[1].Association)
	assert.Empty(t, got[1].Password)
	assert.Nil(t, got[1].ProtocolID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQL_List_SQLiteRebind(t *testing.T) {
	repo, mock, _ := newRepoWithMock(t, dbx.SQLite)

	mock.ExpectQuery(`WHERE associated_type = \? AND associated_id = \?`).
		WithArgs("url", int64(4)).
		WillReturnRows(sqlmock.NewRows(columns))

	got, err := repo.List(context.Background(), models.Association{Kind: models.KindURL, ID: 4})
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQL_Get_NotFound(t *testing.T) {
	repo, mock, _ := newRepoWithMock(t, dbx.Postgres)

	mock.ExpectQuery(`FROM credentials WHERE id = \$1`).
		WithArgs(int64(9)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.Get(context.Background(), 9)
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestSQL_Create_SealsPassword(t *testing.T) {
	repo, mock, _ := newRepoWithMock(t, dbx.Postgres)
	now := time.Now().UTC()

	mock.ExpectQuery(`(?s)INSERT INTO credentials .* VALUES \(\$1, \$2, \$3, \$4, \$5, \$6, \$7, \$8, \$9, \$10\)\s+RETURNING id`).
		WithArgs("virtual_appliance", int64(1), "root", sqlmock.AnyArg(), "", true, 22, nil, "", now).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(11)))

	in := &models.Credential{Association: web, Username: "root", Password: "pw", HiddenDisplay: true, Port: 22, LastUpdated: now}
	got, err := repo.Create(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, int64(11), got.ID)
	assert.Equal(t, "pw", got.Password)
	assert.Zero(t, in.ID, "input is not mutated")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQL_Create_DBError(t *testing.T) {
	repo, mock, _ := newRepoWithMock(t, dbx.Postgres)

	mock.ExpectQuery(`INSERT INTO credentials`).WillReturnError(errors.New("db down"))

	_, err := repo.Create(context.Background(), &models.Credential{Association: web})
	assert.ErrorContains(t, err, "db error: db down")
}

func TestSQL_Update(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		repo, mock, _ := newRepoWithMock(t, dbx.Postgres)
		mock.ExpectExec(`(?s)UPDATE credentials\s+SET username = \$1, .*WHERE id = \$9 AND associated_type = \$10 AND associated_id = \$11`).
			WillReturnResult(sqlmock.NewResult(0, 1))

		got, err := repo.Update(context.Background(), &models.Credential{ID: 3, Association: web, Username: "admin"})
		require.NoError(t, err)
		assert.Equal(t, "admin", got.Username)
	})

	t.Run("mismatch", func(t *testing.T) {
		repo, mock, _ := newRepoWithMock(t, dbx.Postgres)
		mock.ExpectExec(`UPDATE credentials`).WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery(`SELECT COUNT\(\*\) FROM credentials WHERE id = \$1`).
			WithArgs(int64(3)).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

		_, err := repo.Update(context.Background(), &models.Credential{ID: 3, Association: db})
		assert.ErrorIs(t, err, common.ErrAssociationMismatch)
	})

	t.Run("not found", func(t *testing.T) {
		repo, mock, _ := newRepoWithMock(t, dbx.Postgres)
		mock.ExpectExec(`UPDATE credentials`).WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery(`SELECT COUNT\(\*\) FROM credentials`).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

		_, err := repo.Update(context.Background(), &models.Credential{ID: 3, Association: web})
		assert.ErrorIs(t, err, common.ErrorNotFound)
	})
}

func TestSQL_Delete(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		repo, mock, _ := newRepoWithMock(t, dbx.Postgres)
		mock.ExpectExec(`DELETE FROM credentials WHERE id = \$1 AND associated_type = \$2 AND associated_id = \$3`).
			WithArgs(int64(3), "virtual_appliance", int64(1)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, repo.Delete(context.Background(), web, 3))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("already deleted", func(t *testing.T) {
		repo, mock, _ := newRepoWithMock(t, dbx.Postgres)
		mock.ExpectExec(`DELETE FROM credentials`).WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery(`SELECT COUNT\(\*\) FROM credentials`).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

		assert.ErrorIs(t, repo.Delete(context.Background(), web, 3), common.ErrorNotFound)
	})

	t.Run("exec error", func(t *testing.T) {
		repo, mock, _ := newRepoWithMock(t, dbx.Postgres)
		mock.ExpectExec(`DELETE FROM credentials`).WillReturnError(errors.New("boom"))

		assert.ErrorContains(t, repo.Delete(context.Background(), web, 3), "boom")
	})
}

func TestSQL_Counts(t *testing.T) {
	repo, mock, _ := newRepoWithMock(t, dbx.Postgres)

	mock.ExpectQuery(`(?s)SELECT associated_type, associated_id, COUNT\(\*\) FROM credentials\s+GROUP BY`).
		WillReturnRows(sqlmock.NewRows([]string{"associated_type", "associated_id", "count"}).
			AddRow("virtual_appliance", int64(1), 2).
			AddRow("vmware_server", int64(1), 1))

	got, err := repo.Counts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, map[models.Association]int{web: 2, srv: 1}, got)
}
