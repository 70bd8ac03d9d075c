package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dmitrijs2005/infrakeeper/internal/common"
	"github.com/dmitrijs2005/infrakeeper/internal/models"
	"github.com/dmitrijs2005/infrakeeper/internal/server/config"
	"github.com/dmitrijs2005/infrakeeper/internal/server/repositories/operators"
	"github.com/dmitrijs2005/infrakeeper/internal/server/repositories/repomanager"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOperatorService(t *testing.T, m repomanager.RepositoryManager) *OperatorService {
	t.Helper()
	cfg := &config.Config{SecretKey: "k", AccessTokenValidityDuration: time.Hour}
	return NewOperatorService(m, nopLogger{}, cfg)
}

func TestEnsureOperator_Idempotent(t *testing.T) {
	ctx := context.Background()
	m := repomanager.NewMemoryRepositoryManager()
	s := newOperatorService(t, m)

	require.NoError(t, s.EnsureOperator(ctx, "admin", "first"))
	require.NoError(t, s.EnsureOperator(ctx, "admin", "second"))

	_, err := s.Login(ctx, "admin", "first")
	assert.NoError(t, err, "existing password is kept")
	_, err = s.Login(ctx, "admin", "second")
	assert.ErrorIs(t, err, common.ErrorUnauthorized)

	assert.ErrorIs(t, s.EnsureOperator(ctx, "", "x"), common.ErrorValidation)
}

func TestLogin_IssuesTokenForOperator(t *testing.T) {
	ctx := context.Background()
	s := newOperatorService(t, repomanager.NewMemoryRepositoryManager())
	require.NoError(t, s.EnsureOperator(ctx, "admin", "pw"))

	token, err := s.Login(ctx, "admin", "pw")
	require.NoError(t, err)

	id, err := s.Authenticate(token)
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)
}

func TestLogin_Failures(t *testing.T) {
	ctx := context.Background()
	s := newOperatorService(t, repomanager.NewMemoryRepositoryManager())
	require.NoError(t, s.EnsureOperator(ctx, "admin", "pw"))

	_, err := s.Login(ctx, "admin", "wrong")
	assert.ErrorIs(t, err, common.ErrorUnauthorized)

	_, err = s.Login(ctx, "ghost", "pw")
	assert.ErrorIs(t, err, common.ErrorUnauthorized)

	_, err = s.Authenticate("")
	assert.ErrorIs(t, err, common.ErrorUnauthorized)

	_, err = s.Authenticate("garbage")
	assert.ErrorIs(t, err, common.ErrInvalidToken)
}

type brokenOperators struct{ operators.Repository }

func (brokenOperators) GetByUsername(context.Context, string) (*models.Operator, error) {
	return nil, errors.New("db down")
}

type brokenManager struct{ *repomanager.MemoryRepositoryManager }

func (brokenManager) Operators() operators.Repository { return brokenOperators{} }

func TestLogin_RepositoryErrorIsInternal(t *testing.T) {
	s := newOperatorService(t, brokenManager{repomanager.NewMemoryRepositoryManager()})

	_, err := s.Login(context.Background(), "admin", "pw")
	assert.ErrorIs(t, err, common.ErrorInternal)
}
