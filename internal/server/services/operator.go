package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/infrakeeper/internal/common"
	"github.com/dmitrijs2005/infrakeeper/internal/cryptox"
	"github.com/dmitrijs2005/infrakeeper/internal/logging"
	"github.com/dmitrijs2005/infrakeeper/internal/models"
	"github.com/dmitrijs2005/infrakeeper/internal/server/auth"
	"github.com/dmitrijs2005/infrakeeper/internal/server/config"
	"github.com/dmitrijs2005/infrakeeper/internal/server/repositories/repomanager"
)

// OperatorService signs operators in and verifies their access tokens.
type OperatorService struct {
	repos         repomanager.RepositoryManager
	logger        logging.Logger
	jwtSecret     []byte
	tokenValidity time.Duration
}

func NewOperatorService(m repomanager.RepositoryManager, l logging.Logger, cfg *config.Config) *OperatorService {
	return &OperatorService{
		repos:         m,
		logger:        l.With("module", "operators"),
		jwtSecret:     []byte(cfg.SecretKey),
		tokenValidity: cfg.AccessTokenValidityDuration,
	}
}

// EnsureOperator creates the operator unless one with that username
// already exists. The stored password is left alone if it does.
func (s *OperatorService) EnsureOperator(ctx context.Context, username, password string) error {
	if username == "" || password == "" {
		return fmt.Errorf("%w: operator username and password are required", common.ErrorValidation)
	}
	return s.repos.WithTx(ctx, func(ctx context.Context, m repomanager.RepositoryManager) error {
		_, err := m.Operators().GetByUsername(ctx, username)
		if err == nil {
			return nil
		}
		if !errors.Is(err, common.ErrorNotFound) {
			return err
		}

		hash, err := cryptox.HashPassword(password)
		if err != nil {
			return err
		}
		op, err := m.Operators().Create(ctx, &models.Operator{
			Username:     username,
			PasswordHash: hash,
			CreatedAt:    time.Now().UTC(),
		})
		if err != nil {
			return fmt.Errorf("error creating operator: %w", err)
		}
		s.logger.Info(ctx, "Operator seeded", "username", username, "id", op.ID)
		return nil
	})
}

// Login checks the password and returns a signed access token.
// Unknown users and wrong passwords both yield common.ErrorUnauthorized.
func (s *OperatorService) Login(ctx context.Context, username, password string) (string, error) {
	op, err := s.repos.Operators().GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", common.ErrorUnauthorized
		}
		return "", common.ErrorInternal
	}
	if !cryptox.VerifyPassword(op.PasswordHash, password) {
		s.logger.Warn(ctx, "Failed login", "username", username)
		return "", common.ErrorUnauthorized
	}

	token, err := auth.GenerateToken(op.ID, op.Username, s.jwtSecret, s.tokenValidity)
	if err != nil {
		return "", common.ErrorInternal
	}
	s.logger.Info(ctx, "Operator logged in", "username", username)
	return token, nil
}

// Authenticate returns the operator id carried by a valid token.
func (s *OperatorService) Authenticate(token string) (int64, error) {
	if token == "" {
		return 0, common.ErrorUnauthorized
	}
	return auth.OperatorIDFromToken(token, s.jwtSecret)
}
