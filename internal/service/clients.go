package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/christianmoraless/wallet-api/internal/db"
	"github.com/christianmoraless/wallet-api/internal/models"
	"github.com/christianmoraless/wallet-api/internal/repository"
	"github.com/google/uuid"
)

// RegisterClientRequest carries the fields needed to open a wallet
type RegisterClientRequest struct {
	Documento string
	Celular   string
	Email     string
	Name      string
}

// ClientService handles wallet client registration
type ClientService struct {
	db     *db.DB
	logger *slog.Logger
}

// NewClientService creates a new ClientService
func NewClientService(database *db.DB, logger *slog.Logger) *ClientService {
	return &ClientService{
		db:     database,
		logger: logger,
	}
}

// Register creates a new wallet client with a zero balance
func (s *ClientService) Register(ctx context.Context, req RegisterClientRequest) (*models.Account, error) {
	repo := repository.NewAccountRepository(s.db)
	return s.performRegister(ctx, repo, req)
}

// performRegister contains the core registration business logic
func (s *ClientService) performRegister(
	ctx context.Context,
	accountRepo repository.AccountRepository,
	req RegisterClientRequest,
) (*models.Account, error) {
	if err := ValidateDigits("documento", req.Documento); err != nil {
		return nil, &ServiceError{
			Code:    ErrCodeInvalidClient,
			Message: err.Error(),
		}
	}
	if err := ValidateDigits("celular", req.Celular); err != nil {
		return nil, &ServiceError{
			Code:    ErrCodeInvalidClient,
			Message: err.Error(),
		}
	}
	if !strings.Contains(req.Email, "@") {
		return nil, &ServiceError{
			Code:    ErrCodeInvalidClient,
			Message: "invalid email address",
		}
	}
	if strings.TrimSpace(req.Name) == "" {
		return nil, &ServiceError{
			Code:    ErrCodeInvalidClient,
			Message: "name cannot be empty",
		}
	}

	account := &models.Account{
		ID:        uuid.New(),
		Documento: req.Documento,
		Celular:   req.Celular,
		Email:     req.Email,
		Name:      req.Name,
		Balance:   0,
	}

	if err := accountRepo.Create(ctx, account); err != nil {
		if errors.Is(err, models.ErrDuplicateEntry) {
			return nil, &ServiceError{
				Code:    ErrCodeDuplicateClient,
				Message: fmt.Sprintf("a client already exists with documento %s or email %s", req.Documento, req.Email),
			}
		}
		return nil, &ServiceError{
			Code:    ErrCodeInternalError,
			Message: "failed to register client",
			Err:     err,
		}
	}

	s.logger.Info("wallet client registered", "documento", account.Documento)

	return account, nil
}
