package service

import (
	"context"
	"crypto/subtle"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/christianmoraless/wallet-api/internal/config"
	"github.com/christianmoraless/wallet-api/internal/db"
	"github.com/christianmoraless/wallet-api/internal/models"
	"github.com/christianmoraless/wallet-api/internal/notify"
	"github.com/christianmoraless/wallet-api/internal/repository"
	"github.com/google/uuid"
)

// PaymentRequestResult is returned to the payer after a payment request
type PaymentRequestResult struct {
	Message   string
	SessionID uuid.UUID
}

// pendingRequest carries the state needed for the post-commit code dispatch
type pendingRequest struct {
	Session *models.PaymentSession
	Payer   *models.Account
}

// settlement carries the state needed for the post-commit credit notice
type settlement struct {
	Session     *models.PaymentSession
	Payer       *models.Account
	Beneficiary *models.Account
}

// PaymentService drives the two-phase payment flow: request issues an OTP and
// opens a session, confirm settles both balance legs atomically.
type PaymentService struct {
	db       *db.DB
	otp      *OTPGenerator
	notifier notify.Notifier
	logger   *slog.Logger
	cfg      config.WalletConfig
}

// NewPaymentService creates a new PaymentService
func NewPaymentService(
	database *db.DB,
	cfg config.WalletConfig,
	otp *OTPGenerator,
	notifier notify.Notifier,
	logger *slog.Logger,
) *PaymentService {
	return &PaymentService{
		db:       database,
		cfg:      cfg,
		otp:      otp,
		notifier: notifier,
		logger:   logger,
	}
}

// RequestPayment opens a payment session from payer to beneficiary and
// dispatches the confirmation code to the payer's email.
//
// The payer documento comes from the authentication layer and is trusted; the
// beneficiary must be identified by its exact documento+celular pair so a
// mistyped contact cannot route money to the wrong account.
func (s *PaymentService) RequestPayment(
	ctx context.Context,
	payerDocumento, beneficiaryDocumento, beneficiaryCelular string,
	amount int64,
) (*PaymentRequestResult, error) {
	tx, err := s.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
	if err != nil {
		return nil, &ServiceError{
			Code:    ErrCodeInternalError,
			Message: fmt.Sprintf("failed to start transaction: %v", err),
		}
	}
	defer func() {
		_ = tx.Rollback() //nolint:errcheck // rollback error is not critical in defer
	}()

	txAccountRepo := repository.NewAccountRepository(tx)
	txSessionRepo := repository.NewSessionRepository(tx)

	pending, err := s.performRequest(ctx, txAccountRepo, txSessionRepo,
		payerDocumento, beneficiaryDocumento, beneficiaryCelular, amount)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, &ServiceError{
			Code:    ErrCodeInternalError,
			Message: fmt.Sprintf("failed to commit transaction: %v", err),
		}
	}

	// Dispatch only after the session is durable. A code must never reach the
	// payer for a session the commit then discarded, and a slow mail server
	// must not hold the transaction open.
	s.notifyOTP(ctx, pending)

	return &PaymentRequestResult{
		SessionID: pending.Session.SessionID,
		Message:   fmt.Sprintf("confirmation code sent to %s", pending.Payer.Email),
	}, nil
}

// performRequest contains the core payment request business logic
func (s *PaymentService) performRequest(
	ctx context.Context,
	accountRepo repository.AccountRepository,
	sessionRepo repository.SessionRepository,
	payerDocumento, beneficiaryDocumento, beneficiaryCelular string,
	amount int64,
) (*pendingRequest, error) {
	if err := ValidateAmount(amount, s.cfg.MinPaymentAmount); err != nil {
		return nil, &ServiceError{
			Code:    ErrCodeInvalidAmount,
			Message: err.Error(),
		}
	}

	payer, err := accountRepo.FindByDocumento(ctx, payerDocumento)
	if err != nil {
		return nil, &ServiceError{
			Code:    ErrCodeNotFound,
			Message: "payer account not found",
			Err:     err,
		}
	}

	beneficiary, err := accountRepo.FindByIdentity(ctx, beneficiaryDocumento, beneficiaryCelular)
	if err != nil {
		return nil, &ServiceError{
			Code:    ErrCodeNotFound,
			Message: "no client matches the provided documento and celular",
			Err:     err,
		}
	}

	if payer.Documento == beneficiary.Documento {
		return nil, &ServiceError{
			Code:    ErrCodeInvalidOperation,
			Message: "cannot send a payment to your own wallet",
		}
	}

	if payer.Balance < amount {
		return nil, &ServiceError{
			Code:    ErrCodeInsufficientFunds,
			Message: fmt.Sprintf("insufficient funds: balance %d, requested %d", payer.Balance, amount),
		}
	}

	code, err := s.otp.Generate()
	if err != nil {
		return nil, &ServiceError{
			Code:    ErrCodeInternalError,
			Message: "failed to generate confirmation code",
			Err:     err,
		}
	}

	session := &models.PaymentSession{
		SessionID:            uuid.New(),
		PayerDocumento:       payer.Documento,
		BeneficiaryDocumento: beneficiary.Documento,
		Amount:               amount,
		Code:                 code,
		Status:               models.SessionStatusPending,
		ExpiresAt:            time.Now().Add(s.cfg.SessionTTL),
	}

	if err := sessionRepo.Create(ctx, session); err != nil {
		return nil, &ServiceError{
			Code:    ErrCodeInternalError,
			Message: "failed to create payment session",
			Err:     err,
		}
	}

	return &pendingRequest{
		Session: session,
		Payer:   payer,
	}, nil
}

// notifyOTP sends the confirmation code once the session is committed.
// Delivery failure does not invalidate the session: the stored code remains
// valid and the session confirmable.
func (s *PaymentService) notifyOTP(ctx context.Context, pending *pendingRequest) {
	err := s.notifier.SendOTP(ctx, pending.Payer.Email, pending.Session.Code, pending.Payer.Name)
	if err != nil {
		s.logger.Warn("failed to deliver confirmation code",
			"error", err,
			"session_id", pending.Session.SessionID,
			"payer", pending.Payer.Documento,
		)
	}
}

// ConfirmPayment validates the session and code, then settles both legs of
// the transfer in one transaction. On a balance version conflict the whole
// read-validate-write sequence is retried a bounded number of times.
func (s *PaymentService) ConfirmPayment(ctx context.Context, sessionID uuid.UUID, code string) (*models.PaymentSession, error) {
	var lastErr error
	for attempt := 1; attempt <= s.cfg.MaxBalanceRetries; attempt++ {
		res, err := s.confirmOnce(ctx, sessionID, code)
		if err == nil {
			s.notifyCredit(ctx, res)
			return res.Session, nil
		}
		if !errors.Is(err, models.ErrConflict) {
			return nil, err
		}

		lastErr = err
		s.logger.Warn("balance version conflict during settlement, retrying",
			"session_id", sessionID,
			"attempt", attempt,
		)
	}

	return nil, &ServiceError{
		Code:    ErrCodeConflict,
		Message: "could not settle payment due to concurrent balance updates",
		Err:     lastErr,
	}
}

// confirmOnce runs a single settlement attempt inside its own transaction
func (s *PaymentService) confirmOnce(ctx context.Context, sessionID uuid.UUID, code string) (*settlement, error) {
	tx, err := s.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
	if err != nil {
		return nil, &ServiceError{
			Code:    ErrCodeInternalError,
			Message: fmt.Sprintf("failed to start transaction: %v", err),
		}
	}
	defer func() {
		_ = tx.Rollback() //nolint:errcheck // rollback error is not critical in defer
	}()

	txSessionRepo := repository.NewSessionRepository(tx)
	txAccountRepo := repository.NewAccountRepository(tx)
	txLedgerRepo := repository.NewLedgerRepository(tx)

	res, err := s.performConfirm(ctx, txSessionRepo, txAccountRepo, txLedgerRepo, sessionID, code)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, &ServiceError{
			Code:    ErrCodeInternalError,
			Message: fmt.Sprintf("failed to commit settlement: %v", err),
		}
	}

	return res, nil
}

// performConfirm contains the core settlement business logic
func (s *PaymentService) performConfirm(
	ctx context.Context,
	sessionRepo repository.SessionRepository,
	accountRepo repository.AccountRepository,
	ledgerRepo repository.LedgerRepository,
	sessionID uuid.UUID,
	code string,
) (*settlement, error) {
	session, err := sessionRepo.FindBySessionID(ctx, sessionID)
	if err != nil {
		return nil, &ServiceError{
			Code:    ErrCodeNotFound,
			Message: "payment session not found or expired, request a new payment",
			Err:     err,
		}
	}

	if session.Confirmed() {
		return nil, &ServiceError{
			Code:    ErrCodeAlreadyConfirmed,
			Message: "this payment session was already confirmed",
		}
	}

	if subtle.ConstantTimeCompare([]byte(session.Code), []byte(code)) != 1 {
		return nil, &ServiceError{
			Code:    ErrCodeInvalidCode,
			Message: "incorrect confirmation code",
		}
	}

	if session.Expired(time.Now()) {
		return nil, &ServiceError{
			Code:    ErrCodeSessionExpired,
			Message: "the confirmation code has expired, request a new payment",
		}
	}

	// Fresh read: time may have passed since the request and the balance may
	// have moved.
	payer, err := accountRepo.FindByDocumento(ctx, session.PayerDocumento)
	if err != nil {
		return nil, &ServiceError{
			Code:    ErrCodeNotFound,
			Message: "payer account not found",
			Err:     err,
		}
	}

	if payer.Balance < session.Amount {
		return nil, &ServiceError{
			Code:    ErrCodeInsufficientFunds,
			Message: "insufficient funds to complete the payment",
		}
	}

	if err := accountRepo.UpdateBalance(ctx, payer.Documento, payer.Balance-session.Amount, payer.Version); err != nil {
		if errors.Is(err, models.ErrConflict) {
			return nil, err
		}
		return nil, &ServiceError{
			Code:    ErrCodeInternalError,
			Message: "failed to debit payer",
			Err:     err,
		}
	}

	sent := &models.LedgerEntry{
		Documento:   payer.Documento,
		Type:        models.LedgerEntryTypePaymentSent,
		Amount:      session.Amount,
		ReferenceID: session.SessionID.String(),
		Counterpart: session.BeneficiaryDocumento,
		Description: fmt.Sprintf("payment to %s", session.BeneficiaryDocumento),
	}
	if err := ledgerRepo.Create(ctx, sent); err != nil {
		return nil, &ServiceError{
			Code:    ErrCodeInternalError,
			Message: "failed to record debit leg",
			Err:     err,
		}
	}

	// Fresh read of the beneficiary as well, so the credit is computed from
	// the current balance rather than anything captured earlier.
	beneficiary, err := accountRepo.FindByDocumento(ctx, session.BeneficiaryDocumento)
	if err != nil {
		return nil, s.settlementFailure(session, payer, err)
	}

	if err := accountRepo.UpdateBalance(ctx, beneficiary.Documento, beneficiary.Balance+session.Amount, beneficiary.Version); err != nil {
		if errors.Is(err, models.ErrConflict) {
			return nil, err
		}
		return nil, s.settlementFailure(session, payer, err)
	}

	received := &models.LedgerEntry{
		Documento:   beneficiary.Documento,
		Type:        models.LedgerEntryTypePaymentReceived,
		Amount:      session.Amount,
		ReferenceID: session.SessionID.String(),
		Counterpart: payer.Documento,
		Description: fmt.Sprintf("payment from %s", payer.Documento),
	}
	if err := ledgerRepo.Create(ctx, received); err != nil {
		return nil, s.settlementFailure(session, payer, err)
	}

	if err := sessionRepo.MarkConfirmed(ctx, session.SessionID); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, &ServiceError{
				Code:    ErrCodeAlreadyConfirmed,
				Message: "this payment session was already confirmed",
			}
		}
		return nil, &ServiceError{
			Code:    ErrCodeInternalError,
			Message: "failed to mark session confirmed",
			Err:     err,
		}
	}
	session.Status = models.SessionStatusConfirmed

	payer.Balance -= session.Amount
	payer.Version++
	beneficiary.Balance += session.Amount
	beneficiary.Version++

	return &settlement{
		Session:     session,
		Payer:       payer,
		Beneficiary: beneficiary,
	}, nil
}

// settlementFailure records a credit leg that failed after the debit leg
// succeeded. The enclosing transaction rolls the debit back, so no funds are
// stranded, but the condition is logged with full context for reconciliation
// and surfaced as an error, never as success.
func (s *PaymentService) settlementFailure(session *models.PaymentSession, payer *models.Account, err error) error {
	s.logger.Error("settlement inconsistency: credit leg failed after debit",
		"error", err,
		"session_id", session.SessionID,
		"payer", payer.Documento,
		"beneficiary", session.BeneficiaryDocumento,
		"amount", session.Amount,
	)

	return &ServiceError{
		Code:    ErrCodeSettlementInconsistency,
		Message: "settlement aborted: credit leg failed after debit, transaction rolled back",
		Err:     err,
	}
}

// notifyCredit sends the best-effort credit notice to the beneficiary
func (s *PaymentService) notifyCredit(ctx context.Context, res *settlement) {
	err := s.notifier.SendPaymentReceived(ctx, res.Beneficiary.Email, res.Beneficiary.Name, res.Session.Amount)
	if err != nil {
		s.logger.Warn("failed to deliver credit notification",
			"error", err,
			"session_id", res.Session.SessionID,
			"beneficiary", res.Beneficiary.Documento,
		)
	}
}
