// Package transactionservice manages business logic layer of transactions.
package transactionservice

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/finwise/wallet-tracker/internal/datefilter"
	"github.com/finwise/wallet-tracker/internal/domain"
	"github.com/finwise/wallet-tracker/internal/validate"
)

// Repo provides data access layer interface needed by transaction service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package transactionservice
type Repo interface {
	Create(ctx context.Context, arg domain.CreateTransactionParams) (domain.Transaction, error)
	Get(ctx context.Context, id uuid.UUID) (domain.Transaction, error)
	List(ctx context.Context, ownerID uuid.UUID) ([]domain.Transaction, error)
	Update(ctx context.Context, id uuid.UUID, arg domain.CreateTransactionParams) (domain.Transaction, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// Service facilitates transaction service layer logic.
type Service struct {
	repo Repo
	now  func() time.Time
}

// New returns transaction service struct to manage transaction business logic.
// The clock is injected so validation against "now" is deterministic in tests.
func New(tr Repo, now func() time.Time) *Service {
	return &Service{
		repo: tr,
		now:  now,
	}
}

// Create validates the raw form input and persists a new transaction for the
// given owner. Expected bad input comes back as field errors, not an error.
func (s *Service) Create(ctx context.Context, ownerID uuid.UUID, in validate.TransactionInput) (domain.Transaction, validate.FieldErrors, error) {
	norm, fieldErrs := validate.Transaction(in, s.now())
	if fieldErrs != nil {
		return domain.Transaction{}, fieldErrs, nil
	}

	tx, err := s.repo.Create(ctx, domain.CreateTransactionParams{
		OwnerID:    ownerID,
		Kind:       norm.Kind,
		Amount:     norm.Amount,
		Note:       norm.Note,
		OccurredAt: norm.OccurredAt,
	})
	if err != nil {
		return domain.Transaction{}, nil, err
	}

	return tx, nil, nil
}

// Update re-validates all fields and overwrites the record. Same validation
// path as Create; last write wins.
func (s *Service) Update(ctx context.Context, id, ownerID uuid.UUID, in validate.TransactionInput) (domain.Transaction, validate.FieldErrors, error) {
	norm, fieldErrs := validate.Transaction(in, s.now())
	if fieldErrs != nil {
		return domain.Transaction{}, fieldErrs, nil
	}

	tx, err := s.repo.Update(ctx, id, domain.CreateTransactionParams{
		OwnerID:    ownerID,
		Kind:       norm.Kind,
		Amount:     norm.Amount,
		Note:       norm.Note,
		OccurredAt: norm.OccurredAt,
	})
	if err != nil {
		return domain.Transaction{}, nil, err
	}

	return tx, nil, nil
}

// Delete removes the transaction with the given id.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

// List returns the owner's transactions within the given date range, newest
// first. An open range returns everything.
func (s *Service) List(ctx context.Context, ownerID uuid.UUID, r datefilter.Range) ([]domain.Transaction, error) {
	items, err := s.repo.List(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	return datefilter.Apply(items, r), nil
}
