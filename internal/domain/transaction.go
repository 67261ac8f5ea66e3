// Package domain provides definitions of all entities.
package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	// ErrTransactionNotFound indicates that the transaction is not found.
	ErrTransactionNotFound = errors.New("transaction not found")
	// ErrInvalidKind indicates a value outside the Deposit/Withdrawal enumeration.
	ErrInvalidKind = errors.New("transaction kind must be 'Deposit' or 'Withdrawal'")
	// ErrOwnerNotFound indicates that the owner for the transaction is not found.
	ErrOwnerNotFound = errors.New("owner not found")
)

// Kind classifies a transaction as increasing or decreasing the balance.
type Kind string

// The closed set of transaction kinds. No other values are persisted.
const (
	Deposit    Kind = "Deposit"
	Withdrawal Kind = "Withdrawal"
)

// Valid reports whether k is one of the two permitted kinds.
func (k Kind) Valid() bool {
	return k == Deposit || k == Withdrawal
}

// Signed returns the kind's signed contribution of amount to a balance.
func (k Kind) Signed(amount decimal.Decimal) decimal.Decimal {
	if k == Withdrawal {
		return amount.Neg()
	}

	return amount
}

// Transaction holds a single dated monetary event belonging to a user.
// Amount is always positive; the sign is derived from Kind.
type Transaction struct {
	ID         uuid.UUID       `json:"id"`
	OwnerID    uuid.UUID       `json:"owner_id"`
	Kind       Kind            `json:"kind"`
	Amount     decimal.Decimal `json:"amount"`
	Note       string          `json:"note"`
	OccurredAt time.Time       `json:"occurred_at"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// CreateTransactionParams is the input data to persist a new transaction.
type CreateTransactionParams struct {
	OwnerID    uuid.UUID
	Kind       Kind
	Amount     decimal.Decimal
	Note       string
	OccurredAt time.Time
}
