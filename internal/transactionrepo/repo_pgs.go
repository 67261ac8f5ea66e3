// Package transactionrepo manages repository layer of transactions.
package transactionrepo

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/rs/zerolog"

	"github.com/finwise/wallet-tracker/internal/domain"
	"github.com/finwise/wallet-tracker/pkg/dbpkg"
	"github.com/finwise/wallet-tracker/pkg/errorspkg"
)

// RepoPGS facilitates transaction repository layer logic.
type RepoPGS struct {
	db dbpkg.SQLInterface
}

// NewRepoPGS returns transaction RepoPGS.
func NewRepoPGS(db dbpkg.SQLInterface) *RepoPGS {
	return &RepoPGS{
		db: db,
	}
}

const createQuery = `
INSERT INTO
    transactions (id, owner_id, kind, amount, note, occurred_at)
VALUES
    ($1, $2, $3, $4, $5, $6)
RETURNING id, owner_id, kind, amount, note, occurred_at, created_at, updated_at
`

// Create persists the transaction with a fresh id and returns it.
func (r *RepoPGS) Create(ctx context.Context, arg domain.CreateTransactionParams) (domain.Transaction, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, createQuery,
		uuid.New(),
		arg.OwnerID,
		arg.Kind,
		arg.Amount,
		arg.Note,
		arg.OccurredAt,
	)

	tx, err := scanTransaction(row)
	if err != nil {
		l.Error().Err(err).Send()

		if pqErr, ok := err.(*pq.Error); ok {
			if pqErr.Constraint == "transactions_owner_id_fkey" {
				return tx, domain.ErrOwnerNotFound
			}
		}

		return tx, errorspkg.ErrInternal
	}

	return tx, nil
}

const getQuery = `
SELECT
	id, owner_id, kind, amount, note, occurred_at, created_at, updated_at
FROM transactions
WHERE id = $1
`

// Get returns the transaction with the given id.
func (r *RepoPGS) Get(ctx context.Context, id uuid.UUID) (domain.Transaction, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, getQuery, id)

	tx, err := scanTransaction(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return tx, domain.ErrTransactionNotFound
		}

		l.Error().Err(err).Send()

		return tx, errorspkg.ErrInternal
	}

	return tx, nil
}

const listQuery = `
SELECT
	id, owner_id, kind, amount, note, occurred_at, created_at, updated_at
FROM transactions
WHERE owner_id = $1
ORDER BY occurred_at DESC
`

// List returns all transactions for the given owner ordered by occurred_at
// descending.
func (r *RepoPGS) List(ctx context.Context, ownerID uuid.UUID) ([]domain.Transaction, error) {
	l := zerolog.Ctx(ctx)

	rows, err := r.db.QueryContext(ctx, listQuery, ownerID)
	if err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}
	defer rows.Close()

	items := []domain.Transaction{}

	for rows.Next() {
		var tx domain.Transaction

		err := rows.Scan(
			&tx.ID,
			&tx.OwnerID,
			&tx.Kind,
			&tx.Amount,
			&tx.Note,
			&tx.OccurredAt,
			&tx.CreatedAt,
			&tx.UpdatedAt,
		)
		if err != nil {
			l.Error().Err(err).Send()
			return nil, errorspkg.ErrInternal
		}

		items = append(items, tx)
	}

	if err := rows.Err(); err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}

	return items, nil
}

const updateQuery = `
UPDATE transactions
SET kind = $2, amount = $3, note = $4, occurred_at = $5, updated_at = now()
WHERE id = $1
RETURNING id, owner_id, kind, amount, note, occurred_at, created_at, updated_at
`

// Update overwrites the full record and returns the stored row.
func (r *RepoPGS) Update(ctx context.Context, id uuid.UUID, arg domain.CreateTransactionParams) (domain.Transaction, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, updateQuery,
		id,
		arg.Kind,
		arg.Amount,
		arg.Note,
		arg.OccurredAt,
	)

	tx, err := scanTransaction(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return tx, domain.ErrTransactionNotFound
		}

		l.Error().Err(err).Send()

		return tx, errorspkg.ErrInternal
	}

	return tx, nil
}

const deleteQuery = `
DELETE FROM transactions
WHERE id = $1
`

// Delete removes the transaction with the given id.
func (r *RepoPGS) Delete(ctx context.Context, id uuid.UUID) error {
	l := zerolog.Ctx(ctx)

	res, err := r.db.ExecContext(ctx, deleteQuery, id)
	if err != nil {
		l.Error().Err(err).Send()
		return errorspkg.ErrInternal
	}

	affected, err := res.RowsAffected()
	if err != nil {
		l.Error().Err(err).Send()
		return errorspkg.ErrInternal
	}

	if affected == 0 {
		return domain.ErrTransactionNotFound
	}

	return nil
}

func scanTransaction(row *sql.Row) (domain.Transaction, error) {
	var tx domain.Transaction

	err := row.Scan(
		&tx.ID,
		&tx.OwnerID,
		&tx.Kind,
		&tx.Amount,
		&tx.Note,
		&tx.OccurredAt,
		&tx.CreatedAt,
		&tx.UpdatedAt,
	)

	return tx, err
}
