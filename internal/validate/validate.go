// Package validate converts raw transaction form input into a normalized
// payload or a field-keyed map of user-facing error messages.
package validate

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/finwise/wallet-tracker/internal/domain"
)

// Error messages surfaced next to form fields.
const (
	MsgInvalidAmount = "Invalid amount format"
	MsgNonPositive   = "Amount must be greater than 0"
	MsgInvalidDate   = "Invalid date format"
	MsgFutureDate    = "Date cannot be in the future"
	MsgInvalidKind   = "Transaction type must be 'Deposit' or 'Withdrawal'"
)

// Accepted layouts for the occurred-at field, tried in order.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// TransactionInput carries the raw field values as submitted by a form.
type TransactionInput struct {
	Kind       string
	Amount     string
	Note       string
	OccurredAt string
}

// NormalizedTransaction is a validated payload ready for the store,
// without id and bookkeeping timestamps.
type NormalizedTransaction struct {
	Kind       domain.Kind
	Amount     decimal.Decimal
	Note       string
	OccurredAt time.Time
}

// FieldErrors maps a field name to the messages reported for it.
type FieldErrors map[string][]string

func (fe FieldErrors) add(field, msg string) {
	fe[field] = append(fe[field], msg)
}

// Transaction validates in against now and returns either a normalized payload
// or the accumulated field errors. All fields are checked so a caller can show
// every problem at once; errs is nil exactly when validation succeeded.
// Expected bad input never causes an error return beyond the map.
func Transaction(in TransactionInput, now time.Time) (norm NormalizedTransaction, errs FieldErrors) {
	errs = FieldErrors{}

	amount, err := decimal.NewFromString(in.Amount)
	if err != nil {
		errs.add("amount", MsgInvalidAmount)
	} else if !amount.IsPositive() {
		errs.add("amount", MsgNonPositive)
	} else {
		norm.Amount = amount
	}

	occurredAt := now
	if in.OccurredAt != "" {
		parsed, err := parseDate(in.OccurredAt)
		switch {
		case err != nil:
			errs.add("date", MsgInvalidDate)
		case parsed.After(endOfDay(now)):
			// Any time today is valid regardless of time-of-day.
			errs.add("date", MsgFutureDate)
		default:
			occurredAt = parsed
		}
	}
	norm.OccurredAt = occurredAt

	kind := domain.Kind(in.Kind)
	if !kind.Valid() {
		errs.add("type", MsgInvalidKind)
	} else {
		norm.Kind = kind
	}

	norm.Note = in.Note

	if len(errs) > 0 {
		return NormalizedTransaction{}, errs
	}

	return norm, nil
}

func parseDate(s string) (time.Time, error) {
	var firstErr error

	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t, nil
		}

		if firstErr == nil {
			firstErr = err
		}
	}

	return time.Time{}, firstErr
}

func endOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 23, 59, 59, 999_000_000, t.Location())
}
