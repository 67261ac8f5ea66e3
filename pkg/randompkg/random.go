// Package randompkg provides functionality for generating random application common items.
package randompkg

import (
	"crypto/rand"
	"math"
	"math/big"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finwise/wallet-tracker/internal/domain"
)

const alphabet = "abcdefghijklmnopqrstuvwxyz"

var depositNotes = []string{
	"Salary Payment",
	"Freelance Project Payment",
	"Investment Return",
	"Dividend Payment",
	"Refund from Online Store",
	"Gift Money",
	"Bonus Payment",
	"Bank Interest",
	"Cashback Reward",
	"Tax Refund",
	"Rental Income",
}

var withdrawalNotes = []string{
	"Grocery Shopping at Supermarket",
	"Restaurant Dinner",
	"ATM Withdrawal",
	"Online Shopping",
	"Gas Station Payment",
	"Utility Bill Payment",
	"Rent Payment",
	"Insurance Premium",
	"Mobile Phone Bill",
	"Gym Membership",
	"Subscription Service",
}

// Intn is a shortcut for generating a random integer between 0 and max using crypto/rand.
func Intn(max int) int64 {
	nBig, err := rand.Int(rand.Reader, big.NewInt(int64(max)))
	if err != nil {
		panic(err)
	}

	return nBig.Int64()
}

// Float64 is a shortcut for generating a random float between 0 and 1 using crypto/rand.
func Float64() float64 {
	return float64(Intn(1<<32)) / (1 << 32)
}

// IntBetween generates a random integer between min and max.
func IntBetween(min, max int) int {
	return int(Intn(max-min+1)) + min
}

// FloatBetween generates a random decimal number between min and max rounded to 4 decimals.
func FloatBetween(min, max float64) float64 {
	numInRange := min + Float64()*(max-min)
	return math.Floor(numInRange*10_000) / 10_000
}

// String generates a random string of length n.
func String(n int) string {
	var sb strings.Builder

	k := len(alphabet)

	for i := 0; i < n; i++ {
		c := alphabet[Intn(k)]

		_ = sb.WriteByte(c) // The returned err is always nil.
	}

	return sb.String()
}

// MoneyAmountBetween generates a random amount of money between min and max rounded to 4 decimals.
func MoneyAmountBetween(min, max float64) decimal.Decimal {
	return decimal.NewFromFloat(FloatBetween(min, max))
}

// OwnerID generates a random owner id.
func OwnerID() uuid.UUID {
	return uuid.New()
}

// Email generates a random email.
func Email() string {
	return String(10) + "@email.com"
}

// Kind picks a random transaction kind.
func Kind() domain.Kind {
	if Intn(2) == 0 {
		return domain.Deposit
	}

	return domain.Withdrawal
}

// Note picks a realistic note for the given kind.
func Note(kind domain.Kind) string {
	if kind == domain.Deposit {
		return depositNotes[Intn(len(depositNotes))]
	}

	return withdrawalNotes[Intn(len(withdrawalNotes))]
}

// Transaction generates a random transaction for the given owner dated now.
// Deposits tend to be larger amounts than withdrawals.
func Transaction(ownerID uuid.UUID) domain.Transaction {
	kind := Kind()

	amount := MoneyAmountBetween(10, 510)
	if kind == domain.Deposit {
		amount = MoneyAmountBetween(100, 2100)
	}

	now := time.Now().Truncate(time.Second).UTC()

	return domain.Transaction{
		ID:         uuid.New(),
		OwnerID:    ownerID,
		Kind:       kind,
		Amount:     amount,
		Note:       Note(kind),
		OccurredAt: now,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// TransactionDaysAgo generates a random transaction dated between daysAgoMin
// and daysAgoMax days before now, at a random time of day.
func TransactionDaysAgo(ownerID uuid.UUID, now time.Time, daysAgoMin, daysAgoMax int) domain.Transaction {
	tx := Transaction(ownerID)

	daysAgo := IntBetween(daysAgoMin, daysAgoMax)
	occurredAt := now.AddDate(0, 0, -daysAgo).
		Add(-time.Duration(Intn(24)) * time.Hour).
		Add(-time.Duration(Intn(60)) * time.Minute)

	tx.OccurredAt = occurredAt

	return tx
}
