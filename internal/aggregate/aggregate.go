// Package aggregate derives summary figures and time-bucketed series from a
// transaction collection. All operations are pure reductions that degrade to
// zero values on empty input, never an error.
package aggregate

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/finwise/wallet-tracker/internal/domain"
)

// Category selects which transactions a balance view lists.
type Category string

// The closed set of balance view categories.
const (
	CategoryIncome      Category = "income"
	CategoryExpenditure Category = "expenditure"
	CategoryAll         Category = "all"
)

// Valid reports whether c is a known category.
func (c Category) Valid() bool {
	return c == CategoryIncome || c == CategoryExpenditure || c == CategoryAll
}

// Metric selects which figure a summary reports.
type Metric string

// The closed set of summary metrics.
const (
	MetricIncome  Metric = "income"
	MetricExpense Metric = "expense"
	MetricBalance Metric = "balance"
)

// maxTrendPoints caps the trend series length for chart readability.
const maxTrendPoints = 10

// Totals holds the linear reductions over a transaction collection.
// Balance may be negative.
type Totals struct {
	TotalDeposits    decimal.Decimal `json:"total_deposits"`
	TotalWithdrawals decimal.Decimal `json:"total_withdrawals"`
	Balance          decimal.Decimal `json:"balance"`
}

// Sum computes deposit and withdrawal totals and the net balance.
func Sum(items []domain.Transaction) Totals {
	deposits := decimal.Zero
	withdrawals := decimal.Zero

	for _, tx := range items {
		if tx.Kind == domain.Deposit {
			deposits = deposits.Add(tx.Amount)
		} else {
			withdrawals = withdrawals.Add(tx.Amount)
		}
	}

	return Totals{
		TotalDeposits:    deposits,
		TotalWithdrawals: withdrawals,
		Balance:          deposits.Sub(withdrawals),
	}
}

// CategorySplit holds the transactions listed for a category alongside totals
// over the full collection.
type CategorySplit struct {
	Totals
	Category     Category             `json:"category"`
	Transactions []domain.Transaction `json:"transactions"`
}

// SplitByCategory returns the subset matching category together with the
// headline totals. Category filtering changes which rows are listed but not
// the totals, which always reflect the full collection passed in.
func SplitByCategory(items []domain.Transaction, category Category) CategorySplit {
	split := CategorySplit{
		Totals:   Sum(items),
		Category: category,
	}

	switch category {
	case CategoryIncome:
		split.Transactions = ofKind(items, domain.Deposit)
	case CategoryExpenditure:
		split.Transactions = ofKind(items, domain.Withdrawal)
	default:
		split.Transactions = items
	}

	return split
}

func ofKind(items []domain.Transaction, kind domain.Kind) []domain.Transaction {
	matched := []domain.Transaction{}

	for _, tx := range items {
		if tx.Kind == kind {
			matched = append(matched, tx)
		}
	}

	return matched
}

func metricValue(items []domain.Transaction, metric Metric) decimal.Decimal {
	totals := Sum(items)

	switch metric {
	case MetricIncome:
		return totals.TotalDeposits
	case MetricExpense:
		return totals.TotalWithdrawals
	default:
		return totals.Balance
	}
}

// PeriodComparison reports a metric over the last periodDays against the
// window immediately preceding it.
type PeriodComparison struct {
	Current       decimal.Decimal `json:"current"`
	Previous      decimal.Decimal `json:"previous"`
	Change        decimal.Decimal `json:"change"`
	ChangePercent decimal.Decimal `json:"change_percent"`
}

// ComparePeriods computes the metric over transactions within the last
// periodDays of now and over the periodDays-long window before that.
// ChangePercent is zero when the previous window sums to zero so callers
// never see a division-by-zero artifact.
func ComparePeriods(items []domain.Transaction, now time.Time, periodDays int, metric Metric) PeriodComparison {
	currentCutoff := now.AddDate(0, 0, -periodDays)
	previousCutoff := now.AddDate(0, 0, -2*periodDays)

	var currentItems, previousItems []domain.Transaction

	for _, tx := range items {
		switch {
		case !tx.OccurredAt.Before(currentCutoff):
			currentItems = append(currentItems, tx)
		case !tx.OccurredAt.Before(previousCutoff):
			previousItems = append(previousItems, tx)
		}
	}

	current := metricValue(currentItems, metric)
	previous := metricValue(previousItems, metric)
	change := current.Sub(previous)

	changePercent := decimal.Zero
	if !previous.IsZero() {
		changePercent = change.Div(previous.Abs()).Mul(decimal.NewFromInt(100))
	}

	return PeriodComparison{
		Current:       current,
		Previous:      previous,
		Change:        change,
		ChangePercent: changePercent,
	}
}

// TrendPoint is one sampled value of a cumulative trend series.
type TrendPoint struct {
	Label string          `json:"label"`
	Value decimal.Decimal `json:"value"`
}

// TrendSeries samples the metric at evenly spaced dates across the last
// periodDays of now. Each point's value is the metric over all given
// transactions dated on or before that point, a running total rather than a
// per-bucket delta. At most ten points are produced.
func TrendSeries(items []domain.Transaction, now time.Time, periodDays int, metric Metric) []TrendPoint {
	if periodDays < 1 {
		return []TrendPoint{}
	}

	pointCount := maxTrendPoints
	if periodDays < pointCount {
		pointCount = periodDays
	}

	interval := periodDays / pointCount

	points := make([]TrendPoint, 0, pointCount)

	for i := 0; i < pointCount; i++ {
		pointDate := now.AddDate(0, 0, -(periodDays - i*interval))

		var upTo []domain.Transaction

		for _, tx := range items {
			if !tx.OccurredAt.After(pointDate) {
				upTo = append(upTo, tx)
			}
		}

		points = append(points, TrendPoint{
			Label: pointDate.Format("2006-01-02"),
			Value: metricValue(upTo, metric),
		})
	}

	return points
}

// PeriodTransactions returns the transactions within the last periodDays
// of now, the window a summary card charts.
func PeriodTransactions(items []domain.Transaction, now time.Time, periodDays int) []domain.Transaction {
	cutoff := now.AddDate(0, 0, -periodDays)

	matched := []domain.Transaction{}

	for _, tx := range items {
		if !tx.OccurredAt.Before(cutoff) {
			matched = append(matched, tx)
		}
	}

	return matched
}
