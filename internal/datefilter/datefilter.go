// Package datefilter selects transactions whose occurred-at falls within a
// caller-supplied date range and resolves relative period presets.
package datefilter

import (
	"time"

	"github.com/finwise/wallet-tracker/internal/domain"
)

// Range bounds a date filter. A nil bound leaves that side open.
type Range struct {
	Start *time.Time
	End   *time.Time
}

// Apply returns the transactions whose OccurredAt falls within r, preserving
// relative order and never mutating items. Calendar-date bounds are widened to
// cover the whole day: the lower bound snaps to 00:00:00.000 and the upper
// bound to 23:59:59.999, so a single-day range matches every transaction
// recorded that day. A fully open range is the identity.
func Apply(items []domain.Transaction, r Range) []domain.Transaction {
	if r.Start == nil && r.End == nil {
		return items
	}

	var (
		start time.Time
		end   time.Time
	)

	if r.Start != nil {
		start = StartOfDay(*r.Start)
	}

	if r.End != nil {
		end = EndOfDay(*r.End)
	}

	matched := []domain.Transaction{}

	for _, tx := range items {
		if r.Start != nil && tx.OccurredAt.Before(start) {
			continue
		}

		if r.End != nil && tx.OccurredAt.After(end) {
			continue
		}

		matched = append(matched, tx)
	}

	return matched
}

// LastMonths resolves a "last n months" preset against now using calendar
// arithmetic: the start lands on the same day-of-month n months earlier, with
// standard roll-over for shorter months.
func LastMonths(now time.Time, n int) Range {
	start := now.AddDate(0, -n, 0)
	return Range{Start: &start, End: &now}
}

// LastYears resolves a "last n years" preset against now.
func LastYears(now time.Time, n int) Range {
	start := now.AddDate(-n, 0, 0)
	return Range{Start: &start, End: &now}
}

// StartOfDay returns 00:00:00.000 of t's calendar day.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// EndOfDay returns 23:59:59.999 of t's calendar day.
func EndOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 23, 59, 59, 999_000_000, t.Location())
}
