package datefilter

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/finwise/wallet-tracker/internal/domain"
	"github.com/finwise/wallet-tracker/pkg/randompkg"
)

func txAt(t *testing.T, value string) domain.Transaction {
	t.Helper()

	occurredAt, err := time.Parse(time.RFC3339, value)
	require.NoError(t, err)

	tx := randompkg.Transaction(randompkg.OwnerID())
	tx.OccurredAt = occurredAt

	return tx
}

func date(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func TestApply(t *testing.T) {
	items := []domain.Transaction{
		txAt(t, "2024-01-10T09:00:00Z"),
		txAt(t, "2024-02-01T00:00:00Z"),
		txAt(t, "2024-02-15T23:59:00Z"),
		txAt(t, "2024-02-16T00:01:00Z"),
		txAt(t, "2024-03-05T12:00:00Z"),
	}

	testCases := []struct {
		name  string
		r     Range
		wants []domain.Transaction
	}{
		{
			name:  "OpenRangeIsIdentity",
			r:     Range{},
			wants: items,
		},
		{
			name:  "LowerBoundOnly",
			r:     Range{Start: date(2024, time.February, 1)},
			wants: items[1:],
		},
		{
			name:  "UpperBoundOnly",
			r:     Range{End: date(2024, time.February, 15)},
			wants: items[:3],
		},
		{
			name:  "ClosedRange",
			r:     Range{Start: date(2024, time.February, 1), End: date(2024, time.February, 15)},
			wants: items[1:3],
		},
		{
			name:  "SingleDayIncludesWholeDay",
			r:     Range{Start: date(2024, time.February, 15), End: date(2024, time.February, 15)},
			wants: items[2:3],
		},
		{
			name:  "EmptyIntersection",
			r:     Range{Start: date(2025, time.January, 1)},
			wants: []domain.Transaction{},
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			got := Apply(items, tc.r)

			if diff := cmp.Diff(tc.wants, got); diff != "" {
				t.Errorf("Apply() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

// Every input element lands in exactly one of matched/unmatched.
func TestApplyPartitions(t *testing.T) {
	items := []domain.Transaction{
		txAt(t, "2024-01-10T09:00:00Z"),
		txAt(t, "2024-02-15T23:59:00Z"),
		txAt(t, "2024-03-05T12:00:00Z"),
	}

	r := Range{Start: date(2024, time.February, 1), End: date(2024, time.February, 28)}

	matched := Apply(items, r)

	seen := make(map[string]bool, len(matched))
	for _, tx := range matched {
		seen[tx.ID.String()] = true
	}

	unmatched := 0

	for _, tx := range items {
		if !seen[tx.ID.String()] {
			unmatched++
		}
	}

	require.Equal(t, len(items), len(matched)+unmatched)
}

func TestApplyDoesNotMutate(t *testing.T) {
	items := []domain.Transaction{
		txAt(t, "2024-01-10T09:00:00Z"),
		txAt(t, "2024-03-05T12:00:00Z"),
	}
	snapshot := append([]domain.Transaction(nil), items...)

	r := Range{Start: date(2024, time.March, 1)}

	first := Apply(items, r)
	second := Apply(items, r)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("Apply() is not idempotent (-first +second):\n%s", diff)
	}

	if diff := cmp.Diff(snapshot, items); diff != "" {
		t.Errorf("Apply() mutated its input (-want +got):\n%s", diff)
	}
}

func TestLastMonths(t *testing.T) {
	now := time.Date(2024, time.March, 15, 10, 0, 0, 0, time.UTC)

	r := LastMonths(now, 1)

	require.Equal(t, time.Date(2024, time.February, 15, 10, 0, 0, 0, time.UTC), *r.Start)
	require.Equal(t, now, *r.End)

	// Calendar roll-over, not fixed day counts.
	endOfMarch := time.Date(2024, time.March, 31, 0, 0, 0, 0, time.UTC)
	require.Equal(t, time.Date(2024, time.March, 2, 0, 0, 0, 0, time.UTC), *LastMonths(endOfMarch, 1).Start)
}

func TestLastYears(t *testing.T) {
	now := time.Date(2024, time.March, 15, 10, 0, 0, 0, time.UTC)

	r := LastYears(now, 3)

	require.Equal(t, time.Date(2021, time.March, 15, 10, 0, 0, 0, time.UTC), *r.Start)
	require.Equal(t, now, *r.End)
}
