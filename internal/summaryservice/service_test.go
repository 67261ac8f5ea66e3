package summaryservice

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/finwise/wallet-tracker/internal/aggregate"
	"github.com/finwise/wallet-tracker/internal/domain"
	"github.com/finwise/wallet-tracker/pkg/errorspkg"
	"github.com/finwise/wallet-tracker/pkg/randompkg"
)

var testNow = time.Date(2024, time.June, 1, 12, 0, 0, 0, time.UTC)

func testClock() time.Time { return testNow }

func fixedTx(ownerID uuid.UUID, kind domain.Kind, amount string, daysAgo int) domain.Transaction {
	tx := randompkg.Transaction(ownerID)
	tx.Kind = kind
	tx.Amount = decimal.RequireFromString(amount)
	tx.OccurredAt = testNow.AddDate(0, 0, -daysAgo)

	return tx
}

func TestPeriodDays(t *testing.T) {
	wants := map[string]int{
		"1M": 30, "3M": 90, "6M": 180, "1Y": 365, "3Y": 1095, "5Y": 1825, "10Y": 3650,
	}

	for preset, want := range wants {
		days, ok := PeriodDays(preset)
		require.True(t, ok)
		require.Equal(t, want, days)
	}

	_, ok := PeriodDays("2W")
	require.False(t, ok)
}

func TestBalance(t *testing.T) {
	ownerID := randompkg.OwnerID()

	deposit := fixedTx(ownerID, domain.Deposit, "100", 1)
	withdrawal := fixedTx(ownerID, domain.Withdrawal, "40", 2)
	items := []domain.Transaction{deposit, withdrawal}

	testCases := []struct {
		name          string
		category      aggregate.Category
		buildStubs    func(repo *MockLister)
		checkResponse func(t *testing.T, split aggregate.CategorySplit, err error)
	}{
		{
			name:     "IncomeListsDepositsKeepsFullTotals",
			category: aggregate.CategoryIncome,
			buildStubs: func(repo *MockLister) {
				repo.EXPECT().
					List(gomock.Any(), gomock.Eq(ownerID)).
					Times(1).
					Return(items, nil)
			},
			checkResponse: func(t *testing.T, split aggregate.CategorySplit, err error) {
				require.NoError(t, err)
				require.Len(t, split.Transactions, 1)
				require.Equal(t, domain.Deposit, split.Transactions[0].Kind)
				require.True(t, split.TotalDeposits.Equal(decimal.NewFromInt(100)))
				require.True(t, split.TotalWithdrawals.Equal(decimal.NewFromInt(40)))
				require.True(t, split.Balance.Equal(decimal.NewFromInt(60)))
			},
		},
		{
			name:     "AllListsEverything",
			category: aggregate.CategoryAll,
			buildStubs: func(repo *MockLister) {
				repo.EXPECT().
					List(gomock.Any(), gomock.Eq(ownerID)).
					Times(1).
					Return(items, nil)
			},
			checkResponse: func(t *testing.T, split aggregate.CategorySplit, err error) {
				require.NoError(t, err)
				require.Len(t, split.Transactions, 2)
			},
		},
		{
			name:     "RepoError",
			category: aggregate.CategoryAll,
			buildStubs: func(repo *MockLister) {
				repo.EXPECT().
					List(gomock.Any(), gomock.Any()).
					Times(1).
					Return(nil, errorspkg.ErrInternal)
			},
			checkResponse: func(t *testing.T, split aggregate.CategorySplit, err error) {
				require.EqualError(t, err, errorspkg.ErrInternal.Error())
				require.Empty(t, split)
			},
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := NewMockLister(ctrl)
			tc.buildStubs(repo)

			service := New(repo, nil, testClock)

			split, err := service.Balance(context.Background(), ownerID, tc.category)
			tc.checkResponse(t, split, err)
		})
	}
}

func TestSummarize(t *testing.T) {
	ownerID := randompkg.OwnerID()

	items := []domain.Transaction{
		fixedTx(ownerID, domain.Deposit, "300", 5),
		fixedTx(ownerID, domain.Withdrawal, "50", 10),
		fixedTx(ownerID, domain.Deposit, "200", 40),
	}

	ctrl := gomock.NewController(t)
	repo := NewMockLister(ctrl)
	repo.EXPECT().
		List(gomock.Any(), gomock.Eq(ownerID)).
		Times(1).
		Return(items, nil)

	service := New(repo, nil, testClock)

	summary, err := service.Summarize(context.Background(), ownerID, "1M")
	require.NoError(t, err)

	require.Equal(t, "1M", summary.Period)

	require.True(t, summary.Income.Current.Equal(decimal.NewFromInt(300)))
	require.True(t, summary.Income.Previous.Equal(decimal.NewFromInt(200)))
	require.True(t, summary.Income.Change.Equal(decimal.NewFromInt(100)))
	require.True(t, summary.Income.ChangePercent.Equal(decimal.NewFromInt(50)))

	require.True(t, summary.Expense.Current.Equal(decimal.NewFromInt(50)))
	require.True(t, summary.Expense.Previous.Equal(decimal.Zero))
	require.True(t, summary.Expense.ChangePercent.Equal(decimal.Zero))

	require.True(t, summary.Balance.Current.Equal(decimal.NewFromInt(250)))

	require.Len(t, summary.Income.Trend, 10)
	require.Len(t, summary.Expense.Trend, 10)
	require.Len(t, summary.Balance.Trend, 10)

	// Trend is cumulative over the current window only.
	last := summary.Balance.Trend[len(summary.Balance.Trend)-1]
	require.True(t, last.Value.Equal(decimal.NewFromInt(250)))
}

func TestSummarizeUnknownPresetPanics(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := NewMockLister(ctrl)

	service := New(repo, nil, testClock)

	require.Panics(t, func() {
		_, _ = service.Summarize(context.Background(), randompkg.OwnerID(), "2W")
	})
}

func TestNarrative(t *testing.T) {
	ownerID := randompkg.OwnerID()

	items := []domain.Transaction{
		fixedTx(ownerID, domain.Deposit, "300", 5),
	}

	t.Run("OK", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := NewMockLister(ctrl)
		narrator := NewMockNarrator(ctrl)

		repo.EXPECT().
			List(gomock.Any(), gomock.Eq(ownerID)).
			Times(1).
			Return(items, nil)

		narrator.EXPECT().
			Complete(gomock.Any(), gomock.Any()).
			Times(1).
			DoAndReturn(func(_ context.Context, prompt string) (string, error) {
				require.True(t, strings.Contains(prompt, "1M"))
				require.True(t, strings.Contains(prompt, "300"))
				return "You saved well this month.", nil
			})

		service := New(repo, narrator, testClock)

		blurb, err := service.Narrative(context.Background(), ownerID, "1M")
		require.NoError(t, err)
		require.Equal(t, "You saved well this month.", blurb)
	})

	t.Run("NoNarratorConfigured", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := NewMockLister(ctrl)

		repo.EXPECT().List(gomock.Any(), gomock.Any()).Times(0)

		service := New(repo, nil, testClock)

		_, err := service.Narrative(context.Background(), ownerID, "1M")
		require.EqualError(t, err, errorspkg.ErrUnavailable.Error())
	})
}
