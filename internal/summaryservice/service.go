// Package summaryservice manages business logic layer of balance and summary
// views.
package summaryservice

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/finwise/wallet-tracker/internal/aggregate"
	"github.com/finwise/wallet-tracker/internal/domain"
	"github.com/finwise/wallet-tracker/pkg/errorspkg"
)

// Period presets selectable on the summary page, mapped to day counts.
var periodDays = map[string]int{
	"1M":  30,
	"3M":  90,
	"6M":  180,
	"1Y":  365,
	"3Y":  1095,
	"5Y":  1825,
	"10Y": 3650,
}

// PeriodDays resolves a period preset label to its day count.
func PeriodDays(preset string) (int, bool) {
	days, ok := periodDays[preset]
	return days, ok
}

// Lister provides data access layer interface needed by summary service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package summaryservice
type Lister interface {
	List(ctx context.Context, ownerID uuid.UUID) ([]domain.Transaction, error)
}

// Narrator produces a short natural-language completion for a prompt.
type Narrator interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Card is one summary figure with its cumulative trend series.
type Card struct {
	aggregate.PeriodComparison
	Trend []aggregate.TrendPoint `json:"trend"`
}

// Summary holds the income, expense and balance cards for one period.
type Summary struct {
	Period  string `json:"period"`
	Income  Card   `json:"income"`
	Expense Card   `json:"expense"`
	Balance Card   `json:"balance"`
}

// Service facilitates summary service layer logic.
type Service struct {
	repo     Lister
	narrator Narrator
	now      func() time.Time
}

// New returns summary service struct. narrator may be nil when no completion
// backend is configured; Narrative then reports ErrUnavailable.
func New(repo Lister, narrator Narrator, now func() time.Time) *Service {
	return &Service{
		repo:     repo,
		narrator: narrator,
		now:      now,
	}
}

// Balance returns totals over all of the owner's transactions together with
// the rows listed for the requested category.
func (s *Service) Balance(ctx context.Context, ownerID uuid.UUID, category aggregate.Category) (aggregate.CategorySplit, error) {
	items, err := s.repo.List(ctx, ownerID)
	if err != nil {
		return aggregate.CategorySplit{}, err
	}

	return aggregate.SplitByCategory(items, category), nil
}

// Summarize builds the three summary cards for the given period preset.
func (s *Service) Summarize(ctx context.Context, ownerID uuid.UUID, preset string) (Summary, error) {
	days, ok := PeriodDays(preset)
	if !ok {
		// Delivery validates the preset; reaching here is a programming error.
		panic(fmt.Sprintf("unknown period preset %q", preset))
	}

	items, err := s.repo.List(ctx, ownerID)
	if err != nil {
		return Summary{}, err
	}

	now := s.now()
	periodItems := aggregate.PeriodTransactions(items, now, days)

	card := func(metric aggregate.Metric) Card {
		return Card{
			PeriodComparison: aggregate.ComparePeriods(items, now, days, metric),
			Trend:            aggregate.TrendSeries(periodItems, now, days, metric),
		}
	}

	return Summary{
		Period:  preset,
		Income:  card(aggregate.MetricIncome),
		Expense: card(aggregate.MetricExpense),
		Balance: card(aggregate.MetricBalance),
	}, nil
}

// Narrative asks the completion backend for a short blurb describing the
// owner's summary figures for the given period preset.
func (s *Service) Narrative(ctx context.Context, ownerID uuid.UUID, preset string) (string, error) {
	if s.narrator == nil {
		return "", errorspkg.ErrUnavailable
	}

	summary, err := s.Summarize(ctx, ownerID, preset)
	if err != nil {
		return "", err
	}

	return s.narrator.Complete(ctx, buildPrompt(summary))
}

func buildPrompt(summary Summary) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "You are a personal finance assistant. ")
	fmt.Fprintf(&sb, "Write a short, friendly narrative (2-3 sentences) about the user's finances over the last %s.\n", summary.Period)
	fmt.Fprintf(&sb, "Income: %s (change %s%%)\n", summary.Income.Current, summary.Income.ChangePercent)
	fmt.Fprintf(&sb, "Expenses: %s (change %s%%)\n", summary.Expense.Current, summary.Expense.ChangePercent)
	fmt.Fprintf(&sb, "Balance: %s (change %s%%)\n", summary.Balance.Current, summary.Balance.ChangePercent)

	return sb.String()
}
