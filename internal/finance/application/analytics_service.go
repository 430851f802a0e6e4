package application

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/sebuszqo/BudgetMate/internal/finance/domain"
)

const unknownCategoryLabel = "Unknown"

type CategoryAmount struct {
	Name    string  `json:"name"`
	Amount  float64 `json:"amount"`
	Percent float64 `json:"percent"`
}

type MonthlyFlow struct {
	Month    string  `json:"month"` // "Jan 06" style label
	Income   float64 `json:"income"`
	Expenses float64 `json:"expenses"`
}

type PeriodSummary struct {
	TotalIncome   float64          `json:"total_income"`
	TotalExpenses float64          `json:"total_expenses"`
	Balance       float64          `json:"balance"`
	ByCategory    []CategoryAmount `json:"by_category"`
	ByMonth       []MonthlyFlow    `json:"by_month"`
}

type AnalyticsService struct {
	transactionRepo domain.TransactionRepository
	categoryRepo    domain.CategoryRepository
}

func NewAnalyticsService(transactionRepo domain.TransactionRepository, categoryRepo domain.CategoryRepository) *AnalyticsService {
	return &AnalyticsService{transactionRepo: transactionRepo, categoryRepo: categoryRepo}
}

// GetPeriodSummary loads the user's transactions and categories and reduces
// them over the requested period. Aggregates are recomputed on every call;
// nothing is cached.
func (s *AnalyticsService) GetPeriodSummary(userID string, period domain.Period, now time.Time) (*PeriodSummary, error) {
	transactions, err := s.transactionRepo.FindByUser(userID, domain.TransactionFilter{})
	if err != nil {
		return nil, err
	}
	categories, err := s.categoryRepo.FindByUser(userID, "")
	if err != nil {
		return nil, err
	}
	summary := Summarize(transactions, categories, domain.RangeFor(period, now))
	return &summary, nil
}

type monthKey struct {
	year  int
	month time.Month
}

type monthTotals struct {
	income   decimal.Decimal
	expenses decimal.Decimal
}

// Summarize reduces a transaction set over a date range. Only the lower bound
// of the range is enforced: future-dated transactions stay in, matching how
// the period views have always behaved. Sums run on decimals so the balance
// identity income-expenses holds exactly.
func Summarize(transactions []domain.Transaction, categories []domain.Category, dateRange domain.DateRange) PeriodSummary {
	categoryNames := make(map[string]string, len(categories))
	for _, category := range categories {
		categoryNames[category.ID] = category.Name
	}

	income := decimal.Zero
	expenses := decimal.Zero
	categoryTotals := make(map[string]decimal.Decimal)
	var categoryOrder []string
	months := make(map[monthKey]*monthTotals)
	var monthOrder []monthKey

	for _, transaction := range transactions {
		if transaction.Date.Before(dateRange.Start) {
			continue
		}
		amount := decimal.NewFromFloat(transaction.Amount)

		key := monthKey{year: transaction.Date.Year(), month: transaction.Date.Month()}
		totals, exists := months[key]
		if !exists {
			totals = &monthTotals{}
			months[key] = totals
			monthOrder = append(monthOrder, key)
		}

		if transaction.Type == domain.TypeIncome {
			income = income.Add(amount)
			totals.income = totals.income.Add(amount)
			continue
		}

		expenses = expenses.Add(amount)
		totals.expenses = totals.expenses.Add(amount)

		name, resolved := categoryNames[transaction.CategoryID]
		if !resolved || name == "" {
			name = unknownCategoryLabel
		}
		if _, seen := categoryTotals[name]; !seen {
			categoryOrder = append(categoryOrder, name)
		}
		categoryTotals[name] = categoryTotals[name].Add(amount)
	}

	byCategory := make([]CategoryAmount, 0, len(categoryOrder))
	for _, name := range categoryOrder {
		byCategory = append(byCategory, CategoryAmount{
			Name:    name,
			Amount:  categoryTotals[name].InexactFloat64(),
			Percent: percentOf(categoryTotals[name], expenses),
		})
	}
	// descending by amount, first-encountered order on ties
	sort.SliceStable(byCategory, func(i, j int) bool {
		return byCategory[i].Amount > byCategory[j].Amount
	})

	sort.Slice(monthOrder, func(i, j int) bool {
		if monthOrder[i].year != monthOrder[j].year {
			return monthOrder[i].year < monthOrder[j].year
		}
		return monthOrder[i].month < monthOrder[j].month
	})
	byMonth := make([]MonthlyFlow, 0, len(monthOrder))
	for _, key := range monthOrder {
		totals := months[key]
		byMonth = append(byMonth, MonthlyFlow{
			Month:    monthLabel(key),
			Income:   totals.income.InexactFloat64(),
			Expenses: totals.expenses.InexactFloat64(),
		})
	}

	return PeriodSummary{
		TotalIncome:   income.InexactFloat64(),
		TotalExpenses: expenses.InexactFloat64(),
		Balance:       income.Sub(expenses).InexactFloat64(),
		ByCategory:    byCategory,
		ByMonth:       byMonth,
	}
}

// percentOf guards the empty-expense case: a share of nothing is 0, not NaN.
func percentOf(amount, total decimal.Decimal) float64 {
	if total.IsZero() {
		return 0
	}
	return amount.Div(total).Mul(decimal.NewFromInt(100)).InexactFloat64()
}

func monthLabel(key monthKey) string {
	return time.Date(key.year, key.month, 1, 0, 0, 0, 0, time.UTC).Format("Jan 06")
}
