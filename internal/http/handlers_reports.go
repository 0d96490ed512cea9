package http

import (
	"net/http"

	"financas/internal/core"
	"financas/internal/engine"
	"financas/internal/log"
)

type monthlyReportResponse struct {
	Year              int              `json:"year"`
	Month             int              `json:"month"`
	CategoryTotals    map[string]int64 `json:"categoryTotals"`
	DailyBalanceCents []int64          `json:"dailyBalanceCents"`
}

// handleMonthlyReport answers the month report: expense breakdown by
// category plus the running daily balance. Investments stay out of
// reports.
func (s *Server) handleMonthlyReport(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	ctx := r.Context()
	year, month := parseYearMonth(r)
	period := core.Period{Year: year, Month: month}

	all, err := s.store.GetAll(ctx)
	if err != nil {
		log.FromContext(ctx).ErrorContext(ctx, "Failed to load transactions", log.FieldError, err)
		writeError(w, http.StatusInternalServerError, "failed to load transactions")
		return
	}

	set := engine.Resolve(all, period, engine.ResolveOptions{
		Types: []core.TransactionType{core.Income, core.Expense},
	})

	daily := engine.DailyCumulativeBalance(period, set)
	dailyCents := make([]int64, len(daily))
	for i, m := range daily {
		dailyCents[i] = m.Cents
	}

	writeJSON(w, http.StatusOK, monthlyReportResponse{
		Year:              year,
		Month:             month,
		CategoryTotals:    categoryTotalsJSON(engine.CategoryTotals(set, core.Expense)),
		DailyBalanceCents: dailyCents,
	})
}

type annualMonthJSON struct {
	Month        int   `json:"month"`
	IncomeCents  int64 `json:"incomeCents"`
	ExpenseCents int64 `json:"expenseCents"`
}

type annualReportResponse struct {
	Year              int               `json:"year"`
	Months            []annualMonthJSON `json:"months"`
	TotalIncomeCents  int64             `json:"totalIncomeCents"`
	TotalExpenseCents int64             `json:"totalExpenseCents"`
	ResultCents       int64             `json:"resultCents"`
}

// handleAnnualReport answers the yearly report: twelve month totals
// with the annual result.
func (s *Server) handleAnnualReport(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	ctx := r.Context()
	year := parseYear(r, "year")

	all, err := s.store.GetAll(ctx)
	if err != nil {
		log.FromContext(ctx).ErrorContext(ctx, "Failed to load transactions", log.FieldError, err)
		writeError(w, http.StatusInternalServerError, "failed to load transactions")
		return
	}

	series := engine.ComputeAnnualSeries(all, year)
	income, expense := series.Totals()

	writeJSON(w, http.StatusOK, annualReportResponse{
		Year:              year,
		Months:            toAnnualMonths(series),
		TotalIncomeCents:  income.Cents,
		TotalExpenseCents: expense.Cents,
		ResultCents:       income.Sub(expense).Cents,
	})
}

func toAnnualMonths(series engine.AnnualSeries) []annualMonthJSON {
	months := make([]annualMonthJSON, 12)
	for i := 0; i < 12; i++ {
		months[i] = annualMonthJSON{
			Month:        i + 1,
			IncomeCents:  series.Income[i].Cents,
			ExpenseCents: series.Expense[i].Cents,
		}
	}
	return months
}

type categoryDeltaJSON struct {
	Category  string `json:"category"`
	DiffCents int64  `json:"diffCents"`
}

type comparativeReportResponse struct {
	Year1               int                 `json:"year1"`
	Year2               int                 `json:"year2"`
	Increases           []categoryDeltaJSON `json:"increases"`
	Decreases           []categoryDeltaJSON `json:"decreases"`
	MonthsY1            []annualMonthJSON   `json:"monthsYear1"`
	MonthsY2            []annualMonthJSON   `json:"monthsYear2"`
	IncomeVariationPct  float64             `json:"incomeVariationPct"`
	ExpenseVariationPct float64             `json:"expenseVariationPct"`
	ResultVariationPct  float64             `json:"resultVariationPct"`
}

// handleComparativeReport answers the year-over-year report.
func (s *Server) handleComparativeReport(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	ctx := r.Context()
	year2 := parseYear(r, "year2")
	year1 := year2 - 1
	if v := r.URL.Query().Get("year1"); v != "" {
		year1 = parseYear(r, "year1")
	}

	all, err := s.store.GetAll(ctx)
	if err != nil {
		log.FromContext(ctx).ErrorContext(ctx, "Failed to load transactions", log.FieldError, err)
		writeError(w, http.StatusInternalServerError, "failed to load transactions")
		return
	}

	cmp := engine.Compare(all, year1, year2)
	incomeY1, expenseY1 := cmp.SeriesY1.Totals()
	incomeY2, expenseY2 := cmp.SeriesY2.Totals()

	writeJSON(w, http.StatusOK, comparativeReportResponse{
		Year1:               year1,
		Year2:               year2,
		Increases:           toCategoryDeltas(cmp.Increases),
		Decreases:           toCategoryDeltas(cmp.Decreases),
		MonthsY1:            toAnnualMonths(cmp.SeriesY1),
		MonthsY2:            toAnnualMonths(cmp.SeriesY2),
		IncomeVariationPct:  engine.Variation(incomeY1, incomeY2),
		ExpenseVariationPct: engine.Variation(expenseY1, expenseY2),
		ResultVariationPct:  engine.Variation(incomeY1.Sub(expenseY1), incomeY2.Sub(expenseY2)),
	})
}

func toCategoryDeltas(deltas []engine.CategoryDelta) []categoryDeltaJSON {
	out := make([]categoryDeltaJSON, 0, len(deltas))
	for _, d := range deltas {
		out = append(out, categoryDeltaJSON{
			Category:  d.Category,
			DiffCents: d.Diff.Cents,
		})
	}
	return out
}
