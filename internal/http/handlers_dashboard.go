package http

import (
	"net/http"

	"financas/internal/core"
	"financas/internal/engine"
	"financas/internal/log"
)

type dashboardResponse struct {
	Year                 int               `json:"year"`
	Month                int               `json:"month"`
	IncomeCents          int64             `json:"incomeCents"`
	ExpenseCents         int64             `json:"expenseCents"`
	InvestedCents        int64             `json:"investedCents"`
	NetBalanceCents      int64             `json:"netBalanceCents"`
	CategoryTotals       map[string]int64  `json:"categoryTotals"`
	PreviousExpenseCents int64             `json:"previousExpenseCents"`
	ExpenseVariationPct  float64           `json:"expenseVariationPct"`
	Transactions         []transactionJSON `json:"transactions"`
}

// handleDashboard answers the month overview. The month resolves with
// no type filter so invested amounts count toward the net balance.
func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
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

	monthSet := engine.Resolve(all, period, engine.ResolveOptions{})
	prevSet := engine.Resolve(all, period.Previous(), engine.ResolveOptions{})

	expense := engine.SumByType(monthSet, core.Expense)
	prevExpense := engine.SumByType(prevSet, core.Expense)

	listed := make([]core.Transaction, 0, len(monthSet))
	for _, t := range monthSet {
		if t.Type != core.Investment {
			listed = append(listed, t)
		}
	}

	writeJSON(w, http.StatusOK, dashboardResponse{
		Year:                 year,
		Month:                month,
		IncomeCents:          engine.SumByType(monthSet, core.Income).Cents,
		ExpenseCents:         expense.Cents,
		InvestedCents:        engine.SumByType(monthSet, core.Investment).Cents,
		NetBalanceCents:      engine.NetBalance(monthSet).Cents,
		CategoryTotals:       categoryTotalsJSON(engine.CategoryTotals(monthSet, core.Expense)),
		PreviousExpenseCents: prevExpense.Cents,
		ExpenseVariationPct:  engine.Variation(prevExpense, expense),
		Transactions:         toTransactionList(engine.SortByDate(listed)),
	})
}
